// pkg/constants/constants.go
package constants

//============== PAGINATION ==============

// Размер страницы фиксированный, клиент его не настраивает.
const (
	EquipmentPageSize uint64 = 20
	InventoryPageSize uint64 = 20
)

//============== INVENTARIO ==============

const (
	// Значение ubicacion по умолчанию при создании позиции склада.
	DefaultInventoryLocation = "Almacén"
)
