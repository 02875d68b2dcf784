package entities

import "time"

// InventoryItem - строка таблицы inventario. Не связана с equipos/activos.
type InventoryItem struct {
	ID          int64
	Tipo        string
	Descripcion string
	Cantidad    int64
	Ubicacion   string
	Categoria   string
	CreatedAt   time.Time
}
