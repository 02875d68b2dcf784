package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedUsers наполняет usuarios демонстрационными сотрудниками.
// ON CONFLICT DO NOTHING - сидер можно запускать повторно.
func SeedUsers(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Наполнение пользователей...")

	users := []struct {
		nombre, correo, area, ubicacion string
	}{
		{"Ana Pérez", "ana.perez@example.com", "Sistemas", "Oficina Central"},
		{"Luis Gómez", "luis.gomez@example.com", "Contabilidad", "Sucursal Norte"},
		{"María Rodríguez", "maria.rodriguez@example.com", "Recursos Humanos", "Oficina Central"},
	}
	for _, u := range users {
		if _, err := db.Exec(ctx,
			`INSERT INTO usuarios (nombre, correo, area, ubicacion, activo)
			 VALUES ($1, $2, $3, $4, TRUE)
			 ON CONFLICT DO NOTHING`,
			u.nombre, u.correo, u.area, u.ubicacion,
		); err != nil {
			log.Fatalf("❌ Ошибка наполнения пользователей: %v", err)
		}
	}
	log.Println("✅ Пользователи готовы")
}

// SeedEquipments создаёт пары activo+equipo с фиксированными asset_id.
func SeedEquipments(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Наполнение оборудования...")

	equipments := []struct {
		assetID                        int64
		tipo, fabricante, modelo, serie string
	}{
		{1001, "Laptop", "Dell", "XPS 13", "SN-DX13-001"},
		{1002, "Monitor", "LG", "27UL500", "SN-LG27-002"},
		{1003, "Impresora", "HP", "LaserJet Pro M404", "SN-HP44-003"},
	}
	for _, e := range equipments {
		if _, err := db.Exec(ctx,
			`INSERT INTO activos (id, descripcion) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			e.assetID, "Activo para equipo "+e.tipo+" "+e.modelo,
		); err != nil {
			log.Fatalf("❌ Ошибка наполнения активов: %v", err)
		}
		if _, err := db.Exec(ctx,
			`INSERT INTO equipos (asset_id, tipo, fabricante, modelo, serie)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT DO NOTHING`,
			e.assetID, e.tipo, e.fabricante, e.modelo, e.serie,
		); err != nil {
			log.Fatalf("❌ Ошибка наполнения оборудования: %v", err)
		}
	}
	log.Println("✅ Оборудование готово")
}

// SeedInventory наполняет склад расходниками.
func SeedInventory(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Наполнение инвентаря...")

	items := []struct {
		tipo, descripcion string
		cantidad          int64
		categoria         string
	}{
		{"Cable", "Cable HDMI 2m", 25, "Accesorios"},
		{"Teclado", "Teclado USB en español", 10, "Periféricos"},
		{"Tóner", "Tóner HP 58A negro", 6, "Consumibles"},
	}
	for _, item := range items {
		if _, err := db.Exec(ctx,
			`INSERT INTO inventario (tipo, descripcion, cantidad, ubicacion, categoria)
			 VALUES ($1, $2, $3, 'Almacén', $4)
			 ON CONFLICT DO NOTHING`,
			item.tipo, item.descripcion, item.cantidad, item.categoria,
		); err != nil {
			log.Fatalf("❌ Ошибка наполнения инвентаря: %v", err)
		}
	}
	log.Println("✅ Инвентарь готов")
}
