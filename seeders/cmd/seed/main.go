package main

import (
	"flag"
	"log"

	"inventory-system/pkg/config"
	"inventory-system/pkg/database/postgresql"
	"inventory-system/seeders"
)

func main() {
	runUsers := flag.Bool("usuarios", false, "Наполнить таблицу пользователей")
	runEquipments := flag.Bool("equipos", false, "Наполнить активы и оборудование")
	runInventory := flag.Bool("inventario", false, "Наполнить склад")
	runAll := flag.Bool("all", false, "Запустить все сидеры")
	flag.Parse()

	if !*runUsers && !*runEquipments && !*runInventory && !*runAll {
		log.Println("Не выбран ни один сидер для запуска.")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	if *runAll || *runUsers {
		seeders.SeedUsers(db)
	}
	if *runAll || *runEquipments {
		seeders.SeedEquipments(db)
	}
	if *runAll || *runInventory {
		seeders.SeedInventory(db)
	}

	log.Println("Наполнение завершено.")
}
