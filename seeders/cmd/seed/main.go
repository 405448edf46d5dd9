package main

import (
	"context"
	"log"

	"inventory-system/pkg/config"
	"inventory-system/pkg/database/postgresql"
	"inventory-system/seeders"
)

func main() {
	log.Println("Sembrando datos de desarrollo...")

	cfg := config.New()
	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	if err := seeders.SeedDisponibles(context.Background(), db); err != nil {
		log.Fatalf("El seeder de disponibles falló: %v", err)
	}

	log.Println("Listo.")
}
