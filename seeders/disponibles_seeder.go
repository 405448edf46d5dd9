package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type disponibleSeed struct {
	Tipo          string
	MarcaCPU      string
	ReferenciaCPU string
	ServicioCPU   string
	PlacaCPU      string
	MarcaMonitor  *string
	Mouse         bool
	Teclado       bool
	Cargador      bool
}

func strPtr(s string) *string { return &s }

var disponiblesData = []disponibleSeed{
	{Tipo: "Desktop", MarcaCPU: "Dell", ReferenciaCPU: "OptiPlex 7010", ServicioCPU: "ST-001", PlacaCPU: "INV-0001", MarcaMonitor: strPtr("Dell"), Mouse: true, Teclado: true},
	{Tipo: "Desktop", MarcaCPU: "HP", ReferenciaCPU: "ProDesk 400 G9", ServicioCPU: "ST-002", PlacaCPU: "INV-0002", MarcaMonitor: strPtr("HP"), Mouse: true, Teclado: true},
	{Tipo: "Portatil", MarcaCPU: "Lenovo", ReferenciaCPU: "ThinkPad T14", ServicioCPU: "ST-003", PlacaCPU: "INV-0003", Cargador: true},
	{Tipo: "Portatil", MarcaCPU: "Dell", ReferenciaCPU: "Latitude 5440", ServicioCPU: "ST-004", PlacaCPU: "INV-0004", Cargador: true, Mouse: true},
	{Tipo: "Tablet", MarcaCPU: "Samsung", ReferenciaCPU: "Galaxy Tab S9", ServicioCPU: "ST-005", PlacaCPU: "INV-0005", Cargador: true},
}

// SeedDisponibles vacía la partición de disponibles y la puebla con
// equipos de muestra para ambientes de desarrollo.
func SeedDisponibles(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Poblando la tabla 'disponibles'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE disponibles RESTART IDENTITY"); err != nil {
		return err
	}

	query := `INSERT INTO disponibles
		(tipo, marca_cpu, referencia_cpu, servicio_cpu, placa_cpu, marca_monitor, mouse, teclado, cargador, acta)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())`

	for _, d := range disponiblesData {
		if _, err := tx.Exec(ctx, query,
			d.Tipo, d.MarcaCPU, d.ReferenciaCPU, d.ServicioCPU, d.PlacaCPU,
			d.MarcaMonitor, d.Mouse, d.Teclado, d.Cargador,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	log.Printf("  - %d equipos disponibles insertados.", len(disponiblesData))
	return nil
}
