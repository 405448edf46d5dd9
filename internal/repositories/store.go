package repositories

import (
	"context"

	"inventory-system/internal/entities"
	"inventory-system/internal/partition"
)

// Store es el almacén particionado de equipos. Las lecturas sueltas van
// directo al pool; toda mutación pasa por WithinTransaction, que entrega
// un StoreTx con alcance de transacción explícito.
type Store interface {
	WithinTransaction(ctx context.Context, fn func(tx StoreTx) error) error

	ListPartition(ctx context.Context, p partition.ID) ([]entities.Equipment, error)
	// FindByServiceTag devuelve la primera fila de la partición con ese
	// service tag, o ErrNotFound.
	FindByServiceTag(ctx context.Context, p partition.ID, tag string) (*entities.Equipment, error)
	// EventsByServiceTag devuelve todas las filas de la partición con ese
	// service tag; una lista vacía no es error.
	EventsByServiceTag(ctx context.Context, p partition.ID, tag string) ([]entities.Equipment, error)
	SetRutaActa(ctx context.Context, p partition.ID, id int64, ruta string) error
}

// StoreTx expone las operaciones de movimiento dentro de una transacción.
// Las variantes ForUpdate bloquean la fila de origen, de modo que dos
// transiciones concurrentes sobre el mismo tag no puedan moverla dos veces.
type StoreTx interface {
	FindByIDForUpdate(ctx context.Context, p partition.ID, id int64) (*entities.Equipment, error)
	FindByServiceTagForUpdate(ctx context.Context, p partition.ID, tag string) (*entities.Equipment, error)
	Insert(ctx context.Context, p partition.ID, rec entities.Equipment) (*entities.Equipment, error)
	Delete(ctx context.Context, p partition.ID, id int64) error
}
