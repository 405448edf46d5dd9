package services

import (
	"context"

	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/internal/partition"
	"inventory-system/internal/repositories"
)

// TaggedEquipment es un registro junto con la partición de la que salió.
type TaggedEquipment struct {
	entities.Equipment
	Particion partition.ID
}

type EquipmentServiceInterface interface {
	GetDisponibles(ctx context.Context) ([]entities.Equipment, error)
	GetAsignaciones(ctx context.Context) ([]TaggedEquipment, error)
	GetAsignacionesPorParticion(ctx context.Context, p partition.ID) ([]entities.Equipment, error)
}

type EquipmentService struct {
	store  repositories.Store
	logger *zap.Logger
}

func NewEquipmentService(store repositories.Store, logger *zap.Logger) *EquipmentService {
	return &EquipmentService{store: store, logger: logger}
}

func (s *EquipmentService) GetDisponibles(ctx context.Context) ([]entities.Equipment, error) {
	return s.store.ListPartition(ctx, partition.Available)
}

// GetAsignaciones devuelve la unión de las tres particiones de asignación,
// cada fila etiquetada con su partición de origen.
func (s *EquipmentService) GetAsignaciones(ctx context.Context) ([]TaggedEquipment, error) {
	var out []TaggedEquipment
	for _, p := range partition.Assigned {
		rows, err := s.store.ListPartition(ctx, p)
		if err != nil {
			s.logger.Error("fallo listando asignaciones",
				zap.String("particion", p.Table()), zap.Error(err))
			return nil, err
		}
		for _, row := range rows {
			out = append(out, TaggedEquipment{Equipment: row, Particion: p})
		}
	}
	return out, nil
}

func (s *EquipmentService) GetAsignacionesPorParticion(ctx context.Context, p partition.ID) ([]entities.Equipment, error) {
	return s.store.ListPartition(ctx, p)
}
