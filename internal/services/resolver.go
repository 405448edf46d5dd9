package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/internal/partition"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

type ResolverServiceInterface interface {
	FindByServiceTag(ctx context.Context, tag string, order []partition.ID) (*entities.Equipment, partition.ID, error)
}

// ResolverService localiza un registro por service tag sin conocer su
// partición: lectura dispersa en el orden dado por el llamador, primer
// acierto gana. Si el invariante global se viola por ediciones manuales
// (el mismo tag en dos particiones vivas), devuelve solo la primera según
// el orden de prioridad.
type ResolverService struct {
	store  repositories.Store
	logger *zap.Logger
}

func NewResolverService(store repositories.Store, logger *zap.Logger) *ResolverService {
	return &ResolverService{store: store, logger: logger}
}

func (s *ResolverService) FindByServiceTag(ctx context.Context, tag string, order []partition.ID) (*entities.Equipment, partition.ID, error) {
	if len(order) == 0 {
		order = partition.LookupOrder
	}

	for _, p := range order {
		rec, err := s.store.FindByServiceTag(ctx, p, tag)
		if err == nil {
			return rec, p, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Error("fallo consultando la partición",
				zap.String("particion", p.Table()),
				zap.String("servicio_cpu", tag),
				zap.Error(err),
			)
			return nil, "", err
		}
	}
	return nil, "", apperrors.ErrNotFound
}
