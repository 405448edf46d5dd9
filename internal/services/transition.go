package services

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/internal/partition"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

// AssignCommand agrupa la entrada de una asignación: el id del registro en
// disponibles más los datos del funcionario receptor.
type AssignCommand struct {
	DisponibleID int64
	Funcionario  entities.AssignmentInfo
	RutaActa     null.String
	Acta         entities.ActaTime
}

type TransitionServiceInterface interface {
	Assign(ctx context.Context, cmd AssignCommand) (*entities.Equipment, error)
	ReportDamage(ctx context.Context, tag string, observaciones string) (*entities.Equipment, error)
	MarkDamagedByID(ctx context.Context, disponibleID int64, observaciones string) (*entities.Equipment, error)
	Repair(ctx context.Context, tag string, notas string) (*entities.Equipment, error)
}

// TransitionService mueve registros entre particiones. Cada operación es
// una sola transacción: leer con bloqueo de fila, borrar del origen,
// insertar la proyección en el destino. Si cualquier paso falla, la
// transacción se revierte y el equipo queda exactamente donde estaba.
type TransitionService struct {
	store     repositories.Store
	cache     repositories.HistoryCacheInterface
	logger    *zap.Logger
	txTimeout time.Duration
	now       func() time.Time
}

func NewTransitionService(
	store repositories.Store,
	cache repositories.HistoryCacheInterface,
	logger *zap.Logger,
	txTimeout time.Duration,
) *TransitionService {
	return &TransitionService{
		store:     store,
		cache:     cache,
		logger:    logger,
		txTimeout: txTimeout,
		now:       time.Now,
	}
}

func (s *TransitionService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.txTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.txTimeout)
}

func (s *TransitionService) invalidateHistory(ctx context.Context, tag string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, tag); err != nil {
		s.logger.Warn("no se pudo invalidar la caché de historial",
			zap.String("servicio_cpu", tag), zap.Error(err))
	}
}

func (s *TransitionService) Assign(ctx context.Context, cmd AssignCommand) (*entities.Equipment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var moved *entities.Equipment
	err := s.store.WithinTransaction(ctx, func(tx repositories.StoreTx) error {
		rec, err := tx.FindByIDForUpdate(ctx, partition.Available, cmd.DisponibleID)
		if err != nil {
			return err
		}

		dest, err := partition.ForCategory(rec.Tipo)
		if err != nil {
			return err
		}

		proj := rec.Clone()
		info := cmd.Funcionario
		proj.Asignacion = &info
		proj.Observaciones = null.String{}
		if cmd.RutaActa.Valid {
			proj.RutaActa = cmd.RutaActa
		}
		if cmd.Acta.Valid {
			proj.Acta = cmd.Acta
		} else {
			proj.Acta = entities.NewActa(s.now())
		}

		if err := tx.Delete(ctx, partition.Available, rec.ID); err != nil {
			return err
		}
		moved, err = tx.Insert(ctx, dest, proj)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidateHistory(ctx, moved.ServicioCPU)
	s.logger.Info("equipo asignado",
		zap.Int64("disponible_id", cmd.DisponibleID),
		zap.String("servicio_cpu", moved.ServicioCPU),
		zap.String("funcionario", cmd.Funcionario.NombreFuncionario.String),
	)
	return moved, nil
}

func (s *TransitionService) ReportDamage(ctx context.Context, tag string, observaciones string) (*entities.Equipment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var moved *entities.Equipment
	err := s.store.WithinTransaction(ctx, func(tx repositories.StoreTx) error {
		rec, src, err := s.lockFirstByTag(ctx, tx, tag, partition.DamageOrder)
		if err != nil {
			return err
		}
		moved, err = s.moveToDamaged(ctx, tx, rec, src, observaciones)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidateHistory(ctx, tag)
	s.logger.Info("daño reportado", zap.String("servicio_cpu", tag))
	return moved, nil
}

func (s *TransitionService) MarkDamagedByID(ctx context.Context, disponibleID int64, observaciones string) (*entities.Equipment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var moved *entities.Equipment
	err := s.store.WithinTransaction(ctx, func(tx repositories.StoreTx) error {
		rec, err := tx.FindByIDForUpdate(ctx, partition.Available, disponibleID)
		if err != nil {
			return err
		}
		moved, err = s.moveToDamaged(ctx, tx, rec, partition.Available, observaciones)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidateHistory(ctx, moved.ServicioCPU)
	s.logger.Info("equipo marcado como dañado",
		zap.Int64("disponible_id", disponibleID),
		zap.String("servicio_cpu", moved.ServicioCPU),
	)
	return moved, nil
}

func (s *TransitionService) Repair(ctx context.Context, tag string, notas string) (*entities.Equipment, error) {
	if notas == "" {
		return nil, apperrors.ErrEmptyRepairNotes
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var moved *entities.Equipment
	err := s.store.WithinTransaction(ctx, func(tx repositories.StoreTx) error {
		rec, err := tx.FindByServiceTagForUpdate(ctx, partition.Damaged, tag)
		if err != nil {
			return err
		}

		proj := rec.Clone()
		proj.Asignacion = nil
		proj.Observaciones = null.StringFrom(notas)
		proj.Acta = entities.NewActa(s.now())

		if err := tx.Delete(ctx, partition.Damaged, rec.ID); err != nil {
			return err
		}
		moved, err = tx.Insert(ctx, partition.Available, proj)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidateHistory(ctx, tag)
	s.logger.Info("equipo reparado", zap.String("servicio_cpu", tag))
	return moved, nil
}

// lockFirstByTag recorre las particiones en orden y bloquea la primera fila
// que tenga el service tag. No sigue buscando tras el primer acierto.
func (s *TransitionService) lockFirstByTag(
	ctx context.Context,
	tx repositories.StoreTx,
	tag string,
	order []partition.ID,
) (*entities.Equipment, partition.ID, error) {
	for _, p := range order {
		rec, err := tx.FindByServiceTagForUpdate(ctx, p, tag)
		if err == nil {
			return rec, p, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", err
		}
	}
	return nil, "", apperrors.ErrNotFound
}

func (s *TransitionService) moveToDamaged(
	ctx context.Context,
	tx repositories.StoreTx,
	rec *entities.Equipment,
	src partition.ID,
	observaciones string,
) (*entities.Equipment, error) {
	proj := rec.Clone()
	proj.Asignacion = nil
	proj.Observaciones = null.NewString(observaciones, observaciones != "")
	proj.Acta = entities.NewActa(s.now())

	if err := tx.Delete(ctx, src, rec.ID); err != nil {
		return nil, err
	}
	return tx.Insert(ctx, partition.Damaged, proj)
}
