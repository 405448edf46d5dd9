package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"inventory-system/internal/entities"
	"inventory-system/internal/partition"
	"inventory-system/internal/repositories"
)

type HistoryServiceInterface interface {
	GetHistory(ctx context.Context, tag string) ([]entities.HistoryEvent, error)
}

// HistoryService reconstruye la narrativa cronológica de un equipo:
// consulta todas las particiones en paralelo (incluidos los logs
// terminales), proyecta cada fila a un evento y ordena el resultado por
// fecha descendente. Si una sola partición falla, todo el historial falla;
// no hay degradación parcial.
type HistoryService struct {
	store    repositories.Store
	cache    repositories.HistoryCacheInterface
	logger   *zap.Logger
	cacheTTL time.Duration
}

func NewHistoryService(
	store repositories.Store,
	cache repositories.HistoryCacheInterface,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *HistoryService {
	return &HistoryService{
		store:    store,
		cache:    cache,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

func (s *HistoryService) GetHistory(ctx context.Context, tag string) ([]entities.HistoryEvent, error) {
	if s.cache != nil {
		if events, hit, err := s.cache.GetHistory(ctx, tag); err == nil && hit {
			return events, nil
		} else if err != nil {
			s.logger.Warn("caché de historial no disponible", zap.Error(err))
		}
	}

	results := make([][]entities.HistoryEvent, len(partition.All))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range partition.All {
		g.Go(func() error {
			rows, err := s.store.EventsByServiceTag(gctx, p, tag)
			if err != nil {
				return fmt.Errorf("historial de %s: %w", p.Table(), err)
			}
			events := make([]entities.HistoryEvent, 0, len(rows))
			for _, row := range rows {
				events = append(events, mapEvent(p, row))
			}
			results[i] = events
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]entities.HistoryEvent, 0)
	for _, events := range results {
		merged = append(merged, events...)
	}
	sortEventsDesc(merged)

	if s.cache != nil {
		if err := s.cache.SetHistory(ctx, tag, merged, s.cacheTTL); err != nil {
			s.logger.Warn("no se pudo escribir la caché de historial", zap.Error(err))
		}
	}
	return merged, nil
}

// mapEvent aplica las reglas de proyección propias de cada partición.
func mapEvent(p partition.ID, row entities.Equipment) entities.HistoryEvent {
	ev := entities.HistoryEvent{
		ID:    fmt.Sprintf("%s-%d", partition.StatusPrefix(p, row.Tipo), row.ID),
		Tipo:  partition.EventType(p),
		Fecha: row.Acta.Fecha(),
		Hora:  row.Acta.Hora(),
	}

	if row.Asignacion != nil {
		ev.Responsable = row.Asignacion.Jefe.String
		if row.Asignacion.NombreFuncionario.Valid {
			ev.Funcionario = &entities.HistoryEmployee{
				Nombre:         row.Asignacion.NombreFuncionario.String,
				Dependencia:    row.Asignacion.Dependencia.String,
				Identificacion: row.Asignacion.Cedula.String,
				Correo:         row.Asignacion.Correo.String,
			}
		}
	}

	switch ev.Tipo {
	case entities.EventAssignment:
		ev.Titulo = "Equipo asignado"
		if ev.Funcionario != nil {
			ev.Descripcion = fmt.Sprintf("Asignado a %s", ev.Funcionario.Nombre)
		} else {
			ev.Descripcion = "Equipo asignado a funcionario"
		}
	case entities.EventUnassignment:
		ev.Titulo = "Equipo devuelto"
		if ev.Funcionario != nil {
			ev.Descripcion = fmt.Sprintf("Devuelto por %s", ev.Funcionario.Nombre)
		} else {
			ev.Descripcion = "Devolución por retiro del funcionario"
		}
	case entities.EventDamage:
		ev.Titulo = "Daño reportado"
		if row.Observaciones.Valid && row.Observaciones.String != "" {
			ev.Descripcion = row.Observaciones.String
		} else {
			ev.Descripcion = "Sin observaciones"
		}
	case entities.EventMaintenance:
		ev.Titulo = "Mantenimiento"
		if row.Observaciones.Valid && row.Observaciones.String != "" {
			ev.Descripcion = row.Observaciones.String
		} else {
			ev.Descripcion = "Mantenimiento preventivo"
		}
	default:
		ev.Titulo = "Equipo disponible"
		if row.Observaciones.Valid && row.Observaciones.String != "" {
			ev.Descripcion = row.Observaciones.String
		} else {
			ev.Descripcion = "Equipo disponible en inventario"
		}
	}
	return ev
}

// sortEventsDesc ordena por fecha y hora descendente. Los eventos sin
// fecha quedan al final; los empates conservan el orden de llegada.
func sortEventsDesc(events []entities.HistoryEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		aDated, bDated := a.Fecha != entities.SinFecha, b.Fecha != entities.SinFecha
		if aDated != bDated {
			return aDated
		}
		if !aDated {
			return false
		}
		if a.Fecha != b.Fecha {
			return a.Fecha > b.Fecha
		}
		return a.Hora > b.Hora
	})
}
