package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/internal/partition"
	apperrors "inventory-system/pkg/errors"
)

func newDesktop(tag string) entities.Equipment {
	return entities.Equipment{
		Tipo:          "Desktop",
		MarcaCPU:      "Dell",
		ReferenciaCPU: "OptiPlex 7010",
		ServicioCPU:   tag,
		PlacaCPU:      "INV-0007",
		MarcaMonitor:  null.StringFrom("Dell"),
		Accesorios:    entities.Accessories{Mouse: true, Teclado: true},
		Acta:          entities.NewActa(time.Date(2023, 5, 10, 9, 0, 0, 0, time.UTC)),
	}
}

func newTransition(store *fakeStore, cache *recordingCache) *TransitionService {
	svc := NewTransitionService(store, cache, zap.NewNop(), 0)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC) }
	return svc
}

func TestAssignMovesDesktopToAssignedPC(t *testing.T) {
	store := newFakeStore()
	cache := newRecordingCache()
	seeded := store.add(partition.Available, newDesktop("ST-001"))
	svc := newTransition(store, cache)

	moved, err := svc.Assign(context.Background(), AssignCommand{
		DisponibleID: seeded.ID,
		Funcionario: entities.AssignmentInfo{
			NombreFuncionario: null.StringFrom("Ana Pérez"),
			Dependencia:       null.StringFrom("Contabilidad"),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, moved.Asignacion)
	assert.Equal(t, "Ana Pérez", moved.Asignacion.NombreFuncionario.String)
	assert.Equal(t, "ST-001", moved.ServicioCPU)
	assert.True(t, moved.Acta.Valid)

	_, err = store.FindByServiceTag(context.Background(), partition.Available, "ST-001")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	got, err := store.FindByServiceTag(context.Background(), partition.AssignedPC, "ST-001")
	require.NoError(t, err)
	assert.Equal(t, "Dell", got.MarcaCPU)

	assert.Contains(t, cache.invalidated, "ST-001")
}

func TestAssignUnknownIDReturnsNotFound(t *testing.T) {
	svc := newTransition(newFakeStore(), newRecordingCache())

	_, err := svc.Assign(context.Background(), AssignCommand{
		DisponibleID: 99,
		Funcionario:  entities.AssignmentInfo{NombreFuncionario: null.StringFrom("Ana")},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAssignUnsupportedCategoryLeavesRecordInPlace(t *testing.T) {
	store := newFakeStore()
	rec := newDesktop("ST-010")
	rec.Tipo = "Impresora"
	seeded := store.add(partition.Available, rec)
	svc := newTransition(store, newRecordingCache())

	_, err := svc.Assign(context.Background(), AssignCommand{
		DisponibleID: seeded.ID,
		Funcionario:  entities.AssignmentInfo{NombreFuncionario: null.StringFrom("Ana")},
	})
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedCategory)

	_, err = store.FindByServiceTag(context.Background(), partition.Available, "ST-010")
	assert.NoError(t, err, "el registro debe seguir en disponibles")
}

func TestAssignRollsBackWhenInsertFails(t *testing.T) {
	store := newFakeStore()
	seeded := store.add(partition.Available, newDesktop("ST-002"))
	store.failInsertInto[partition.AssignedPC] = errors.New("fallo inyectado")
	svc := newTransition(store, newRecordingCache())

	_, err := svc.Assign(context.Background(), AssignCommand{
		DisponibleID: seeded.ID,
		Funcionario:  entities.AssignmentInfo{NombreFuncionario: null.StringFrom("Ana")},
	})
	require.Error(t, err)

	// El rollback debe dejar al equipo exactamente donde estaba.
	_, err = store.FindByServiceTag(context.Background(), partition.Available, "ST-002")
	assert.NoError(t, err)
	assert.Equal(t, 0, store.count(partition.AssignedPC))
}

func TestReportDamageFromAssigned(t *testing.T) {
	store := newFakeStore()
	rec := newDesktop("ST-003")
	rec.Asignacion = &entities.AssignmentInfo{NombreFuncionario: null.StringFrom("Luis Gómez")}
	store.add(partition.AssignedPC, rec)
	svc := newTransition(store, newRecordingCache())

	moved, err := svc.ReportDamage(context.Background(), "ST-003", "pantalla rota")
	require.NoError(t, err)
	assert.Equal(t, "pantalla rota", moved.Observaciones.String)
	assert.Nil(t, moved.Asignacion, "el equipo dañado no conserva asignación")

	assert.Equal(t, 0, store.count(partition.AssignedPC))
	assert.Equal(t, 1, store.count(partition.Damaged))
}

func TestReportDamageUsesSearchOrder(t *testing.T) {
	store := newFakeStore()
	// Tag duplicado por corrupción manual: la partición de asignación
	// tiene prioridad y la copia de disponibles queda intacta.
	assigned := newDesktop("ST-004")
	assigned.Asignacion = &entities.AssignmentInfo{NombreFuncionario: null.StringFrom("Ana")}
	store.add(partition.AssignedPC, assigned)
	store.add(partition.Available, newDesktop("ST-004"))
	svc := newTransition(store, newRecordingCache())

	_, err := svc.ReportDamage(context.Background(), "ST-004", "no enciende")
	require.NoError(t, err)

	assert.Equal(t, 0, store.count(partition.AssignedPC))
	assert.Equal(t, 1, store.count(partition.Available))
	assert.Equal(t, 1, store.count(partition.Damaged))
}

func TestReportDamageNotFound(t *testing.T) {
	svc := newTransition(newFakeStore(), newRecordingCache())

	_, err := svc.ReportDamage(context.Background(), "ST-NADA", "x")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMarkDamagedByIDCarriesAccessories(t *testing.T) {
	store := newFakeStore()
	rec := newDesktop("ST-005")
	rec.Accesorios.AntenaWifi = true
	rec.Accesorios.GuayaAdicional = true
	seeded := store.add(partition.Available, rec)
	svc := newTransition(store, newRecordingCache())

	moved, err := svc.MarkDamagedByID(context.Background(), seeded.ID, "golpe en la carcasa")
	require.NoError(t, err)
	assert.True(t, moved.Accesorios.AntenaWifi)
	assert.True(t, moved.Accesorios.GuayaAdicional)
	assert.True(t, moved.Accesorios.Mouse)
	assert.Equal(t, "golpe en la carcasa", moved.Observaciones.String)
	assert.Equal(t, 0, store.count(partition.Available))
}

func TestRepairRequiresNotes(t *testing.T) {
	store := newFakeStore()
	store.add(partition.Damaged, newDesktop("ST-006"))
	svc := newTransition(store, newRecordingCache())

	_, err := svc.Repair(context.Background(), "ST-006", "")
	assert.ErrorIs(t, err, apperrors.ErrEmptyRepairNotes)
	assert.Equal(t, 1, store.count(partition.Damaged), "sin notas no hay movimiento")
}

func TestRepairNotInDamaged(t *testing.T) {
	svc := newTransition(newFakeStore(), newRecordingCache())

	_, err := svc.Repair(context.Background(), "ST-007", "se cambió el disco")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRoundTripPreservesIdentity(t *testing.T) {
	store := newFakeStore()
	cache := newRecordingCache()
	seeded := store.add(partition.Available, newDesktop("ST-001"))
	svc := newTransition(store, cache)
	ctx := context.Background()

	_, err := svc.Assign(ctx, AssignCommand{
		DisponibleID: seeded.ID,
		Funcionario:  entities.AssignmentInfo{NombreFuncionario: null.StringFrom("Ana Pérez")},
	})
	require.NoError(t, err)

	_, err = svc.ReportDamage(ctx, "ST-001", "pantalla rota")
	require.NoError(t, err)

	repaired, err := svc.Repair(ctx, "ST-001", "pantalla reemplazada")
	require.NoError(t, err)

	// La identidad CPU/monitor sobrevive las tres proyecciones.
	assert.Equal(t, "Dell", repaired.MarcaCPU)
	assert.Equal(t, "OptiPlex 7010", repaired.ReferenciaCPU)
	assert.Equal(t, "ST-001", repaired.ServicioCPU)
	assert.Equal(t, "INV-0007", repaired.PlacaCPU)
	assert.Equal(t, "Dell", repaired.MarcaMonitor.String)
	assert.Equal(t, "pantalla reemplazada", repaired.Observaciones.String)

	// Tras la vuelta completa el tag vive solo en disponibles.
	for _, p := range partition.Live {
		want := 0
		if p == partition.Available {
			want = 1
		}
		assert.Equal(t, want, store.count(p), "particion %s", p.Table())
	}
}
