package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

func TestForCategory(t *testing.T) {
	cases := map[string]ID{
		"pc":          AssignedPC,
		"Desktop":     AssignedPC,
		"escritorio":  AssignedPC,
		"Todo en uno": AssignedPC,
		"portatil":    AssignedLaptop,
		"Portátil":    AssignedLaptop,
		"laptop":      AssignedLaptop,
		"tablet":      AssignedTablet,
		"  tableta  ": AssignedTablet,
	}
	for tipo, want := range cases {
		got, err := ForCategory(tipo)
		require.NoError(t, err, tipo)
		assert.Equal(t, want, got, tipo)
	}

	_, err := ForCategory("impresora")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedCategory)
}

func TestFromCategorySlug(t *testing.T) {
	got, err := FromCategorySlug("portatiles")
	require.NoError(t, err)
	assert.Equal(t, AssignedLaptop, got)

	got, err = FromCategorySlug("PC")
	require.NoError(t, err)
	assert.Equal(t, AssignedPC, got)

	_, err = FromCategorySlug("servidores")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedCategory)
}

func TestEventType(t *testing.T) {
	assert.Equal(t, entities.EventAssignment, EventType(AssignedPC))
	assert.Equal(t, entities.EventAssignment, EventType(AssignedTablet))
	assert.Equal(t, entities.EventUnassignment, EventType(Resigned))
	assert.Equal(t, entities.EventDamage, EventType(Damaged))
	assert.Equal(t, entities.EventMaintenance, EventType(Maintenance))
	assert.Equal(t, entities.EventAvailable, EventType(Available))
}

func TestStatusPrefix(t *testing.T) {
	assert.Equal(t, "disponible", StatusPrefix(Available, "Desktop"))
	assert.Equal(t, "desktop", StatusPrefix(AssignedPC, "Desktop"))
	assert.Equal(t, "laptop", StatusPrefix(Damaged, " Laptop "))
	assert.Equal(t, "equipo", StatusPrefix(Maintenance, ""))
}

func TestColumnFlags(t *testing.T) {
	for _, p := range Assigned {
		assert.True(t, IsAssigned(p), p)
		assert.True(t, HasAssignment(p), p)
	}
	assert.True(t, HasAssignment(Resigned))
	assert.False(t, HasAssignment(Available))

	assert.True(t, HasObservations(Damaged))
	assert.True(t, HasObservations(Maintenance))
	assert.False(t, HasObservations(AssignedPC))
}

func TestCanonicalOrders(t *testing.T) {
	// El buscador revisa primero las asignaciones; el reporte de daño
	// nunca consulta danados como origen.
	assert.Equal(t, []ID{AssignedPC, AssignedLaptop, AssignedTablet, Available, Damaged, Maintenance}, LookupOrder)
	assert.NotContains(t, DamageOrder, Damaged)
	assert.Len(t, All, 7)
	assert.NotContains(t, Live, Resigned)
	assert.NotContains(t, Live, Maintenance)
}
