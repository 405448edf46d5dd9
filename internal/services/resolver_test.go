package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/partition"
	apperrors "inventory-system/pkg/errors"
)

func TestResolverFirstMatchWins(t *testing.T) {
	store := newFakeStore()
	// Mismo tag en dos particiones vivas: el orden del llamador decide
	// cuál se devuelve y la búsqueda se detiene ahí.
	store.add(partition.AssignedPC, newDesktop("ST-020"))
	store.add(partition.Available, newDesktop("ST-020"))
	svc := NewResolverService(store, zap.NewNop())

	_, src, err := svc.FindByServiceTag(context.Background(), "ST-020",
		[]partition.ID{partition.AssignedPC, partition.Available})
	require.NoError(t, err)
	assert.Equal(t, partition.AssignedPC, src)

	_, src, err = svc.FindByServiceTag(context.Background(), "ST-020",
		[]partition.ID{partition.Available, partition.AssignedPC})
	require.NoError(t, err)
	assert.Equal(t, partition.Available, src)
}

func TestResolverDefaultsToLookupOrder(t *testing.T) {
	store := newFakeStore()
	store.add(partition.Damaged, newDesktop("ST-021"))
	svc := NewResolverService(store, zap.NewNop())

	_, src, err := svc.FindByServiceTag(context.Background(), "ST-021", nil)
	require.NoError(t, err)
	assert.Equal(t, partition.Damaged, src)
}

func TestResolverNotFound(t *testing.T) {
	svc := NewResolverService(newFakeStore(), zap.NewNop())

	_, _, err := svc.FindByServiceTag(context.Background(), "ST-NADA", partition.LookupOrder)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestResolverPropagatesStoreErrors(t *testing.T) {
	store := newFakeStore()
	boom := errors.New("particion caida")
	store.failPartition[partition.Available] = boom
	svc := NewResolverService(store, zap.NewNop())

	_, _, err := svc.FindByServiceTag(context.Background(), "ST-022", partition.LookupOrder)
	assert.ErrorIs(t, err, boom)
}
