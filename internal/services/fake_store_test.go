package services

import (
	"context"
	"sync"
	"time"

	"inventory-system/internal/entities"
	"inventory-system/internal/partition"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

// fakeStore implementa Store/StoreTx en memoria. WithinTransaction toma un
// snapshot y lo restaura si fn falla, imitando el rollback real.
type fakeStore struct {
	mu     sync.Mutex
	data   map[partition.ID][]entities.Equipment
	nextID int64

	failInsertInto map[partition.ID]error
	failPartition  map[partition.ID]error
}

func newFakeStore() *fakeStore {
	data := make(map[partition.ID][]entities.Equipment, len(partition.All))
	for _, p := range partition.All {
		data[p] = nil
	}
	return &fakeStore{
		data:           data,
		nextID:         1,
		failInsertInto: map[partition.ID]error{},
		failPartition:  map[partition.ID]error{},
	}
}

func (f *fakeStore) add(p partition.ID, e entities.Equipment) entities.Equipment {
	f.mu.Lock()
	defer f.mu.Unlock()
	e.ID = f.nextID
	f.nextID++
	f.data[p] = append(f.data[p], e.Clone())
	return e
}

func (f *fakeStore) count(p partition.ID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.data[p])
}

func (f *fakeStore) WithinTransaction(_ context.Context, fn func(tx repositories.StoreTx) error) error {
	f.mu.Lock()
	before := f.snapshotLocked()
	f.mu.Unlock()

	if err := fn(f); err != nil {
		f.mu.Lock()
		f.data = before
		f.mu.Unlock()
		return err
	}
	return nil
}

func (f *fakeStore) snapshotLocked() map[partition.ID][]entities.Equipment {
	out := make(map[partition.ID][]entities.Equipment, len(f.data))
	for p, rows := range f.data {
		cloned := make([]entities.Equipment, 0, len(rows))
		for _, row := range rows {
			cloned = append(cloned, row.Clone())
		}
		out[p] = cloned
	}
	return out
}

func (f *fakeStore) ListPartition(_ context.Context, p partition.ID) ([]entities.Equipment, error) {
	if err := f.failPartition[p]; err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entities.Equipment, 0, len(f.data[p]))
	for _, row := range f.data[p] {
		out = append(out, row.Clone())
	}
	return out, nil
}

func (f *fakeStore) FindByServiceTag(_ context.Context, p partition.ID, tag string) (*entities.Equipment, error) {
	if err := f.failPartition[p]; err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.data[p] {
		if row.ServicioCPU == tag {
			out := row.Clone()
			return &out, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeStore) EventsByServiceTag(_ context.Context, p partition.ID, tag string) ([]entities.Equipment, error) {
	if err := f.failPartition[p]; err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entities.Equipment
	for _, row := range f.data[p] {
		if row.ServicioCPU == tag {
			out = append(out, row.Clone())
		}
	}
	return out, nil
}

func (f *fakeStore) SetRutaActa(_ context.Context, p partition.ID, id int64, ruta string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.data[p] {
		if f.data[p][i].ID == id {
			f.data[p][i].RutaActa.SetValid(ruta)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// --- StoreTx ---

func (f *fakeStore) FindByIDForUpdate(_ context.Context, p partition.ID, id int64) (*entities.Equipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.data[p] {
		if row.ID == id {
			out := row.Clone()
			return &out, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeStore) FindByServiceTagForUpdate(ctx context.Context, p partition.ID, tag string) (*entities.Equipment, error) {
	return f.FindByServiceTag(ctx, p, tag)
}

func (f *fakeStore) Insert(_ context.Context, p partition.ID, rec entities.Equipment) (*entities.Equipment, error) {
	if err := f.failInsertInto[p]; err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	created := rec.Clone()
	created.ID = f.nextID
	f.nextID++
	f.data[p] = append(f.data[p], created.Clone())
	return &created, nil
}

func (f *fakeStore) Delete(_ context.Context, p partition.ID, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows := f.data[p]
	for i, row := range rows {
		if row.ID == id {
			f.data[p] = append(rows[:i:i], rows[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// recordingCache registra aciertos e invalidaciones; opcionalmente sirve
// una respuesta precargada.
type recordingCache struct {
	mu          sync.Mutex
	stored      map[string][]entities.HistoryEvent
	invalidated []string
	sets        int
}

func newRecordingCache() *recordingCache {
	return &recordingCache{stored: map[string][]entities.HistoryEvent{}}
}

func (c *recordingCache) GetHistory(_ context.Context, tag string) ([]entities.HistoryEvent, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	events, ok := c.stored[tag]
	return events, ok, nil
}

func (c *recordingCache) SetHistory(_ context.Context, tag string, events []entities.HistoryEvent, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stored[tag] = events
	c.sets++
	return nil
}

func (c *recordingCache) Invalidate(_ context.Context, tag string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.stored, tag)
	c.invalidated = append(c.invalidated, tag)
	return nil
}

var _ repositories.Store = (*fakeStore)(nil)
var _ repositories.StoreTx = (*fakeStore)(nil)
var _ repositories.HistoryCacheInterface = (*recordingCache)(nil)
