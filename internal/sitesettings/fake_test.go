package sitesettings_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"gorm.io/datatypes"

	"github.com/vidnest/vidnest/internal/db/controller/setting"
	"github.com/vidnest/vidnest/internal/db/models"
)

var errBackend = errors.New("backend unavailable")

// memStore is an in-memory Store. failKeys makes Upsert fail for the listed keys,
// failAll makes All fail and gate, when set, blocks All until a value is received.
// heldRead, when set, blocks All after the rows were copied; reads counts finished copies.
type memStore struct {
	mu       sync.Mutex
	rows     map[string][]byte
	failKeys map[string]bool
	failAll  bool
	gate     chan struct{}
	heldRead chan struct{}
	allCalls int
	reads    int
	order    []string
}

func newMemStore() *memStore {
	return &memStore{rows: map[string][]byte{}, failKeys: map[string]bool{}}
}

func (m *memStore) All(_ context.Context) ([]models.Setting, error) {
	m.mu.Lock()
	m.allCalls++
	gate := m.gate
	m.mu.Unlock()

	if gate != nil {
		<-gate
	}

	m.mu.Lock()

	if m.failAll {
		m.mu.Unlock()
		return nil, errBackend
	}

	keys := make([]string, 0, len(m.rows))
	for k := range m.rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]models.Setting, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.Setting{Key: k, Value: datatypes.JSON(m.rows[k])})
	}

	m.reads++
	held := m.heldRead
	m.mu.Unlock()

	if held != nil {
		<-held
	}

	return out, nil
}

func (m *memStore) Get(_ context.Context, key string) (*models.Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.rows[key]
	if !ok {
		return nil, setting.ErrSettingNotFound
	}

	return &models.Setting{Key: key, Value: datatypes.JSON(v)}, nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failKeys[key] {
		return errBackend
	}

	if _, ok := m.rows[key]; !ok {
		return setting.ErrSettingNotFound
	}

	delete(m.rows, key)

	return nil
}

func (m *memStore) Upsert(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.order = append(m.order, key)

	if m.failKeys[key] {
		return errBackend
	}

	m.rows[key] = value

	return nil
}
