package msglog

import (
	"context"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/lpsgateway/types"
)

// Memory is a process-local message log. Entries are lost on restart; use it
// for development and tests.
type Memory struct {
	entries map[string]*Entry
	order   []string
	index   map[string][]string
	mtx     *sync.RWMutex
	log     *logrus.Entry
}

func NewMemory(log *logrus.Entry) *Memory {
	if log == nil {
		log = logrus.WithField("pkg", "msglog")
	}

	return &Memory{
		entries: make(map[string]*Entry),
		order:   make([]string, 0),
		index:   make(map[string][]string),
		mtx:     &sync.RWMutex{},
		log:     log.WithField("backend", TypeMemory),
	}
}

func (m *Memory) Append(_ context.Context, lpsID, lpsKey string, category types.Category, content types.LegacyMessage) (*Entry, error) {
	if err := validateAppend(lpsID, content); err != nil {
		return nil, persistenceError(err)
	}

	e := &Entry{
		ID:        uuid.NewV4().String(),
		LpsID:     lpsID,
		LpsKey:    lpsKey,
		Category:  category,
		Content:   content.Clone(),
		CreatedAt: time.Now().UTC(),
	}

	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.entries[e.ID] = e
	m.order = append(m.order, e.ID)

	key := contentIndexKey(e.Content)
	m.index[key] = append(m.index[key], e.ID)

	return copyEntry(e), nil
}

func (m *Memory) Get(_ context.Context, id string) (*Entry, error) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	e, ok := m.entries[id]
	if !ok {
		return nil, ErrNotFound
	}

	return copyEntry(e), nil
}

func (m *Memory) FindByContent(_ context.Context, predicates ...Predicate) (*Entry, error) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	candidates := m.order

	if key := indexKey(predicates...); key != "" {
		candidates = m.index[key]
	}

	// Newest first
	for i := len(candidates) - 1; i >= 0; i-- {
		e := m.entries[candidates[i]]

		if Matches(e.Content, predicates...) {
			return copyEntry(e), nil
		}
	}

	return nil, ErrNotFound
}

func (m *Memory) Close(_ context.Context) error {
	return nil
}

func copyEntry(e *Entry) *Entry {
	out := *e
	out.Content = e.Content.Clone()

	return &out
}
