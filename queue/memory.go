package queue

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const DefaultMemoryBufferSize = 1000

// Memory is a process-local queue backed by buffered channels. Competing
// consumers on the same name each receive a disjoint subset of payloads.
type Memory struct {
	bufferSize int
	queues     map[string]chan []byte
	mtx        *sync.Mutex
	log        *logrus.Entry
}

func NewMemory(cfg *Config) *Memory {
	size := cfg.MemoryBufferSize
	if size <= 0 {
		size = DefaultMemoryBufferSize
	}

	return &Memory{
		bufferSize: size,
		queues:     make(map[string]chan []byte),
		mtx:        &sync.Mutex{},
		log:        logger(cfg, TypeMemory),
	}
}

func (m *Memory) queue(name string) chan []byte {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	q, ok := m.queues[name]
	if !ok {
		q = make(chan []byte, m.bufferSize)
		m.queues[name] = q
	}

	return q
}

func (m *Memory) AddToQueue(ctx context.Context, queueName string, payload interface{}) error {
	if queueName == "" {
		return ErrMissingQueueName
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "unable to marshal payload")
	}

	select {
	case m.queue(queueName) <- data:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Memory) Consume(ctx context.Context, queueName string, handler Handler) error {
	if err := validateConsume(queueName, handler); err != nil {
		return err
	}

	q := m.queue(queueName)

	for {
		select {
		case <-ctx.Done():
			m.log.Debugf("consumer for '%s' exiting", queueName)
			return nil
		case data := <-q:
			if err := handler(ctx, data); err != nil {
				m.log.Errorf("handler for '%s' returned error: %s", queueName, err)
			}
		}
	}
}

// Len returns the number of payloads waiting on a queue
func (m *Memory) Len(queueName string) int {
	return len(m.queue(queueName))
}

func (m *Memory) Close(_ context.Context) error {
	return nil
}
