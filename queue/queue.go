// Package queue is the work-queue fabric between the relay and the rest of
// the gateway. Payloads are JSON; delivery guarantees are whatever the
// selected backend provides (at-least-once for everything but memory).
package queue

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/lpsgateway/validate"
)

const (
	TypeMemory       = "memory"
	TypeRedisStreams = "redis-streams"
	TypeKafka        = "kafka"
	TypeRabbitMQ     = "rabbitmq"
)

var (
	ErrMissingQueueName = errors.New("queue name cannot be empty")
	ErrMissingHandler   = errors.New("handler cannot be nil")
	ErrUnsupportedType  = errors.New("unsupported queue type")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Handler processes a single payload. Returning an error does not cause a
// redelivery from this layer; the message is acknowledged either way.
type Handler func(ctx context.Context, payload []byte) error

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . IQueue
type IQueue interface {
	// AddToQueue serializes payload and places it on the named queue
	AddToQueue(ctx context.Context, queueName string, payload interface{}) error

	// Consume delivers payloads from the named queue to handler one at a
	// time, in queue order. It blocks until ctx is cancelled.
	Consume(ctx context.Context, queueName string, handler Handler) error

	Close(ctx context.Context) error
}

type Config struct {
	Type string

	MemoryBufferSize int

	RedisAddress              string
	RedisPassword             string
	RedisDatabase             int
	RedisStreamsConsumerGroup string
	RedisStreamsConsumerName  string

	KafkaBrokers []string
	KafkaGroupID string

	RabbitURL      string
	RabbitPrefetch int

	Log *logrus.Entry
}

// New returns the queue backend selected by cfg.Type
func New(cfg *Config) (IQueue, error) {
	if cfg == nil {
		return nil, validate.ErrMissingQueueConfig
	}

	switch cfg.Type {
	case TypeMemory, "":
		return NewMemory(cfg), nil
	case TypeRedisStreams:
		return NewRedisStreams(cfg)
	case TypeKafka:
		return NewKafka(cfg)
	case TypeRabbitMQ:
		return NewRabbitMQ(cfg)
	}

	return nil, errors.Wrapf(ErrUnsupportedType, "'%s'", cfg.Type)
}

func validateConsume(queueName string, handler Handler) error {
	if queueName == "" {
		return ErrMissingQueueName
	}

	if handler == nil {
		return ErrMissingHandler
	}

	return nil
}

func logger(cfg *Config, backend string) *logrus.Entry {
	log := cfg.Log
	if log == nil {
		log = logrus.WithField("pkg", "queue")
	}

	return log.WithField("backend", backend)
}
