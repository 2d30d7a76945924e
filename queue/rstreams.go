package queue

import (
	"context"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/lpsgateway/prometheus"
	"github.com/batchcorp/lpsgateway/validate"
)

const (
	// PayloadKey is the stream entry field holding the JSON payload
	PayloadKey = "payload"

	DefaultConsumerGroup = "lpsgateway"
	DefaultConsumerName  = "lpsgateway-1"

	// RetryReadInterval determines how long to wait before retrying a read, after an error has occurred
	RetryReadInterval = 5 * time.Second

	// ReadBlockInterval bounds each XREADGROUP call so cancellation is noticed
	ReadBlockInterval = time.Second
)

var ErrMissingPayload = errors.New("stream entry has no payload field")

// RedisStreams uses one stream per queue name and a shared consumer group so
// that every payload is handled by exactly one consumer.
type RedisStreams struct {
	client        *redis.Client
	consumerGroup string
	consumerName  string
	log           *logrus.Entry
}

func NewRedisStreams(cfg *Config) (*RedisStreams, error) {
	if err := validateRedisStreamsConfig(cfg); err != nil {
		return nil, errors.Wrap(err, "unable to validate redis-streams config")
	}

	group := cfg.RedisStreamsConsumerGroup
	if group == "" {
		group = DefaultConsumerGroup
	}

	name := cfg.RedisStreamsConsumerName
	if name == "" {
		name = DefaultConsumerName
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDatabase,
	})

	return &RedisStreams{
		client:        client,
		consumerGroup: group,
		consumerName:  name,
		log:           logger(cfg, TypeRedisStreams),
	}, nil
}

func validateRedisStreamsConfig(cfg *Config) error {
	if cfg == nil {
		return validate.ErrMissingQueueConfig
	}

	if cfg.RedisAddress == "" {
		return validate.ErrMissingAddress
	}

	return nil
}

func (r *RedisStreams) AddToQueue(ctx context.Context, queueName string, payload interface{}) error {
	if queueName == "" {
		return ErrMissingQueueName
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "unable to marshal payload")
	}

	_, err = r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: queueName,
		Values: map[string]interface{}{
			PayloadKey: data,
		},
	}).Result()
	if err != nil {
		return errors.Wrapf(err, "unable to write message to stream '%s'", queueName)
	}

	return nil
}

func (r *RedisStreams) Consume(ctx context.Context, queueName string, handler Handler) error {
	if err := validateConsume(queueName, handler); err != nil {
		return err
	}

	if err := r.ensureGroup(ctx, queueName); err != nil {
		return errors.Wrapf(err, "unable to create consumer group for '%s'", queueName)
	}

	for {
		streams, err := r.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    r.consumerGroup,
			Consumer: r.consumerName,
			Streams:  []string{queueName, ">"},
			Count:    1,
			Block:    ReadBlockInterval,
		}).Result()

		if ctx.Err() != nil {
			r.log.Debugf("received shutdown signal, consumer for '%s' exiting", queueName)
			return nil
		}

		if err != nil {
			if err == redis.Nil {
				continue
			}

			prometheus.IncrPromCounter(prometheus.LpsGatewayQueueErrors, 1)

			r.log.Errorf("unable to read message(s) from '%s': %s (retrying in %s)", queueName, err, RetryReadInterval)

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(RetryReadInterval):
			}

			continue
		}

		for _, stream := range streams {
			for _, message := range stream.Messages {
				r.handle(ctx, stream.Stream, message, handler)
			}
		}
	}
}

func (r *RedisStreams) handle(ctx context.Context, stream string, message redis.XMessage, handler Handler) {
	defer func() {
		if err := r.client.XAck(ctx, stream, r.consumerGroup, message.ID).Err(); err != nil {
			r.log.Errorf("[ID: %s Stream: %s] unable to ack message: %s", message.ID, stream, err)
		}
	}()

	data, ok := message.Values[PayloadKey].(string)
	if !ok {
		r.log.Errorf("[ID: %s Stream: %s] %s; skipping", message.ID, stream, ErrMissingPayload)
		return
	}

	if err := handler(ctx, []byte(data)); err != nil {
		r.log.Errorf("[ID: %s Stream: %s] handler returned error: %s", message.ID, stream, err)
	}
}

func (r *RedisStreams) ensureGroup(ctx context.Context, stream string) error {
	err := r.client.XGroupCreateMkStream(ctx, stream, r.consumerGroup, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}

	return nil
}

func (r *RedisStreams) Close(_ context.Context) error {
	return r.client.Close()
}
