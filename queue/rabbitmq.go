package queue

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"github.com/batchcorp/lpsgateway/validate"
)

const DefaultRabbitPrefetch = 1

var ErrDeliveryChannelClosed = errors.New("rabbitmq delivery channel closed")

// RabbitMQ publishes to durable queues named after the queue name via the
// default exchange.
type RabbitMQ struct {
	conn     *amqp.Connection
	pubCh    *amqp.Channel
	pubMtx   *sync.Mutex
	declared map[string]struct{}
	prefetch int
	log      *logrus.Entry
}

func NewRabbitMQ(cfg *Config) (*RabbitMQ, error) {
	if cfg == nil {
		return nil, validate.ErrMissingQueueConfig
	}

	if cfg.RabbitURL == "" {
		return nil, validate.ErrMissingAddress
	}

	conn, err := amqp.Dial(cfg.RabbitURL)
	if err != nil {
		return nil, errors.Wrap(err, "unable to dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "unable to open rabbitmq channel")
	}

	prefetch := cfg.RabbitPrefetch
	if prefetch <= 0 {
		prefetch = DefaultRabbitPrefetch
	}

	return &RabbitMQ{
		conn:     conn,
		pubCh:    ch,
		pubMtx:   &sync.Mutex{},
		declared: make(map[string]struct{}),
		prefetch: prefetch,
		log:      logger(cfg, TypeRabbitMQ),
	}, nil
}

func declare(ch *amqp.Channel, queueName string) error {
	_, err := ch.QueueDeclare(queueName, true, false, false, false, nil)
	return err
}

func (r *RabbitMQ) AddToQueue(_ context.Context, queueName string, payload interface{}) error {
	if queueName == "" {
		return ErrMissingQueueName
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "unable to marshal payload")
	}

	r.pubMtx.Lock()
	defer r.pubMtx.Unlock()

	if _, ok := r.declared[queueName]; !ok {
		if err := declare(r.pubCh, queueName); err != nil {
			return errors.Wrapf(err, "unable to declare queue '%s'", queueName)
		}

		r.declared[queueName] = struct{}{}
	}

	err = r.pubCh.Publish("", queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         data,
	})
	if err != nil {
		return errors.Wrapf(err, "unable to publish to queue '%s'", queueName)
	}

	return nil
}

func (r *RabbitMQ) Consume(ctx context.Context, queueName string, handler Handler) error {
	if err := validateConsume(queueName, handler); err != nil {
		return err
	}

	ch, err := r.conn.Channel()
	if err != nil {
		return errors.Wrap(err, "unable to open consumer channel")
	}
	defer ch.Close()

	if err := declare(ch, queueName); err != nil {
		return errors.Wrapf(err, "unable to declare queue '%s'", queueName)
	}

	if err := ch.Qos(r.prefetch, 0, false); err != nil {
		return errors.Wrap(err, "unable to set qos")
	}

	deliveries, err := ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return errors.Wrapf(err, "unable to consume from '%s'", queueName)
	}

	for {
		select {
		case <-ctx.Done():
			r.log.Debugf("received shutdown signal, consumer for '%s' exiting", queueName)
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return ErrDeliveryChannelClosed
			}

			if err := handler(ctx, d.Body); err != nil {
				r.log.Errorf("[Queue: %s Tag: %d] handler returned error: %s", queueName, d.DeliveryTag, err)
			}

			if err := d.Ack(false); err != nil {
				r.log.Errorf("[Queue: %s Tag: %d] unable to ack: %s", queueName, d.DeliveryTag, err)
			}
		}
	}
}

func (r *RabbitMQ) Close(_ context.Context) error {
	r.pubMtx.Lock()
	defer r.pubMtx.Unlock()

	if err := r.pubCh.Close(); err != nil {
		r.log.Warningf("unable to close publish channel: %s", err)
	}

	return r.conn.Close()
}
