package queue

import (
	"context"
	"time"

	"github.com/pkg/errors"
	skafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/lpsgateway/prometheus"
	"github.com/batchcorp/lpsgateway/validate"
)

const (
	DefaultKafkaGroupID = "lpsgateway"
	DefaultKafkaTimeout = 10 * time.Second
)

// Kafka maps each queue name onto a topic. Consumers share a group id so
// every payload is handled once per gateway deployment.
type Kafka struct {
	brokers []string
	groupID string
	writer  *skafka.Writer
	log     *logrus.Entry
}

func NewKafka(cfg *Config) (*Kafka, error) {
	if err := validateKafkaConfig(cfg); err != nil {
		return nil, errors.Wrap(err, "unable to validate kafka config")
	}

	groupID := cfg.KafkaGroupID
	if groupID == "" {
		groupID = DefaultKafkaGroupID
	}

	log := logger(cfg, TypeKafka)

	writer := &skafka.Writer{
		Addr:                   skafka.TCP(cfg.KafkaBrokers...),
		Balancer:               &skafka.LeastBytes{},
		RequiredAcks:           skafka.RequireAll,
		AllowAutoTopicCreation: true,
		WriteTimeout:           DefaultKafkaTimeout,
		ErrorLogger:            skafka.LoggerFunc(log.Errorf),
	}

	return &Kafka{
		brokers: cfg.KafkaBrokers,
		groupID: groupID,
		writer:  writer,
		log:     log,
	}, nil
}

func validateKafkaConfig(cfg *Config) error {
	if cfg == nil {
		return validate.ErrMissingQueueConfig
	}

	if len(cfg.KafkaBrokers) == 0 {
		return validate.ErrMissingAddress
	}

	return nil
}

func (k *Kafka) AddToQueue(ctx context.Context, queueName string, payload interface{}) error {
	if queueName == "" {
		return ErrMissingQueueName
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "unable to marshal payload")
	}

	if err := k.writer.WriteMessages(ctx, skafka.Message{Topic: queueName, Value: data}); err != nil {
		return errors.Wrapf(err, "unable to publish message to topic '%s'", queueName)
	}

	return nil
}

func (k *Kafka) Consume(ctx context.Context, queueName string, handler Handler) error {
	if err := validateConsume(queueName, handler); err != nil {
		return err
	}

	reader := skafka.NewReader(skafka.ReaderConfig{
		Brokers:     k.brokers,
		GroupID:     k.groupID,
		Topic:       queueName,
		MinBytes:    1,
		MaxBytes:    10e6,
		ErrorLogger: skafka.LoggerFunc(k.log.Errorf),
	})
	defer reader.Close()

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				k.log.Debugf("received shutdown signal, consumer for '%s' exiting", queueName)
				return nil
			}

			prometheus.IncrPromCounter(prometheus.LpsGatewayQueueErrors, 1)

			return errors.Wrapf(err, "unable to fetch message from topic '%s'", queueName)
		}

		if err := handler(ctx, msg.Value); err != nil {
			k.log.Errorf("[Topic: %s Offset: %d] handler returned error: %s", queueName, msg.Offset, err)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			k.log.Errorf("[Topic: %s Offset: %d] unable to commit offset: %s", queueName, msg.Offset, err)
		}
	}
}

func (k *Kafka) Close(_ context.Context) error {
	return k.writer.Close()
}
