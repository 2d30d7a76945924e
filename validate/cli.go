// Package validate contains various validation functions
package validate

import (
	"github.com/pkg/errors"

	"github.com/batchcorp/lpsgateway/options"
)

var (
	ErrMissingCLIOptions = errors.New("cli options cannot be nil")
)

func ServeOptionsForCLI(serveOpts *options.ServeOptions) error {
	if serveOpts == nil {
		return ErrMissingCLIOptions
	}

	// A config file replaces the single-relay flags
	if serveOpts.ConfigFile == "" {
		if serveOpts.LpsID == "" {
			return ErrMissingLpsID
		}

		if serveOpts.ListenAddress == "" {
			return ErrMissingListenAddress
		}
	}

	if serveOpts.TransactionExpiryWindow <= 0 {
		return ErrInvalidExpiryWindow
	}

	if err := msgLogOptionsForCLI(serveOpts); err != nil {
		return errors.Wrap(err, "invalid message log options")
	}

	if err := queueOptionsForCLI(serveOpts); err != nil {
		return errors.Wrap(err, "invalid queue options")
	}

	return nil
}

func msgLogOptionsForCLI(serveOpts *options.ServeOptions) error {
	switch serveOpts.MsgLogType {
	case "redis":
		if serveOpts.RedisAddress == "" {
			return errors.Wrap(ErrMissingAddress, "--redis-address required when --msglog-type is 'redis'")
		}
	case "postgres":
		if serveOpts.PostgresDSN == "" {
			return errors.Wrap(ErrMissingDSN, "--postgres-dsn required when --msglog-type is 'postgres'")
		}
	case "mongo":
		if serveOpts.MongoDSN == "" {
			return errors.Wrap(ErrMissingDSN, "--mongo-dsn required when --msglog-type is 'mongo'")
		}
	}

	return nil
}

func queueOptionsForCLI(serveOpts *options.ServeOptions) error {
	switch serveOpts.QueueType {
	case "redis-streams":
		if serveOpts.RedisAddress == "" {
			return errors.Wrap(ErrMissingAddress, "--redis-address required when --queue-type is 'redis-streams'")
		}
	case "kafka":
		if len(serveOpts.KafkaBrokers) == 0 {
			return errors.Wrap(ErrMissingAddress, "--kafka-brokers required when --queue-type is 'kafka'")
		}
	case "rabbitmq":
		if serveOpts.RabbitURL == "" {
			return errors.Wrap(ErrMissingAddress, "--rabbit-url required when --queue-type is 'rabbitmq'")
		}
	}

	return nil
}
