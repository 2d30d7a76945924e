package validate

import "github.com/pkg/errors"

var (

	// Connection

	ErrMissingDSN         = errors.New("DSN cannot be empty")
	ErrMissingAddress     = errors.New("address cannot be empty")
	ErrInvalidConnTimeout = errors.New("connection timeout must be greater than zero")

	// Message log

	ErrMissingMsgLogConfig = errors.New("message log config cannot be nil")
	ErrMissingMsgLog       = errors.New("message log cannot be nil")

	// Queue

	ErrMissingQueueConfig = errors.New("queue config cannot be nil")
	ErrMissingQueue       = errors.New("queue cannot be nil")

	// Relay

	ErrEmptyRelayConfig       = errors.New("relay config cannot be nil")
	ErrMissingLpsID           = errors.New("lps id cannot be empty")
	ErrMissingListenAddress   = errors.New("listen address cannot be empty")
	ErrInvalidExpiryWindow    = errors.New("transaction expiry window must be greater than zero")
	ErrMissingConn            = errors.New("connection cannot be nil")
	ErrMissingSerializer      = errors.New("serializer cannot be nil")
	ErrMissingTranslator      = errors.New("translator cannot be nil")
	ErrMissingResolver        = errors.New("reversal resolver cannot be nil")
	ErrMissingDispatcher      = errors.New("dispatcher cannot be nil")
	ErrDuplicateLpsID         = errors.New("lps id configured more than once")
	ErrDuplicateListenAddress = errors.New("listen address configured more than once")
)
