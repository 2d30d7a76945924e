package types

import "github.com/pkg/errors"

var (
	ErrUnrecognizedMessageType       = errors.New("unrecognized message type")
	ErrInvalidProcessingCode         = errors.New("legacy authorization request processing code not valid")
	ErrReversalCorrelationNotFound   = errors.New("unable to find original message for reversal")
	ErrMalformedOriginalDataElements = errors.New("original data elements field is malformed")
	ErrPersistence                   = errors.New("unable to persist message")
	ErrDispatch                      = errors.New("unable to dispatch to queue")
	ErrSocketUnavailable             = errors.New("no live connection for lps")
)
