// Package serializers turns raw wire bytes into LegacyMessage field maps and
// back. The relay only depends on the ISerializer interface so a real ISO 8583
// packager can be swapped in without touching session code.
package serializers

import (
	"github.com/pkg/errors"

	"github.com/batchcorp/lpsgateway/types"
)

var (
	ErrMissingMTI      = errors.New("decoded message is missing field 0 (mti)")
	ErrInvalidMTI      = errors.New("mti must be 4 characters")
	ErrInvalidFieldKey = errors.New("field key must be a non-negative integer")
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . ISerializer
type ISerializer interface {
	// Decode must be the inverse of Encode for any message the relay produces
	Decode(data []byte) (types.LegacyMessage, error)
	Encode(msg types.LegacyMessage) ([]byte, error)
}

func validateMessage(msg types.LegacyMessage) error {
	mti, ok := msg[types.FieldMTI]
	if !ok {
		return ErrMissingMTI
	}

	if len(mti) != 4 {
		return ErrInvalidMTI
	}

	return nil
}
