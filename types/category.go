package types

import (
	"fmt"

	"github.com/pkg/errors"
)

// Category is the closed set of inbound message kinds the relay understands
type Category string

const (
	AuthorizationRequest Category = "authorizationRequest"
	FinancialRequest     Category = "financialRequest"
	ReversalRequest      Category = "reversalRequest"
	Unrecognized         Category = "unrecognized"
)

var categories = map[string]Category{
	"0100": AuthorizationRequest,
	"0200": FinancialRequest,
	"0420": ReversalRequest,
}

// Classify maps an MTI to its category. Unknown MTIs return Unrecognized
// together with ErrUnrecognizedMessageType.
func Classify(mti string) (Category, error) {
	c, ok := categories[mti]
	if !ok {
		return Unrecognized, errors.Wrapf(ErrUnrecognizedMessageType, "mti '%s'", mti)
	}

	return c, nil
}

// ResponseMTI applies the request->response convention of bumping the
// function digit: 0100 -> 0110, 0200 -> 0210, 0420 -> 0430.
func ResponseMTI(mti string) (string, error) {
	if len(mti) != 4 {
		return "", fmt.Errorf("mti '%s' must be 4 characters", mti)
	}

	fn := mti[2]
	if fn < '0' || fn > '8' || fn%2 != 0 {
		return "", fmt.Errorf("mti '%s' is not a request", mti)
	}

	return mti[:2] + string(fn+1) + mti[3:], nil
}
