package serializers

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/batchcorp/lpsgateway/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSON encodes a message as a flat JSON object keyed by field number, ie.
// {"0":"0100","41":"001"}. Used by switches fronted by a JSON bridge and by
// the test harness.
type JSON struct{}

func (j *JSON) Decode(data []byte) (types.LegacyMessage, error) {
	raw := make(map[string]string)

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "unable to unmarshal message")
	}

	// Subfield keys like "127.2" would be lost on the way back out
	for k := range raw {
		if n, err := strconv.Atoi(k); err != nil || n < 0 {
			return nil, errors.Wrapf(ErrInvalidFieldKey, "'%s'", k)
		}
	}

	msg := types.FromStringMap(raw)

	if err := validateMessage(msg); err != nil {
		return nil, err
	}

	return msg, nil
}

func (j *JSON) Encode(msg types.LegacyMessage) ([]byte, error) {
	if err := validateMessage(msg); err != nil {
		return nil, err
	}

	data, err := json.Marshal(msg.StringMap())
	if err != nil {
		return nil, errors.Wrap(err, "unable to marshal message")
	}

	return data, nil
}
