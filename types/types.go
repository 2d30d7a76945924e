package types

import (
	"sort"
	"strconv"
)

// Field numbers used by the relay. Anything not listed here is carried
// through untouched.
const (
	FieldMTI                   = 0
	FieldProcessingCode        = 3
	FieldAmount                = 4
	FieldTransmissionDate      = 7
	FieldSTAN                  = 11
	FieldTransactionFee        = 28
	FieldProcessingFee         = 30
	FieldAcquiringInstitution  = 32
	FieldResponseCode          = 39
	FieldTerminalID            = 41
	FieldCardAcceptorID        = 42
	FieldAdditionalData        = 48
	FieldCurrencyCode          = 49
	FieldOriginalDataElements  = 90
	FieldAccountIdentification = 102
	FieldAuthenticationValue   = 103
	FieldPOSDataCode           = 123
)

// LegacyMessage is a decoded wire message: field number -> value. Field 0
// (MTI) is always present on anything produced by a codec.
type LegacyMessage map[int]string

// MTI returns the message type indicator
func (m LegacyMessage) MTI() string {
	return m[FieldMTI]
}

// Field returns the value of a field and whether it was present
func (m LegacyMessage) Field(n int) (string, bool) {
	v, ok := m[n]
	return v, ok
}

// Clone returns a deep copy of the message
func (m LegacyMessage) Clone() LegacyMessage {
	out := make(LegacyMessage, len(m))

	for k, v := range m {
		out[k] = v
	}

	return out
}

// With returns a copy of the message with the given fields overwritten. The
// receiver is never modified.
func (m LegacyMessage) With(overrides map[int]string) LegacyMessage {
	out := m.Clone()

	for k, v := range overrides {
		out[k] = v
	}

	return out
}

// Fields returns the populated field numbers in ascending order
func (m LegacyMessage) Fields() []int {
	fields := make([]int, 0, len(m))

	for k := range m {
		fields = append(fields, k)
	}

	sort.Ints(fields)

	return fields
}

// StringMap converts the message to string keys; used by stores that cannot
// key documents by integers.
func (m LegacyMessage) StringMap() map[string]string {
	out := make(map[string]string, len(m))

	for k, v := range m {
		out[strconv.Itoa(k)] = v
	}

	return out
}

// FromStringMap is the inverse of StringMap. Non-numeric keys are skipped.
func FromStringMap(in map[string]string) LegacyMessage {
	out := make(LegacyMessage, len(in))

	for k, v := range in {
		n, err := strconv.Atoi(k)
		if err != nil {
			continue
		}

		out[n] = v
	}

	return out
}

// LpsKey groups messages from one terminal session: "<lpsId>-<41>-<42>".
// It is not unique and must never be used as a primary key.
func LpsKey(lpsID string, msg LegacyMessage) string {
	return lpsID + "-" + msg[FieldTerminalID] + "-" + msg[FieldCardAcceptorID]
}
