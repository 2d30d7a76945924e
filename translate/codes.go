package translate

import "github.com/batchcorp/lpsgateway/types"

// ResponseCodes are the field 39 values written back to a legacy switch
type ResponseCodes struct {
	Approved           string `json:"approved"`
	InvalidTransaction string `json:"invalid_transaction"`
	NoAction           string `json:"no_action"`
	DoNotHonour        string `json:"do_not_honour"`
	NoIssuer           string `json:"no_issuer"`
}

func DefaultResponseCodes() *ResponseCodes {
	return &ResponseCodes{
		Approved:           "00",
		InvalidTransaction: "N0",
		NoAction:           "21",
		DoNotHonour:        "05",
		NoIssuer:           "15",
	}
}

// WithDefaults fills any empty code from DefaultResponseCodes
func (r *ResponseCodes) WithDefaults() *ResponseCodes {
	d := DefaultResponseCodes()

	if r == nil {
		return d
	}

	out := *r

	for _, pair := range []struct {
		dst *string
		def string
	}{
		{&out.Approved, d.Approved},
		{&out.InvalidTransaction, d.InvalidTransaction},
		{&out.NoAction, d.NoAction},
		{&out.DoNotHonour, d.DoNotHonour},
		{&out.NoIssuer, d.NoIssuer},
	} {
		if *pair.dst == "" {
			*pair.dst = pair.def
		}
	}

	return &out
}

// ResponseCode maps a domain outcome to its legacy code. An empty outcome is
// treated as approved.
func (r *ResponseCodes) ResponseCode(rt types.ResponseType) string {
	switch rt {
	case types.ResponseApproved, "":
		return r.Approved
	case types.ResponseInvalid:
		return r.InvalidTransaction
	case types.ResponseNoPayerFound:
		return r.NoIssuer
	case types.ResponsePayerFSPRejected:
		return r.DoNotHonour
	}

	return r.DoNotHonour
}
