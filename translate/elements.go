package translate

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/batchcorp/lpsgateway/types"
)

// Fixed offsets within field 90
const (
	odeMTIEnd         = 4
	odeSTANEnd        = 10
	odeDateEnd        = 20
	odeInstitutionEnd = 31
)

// OriginalDataElements identify the request a reversal refers to
type OriginalDataElements struct {
	MTI  string
	STAN string
	Date string

	// InstitutionID has leading zeros stripped; empty acts as a wildcard
	InstitutionID string
}

// ParseOriginalDataElements splits field 90 into its sub-fields. The
// institution id segment may be short or absent.
func ParseOriginalDataElements(msg types.LegacyMessage) (*OriginalDataElements, error) {
	raw, ok := msg.Field(types.FieldOriginalDataElements)
	if !ok {
		return nil, errors.Wrap(types.ErrMalformedOriginalDataElements, "field 90 missing")
	}

	if len(raw) < odeDateEnd {
		return nil, errors.Wrapf(types.ErrMalformedOriginalDataElements, "field 90 '%s' shorter than %d characters", raw, odeDateEnd)
	}

	institution := raw[odeDateEnd:]
	if len(institution) > odeInstitutionEnd-odeDateEnd {
		institution = institution[:odeInstitutionEnd-odeDateEnd]
	}

	return &OriginalDataElements{
		MTI:           raw[:odeMTIEnd],
		STAN:          raw[odeMTIEnd:odeSTANEnd],
		Date:          raw[odeSTANEnd:odeDateEnd],
		InstitutionID: strings.TrimLeft(strings.TrimSpace(institution), "0"),
	}, nil
}
