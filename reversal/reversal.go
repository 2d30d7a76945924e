// Package reversal locates the message log entry a reversal advice refers to.
// Correlation is by content (MTI, date, STAN and optionally the acquiring
// institution) because reversals carry no reference to the original entry id.
package reversal

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/lpsgateway/msglog"
	"github.com/batchcorp/lpsgateway/translate"
	"github.com/batchcorp/lpsgateway/types"
	"github.com/batchcorp/lpsgateway/validate"
)

type Resolver struct {
	msgLog msglog.IMessageLog
	log    *logrus.Entry
}

func New(msgLog msglog.IMessageLog, log *logrus.Entry) (*Resolver, error) {
	if msgLog == nil {
		return nil, validate.ErrMissingMsgLog
	}

	if log == nil {
		log = logrus.WithField("pkg", "reversal")
	}

	return &Resolver{
		msgLog: msgLog,
		log:    log,
	}, nil
}

// Predicates builds the message log query for a set of original data
// elements. An empty institution id is a wildcard and adds no predicate.
func Predicates(ode *translate.OriginalDataElements) []msglog.Predicate {
	predicates := []msglog.Predicate{
		{Field: types.FieldMTI, Value: ode.MTI},
		{Field: types.FieldTransmissionDate, Value: ode.Date},
		{Field: types.FieldSTAN, Value: ode.STAN},
	}

	if ode.InstitutionID != "" {
		predicates = append(predicates, msglog.Predicate{
			Field:              types.FieldAcquiringInstitution,
			Value:              ode.InstitutionID,
			IgnoreLeadingZeros: true,
		})
	}

	return predicates
}

// Resolve returns the logged request reversed by msg. When more than one
// entry matches, the most recent wins.
func (r *Resolver) Resolve(ctx context.Context, msg types.LegacyMessage) (*msglog.Entry, error) {
	ode, err := translate.ParseOriginalDataElements(msg)
	if err != nil {
		return nil, err
	}

	r.log.Debugf("resolving reversal: mti=%s stan=%s date=%s institution=%q",
		ode.MTI, ode.STAN, ode.Date, ode.InstitutionID)

	entry, err := r.msgLog.FindByContent(ctx, Predicates(ode)...)
	if err != nil {
		if errors.Is(err, msglog.ErrNotFound) {
			return nil, errors.Wrapf(types.ErrReversalCorrelationNotFound,
				"mti=%s stan=%s date=%s institution=%q", ode.MTI, ode.STAN, ode.Date, ode.InstitutionID)
		}

		return nil, errors.Wrap(err, "unable to query message log")
	}

	return entry, nil
}
