package relay

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/lpsgateway/msglog"
	"github.com/batchcorp/lpsgateway/prometheus"
	"github.com/batchcorp/lpsgateway/types"
)

// handleFrame processes one inbound frame. Every failure is logged and
// contained here; nothing returned from this path may end the session.
func (s *Session) handleFrame(ctx context.Context, data []byte) {
	msg, err := s.serializer.Decode(data)
	if err != nil {
		prometheus.IncrPromCounter(prometheus.LpsGatewayDecodeErrors, 1)
		s.log.Errorf("unable to decode frame (%d bytes): %s", len(data), err)

		return
	}

	category, err := types.Classify(msg.MTI())
	if err != nil {
		prometheus.IncrPromCounter(prometheus.LpsGatewayUnrecognizedMessages, 1)
		s.log.Warningf("dropping message: %s", err)

		return
	}

	lpsKey := types.LpsKey(s.LpsID, msg)

	llog := s.log.WithFields(logrus.Fields{
		"lps_key":  lpsKey,
		"category": category,
	})

	prometheus.IncrPromVecCounter(prometheus.LpsGatewayMessagesReceived, s.LpsID, string(category))
	prometheus.Incr(s.LpsID+"-"+string(category), 1)

	entry, err := s.msgLog.Append(ctx, s.LpsID, lpsKey, category, msg)
	if err != nil {
		prometheus.IncrPromCounter(prometheus.LpsGatewayPersistenceErrors, 1)
		llog.Errorf("unable to persist message: %s", err)

		return
	}

	llog = llog.WithField("entry_id", entry.ID)
	llog.Debug("persisted message")

	switch category {
	case types.AuthorizationRequest:
		err = s.handleAuthorizationRequest(ctx, entry)
	case types.FinancialRequest:
		err = s.handleFinancialRequest(ctx, entry)
	case types.ReversalRequest:
		err = s.handleReversalRequest(ctx, entry)
	}

	if err != nil {
		llog.Errorf("unable to handle message: %s", err)
	}
}

func (s *Session) handleAuthorizationRequest(ctx context.Context, entry *msglog.Entry) error {
	req, err := s.translator.AuthorizationRequest(entry.ID, entry.Content)
	if err != nil {
		prometheus.IncrPromCounter(prometheus.LpsGatewayTranslationErrors, 1)
		return errors.Wrap(err, "unable to map authorization request")
	}

	return s.dispatcher.AuthorizationRequest(ctx, req)
}

func (s *Session) handleFinancialRequest(ctx context.Context, entry *msglog.Entry) error {
	req, err := s.translator.FinancialRequest(entry.ID, entry.Content)
	if err != nil {
		prometheus.IncrPromCounter(prometheus.LpsGatewayTranslationErrors, 1)
		return errors.Wrap(err, "unable to map financial request")
	}

	return s.dispatcher.FinancialRequest(ctx, req)
}

// handleReversalRequest answers every reversal immediately: an ACK once the
// original request is found, a NAK otherwise. Only resolved reversals are
// dispatched.
func (s *Session) handleReversalRequest(ctx context.Context, entry *msglog.Entry) error {
	original, err := s.resolver.Resolve(ctx, entry.Content)
	if err != nil {
		prometheus.IncrPromCounter(prometheus.LpsGatewayReversalRejections, 1)

		if werr := s.write(s.translator.ReversalAcknowledgement(entry.Content, false)); werr != nil {
			s.log.Errorf("unable to write reversal NAK for '%s': %s", entry.ID, werr)
		}

		return errors.Wrap(err, "unable to resolve reversal")
	}

	if err := s.write(s.translator.ReversalAcknowledgement(entry.Content, true)); err != nil {
		s.log.Errorf("unable to write reversal ACK for '%s': %s", entry.ID, err)
	}

	return s.dispatcher.ReversalRequest(ctx, s.translator.ReversalRequest(entry.ID, original.ID, entry.Content))
}
