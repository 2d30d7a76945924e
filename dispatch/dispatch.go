// Package dispatch places domain records on their lps-scoped work queues.
// It is the only place queue names are derived.
package dispatch

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/lpsgateway/prometheus"
	"github.com/batchcorp/lpsgateway/queue"
	"github.com/batchcorp/lpsgateway/types"
	"github.com/batchcorp/lpsgateway/validate"
)

const (
	AuthorizationRequests  = "AuthorizationRequests"
	FinancialRequests      = "FinancialRequests"
	ReversalRequests       = "ReversalRequests"
	AuthorizationResponses = "AuthorizationResponses"
	FinancialResponses     = "FinancialResponses"
)

// QueueName is "<lpsId><suffix>", e.g. "lps1AuthorizationResponses"
func QueueName(lpsID, suffix string) string {
	return lpsID + suffix
}

// RequestQueue returns the outbound queue for a request category
func RequestQueue(lpsID string, category types.Category) (string, error) {
	switch category {
	case types.AuthorizationRequest:
		return QueueName(lpsID, AuthorizationRequests), nil
	case types.FinancialRequest:
		return QueueName(lpsID, FinancialRequests), nil
	case types.ReversalRequest:
		return QueueName(lpsID, ReversalRequests), nil
	}

	return "", errors.Wrapf(types.ErrUnrecognizedMessageType, "no request queue for category '%s'", category)
}

type Dispatcher struct {
	queue queue.IQueue
	log   *logrus.Entry
}

func New(q queue.IQueue, log *logrus.Entry) (*Dispatcher, error) {
	if q == nil {
		return nil, validate.ErrMissingQueue
	}

	if log == nil {
		log = logrus.WithField("pkg", "dispatch")
	}

	return &Dispatcher{
		queue: q,
		log:   log,
	}, nil
}

func (d *Dispatcher) AuthorizationRequest(ctx context.Context, req *types.AuthorizationRequestMessage) error {
	return d.request(ctx, req.LpsID, types.AuthorizationRequest, req)
}

func (d *Dispatcher) FinancialRequest(ctx context.Context, req *types.FinancialRequestMessage) error {
	return d.request(ctx, req.LpsID, types.FinancialRequest, req)
}

func (d *Dispatcher) ReversalRequest(ctx context.Context, req *types.ReversalRequestMessage) error {
	return d.request(ctx, req.LpsID, types.ReversalRequest, req)
}

func (d *Dispatcher) request(ctx context.Context, lpsID string, category types.Category, payload interface{}) error {
	queueName, err := RequestQueue(lpsID, category)
	if err != nil {
		return err
	}

	return d.enqueue(ctx, queueName, payload)
}

// EnqueueAuthorizationResponse accepts a completed authorization from the
// upstream side and queues it for delivery to lpsID's session.
func (d *Dispatcher) EnqueueAuthorizationResponse(ctx context.Context, lpsID string, resp *types.AuthorizationResponseMessage) error {
	if lpsID == "" {
		return validate.ErrMissingLpsID
	}

	if resp == nil || resp.LpsAuthorizationRequestMessageID == "" {
		return errors.New("authorization response must reference a request message id")
	}

	return d.enqueue(ctx, QueueName(lpsID, AuthorizationResponses), resp)
}

// EnqueueFinancialResponse is the financial counterpart of EnqueueAuthorizationResponse
func (d *Dispatcher) EnqueueFinancialResponse(ctx context.Context, lpsID string, resp *types.FinancialResponseMessage) error {
	if lpsID == "" {
		return validate.ErrMissingLpsID
	}

	if resp == nil || resp.LpsFinancialRequestMessageID == "" {
		return errors.New("financial response must reference a request message id")
	}

	return d.enqueue(ctx, QueueName(lpsID, FinancialResponses), resp)
}

func (d *Dispatcher) enqueue(ctx context.Context, queueName string, payload interface{}) error {
	if err := d.queue.AddToQueue(ctx, queueName, payload); err != nil {
		prometheus.IncrPromCounter(prometheus.LpsGatewayDispatchErrors, 1)
		return errors.Wrapf(types.ErrDispatch, "queue '%s': %s", queueName, err)
	}

	d.log.Debugf("enqueued message on '%s'", queueName)

	return nil
}
