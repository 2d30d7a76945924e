package relay

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/relistan/go-director"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/lpsgateway/dispatch"
	"github.com/batchcorp/lpsgateway/msglog"
	"github.com/batchcorp/lpsgateway/prometheus"
	"github.com/batchcorp/lpsgateway/queue"
	"github.com/batchcorp/lpsgateway/types"
)

var errWorkerStopped = errors.New("worker stopped")

// Worker binds to a single response queue and delivers each payload to its
// session. Delivery failures are logged and the payload is considered
// handled.
type Worker struct {
	QueueName string

	queue   queue.IQueue
	deliver queue.Handler
	looper  director.Looper
	backoff BackoffPolicy
	log     *logrus.Entry
}

func newWorker(queueName string, q queue.IQueue, deliver queue.Handler, log *logrus.Entry) (*Worker, error) {
	if queueName == "" {
		return nil, queue.ErrMissingQueueName
	}

	if deliver == nil {
		return nil, queue.ErrMissingHandler
	}

	return &Worker{
		QueueName: queueName,
		queue:     q,
		deliver:   deliver,
		looper:    director.NewFreeLooper(director.FOREVER, make(chan error, 1)),
		backoff:   ConsumeRetryPolicy,
		log:       log.WithField("queue", queueName),
	}, nil
}

// Run consumes until ctx is cancelled, rebinding after consumer failures
func (w *Worker) Run(ctx context.Context) {
	w.log.Debug("response worker started")

	var failures int

	w.looper.Loop(func() error {
		started := time.Now()
		err := w.queue.Consume(ctx, w.QueueName, w.handle)

		if ctx.Err() != nil {
			return errWorkerStopped
		}

		// A consumer that stayed up for a while starts the policy over
		if time.Since(started) > w.backoff.Duration(len(w.backoff.Intervals)) {
			failures = 0
		}

		wait := w.backoff.Duration(failures)
		failures++

		if err != nil {
			prometheus.IncrPromCounter(prometheus.LpsGatewayQueueErrors, 1)
			w.log.Errorf("consumer exited: %s (retrying in %s)", err, wait)
		} else {
			w.log.Warningf("consumer exited without error (retrying in %s)", wait)
		}

		select {
		case <-ctx.Done():
			return errWorkerStopped
		case <-time.After(wait):
		}

		return nil
	})

	w.log.Debug("response worker exiting")
}

func (w *Worker) handle(ctx context.Context, payload []byte) error {
	if err := w.deliver(ctx, payload); err != nil {
		prometheus.IncrPromCounter(prometheus.LpsGatewayDeliveryErrors, 1)
		w.log.Errorf("unable to deliver response: %s", err)

		return nil
	}

	prometheus.IncrPromCounter(prometheus.LpsGatewayResponsesDelivered, 1)

	return nil
}

func (s *Session) newWorkers() ([]*Worker, error) {
	auth, err := newWorker(dispatch.QueueName(s.LpsID, dispatch.AuthorizationResponses), s.queue, s.deliverAuthorizationResponse, s.log)
	if err != nil {
		return nil, err
	}

	financial, err := newWorker(dispatch.QueueName(s.LpsID, dispatch.FinancialResponses), s.queue, s.deliverFinancialResponse, s.log)
	if err != nil {
		return nil, err
	}

	return []*Worker{auth, financial}, nil
}

func (s *Session) deliverAuthorizationResponse(ctx context.Context, payload []byte) error {
	resp := &types.AuthorizationResponseMessage{}

	if err := json.Unmarshal(payload, resp); err != nil {
		return errors.Wrap(err, "unable to unmarshal authorization response")
	}

	original, err := s.loadOriginal(ctx, resp.LpsAuthorizationRequestMessageID, types.AuthorizationRequest)
	if err != nil {
		return errors.Wrapf(err, "unable to load authorization request '%s'", resp.LpsAuthorizationRequestMessageID)
	}

	msg, err := s.translator.AuthorizationResponse(original.Content, resp)
	if err != nil {
		prometheus.IncrPromCounter(prometheus.LpsGatewayTranslationErrors, 1)
		return errors.Wrap(err, "unable to map authorization response")
	}

	return s.write(msg)
}

func (s *Session) deliverFinancialResponse(ctx context.Context, payload []byte) error {
	resp := &types.FinancialResponseMessage{}

	if err := json.Unmarshal(payload, resp); err != nil {
		return errors.Wrap(err, "unable to unmarshal financial response")
	}

	original, err := s.loadOriginal(ctx, resp.LpsFinancialRequestMessageID, types.FinancialRequest)
	if err != nil {
		return errors.Wrapf(err, "unable to load financial request '%s'", resp.LpsFinancialRequestMessageID)
	}

	msg, err := s.translator.FinancialResponse(original.Content, resp)
	if err != nil {
		prometheus.IncrPromCounter(prometheus.LpsGatewayTranslationErrors, 1)
		return errors.Wrap(err, "unable to map financial response")
	}

	return s.write(msg)
}

// loadOriginal fetches the request a response answers. Only entries received
// by this lps with the expected category may be echoed onto this socket.
func (s *Session) loadOriginal(ctx context.Context, id string, category types.Category) (*msglog.Entry, error) {
	original, err := s.msgLog.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if original.LpsID != s.LpsID {
		return nil, errors.Wrapf(ErrForeignEntry, "entry lps '%s'", original.LpsID)
	}

	if original.Category != category {
		return nil, errors.Wrapf(ErrUnexpectedCategory, "got '%s', want '%s'", original.Category, category)
	}

	return original, nil
}
