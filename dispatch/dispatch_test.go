package dispatch

import (
	"context"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/batchcorp/lpsgateway/queue/queuefakes"
	"github.com/batchcorp/lpsgateway/types"
)

var _ = Describe("Dispatcher", func() {
	var (
		ctx       = context.Background()
		fakeQueue *queuefakes.FakeIQueue
		d         *Dispatcher
	)

	BeforeEach(func() {
		var err error

		fakeQueue = &queuefakes.FakeIQueue{}

		d, err = New(fakeQueue, nil)
		Expect(err).ToNot(HaveOccurred())
	})

	It("requires a queue", func() {
		_, err := New(nil, nil)
		Expect(err).To(HaveOccurred())
	})

	Context("queue names", func() {
		It("derives names from the lps id", func() {
			Expect(QueueName("conn1", AuthorizationResponses)).To(Equal("conn1AuthorizationResponses"))

			name, err := RequestQueue("lps1", types.ReversalRequest)
			Expect(err).ToNot(HaveOccurred())
			Expect(name).To(Equal("lps1ReversalRequests"))

			_, err = RequestQueue("lps1", types.Unrecognized)
			Expect(errors.Is(err, types.ErrUnrecognizedMessageType)).To(BeTrue())
		})
	})

	Context("requests", func() {
		It("routes each category to its queue", func() {
			Expect(d.AuthorizationRequest(ctx, &types.AuthorizationRequestMessage{LpsID: "lps1"})).To(Succeed())
			Expect(d.FinancialRequest(ctx, &types.FinancialRequestMessage{LpsID: "lps1"})).To(Succeed())
			Expect(d.ReversalRequest(ctx, &types.ReversalRequestMessage{LpsID: "lps1"})).To(Succeed())

			Expect(fakeQueue.AddToQueueCallCount()).To(Equal(3))

			_, name, payload := fakeQueue.AddToQueueArgsForCall(0)
			Expect(name).To(Equal("lps1AuthorizationRequests"))
			Expect(payload).To(BeAssignableToTypeOf(&types.AuthorizationRequestMessage{}))

			_, name, _ = fakeQueue.AddToQueueArgsForCall(1)
			Expect(name).To(Equal("lps1FinancialRequests"))

			_, name, _ = fakeQueue.AddToQueueArgsForCall(2)
			Expect(name).To(Equal("lps1ReversalRequests"))
		})

		It("wraps queue failures as dispatch errors", func() {
			fakeQueue.AddToQueueReturns(errors.New("broker down"))

			err := d.AuthorizationRequest(ctx, &types.AuthorizationRequestMessage{LpsID: "lps1"})
			Expect(errors.Is(err, types.ErrDispatch)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("broker down"))
		})
	})

	Context("responses", func() {
		It("enqueues authorization responses for the lps", func() {
			err := d.EnqueueAuthorizationResponse(ctx, "lps1", &types.AuthorizationResponseMessage{
				LpsAuthorizationRequestMessageID: "entry-1",
			})
			Expect(err).ToNot(HaveOccurred())

			_, name, _ := fakeQueue.AddToQueueArgsForCall(0)
			Expect(name).To(Equal("lps1AuthorizationResponses"))
		})

		It("enqueues financial responses for the lps", func() {
			err := d.EnqueueFinancialResponse(ctx, "lps1", &types.FinancialResponseMessage{
				LpsFinancialRequestMessageID: "entry-2",
			})
			Expect(err).ToNot(HaveOccurred())

			_, name, _ := fakeQueue.AddToQueueArgsForCall(0)
			Expect(name).To(Equal("lps1FinancialResponses"))
		})

		It("rejects responses without a request reference", func() {
			Expect(d.EnqueueAuthorizationResponse(ctx, "lps1", &types.AuthorizationResponseMessage{})).ToNot(Succeed())
			Expect(d.EnqueueFinancialResponse(ctx, "lps1", nil)).ToNot(Succeed())
			Expect(d.EnqueueFinancialResponse(ctx, "", &types.FinancialResponseMessage{LpsFinancialRequestMessageID: "x"})).ToNot(Succeed())
			Expect(fakeQueue.AddToQueueCallCount()).To(BeZero())
		})
	})
})
