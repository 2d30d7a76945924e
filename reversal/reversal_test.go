package reversal

import (
	"context"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/batchcorp/lpsgateway/msglog"
	"github.com/batchcorp/lpsgateway/msglog/msglogfakes"
	"github.com/batchcorp/lpsgateway/translate"
	"github.com/batchcorp/lpsgateway/types"
)

func reversalFor(ode string) types.LegacyMessage {
	return types.LegacyMessage{0: "0420", 11: "000124", 41: "001", 42: "abc", 90: ode}
}

var _ = Describe("Resolver", func() {
	var (
		ctx      = context.Background()
		memLog   *msglog.Memory
		resolver *Resolver
		original *msglog.Entry
	)

	BeforeEach(func() {
		var err error

		memLog = msglog.NewMemory(nil)

		resolver, err = New(memLog, nil)
		Expect(err).ToNot(HaveOccurred())

		original, err = memLog.Append(ctx, "lps1", "lps1-001-abc", types.FinancialRequest, types.LegacyMessage{
			0:  "0200",
			7:  "0701120000",
			11: "000123",
			32: "00000001234",
			41: "001",
			42: "abc",
		})
		Expect(err).ToNot(HaveOccurred())
	})

	It("requires a message log", func() {
		_, err := New(nil, nil)
		Expect(err).To(HaveOccurred())
	})

	It("resolves with a zero-stripped institution id", func() {
		entry, err := resolver.Resolve(ctx, reversalFor("0200"+"000123"+"0701120000"+"00000001234"))
		Expect(err).ToNot(HaveOccurred())
		Expect(entry.ID).To(Equal(original.ID))
	})

	It("fails on a mismatched STAN", func() {
		_, err := resolver.Resolve(ctx, reversalFor("0200"+"000999"+"0701120000"+"00000001234"))
		Expect(errors.Is(err, types.ErrReversalCorrelationNotFound)).To(BeTrue())
	})

	It("fails on a mismatched institution id", func() {
		_, err := resolver.Resolve(ctx, reversalFor("0200"+"000123"+"0701120000"+"00000005678"))
		Expect(errors.Is(err, types.ErrReversalCorrelationNotFound)).To(BeTrue())
	})

	It("treats an all-zero institution id as a wildcard", func() {
		_, err := memLog.Append(ctx, "lps1", "lps1-002-xyz", types.FinancialRequest, types.LegacyMessage{
			0: "0200", 7: "0801120000", 11: "000777", 32: "99999",
		})
		Expect(err).ToNot(HaveOccurred())

		entry, err := resolver.Resolve(ctx, reversalFor("0200"+"000777"+"0801120000"+"00000000000"))
		Expect(err).ToNot(HaveOccurred())
		Expect(entry.Content[32]).To(Equal("99999"))
	})

	It("prefers the most recent match", func() {
		newer, err := memLog.Append(ctx, "lps1", "lps1-001-abc", types.FinancialRequest, original.Content)
		Expect(err).ToNot(HaveOccurred())

		entry, err := resolver.Resolve(ctx, reversalFor("0200"+"000123"+"0701120000"+"00000001234"))
		Expect(err).ToNot(HaveOccurred())
		Expect(entry.ID).To(Equal(newer.ID))
	})

	It("rejects malformed original data elements", func() {
		_, err := resolver.Resolve(ctx, reversalFor("0200"))
		Expect(errors.Is(err, types.ErrMalformedOriginalDataElements)).To(BeTrue())
	})

	It("surfaces storage failures distinctly", func() {
		fakeLog := &msglogfakes.FakeIMessageLog{}
		fakeLog.FindByContentReturns(nil, errors.Wrap(types.ErrPersistence, "connection refused"))

		r, err := New(fakeLog, nil)
		Expect(err).ToNot(HaveOccurred())

		_, err = r.Resolve(ctx, reversalFor("0200"+"000123"+"0701120000"+"00000001234"))
		Expect(errors.Is(err, types.ErrPersistence)).To(BeTrue())
		Expect(errors.Is(err, types.ErrReversalCorrelationNotFound)).To(BeFalse())

		_, preds := fakeLog.FindByContentArgsForCall(0)
		Expect(preds).To(HaveLen(4))
	})

	Context("Predicates", func() {
		It("omits the institution predicate when blank", func() {
			preds := Predicates(&translate.OriginalDataElements{MTI: "0200", STAN: "000123", Date: "0701120000"})
			Expect(preds).To(HaveLen(3))
		})
	})
})
