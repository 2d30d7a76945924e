package translate

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var _ = Describe("Money", func() {
	Context("FromMinorUnits", func() {
		It("scales down by 100", func() {
			Expect(FromMinorUnits("00000070")).To(Equal("0.70"))
			Expect(FromMinorUnits("12345")).To(Equal("123.45"))
			Expect(FromMinorUnits("0")).To(Equal("0.00"))
		})

		It("rejects non-numeric input", func() {
			_, err := FromMinorUnits("7O")
			Expect(errors.Is(err, ErrInvalidAmount)).To(BeTrue())
		})
	})

	Context("ToMinorUnits", func() {
		It("scales up by 100", func() {
			Expect(ToMinorUnits("0.70")).To(Equal("70"))
			Expect(ToMinorUnits("100")).To(Equal("10000"))
			Expect(ToMinorUnits("0.005")).To(Equal("1"))
		})
	})

	It("round-trips integral minor unit amounts", func() {
		for _, amount := range []string{"0", "0.7", "0.70", "1.05", "19.99", "1000000.01", "0.1", "0.2", "0.3"} {
			minor, err := ToMinorUnits(amount)
			Expect(err).ToNot(HaveOccurred())

			back, err := FromMinorUnits(minor)
			Expect(err).ToNot(HaveOccurred())

			Expect(decimal.RequireFromString(back).Equal(decimal.RequireFromString(amount))).To(BeTrue(), amount)
		}
	})

	Context("Pad", func() {
		It("zero pads to width", func() {
			Expect(Pad("70", 8)).To(Equal("00000070"))
			Expect(Pad("12345678", 8)).To(Equal("12345678"))
		})

		It("rejects overflow and negatives", func() {
			_, err := Pad("123456789", 8)
			Expect(errors.Is(err, ErrAmountTooWide)).To(BeTrue())

			_, err = Pad("-1", 8)
			Expect(errors.Is(err, ErrNegativeAmount)).To(BeTrue())
		})
	})

	It("strips sign indicators", func() {
		Expect(stripSign("D00000070")).To(Equal("00000070"))
		Expect(stripSign("C00000070")).To(Equal("00000070"))
		Expect(stripSign("00000070")).To(Equal("00000070"))
	})
})
