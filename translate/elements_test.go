package translate

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/batchcorp/lpsgateway/types"
)

var _ = Describe("ParseOriginalDataElements", func() {
	It("splits field 90 at fixed offsets", func() {
		ode, err := ParseOriginalDataElements(types.LegacyMessage{90: "0200" + "000123" + "0701120000" + "00000001234"})
		Expect(err).ToNot(HaveOccurred())
		Expect(ode).To(Equal(&OriginalDataElements{
			MTI:           "0200",
			STAN:          "000123",
			Date:          "0701120000",
			InstitutionID: "1234",
		}))
	})

	It("treats an all-zero institution as empty", func() {
		ode, err := ParseOriginalDataElements(types.LegacyMessage{90: "0200000123070112000000000000000"})
		Expect(err).ToNot(HaveOccurred())
		Expect(ode.InstitutionID).To(BeEmpty())
	})

	It("ignores trailing data past the institution id", func() {
		ode, err := ParseOriginalDataElements(types.LegacyMessage{90: "020000012307011200000000000123400000000000"})
		Expect(err).ToNot(HaveOccurred())
		Expect(ode.InstitutionID).To(Equal("1234"))
	})

	It("accepts a missing institution segment", func() {
		ode, err := ParseOriginalDataElements(types.LegacyMessage{90: "02000001230701120000"})
		Expect(err).ToNot(HaveOccurred())
		Expect(ode.InstitutionID).To(BeEmpty())
	})

	It("rejects short or absent field 90", func() {
		_, err := ParseOriginalDataElements(types.LegacyMessage{90: "0200000123"})
		Expect(errors.Is(err, types.ErrMalformedOriginalDataElements)).To(BeTrue())

		_, err = ParseOriginalDataElements(types.LegacyMessage{})
		Expect(errors.Is(err, types.ErrMalformedOriginalDataElements)).To(BeTrue())
	})
})
