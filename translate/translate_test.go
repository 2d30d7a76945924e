package translate

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/batchcorp/lpsgateway/types"
)

var _ = Describe("Translator", func() {
	var (
		tr  *Translator
		now = time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	)

	authRequest := func() types.LegacyMessage {
		return types.LegacyMessage{
			0:   "0100",
			7:   "0701120000",
			11:  "000123",
			28:  "D00000070",
			41:  "001",
			42:  "abc",
			49:  "840",
			102: "0821234567",
			123: "000000000001",
		}
	}

	BeforeEach(func() {
		var err error

		tr, err = New(&Config{
			LpsID: "lps1",
			Now:   func() time.Time { return now },
		})
		Expect(err).ToNot(HaveOccurred())
	})

	Context("New", func() {
		It("requires a config", func() {
			_, err := New(nil)
			Expect(err).To(HaveOccurred())
		})

		It("requires an lps id", func() {
			_, err := New(&Config{})
			Expect(err).To(HaveOccurred())
		})

		It("fills defaults", func() {
			Expect(tr.expiryWindow).To(Equal(DefaultExpiryWindow))
			Expect(tr.ResponseCodes()).To(Equal(DefaultResponseCodes()))
		})
	})

	Context("AuthorizationRequest", func() {
		It("maps the documented fields", func() {
			req, err := tr.AuthorizationRequest("entry-1", authRequest())
			Expect(err).ToNot(HaveOccurred())

			Expect(req.LpsID).To(Equal("lps1"))
			Expect(req.LpsKey).To(Equal("lps1-001-abc"))
			Expect(req.LpsAuthorizationRequestMessageID).To(Equal("entry-1"))
			Expect(req.LpsFee).To(Equal(types.Money{Amount: "0.70", Currency: "USD"}))
			Expect(req.Amount).To(Equal(types.Money{Amount: "0", Currency: "USD"}))
			Expect(req.Payee).To(Equal(types.Party{PartyIDType: "DEVICE", PartyIdentifier: "001", PartySubIDOrType: "abc"}))
			Expect(req.Payer).To(Equal(types.Party{PartyIDType: "MSISDN", PartyIdentifier: "0821234567"}))
			Expect(req.TransactionType).To(Equal(types.TransactionType{InitiatorType: "AGENT", Scenario: "WITHDRAWAL"}))
			Expect(req.Expiration).To(Equal("Wed, 01 Jul 2026 12:00:30 GMT"))
		})

		It("scales the amount field", func() {
			msg := authRequest().With(map[int]string{4: "000000010050"})

			req, err := tr.AuthorizationRequest("entry-1", msg)
			Expect(err).ToNot(HaveOccurred())
			Expect(req.Amount.Amount).To(Equal("100.50"))
		})

		It("uses a zero fee when field 28 is absent", func() {
			msg := authRequest()
			delete(msg, 28)

			req, err := tr.AuthorizationRequest("entry-1", msg)
			Expect(err).ToNot(HaveOccurred())
			Expect(req.LpsFee.Amount).To(Equal("0"))
		})

		It("maps device initiated withdrawals", func() {
			msg := authRequest().With(map[int]string{123: "000000000002"})

			req, err := tr.AuthorizationRequest("entry-1", msg)
			Expect(err).ToNot(HaveOccurred())
			Expect(req.TransactionType).To(Equal(types.TransactionType{InitiatorType: "DEVICE", Scenario: "WITHDRAWAL"}))
		})

		It("rejects unknown processing codes", func() {
			msg := authRequest().With(map[int]string{123: "000000000099"})

			_, err := tr.AuthorizationRequest("entry-1", msg)
			Expect(errors.Is(err, types.ErrInvalidProcessingCode)).To(BeTrue())
		})

		It("rejects a missing processing code", func() {
			msg := authRequest()
			delete(msg, 123)

			_, err := tr.AuthorizationRequest("entry-1", msg)
			Expect(errors.Is(err, types.ErrInvalidProcessingCode)).To(BeTrue())
		})

		It("uses the injected currency lookup", func() {
			tr.currencies = &StaticCurrencies{Default: "XXX", Table: map[string]string{"404": "KES"}}

			req, err := tr.AuthorizationRequest("entry-1", authRequest().With(map[int]string{49: "404"}))
			Expect(err).ToNot(HaveOccurred())
			Expect(req.LpsFee.Currency).To(Equal("KES"))
		})
	})

	Context("AuthorizationResponse", func() {
		It("echoes every original field except the overwritten ones", func() {
			original := authRequest()
			snapshot := original.Clone()

			msg, err := tr.AuthorizationResponse(original, &types.AuthorizationResponseMessage{
				LpsAuthorizationRequestMessageID: "entry-1",
				Fees:                             types.Money{Amount: "0.70", Currency: "USD"},
				TransferAmount:                   types.Money{Amount: "100.70", Currency: "USD"},
			})
			Expect(err).ToNot(HaveOccurred())

			Expect(msg[0]).To(Equal("0110"))
			Expect(msg[30]).To(Equal("D00000070"))
			Expect(msg[39]).To(Equal("00"))
			Expect(msg[48]).To(Equal("100.70"))

			for _, f := range snapshot.Fields() {
				if f == 0 || f == 30 || f == 39 || f == 48 {
					continue
				}

				Expect(msg[f]).To(Equal(snapshot[f]))
			}

			Expect(original).To(Equal(snapshot))
		})

		It("maps rejected responses", func() {
			msg, err := tr.AuthorizationResponse(authRequest(), &types.AuthorizationResponseMessage{
				Response: types.ResponseNoPayerFound,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(msg[39]).To(Equal("15"))
			Expect(msg[30]).To(Equal("D00000000"))
		})

		It("rejects fees wider than the field", func() {
			_, err := tr.AuthorizationResponse(authRequest(), &types.AuthorizationResponseMessage{
				Fees: types.Money{Amount: "1000000000"},
			})
			Expect(errors.Is(err, ErrAmountTooWide)).To(BeTrue())
		})

		It("rejects a nil response", func() {
			_, err := tr.AuthorizationResponse(authRequest(), nil)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("Financial", func() {
		It("maps the request", func() {
			msg := types.LegacyMessage{0: "0200", 41: "001", 42: "abc", 103: "4321"}

			req, err := tr.FinancialRequest("entry-2", msg)
			Expect(err).ToNot(HaveOccurred())
			Expect(req.LpsKey).To(Equal("lps1-001-abc"))
			Expect(req.LpsFinancialRequestMessageID).To(Equal("entry-2"))
			Expect(req.ResponseType).To(Equal("ENTERED"))
			Expect(req.AuthenticationInfo).To(Equal(types.AuthenticationInfo{AuthenticationType: "OTP", AuthenticationValue: "4321"}))
		})

		It("builds the response from the original", func() {
			original := types.LegacyMessage{0: "0200", 11: "000123", 41: "001"}

			msg, err := tr.FinancialResponse(original, &types.FinancialResponseMessage{
				LpsFinancialRequestMessageID: "entry-2",
				Response:                     types.ResponsePayerFSPRejected,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(msg).To(Equal(types.LegacyMessage{0: "0210", 11: "000123", 39: "05", 41: "001"}))
			Expect(original[0]).To(Equal("0200"))
		})
	})

	Context("Reversal", func() {
		It("maps the request", func() {
			msg := types.LegacyMessage{0: "0420", 41: "001", 42: "abc"}

			req := tr.ReversalRequest("entry-3", "entry-2", msg)
			Expect(req).To(Equal(&types.ReversalRequestMessage{
				LpsID:                        "lps1",
				LpsKey:                       "lps1-001-abc",
				LpsFinancialRequestMessageID: "entry-2",
				LpsReversalRequestMessageID:  "entry-3",
			}))
		})

		It("builds acknowledgements", func() {
			msg := types.LegacyMessage{0: "0420", 11: "000124"}

			Expect(tr.ReversalAcknowledgement(msg, true)).To(Equal(types.LegacyMessage{0: "0430", 11: "000124", 39: "00"}))
			Expect(tr.ReversalAcknowledgement(msg, false)).To(Equal(types.LegacyMessage{0: "0430", 11: "000124", 39: "21"}))
			Expect(msg[0]).To(Equal("0420"))
		})
	})
})

var _ = Describe("ResponseCodes", func() {
	It("fills missing codes from defaults", func() {
		codes := (&ResponseCodes{Approved: "A0"}).WithDefaults()
		Expect(codes.Approved).To(Equal("A0"))
		Expect(codes.NoAction).To(Equal("21"))
	})

	It("maps every response type", func() {
		codes := DefaultResponseCodes()
		Expect(codes.ResponseCode("")).To(Equal("00"))
		Expect(codes.ResponseCode(types.ResponseApproved)).To(Equal("00"))
		Expect(codes.ResponseCode(types.ResponseInvalid)).To(Equal("N0"))
		Expect(codes.ResponseCode(types.ResponseNoPayerFound)).To(Equal("15"))
		Expect(codes.ResponseCode(types.ResponsePayerFSPRejected)).To(Equal("05"))
		Expect(codes.ResponseCode("unknown")).To(Equal("05"))
	})
})
