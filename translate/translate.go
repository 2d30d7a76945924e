// Package translate maps legacy field messages to the domain records placed
// on work queues, and domain responses back onto legacy messages. Responses
// are always built from a copy of the original request so that untouched
// fields are echoed verbatim.
package translate

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/lpsgateway/types"
	"github.com/batchcorp/lpsgateway/validate"
)

const (
	DefaultExpiryWindow = 30 * time.Second

	// ExpirationFormat is RFC1123 pinned to GMT
	ExpirationFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

	PartyIDTypeDevice = "DEVICE"
	PartyIDTypeMSISDN = "MSISDN"

	InitiatorAgent     = "AGENT"
	InitiatorDevice    = "DEVICE"
	ScenarioWithdrawal = "WITHDRAWAL"

	FinancialResponseType   = "ENTERED"
	AuthenticationTypeOTP   = "OTP"
	ReversalResponseMTI     = "0430"
	processingCodeSuffixLen = 2
)

var transactionTypes = map[string]types.TransactionType{
	"01": {InitiatorType: InitiatorAgent, Scenario: ScenarioWithdrawal},
	"02": {InitiatorType: InitiatorDevice, Scenario: ScenarioWithdrawal},
}

type Config struct {
	LpsID         string
	ExpiryWindow  time.Duration
	ResponseCodes *ResponseCodes
	Currencies    CurrencyLookup

	// Now is overridable for tests
	Now func() time.Time

	Log *logrus.Entry
}

type Translator struct {
	lpsID        string
	expiryWindow time.Duration
	codes        *ResponseCodes
	currencies   CurrencyLookup
	now          func() time.Time
	log          *logrus.Entry
}

func New(cfg *Config) (*Translator, error) {
	if cfg == nil {
		return nil, validate.ErrMissingTranslator
	}

	if cfg.LpsID == "" {
		return nil, validate.ErrMissingLpsID
	}

	if cfg.ExpiryWindow < 0 {
		return nil, validate.ErrInvalidExpiryWindow
	}

	t := &Translator{
		lpsID:        cfg.LpsID,
		expiryWindow: cfg.ExpiryWindow,
		codes:        cfg.ResponseCodes.WithDefaults(),
		currencies:   cfg.Currencies,
		now:          cfg.Now,
		log:          cfg.Log,
	}

	if t.expiryWindow == 0 {
		t.expiryWindow = DefaultExpiryWindow
	}

	if t.currencies == nil {
		t.currencies = NewStaticCurrencies()
	}

	if t.now == nil {
		t.now = time.Now
	}

	if t.log == nil {
		t.log = logrus.WithField("pkg", "translate")
	}

	return t, nil
}

// ResponseCodes returns the codes in effect for this translator
func (t *Translator) ResponseCodes() *ResponseCodes {
	return t.codes
}

// AuthorizationRequest maps a legacy 0100 onto the domain authorization request
func (t *Translator) AuthorizationRequest(entryID string, msg types.LegacyMessage) (*types.AuthorizationRequestMessage, error) {
	t.log.Debugf("mapping authorization request '%s'", entryID)

	txType, err := transactionType(msg)
	if err != nil {
		return nil, err
	}

	amount, err := t.money(msg, types.FieldAmount, false)
	if err != nil {
		return nil, errors.Wrap(err, "unable to map amount")
	}

	fee, err := t.money(msg, types.FieldTransactionFee, true)
	if err != nil {
		return nil, errors.Wrap(err, "unable to map fee")
	}

	return &types.AuthorizationRequestMessage{
		LpsID:                            t.lpsID,
		LpsKey:                           types.LpsKey(t.lpsID, msg),
		LpsAuthorizationRequestMessageID: entryID,
		Amount:                           amount,
		Payee: types.Party{
			PartyIDType:      PartyIDTypeDevice,
			PartyIdentifier:  msg[types.FieldTerminalID],
			PartySubIDOrType: msg[types.FieldCardAcceptorID],
		},
		Payer: types.Party{
			PartyIDType:     PartyIDTypeMSISDN,
			PartyIdentifier: msg[types.FieldAccountIdentification],
		},
		TransactionType: txType,
		Expiration:      t.now().Add(t.expiryWindow).UTC().Format(ExpirationFormat),
		LpsFee:          fee,
	}, nil
}

// AuthorizationResponse builds the 0110 for original from a domain response
func (t *Translator) AuthorizationResponse(original types.LegacyMessage, resp *types.AuthorizationResponseMessage) (types.LegacyMessage, error) {
	if resp == nil {
		return nil, errors.New("authorization response cannot be nil")
	}

	mti, err := types.ResponseMTI(original.MTI())
	if err != nil {
		return nil, errors.Wrap(err, "unable to derive response mti")
	}

	fee := resp.Fees.Amount
	if fee == "" {
		fee = "0"
	}

	processingFee, err := signedAmount(fee)
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode fees")
	}

	return original.With(map[int]string{
		types.FieldMTI:            mti,
		types.FieldProcessingFee:  processingFee,
		types.FieldResponseCode:   t.codes.ResponseCode(resp.Response),
		types.FieldAdditionalData: resp.TransferAmount.Amount,
	}), nil
}

// FinancialRequest maps a legacy 0200 onto the domain financial request
func (t *Translator) FinancialRequest(entryID string, msg types.LegacyMessage) (*types.FinancialRequestMessage, error) {
	t.log.Debugf("mapping financial request '%s'", entryID)

	return &types.FinancialRequestMessage{
		LpsID:                        t.lpsID,
		LpsKey:                       types.LpsKey(t.lpsID, msg),
		LpsFinancialRequestMessageID: entryID,
		ResponseType:                 FinancialResponseType,
		AuthenticationInfo: types.AuthenticationInfo{
			AuthenticationType:  AuthenticationTypeOTP,
			AuthenticationValue: msg[types.FieldAuthenticationValue],
		},
	}, nil
}

// FinancialResponse builds the 0210 for original from a domain response
func (t *Translator) FinancialResponse(original types.LegacyMessage, resp *types.FinancialResponseMessage) (types.LegacyMessage, error) {
	if resp == nil {
		return nil, errors.New("financial response cannot be nil")
	}

	mti, err := types.ResponseMTI(original.MTI())
	if err != nil {
		return nil, errors.Wrap(err, "unable to derive response mti")
	}

	return original.With(map[int]string{
		types.FieldMTI:          mti,
		types.FieldResponseCode: t.codes.ResponseCode(resp.Response),
	}), nil
}

// ReversalRequest maps a legacy 0420 onto the domain reversal request.
// originalEntryID is the resolved entry of the request being reversed.
func (t *Translator) ReversalRequest(entryID, originalEntryID string, msg types.LegacyMessage) *types.ReversalRequestMessage {
	return &types.ReversalRequestMessage{
		LpsID:                        t.lpsID,
		LpsKey:                       types.LpsKey(t.lpsID, msg),
		LpsFinancialRequestMessageID: originalEntryID,
		LpsReversalRequestMessageID:  entryID,
	}
}

// ReversalAcknowledgement builds the immediate 0430 answer to a reversal.
// accepted selects between the approved and no-action response codes.
func (t *Translator) ReversalAcknowledgement(msg types.LegacyMessage, accepted bool) types.LegacyMessage {
	code := t.codes.NoAction
	if accepted {
		code = t.codes.Approved
	}

	return msg.With(map[int]string{
		types.FieldMTI:          ReversalResponseMTI,
		types.FieldResponseCode: code,
	})
}

func transactionType(msg types.LegacyMessage) (types.TransactionType, error) {
	code := msg[types.FieldPOSDataCode]
	if len(code) < processingCodeSuffixLen {
		return types.TransactionType{}, errors.Wrapf(types.ErrInvalidProcessingCode, "field 123 '%s'", code)
	}

	txType, ok := transactionTypes[code[len(code)-processingCodeSuffixLen:]]
	if !ok {
		return types.TransactionType{}, errors.Wrapf(types.ErrInvalidProcessingCode, "field 123 '%s'", code)
	}

	return txType, nil
}

// money reads a minor-unit amount field. An absent field maps to "0".
func (t *Translator) money(msg types.LegacyMessage, field int, signed bool) (types.Money, error) {
	out := types.Money{
		Amount:   "0",
		Currency: t.currencies.Alpha(msg[types.FieldCurrencyCode]),
	}

	value, ok := msg.Field(field)
	if !ok || value == "" {
		return out, nil
	}

	if signed {
		value = stripSign(value)
	}

	amount, err := FromMinorUnits(value)
	if err != nil {
		return types.Money{}, err
	}

	out.Amount = amount

	return out, nil
}
