package types

// Records in this file cross the queue boundary. They must not depend on any
// in-memory session state.

type Money struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type Party struct {
	PartyIDType      string `json:"partyIdType"`
	PartyIdentifier  string `json:"partyIdentifier"`
	PartySubIDOrType string `json:"partySubIdOrType,omitempty"`
}

type TransactionType struct {
	InitiatorType string `json:"initiatorType"`
	Scenario      string `json:"scenario"`
}

type AuthenticationInfo struct {
	AuthenticationType  string `json:"authenticationType"`
	AuthenticationValue string `json:"authenticationValue"`
}

// ResponseType is the upstream outcome carried on a domain response
type ResponseType string

const (
	ResponseApproved         ResponseType = "approved"
	ResponseInvalid          ResponseType = "invalid"
	ResponseNoPayerFound     ResponseType = "noPayerFound"
	ResponsePayerFSPRejected ResponseType = "payerFSPRejected"
)

type AuthorizationRequestMessage struct {
	LpsID                            string          `json:"lpsId"`
	LpsKey                           string          `json:"lpsKey"`
	LpsAuthorizationRequestMessageID string          `json:"lpsAuthorizationRequestMessageId"`
	Amount                           Money           `json:"amount"`
	Payee                            Party           `json:"payee"`
	Payer                            Party           `json:"payer"`
	TransactionType                  TransactionType `json:"transactionType"`
	Expiration                       string          `json:"expiration"`
	LpsFee                           Money           `json:"lpsFee"`
}

type AuthorizationResponseMessage struct {
	LpsID                            string       `json:"lpsId,omitempty"`
	LpsKey                           string       `json:"lpsKey,omitempty"`
	LpsAuthorizationRequestMessageID string       `json:"lpsAuthorizationRequestMessageId"`
	Fees                             Money        `json:"fees"`
	TransferAmount                   Money        `json:"transferAmount"`
	Response                         ResponseType `json:"response,omitempty"`
}

type FinancialRequestMessage struct {
	LpsID                        string             `json:"lpsId"`
	LpsKey                       string             `json:"lpsKey"`
	LpsFinancialRequestMessageID string             `json:"lpsFinancialRequestMessageId"`
	ResponseType                 string             `json:"responseType"`
	AuthenticationInfo           AuthenticationInfo `json:"authenticationInfo"`
}

type FinancialResponseMessage struct {
	LpsID                        string       `json:"lpsId,omitempty"`
	LpsKey                       string       `json:"lpsKey,omitempty"`
	LpsFinancialRequestMessageID string       `json:"lpsFinancialRequestMessageId"`
	Response                     ResponseType `json:"response,omitempty"`
}

type ReversalRequestMessage struct {
	LpsID                        string `json:"lpsId"`
	LpsKey                       string `json:"lpsKey"`
	LpsFinancialRequestMessageID string `json:"lpsFinancialRequestMessageId"`
	LpsReversalRequestMessageID  string `json:"lpsReversalRequestMessageId"`
}
