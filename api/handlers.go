package api

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/batchcorp/lpsgateway/msglog"
	"github.com/batchcorp/lpsgateway/types"
)

func (a *API) getSessionsHandler(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	WriteJSON(http.StatusOK, a.registry.List(), w)
}

func (a *API) getMessageHandler(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	entry, err := a.msgLog.Get(r.Context(), p.ByName("id"))
	if err != nil {
		if errors.Is(err, msglog.ErrNotFound) {
			WriteErrorJSON(http.StatusNotFound, err.Error(), w)
			return
		}

		a.log.Errorf("unable to get message log entry: %s", err)
		WriteErrorJSON(http.StatusInternalServerError, err.Error(), w)
		return
	}

	WriteJSON(http.StatusOK, entry, w)
}

func (a *API) authorizationResponseHandler(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	resp := &types.AuthorizationResponseMessage{}

	if err := DecodeBody(r.Body, resp); err != nil {
		WriteJSON(http.StatusBadRequest, ResponseJSON{Status: http.StatusBadRequest, Message: err.Error()}, w)
		return
	}

	lpsID := p.ByName("lpsId")

	if err := a.dispatcher.EnqueueAuthorizationResponse(r.Context(), lpsID, resp); err != nil {
		a.writeEnqueueError(err, w)
		return
	}

	WriteJSON(http.StatusAccepted, ResponseJSON{
		Status:  http.StatusAccepted,
		Message: "authorization response queued",
		Values:  map[string]string{"lps_id": lpsID, "id": resp.LpsAuthorizationRequestMessageID},
	}, w)
}

func (a *API) financialResponseHandler(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	resp := &types.FinancialResponseMessage{}

	if err := DecodeBody(r.Body, resp); err != nil {
		WriteJSON(http.StatusBadRequest, ResponseJSON{Status: http.StatusBadRequest, Message: err.Error()}, w)
		return
	}

	lpsID := p.ByName("lpsId")

	if err := a.dispatcher.EnqueueFinancialResponse(r.Context(), lpsID, resp); err != nil {
		a.writeEnqueueError(err, w)
		return
	}

	WriteJSON(http.StatusAccepted, ResponseJSON{
		Status:  http.StatusAccepted,
		Message: "financial response queued",
		Values:  map[string]string{"lps_id": lpsID, "id": resp.LpsFinancialRequestMessageID},
	}, w)
}

// Dispatch failures are ours; anything else is a bad request
func (a *API) writeEnqueueError(err error, w http.ResponseWriter) {
	if errors.Is(err, types.ErrDispatch) {
		a.log.Errorf("unable to enqueue response: %s", err)
		WriteErrorJSON(http.StatusInternalServerError, err.Error(), w)
		return
	}

	WriteErrorJSON(http.StatusBadRequest, err.Error(), w)
}
