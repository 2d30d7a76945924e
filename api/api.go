// Package api is the HTTP side of the gateway. It exposes health, version and
// metrics endpoints, live session state, message log reads and the write side
// that upstream responses are posted to.
package api

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/lpsgateway/dispatch"
	"github.com/batchcorp/lpsgateway/msglog"
	"github.com/batchcorp/lpsgateway/relay"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrMissingConfig     = errors.New("api config cannot be nil")
	ErrMissingRegistry   = errors.New("session registry cannot be nil")
	ErrMissingMsgLog     = errors.New("message log cannot be nil")
	ErrMissingDispatcher = errors.New("dispatcher cannot be nil")
)

type Config struct {
	Version       string
	ListenAddress string
	Registry      *relay.Registry
	MsgLog        msglog.IMessageLog
	Dispatcher    *dispatch.Dispatcher
	Log           *logrus.Entry
}

type API struct {
	Version       string
	ListenAddress string

	registry   *relay.Registry
	msgLog     msglog.IMessageLog
	dispatcher *dispatch.Dispatcher
	log        *logrus.Entry
}

type ResponseJSON struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Values  map[string]string `json:"values,omitempty"`
	Errors  string            `json:"errors,omitempty"`
}

func New(cfg *Config) (*API, error) {
	if cfg == nil {
		return nil, ErrMissingConfig
	}

	if cfg.Registry == nil {
		return nil, ErrMissingRegistry
	}

	if cfg.MsgLog == nil {
		return nil, ErrMissingMsgLog
	}

	if cfg.Dispatcher == nil {
		return nil, ErrMissingDispatcher
	}

	log := cfg.Log
	if log == nil {
		log = logrus.WithField("pkg", "api")
	}

	return &API{
		Version:       cfg.Version,
		ListenAddress: cfg.ListenAddress,
		registry:      cfg.Registry,
		msgLog:        cfg.MsgLog,
		dispatcher:    cfg.Dispatcher,
		log:           log,
	}, nil
}

// Start launches the HTTP server in the background. Shut it down via the
// returned server.
func (a *API) Start() (*http.Server, error) {
	a.log.Debugf("starting API server on %s", a.ListenAddress)

	srv := &http.Server{
		Addr:    a.ListenAddress,
		Handler: a.Router(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil {
			if err != http.ErrServerClosed {
				a.log.Errorf("unable to srv.ListenAndServe: %s", err)
			}
		}
	}()

	return srv, nil
}

func (a *API) Router() *httprouter.Router {
	router := httprouter.New()

	router.HandlerFunc("GET", "/health-check", a.healthCheckHandler)
	router.HandlerFunc("GET", "/version", a.versionHandler)

	router.Handle("GET", "/v1/sessions", a.getSessionsHandler)
	router.Handle("GET", "/v1/messages/:id", a.getMessageHandler)
	router.Handle("POST", "/v1/lps/:lpsId/authorization-responses", a.authorizationResponseHandler)
	router.Handle("POST", "/v1/lps/:lpsId/financial-responses", a.financialResponseHandler)

	router.Handler("GET", "/metrics", promhttp.Handler())

	return router
}

func (a *API) healthCheckHandler(rw http.ResponseWriter, r *http.Request) {
	WriteJSON(http.StatusOK, map[string]string{"status": "ok"}, rw)
}

func (a *API) versionHandler(rw http.ResponseWriter, r *http.Request) {
	response := &ResponseJSON{Status: http.StatusOK, Message: "batchcorp/lpsgateway " + a.Version}

	WriteJSON(http.StatusOK, response, rw)
}

// DecodeBody reads a JSON request body into v
func DecodeBody(body io.ReadCloser, v interface{}) error {
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return errors.Wrap(err, "unable to read request body")
	}

	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, "unable to unmarshal request body")
	}

	return nil
}

func WriteJSON(statusCode int, data interface{}, w http.ResponseWriter) {
	w.Header().Add("Content-type", "application/json")

	jsonData, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(500)
		logrus.Errorf("Unable to marshal data in WriteJSON: %s", err)
		return
	}

	w.WriteHeader(statusCode)

	if _, err := w.Write(jsonData); err != nil {
		logrus.Errorf("Unable to write response data: %s", err)
		return
	}
}

func WriteErrorJSON(statusCode int, msg string, w http.ResponseWriter) {
	WriteJSON(statusCode, map[string]string{"error": msg}, w)
}

func WriteSuccessJSON(statusCode int, msg string, w http.ResponseWriter) {
	WriteJSON(statusCode, map[string]string{"msg": msg}, w)
}
