// Package relay owns the legacy switch connections. A Session wraps a single
// socket: it classifies and persists every inbound message, dispatches the
// matching domain request, and runs the response workers that write
// asynchronous answers back to the same socket.
package relay

import (
	"context"
	"io"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/lpsgateway/dispatch"
	"github.com/batchcorp/lpsgateway/msglog"
	"github.com/batchcorp/lpsgateway/prometheus"
	"github.com/batchcorp/lpsgateway/queue"
	"github.com/batchcorp/lpsgateway/reversal"
	"github.com/batchcorp/lpsgateway/serializers"
	"github.com/batchcorp/lpsgateway/translate"
	"github.com/batchcorp/lpsgateway/types"
	"github.com/batchcorp/lpsgateway/validate"
)

var (
	ErrInvalidState       = errors.New("invalid session state")
	ErrForeignEntry       = errors.New("message log entry belongs to another lps")
	ErrUnexpectedCategory = errors.New("message log entry has unexpected category")

	json = jsoniter.ConfigCompatibleWithStandardLibrary
)

type State int

const (
	StateOpen State = iota
	StateRunning
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateRunning:
		return "running"
	case StateClosed:
		return "closed"
	}

	return "unknown"
}

type Config struct {
	LpsID      string
	Conn       net.Conn
	Serializer serializers.ISerializer
	MsgLog     msglog.IMessageLog
	Queue      queue.IQueue
	Translator *translate.Translator
	Log        *logrus.Entry
}

type Session struct {
	ID        string
	LpsID     string
	StartedAt time.Time

	conn       net.Conn
	serializer serializers.ISerializer
	msgLog     msglog.IMessageLog
	queue      queue.IQueue
	translator *translate.Translator
	resolver   *reversal.Resolver
	dispatcher *dispatch.Dispatcher

	state     State
	stateMtx  *sync.RWMutex
	writeMtx  *sync.Mutex
	closeOnce *sync.Once
	ctx       context.Context
	cancel    context.CancelFunc
	wg        *sync.WaitGroup
	done      chan struct{}
	log       *logrus.Entry
}

// Info is the externally visible view of a session
type Info struct {
	ID         string    `json:"id"`
	LpsID      string    `json:"lps_id"`
	RemoteAddr string    `json:"remote_addr"`
	State      string    `json:"state"`
	StartedAt  time.Time `json:"started_at"`
}

func New(cfg *Config) (*Session, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, errors.Wrap(err, "unable to complete session config validation")
	}

	id := uuid.New().String()

	log := cfg.Log
	if log == nil {
		log = logrus.WithField("pkg", "relay")
	}

	log = log.WithFields(logrus.Fields{
		"lps_id":     cfg.LpsID,
		"session_id": id,
	})

	resolver, err := reversal.New(cfg.MsgLog, log)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create reversal resolver")
	}

	dispatcher, err := dispatch.New(cfg.Queue, log)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create dispatcher")
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Session{
		ID:         id,
		LpsID:      cfg.LpsID,
		conn:       cfg.Conn,
		serializer: cfg.Serializer,
		msgLog:     cfg.MsgLog,
		queue:      cfg.Queue,
		translator: cfg.Translator,
		resolver:   resolver,
		dispatcher: dispatcher,
		state:      StateOpen,
		stateMtx:   &sync.RWMutex{},
		writeMtx:   &sync.Mutex{},
		closeOnce:  &sync.Once{},
		ctx:        ctx,
		cancel:     cancel,
		wg:         &sync.WaitGroup{},
		done:       make(chan struct{}),
		log:        log,
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return validate.ErrEmptyRelayConfig
	}

	if cfg.LpsID == "" {
		return validate.ErrMissingLpsID
	}

	if cfg.Conn == nil {
		return validate.ErrMissingConn
	}

	if cfg.Serializer == nil {
		return validate.ErrMissingSerializer
	}

	if cfg.MsgLog == nil {
		return validate.ErrMissingMsgLog
	}

	if cfg.Queue == nil {
		return validate.ErrMissingQueue
	}

	if cfg.Translator == nil {
		return validate.ErrMissingTranslator
	}

	return nil
}

// Start launches one response worker per response queue and the inbound
// read loop. It may only be called once, on an open session.
func (s *Session) Start() error {
	s.stateMtx.Lock()
	defer s.stateMtx.Unlock()

	if s.state != StateOpen {
		return errors.Wrapf(ErrInvalidState, "cannot start session in state '%s'", s.state)
	}

	workers, err := s.newWorkers()
	if err != nil {
		return errors.Wrap(err, "unable to create response workers")
	}

	for _, w := range workers {
		s.wg.Add(1)

		go func(w *Worker) {
			defer s.wg.Done()
			w.Run(s.ctx)
		}(w)
	}

	s.wg.Add(1)
	go s.readLoop()

	s.state = StateRunning
	s.StartedAt = time.Now().UTC()

	prometheus.IncrPromGauge(prometheus.LpsGatewaySessions)

	s.log.Infof("session started for '%s'", s.conn.RemoteAddr())

	return nil
}

// Shutdown closes the socket and waits for the read loop and every worker to
// exit. Messages already being processed are allowed to finish. Calling
// Shutdown more than once, or before Start, is safe.
func (s *Session) Shutdown() error {
	var err error

	s.closeOnce.Do(func() {
		s.stateMtx.Lock()
		wasRunning := s.state == StateRunning
		s.state = StateClosed
		s.stateMtx.Unlock()

		s.cancel()

		if cerr := s.conn.Close(); cerr != nil {
			err = errors.Wrap(cerr, "unable to close connection")
		}

		s.wg.Wait()

		if wasRunning {
			prometheus.DecrPromGauge(prometheus.LpsGatewaySessions)
		}

		close(s.done)

		s.log.Info("session closed")
	})

	return err
}

// Done is closed once the session has fully shut down
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) State() State {
	s.stateMtx.RLock()
	defer s.stateMtx.RUnlock()

	return s.state
}

func (s *Session) Info() *Info {
	return &Info{
		ID:         s.ID,
		LpsID:      s.LpsID,
		RemoteAddr: s.conn.RemoteAddr().String(),
		State:      s.State().String(),
		StartedAt:  s.StartedAt,
	}
}

func (s *Session) readLoop() {
	defer s.wg.Done()

	for {
		data, err := serializers.ReadFrame(s.conn)
		if err != nil {
			if s.ctx.Err() != nil {
				return
			}

			if err == io.EOF {
				s.log.Info("remote closed connection")
			} else {
				s.log.Errorf("unable to read from connection: %s", err)
			}

			// Shutdown waits on this goroutine
			go s.Shutdown()

			return
		}

		// Inbound messages are handled one at a time to preserve ordering;
		// a shutdown does not abort a message already in progress.
		s.handleFrame(context.Background(), data)
	}
}

// write encodes and frames msg onto the socket. Writers from the read loop
// and the response workers are serialized.
func (s *Session) write(msg types.LegacyMessage) error {
	if s.State() == StateClosed {
		return types.ErrSocketUnavailable
	}

	data, err := s.serializer.Encode(msg)
	if err != nil {
		return errors.Wrap(err, "unable to encode message")
	}

	s.writeMtx.Lock()
	defer s.writeMtx.Unlock()

	if err := serializers.WriteFrame(s.conn, data); err != nil {
		if s.State() == StateClosed {
			return types.ErrSocketUnavailable
		}

		return errors.Wrap(err, "unable to write to connection")
	}

	return nil
}
