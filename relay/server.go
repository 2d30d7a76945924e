package relay

import (
	"context"
	"net"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/lpsgateway/msglog"
	"github.com/batchcorp/lpsgateway/queue"
	"github.com/batchcorp/lpsgateway/serializers"
	"github.com/batchcorp/lpsgateway/translate"
	"github.com/batchcorp/lpsgateway/validate"
)

type ServerConfig struct {
	LpsID         string
	ListenAddress string
	Serializer    serializers.ISerializer
	MsgLog        msglog.IMessageLog
	Queue         queue.IQueue
	Translator    *translate.Translator
	Registry      *Registry
	Log           *logrus.Entry
}

// Server accepts legacy switch connections for one lps. Every accepted
// connection becomes that lps's live session.
type Server struct {
	cfg      *ServerConfig
	listener net.Listener
	mtx      *sync.Mutex
	log      *logrus.Entry
}

func NewServer(cfg *ServerConfig) (*Server, error) {
	if err := validateServerConfig(cfg); err != nil {
		return nil, errors.Wrap(err, "unable to complete server config validation")
	}

	log := cfg.Log
	if log == nil {
		log = logrus.WithField("pkg", "relay")
	}

	return &Server{
		cfg: cfg,
		mtx: &sync.Mutex{},
		log: log.WithField("lps_id", cfg.LpsID),
	}, nil
}

func validateServerConfig(cfg *ServerConfig) error {
	if cfg == nil {
		return validate.ErrEmptyRelayConfig
	}

	if cfg.LpsID == "" {
		return validate.ErrMissingLpsID
	}

	if cfg.ListenAddress == "" {
		return validate.ErrMissingListenAddress
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

	if cfg.Registry == nil {
		cfg.Registry = NewRegistry()
	}

	return nil
}

// Listen binds the listen address; call before Serve
func (s *Server) Listen() error {
	l, err := net.Listen("tcp", s.cfg.ListenAddress)
	if err != nil {
		return errors.Wrapf(err, "unable to listen on '%s'", s.cfg.ListenAddress)
	}

	s.mtx.Lock()
	s.listener = l
	s.mtx.Unlock()

	s.log.Infof("listening for legacy switch connections on '%s'", l.Addr())

	return nil
}

func (s *Server) Addr() net.Addr {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

// Serve accepts connections until ctx is cancelled or the listener fails.
// Live sessions are left to the registry's owner to shut down.
func (s *Server) Serve(ctx context.Context) error {
	s.mtx.Lock()
	l := s.listener
	s.mtx.Unlock()

	if l == nil {
		return errors.New("Listen must be called before Serve")
	}

	go func() {
		<-ctx.Done()
		l.Close()
	}()

	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.log.Debug("listener closed")
				return nil
			}

			return errors.Wrap(err, "unable to accept connection")
		}

		if err := s.attach(conn); err != nil {
			s.log.Errorf("unable to attach connection from '%s': %s", conn.RemoteAddr(), err)
			conn.Close()
		}
	}
}

// attach starts a session for conn and makes it the live session for this
// lps, superseding any previous one.
func (s *Server) attach(conn net.Conn) error {
	session, err := New(&Config{
		LpsID:      s.cfg.LpsID,
		Conn:       conn,
		Serializer: s.cfg.Serializer,
		MsgLog:     s.cfg.MsgLog,
		Queue:      s.cfg.Queue,
		Translator: s.cfg.Translator,
		Log:        s.log,
	})
	if err != nil {
		return errors.Wrap(err, "unable to create session")
	}

	if previous := s.cfg.Registry.Register(session); previous != nil {
		s.log.Warningf("new connection from '%s' supersedes session '%s'", conn.RemoteAddr(), previous.ID)

		if err := previous.Shutdown(); err != nil {
			s.log.Warningf("error shutting down superseded session: %s", err)
		}
	}

	if err := session.Start(); err != nil {
		s.cfg.Registry.Unregister(session)
		return errors.Wrap(err, "unable to start session")
	}

	go func() {
		<-session.Done()
		s.cfg.Registry.Unregister(session)
	}()

	return nil
}
