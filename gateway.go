package main

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/lpsgateway/config"
	"github.com/batchcorp/lpsgateway/msglog"
	"github.com/batchcorp/lpsgateway/queue"
	"github.com/batchcorp/lpsgateway/relay"
	"github.com/batchcorp/lpsgateway/serializers"
	"github.com/batchcorp/lpsgateway/translate"
)

// gateway owns one relay server per configured lps plus the registry they
// share
type gateway struct {
	servers  []*relay.Server
	registry *relay.Registry
	log      *logrus.Entry
}

func newGateway(cfg *config.Config, msgLog msglog.IMessageLog, q queue.IQueue) (*gateway, error) {
	gw := &gateway{
		servers:  make([]*relay.Server, 0, len(cfg.Relays)),
		registry: relay.NewRegistry(),
		log:      logrus.WithField("pkg", "main"),
	}

	for _, r := range cfg.Relays {
		translator, err := translate.New(&translate.Config{
			LpsID:         r.LpsID,
			ExpiryWindow:  r.ExpiryWindow(),
			ResponseCodes: r.ResponseCodes,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "unable to create translator for '%s'", r.LpsID)
		}

		server, err := relay.NewServer(&relay.ServerConfig{
			LpsID:         r.LpsID,
			ListenAddress: r.ListenAddress,
			Serializer:    &serializers.JSON{},
			MsgLog:        msgLog,
			Queue:         q,
			Translator:    translator,
			Registry:      gw.registry,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "unable to create relay server for '%s'", r.LpsID)
		}

		gw.servers = append(gw.servers, server)
	}

	return gw, nil
}

// run listens on every relay and serves until ctx is cancelled. A listen
// failure on any relay aborts startup.
func (g *gateway) run(ctx context.Context) error {
	for _, s := range g.servers {
		if err := s.Listen(); err != nil {
			return errors.Wrap(err, "unable to start relay listener")
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	errCh := make(chan error, len(g.servers))

	for _, s := range g.servers {
		wg.Add(1)

		go func(s *relay.Server) {
			defer wg.Done()

			if err := s.Serve(ctx); err != nil {
				errCh <- err
				cancel()
			}
		}(s)
	}

	wg.Wait()

	g.registry.ShutdownAll()

	close(errCh)

	if err, ok := <-errCh; ok {
		return errors.Wrap(err, "relay server failed")
	}

	return nil
}
