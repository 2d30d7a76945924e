package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/batchcorp/lpsgateway/api"
	"github.com/batchcorp/lpsgateway/config"
	"github.com/batchcorp/lpsgateway/dispatch"
	"github.com/batchcorp/lpsgateway/msglog"
	"github.com/batchcorp/lpsgateway/options"
	"github.com/batchcorp/lpsgateway/prometheus"
	"github.com/batchcorp/lpsgateway/queue"
	"github.com/batchcorp/lpsgateway/validate"
)

// ShutdownTimeout bounds how long the HTTP server gets to drain on exit
const ShutdownTimeout = 5 * time.Second

func main() {
	kongCtx, cliOpts, err := options.New(os.Args[1:])
	if err != nil {
		logrus.Fatalf("Unable to handle CLI input: %s", err)
	}

	if cliOpts.Global.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else if cliOpts.Global.Quiet {
		logrus.SetLevel(logrus.ErrorLevel)
	}

	// JSON formatter for log output if not running in a TTY - colors are fun!
	if !terminal.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	switch cliOpts.Global.XAction {
	case options.ActionVersion:
		fmt.Println(options.VERSION)
	case options.ActionServe:
		err = serve(&cliOpts.Serve)
	default:
		logrus.Fatalf("Unrecognized command: %s", kongCtx.Command())
	}

	if err != nil {
		logrus.Fatalf("Unable to complete command: %s", err)
	}
}

func serve(serveOpts *options.ServeOptions) error {
	if err := validate.ServeOptionsForCLI(serveOpts); err != nil {
		return errors.Wrap(err, "unable to validate serve options")
	}

	cfg, err := config.FromOptions(serveOpts)
	if err != nil {
		return errors.Wrap(err, "unable to load relay config")
	}

	msgLog, err := msglog.New(msgLogConfig(serveOpts))
	if err != nil {
		return errors.Wrap(err, "unable to create message log")
	}

	q, err := queue.New(queueConfig(serveOpts))
	if err != nil {
		return errors.Wrap(err, "unable to create queue")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gw, err := newGateway(cfg, msgLog, q)
	if err != nil {
		return err
	}

	prometheus.InitPrometheusMetrics()
	prometheus.Start(serveOpts.StatsReportInterval)
	defer prometheus.Stop()

	dispatcher, err := dispatch.New(q, nil)
	if err != nil {
		return errors.Wrap(err, "unable to create dispatcher")
	}

	a, err := api.New(&api.Config{
		Version:       options.VERSION,
		ListenAddress: serveOpts.HTTPListenAddress,
		Registry:      gw.registry,
		MsgLog:        msgLog,
		Dispatcher:    dispatcher,
	})
	if err != nil {
		return errors.Wrap(err, "unable to create API")
	}

	srv, err := a.Start()
	if err != nil {
		return errors.Wrap(err, "unable to start API")
	}

	logrus.Infof("lpsgateway %s serving %d relay(s), API on %s", options.VERSION, len(cfg.Relays),
		serveOpts.HTTPListenAddress)

	runErr := gw.run(ctx)

	logrus.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		logrus.Warningf("unable to shutdown API server: %s", err)
	}

	if err := q.Close(shutdownCtx); err != nil {
		logrus.Warningf("unable to close queue: %s", err)
	}

	if err := msgLog.Close(shutdownCtx); err != nil {
		logrus.Warningf("unable to close message log: %s", err)
	}

	return runErr
}

func msgLogConfig(serveOpts *options.ServeOptions) *msglog.Config {
	return &msglog.Config{
		Type:                   serveOpts.MsgLogType,
		RedisAddress:           serveOpts.RedisAddress,
		RedisPassword:          serveOpts.RedisPassword,
		RedisDatabase:          serveOpts.RedisDatabase,
		PostgresDSN:            serveOpts.PostgresDSN,
		PostgresMaxConnections: serveOpts.PostgresMaxConnections,
		MongoDSN:               serveOpts.MongoDSN,
		MongoDatabase:          serveOpts.MongoDatabase,
		MongoCollection:        serveOpts.MongoCollection,
	}
}

func queueConfig(serveOpts *options.ServeOptions) *queue.Config {
	return &queue.Config{
		Type:                      serveOpts.QueueType,
		RedisAddress:              serveOpts.RedisAddress,
		RedisPassword:             serveOpts.RedisPassword,
		RedisDatabase:             serveOpts.RedisDatabase,
		RedisStreamsConsumerGroup: serveOpts.RedisStreamsConsumerGroup,
		RedisStreamsConsumerName:  serveOpts.RedisStreamsConsumerName,
		KafkaBrokers:              serveOpts.KafkaBrokers,
		KafkaGroupID:              serveOpts.KafkaGroupID,
		RabbitURL:                 serveOpts.RabbitURL,
		RabbitPrefetch:            serveOpts.RabbitPrefetch,
	}
}
