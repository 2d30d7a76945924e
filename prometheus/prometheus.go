// Singleton so that it's easier to use in other packages
package prometheus

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/relistan/go-director"
	"github.com/sirupsen/logrus"
)

const (
	LpsGatewayMessagesReceived     = "lpsgateway_messages_received"
	LpsGatewayUnrecognizedMessages = "lpsgateway_unrecognized_messages"
	LpsGatewayDecodeErrors         = "lpsgateway_decode_errors"
	LpsGatewayPersistenceErrors    = "lpsgateway_persistence_errors"
	LpsGatewayTranslationErrors    = "lpsgateway_translation_errors"
	LpsGatewayDispatchErrors       = "lpsgateway_dispatch_errors"
	LpsGatewayReversalRejections   = "lpsgateway_reversal_rejections"
	LpsGatewayResponsesDelivered   = "lpsgateway_responses_delivered"
	LpsGatewayDeliveryErrors       = "lpsgateway_delivery_errors"
	LpsGatewayQueueErrors          = "lpsgateway_queue_errors"
	LpsGatewaySessions             = "lpsgateway_sessions"
)

var (
	ReportInterval = 10 * time.Second

	mutex    = &sync.RWMutex{}
	counters = make(map[string]float64, 0)

	prometheusMutex       = &sync.RWMutex{}
	prometheusCounters    = make(map[string]prometheus.Counter)
	prometheusVecCounters = make(map[string]*prometheus.CounterVec)
	prometheusGauges      = make(map[string]prometheus.Gauge)

	looper director.Looper
)

// Start initiates periodic stats reporting to the log
func Start(interval time.Duration) {
	if interval <= 0 {
		interval = ReportInterval
	}

	looper = director.NewImmediateTimedLooper(director.FOREVER, interval, make(chan error, 1))

	logrus.Debugf("Launching stats reporter ('%s' interval)", interval)

	go func() {
		looper.Loop(func() error {
			mutex.Lock()
			defer mutex.Unlock()

			for counterName, counterValue := range counters {
				perSecond := counterValue / interval.Seconds()

				logrus.Infof("STATS [%s]: %.2f / %s (%.2f/s)", counterName, counterValue,
					interval, perSecond)

				// Reset it
				counters[counterName] = 0
			}

			return nil
		})
	}()
}

// Stop halts the stats reporter started by Start
func Stop() {
	if looper != nil {
		looper.Quit()
	}
}

// InitPrometheusMetrics sets up prometheus counters/gauges
func InitPrometheusMetrics() {
	prometheusMutex.Lock()
	defer prometheusMutex.Unlock()

	prometheusGauges[LpsGatewaySessions] = promauto.NewGauge(prometheus.GaugeOpts{
		Name: LpsGatewaySessions,
		Help: "Number of live legacy switch sessions",
	})

	prometheusVecCounters[LpsGatewayMessagesReceived] = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: LpsGatewayMessagesReceived,
		Help: "Legacy messages received, by lps and category",
	}, []string{"lps_id", "category"})

	for name, help := range map[string]string{
		LpsGatewayUnrecognizedMessages: "Legacy messages dropped because their MTI is not handled",
		LpsGatewayDecodeErrors:         "Frames that could not be decoded",
		LpsGatewayPersistenceErrors:    "Errors appending to the message log",
		LpsGatewayTranslationErrors:    "Errors translating between legacy and domain messages",
		LpsGatewayDispatchErrors:       "Errors placing domain messages on work queues",
		LpsGatewayReversalRejections:   "Reversal requests answered with a negative acknowledgement",
		LpsGatewayResponsesDelivered:   "Responses written back to a legacy switch",
		LpsGatewayDeliveryErrors:       "Responses that could not be written back to a legacy switch",
		LpsGatewayQueueErrors:          "Errors reading from work queues",
	} {
		prometheusCounters[name] = promauto.NewCounter(prometheus.CounterOpts{
			Name: name,
			Help: help,
		})
	}
}

// IncrPromCounter increments a prometheus counter by the given amount
func IncrPromCounter(key string, amount float64) {
	key = strings.Replace(key, "-", "_", -1)

	prometheusMutex.Lock()
	defer prometheusMutex.Unlock()

	c, ok := prometheusCounters[key]
	if !ok {
		c = promauto.NewCounter(prometheus.CounterOpts{
			Name: key,
			Help: "Auto-created counter",
		})
		prometheusCounters[key] = c
	}

	c.Add(amount)
}

// IncrPromVecCounter increments a labeled counter created by InitPrometheusMetrics
func IncrPromVecCounter(key string, labels ...string) {
	prometheusMutex.RLock()
	defer prometheusMutex.RUnlock()

	if c, ok := prometheusVecCounters[key]; ok {
		c.WithLabelValues(labels...).Inc()
	}
}

// IncrPromGauge increments a prometheus gauge by 1
func IncrPromGauge(key string) {
	prometheusMutex.Lock()
	defer prometheusMutex.Unlock()

	if _, ok := prometheusGauges[key]; !ok {
		prometheusGauges[key] = promauto.NewGauge(prometheus.GaugeOpts{
			Name: key,
			Help: "Auto-created gauge",
		})
	}

	prometheusGauges[key].Inc()
}

// DecrPromGauge decrements a prometheus gauge by 1
func DecrPromGauge(key string) {
	prometheusMutex.RLock()
	defer prometheusMutex.RUnlock()
	c, ok := prometheusGauges[key]
	if ok {
		c.Dec()
	}
}

// Incr increments a counter by the given amount
func Incr(name string, value float64) {
	mutex.Lock()
	defer mutex.Unlock()

	if _, ok := counters[name]; !ok {
		counters[name] = 0
	}

	counters[name] += value
}

// Get returns the current value of a reported counter
func Get(name string) float64 {
	mutex.RLock()
	defer mutex.RUnlock()

	return counters[name]
}

// Mute stops reporting given stats
func Mute(name string) {
	mutex.Lock()
	defer mutex.Unlock()

	delete(counters, name)
}
