package prometheus

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var _ = Describe("Prometheus", func() {
	Context("Incr/Mute", func() {
		It("accumulates and mutes counters", func() {
			Incr("lps1-authorization", 1)
			Incr("lps1-authorization", 2)
			Expect(Get("lps1-authorization")).To(Equal(3.0))

			Mute("lps1-authorization")
			Expect(Get("lps1-authorization")).To(Equal(0.0))
		})
	})

	Context("IncrPromCounter", func() {
		It("auto-creates unknown counters", func() {
			IncrPromCounter("lpsgateway-test-counter", 2)
			IncrPromCounter("lpsgateway_test_counter", 1)

			prometheusMutex.RLock()
			c, ok := prometheusCounters["lpsgateway_test_counter"]
			prometheusMutex.RUnlock()

			Expect(ok).To(BeTrue())
			Expect(testutil.ToFloat64(c)).To(Equal(3.0))
		})
	})
})
