package main

import (
	"context"
	"net"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/batchcorp/lpsgateway/config"
	"github.com/batchcorp/lpsgateway/msglog"
	"github.com/batchcorp/lpsgateway/options"
	"github.com/batchcorp/lpsgateway/queue"
	"github.com/batchcorp/lpsgateway/serializers"
	"github.com/batchcorp/lpsgateway/types"
)

// freeAddress reserves and releases a loopback port
func freeAddress() string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).ToNot(HaveOccurred())

	addr := l.Addr().String()
	Expect(l.Close()).To(Succeed())

	return addr
}

var _ = Describe("Main", func() {
	Context("backend config", func() {
		It("maps serve options onto the message log config", func() {
			cfg := msgLogConfig(&options.ServeOptions{
				MsgLogType:      "mongo",
				MongoDSN:        "mongodb://localhost:27017",
				MongoDatabase:   "db",
				MongoCollection: "coll",
			})

			Expect(cfg.Type).To(Equal(msglog.TypeMongo))
			Expect(cfg.MongoDSN).To(Equal("mongodb://localhost:27017"))
			Expect(cfg.MongoCollection).To(Equal("coll"))
		})

		It("maps serve options onto the queue config", func() {
			cfg := queueConfig(&options.ServeOptions{
				QueueType:    "kafka",
				KafkaBrokers: []string{"localhost:9092"},
				KafkaGroupID: "group",
			})

			Expect(cfg.Type).To(Equal(queue.TypeKafka))
			Expect(cfg.KafkaBrokers).To(ConsistOf("localhost:9092"))
			Expect(cfg.KafkaGroupID).To(Equal("group"))
		})
	})

	Context("gateway", func() {
		It("serves every configured relay until cancelled", func() {
			addr1 := freeAddress()
			addr2 := freeAddress()

			cfg, err := config.FromOptions(&options.ServeOptions{
				LpsID:                   "lps1",
				ListenAddress:           addr1,
				TransactionExpiryWindow: 30 * time.Second,
			})
			Expect(err).ToNot(HaveOccurred())

			cfg.Relays = append(cfg.Relays, &config.RelayConfig{LpsID: "lps2", ListenAddress: addr2})

			memLog := msglog.NewMemory(nil)
			memQueue := queue.NewMemory(&queue.Config{})

			gw, err := newGateway(cfg, memLog, memQueue)
			Expect(err).ToNot(HaveOccurred())
			Expect(gw.servers).To(HaveLen(2))

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)

			go func() {
				done <- gw.run(ctx)
			}()

			var conn net.Conn

			Eventually(func() error {
				conn, err = net.Dial("tcp", addr2)
				return err
			}, 2*time.Second).Should(Succeed())

			defer conn.Close()

			Eventually(func() bool {
				_, ok := gw.registry.Get("lps2")
				return ok
			}, 2*time.Second).Should(BeTrue())

			s := &serializers.JSON{}

			data, err := s.Encode(types.LegacyMessage{0: "0200", 41: "T1", 42: "M1", 103: "1234"})
			Expect(err).ToNot(HaveOccurred())
			Expect(serializers.WriteFrame(conn, data)).To(Succeed())

			Eventually(func() int {
				return memQueue.Len("lps2FinancialRequests")
			}, 2*time.Second).Should(Equal(1))

			cancel()
			Eventually(done, 2*time.Second).Should(Receive(BeNil()))
			Expect(gw.registry.List()).To(BeEmpty())
		})

		It("fails when a listen address is taken", func() {
			l, err := net.Listen("tcp", "127.0.0.1:0")
			Expect(err).ToNot(HaveOccurred())
			defer l.Close()

			cfg := &config.Config{Relays: []*config.RelayConfig{{LpsID: "lps1", ListenAddress: l.Addr().String()}}}

			gw, err := newGateway(cfg, msglog.NewMemory(nil), queue.NewMemory(&queue.Config{}))
			Expect(err).ToNot(HaveOccurred())

			err = gw.run(context.Background())
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unable to start relay listener"))
		})
	})
})
