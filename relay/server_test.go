package relay

import (
	"context"
	"net"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/batchcorp/lpsgateway/msglog"
	"github.com/batchcorp/lpsgateway/queue"
	"github.com/batchcorp/lpsgateway/serializers"
	"github.com/batchcorp/lpsgateway/translate"
	"github.com/batchcorp/lpsgateway/types"
)

var _ = Describe("Server", func() {
	var (
		registry *Registry
		memLog   *msglog.Memory
		server   *Server
		cancel   context.CancelFunc
		served   chan error
	)

	BeforeEach(func() {
		var err error
		var ctx context.Context

		registry = NewRegistry()
		memLog = msglog.NewMemory(nil)

		translator, err := translate.New(&translate.Config{LpsID: "lps1"})
		Expect(err).ToNot(HaveOccurred())

		server, err = NewServer(&ServerConfig{
			LpsID:         "lps1",
			ListenAddress: "127.0.0.1:0",
			Serializer:    &serializers.JSON{},
			MsgLog:        memLog,
			Queue:         queue.NewMemory(&queue.Config{}),
			Translator:    translator,
			Registry:      registry,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(server.Listen()).To(Succeed())

		ctx, cancel = context.WithCancel(context.Background())
		served = make(chan error, 1)

		go func() {
			served <- server.Serve(ctx)
		}()
	})

	AfterEach(func() {
		cancel()
		Eventually(served).Should(Receive(BeNil()))
		registry.ShutdownAll()
	})

	dial := func() net.Conn {
		conn, err := net.Dial("tcp", server.Addr().String())
		Expect(err).ToNot(HaveOccurred())

		return conn
	}

	It("validates config", func() {
		_, err := NewServer(nil)
		Expect(err).To(HaveOccurred())

		_, err = NewServer(&ServerConfig{LpsID: "lps1"})
		Expect(err).To(HaveOccurred())
	})

	It("registers a session per connection", func() {
		conn := dial()
		defer conn.Close()

		Eventually(func() int { return len(registry.List()) }).Should(Equal(1))

		s, ok := registry.Get("lps1")
		Expect(ok).To(BeTrue())
		Expect(s.State()).To(Equal(StateRunning))
		Expect(registry.List()[0].State).To(Equal("running"))
	})

	It("relays messages from the accepted connection", func() {
		conn := dial()
		defer conn.Close()

		data, err := (&serializers.JSON{}).Encode(types.LegacyMessage{0: "0200", 41: "001", 42: "abc", 103: "1"})
		Expect(err).ToNot(HaveOccurred())
		Expect(serializers.WriteFrame(conn, data)).To(Succeed())

		Eventually(func() error {
			_, err := memLog.FindByContent(context.Background(), msglog.Predicate{Field: 0, Value: "0200"})
			return err
		}, 2*time.Second).Should(Succeed())
	})

	It("supersedes the previous session for the same lps", func() {
		first := dial()
		defer first.Close()

		Eventually(func() bool { _, ok := registry.Get("lps1"); return ok }).Should(BeTrue())
		old, _ := registry.Get("lps1")

		second := dial()
		defer second.Close()

		Eventually(old.Done(), 2*time.Second).Should(BeClosed())
		Eventually(func() string {
			s, ok := registry.Get("lps1")
			if !ok {
				return ""
			}
			return s.ID
		}).ShouldNot(Or(BeEmpty(), Equal(old.ID)))
	})

	It("unregisters sessions whose remote hangs up", func() {
		conn := dial()

		Eventually(func() int { return len(registry.List()) }).Should(Equal(1))

		conn.Close()

		Eventually(func() int { return len(registry.List()) }, 2*time.Second).Should(BeZero())
	})
})
