package relay

import (
	"net"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/batchcorp/lpsgateway/msglog"
	"github.com/batchcorp/lpsgateway/queue"
	"github.com/batchcorp/lpsgateway/serializers"
	"github.com/batchcorp/lpsgateway/translate"
)

func newTestSession(lpsID string) *Session {
	translator, err := translate.New(&translate.Config{LpsID: lpsID})
	Expect(err).ToNot(HaveOccurred())

	conn, _ := net.Pipe()

	s, err := New(&Config{
		LpsID:      lpsID,
		Conn:       conn,
		Serializer: &serializers.JSON{},
		MsgLog:     msglog.NewMemory(nil),
		Queue:      queue.NewMemory(&queue.Config{}),
		Translator: translator,
	})
	Expect(err).ToNot(HaveOccurred())

	return s
}

var _ = Describe("Registry", func() {
	var r *Registry

	BeforeEach(func() {
		r = NewRegistry()
	})

	It("returns the superseded session", func() {
		first := newTestSession("lps1")
		second := newTestSession("lps1")

		Expect(r.Register(first)).To(BeNil())
		Expect(r.Register(second)).To(BeIdenticalTo(first))

		current, ok := r.Get("lps1")
		Expect(ok).To(BeTrue())
		Expect(current).To(BeIdenticalTo(second))
	})

	It("only unregisters the live session", func() {
		first := newTestSession("lps1")
		second := newTestSession("lps1")

		r.Register(first)
		r.Register(second)
		r.Unregister(first)

		_, ok := r.Get("lps1")
		Expect(ok).To(BeTrue())

		r.Unregister(second)

		_, ok = r.Get("lps1")
		Expect(ok).To(BeFalse())
	})

	It("lists sessions ordered by lps id", func() {
		r.Register(newTestSession("lps2"))
		r.Register(newTestSession("lps1"))

		infos := r.List()
		Expect(infos).To(HaveLen(2))
		Expect(infos[0].LpsID).To(Equal("lps1"))
		Expect(infos[1].LpsID).To(Equal("lps2"))
		Expect(infos[0].State).To(Equal("open"))
	})

	It("shuts everything down", func() {
		s := newTestSession("lps1")
		r.Register(s)

		r.ShutdownAll()

		Expect(s.State()).To(Equal(StateClosed))
		Expect(r.List()).To(BeEmpty())
	})
})
