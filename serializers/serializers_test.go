package serializers

import (
	"bytes"
	"io"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/batchcorp/lpsgateway/types"
)

var _ = Describe("Serializers", func() {
	Context("JSON", func() {
		s := &JSON{}

		It("decodes what it encodes", func() {
			msg := types.LegacyMessage{0: "0100", 41: "001", 42: "abc", 28: "D00000070"}

			data, err := s.Encode(msg)
			Expect(err).ToNot(HaveOccurred())

			out, err := s.Decode(data)
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(Equal(msg))
		})

		It("requires an mti", func() {
			_, err := s.Decode([]byte(`{"41":"001"}`))
			Expect(err).To(Equal(ErrMissingMTI))

			_, err = s.Encode(types.LegacyMessage{0: "01"})
			Expect(err).To(Equal(ErrInvalidMTI))
		})

		It("rejects field keys it cannot echo back", func() {
			_, err := s.Decode([]byte(`{"0":"0100","127.2":"sub"}`))
			Expect(errors.Is(err, ErrInvalidFieldKey)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("127.2"))

			_, err = s.Decode([]byte(`{"0":"0100","-1":"x"}`))
			Expect(errors.Is(err, ErrInvalidFieldKey)).To(BeTrue())
		})

		It("errors on garbage", func() {
			_, err := s.Decode([]byte("not json"))
			Expect(err).To(HaveOccurred())
		})
	})

	Context("Frames", func() {
		It("reads back written frames in order", func() {
			buf := &bytes.Buffer{}

			Expect(WriteFrame(buf, []byte("first"))).To(Succeed())
			Expect(WriteFrame(buf, []byte("second"))).To(Succeed())

			Expect(ReadFrame(buf)).To(Equal([]byte("first")))
			Expect(ReadFrame(buf)).To(Equal([]byte("second")))

			_, err := ReadFrame(buf)
			Expect(err).To(Equal(io.EOF))
		})

		It("rejects oversized frames", func() {
			err := WriteFrame(&bytes.Buffer{}, make([]byte, MaxFrameSize+1))
			Expect(err).To(Equal(ErrFrameTooLarge))
		})

		It("reports truncated bodies", func() {
			_, err := ReadFrame(bytes.NewReader([]byte{0x00, 0x05, 'a'}))
			Expect(err).To(HaveOccurred())
			Expect(err).ToNot(Equal(io.EOF))
		})
	})
})
