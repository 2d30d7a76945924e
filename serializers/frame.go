package serializers

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// MaxFrameSize is the largest payload a 2-byte length header can describe
const MaxFrameSize = 1<<16 - 1

var ErrFrameTooLarge = errors.New("frame exceeds maximum size")

// ReadFrame reads one message framed with a 2-byte big-endian length header.
// io.EOF is returned untouched when the peer closes between frames.
func ReadFrame(r io.Reader) ([]byte, error) {
	header := make([]byte, 2)

	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}

	data := make([]byte, binary.BigEndian.Uint16(header))

	if _, err := io.ReadFull(r, data); err != nil {
		return nil, errors.Wrap(err, "unable to read frame body")
	}

	return data, nil
}

// WriteFrame writes data prefixed with its 2-byte length as a single write
func WriteFrame(w io.Writer, data []byte) error {
	if len(data) > MaxFrameSize {
		return ErrFrameTooLarge
	}

	buf := make([]byte, 2+len(data))
	binary.BigEndian.PutUint16(buf, uint16(len(data)))
	copy(buf[2:], data)

	if _, err := w.Write(buf); err != nil {
		return errors.Wrap(err, "unable to write frame")
	}

	return nil
}
