package wire

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/vdex/internal/core/domain"
	"go.trai.ch/zerr"
)

// reader walks an encoded payload after header validation.
type reader struct {
	data []byte
	off  int
}

// newReader validates the header (magic, version, checksum) and positions
// the reader at the start of the payload.
func newReader(data []byte) (*reader, error) {
	if len(data) < headerSize {
		return nil, zerr.With(domain.ErrTruncatedData, "length", len(data))
	}
	if !bytes.Equal(data[:4], magic[:]) {
		return nil, zerr.With(domain.ErrMalformedDeps, "defect", "bad magic")
	}
	if data[4] != FormatVersion {
		return nil, zerr.With(domain.ErrUnsupportedVersion, "version", data[4])
	}
	payload := data[headerSize:]
	want := binary.LittleEndian.Uint64(data[5:13])
	if got := xxhash.Sum64(payload); got != want {
		return nil, zerr.With(domain.ErrChecksumMismatch, "computed", got)
	}
	return &reader{data: payload}, nil
}

func (r *reader) remaining() int {
	return len(r.data) - r.off
}

func (r *reader) uvarint() (uint64, error) {
	v, n := binary.Uvarint(r.data[r.off:])
	if n == 0 {
		return 0, zerr.With(domain.ErrTruncatedData, "offset", r.off)
	}
	if n < 0 {
		return 0, zerr.With(domain.ErrMalformedDeps, "defect", "varint overflow")
	}
	r.off += n
	return v, nil
}

// index reads a uvarint that must fit in 32 bits.
func (r *reader) index() (uint32, error) {
	v, err := r.uvarint()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, zerr.With(domain.ErrMalformedDeps, "defect", "index overflow")
	}
	return uint32(v), nil
}

// flags reads a uvarint that must fit in 16 bits.
func (r *reader) flags() (uint16, error) {
	v, err := r.uvarint()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint16 {
		return 0, zerr.With(domain.ErrMalformedDeps, "defect", "access flags overflow")
	}
	return uint16(v), nil
}

func (r *reader) bytes(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, zerr.With(domain.ErrTruncatedData, "offset", r.off)
	}
	out := r.data[r.off : r.off+n]
	r.off += n
	return out, nil
}

func (r *reader) str() (string, error) {
	n, err := r.uvarint()
	if err != nil {
		return "", err
	}
	if uint64(r.remaining()) < n {
		return "", zerr.With(domain.ErrTruncatedData, "offset", r.off)
	}
	b, err := r.bytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// skipRecords consumes a count-prefixed sequence of records made of the
// given number of uvarint fields.
func (r *reader) skipRecords(fields int) error {
	n, err := r.uvarint()
	if err != nil {
		return err
	}
	for range n {
		for range fields {
			if _, err := r.uvarint(); err != nil {
				return err
			}
		}
	}
	return nil
}
