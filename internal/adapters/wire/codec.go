// Package wire implements the binary persistence format for dependency
// aggregates. The format is versioned and self-checking: a fixed magic, a
// format version byte and an xxhash64 checksum of the payload precede the
// per-module records. The module list is supplied symmetrically on encode
// and decode and is never persisted.
package wire

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/vdex/internal/core/domain"
	"go.trai.ch/vdex/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// FormatVersion identifies the current payload layout.
	FormatVersion = 1

	headerSize = 4 + 1 + 8
)

var magic = [4]byte{'V', 'D', 'E', 'P'}

// Encode serializes deps into a byte buffer, emitting one record per module
// in list order. Encoding is canonical: two aggregates with identical
// logical content produce identical bytes regardless of the order facts
// were recorded in. The module list must be the one deps was declared over.
func Encode(modules []ports.Module, deps *domain.Deps) []byte {
	if len(modules) != deps.ModuleCount() {
		panic("wire: module list does not match dependency aggregate")
	}

	var payload []byte
	for i := range modules {
		payload = appendModuleDeps(payload, deps.ModuleDeps(i).Canonical())
	}

	buf := make([]byte, 0, headerSize+len(payload))
	buf = append(buf, magic[:]...)
	buf = append(buf, FormatVersion)
	buf = binary.LittleEndian.AppendUint64(buf, xxhash.Sum64(payload))
	return append(buf, payload...)
}

func appendModuleDeps(buf []byte, d *domain.ModuleDeps) []byte {
	extras := d.ExtraStrings()
	buf = binary.AppendUvarint(buf, uint64(len(extras)))
	for _, s := range extras {
		buf = binary.AppendUvarint(buf, uint64(len(s)))
		buf = append(buf, s...)
	}

	buf = appendPairs(buf, d.SortedAssignable())
	buf = appendPairs(buf, d.SortedUnassignable())

	classes := d.SortedClasses()
	buf = binary.AppendUvarint(buf, uint64(len(classes)))
	for _, rec := range classes {
		buf = binary.AppendUvarint(buf, uint64(rec.TypeIndex))
		buf = binary.AppendUvarint(buf, uint64(rec.AccessFlags))
	}

	buf = appendMembers(buf, d.SortedFields())
	buf = appendMembers(buf, d.SortedMethods())

	buf = appendBits(buf, d.Verified())
	return appendBits(buf, d.Redefined())
}

func appendPairs(buf []byte, pairs []domain.TypeAssignability) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(pairs)))
	for _, pair := range pairs {
		buf = binary.AppendUvarint(buf, uint64(pair.Destination))
		buf = binary.AppendUvarint(buf, uint64(pair.Source))
	}
	return buf
}

func appendMembers(buf []byte, recs []domain.MemberResolution) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(recs)))
	for _, rec := range recs {
		buf = binary.AppendUvarint(buf, uint64(rec.MemberIndex))
		buf = binary.AppendUvarint(buf, uint64(rec.AccessFlags))
		buf = binary.AppendUvarint(buf, uint64(rec.DeclaringClass))
	}
	return buf
}

func appendBits(buf []byte, bits domain.BitVector) []byte {
	buf = binary.AppendUvarint(buf, uint64(bits.Len()))
	return append(buf, bits.Bytes()...)
}

// Decode reconstructs an aggregate from data for the given module list.
// It fails on truncated input, an unknown version, a checksum mismatch, a
// bit vector disagreeing with a module's class definition count, or
// trailing bytes after the last module's record. On failure no usable
// aggregate is returned. The decoded aggregate is in trust-check mode
// (OutputOnly reports false).
func Decode(modules []ports.Module, data []byte) (*domain.Deps, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, err
	}

	shapes := make([]domain.ModuleShape, len(modules))
	for i, m := range modules {
		shapes[i] = domain.ModuleShape{ClassDefs: m.ClassDefCount(), Strings: m.StringCount()}
	}
	deps := domain.NewDeps(shapes, false)

	for i, m := range modules {
		if err := decodeModuleDeps(r, m, deps.ModuleDeps(i)); err != nil {
			return nil, err
		}
	}
	if r.remaining() > 0 {
		return nil, zerr.With(domain.ErrTrailingData, "bytes", r.remaining())
	}
	return deps, nil
}

// DecodeVerifiedClasses extracts only the verified-classes bit vectors,
// one per module in list order, skipping the remainder of each record. It
// applies the same structural checks as Decode.
func DecodeVerifiedClasses(modules []ports.Module, data []byte) ([]domain.BitVector, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, err
	}

	out := make([]domain.BitVector, len(modules))
	for i, m := range modules {
		bits, err := skipToVerified(r, m)
		if err != nil {
			return nil, err
		}
		out[i] = bits
	}
	if r.remaining() > 0 {
		return nil, zerr.With(domain.ErrTrailingData, "bytes", r.remaining())
	}
	return out, nil
}

func decodeModuleDeps(r *reader, m ports.Module, d *domain.ModuleDeps) error {
	extras, err := r.uvarint()
	if err != nil {
		return err
	}
	for range extras {
		s, err := r.str()
		if err != nil {
			return err
		}
		d.Intern(s)
	}

	if err := decodePairs(r, d, true); err != nil {
		return err
	}
	if err := decodePairs(r, d, false); err != nil {
		return err
	}

	classes, err := r.uvarint()
	if err != nil {
		return err
	}
	for range classes {
		typeIndex, err := r.index()
		if err != nil {
			return err
		}
		flags, err := r.flags()
		if err != nil {
			return err
		}
		d.AddClass(domain.ClassResolution{TypeIndex: typeIndex, AccessFlags: flags})
	}

	if err := decodeMembers(r, d.AddField); err != nil {
		return err
	}
	if err := decodeMembers(r, d.AddMethod); err != nil {
		return err
	}

	verified, err := decodeBits(r, m)
	if err != nil {
		return err
	}
	redefined, err := decodeBits(r, m)
	if err != nil {
		return err
	}
	d.SetBitVectors(verified, redefined)
	return nil
}

func decodePairs(r *reader, d *domain.ModuleDeps, assignable bool) error {
	n, err := r.uvarint()
	if err != nil {
		return err
	}
	for range n {
		dest, err := r.index()
		if err != nil {
			return err
		}
		src, err := r.index()
		if err != nil {
			return err
		}
		d.AddAssignability(domain.TypeAssignability{
			Destination: domain.StringID(dest),
			Source:      domain.StringID(src),
		}, assignable)
	}
	return nil
}

func decodeMembers(r *reader, add func(domain.MemberResolution)) error {
	n, err := r.uvarint()
	if err != nil {
		return err
	}
	for range n {
		memberIndex, err := r.index()
		if err != nil {
			return err
		}
		flags, err := r.flags()
		if err != nil {
			return err
		}
		declaring, err := r.index()
		if err != nil {
			return err
		}
		add(domain.MemberResolution{
			MemberIndex:    memberIndex,
			AccessFlags:    flags,
			DeclaringClass: domain.StringID(declaring),
		})
	}
	return nil
}

func decodeBits(r *reader, m ports.Module) (domain.BitVector, error) {
	n, err := r.uvarint()
	if err != nil {
		return domain.BitVector{}, err
	}
	if n != uint64(m.ClassDefCount()) {
		return domain.BitVector{}, zerr.With(zerr.With(domain.ErrBitVectorLength,
			"module", m.Name()), "encoded", n)
	}
	packed, err := r.bytes((int(n) + 7) / 8)
	if err != nil {
		return domain.BitVector{}, err
	}
	bits, ok := domain.BitVectorFromBytes(int(n), packed)
	if !ok {
		return domain.BitVector{}, zerr.With(domain.ErrMalformedDeps, "defect", "stray bits")
	}
	return bits, nil
}

// skipToVerified consumes one module record, discarding everything but the
// verified bit vector (the trailing redefined vector is still
// length-checked so structural defects surface here too).
func skipToVerified(r *reader, m ports.Module) (domain.BitVector, error) {
	extras, err := r.uvarint()
	if err != nil {
		return domain.BitVector{}, err
	}
	for range extras {
		if _, err := r.str(); err != nil {
			return domain.BitVector{}, err
		}
	}
	for _, width := range []int{2, 2, 2, 3, 3} {
		if err := r.skipRecords(width); err != nil {
			return domain.BitVector{}, err
		}
	}
	verified, err := decodeBits(r, m)
	if err != nil {
		return domain.BitVector{}, err
	}
	if _, err := decodeBits(r, m); err != nil {
		return domain.BitVector{}, err
	}
	return verified, nil
}
