package wire_test

import (
	"encoding/binary"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vdex/internal/adapters/memenv"
	"go.trai.ch/vdex/internal/adapters/wire"
	"go.trai.ch/vdex/internal/core/domain"
	"go.trai.ch/vdex/internal/core/ports"
	"go.trai.ch/vdex/internal/engine/tracker"
)

// fixture builds a classpath module and a compiled module with a few
// recordable relationships between them.
func fixture(t *testing.T) (*memenv.Module, *memenv.Module) {
	t.Helper()

	cp := memenv.NewModule("cp")
	obj := cp.DefineClass("Ljava/lang/Object;", 0x0001, "")
	obj.AddMethod("toString", "()Ljava/lang/String;", 0x0001)
	cp.DefineClass("Lcp/X;", 0x0001, "Ljava/lang/Object;")

	m1 := memenv.NewModule("m1")
	m1.DefineClass("Lm1/C;", 0x0001, "Lcp/X;")
	m1.DefineClass("Lm1/D;", 0x0001, "Lm1/C;")

	memenv.NewEnv(cp, m1)
	return cp, m1
}

func record(cp, m1 *memenv.Module) *tracker.Tracker {
	rec := tracker.New([]ports.Module{m1}, true)
	rec.RecordClassResolution(m1, 0, cp.Class("Lcp/X;"))
	rec.RecordClassResolution(m1, 1, nil)
	rec.RecordMethodResolution(m1, 0, cp.Class("Ljava/lang/Object;").Method("toString"))
	rec.RecordAssignability(m1, cp.Class("Lcp/X;"), m1.Class("Lm1/D;"), true, true)
	rec.RecordClassVerified(m1, 0)
	rec.RecordClassVerified(m1, 1)
	rec.RecordClassRedefined(m1, 1)
	return rec
}

func TestCodec_RoundTrip(t *testing.T) {
	cp, m1 := fixture(t)
	rec := record(cp, m1)
	modules := []ports.Module{m1}

	data := wire.Encode(modules, rec.Deps())

	decoded, err := wire.Decode(modules, data)
	require.NoError(t, err)

	assert.True(t, rec.Deps().Equal(decoded))
	assert.False(t, decoded.OutputOnly(), "decoded aggregates gate trust")
}

func TestCodec_CanonicalEncoding(t *testing.T) {
	cp, m1 := fixture(t)
	modules := []ports.Module{m1}

	// Same facts, different recording order: the extra-string pools differ
	// internally but the canonical encoding must not.
	a := tracker.New(modules, true)
	a.RecordMethodResolution(m1, 0, cp.Class("Ljava/lang/Object;").Method("toString"))
	a.RecordAssignability(m1, cp.Class("Lcp/X;"), m1.Class("Lm1/D;"), true, true)

	b := tracker.New(modules, true)
	b.RecordAssignability(m1, cp.Class("Lcp/X;"), m1.Class("Lm1/D;"), true, true)
	b.RecordMethodResolution(m1, 0, cp.Class("Ljava/lang/Object;").Method("toString"))

	assert.Equal(t, wire.Encode(modules, a.Deps()), wire.Encode(modules, b.Deps()))
}

func TestCodec_EncodeMismatchedModulesPanics(t *testing.T) {
	cp, m1 := fixture(t)
	rec := record(cp, m1)

	assert.Panics(t, func() {
		wire.Encode([]ports.Module{m1, cp}, rec.Deps())
	})
}

// reseal recomputes the payload checksum after a deliberate mutation.
func reseal(data []byte) []byte {
	binary.LittleEndian.PutUint64(data[5:13], xxhash.Sum64(data[13:]))
	return data
}

func TestCodec_DecodeFailures(t *testing.T) {
	cp, m1 := fixture(t)
	rec := record(cp, m1)
	modules := []ports.Module{m1}
	data := wire.Encode(modules, rec.Deps())

	t.Run("short header", func(t *testing.T) {
		_, err := wire.Decode(modules, data[:8])
		require.ErrorIs(t, err, domain.ErrTruncatedData)
	})

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[0] = 'X'
		_, err := wire.Decode(modules, bad)
		require.ErrorIs(t, err, domain.ErrMalformedDeps)
	})

	t.Run("unsupported version", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[4] = 99
		_, err := wire.Decode(modules, bad)
		require.ErrorIs(t, err, domain.ErrUnsupportedVersion)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[len(bad)-1] ^= 0xFF
		_, err := wire.Decode(modules, bad)
		require.ErrorIs(t, err, domain.ErrChecksumMismatch)
	})

	t.Run("truncated payload", func(t *testing.T) {
		bad := reseal(append([]byte(nil), data[:len(data)-1]...))
		_, err := wire.Decode(modules, bad)
		require.ErrorIs(t, err, domain.ErrTruncatedData)
	})

	t.Run("trailing bytes", func(t *testing.T) {
		bad := reseal(append(append([]byte(nil), data...), 0x00))
		_, err := wire.Decode(modules, bad)
		require.ErrorIs(t, err, domain.ErrTrailingData)
	})

	t.Run("bit vector length disagreement", func(t *testing.T) {
		grown := memenv.NewModule("m1")
		grown.DefineClass("Lm1/C;", 0x0001, "")
		grown.DefineClass("Lm1/D;", 0x0001, "")
		grown.DefineClass("Lm1/E;", 0x0001, "")

		_, err := wire.Decode([]ports.Module{grown}, data)
		require.ErrorIs(t, err, domain.ErrBitVectorLength)
	})
}

func TestCodec_DecodeVerifiedClasses(t *testing.T) {
	cp, m1 := fixture(t)
	rec := record(cp, m1)
	modules := []ports.Module{m1}
	data := wire.Encode(modules, rec.Deps())

	bits, err := wire.DecodeVerifiedClasses(modules, data)
	require.NoError(t, err)
	require.Len(t, bits, 1)

	assert.True(t, bits[0].Equal(rec.VerifiedClasses(m1)))

	t.Run("structural checks still apply", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[len(bad)-1] ^= 0xFF
		_, err := wire.DecodeVerifiedClasses(modules, bad)
		require.ErrorIs(t, err, domain.ErrChecksumMismatch)
	})
}
