package alloc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int64
}

func TestNewReturnsZeroedStorage(t *testing.T) {
	base := GlobalStats()

	p := New[point]()
	require.NotNil(t, p.Get())
	assert.Equal(t, 1, p.Count())
	assert.Zero(t, p.Get().X)
	assert.Zero(t, p.Get().Y)

	p.Get().X = 42
	assert.Equal(t, int64(42), p.Slice()[0].X)

	Delete(p)
	assert.Equal(t, base.OutstandingBytes, GlobalStats().OutstandingBytes)
}

func TestNewSlice(t *testing.T) {
	s := NewSlice[uint32](16)
	require.NotNil(t, s.Get())
	assert.Equal(t, 16, s.Count())

	view := s.Slice()
	require.Len(t, view, 16)
	for i := range view {
		assert.Zero(t, view[i], "element %d should start zeroed", i)
		view[i] = uint32(i)
	}
	assert.Equal(t, uint32(15), view[15])

	Delete(s)
}

func TestNewSliceRejectsNonPositiveCount(t *testing.T) {
	assert.Panics(t, func() { NewSlice[uint32](0) })
	assert.Panics(t, func() { NewSlice[uint32](-1) })
}

func TestNewInitSuccess(t *testing.T) {
	p, err := NewInit[point](func(v *point) error {
		v.X = 7
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.Get().X)
	Delete(p)
}

func TestNewInitErrorReleasesStorage(t *testing.T) {
	base := GlobalStats()
	boom := errors.New("boom")

	p, err := NewInit[point](func(*point) error { return boom })
	require.ErrorIs(t, err, boom)
	assert.True(t, p.IsZero())
	assert.Equal(t, base.OutstandingBytes, GlobalStats().OutstandingBytes,
		"a failed init must not leak its allocation")
}

func TestNewInitPanicReleasesStorage(t *testing.T) {
	base := GlobalStats()

	require.Panics(t, func() {
		_, _ = NewInit[point](func(*point) error { panic("constructor blew up") })
	})
	assert.Equal(t, base.OutstandingBytes, GlobalStats().OutstandingBytes,
		"a panicking init must not leak its allocation")
}

func TestNewRejectsPointerCarryingTypes(t *testing.T) {
	type withString struct{ S string }
	type withSlice struct{ B []byte }
	type nested struct{ Inner withSlice }

	assert.Panics(t, func() { New[withString]() })
	assert.Panics(t, func() { New[withSlice]() })
	assert.Panics(t, func() { New[nested]() })
	assert.Panics(t, func() { New[*int]() })
	assert.Panics(t, func() { New[map[int]int]() })

	// And the cache must keep rejecting on repeat offenders.
	assert.Panics(t, func() { New[withString]() })
}

func TestNewAcceptsPointerFreeCompositeTypes(t *testing.T) {
	type inner struct {
		A [4]uint16
		B float64
	}
	type outer struct {
		I inner
		C complex128
	}

	v := New[outer]()
	require.NotNil(t, v.Get())
	Delete(v)
}

func TestNewZeroSizeType(t *testing.T) {
	base := GlobalStats()

	e := New[struct{}]()
	require.NotNil(t, e.Get(), "zero-size values still get a stable address")
	assert.Zero(t, e.Count())

	Delete(e)
	stats := GlobalStats()
	assert.Equal(t, base.Allocs, stats.Allocs, "zero-size types consume no storage")
	assert.Equal(t, base.OutstandingBytes, stats.OutstandingBytes)
}

func TestPoisonFillsBuffer(t *testing.T) {
	buf := make([]byte, 32)
	poison(buf)
	for i, v := range buf {
		require.Equal(t, byte(poisonByte), v, "byte %d", i)
	}
}
