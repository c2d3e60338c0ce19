package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memkit/mem"
)

func TestCountingTracksTraffic(t *testing.T) {
	c := NewCounting(HeapAllocator{})

	b1 := c.Allocate(100)
	b2 := c.Allocate(200)
	require.False(t, b1.IsZero())
	require.False(t, b2.IsZero())

	stats := c.Stats()
	assert.Equal(t, int64(2), stats.Allocs)
	assert.Equal(t, int64(300), stats.OutstandingBytes)
	assert.Equal(t, int64(2), stats.OutstandingBlocks)

	c.Deallocate(b1)
	stats = c.Stats()
	assert.Equal(t, int64(1), stats.Frees)
	assert.Equal(t, int64(200), stats.OutstandingBytes)
	assert.Equal(t, int64(1), stats.OutstandingBlocks)

	c.Deallocate(b2)
	stats = c.Stats()
	assert.Zero(t, stats.OutstandingBytes)
	assert.Zero(t, stats.OutstandingBlocks)
}

func TestCountingRecordsFailures(t *testing.T) {
	c := NewCounting(NullAllocator{})

	b := c.Allocate(64)
	assert.True(t, b.IsZero())

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Failed)
	assert.Zero(t, stats.Allocs, "a failed call is not an allocation")
	assert.Zero(t, stats.OutstandingBytes)
}

func TestCountingDeallocateEmptyIsNoop(t *testing.T) {
	c := NewCounting(HeapAllocator{})
	c.Deallocate(mem.Block{})

	assert.Zero(t, c.Stats().Frees)
}

func TestCountingOwnsPassThrough(t *testing.T) {
	stack := NewStack(128)
	c := NewCounting(stack)

	b := c.Allocate(32)
	require.False(t, b.IsZero())
	assert.True(t, c.Owns(b))
	c.Deallocate(b)

	assert.False(t, NewCounting(HeapAllocator{}).Owns(b))
}
