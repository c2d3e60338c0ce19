package alloc

import "os"

// Runtime debug toggles, read once at startup.
var (
	// debugChecks enables contract-violation panics (double free, foreign
	// block, misuse of NullAllocator). Off by default to keep the release
	// path zero-overhead.
	debugChecks = os.Getenv("MEMKIT_DEBUG") != ""

	// logAlloc logs global allocator traffic.
	logAlloc = os.Getenv("MEMKIT_LOG_ALLOC") != ""

	// poisonFree fills freed typed storage with 0xDD to make
	// use-after-free visible.
	poisonFree = os.Getenv("MEMKIT_POISON") != ""
)

const poisonByte = 0xDD

func poison(b []byte) {
	for i := range b {
		b[i] = poisonByte
	}
}
