package mem

import "fmt"

// Byte-size units. The binary units are what the allocator policies are
// sized in; the decimal ones exist for callers that think in powers of
// ten.
const (
	B = 1

	KiB = 1 << 10
	MiB = 1 << 20
	GiB = 1 << 30

	KB = 1000
	MB = 1000 * KB
	GB = 1000 * MB
)

// FormatSize renders a byte count using binary units, e.g. "8.0 KiB".
func FormatSize(n int64) string {
	switch {
	case n >= GiB:
		return fmt.Sprintf("%.1f GiB", float64(n)/float64(GiB))
	case n >= MiB:
		return fmt.Sprintf("%.1f MiB", float64(n)/float64(MiB))
	case n >= KiB:
		return fmt.Sprintf("%.1f KiB", float64(n)/float64(KiB))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
