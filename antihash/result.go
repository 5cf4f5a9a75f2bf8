package antihash

import "fmt"

// Status classifies a Result, playing the role of the tagged variant
// AntiResult plays in spec.md §3 (Ok / NotFound / TimeOut / Unknown)
// expressed as a Go enum plus the payload fields relevant to each tag.
type Status int

const (
	// StatusOK means a verified collision was found: A and B are set,
	// A != B, and both hash identically under every configured pair.
	StatusOK Status = iota
	// StatusNotFound means reduction completed with no row passing the
	// validity test. Best, if non-empty, is a diagnostic near-miss.
	StatusNotFound
	// StatusTimeout means the wall-clock budget elapsed (or the ctx passed
	// to AntiHash was done) before a valid row was found. Best, if
	// non-empty, is a diagnostic near-miss.
	StatusTimeout
	// StatusUnknown means a row passed the structural validity test but
	// failed the independent hash recomputation: an internal consistency
	// bug, not a property of the input. Library callers should treat this
	// as a bug report, not a legitimate outcome to branch on.
	StatusUnknown
)

// String renders the status name for logging.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusNotFound:
		return "NotFound"
	case StatusTimeout:
		return "Timeout"
	case StatusUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of one AntiHash call.
type Result struct {
	Status Status

	// Elapsed is the wall-clock seconds the search ran, valid whenever
	// Status is StatusOK or StatusNotFound.
	Elapsed float64

	// A, B are the colliding strings, set only when Status == StatusOK.
	A, B string

	// Best is the coefficient portion of the row with the smallest
	// max-norm among hash-image-zero rows (spec.md §9 "Big-best
	// reporting"), a diagnostic rendered as comma-separated signed integers
	// (for example "5,-1,2"). Set only for StatusNotFound and StatusTimeout, and only
	// when at least one hash-image-zero row existed; otherwise empty.
	Best string
}

// OK reports whether the search found and verified a collision.
func (r Result) OK() bool { return r.Status == StatusOK }

// TimedOut reports whether the wall-clock (or context) deadline elapsed
// before a collision was found.
func (r Result) TimedOut() bool { return r.Status == StatusTimeout }

// NotFound reports whether reduction completed without finding a valid row.
func (r Result) NotFound() bool { return r.Status == StatusNotFound }

// String renders a one-line summary suitable for diagnostics.
func (r Result) String() string {
	switch r.Status {
	case StatusOK:
		return fmt.Sprintf("OK(elapsed=%.3fs, a=%q, b=%q)", r.Elapsed, r.A, r.B)
	case StatusNotFound:
		return fmt.Sprintf("NotFound(elapsed=%.3fs, best=%q)", r.Elapsed, r.Best)
	case StatusTimeout:
		return fmt.Sprintf("Timeout(best=%q)", r.Best)
	default:
		return "Unknown"
	}
}

// Format implements fmt.Formatter so Result can be logged directly with
// log.Printf("%v", result) without the caller calling String explicitly.
func (r Result) Format(fs fmt.State, c rune) {
	fmt.Fprint(fs, r.String())
}
