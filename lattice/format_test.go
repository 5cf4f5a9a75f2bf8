package lattice

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gonum-community/antihash/bignum"
)

func TestFormattedContainsEntries(t *testing.T) {
	t.Parallel()
	b := NewBasis(2)
	b.Set(0, 0, bignum.NewIntegerFromInt64(1))
	b.Set(0, 1, bignum.NewIntegerFromInt64(-2))
	b.Set(1, 0, bignum.NewIntegerFromInt64(3))
	b.Set(1, 1, bignum.NewIntegerFromInt64(4))

	got := fmt.Sprintf("%v", Formatted(b))
	for _, want := range []string{"1", "-2", "3", "4"} {
		if !strings.Contains(got, want) {
			t.Errorf("Formatted output %q missing %q", got, want)
		}
	}
}

func TestFormattedPrefix(t *testing.T) {
	t.Parallel()
	b := NewBasis(2)
	got := fmt.Sprintf("%v", Formatted(b, Prefix(">> ")))
	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %q", got)
	}
	if !strings.HasPrefix(lines[1], ">> ") {
		t.Errorf("second line %q does not carry the configured prefix", lines[1])
	}
}
