package catrom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats and float struct fields within an absolute tolerance.
func approx(tol float64) cmp.Option {
	return cmpopts.EquateApprox(0, tol)
}
