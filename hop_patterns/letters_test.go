package hop_patterns

import (
	"sort"
	"testing"

	"hopsim/hop_core"
)

func TestByNameReturnsFlattenedBipolarBitmaps(t *testing.T) {
	for _, name := range Names() {
		pattern, err := ByName(name)
		if err != nil {
			t.Fatalf("letter %s: %v", name, err)
		}
		if len(pattern) != BitmapSide*BitmapSide {
			t.Errorf("letter %s: got length %d, want %d", name, len(pattern), BitmapSide*BitmapSide)
		}
		for i, unit := range pattern {
			if !hop_core.IsBipolar(unit) {
				t.Errorf("letter %s unit %d has non-bipolar value %d", name, i, unit)
			}
		}
	}
}

func TestByNameUnknownLetter(t *testing.T) {
	if _, err := ByName("Z"); err == nil {
		t.Error("expected an error for an unknown letter")
	}
}

func TestFullLetterSetAvailable(t *testing.T) {
	want := []string{"A", "F", "O", "P", "R", "T", "U", "V"}
	names := Names()
	if len(names) != len(want) {
		t.Fatalf("got %d letters, want %d: %v", len(names), len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("letter %d: got %s, want %s", i, names[i], want[i])
		}
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) < 2 {
		t.Fatalf("expected at least two letters, got %d", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("names are not sorted: %v", names)
	}
}

func TestCheckerboardOrthogonality(t *testing.T) {
	a := Checkerboard(16, 1)
	b := Checkerboard(16, 2)
	dot := 0
	for i := range a {
		if !hop_core.IsBipolar(a[i]) || !hop_core.IsBipolar(b[i]) {
			t.Fatalf("unit %d is not bipolar", i)
		}
		dot += a[i] * b[i]
	}
	if dot != 0 {
		t.Errorf("got dot product %d, want 0", dot)
	}
}
