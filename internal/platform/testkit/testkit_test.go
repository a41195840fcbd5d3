package testkit

import "testing"

var scale = func(x float64) float64 { return x * 2 }

func TestPanicHelpers(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	MustContain(t, "relevance keyword grammar", "keyword")
}

func TestNear(t *testing.T) {
	Near(t, "score", 72.004, 72.0, 0.01)
}

func TestSwap_Restores(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &scale, func(x float64) float64 { return x })
		if got := scale(3); got != 3 {
			t.Fatalf("scale(3) = %v, want 3", got)
		}
	})
	if got := scale(3); got != 6 {
		t.Fatalf("scale not restored, got %v", got)
	}
}

func TestSerial(t *testing.T) {
	Serial(t)
	Swap(t, &scale, func(x float64) float64 { return -x })
	if scale(1) != -1 {
		t.Fatalf("swap under Serial failed")
	}
}
