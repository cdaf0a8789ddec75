package kernels

import "testing"

// The benchmark kernels are covered in depth in internal/bench; these
// tests pin the public wrappers to the documented reference values.

func TestPrimes(t *testing.T) {
	got := Primes(10)
	want := []uint32{2, 3, 5, 7}

	if len(got) != len(want) {
		t.Fatalf("Primes(10) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Primes(10) = %v, want %v", got, want)
		}
	}
}

func TestFibonacci(t *testing.T) {
	got := Fibonacci(10)
	want := []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}

	if len(got) != len(want) {
		t.Fatalf("Fibonacci(10) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Fibonacci(10) = %v, want %v", got, want)
		}
	}
}

func TestMatrixMultiply(t *testing.T) {
	got := MatrixMultiply(2)
	want := []float64{0, 1, 0, 2}

	if len(got) != len(want) {
		t.Fatalf("MatrixMultiply(2) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MatrixMultiply(2) = %v, want %v", got, want)
		}
	}
}

func TestHash(t *testing.T) {
	if Hash(0) != 0x12345678 {
		t.Errorf("Hash(0) = %#x, want 0x12345678", Hash(0))
	}
	if Hash(100) == Hash(101) {
		t.Error("Hash should differ across iteration counts")
	}
}

func TestEstimatePi(t *testing.T) {
	pi := EstimatePi(100_000)
	if pi < 0 || pi > 4 {
		t.Errorf("EstimatePi(100000) = %v, want a value in [0, 4]", pi)
	}
}

func TestSortArray(t *testing.T) {
	arr := SortArray(100)
	if len(arr) != 100 {
		t.Fatalf("len = %d, want 100", len(arr))
	}
	for i := 1; i < len(arr); i++ {
		if arr[i-1] > arr[i] {
			t.Fatalf("array not sorted at index %d: %d > %d", i, arr[i-1], arr[i])
		}
	}
}

func TestProcessText(t *testing.T) {
	got := ProcessText(1)
	want := "tHE QUICK BROWN FOX JUMPS OVER THE LAZY DOG"

	if got != want {
		t.Errorf("ProcessText(1) = %q, want %q", got, want)
	}
	if ProcessText(0) != "" {
		t.Errorf("ProcessText(0) = %q, want empty", ProcessText(0))
	}
}
