package mapst

import (
	"errors"
	"testing"
)

func TestEachxVisitsEveryEntry(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	sum := 0
	if err := Eachx(m, func(_ string, v int) error {
		sum += v
		return nil
	}); err != nil {
		t.Fatalf("Eachx: %v", err)
	}
	if sum != 3 {
		t.Errorf("sum = %d, want 3", sum)
	}
}

func TestEachxStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	m := map[string]int{"a": 1}
	err := Eachx(m, func(string, int) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}
