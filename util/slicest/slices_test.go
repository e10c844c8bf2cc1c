package slicest

import (
	"errors"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	want := []string{"1", "2", "3"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Map[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMapXStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	_, err := MapX([]string{"1", "x", "3"}, func(s string) (int, error) {
		if s == "x" {
			return 0, boom
		}
		return strconv.Atoi(s)
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestFilter(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("Filter = %v, want [2 4]", got)
	}
}
