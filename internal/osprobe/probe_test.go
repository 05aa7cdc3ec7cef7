package osprobe

import (
	"errors"
	"runtime"
	"testing"
	"time"
)

func TestDPIScale(t *testing.T) {
	tests := []struct {
		x, y uint32
		want float64
	}{
		{96, 96, 1},
		{120, 120, 1.25},
		{144, 144, 1.5},
		{192, 96, 1.5},
		{0, 0, 1},
	}
	for _, tt := range tests {
		if got := dpiScale(tt.x, tt.y); got != tt.want {
			t.Errorf("dpiScale(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestWindowsBuildOnlyOnWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		if WindowsBuild() <= 0 {
			t.Error("WindowsBuild() on Windows must be positive")
		}
		return
	}
	if WindowsBuild() != 0 {
		t.Errorf("WindowsBuild() = %d, want 0", WindowsBuild())
	}
}

func TestWindowScalingNeverZero(t *testing.T) {
	f, _ := WindowScaling(0)
	if f <= 0 {
		t.Errorf("WindowScaling(0) = %v, want a positive factor even on failure", f)
	}
}

func TestCachedReusesResults(t *testing.T) {
	now := time.Unix(0, 0)
	c := cached[int]{ttl: time.Second, failTTL: 5 * time.Second, now: func() time.Time { return now }}
	var calls int
	var fail error
	lookup := func() (int, error) {
		calls++
		return calls, fail
	}

	for range 3 {
		if v, err := c.get(lookup); v != 1 || err != nil {
			t.Fatalf("get() = %v, %v; want 1, nil", v, err)
		}
	}
	now = now.Add(time.Second)
	if v, _ := c.get(lookup); v != 2 {
		t.Errorf("get() after ttl = %v, want a fresh lookup", v)
	}

	fail = errors.New("no bus")
	now = now.Add(time.Second)
	if _, err := c.get(lookup); err == nil {
		t.Fatal("failure not reported")
	}
	fail = nil
	now = now.Add(4 * time.Second)
	if _, err := c.get(lookup); err == nil || calls != 3 {
		t.Errorf("failure retried early: err=%v calls=%d", err, calls)
	}
	now = now.Add(time.Second)
	if v, err := c.get(lookup); err != nil || v != 4 {
		t.Errorf("get() after retry delay = %v, %v; want 4, nil", v, err)
	}
}
