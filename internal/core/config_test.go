package core

import (
	"testing"
	"time"
)

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{50, 20 * time.Millisecond},
		{25, 40 * time.Millisecond},
		{0, 20 * time.Millisecond},
		{-3, 20 * time.Millisecond},
	}

	for _, tt := range tests {
		got := RuntimeConfig{TickRate: tt.rate}.FrameInterval()
		if got != tt.want {
			t.Errorf("FrameInterval() at %d fps = %v, want %v", tt.rate, got, tt.want)
		}
	}
}
