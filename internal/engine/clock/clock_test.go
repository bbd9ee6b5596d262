package clock

import (
	"testing"
	"time"
)

func TestTickerAdvance(t *testing.T) {
	tests := []struct {
		name    string
		period  time.Duration
		max     int
		steps   []time.Duration
		want    []int
		wantTot uint64
	}{
		{
			name:    "exact periods",
			period:  20 * time.Millisecond,
			steps:   []time.Duration{20 * time.Millisecond, 40 * time.Millisecond},
			want:    []int{1, 2},
			wantTot: 3,
		},
		{
			name:    "remainder carries over",
			period:  20 * time.Millisecond,
			steps:   []time.Duration{15 * time.Millisecond, 15 * time.Millisecond, 15 * time.Millisecond},
			want:    []int{0, 1, 1},
			wantTot: 2,
		},
		{
			name:    "catch-up is capped",
			period:  20 * time.Millisecond,
			max:     5,
			steps:   []time.Duration{time.Second, 20 * time.Millisecond},
			want:    []int{5, 1},
			wantTot: 6,
		},
		{
			name:    "zero elapsed",
			period:  20 * time.Millisecond,
			steps:   []time.Duration{0, -time.Millisecond},
			want:    []int{0, 0},
			wantTot: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := NewTicker(tt.period, tt.max)
			for i, step := range tt.steps {
				if got := tk.Advance(step); got != tt.want[i] {
					t.Errorf("step %d: got %d ticks, want %d", i, got, tt.want[i])
				}
			}
			if tk.Total() != tt.wantTot {
				t.Errorf("total: got %d, want %d", tk.Total(), tt.wantTot)
			}
		})
	}
}

func TestTickerZeroPeriod(t *testing.T) {
	tk := NewTicker(0, 0)
	if got := tk.Advance(time.Second); got != 0 {
		t.Errorf("got %d ticks from zero period, want 0", got)
	}
}

func TestDeltaTimer(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{base, base.Add(16 * time.Millisecond), base.Add(50 * time.Millisecond)}
	i := 0
	d := &DeltaTimer{now: func() time.Time {
		now := times[i]
		i++
		return now
	}}

	if got := d.Next(); got != 0 {
		t.Errorf("first call: got %v, want 0", got)
	}
	if got := d.Next(); got != 16*time.Millisecond {
		t.Errorf("second call: got %v, want 16ms", got)
	}
	if got := d.Next(); got != 34*time.Millisecond {
		t.Errorf("third call: got %v, want 34ms", got)
	}
}
