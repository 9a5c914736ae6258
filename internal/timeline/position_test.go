package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPositionInsideWindow(t *testing.T) {
	// Window 2025-01-01..2025-01-02, 24h chunks -> 2 chunks of 50% each.
	w := NewWindow(date(2025, 1, 1), date(2025, 1, 2), 24)

	dep := time.Date(2025, 1, 1, 5, 0, 0, 0, time.UTC)
	arr := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	p := w.Position(dep, arr)

	assert.True(t, p.Visible)
	assert.Equal(t, 0, p.ChunkIndex)
	assert.InDelta(t, 5.0/24.0*50.0, p.LeftPercent, 1e-9)  // 10.42
	assert.InDelta(t, 5.0/24.0*50.0, p.WidthPercent, 1e-9) // 10.42
}

func TestPositionSixHourChunks(t *testing.T) {
	// Window 2025-01-01..2025-01-02, 6h chunks -> 8 chunks of 12.5% each.
	w := NewWindow(date(2025, 1, 1), date(2025, 1, 2), 6)

	dep := time.Date(2025, 1, 1, 7, 0, 0, 0, time.UTC)
	arr := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	p := w.Position(dep, arr)

	assert.True(t, p.Visible)
	assert.Equal(t, 1, p.ChunkIndex)
	// chunkLeft 12.5 + within-chunk (1/6)*12.5 = 14.58
	assert.InDelta(t, 12.5+1.0/6.0*12.5, p.LeftPercent, 1e-9)
}

func TestPositionOutsideWindow(t *testing.T) {
	w := NewWindow(date(2025, 1, 1), date(2025, 1, 2), 24)

	tests := []struct {
		name     string
		dep, arr time.Time
	}{
		{
			name: "departs before window",
			dep:  time.Date(2024, 12, 31, 22, 0, 0, 0, time.UTC),
			arr:  time.Date(2025, 1, 1, 2, 0, 0, 0, time.UTC), // overlaps, still excluded
		},
		{
			name: "departs after window",
			dep:  time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
			arr:  time.Date(2025, 1, 3, 4, 0, 0, 0, time.UTC),
		},
		{
			name: "departs exactly at window end boundary",
			dep:  time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), // hoursFromStart == 48
			arr:  time.Date(2025, 1, 3, 1, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := w.Position(tt.dep, tt.arr)
			assert.False(t, p.Visible)
			assert.Equal(t, -1, p.ChunkIndex)
			assert.Zero(t, p.LeftPercent)
			assert.Zero(t, p.WidthPercent)
		})
	}
}

func TestPositionBoundaries(t *testing.T) {
	w := NewWindow(date(2025, 1, 1), date(2025, 1, 2), 24)

	// Departing exactly at dayStart sits at the left edge.
	p := w.Position(w.DayStart, w.DayStart.Add(2*time.Hour))
	assert.True(t, p.Visible)
	assert.Equal(t, 0, p.ChunkIndex)
	assert.Zero(t, p.LeftPercent)

	// Departing at the last representable instant lands in the final chunk.
	p = w.Position(w.DayEnd, w.DayEnd.Add(time.Hour))
	assert.True(t, p.Visible)
	assert.Equal(t, w.NumChunks-1, p.ChunkIndex)
	assert.Less(t, p.LeftPercent, 100.0)
}

func TestPositionMinimumWidth(t *testing.T) {
	w := NewWindow(date(2025, 1, 1), date(2025, 1, 2), 24)

	// A 2-minute hop would render at ~0.07%; the floor keeps it clickable.
	dep := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	p := w.Position(dep, dep.Add(2*time.Minute))

	assert.True(t, p.Visible)
	assert.Equal(t, 0.5, p.WidthPercent)
}

func TestPositionSpansChunkBoundary(t *testing.T) {
	// A flight crossing a chunk boundary is one bar that overflows its
	// chunk, never two segments.
	w := NewWindow(date(2025, 1, 1), date(2025, 1, 2), 6)

	dep := time.Date(2025, 1, 1, 5, 0, 0, 0, time.UTC)
	arr := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC) // 4h across the 06:00 boundary

	p := w.Position(dep, arr)

	assert.True(t, p.Visible)
	assert.Equal(t, 0, p.ChunkIndex)
	chunkWidth := 100.0 / 8.0
	assert.InDelta(t, 4.0/6.0*chunkWidth, p.WidthPercent, 1e-9)
	// Right edge extends past chunk 0's boundary at 12.5%.
	assert.Greater(t, p.LeftPercent+p.WidthPercent, chunkWidth)
}

func TestPositionFractionalHours(t *testing.T) {
	w := NewWindow(date(2025, 1, 1), date(2025, 1, 1), 24)

	dep := time.Date(2025, 1, 1, 8, 30, 0, 0, time.UTC)
	arr := time.Date(2025, 1, 1, 10, 15, 0, 0, time.UTC)

	p := w.Position(dep, arr)

	assert.True(t, p.Visible)
	assert.InDelta(t, 8.5/24.0*100.0, p.LeftPercent, 1e-9)
	assert.InDelta(t, 1.75/24.0*100.0, p.WidthPercent, 1e-9)
}

func TestPositionIsDeterministic(t *testing.T) {
	w := NewWindow(date(2025, 1, 1), date(2025, 1, 7), 12)

	dep := time.Date(2025, 1, 3, 11, 47, 13, 0, time.UTC)
	arr := time.Date(2025, 1, 3, 16, 2, 41, 0, time.UTC)

	first := w.Position(dep, arr)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, w.Position(dep, arr))
	}
}

func TestPositionPropertyBounds(t *testing.T) {
	// Any departure inside the window must be visible with left in [0,100)
	// and width >= 0.5.
	w := NewWindow(date(2025, 1, 1), date(2025, 1, 3), 6)

	for hour := 0; hour < w.TotalHours; hour++ {
		dep := w.DayStart.Add(time.Duration(hour) * time.Hour).Add(17 * time.Minute)
		arr := dep.Add(90 * time.Minute)

		p := w.Position(dep, arr)

		assert.True(t, p.Visible, "hour %d", hour)
		assert.GreaterOrEqual(t, p.LeftPercent, 0.0)
		assert.Less(t, p.LeftPercent, 100.0)
		assert.GreaterOrEqual(t, p.WidthPercent, 0.5)
		assert.Equal(t, hour/w.ChunkHours, p.ChunkIndex)
	}
}
