package timeline

import (
	"math"
	"time"
)

// minWidthPercent keeps very short flights visible and clickable.
const minWidthPercent = 0.5

// EventPosition is the horizontal placement of a single flight bar within
// the timeline container, as percentages of the container width.
type EventPosition struct {
	LeftPercent  float64 `json:"left_percent"`
	WidthPercent float64 `json:"width_percent"`
	Visible      bool    `json:"visible"`
	ChunkIndex   int     `json:"chunk_index"`
}

// Position maps a flight's departure and arrival instants onto the window
// grid. Visibility is keyed on the departure instant alone: a flight that
// departed before the window but is still airborne inside it is reported
// not-visible. That is the documented behavior of the layout, not an
// overlap test.
//
// A flight spanning a chunk boundary is not split; its bar may extend past
// its own chunk's right edge into the next chunk's visual space.
func (w Window) Position(departure, arrival time.Time) EventPosition {
	hoursFromStart := departure.Sub(w.DayStart).Hours()
	hoursToArrival := arrival.Sub(w.DayStart).Hours()

	if hoursFromStart < 0 || hoursFromStart >= float64(w.TotalHours) {
		return EventPosition{Visible: false, ChunkIndex: -1}
	}

	chunkHours := float64(w.ChunkHours)
	departureChunk := int(math.Floor(hoursFromStart / chunkHours))
	hoursWithinChunk := math.Mod(hoursFromStart, chunkHours)
	duration := hoursToArrival - hoursFromStart

	chunkWidth := w.chunkWidthPercent()
	chunkLeft := float64(departureChunk) / float64(w.NumChunks) * 100
	withinChunk := hoursWithinChunk / chunkHours * chunkWidth
	width := duration / chunkHours * chunkWidth
	if width < minWidthPercent {
		width = minWidthPercent
	}

	return EventPosition{
		LeftPercent:  chunkLeft + withinChunk,
		WidthPercent: width,
		Visible:      true,
		ChunkIndex:   departureChunk,
	}
}
