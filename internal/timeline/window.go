// Package timeline computes the chunked layout geometry for the Gantt-style
// schedule view: the visible UTC window, per-flight horizontal positions and
// the chunk labels and grid separators the renderer draws. Everything here is
// a pure function of its inputs and is recomputed on every render.
package timeline

import "time"

// Chunk granularities supported by the timeline grid, in hours.
const (
	ChunkSixHours    = 6
	ChunkTwelveHours = 12
	ChunkFullDay     = 24
)

// ValidChunkHours reports whether h is a supported grid granularity.
func ValidChunkHours(h int) bool {
	return h == ChunkSixHours || h == ChunkTwelveHours || h == ChunkFullDay
}

// Window is the derived visible range of the timeline. It is computed from
// user-selected calendar dates and never persisted.
type Window struct {
	DayStart   time.Time // UTC midnight of the first day
	DayEnd     time.Time // UTC 23:59:59.999 of the last day
	NumDays    int       // inclusive day count
	TotalHours int
	ChunkHours int
	NumChunks  int
}

// NewWindow derives the window for the inclusive date range [start, end].
// Only the calendar date of each argument is significant; time-of-day and
// zone are discarded in favor of UTC day boundaries. The caller must supply
// a non-negative range (see ClampRange) and a valid chunk granularity.
func NewWindow(start, end time.Time, chunkHours int) Window {
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999_000_000, time.UTC)

	numDays := int(dayEnd.Sub(dayStart).Hours()/24) + 1
	totalHours := numDays * 24

	// ceil(totalHours / chunkHours)
	numChunks := (totalHours + chunkHours - 1) / chunkHours

	return Window{
		DayStart:   dayStart,
		DayEnd:     dayEnd,
		NumDays:    numDays,
		TotalHours: totalHours,
		ChunkHours: chunkHours,
		NumChunks:  numChunks,
	}
}

// ClampRange normalizes an inverted date range by clamping the end to the
// start, so the resulting window is never negative. Valid ranges pass
// through untouched.
func ClampRange(start, end time.Time) (time.Time, time.Time) {
	if end.Before(start) {
		return start, start
	}
	return start, end
}

// chunkWidthPercent is the share of the container each chunk occupies.
func (w Window) chunkWidthPercent() float64 {
	return 100.0 / float64(w.NumChunks)
}

// chunkStart returns the instant at which the given chunk begins.
func (w Window) chunkStart(chunk int) time.Time {
	return w.DayStart.Add(time.Duration(chunk*w.ChunkHours) * time.Hour)
}
