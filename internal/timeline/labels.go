package timeline

import "fmt"

// shortDateLayout matches the header format the schedule view renders.
const shortDateLayout = "Jan 02"

// ChunkLabel is the rendered header of a single chunk: its calendar date
// and the hour ticks inside it.
type ChunkLabel struct {
	ChunkIndex int      `json:"chunk_index"`
	Date       string   `json:"date"`
	HourTicks  []string `json:"hour_ticks"`
}

// Separator is one vertical grid line, positioned as a percentage of the
// container width.
type Separator struct {
	LeftPercent float64 `json:"left_percent"`
}

// tickInterval derives the hour-tick spacing from the chunk granularity:
// 12-hour chunks label every other hour, the rest label every hour.
func (w Window) tickInterval() int {
	if w.ChunkHours == ChunkTwelveHours {
		return 2
	}
	return 1
}

// Labels produces one date header per chunk plus its hour ticks. Tick text
// is the hour-of-day (mod 24), zero-padded.
func (w Window) Labels() []ChunkLabel {
	labels := make([]ChunkLabel, 0, w.NumChunks)
	interval := w.tickInterval()

	for chunk := 0; chunk < w.NumChunks; chunk++ {
		startHour := chunk * w.ChunkHours

		var ticks []string
		for h := 0; h < w.ChunkHours; h += interval {
			ticks = append(ticks, fmt.Sprintf("%02d", (startHour+h)%24))
		}

		labels = append(labels, ChunkLabel{
			ChunkIndex: chunk,
			Date:       w.chunkStart(chunk).Format(shortDateLayout),
			HourTicks:  ticks,
		})
	}
	return labels
}

// Separators produces the vertical grid lines, one per hour boundary within
// every chunk. The hour-0 line of any chunk after the first coincides with
// the previous chunk's final boundary and is suppressed to avoid a doubled
// line.
func (w Window) Separators() []Separator {
	var seps []Separator
	chunkWidth := w.chunkWidthPercent()

	for chunk := 0; chunk < w.NumChunks; chunk++ {
		chunkLeft := float64(chunk) / float64(w.NumChunks) * 100
		for h := 0; h < w.ChunkHours; h++ {
			if h == 0 && chunk > 0 {
				continue
			}
			seps = append(seps, Separator{
				LeftPercent: chunkLeft + float64(h)/float64(w.ChunkHours)*chunkWidth,
			})
		}
	}
	return seps
}
