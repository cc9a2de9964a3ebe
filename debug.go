package starscroll

import (
	"context"
	"log/slog"
	"time"
)

// composeStats holds the metrics of one background composition.
type composeStats struct {
	cols, rows   int
	cells        int
	width        int
	height       int
	screenHeight int
	took         time.Duration
}

// debugLog reports composition stats at debug level.
func (s composeStats) debugLog() {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("starscroll: background composed",
		"cols", s.cols, "rows", s.rows, "cells", s.cells,
		"width", s.width, "height", s.height,
		"padding", s.height-s.screenHeight, "took", s.took)
}
