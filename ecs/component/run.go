package component

// Run holds per-run progress. Best outlives runs and is seeded from the
// best-score store.
type Run struct {
	Score int
	Best  int
	Speed float64
	// TopY is the highest generated point; it moves down with the scroll.
	TopY float64
	// SurvivalMs carries the fraction of a survival point between frames.
	SurvivalMs float64
	Dead       bool
}
