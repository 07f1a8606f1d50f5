package domain

const (
	// MinPressure is the exclusive lower bound on pressure for a point to
	// count toward any average. Readings at or below it are placeholders.
	MinPressure = 800

	// GlobalCutoffStormID is the first storm id included in the global
	// averages: storm 01 of 2001.
	GlobalCutoffStormID = 200100
)

// CountsTowardGlobal reports whether a storm's points feed the global
// cross-season averages. Ids carry the year in their leading four digits, so
// this excludes every storm before 2001.
func CountsTowardGlobal(stormID int) bool {
	return stormID >= GlobalCutoffStormID
}

// CompileAverages rebuilds the season's own averages from all its points.
func (s *Season) CompileAverages() {
	s.Averages = Averages{}
	for _, storm := range s.Storms {
		for _, p := range storm.Points {
			s.Averages.Observe(p)
		}
	}
}

// FoldGlobal folds a storm's points into the global averages when the storm
// passes the CountsTowardGlobal cutoff.
func (a *Averages) FoldGlobal(storm Storm) {
	if !CountsTowardGlobal(storm.ID) {
		return
	}
	for _, p := range storm.Points {
		a.Observe(p)
	}
}

// Aggregate compiles every season's averages and returns the global averages
// folded across all seasons, in season then storm order.
func Aggregate(seasons []*Season) *Averages {
	global := &Averages{}
	for _, season := range seasons {
		season.CompileAverages()
		for _, storm := range season.Storms {
			global.FoldGlobal(storm)
		}
	}
	return global
}
