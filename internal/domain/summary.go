package domain

import (
	"errors"
	"time"
)

// GlobalCutoffYear is the first season covered by the global averages,
// matching GlobalCutoffStormID.
const GlobalCutoffYear = 2001

// SeasonSummary is the per-season digest published after aggregation.
type SeasonSummary struct {
	Year              int      `json:"year"`
	StormCount        int      `json:"storm_count"`
	PointCount        int      `json:"point_count"`
	LongestTrackKm    float64  `json:"longest_track_km"`
	MoveSpeedAverages []Bucket `json:"move_speed_averages"`
	RadiusAverages    []Bucket `json:"radius_averages"`
}

// DataAmount is the point count over an inclusive year range. Count is -1
// when the range falls outside the indexed span.
type DataAmount struct {
	From  int
	To    int
	Count int
}

// Summary is everything the summary page needs.
type Summary struct {
	GeneratedAt time.Time
	Amounts     []DataAmount
	Seasons     []SeasonSummary
	Global      *Averages
}

// Summarize digests a season whose averages have been compiled.
func Summarize(s *Season) SeasonSummary {
	out := SeasonSummary{
		Year:              s.Year,
		StormCount:        len(s.Storms),
		PointCount:        s.PointCount(),
		MoveSpeedAverages: s.Averages.MoveSpeed.Buckets(),
		RadiusAverages:    s.Averages.Radius.Buckets(),
	}
	for _, storm := range s.Storms {
		if l := storm.TrackLengthKm(); l > out.LongestTrackKm {
			out.LongestTrackKm = l
		}
	}
	return out
}

// NewSummary assembles the summary page from compiled seasons, a compiled
// index spanning [startYear, endYear] and the global averages. Data amounts
// are split at GlobalCutoffYear.
func NewSummary(seasons []*Season, index *PrefixIndex, global *Averages, startYear, endYear int) (Summary, error) {
	out := Summary{
		GeneratedAt: stampTime(),
		Global:      global,
		Seasons:     make([]SeasonSummary, 0, len(seasons)),
	}

	var errs []error
	for _, r := range [][2]int{{startYear, GlobalCutoffYear - 1}, {GlobalCutoffYear, endYear}} {
		n, err := index.RangeSum(r[0], r[1])
		if err != nil {
			errs = append(errs, err)
		}
		out.Amounts = append(out.Amounts, DataAmount{From: r[0], To: r[1], Count: n})
	}

	for _, s := range seasons {
		out.Seasons = append(out.Seasons, Summarize(s))
	}
	return out, errors.Join(errs...)
}
