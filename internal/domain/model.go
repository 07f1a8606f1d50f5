package domain

// RawStorm is a storm list record with its fields as received from the source.
type RawStorm struct {
	ID     string
	Name   string
	EnName string
}

// RawPoint is a track point record with its fields as received from the source.
type RawPoint struct {
	Radius7   string
	Power     string
	Strong    string
	Speed     string
	MoveSpeed string
	Pressure  string
	Lat       string
	Lng       string
	Time      string
}

// Season holds all storms of one calendar year in arrival order, plus the
// averages folded from their points by CompileAverages.
type Season struct {
	Year     int
	Storms   []Storm
	Averages Averages
}

// Storm is a single tropical cyclone tracked across its lifetime.
type Storm struct {
	ID     int
	Name   string
	EnName string
	Points []Point
}

// Point is one timestamped observation of a storm.
type Point struct {
	Radius7   float64 // reduced 7-level wind circle radius, 0 when unavailable
	Power     int
	Strong    string
	WindSpeed int
	MoveSpeed int
	Pressure  int // hPa
	Lat       float64
	Lng       float64
	Time      string
	StormID   int // owning storm, lookup only
}

// NewSeason creates an empty season for the given year.
func NewSeason(year int) *Season {
	return &Season{Year: year}
}

// AddStorm appends a storm, keeping arrival order.
func (s *Season) AddStorm(storm Storm) {
	s.Storms = append(s.Storms, storm)
}

// PointCount returns the number of points across all storms of the season.
func (s *Season) PointCount() int {
	n := 0
	for _, storm := range s.Storms {
		n += len(storm.Points)
	}
	return n
}
