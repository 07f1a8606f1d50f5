package report

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/couchcryptid/typhoon-report/internal/domain"
)

// Report file names under the output directory.
const (
	CombinedFile = "total.html"
	SummaryFile  = "average.html"
)

// SeasonFile returns the file name of a season's page.
func SeasonFile(year int) string {
	return "data_" + strconv.Itoa(year) + ".html"
}

// averageTable is an AverageMap prepared for rendering.
type averageTable struct {
	Key     string
	Value   string
	Buckets []domain.Bucket
}

type stormView struct {
	ID      int
	Name    string
	EnName  string
	TrackKm float64
	Points  []domain.Point
}

type seasonView struct {
	Year       int
	StormCount int
	MoveSpeed  averageTable
	Radius     averageTable
	Storms     []stormView
}

type summaryView struct {
	GeneratedAt string
	Amounts     []domain.DataAmount
	Seasons     []domain.SeasonSummary
	MoveSpeed   averageTable
	Radius      averageTable
}

func moveSpeedTable(m *domain.AverageMap, scope string) averageTable {
	return averageTable{Key: "Pressure (hPa)", Value: "Avg move speed" + scope, Buckets: m.Buckets()}
}

func radiusTable(m *domain.AverageMap, scope string) averageTable {
	return averageTable{Key: "Pressure (hPa)", Value: "Avg 7-level wind radius" + scope, Buckets: m.Buckets()}
}

// WriteCombined writes one table listing every point of every season.
func WriteCombined(w io.Writer, seasons []*domain.Season) error {
	return templates.ExecuteTemplate(w, "combined", seasons)
}

// WriteSeason writes a season's page: its averages followed by one table per storm.
func WriteSeason(w io.Writer, s *domain.Season) error {
	v := seasonView{
		Year:       s.Year,
		StormCount: len(s.Storms),
		MoveSpeed:  moveSpeedTable(&s.Averages.MoveSpeed, " (this season)"),
		Radius:     radiusTable(&s.Averages.Radius, " (this season)"),
		Storms:     make([]stormView, 0, len(s.Storms)),
	}
	for _, storm := range s.Storms {
		v.Storms = append(v.Storms, stormView{
			ID:      storm.ID,
			Name:    storm.Name,
			EnName:  storm.EnName,
			TrackKm: storm.TrackLengthKm(),
			Points:  storm.Points,
		})
	}
	return templates.ExecuteTemplate(w, "season", v)
}

// WriteSummary writes the summary page: data amounts, storms per season and
// the global averages.
func WriteSummary(w io.Writer, sum domain.Summary) error {
	global := sum.Global
	if global == nil {
		global = &domain.Averages{}
	}
	v := summaryView{
		GeneratedAt: sum.GeneratedAt.UTC().Format(time.RFC3339),
		Amounts:     sum.Amounts,
		Seasons:     sum.Seasons,
		MoveSpeed:   moveSpeedTable(&global.MoveSpeed, ""),
		Radius:      radiusTable(&global.Radius, ""),
	}
	return templates.ExecuteTemplate(w, "summary", v)
}

// FileRenderer writes report pages as HTML files into one directory.
// It implements pipeline.Renderer.
type FileRenderer struct {
	dir    string
	logger *slog.Logger
}

// NewFileRenderer creates the output directory if needed.
func NewFileRenderer(dir string, logger *slog.Logger) (*FileRenderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &FileRenderer{dir: dir, logger: logger}, nil
}

// Dir returns the output directory.
func (r *FileRenderer) Dir() string {
	return r.dir
}

// RenderCombined writes the listing of every season's points to CombinedFile.
func (r *FileRenderer) RenderCombined(seasons []*domain.Season) error {
	return r.writeFile(CombinedFile, func(w io.Writer) error { return WriteCombined(w, seasons) })
}

// RenderSeason writes a season's page to SeasonFile(s.Year).
func (r *FileRenderer) RenderSeason(s *domain.Season) error {
	r.logger.Info("writing season report", "year", s.Year)
	return r.writeFile(SeasonFile(s.Year), func(w io.Writer) error { return WriteSeason(w, s) })
}

// RenderSummary writes the summary page to SummaryFile.
func (r *FileRenderer) RenderSummary(sum domain.Summary) error {
	return r.writeFile(SummaryFile, func(w io.Writer) error { return WriteSummary(w, sum) })
}

func (r *FileRenderer) writeFile(name string, write func(io.Writer) error) error {
	path := filepath.Join(r.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", name, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	r.logger.Info("report written", "path", path)
	return nil
}
