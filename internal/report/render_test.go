package report

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/couchcryptid/typhoon-report/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSeasons() []*domain.Season {
	s1999 := domain.NewSeason(1999)
	s1999.AddStorm(domain.Storm{ID: 199901, Name: "丹尼", EnName: "Dan", Points: []domain.Point{
		{Pressure: 990, MoveSpeed: 15, Radius7: 120, Strong: "台风", Time: "1999-07-01 08:00", StormID: 199901},
		{Pressure: 985, MoveSpeed: 18, Time: "1999-07-01 14:00", StormID: 199901},
	}})
	s2001 := domain.NewSeason(2001)
	s2001.AddStorm(domain.Storm{ID: 200101, Name: "<b>", EnName: "Cimaron", Points: []domain.Point{
		{Pressure: 1000, MoveSpeed: 20, Radius7: 22.5, Lat: 12.5, Lng: 130.25, Time: "2001-05-10 02:00", StormID: 200101},
	}})
	return []*domain.Season{s1999, s2001}
}

func TestWriteCombined_ListsEveryPoint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCombined(&buf, testSeasons()))

	out := buf.String()
	assert.Contains(t, out, "<table border=\"2\">")
	assert.Equal(t, 4, strings.Count(out, "<tr>"), "header plus three points")
	assert.Contains(t, out, "1999-07-01 08:00")
	assert.Contains(t, out, "1999-07-01 14:00", "pre-2001 storms keep all points")
	assert.Contains(t, out, "<td>22.5</td>")
	assert.Contains(t, out, "<td>130.25</td>")
}

func TestWriteSeason(t *testing.T) {
	s := testSeasons()[0]
	s.CompileAverages()

	var buf bytes.Buffer
	require.NoError(t, WriteSeason(&buf, s))

	out := buf.String()
	assert.Contains(t, out, "<h3>Season: 1999</h3>")
	assert.Contains(t, out, "<h4>Tropical cyclones: 1</h4>")
	assert.Contains(t, out, "<h3>199901 丹尼 (Dan)</h3>")
	assert.Contains(t, out, "Avg move speed (this season)")
	assert.Contains(t, out, "Avg 7-level wind radius (this season)")
	assert.Contains(t, out, "Track length: 0.0 km")

	i985 := strings.Index(out, "<tr><td>985</td><td>18</td></tr>")
	i990 := strings.Index(out, "<tr><td>990</td><td>15</td></tr>")
	require.NotEqual(t, -1, i985)
	require.NotEqual(t, -1, i990)
	assert.Less(t, i985, i990, "buckets sorted by pressure")
}

func TestWriteSeason_EscapesNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSeason(&buf, testSeasons()[1]))

	assert.Contains(t, buf.String(), "200101 &lt;b&gt; (Cimaron)")
}

func TestWriteSummary(t *testing.T) {
	seasons := testSeasons()
	global := domain.Aggregate(seasons)
	sum := domain.Summary{
		GeneratedAt: time.Date(2021, time.December, 31, 8, 0, 0, 0, time.UTC),
		Amounts: []domain.DataAmount{
			{From: 1949, To: 2000, Count: 2},
			{From: 2001, To: 2021, Count: -1},
		},
		Seasons: []domain.SeasonSummary{domain.Summarize(seasons[0]), domain.Summarize(seasons[1])},
		Global:  global,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, sum))

	out := buf.String()
	assert.Contains(t, out, "<h3>1949-2000 data points:<br>2</h3>")
	assert.Contains(t, out, "<h3>2001-2021 data points:<br>-1</h3>")
	assert.Contains(t, out, "Generated at 2021-12-31T08:00:00Z")
	assert.Contains(t, out, "<tr><td>1999</td><td>1</td><td>2</td><td>0.0</td></tr>")
	assert.Contains(t, out, "<tr><td>1000</td><td>20</td></tr>")
	assert.Contains(t, out, "<tr><td>1000</td><td>22.5</td></tr>")
	assert.NotContains(t, out, "<tr><td>990</td><td>15</td></tr>", "1999 storm excluded from global averages")
}

func TestWriteSummary_NilGlobal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, domain.Summary{}))
	assert.Contains(t, buf.String(), "Avg move speed")
}

func TestFileRenderer_WritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	r, err := NewFileRenderer(dir, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, dir, r.Dir())

	seasons := testSeasons()
	global := domain.Aggregate(seasons)

	require.NoError(t, r.RenderCombined(seasons))
	for _, s := range seasons {
		require.NoError(t, r.RenderSeason(s))
	}
	require.NoError(t, r.RenderSummary(domain.Summary{Global: global}))

	for _, name := range []string{CombinedFile, SummaryFile, SeasonFile(1999), SeasonFile(2001)} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
	assert.Equal(t, "data_1999.html", SeasonFile(1999))
}
