package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/couchcryptid/typhoon-report/internal/domain"
	"github.com/couchcryptid/typhoon-report/internal/observability"
	"github.com/jonboulle/clockwork"
)

// Source supplies storm lists per season and track points per storm.
type Source interface {
	ListSeasonStorms(ctx context.Context, year int) ([]domain.RawStorm, error)
	ListStormPoints(ctx context.Context, stormID int) ([]domain.RawPoint, error)
}

// Renderer turns compiled seasons and the summary into report pages.
type Renderer interface {
	RenderCombined(seasons []*domain.Season) error
	RenderSeason(season *domain.Season) error
	RenderSummary(summary domain.Summary) error
}

// Publisher exports season summaries to a downstream system.
type Publisher interface {
	PublishSummaries(ctx context.Context, summaries []domain.SeasonSummary) error
}

// Pipeline runs one fetch, aggregate, render, and publish pass over a year span.
type Pipeline struct {
	source    Source
	renderer  Renderer
	publisher Publisher
	logger    *slog.Logger
	metrics   *observability.Metrics
	clock     clockwork.Clock
	ready     atomic.Bool
	startYear int
	endYear   int
}

// New creates a Pipeline covering [startYear, endYear]. A nil publisher
// disables summary export.
func New(s Source, r Renderer, pub Publisher, logger *slog.Logger, metrics *observability.Metrics, startYear, endYear int) *Pipeline {
	return &Pipeline{
		source:    s,
		renderer:  r,
		publisher: pub,
		logger:    logger,
		metrics:   metrics,
		clock:     clockwork.NewRealClock(),
		startYear: startYear,
		endYear:   endYear,
	}
}

// WithClock replaces the time source used for durations and timestamps.
func (p *Pipeline) WithClock(c clockwork.Clock) *Pipeline {
	p.clock = c
	return p
}

// CheckReadiness returns nil once every report has been written.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("reports have not been written yet")
	}
	return nil
}

// Run executes the whole batch. A failed season list, a malformed number,
// a render failure or a publish failure aborts the run; a failed point query
// only drops that storm's points.
func (p *Pipeline) Run(ctx context.Context) error {
	start := p.clock.Now()
	p.logger.Info("run started", "start_year", p.startYear, "end_year", p.endYear)

	seasons, err := p.extract(ctx)
	if err != nil {
		return err
	}

	global := domain.Aggregate(seasons)
	index := domain.NewPrefixIndex(p.startYear, p.endYear)
	index.Compile(seasons)

	summary, err := domain.NewSummary(seasons, index, global, p.startYear, p.endYear)
	if err != nil {
		p.logger.Warn("data amount range outside fetched span", "error", err)
	}

	if err := p.render(seasons, summary); err != nil {
		return err
	}

	if p.publisher != nil {
		if err := p.publisher.PublishSummaries(ctx, summary.Seasons); err != nil {
			return err
		}
		p.metrics.SummariesSent.Add(float64(len(summary.Seasons)))
	}

	p.ready.Store(true)
	points := 0
	for _, s := range seasons {
		points += s.PointCount()
	}
	elapsed := p.clock.Since(start)
	p.metrics.RunDuration.Set(elapsed.Seconds())
	p.metrics.LastRunSuccess.Set(float64(p.clock.Now().Unix()))
	p.logger.Info("run complete",
		"seasons", len(seasons),
		"points", points,
		"duration", elapsed,
	)
	return nil
}

// extract fetches and parses every season in year order.
func (p *Pipeline) extract(ctx context.Context) ([]*domain.Season, error) {
	seasons := make([]*domain.Season, 0, p.endYear-p.startYear+1)
	for year := p.startYear; year <= p.endYear; year++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		season, err := p.extractSeason(ctx, year)
		if err != nil {
			return nil, err
		}
		seasons = append(seasons, season)
	}
	return seasons, nil
}

func (p *Pipeline) extractSeason(ctx context.Context, year int) (*domain.Season, error) {
	t0 := p.clock.Now()
	raws, err := p.source.ListSeasonStorms(ctx, year)
	p.metrics.RequestDuration.WithLabelValues("list").Observe(p.clock.Since(t0).Seconds())
	if err != nil {
		return nil, fmt.Errorf("fetch season %d: %w", year, err)
	}

	season := domain.NewSeason(year)
	for _, raw := range raws {
		storm, err := domain.ParseStorm(raw)
		if err != nil {
			return nil, fmt.Errorf("season %d: %w", year, err)
		}
		if storm.Points, err = p.extractPoints(ctx, storm.ID); err != nil {
			return nil, err
		}
		season.AddStorm(storm)
	}

	p.metrics.SeasonsFetched.Inc()
	p.metrics.StormsFetched.Add(float64(len(season.Storms)))
	p.logger.Info("season fetched", "year", year, "storms", len(season.Storms), "points", season.PointCount())
	return season, nil
}

// extractPoints returns a storm's parsed points. A failed query is logged and
// yields no points; only parse failures and cancellation are returned.
func (p *Pipeline) extractPoints(ctx context.Context, stormID int) ([]domain.Point, error) {
	t0 := p.clock.Now()
	raws, err := p.source.ListStormPoints(ctx, stormID)
	p.metrics.RequestDuration.WithLabelValues("points").Observe(p.clock.Since(t0).Seconds())
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		p.logger.Warn("storm points fetch failed, skipping storm", "storm_id", stormID, "error", err)
		p.metrics.StormFetchErrors.Inc()
		return nil, nil
	}

	points := make([]domain.Point, 0, len(raws))
	for _, raw := range raws {
		pt, err := domain.ParsePoint(raw, stormID)
		if err != nil {
			return nil, fmt.Errorf("storm %d: %w", stormID, err)
		}
		points = append(points, pt)
	}
	p.metrics.PointsParsed.Add(float64(len(points)))
	return points, nil
}

func (p *Pipeline) render(seasons []*domain.Season, summary domain.Summary) error {
	if err := p.renderer.RenderCombined(seasons); err != nil {
		return fmt.Errorf("render combined report: %w", err)
	}
	p.metrics.ReportsWritten.Inc()

	for _, s := range seasons {
		if err := p.renderer.RenderSeason(s); err != nil {
			return fmt.Errorf("render season %d: %w", s.Year, err)
		}
		p.metrics.ReportsWritten.Inc()
	}

	if err := p.renderer.RenderSummary(summary); err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	p.metrics.ReportsWritten.Inc()
	return nil
}
