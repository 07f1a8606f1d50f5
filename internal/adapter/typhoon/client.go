package typhoon

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/couchcryptid/typhoon-report/internal/domain"
)

const (
	stormRecordTag = "typhoonlistmodel"
	pointRecordTag = "typhoonpointmodel"
)

// Client fetches storm lists and track points from the typhoon data API.
// It implements pipeline.Source.
type Client struct {
	listURI    string
	infoURI    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client. listURI is suffixed with the year and infoURI
// with the storm id; every request is bounded by timeout.
func NewClient(listURI, infoURI string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		listURI: listURI,
		infoURI: infoURI,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// ListSeasonStorms returns the storm records of one season in source order.
func (c *Client) ListSeasonStorms(ctx context.Context, year int) ([]domain.RawStorm, error) {
	recs, err := c.fetchRecords(ctx, c.listURI+strconv.Itoa(year), stormRecordTag, "tfid", "name", "enname")
	if err != nil {
		return nil, fmt.Errorf("list storms %d: %w", year, err)
	}

	storms := make([]domain.RawStorm, 0, len(recs))
	for _, r := range recs {
		storms = append(storms, domain.RawStorm{
			ID:     r["tfid"],
			Name:   r["name"],
			EnName: r["enname"],
		})
	}
	return storms, nil
}

// ListStormPoints returns the observed track points of one storm. Forecast
// points are excluded.
func (c *Client) ListStormPoints(ctx context.Context, stormID int) ([]domain.RawPoint, error) {
	recs, err := c.fetchRecords(ctx, c.infoURI+strconv.Itoa(stormID), pointRecordTag,
		"radius7", "power", "strong", "speed", "movespeed", "pressure", "lat", "lng", "time")
	if err != nil {
		return nil, fmt.Errorf("list points %d: %w", stormID, err)
	}

	points := make([]domain.RawPoint, 0, len(recs))
	for _, r := range recs {
		points = append(points, domain.RawPoint{
			Radius7:   r["radius7"],
			Power:     r["power"],
			Strong:    r["strong"],
			Speed:     r["speed"],
			MoveSpeed: r["movespeed"],
			Pressure:  r["pressure"],
			Lat:       r["lat"],
			Lng:       r["lng"],
			Time:      r["time"],
		})
	}
	return points, nil
}

func (c *Client) fetchRecords(ctx context.Context, url, recordTag string, fields ...string) ([]record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("typhoon API error: status %d: %s", resp.StatusCode, body)
	}

	recs, err := extractRecords(resp.Body, recordTag, fields...)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("records fetched", "url", url, "records", len(recs))
	return recs, nil
}
