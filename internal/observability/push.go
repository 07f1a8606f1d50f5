package observability

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus/push"
)

// PushJob is the Pushgateway job name for report runs.
const PushJob = "typhoon_report"

// Push sends the run metrics to a Pushgateway, replacing the job's previous group.
func Push(ctx context.Context, gatewayURL string, m *Metrics) error {
	p := push.New(gatewayURL, PushJob)
	for _, c := range m.Collectors() {
		p = p.Collector(c)
	}
	if err := p.PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}
