package recbench

import (
	"context"
	"fmt"
	"time"

	"github.com/marquee-live/marquee/pkg/logger"
)

// Run executes the complete recommendation benchmark.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting recommendation benchmark",
		logger.String("baseURL", config.BaseURL),
		logger.Int("queries", config.Queries),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Int("maxLimit", config.MaxLimit),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Generate queries
	queries := generateQueries(ctx, config, stats)

	// Step 3: Fire queries concurrently and verify every page
	if err := runQueries(ctx, config, queries, stats); err != nil {
		return fmt.Errorf("query run failed: %w", err)
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	if stats.PagesInvalid > 0 {
		return fmt.Errorf("%d of %d pages violated ordering or shape invariants",
			stats.PagesInvalid, stats.QueriesOK)
	}

	logger.Get().Info(ctx, "benchmark completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	resp, err := client.Get(ctx, config.BaseURL+"/healthz", "")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Any 200 counts as healthy; the endpoint serves Prometheus metrics.
	if resp.StatusCode != statusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// displayFinalStats prints the final benchmark statistics.
func displayFinalStats(stats *Stats) {
	var successRate, queriesPerSecond, avgRows float64

	if stats.QueriesSent > 0 {
		successRate = float64(stats.QueriesOK) / float64(stats.QueriesSent) * 100
	}
	if stats.Duration > 0 {
		queriesPerSecond = float64(stats.QueriesSent) / stats.Duration.Seconds()
	}
	if stats.QueriesOK > 0 {
		avgRows = float64(stats.RowsReturned) / float64(stats.QueriesOK)
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("queriesGenerated", stats.QueriesGenerated),
		logger.Int("queriesSent", stats.QueriesSent),
		logger.Int("queriesOK", stats.QueriesOK),
		logger.Int("queriesFailed", stats.QueriesFailed),
		logger.Int("pagesVerified", stats.PagesVerified),
		logger.Int("pagesInvalid", stats.PagesInvalid),
		logger.Int("emptyPages", stats.EmptyPages),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("queriesPerSecond", queriesPerSecond),
		logger.Float64("avgRowsPerPage", avgRows))
}
