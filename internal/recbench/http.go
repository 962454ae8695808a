package recbench

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
	"github.com/marquee-live/marquee/pkg/logger"
)

// HTTP status code constants.
const (
	statusOK = 200
)

// HTTPClient wraps http.Client with timeout.
type HTTPClient struct {
	client *http.Client
}

// newHTTPClient creates a new HTTP client with timeout.
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Get performs a GET request, tagging it with the query id.
func (c *HTTPClient) Get(ctx context.Context, rawURL, requestID string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// queryURL renders a Query as a /recommendations request URL.
func queryURL(base string, q Query) string {
	params := url.Values{}
	if len(q.LikedGenres) > 0 {
		params.Set("likedGenres", strings.Join(q.LikedGenres, ","))
	}
	params.Set("bandCenter", strconv.FormatFloat(q.BandCenter, 'f', 2, 64))
	params.Set("bandWidth", strconv.FormatFloat(q.BandWidth, 'f', 2, 64))
	params.Set("limit", strconv.Itoa(q.Limit))
	return base + "/recommendations?" + params.Encode()
}

// runQueries fires the generated queries concurrently using a worker pool
// and verifies each returned page.
func runQueries(ctx context.Context, config *Config, queries []Query, stats *Stats) error {
	log.Printf("firing %d queries with %d workers...", len(queries), config.Workers)

	client := newHTTPClient(config.Timeout)

	var (
		sent     int64
		ok       int64
		failed   int64
		verified int64
		invalid  int64
		rows     int64
		empty    int64
	)

	queryChan := make(chan Query, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for q := range queryChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				atomic.AddInt64(&sent, 1)
				page, err := fetchPage(ctx, client, config.BaseURL, q)
				if err != nil {
					atomic.AddInt64(&failed, 1)
					if config.Verbose {
						log.Printf("query %s failed: %v", q.ID, err)
					}
					continue
				}
				atomic.AddInt64(&ok, 1)
				atomic.AddInt64(&rows, int64(len(page)))
				if len(page) == 0 {
					atomic.AddInt64(&empty, 1)
				}

				if err := VerifyPage(q, page); err != nil {
					atomic.AddInt64(&invalid, 1)
					log.Printf("query %s returned an invalid page: %v", q.ID, err)
					continue
				}
				atomic.AddInt64(&verified, 1)
			}
		}()
	}

	go func() {
		defer close(queryChan)
		for _, q := range queries {
			select {
			case <-ctx.Done():
				return
			case queryChan <- q:
			}
		}
	}()

	wg.Wait()

	stats.QueriesSent = int(atomic.LoadInt64(&sent))
	stats.QueriesOK = int(atomic.LoadInt64(&ok))
	stats.QueriesFailed = int(atomic.LoadInt64(&failed))
	stats.PagesVerified = int(atomic.LoadInt64(&verified))
	stats.PagesInvalid = int(atomic.LoadInt64(&invalid))
	stats.RowsReturned = int(atomic.LoadInt64(&rows))
	stats.EmptyPages = int(atomic.LoadInt64(&empty))

	logger.Get().Info(ctx, "query run completed",
		logger.Int("sent", stats.QueriesSent),
		logger.Int("ok", stats.QueriesOK),
		logger.Int("failed", stats.QueriesFailed),
		logger.Int("invalidPages", stats.PagesInvalid))
	return nil
}

// fetchPage executes one query and decodes the page.
func fetchPage(ctx context.Context, client *HTTPClient, base string, q Query) ([]Row, error) {
	resp, err := client.Get(ctx, queryURL(base, q), q.ID)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if resp.StatusCode != statusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var page []Row
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to decode page: %w", err)
	}
	return page, nil
}
