package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/marquee-live/marquee/internal/recbench"
)

// Default configuration constants.
const (
	defaultQueries      = 10000
	defaultMaxLimit     = 100
	defaultWorkers      = 2 // multiplier for runtime.NumCPU()
	defaultTimeout      = 30 * time.Second
	defaultBenchTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:9090", "Base URL of the service")
		queries  = flag.Int("queries", defaultQueries, "Number of queries to generate and fire")
		maxLimit = flag.Int("max-limit", defaultMaxLimit, "Highest page size to request")
		workers  = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFile  = flag.String("log", "", "Log file for benchmark output (default: recbench_TIMESTAMP.log)")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		recbench.ShowHelp()
		return
	}

	// Setup logging
	if err := recbench.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultBenchTimeout)
	defer cancel()

	// Create benchmark configuration
	config := &recbench.Config{
		BaseURL:  *baseURL,
		Queries:  *queries,
		Workers:  *workers,
		Timeout:  *timeout,
		MaxLimit: *maxLimit,
		LogFile:  *logFile,
		Verbose:  *verbose,
	}

	// Run the benchmark
	if err := recbench.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Benchmark failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
