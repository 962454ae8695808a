package recbench

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/marquee-live/marquee/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "recbench_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the benchmark tool.
func ShowHelp() {
	os.Stdout.WriteString(`Marquee Recommendation Benchmark
================================

A concurrent tool for exercising and verifying the recommendation API.

Usage:
  go run cmd/recbench/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9090")
  -queries int
        Number of queries to generate and fire (default 10000)
  -max-limit int
        Highest page size to request (default 100)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -log string
        Log file for benchmark output (default: recbench_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Benchmark with default settings
  go run cmd/recbench/main.go

  # Benchmark with custom parameters
  go run cmd/recbench/main.go -queries 50000 -workers 16 -url http://localhost:8080

  # Benchmark with verbose output
  go run cmd/recbench/main.go -verbose -queries 10000
`)
}
