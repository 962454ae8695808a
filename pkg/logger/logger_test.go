package logger

import (
	"context"
	"testing"
	"time"
)

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}
}

func TestLoggerBasic(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	l := Get()
	ctx := context.Background()
	l.Info(ctx, "info message", String("k", "v"), Int("n", 1))
	l.Warn(ctx, "warn message", Float64("f", 1.5), Bool("b", true))
	l.Debug(ctx, "debug message", Duration("d", time.Second))
	l.Error(ctx, "error message", Any("x", struct{}{}))

	named := l.Named("sub")
	if named == nil {
		t.Fatal("named logger is nil")
	}
	named.Info(ctx, "named message")
}

func TestSetLevelString(t *testing.T) {
	cases := []struct {
		in      string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"", false},
		{"WARN", false},
		{"warning", false},
		{"error", false},
		{"loud", true},
	}
	for _, c := range cases {
		err := SetLevelString(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("SetLevelString(%q) error = %v, wantErr %v", c.in, err, c.wantErr)
		}
	}
}
