package config

import (
	"bytes"
	"testing"

	"github.com/lgbarn/movegen-go/internal/errors"
	"github.com/lgbarn/movegen-go/internal/testutil"
)

// TestPerftConfig_Defaults verifies PerftConfig has sensible defaults
func TestPerftConfig_Defaults(t *testing.T) {
	cfg := NewPerftConfig()

	if cfg.Depth != 1 {
		t.Errorf("Depth = %d, want 1", cfg.Depth)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.Divide {
		t.Error("Divide should be false by default")
	}
	if cfg.HashSize != 0 {
		t.Errorf("HashSize = %d, want 0", cfg.HashSize)
	}
	if cfg.Suite {
		t.Error("Suite should be false by default")
	}
}

// TestPerftConfig_Validate verifies perft config validation
func TestPerftConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     PerftConfig
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			cfg:     *NewPerftConfig(),
			wantErr: false,
		},
		{
			name:    "depth zero counts the root",
			cfg:     PerftConfig{Depth: 0, Workers: 1},
			wantErr: false,
		},
		{
			name:    "negative depth",
			cfg:     PerftConfig{Depth: -1, Workers: 1},
			wantErr: true,
		},
		{
			name:    "depth beyond limit",
			cfg:     PerftConfig{Depth: MaxDepth + 1, Workers: 1},
			wantErr: true,
		},
		{
			name:    "divide at depth zero",
			cfg:     PerftConfig{Depth: 0, Divide: true, Workers: 1},
			wantErr: true,
		},
		{
			name:    "no workers",
			cfg:     PerftConfig{Depth: 3, Workers: 0},
			wantErr: true,
		},
		{
			name:    "negative hash size",
			cfg:     PerftConfig{Depth: 3, Workers: 1, HashSize: -1},
			wantErr: true,
		},
		{
			name:    "suite with depth cap",
			cfg:     PerftConfig{Depth: 1, Workers: 4, Suite: true, SuiteDepth: 3},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			}
		})
	}
}

// TestSearchConfig verifies search defaults and validation
func TestSearchConfig(t *testing.T) {
	cfg := NewSearchConfig()
	testutil.AssertFalse(t, cfg.Enabled(), "search should be disabled by default")
	testutil.AssertNoError(t, cfg.Validate())

	cfg.Depth = 4
	testutil.AssertTrue(t, cfg.Enabled(), "search should be enabled at depth 4")

	cfg.Depth = -2
	testutil.AssertErrorIs(t, cfg.Validate(), errors.ErrInvalidConfig)
}

// TestCacheConfig verifies the cache is off unless a directory is set
func TestCacheConfig(t *testing.T) {
	cfg := NewCacheConfig()
	testutil.AssertFalse(t, cfg.Enabled())

	cfg.Dir = t.TempDir()
	testutil.AssertTrue(t, cfg.Enabled())
}

// TestConfig_Sections verifies that Config carries every section
func TestConfig_Sections(t *testing.T) {
	cfg := NewConfig()

	if cfg.Position.FEN != "" {
		t.Errorf("Position.FEN = %q, want empty", cfg.Position.FEN)
	}
	if cfg.Perft.Depth != 1 {
		t.Errorf("Perft.Depth = %d, want 1", cfg.Perft.Depth)
	}
	if cfg.Cache.Enabled() {
		t.Error("Cache should be disabled")
	}
	if cfg.Search.Enabled() {
		t.Error("Search should be disabled")
	}
	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	testutil.AssertNoError(t, cfg.Validate())
}

// TestConfig_Validate verifies that section errors surface
func TestConfig_Validate(t *testing.T) {
	cfg := NewConfig()
	cfg.Verbosity = 3
	testutil.AssertErrorIs(t, cfg.Validate(), errors.ErrInvalidConfig, "verbosity")

	cfg = NewConfig()
	cfg.Perft.Workers = 0
	testutil.AssertErrorIs(t, cfg.Validate(), errors.ErrInvalidConfig, "workers")

	cfg = NewConfig()
	cfg.Search.Depth = MaxDepth + 1
	testutil.AssertErrorIs(t, cfg.Validate(), errors.ErrInvalidConfig, "search depth")
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfig_Logf verifies log lines are gated on verbosity
func TestConfig_Logf(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfig()
	cfg.SetLog(buf)
	cfg.Verbosity = 1

	cfg.Logf(1, "depth %d\n", 3)
	cfg.Logf(2, "detail %d\n", 4)

	testutil.AssertEqual(t, buf.String(), "depth 3\n")
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithFEN("8/8/8/8/8/8/8/K6k w - - 0 1").
		WithMoves("a1a2", "h1h2").
		WithDepth(4).
		WithDivide(true).
		WithWorkers(8).
		WithHashSize(1 << 16).
		WithSuite(true, 3).
		WithSuiteCase("kiwipete").
		WithCacheDir("/tmp/perft").
		WithSearchDepth(2).
		WithJSONOutput(true).
		WithOutput(out).
		WithVerbosity(2).
		Build()

	testutil.AssertEqual(t, cfg.Position.FEN, "8/8/8/8/8/8/8/K6k w - - 0 1")
	testutil.AssertEqual(t, cfg.Position.Moves, []string{"a1a2", "h1h2"})
	testutil.AssertEqual(t, cfg.Perft.Depth, 4)
	testutil.AssertTrue(t, cfg.Perft.Divide)
	testutil.AssertEqual(t, cfg.Perft.Workers, 8)
	testutil.AssertEqual(t, cfg.Perft.HashSize, 1<<16)
	testutil.AssertTrue(t, cfg.Perft.Suite)
	testutil.AssertEqual(t, cfg.Perft.SuiteDepth, 3)
	testutil.AssertEqual(t, cfg.Perft.SuiteCase, "kiwipete")
	testutil.AssertEqual(t, cfg.Cache.Dir, "/tmp/perft")
	testutil.AssertEqual(t, cfg.Search.Depth, 2)
	testutil.AssertTrue(t, cfg.JSONFormat)
	testutil.AssertEqual(t, cfg.Verbosity, 2)
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
	testutil.AssertNoError(t, cfg.Validate())
}
