package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btclog/v2"
	"github.com/jessevdk/go-flags"
	"github.com/paul-lee-attorney/gmsm4/internal/bench"
	"github.com/paul-lee-attorney/gmsm4/sm4"
)

const (
	defaultBlocks     = 1000000
	defaultWorkers    = 1
	defaultTransform  = "both"
	defaultKey        = "00112233 44556677 8899aabb ccddeeff"
	defaultPlaintext  = "01234567 89abcdef fedcba98 76543210"
	defaultDebugLevel = "info"
)

// config defines the configuration options for sm4bench.
type config struct {
	Blocks     int    `long:"blocks" short:"n" description:"Number of blocks to encrypt per transform"`
	Workers    int    `long:"workers" short:"w" description:"Number of goroutines sharing the batch"`
	Transform  string `long:"transform" short:"t" description:"Round transform to measure" choice:"direct" choice:"table" choice:"both"`
	Key        string `long:"key" description:"Benchmark key as 32 hex digits"`
	Plaintext  string `long:"plaintext" description:"Benchmark plaintext as 32 hex digits"`
	Seed       uint64 `long:"seed" description:"Seed for the random round-trip check; 0 picks one from the clock"`
	NoCheck    bool   `long:"nocheck" description:"Skip the random round-trip check"`
	DebugLevel string `long:"debuglevel" short:"d" description:"Logging level {trace, debug, info, warn, error, critical, off}"`

	key       sm4.Key
	plaintext sm4.Block
}

// defaultConfig returns a config with default values.
func defaultConfig() config {
	return config{
		Blocks:     defaultBlocks,
		Workers:    defaultWorkers,
		Transform:  defaultTransform,
		Key:        defaultKey,
		Plaintext:  defaultPlaintext,
		DebugLevel: defaultDebugLevel,
	}
}

// loadConfig parses the command line into a validated config.
func loadConfig(args []string) (*config, error) {
	cfg := defaultConfig()

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	if err := validateConfig(&cfg); err != nil {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		return nil, fmt.Errorf("%w (use %s -h to show usage)", err,
			appName)
	}

	return &cfg, nil
}

// validateConfig checks option values and decodes the hex inputs.
func validateConfig(cfg *config) error {
	if cfg.Blocks <= 0 {
		return fmt.Errorf("blocks must be positive, got %d", cfg.Blocks)
	}
	if cfg.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d",
			cfg.Workers)
	}
	if _, ok := btclog.LevelFromString(cfg.DebugLevel); !ok {
		return fmt.Errorf("invalid debuglevel %q", cfg.DebugLevel)
	}

	var err error
	cfg.key, err = sm4.ParseKey(cfg.Key)
	if err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}
	cfg.plaintext, err = sm4.ParseBlock(cfg.Plaintext)
	if err != nil {
		return fmt.Errorf("invalid plaintext: %w", err)
	}

	return nil
}

// transforms returns the transform names selected by the --transform option.
func (c *config) transforms() []string {
	switch c.Transform {
	case bench.TransformDirect, bench.TransformTable:
		return []string{c.Transform}
	default:
		return []string{bench.TransformDirect, bench.TransformTable}
	}
}

// benchConfig converts the options into the harness configuration.
func (c *config) benchConfig() *bench.Config {
	return &bench.Config{
		Blocks:     c.Blocks,
		Workers:    c.Workers,
		Transforms: c.transforms(),
		Key:        c.key,
		Plaintext:  c.plaintext,
	}
}
