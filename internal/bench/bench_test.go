package bench

import (
	"bytes"
	"context"
	"testing"

	"github.com/paul-lee-attorney/gmsm4/internal/testvec"
	"github.com/paul-lee-attorney/gmsm4/sm4"
	"github.com/stretchr/testify/require"
)

var (
	stdBlock = sm4.Block{0x01234567, 0x89abcdef, 0xfedcba98, 0x76543210}
	stdCiph  = sm4.Block{0x681edf34, 0xd206965e, 0x86b3e94f, 0x536e4246}
)

func testConfig() *Config {
	return &Config{
		Blocks:     1000,
		Workers:    1,
		Transforms: []string{TransformDirect, TransformTable},
		Key:        sm4.Key(stdBlock),
		Plaintext:  stdBlock,
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
	}{
		{"single", 1},
		{"parallel", 4},
		{"more workers than blocks", 5000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig()
			cfg.Workers = tc.workers

			report, err := Run(context.Background(), cfg)
			require.NoError(t, err)
			require.Len(t, report.Results, 2)

			for _, res := range report.Results {
				require.Equal(t, stdCiph, res.Ciphertext)
				require.Equal(t, cfg.Blocks, res.Blocks)
				require.LessOrEqual(t, res.Workers, cfg.Blocks)
			}
			require.Equal(t, TransformDirect,
				report.Results[0].Transform)
			require.Equal(t, TransformTable,
				report.Results[1].Transform)
		})
	}
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, testConfig())
	require.ErrorIs(t, err, context.Canceled)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Blocks = 0
	require.Error(t, cfg.Validate())

	cfg = testConfig()
	cfg.Transforms = nil
	require.Error(t, cfg.Validate())

	cfg = testConfig()
	cfg.Transforms = []string{"bitsliced"}
	require.Error(t, cfg.Validate())

	_, err := EngineFor("bitsliced")
	require.Error(t, err)
}

func TestResultMetrics(t *testing.T) {
	t.Parallel()

	res := &Result{Blocks: 1000, Elapsed: 1000000}
	require.EqualValues(t, 1000, res.PerBlock())
	require.InDelta(t, 16.0, res.Throughput(), 1e-9)

	var empty Result
	require.Zero(t, empty.PerBlock())
	require.Zero(t, empty.Throughput())
}

func TestSelfCheck(t *testing.T) {
	t.Parallel()

	for _, name := range []string{TransformDirect, TransformTable} {
		engine, err := EngineFor(name)
		require.NoError(t, err)

		src := testvec.New(7)
		res, err := SelfCheck(src, engine)
		require.NoError(t, err)
		require.True(t, res.Match)
		require.Equal(t, name, res.Transform)
		require.NotEqual(t, res.Plaintext, res.Ciphertext)

		var buf bytes.Buffer
		require.NoError(t, res.Print(&buf))
		require.Contains(t, buf.String(), "plaintext : "+
			res.Plaintext.String())
		require.Contains(t, buf.String(), "match")
	}
}

func TestReportRender(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Blocks = 10

	report, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	report.Render(&buf)

	out := buf.String()
	require.Contains(t, out, stdCiph.String())
	require.Contains(t, out, TransformDirect)
	require.Contains(t, out, TransformTable)
}
