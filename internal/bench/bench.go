// Package bench 为SM4轮函数引擎的计时测试工具：以同一轮秘钥反复加密N个分组，
// 统计总耗时与单个分组的平均耗时，并比较直接计算与查表加速两种实现。
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/paul-lee-attorney/gmsm4/sm4"
	"golang.org/x/sync/errgroup"
)

const (
	// TransformDirect 代表直接计算的合成置换。
	TransformDirect = "direct"

	// TransformTable 代表查表加速的合成置换。
	TransformTable = "table"

	// chunkSize 为每个goroutine两次检查ctx之间加密的分组数。
	chunkSize = 1 << 14
)

var (
	// ErrTransformMismatch 代表两种合成置换对同一明文给出了不同的密文。
	ErrTransformMismatch = errors.New("bench: transforms disagree")

	// ErrRoundTripMismatch 代表解密结果与原明文不一致。
	ErrRoundTripMismatch = errors.New("bench: round trip mismatch")
)

// Config 为计时测试的参数。
type Config struct {
	// Blocks 为每种实现加密的分组个数。
	Blocks int

	// Workers 为并发加密的goroutine个数，不大于1时单线程执行。
	Workers int

	// Transforms 为参与测试的合成置换名称，取值为 TransformDirect 或 TransformTable。
	Transforms []string

	// Key 与 Plaintext 为测试所用的秘钥与明文。
	Key       sm4.Key
	Plaintext sm4.Block
}

// Validate 校验参数。
func (c *Config) Validate() error {
	if c.Blocks <= 0 {
		return fmt.Errorf("bench: blocks must be positive, got %d",
			c.Blocks)
	}
	if len(c.Transforms) == 0 {
		return errors.New("bench: no transform selected")
	}
	for _, name := range c.Transforms {
		switch name {
		case TransformDirect, TransformTable:
		default:
			return fmt.Errorf("bench: unknown transform %q", name)
		}
	}
	return nil
}

// Result 为单一合成置换的计时结果。
type Result struct {
	Transform  string
	Blocks     int
	Workers    int
	Elapsed    time.Duration
	Ciphertext sm4.Block
}

// PerBlock 返回单个分组的平均耗时。
func (r *Result) PerBlock() time.Duration {
	if r.Blocks == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Blocks)
}

// Throughput 返回以MB/s计的吞吐量。
func (r *Result) Throughput() float64 {
	secs := r.Elapsed.Seconds()
	if secs == 0 {
		return 0
	}
	return float64(r.Blocks*sm4.BlockSize) / secs / 1e6
}

// Report 汇总各合成置换的计时结果。
type Report struct {
	Key       sm4.Key
	Plaintext sm4.Block
	Results   []*Result
}

// EngineFor 按名称返回引擎，查表加速的引擎会先行初始化查找表。
func EngineFor(name string) (*sm4.Engine, error) {
	switch name {
	case TransformDirect:
		return sm4.DirectEngine(), nil

	case TransformTable:
		sm4.InitTables()
		return sm4.TableEngine()

	default:
		return nil, fmt.Errorf("bench: unknown transform %q", name)
	}
}

// Run 依次对每种合成置换执行计时测试，并校验各实现的密文一致。
func Run(ctx context.Context, cfg *Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rk := sm4.GenerateRoundKeys(cfg.Key)
	log.Tracef("Round keys for %v: %v", cfg.Key,
		newLogClosure(func() string {
			return spew.Sdump(rk)
		}))

	report := &Report{
		Key:       cfg.Key,
		Plaintext: cfg.Plaintext,
	}
	for _, name := range cfg.Transforms {
		engine, err := EngineFor(name)
		if err != nil {
			return nil, err
		}

		log.Infof("Encrypting %d blocks with %s transform "+
			"(workers=%d)", cfg.Blocks, name, workers(cfg))

		res, err := runOne(ctx, engine, &rk, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s transform: %w", name, err)
		}
		log.Debugf("Transform %s finished in %v (%v/block)", name,
			res.Elapsed, res.PerBlock())

		report.Results = append(report.Results, res)
	}

	first := report.Results[0]
	for _, res := range report.Results[1:] {
		if res.Ciphertext != first.Ciphertext {
			return report, fmt.Errorf("%w: %s=%v, %s=%v",
				ErrTransformMismatch, first.Transform,
				first.Ciphertext, res.Transform, res.Ciphertext)
		}
	}

	return report, nil
}

func workers(cfg *Config) int {
	if cfg.Workers < 1 {
		return 1
	}
	if cfg.Workers > cfg.Blocks {
		return cfg.Blocks
	}
	return cfg.Workers
}

// runOne 将Blocks个分组平均分配给各goroutine，每个分组都从同一明文开始加密。
func runOne(ctx context.Context, engine *sm4.Engine, rk *sm4.RoundKeys,
	cfg *Config) (*Result, error) {

	n := workers(cfg)
	out := make([]sm4.Block, n)

	eg, ctx := errgroup.WithContext(ctx)
	start := time.Now()
	for w := 0; w < n; w++ {
		count := cfg.Blocks / n
		if w < cfg.Blocks%n {
			count++
		}

		eg.Go(func() error {
			var c sm4.Block
			for done := 0; done < count; {
				if err := ctx.Err(); err != nil {
					return err
				}

				end := min(done+chunkSize, count)
				for ; done < end; done++ {
					c = engine.EncryptBlock(cfg.Plaintext, rk)
				}
			}
			out[w] = c
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	return &Result{
		Transform:  engine.Transform().Name(),
		Blocks:     cfg.Blocks,
		Workers:    n,
		Elapsed:    elapsed,
		Ciphertext: out[0],
	}, nil
}
