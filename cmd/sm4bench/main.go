// Command sm4bench verifies the SM4 engine on a random block and measures the
// encryption speed of the direct and table-accelerated round transforms.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"
	"github.com/paul-lee-attorney/gmsm4/internal/bench"
	"github.com/paul-lee-attorney/gmsm4/internal/testvec"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[sm4bench] %v\n", err)
	os.Exit(1)
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		// Help output is not an error.
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fatal(err)
	}

	initLogging(os.Stdout, cfg.DebugLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		fatal(err)
	}
}

// run performs the round-trip check for each selected transform and then the
// timing run, writing human readable output to w.
func run(ctx context.Context, cfg *config, w io.Writer) error {
	bcfg := cfg.benchConfig()

	if !cfg.NoCheck {
		src := testvec.New(cfg.Seed)
		log.Infof("Running round-trip check (seed=%d)", src.Seed())

		for _, name := range bcfg.Transforms {
			engine, err := bench.EngineFor(name)
			if err != nil {
				return err
			}

			res, checkErr := bench.SelfCheck(src, engine)
			if err := res.Print(w); err != nil {
				return err
			}
			if checkErr != nil {
				return checkErr
			}
		}
	}

	report, err := bench.Run(ctx, bcfg)
	if report != nil {
		report.Render(w)
	}
	return err
}
