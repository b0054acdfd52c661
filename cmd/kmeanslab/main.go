// Command kmeanslab generates a synthetic dataset, clusters it step by step
// and writes the frames as PNG images, an HTML chart and a snapshot.
//
// Usage:
//
//	kmeanslab -config kmeanslab.yaml
//	kmeanslab -distribution gaussian -amount 600 -k 4 -png -html
//	kmeanslab -distribution circles -k 5 -compare 1,2,3,4
//	kmeanslab -distribution gaussian -runs 3 -keep-initial -png
//	kmeanslab -restore gaussian.kms -png
//
// Flags override the values read from -config.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/kmeanslab/config"
	"github.com/katalvlaran/kmeanslab/logging"
	"github.com/katalvlaran/kmeanslab/render"
	"github.com/katalvlaran/kmeanslab/session"
	"github.com/katalvlaran/kmeanslab/store"
)

// flags holds the command-line overrides.
type flags struct {
	configPath string
	restore    string

	distribution string
	amount       int
	clusters     int
	seed         int64
	maxIter      int
	sps          float64
	keep         bool
	runs         int
	maxAttempts  int
	compare      string

	outDir      string
	png         bool
	html        bool
	snapshot    string
	compression string
	storeKind   string

	logLevel  string
	logFormat string
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "kmeanslab: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("kmeanslab", flag.ContinueOnError)
	var f flags
	fs.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&f.restore, "restore", "", "resume from a snapshot in the configured store")
	fs.StringVar(&f.distribution, "distribution", "", "uniform, circles, gaussian or grid")
	fs.IntVar(&f.amount, "amount", 0, "number of data points")
	fs.IntVar(&f.clusters, "k", 0, "number of clusters")
	fs.Int64Var(&f.seed, "seed", 0, "random seed")
	fs.IntVar(&f.maxIter, "max-iter", 0, "maximum update steps")
	fs.Float64Var(&f.sps, "sps", 0, "phases per second (0 = as fast as possible)")
	fs.BoolVar(&f.keep, "keep-initial", false, "start every run from the first run's centroids")
	fs.IntVar(&f.runs, "runs", 0, "number of datasets to generate and cluster in sequence")
	fs.IntVar(&f.maxAttempts, "max-attempts", 0, "rejection cap for the circles generator (0 = unbounded)")
	fs.StringVar(&f.compare, "compare", "", "comma-separated seeds to compare from shared starting centroids")
	fs.StringVar(&f.outDir, "out", "", "output directory")
	fs.BoolVar(&f.png, "png", false, "write one PNG per phase")
	fs.BoolVar(&f.html, "html", false, "write an HTML chart of the final frame")
	fs.StringVar(&f.snapshot, "snapshot", "", "snapshot name to save in the store")
	fs.StringVar(&f.compression, "compression", "", "snapshot compression: none, lz4 or zstd")
	fs.StringVar(&f.storeKind, "store", "", "snapshot store: memory, local, minio or s3")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&f.logFormat, "log-format", "", "text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := applyFlags(fs, f, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.FromStrings(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return err
	}

	sc, err := cfg.Session()
	if err != nil {
		return err
	}

	if len(cfg.CompareSeeds) > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return compare(ctx, logger, sc, cfg)
	}

	st, err := openStore(context.Background(), cfg.Store)
	if err != nil {
		return err
	}

	// Generation is not cancellable; leave SIGINT at its default until it is done.
	s, err := session.New(sc,
		session.WithLogger(logger),
		session.WithBuilderOptions(cfg.BuilderOptions()...),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if f.restore != "" {
		state, err := store.LoadState(ctx, st, f.restore)
		if err != nil {
			return err
		}
		if err := s.Restore(state); err != nil {
			return err
		}
	}

	if cfg.Output.PNG || cfg.Output.HTML {
		if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
			return err
		}
	}

	frames := 0
	for i := 1; i <= cfg.Runs; i++ {
		if i > 1 {
			if err := s.Regenerate(); err != nil {
				return err
			}
		}
		logger.Debug("run started", "run", i, "initial_centroids", s.Run().InitialCentroids())

		err = s.Play(ctx, func(fr session.Frame) error {
			frames++
			if !cfg.Output.PNG {
				return nil
			}
			name := filepath.Join(cfg.Output.Dir, fmt.Sprintf("frame-%02d-%04d.png", i, frames))
			return writePNG(name, cfg, fr)
		})
		if err != nil {
			return err
		}

		fr := s.Frame()
		fmt.Printf("run=%d phase=%s iterations=%d inertia=%.3f sizes=%v\n",
			i, fr.Phase, fr.Iteration, fr.Inertia, s.Run().Sizes())
	}

	final := s.Frame()
	if cfg.Output.HTML {
		name := filepath.Join(cfg.Output.Dir, "chart.html")
		title := fmt.Sprintf("%s, k=%d, iteration %d", cfg.Distribution, s.Config().K, final.Iteration)
		if err := writeHTML(name, title, final); err != nil {
			return err
		}
		logger.Info("chart written", "path", name)
	}

	if cfg.Output.Snapshot != "" {
		err := store.SaveState(ctx, st, cfg.Output.Snapshot, s.State(), cfg.Compression())
		logging.LogSnapshot(ctx, logger, cfg.Output.Snapshot, err)
		if err != nil {
			return err
		}
	}

	logger.Info("done", "runs", cfg.Runs, "frames", frames)
	return nil
}

// applyFlags copies every explicitly set flag over cfg.
func applyFlags(fs *flag.FlagSet, f flags, cfg *config.Config) error {
	var err error
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "distribution":
			cfg.Distribution = f.distribution
		case "amount":
			cfg.Amount = f.amount
		case "k":
			cfg.Clusters = f.clusters
		case "seed":
			cfg.Seed = f.seed
		case "max-iter":
			cfg.MaxIterations = f.maxIter
		case "sps":
			cfg.StepsPerSecond = f.sps
		case "keep-initial":
			cfg.KeepInitialCentroids = f.keep
		case "runs":
			cfg.Runs = f.runs
		case "max-attempts":
			cfg.MaxAttempts = f.maxAttempts
		case "compare":
			seeds, perr := parseSeeds(f.compare)
			if perr != nil {
				err = perr
			}
			cfg.CompareSeeds = seeds
		case "out":
			cfg.Output.Dir = f.outDir
		case "png":
			cfg.Output.PNG = f.png
		case "html":
			cfg.Output.HTML = f.html
		case "snapshot":
			cfg.Output.Snapshot = f.snapshot
		case "compression":
			cfg.Output.Compression = f.compression
		case "store":
			cfg.Store.Kind = f.storeKind
		case "log-level":
			cfg.Log.Level = f.logLevel
		case "log-format":
			cfg.Log.Format = f.logFormat
		}
	})
	return err
}

// parseSeeds parses "1,2,3".
func parseSeeds(s string) ([]int64, error) {
	var seeds []int64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("compare: bad seed %q: %w", field, err)
		}
		seeds = append(seeds, v)
	}
	return seeds, nil
}

func compare(ctx context.Context, logger *slog.Logger, sc session.Config, cfg config.Config) error {
	results, err := session.Compare(ctx, sc, cfg.CompareSeeds, nil, cfg.BuilderOptions()...)
	if err != nil {
		return err
	}
	logger.Info("compare finished", "runs", len(results))

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEED\tITERATIONS\tCONVERGED\tINERTIA\tSIZES")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%d\t%t\t%.3f\t%v\n", r.Seed, r.Iterations, r.Converged, r.Inertia, r.Sizes)
	}
	return tw.Flush()
}

func writePNG(name string, cfg config.Config, fr session.Frame) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := render.PNG(out, cfg.Canvas, fr.Points, fr.Centroids, nil); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func writeHTML(name, title string, fr session.Frame) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := render.HTML(out, title, fr.Points, fr.Centroids); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
