// Package config loads the kmeanslab YAML configuration.
//
// Default supplies every value; a file only needs the keys it overrides:
//
//	distribution: gaussian
//	amount: 600
//	clusters: 4
//	seed: 7
//	steps_per_second: 4
//	keep_initial_centroids: true
//	runs: 3
//	max_attempts: 10000
//	output:
//	  dir: out
//	  png: true
//	  html: true
//	  snapshot: gaussian.kms
//	  compression: zstd
//	store:
//	  kind: minio
//	  endpoint: localhost:9000
//	  bucket: kmeans
//	  access_key: ${MINIO_ACCESS_KEY}
//	  secret_key: ${MINIO_SECRET_KEY}
//	log:
//	  level: debug
//	  format: json
//
// Credentials are expanded from the environment after parsing.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kmeanslab/builder"
	"github.com/katalvlaran/kmeanslab/geom"
	"github.com/katalvlaran/kmeanslab/logging"
	"github.com/katalvlaran/kmeanslab/session"
	"github.com/katalvlaran/kmeanslab/snapshot"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Store kinds.
const (
	StoreMemory = "memory"
	StoreLocal  = "local"
	StoreMinIO  = "minio"
	StoreS3     = "s3"
)

// DefaultMaxAttempts bounds rejection sampling so that an infeasible circles
// layout fails instead of spinning.
const DefaultMaxAttempts = 10000

// Config is the top-level file layout.
type Config struct {
	Distribution         string      `yaml:"distribution"`
	Amount               int         `yaml:"amount"`
	Clusters             int         `yaml:"clusters"`
	Seed                 int64       `yaml:"seed"`
	MaxIterations        int         `yaml:"max_iterations"`
	StepsPerSecond       float64     `yaml:"steps_per_second"`
	KeepInitialCentroids bool        `yaml:"keep_initial_centroids"`
	MaxAttempts          int         `yaml:"max_attempts"` // generator rejection cap, 0 = unbounded
	Runs                 int         `yaml:"runs"`         // datasets played in sequence
	Canvas               geom.Canvas `yaml:"canvas"`
	CompareSeeds         []int64     `yaml:"compare_seeds"`

	Output Output `yaml:"output"`
	Store  Store  `yaml:"store"`
	Log    Log    `yaml:"log"`
}

// Output selects the artefacts the CLI writes.
type Output struct {
	Dir         string `yaml:"dir"`
	PNG         bool   `yaml:"png"`  // one PNG per frame
	HTML        bool   `yaml:"html"` // final chart
	Snapshot    string `yaml:"snapshot"`
	Compression string `yaml:"compression"`
}

// Store selects where snapshots go.
type Store struct {
	Kind      string `yaml:"kind"`
	Dir       string `yaml:"dir"` // local
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
	Endpoint  string `yaml:"endpoint"` // minio
	Region    string `yaml:"region"`   // s3
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Secure    bool   `yaml:"secure"`
}

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Distribution:   builder.Uniform.String(),
		Amount:         300,
		Clusters:       3,
		Seed:           1,
		MaxIterations:  100,
		StepsPerSecond: 0,
		MaxAttempts:    DefaultMaxAttempts,
		Runs:           1,
		Canvas:         geom.DefaultCanvas(),
		Output: Output{
			Dir:         "out",
			Compression: snapshot.Zstd.String(),
		},
		Store: Store{
			Kind: StoreLocal,
			Dir:  "snapshots",
		},
		Log: Log{
			Level:  "info",
			Format: string(logging.FormatText),
		},
	}
}

// Load reads and validates the file at path on top of Default.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes YAML from r on top of Default. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode: %w", err)
		}
	}

	cfg.Store.AccessKey = os.ExpandEnv(cfg.Store.AccessKey)
	cfg.Store.SecretKey = os.ExpandEnv(cfg.Store.SecretKey)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field that a later stage would otherwise reject.
func (c Config) Validate() error {
	if _, err := c.Session(); err != nil {
		return err
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("%w: max_attempts %d < 0", ErrInvalid, c.MaxAttempts)
	}
	if c.Runs < 1 {
		return fmt.Errorf("%w: runs %d < 1", ErrInvalid, c.Runs)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas %vx%v", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := snapshot.ParseCompression(c.Output.Compression); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	switch strings.ToLower(c.Store.Kind) {
	case StoreMemory:
	case StoreLocal:
		if c.Store.Dir == "" {
			return fmt.Errorf("%w: store.dir is required for local", ErrInvalid)
		}
	case StoreMinIO:
		if c.Store.Endpoint == "" || c.Store.Bucket == "" {
			return fmt.Errorf("%w: store.endpoint and store.bucket are required for minio", ErrInvalid)
		}
	case StoreS3:
		if c.Store.Bucket == "" {
			return fmt.Errorf("%w: store.bucket is required for s3", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown store.kind %q", ErrInvalid, c.Store.Kind)
	}

	return nil
}

// Session converts the clustering fields to a session.Config.
func (c Config) Session() (session.Config, error) {
	dist, err := builder.ParseDistribution(c.Distribution)
	if err != nil {
		return session.Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	sc := session.Config{
		Distribution:         dist,
		Amount:               c.Amount,
		K:                    c.Clusters,
		Seed:                 c.Seed,
		MaxIterations:        c.MaxIterations,
		StepsPerSecond:       c.StepsPerSecond,
		KeepInitialCentroids: c.KeepInitialCentroids,
	}
	if err := sc.Validate(); err != nil {
		return session.Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return sc, nil
}

// BuilderOptions returns the generator options implied by the file.
func (c Config) BuilderOptions() []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithCanvas(c.Canvas)}
	if c.MaxAttempts > 0 {
		opts = append(opts, builder.WithMaxAttempts(c.MaxAttempts))
	}
	return opts
}

// Compression returns the parsed snapshot compression.
func (c Config) Compression() snapshot.Compression {
	comp, _ := snapshot.ParseCompression(c.Output.Compression)
	return comp
}
