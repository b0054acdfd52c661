package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmeanslab/builder"
	"github.com/katalvlaran/kmeanslab/config"
	"github.com/katalvlaran/kmeanslab/geom"
	"github.com/katalvlaran/kmeanslab/session"
	"github.com/katalvlaran/kmeanslab/snapshot"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	sc, err := cfg.Session()
	require.NoError(t, err)
	assert.Equal(t, builder.Uniform, sc.Distribution)
	assert.Equal(t, 3, sc.K)
	assert.Equal(t, geom.DefaultCanvas(), cfg.Canvas)
	assert.Equal(t, snapshot.Zstd, cfg.Compression())
	assert.Equal(t, 1, cfg.Runs)
	assert.Equal(t, config.DefaultMaxAttempts, cfg.MaxAttempts)
	assert.Len(t, cfg.BuilderOptions(), 2, "the default caps rejection sampling")
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("KMEANSLAB_TEST_SECRET", "s3cr3t")

	src := `
distribution: Gaussian
amount: 600
clusters: 4
seed: 7
steps_per_second: 2.5
keep_initial_centroids: true
max_attempts: 1000
runs: 4
compare_seeds: [1, 2, 3]
output:
  png: true
  compression: lz4
store:
  kind: minio
  endpoint: localhost:9000
  bucket: kmeans
  access_key: minioadmin
  secret_key: ${KMEANSLAB_TEST_SECRET}
log:
  level: debug
  format: json
`
	cfg, err := config.Parse(strings.NewReader(src))
	require.NoError(t, err)

	sc, err := cfg.Session()
	require.NoError(t, err)
	assert.Equal(t, session.Config{
		Distribution:         builder.Gaussian,
		Amount:               600,
		K:                    4,
		Seed:                 7,
		MaxIterations:        100,
		StepsPerSecond:       2.5,
		KeepInitialCentroids: true,
	}, sc)

	assert.Equal(t, []int64{1, 2, 3}, cfg.CompareSeeds)
	assert.Equal(t, 4, cfg.Runs)
	assert.Equal(t, 1000, cfg.MaxAttempts)
	assert.True(t, cfg.Output.PNG)
	assert.Equal(t, "out", cfg.Output.Dir, "unset keys keep defaults")
	assert.Equal(t, snapshot.LZ4, cfg.Compression())
	assert.Equal(t, "s3cr3t", cfg.Store.SecretKey)
	assert.Len(t, cfg.BuilderOptions(), 2)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown key":          "colour: red\n",
		"bad yaml":             "amount: [\n",
		"unknown distribution": "distribution: spiral\n",
		"zero clusters":        "clusters: 0\n",
		"bad compression":      "output:\n  compression: brotli\n",
		"bad level":            "log:\n  level: loud\n",
		"bad store":            "store:\n  kind: ftp\n",
		"minio without bucket": "store:\n  kind: minio\n  endpoint: x:9000\n",
		"s3 without bucket":    "store:\n  kind: s3\n",
		"negative attempts":    "max_attempts: -1\n",
		"zero runs":            "runs: 0\n",
		"flat canvas":          "canvas:\n  width: 0\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

func TestValidate_WrapsCauses(t *testing.T) {
	cfg := config.Default()
	cfg.Distribution = "spiral"
	err := cfg.Validate()
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, builder.ErrUnknownDistribution)

	cfg = config.Default()
	cfg.Amount = 0
	err = cfg.Validate()
	assert.ErrorIs(t, err, session.ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kmeanslab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("distribution: grid\namount: 16\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "grid", cfg.Distribution)
	assert.Equal(t, 16, cfg.Amount)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
