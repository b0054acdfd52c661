package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmeanslab/builder"
	"github.com/katalvlaran/kmeanslab/config"
	"github.com/katalvlaran/kmeanslab/store"
	miniostore "github.com/katalvlaran/kmeanslab/store/minio"
	s3store "github.com/katalvlaran/kmeanslab/store/s3"
)

func TestParseSeeds(t *testing.T) {
	seeds, err := parseSeeds("1, 2,,3")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, seeds)

	_, err = parseSeeds("1,x")
	assert.Error(t, err)
}

func TestApplyFlags_OnlyExplicit(t *testing.T) {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	var f flags
	fs.IntVar(&f.amount, "amount", 0, "")
	fs.IntVar(&f.clusters, "k", 0, "")
	fs.StringVar(&f.compare, "compare", "", "")
	fs.IntVar(&f.runs, "runs", 0, "")
	require.NoError(t, fs.Parse([]string{"-k", "5", "-compare", "4,5", "-runs", "3"}))

	cfg := config.Default()
	require.NoError(t, applyFlags(fs, f, &cfg))
	assert.Equal(t, 5, cfg.Clusters)
	assert.Equal(t, 300, cfg.Amount, "unset flags keep the configured value")
	assert.Equal(t, []int64{4, 5}, cfg.CompareSeeds)
	assert.Equal(t, 3, cfg.Runs)
	assert.Equal(t, config.DefaultMaxAttempts, cfg.MaxAttempts)
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	st, err := openStore(ctx, config.Store{Kind: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &store.MemoryStore{}, st)

	st, err = openStore(ctx, config.Store{Kind: "local", Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &store.LocalStore{}, st)

	st, err = openStore(ctx, config.Store{Kind: "minio", Endpoint: "localhost:9000", Bucket: "b"})
	require.NoError(t, err)
	assert.IsType(t, &miniostore.Store{}, st)

	st, err = openStore(ctx, config.Store{Kind: "s3", Bucket: "b", Region: "eu-west-1", AccessKey: "a", SecretKey: "s"})
	require.NoError(t, err)
	assert.IsType(t, &s3store.Store{}, st)

	_, err = openStore(ctx, config.Store{Kind: "ftp"})
	assert.Error(t, err)
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	snapDir := filepath.Join(dir, "snaps")
	cfgPath := filepath.Join(dir, "kmeanslab.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"distribution: gaussian\namount: 120\nclusters: 3\nseed: 3\n"+
			"store:\n  kind: local\n  dir: "+snapDir+"\n"+
			"log:\n  level: error\n",
	), 0o600))

	out := filepath.Join(dir, "out")
	require.NoError(t, run([]string{
		"-config", cfgPath, "-out", out, "-png", "-html", "-snapshot", "g.kms",
	}))

	frames, err := filepath.Glob(filepath.Join(out, "frame-*.png"))
	require.NoError(t, err)
	assert.NotEmpty(t, frames)
	assert.FileExists(t, filepath.Join(out, "chart.html"))

	st, err := store.LoadState(context.Background(), store.NewLocalStore(snapDir), "g.kms")
	require.NoError(t, err)
	assert.Equal(t, "converged", st.Phase)
	assert.Equal(t, 3, st.K)

	// Resume from the snapshot: nothing left to do.
	require.NoError(t, run([]string{"-config", cfgPath, "-restore", "g.kms"}))
}

func TestRun_Compare(t *testing.T) {
	require.NoError(t, run([]string{"-distribution", "grid", "-amount", "25", "-k", "2", "-compare", "1,2", "-log-level", "error"}))
}

func TestRun_BadFlags(t *testing.T) {
	assert.Error(t, run([]string{"-k", "0"}))
	assert.Error(t, run([]string{"-distribution", "spiral"}))
	assert.Error(t, run([]string{"-nope"}))
}

func TestRun_InfeasibleCircles(t *testing.T) {
	// Three disks of radius 8 cannot be kept apart on a 20-wide range.
	err := run([]string{"-distribution", "circles", "-amount", "20", "-k", "3", "-store", "memory", "-log-level", "error"})
	require.Error(t, err)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	err = run([]string{"-distribution", "circles", "-amount", "20", "-k", "3", "-compare", "1,2", "-log-level", "error"})
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRun_KeepInitialAcrossRuns(t *testing.T) {
	out := t.TempDir()
	snaps := t.TempDir()
	common := []string{
		"-distribution", "gaussian", "-amount", "90", "-k", "3", "-seed", "4",
		"-store", "local", "-log-level", "error",
	}
	cfgPath := filepath.Join(out, "kmeanslab.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("store:\n  dir: "+snaps+"\n"), 0o600))
	common = append(common, "-config", cfgPath)

	require.NoError(t, run(append(common, "-snapshot", "one.kms")))
	require.NoError(t, run(append(common, "-runs", "3", "-keep-initial", "-png", "-out", out, "-snapshot", "kept.kms")))
	require.NoError(t, run(append(common, "-runs", "3", "-snapshot", "fresh.kms")))

	ls := store.NewLocalStore(snaps)
	one, err := store.LoadState(context.Background(), ls, "one.kms")
	require.NoError(t, err)
	kept, err := store.LoadState(context.Background(), ls, "kept.kms")
	require.NoError(t, err)
	fresh, err := store.LoadState(context.Background(), ls, "fresh.kms")
	require.NoError(t, err)

	assert.Equal(t, one.Initial, kept.Initial, "the third run starts where the first did")
	assert.NotEqual(t, one.Points, kept.Points, "on a new dataset")
	assert.NotEqual(t, one.Initial, fresh.Initial)

	for _, r := range []string{"01", "02", "03"} {
		frames, err := filepath.Glob(filepath.Join(out, "frame-"+r+"-*.png"))
		require.NoError(t, err)
		assert.NotEmpty(t, frames, "run %s wrote frames", r)
	}

	assert.Error(t, run([]string{"-runs", "0", "-store", "memory"}))
}
