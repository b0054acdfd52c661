// Package kmeanslab is a playground for watching k-means clustering converge
// on synthetic 2-D data, one step at a time.
//
// 🚀 What is kmeanslab?
//
//	A small, deterministic library plus a CLI that brings together:
//		• Generators: uniform, circular clusters, gaussian blobs, grid
//		• Engine: nearest-centroid assignment, mean update, convergence
//		• Sessions: step / play / regenerate, remembered starting centroids
//		• Snapshots: versioned, compressed, stored locally, in MinIO or S3
//		• Rendering: PNG frames and interactive HTML scatter charts
//
// Under the hood, everything is organized under these subpackages:
//
//	geom/     — Point, Centroid, Canvas, Distance and Average
//	builder/  — dataset generators configured by functional options
//	kmeans/   — Assign, Update and the Run state machine
//	initial/  — first-write-wins memory of starting centroids
//	session/  — the driver: Step, Play, Compare, State/Restore
//	snapshot/ — KMSN binary frames (JSON payload, lz4 or zstd)
//	store/    — snapshot blob stores (memory, local, minio, s3)
//	render/   — PNG (gogpu/gg) and HTML (go-echarts) output
//	config/   — YAML configuration with defaults
//	logging/  — slog constructors
//
// Quick ASCII example, two blobs and their centroids after convergence:
//
//	 · ·            ·
//	· ✕ ·         · ✕ ·
//	 · ·            · ·
//
//	go install github.com/katalvlaran/kmeanslab/cmd/kmeanslab@latest
package kmeanslab
