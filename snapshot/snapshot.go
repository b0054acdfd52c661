// SPDX-License-Identifier: MIT
// Package: kmeanslab/snapshot
//
// snapshot.go — KMSN frame encoding of a session State.
//
// Frame layout:
//   • 4-byte magic "KMSN", 1-byte version, 1-byte compression, then the JSON
//     payload compressed as announced.
//   • Decode rejects a wrong magic, another version or an unknown compression.

package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/kmeanslab/builder"
	"github.com/katalvlaran/kmeanslab/geom"
)

// Version is the current frame version.
const Version = 1

const headerSize = 6

var magic = [4]byte{'K', 'M', 'S', 'N'}

// Sentinel errors.
var (
	// ErrBadMagic indicates the input is not a snapshot frame.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrUnsupportedVersion indicates a frame from an unknown format version.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")
	// ErrUnknownCompression indicates an unsupported compression byte or name.
	ErrUnknownCompression = errors.New("snapshot: unknown compression")
)

// Compression selects the payload compression.
type Compression uint8

const (
	// None stores the JSON payload as is.
	None Compression = 0
	// LZ4 compresses the payload with an LZ4 frame.
	LZ4 Compression = 1
	// Zstd compresses the payload with a Zstandard frame.
	Zstd Compression = 2
)

// String returns the lower-case compression name.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// ParseCompression maps a case-insensitive name to a Compression.
// The empty string means None.
func ParseCompression(name string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return None, nil
	case "lz4":
		return LZ4, nil
	case "zstd", "zstandard":
		return Zstd, nil
	default:
		return None, fmt.Errorf("ParseCompression(%q): %w", name, ErrUnknownCompression)
	}
}

// State is everything needed to resume or replay a session.
type State struct {
	Version      int                  `json:"version"`
	Distribution builder.Distribution `json:"distribution"`
	Amount       int                  `json:"amount"`
	K            int                  `json:"k"`
	Seed         int64                `json:"seed"`
	Iteration    int                  `json:"iteration"`
	Phase        string               `json:"phase"`
	Points       []geom.Point         `json:"points"`
	Centroids    []geom.Centroid      `json:"centroids"`
	Initial      []geom.Centroid      `json:"initial,omitempty"`
}

// Encode writes s as a frame to w.
func Encode(w io.Writer, s State, c Compression) error {
	if s.Version == 0 {
		s.Version = Version
	}

	payload, err := gojson.Marshal(s)
	if err != nil {
		return fmt.Errorf("snapshot: encode payload: %w", err)
	}

	header := [headerSize]byte{magic[0], magic[1], magic[2], magic[3], Version, byte(c)}

	switch c {
	case None, LZ4, Zstd:
	default:
		return fmt.Errorf("snapshot: encode: %d: %w", uint8(c), ErrUnknownCompression)
	}

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("snapshot: write header: %w", err)
	}

	switch c {
	case LZ4:
		zw := lz4.NewWriter(w)
		if _, err := zw.Write(payload); err != nil {
			return fmt.Errorf("snapshot: lz4 write: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("snapshot: lz4 close: %w", err)
		}
	case Zstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return fmt.Errorf("snapshot: zstd writer: %w", err)
		}
		if _, err := zw.Write(payload); err != nil {
			_ = zw.Close()
			return fmt.Errorf("snapshot: zstd write: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("snapshot: zstd close: %w", err)
		}
	default:
		if _, err := w.Write(payload); err != nil {
			return fmt.Errorf("snapshot: write payload: %w", err)
		}
	}

	return nil
}

// Decode reads one frame from r.
func Decode(r io.Reader) (State, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return State{}, fmt.Errorf("snapshot: short header: %w", ErrBadMagic)
		}
		return State{}, fmt.Errorf("snapshot: read header: %w", err)
	}
	if !bytes.Equal(header[:4], magic[:]) {
		return State{}, ErrBadMagic
	}
	if header[4] != Version {
		return State{}, fmt.Errorf("snapshot: version %d: %w", header[4], ErrUnsupportedVersion)
	}

	var (
		payload []byte
		err     error
	)
	switch Compression(header[5]) {
	case None:
		payload, err = io.ReadAll(r)
	case LZ4:
		payload, err = io.ReadAll(lz4.NewReader(r))
	case Zstd:
		var zr *zstd.Decoder
		zr, err = zstd.NewReader(r)
		if err == nil {
			payload, err = io.ReadAll(zr)
			zr.Close()
		}
	default:
		return State{}, fmt.Errorf("snapshot: decode: %d: %w", header[5], ErrUnknownCompression)
	}
	if err != nil {
		return State{}, fmt.Errorf("snapshot: read payload: %w", err)
	}

	var s State
	if err := gojson.Unmarshal(payload, &s); err != nil {
		return State{}, fmt.Errorf("snapshot: decode payload: %w", err)
	}

	return s, nil
}

// Marshal is Encode into a fresh byte slice.
func Marshal(s State, c Compression) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, s, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal is Decode from a byte slice.
func Unmarshal(data []byte) (State, error) {
	return Decode(bytes.NewReader(data))
}
