// SPDX-License-Identifier: MIT
// Package: kmeanslab/store
//
// store.go — Store interface plus SaveState/LoadState helpers.

package store

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/kmeanslab/snapshot"
)

// ErrNotFound is returned when a blob does not exist.
// It maps to os.ErrNotExist so file-system errors match without translation.
var ErrNotFound = os.ErrNotExist

// Store is a flat namespace of immutable blobs.
type Store interface {
	// Put writes a blob, replacing any previous blob with the same name.
	Put(ctx context.Context, name string, data []byte) error
	// Get reads a whole blob.
	Get(ctx context.Context, name string) ([]byte, error)
	// List returns the sorted names that start with prefix.
	List(ctx context.Context, prefix string) ([]string, error)
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
}

// SaveState encodes s with compression c and stores it under name.
func SaveState(ctx context.Context, st Store, name string, s snapshot.State, c snapshot.Compression) error {
	data, err := snapshot.Marshal(s, c)
	if err != nil {
		return err
	}
	if err := st.Put(ctx, name, data); err != nil {
		return fmt.Errorf("store: put %s: %w", name, err)
	}
	return nil
}

// LoadState fetches and decodes the snapshot stored under name.
func LoadState(ctx context.Context, st Store, name string) (snapshot.State, error) {
	data, err := st.Get(ctx, name)
	if err != nil {
		return snapshot.State{}, fmt.Errorf("store: get %s: %w", name, err)
	}
	return snapshot.Unmarshal(data)
}
