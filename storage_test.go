package tracker

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestStorages(t *testing.T) {
	sqlite, err := OpenSQLiteStorage(filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("OpenSQLiteStorage() error = %v", err)
	}

	storages := map[string]Storage{
		"file":   NewFileStorage(filepath.Join(t.TempDir(), "data")),
		"memory": NewMemoryStorage(),
		"sqlite": sqlite,
	}

	for name, storage := range storages {
		t.Run(name, func(t *testing.T) {
			if _, err := storage.Get("missing"); !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("Get(missing) error = %v, want fs.ErrNotExist", err)
			}

			if err := storage.Set("key", []byte(`{"v":1}`)); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			got, err := storage.Get("key")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if !bytes.Equal(got, []byte(`{"v":1}`)) {
				t.Errorf("Get() = %s, want {\"v\":1}", got)
			}

			// Overwrite.
			if err := storage.Set("key", []byte(`{"v":2}`)); err != nil {
				t.Fatalf("Set(overwrite) error = %v", err)
			}
			got, err = storage.Get("key")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if !bytes.Equal(got, []byte(`{"v":2}`)) {
				t.Errorf("Get() after overwrite = %s, want {\"v\":2}", got)
			}
		})
	}
}
