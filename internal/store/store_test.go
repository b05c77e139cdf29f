package store_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"iapstore/internal/domain"
	"iapstore/internal/store"
)

func backends(t *testing.T) map[string]domain.Storage {
	t.Helper()
	sq, err := store.OpenSQLiteStorage(filepath.Join(t.TempDir(), "caches.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sq.Close() })
	return map[string]domain.Storage{
		"file":   store.NewFileStorage(filepath.Join(t.TempDir(), "nested", "home")),
		"sqlite": sq,
		"memory": store.NewMemoryStorage(),
	}
}

func TestStorage_MissingReadsNil(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			b, err := s.Read("absent")
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if b != nil {
				t.Fatalf("expected nil, got %q", b)
			}
		})
	}
}

func TestStorage_WriteReadOverwrite(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Write("cache1", []byte("one")); err != nil {
				t.Fatalf("write: %v", err)
			}
			if err := s.Write("cache1", []byte("two")); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got, err := s.Read("cache1")
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if !bytes.Equal(got, []byte("two")) {
				t.Fatalf("got %q", got)
			}
		})
	}
}

func TestStorage_Remove(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Write("cache1", []byte("x")); err != nil {
				t.Fatalf("write: %v", err)
			}
			if err := s.Remove("cache1"); err != nil {
				t.Fatalf("remove: %v", err)
			}
			if err := s.Remove("cache1"); err != nil {
				t.Fatalf("second remove: %v", err)
			}
			got, err := s.Read("cache1")
			if err != nil || got != nil {
				t.Fatalf("expected missing after remove, got %q err=%v", got, err)
			}
		})
	}
}

func TestStorage_RejectsBadNames(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, bad := range []string{"", "..", "a/b", `a\b`} {
				if err := s.Write(bad, []byte("x")); !errors.Is(err, store.ErrInvalidName) {
					t.Fatalf("name %q: expected ErrInvalidName, got %v", bad, err)
				}
			}
		})
	}
}

func TestMemoryStorage_CopiesBytes(t *testing.T) {
	s := store.NewMemoryStorage()
	in := []byte("abc")
	if err := s.Write("c", in); err != nil {
		t.Fatalf("write: %v", err)
	}
	in[0] = 'z'
	out, _ := s.Read("c")
	out[1] = 'z'
	again, _ := s.Read("c")
	if string(again) != "abc" {
		t.Fatalf("stored bytes aliased: %q", again)
	}
}

func TestFileStorage_AtomicWriteLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStorage(dir)
	if err := s.Write("purchases.cache", []byte("blob")); err != nil {
		t.Fatalf("write: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "purchases.cache" {
		t.Fatalf("unexpected dir contents: %v", entries)
	}
	info, err := os.Stat(filepath.Join(dir, "purchases.cache"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode %v, want 0600", info.Mode().Perm())
	}
}

func TestFileStorage_WriteFailureKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStorage(dir)
	if err := s.Write("c", []byte("good")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Chmod(dir, 0o500); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	if err := s.Write("c", []byte("bad")); err == nil {
		t.Fatal("expected write to fail on read-only dir")
	}
	got, err := s.Read("c")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "good" {
		t.Fatalf("previous contents lost: %q", got)
	}
}
