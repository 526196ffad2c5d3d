package kv

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

// exerciseStore runs the Store contract against an implementation: absent
// keys are not an error, Set overwrites, Delete tolerates absence.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, found, err := s.Get(ctx, "missing"); err != nil || found {
		t.Fatalf("Get(missing) = found=%v err=%v, want absent without error", found, err)
	}

	if err := s.Set(ctx, "k", []byte(`{"a":1}`)); err != nil {
		t.Fatal(err)
	}
	got, found, err := s.Get(ctx, "k")
	if err != nil || !found || !bytes.Equal(got, []byte(`{"a":1}`)) {
		t.Fatalf("Get(k) = %q found=%v err=%v", got, found, err)
	}

	if err := s.Set(ctx, "k", []byte(`{"a":2}`)); err != nil {
		t.Fatal(err)
	}
	got, _, _ = s.Get(ctx, "k")
	if !bytes.Equal(got, []byte(`{"a":2}`)) {
		t.Fatalf("Set should overwrite, got %q", got)
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := s.Get(ctx, "k"); found {
		t.Fatal("key survived Delete")
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("deleting an absent key should be a no-op, got %v", err)
	}
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	v := []byte("abc")
	s.Set(ctx, "k", v)
	v[0] = 'x'

	got, _, _ := s.Get(ctx, "k")
	if string(got) != "abc" {
		t.Errorf("stored value aliases the caller's slice: %q", got)
	}
	got[0] = 'y'
	again, _, _ := s.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("returned value aliases the stored slice: %q", again)
	}
}

func TestDir(t *testing.T) {
	exerciseStore(t, NewDir(filepath.Join(t.TempDir(), "store")))
}

func TestDirFilePerKey(t *testing.T) {
	ctx := context.Background()
	root := filepath.Join(t.TempDir(), "store")
	d := NewDir(root)

	if err := d.Set(ctx, "goodmoney_transactions", []byte("[]")); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(root, "goodmoney_transactions.json"))
	if err != nil {
		t.Fatalf("expected one JSON file per key: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("file content = %q, want []", data)
	}
	// No temp file left behind after the rename.
	if _, err := os.Stat(filepath.Join(root, "goodmoney_transactions.json.tmp")); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
}

func TestSQLite(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	exerciseStore(t, s)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s2, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	got, found, err := s2.Get(ctx, "k")
	if err != nil || !found || string(got) != "v" {
		t.Fatalf("Get after reopen = %q found=%v err=%v", got, found, err)
	}
}
