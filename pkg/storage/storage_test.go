package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStoreSaveWritesFileAndURL(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "invoices")
	store, err := NewLocalStore(dir, "http://localhost:8080/", "invoices")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	url, err := store.Save(context.Background(), "invoice_1.png", []byte("png-bytes"), "image/png")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if url != "http://localhost:8080/invoices/invoice_1.png" {
		t.Fatalf("unexpected url %s", url)
	}

	got, err := os.ReadFile(filepath.Join(dir, "invoice_1.png"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(got, []byte("png-bytes")) {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestLocalStoreRejectsPathNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://x", "")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.Save(context.Background(), "../escape.png", nil, "image/png"); err == nil {
		t.Fatal("expected error for path traversal name")
	}
}

func TestNewSelectsDriver(t *testing.T) {
	if _, err := New(Config{Driver: "ftp"}); err == nil {
		t.Fatal("expected unknown driver error")
	}
	if _, err := New(Config{Driver: "s3"}); err == nil {
		t.Fatal("expected missing bucket error")
	}
	s, err := New(Config{Dir: t.TempDir(), BaseURL: "http://x"})
	if err != nil {
		t.Fatalf("default driver: %v", err)
	}
	if _, ok := s.(*LocalStore); !ok {
		t.Fatalf("expected LocalStore, got %T", s)
	}
}
