package storage

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"codepet/internal/pet"
)

func openBackends(t *testing.T) map[string]Store {
	t.Helper()
	ctx := context.Background()
	stores := map[string]Store{}
	for _, backend := range []string{BackendFile, BackendSQLite} {
		s, err := Open(ctx, backend, filepath.Join(t.TempDir(), "data"))
		if err != nil {
			t.Fatalf("Open(%s) failed: %v", backend, err)
		}
		t.Cleanup(func() { s.Close() })
		stores[backend] = s
	}
	return stores
}

func TestEmptySlot(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Load(context.Background(), pet.StorageKey); !errors.Is(err, pet.ErrNoSnapshot) {
				t.Errorf("Expected ErrNoSnapshot, got %v", err)
			}
		})
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	want := pet.NewPet(now)
	want.Experience = 17.5
	want.Coins = 321
	want.DailyTasksCompleted = []string{pet.TaskCode, pet.TaskItem}

	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := pet.SavePet(ctx, s, want, now); err != nil {
				t.Fatalf("SavePet failed: %v", err)
			}
			got, created, err := pet.LoadPet(ctx, s, now)
			if err != nil {
				t.Fatalf("LoadPet failed: %v", err)
			}
			if created {
				t.Error("LoadPet created a new pet instead of loading")
			}
			if !reflect.DeepEqual(want, got) {
				t.Errorf("Round trip mismatch:\nwant %+v\ngot  %+v", want, got)
			}
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, v := range []string{"first", "second"} {
				if err := s.Save(ctx, "slot", []byte(v)); err != nil {
					t.Fatalf("Save failed: %v", err)
				}
			}
			data, err := s.Load(ctx, "slot")
			if err != nil || string(data) != "second" {
				t.Errorf("Load = %q, %v; want second", data, err)
			}
		})
	}
}

func TestSQLiteSaveCount(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "count.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	s := NewSQLiteStore(db)
	defer s.Close()

	for i := 0; i < 3; i++ {
		if err := s.Save(ctx, pet.StorageKey, []byte("{}")); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
	n, err := s.SaveCount(ctx, pet.StorageKey)
	if err != nil || n != 3 {
		t.Errorf("SaveCount = %d, %v; want 3", n, err)
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if err := s.Save(context.Background(), pet.StorageKey, []byte("{}")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if len(matches) != 0 {
		t.Errorf("Temp files left behind: %v", matches)
	}
	if s.Path(pet.StorageKey) != filepath.Join(dir, "code-pet-storage.json") {
		t.Errorf("Unexpected slot path %s", s.Path(pet.StorageKey))
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open(context.Background(), "redis", t.TempDir()); err == nil {
		t.Error("Expected an error for an unknown backend")
	}
}

func TestWithKeySeparatesPets(t *testing.T) {
	ctx := context.Background()
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			work := WithKey(s, "work-pet")
			if err := work.Save(ctx, pet.StorageKey, []byte(`{"version":1}`)); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			if _, err := s.Load(ctx, pet.StorageKey); !errors.Is(err, pet.ErrNoSnapshot) {
				t.Errorf("default slot should stay empty, got %v", err)
			}
			data, err := s.Load(ctx, "work-pet")
			if err != nil || string(data) != `{"version":1}` {
				t.Errorf("Load(work-pet) = %q, %v", data, err)
			}
			if WithKey(s, pet.StorageKey) != s {
				t.Error("default key should return the store unchanged")
			}
		})
	}
}
