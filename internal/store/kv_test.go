package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func backends(t *testing.T) map[string]KV {
	t.Helper()
	sq, err := Open(filepath.Join(t.TempDir(), "ledger.db"), nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = sq.Close() })
	return map[string]KV{
		"memory": NewMemory(),
		"sqlite": sq,
	}
}

func TestKV_SetGetDelete(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := kv.Get("missing"); err != nil || ok {
				t.Fatalf("Get(missing) = ok %v, err %v; want absent", ok, err)
			}

			if err := kv.Set("a", "1"); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := kv.Set("a", "2"); err != nil {
				t.Fatalf("Set() overwrite error = %v", err)
			}
			v, ok, err := kv.Get("a")
			if err != nil || !ok || v != "2" {
				t.Errorf("Get(a) = %q, %v, %v; want 2, true, nil", v, ok, err)
			}

			if err := kv.Delete("a"); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if _, ok, _ := kv.Get("a"); ok {
				t.Error("Get(a) after Delete: present, want absent")
			}
			if err := kv.Delete("a"); err != nil {
				t.Errorf("Delete(absent) error = %v, want nil", err)
			}
		})
	}
}

func TestKV_SetManyAndKeys(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			err := kv.SetMany(map[string]string{"b": "2", "a": "1", "c": "3"})
			if err != nil {
				t.Fatalf("SetMany() error = %v", err)
			}
			keys, err := kv.Keys()
			if err != nil {
				t.Fatalf("Keys() error = %v", err)
			}
			want := []string{"a", "b", "c"}
			if len(keys) != len(want) {
				t.Fatalf("Keys() = %v, want %v", keys, want)
			}
			for i := range want {
				if keys[i] != want[i] {
					t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
				}
			}
		})
	}
}

func TestSQLite_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	s, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := s.Set("moneymirror-name", `"Asha"`); err != nil {
		t.Fatal(err)
	}
	_ = s.Close()

	// Re-open runs migrations again; ErrNoChange must be tolerated.
	s, err = Open(path, nil)
	if err != nil {
		t.Fatalf("re-Open() error = %v", err)
	}
	defer s.Close()

	v, ok, err := s.Get("moneymirror-name")
	if err != nil || !ok || v != `"Asha"` {
		t.Errorf("Get() = %q, %v, %v; want \"Asha\"", v, ok, err)
	}
	if _, ok, err := s.UpdatedAt("moneymirror-name"); err != nil || !ok {
		t.Errorf("UpdatedAt() ok = %v, err = %v", ok, err)
	}
}

func TestMemory_Closed(t *testing.T) {
	m := NewMemory()
	_ = m.Close()
	if err := m.Set("k", "v"); !errors.Is(err, ErrClosed) {
		t.Errorf("Set after Close error = %v, want ErrClosed", err)
	}
}
