package db

import (
	"testing"
)

func TestMemoryProviderBasicOps(t *testing.T) {
	p := NewMemoryProvider()

	if v, err := p.Get([]byte("missing")); err != nil || v != nil {
		t.Errorf("Get(missing) = %v, %v, want nil, nil", v, err)
	}

	if err := p.Put([]byte("k"), []byte("v")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	v, err := p.Get([]byte("k"))
	if err != nil || string(v) != "v" {
		t.Errorf("Get(k) = %s, %v, want v, nil", v, err)
	}

	// the returned slice must be a copy, not the stored one
	v[0] = 'x'
	v2, _ := p.Get([]byte("k"))
	if string(v2) != "v" {
		t.Error("Get returned a slice aliasing the stored value")
	}

	has, err := p.Has([]byte("k"))
	if err != nil || !has {
		t.Errorf("Has(k) = %v, %v, want true, nil", has, err)
	}

	if err := p.Delete([]byte("k")); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if has, _ := p.Has([]byte("k")); has {
		t.Error("key still present after Delete")
	}
}

func TestMemoryProviderIteratePrefix(t *testing.T) {
	p := NewMemoryProvider()
	for _, k := range []string{"wallet:2", "wallet:1", "other:1"} {
		if err := p.Put([]byte(k), []byte(k)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	var seen []string
	err := p.IteratePrefix([]byte("wallet:"), func(key, value []byte) bool {
		seen = append(seen, string(key))
		return true
	})
	if err != nil {
		t.Fatalf("IteratePrefix failed: %v", err)
	}

	if len(seen) != 2 || seen[0] != "wallet:1" || seen[1] != "wallet:2" {
		t.Errorf("IteratePrefix visited %v, want [wallet:1 wallet:2]", seen)
	}
}

func TestBackendConfigValidate(t *testing.T) {
	cases := []struct {
		cfg     BackendConfig
		wantErr bool
	}{
		{BackendConfig{Type: MemoryBackendType}, false},
		{BackendConfig{Type: LevelDBBackendType, Path: "/tmp/x"}, false},
		{BackendConfig{Type: BoltBackendType, Path: "/tmp/x"}, false},
		{BackendConfig{Type: LevelDBBackendType}, true},
		{BackendConfig{Type: "rocksdb", Path: "/tmp/x"}, true},
		{BackendConfig{}, true},
	}

	for _, c := range cases {
		err := c.cfg.Validate()
		if (err != nil) != c.wantErr {
			t.Errorf("Validate(%+v) error = %v, wantErr %v", c.cfg, err, c.wantErr)
		}
	}
}
