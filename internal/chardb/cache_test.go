package chardb

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/f3rmion/sara/internal/thai"
)

func TestCacheRoundTrip(t *testing.T) {
	src := loadAsset(t)
	path := filepath.Join(t.TempDir(), "chardb.sqlite")

	if err := SaveCache(path, src); err != nil {
		t.Fatalf("SaveCache() = %v", err)
	}

	loaded, err := (&CacheLoader{Path: path}).Load()
	if err != nil {
		t.Fatalf("CacheLoader.Load() = %v", err)
	}

	if loaded.Size() != src.Size() {
		t.Errorf("cache Size() = %d, want %d", loaded.Size(), src.Size())
	}

	for _, g := range []string{"ก", "ห", "เ", "่", "์"} {
		want, got := src.Get(g), loaded.Get(g)
		if !reflect.DeepEqual(want, got) {
			t.Errorf("cached entry %q = %+v, want %+v", g, got, want)
		}
	}

	wantPatterns, gotPatterns := src.ComplexVowelPatterns(), loaded.ComplexVowelPatterns()
	if len(gotPatterns) != len(wantPatterns) {
		t.Fatalf("cached %d patterns, want %d", len(gotPatterns), len(wantPatterns))
	}
	for i := range wantPatterns {
		if !reflect.DeepEqual(wantPatterns[i], gotPatterns[i]) {
			t.Errorf("pattern %d = %+v, want %+v", i, gotPatterns[i], wantPatterns[i])
		}
	}

	if tone := loaded.Rules().ToneMarkRules["่"]["low"]; tone != thai.ToneFalling {
		t.Errorf("cached rule [mai ek][low] = %s, want falling", tone)
	}
}

func TestCacheOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chardb.sqlite")
	src := loadAsset(t)

	if err := SaveCache(path, src); err != nil {
		t.Fatalf("first SaveCache() = %v", err)
	}
	if err := SaveCache(path, src); err != nil {
		t.Fatalf("second SaveCache() = %v", err)
	}

	loaded, err := (&CacheLoader{Path: path}).Load()
	if err != nil {
		t.Fatalf("CacheLoader.Load() = %v", err)
	}
	if loaded.Size() != src.Size() {
		t.Errorf("cache Size() = %d after rebuild, want %d", loaded.Size(), src.Size())
	}
}

func TestCacheMissing(t *testing.T) {
	l := &CacheLoader{Path: filepath.Join(t.TempDir(), "absent.sqlite")}
	if _, err := l.Load(); err == nil {
		t.Error("expected error for missing cache")
	}
}
