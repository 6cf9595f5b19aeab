package driver

import (
	"crypto/sha256"
	"testing"

	"quell/internal/source"
	"quell/internal/suppress"
)

func TestScanCache_PutGet(t *testing.T) {
	cache, err := OpenScanCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenScanCacheAt: %v", err)
	}

	files := source.NewFileSet()
	id := files.AddVirtual("/repo/a.ext", make([]byte, 64))
	file := files.Get(id)

	key := cache.Key(sha256.Sum256([]byte("unit-a")), "corp.lint.Suppress")
	want := []suppress.Range{
		{File: id, Start: 10, End: 20},
		{File: id, Start: 15, End: 40},
	}
	if err := cache.Put(key, file, want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := cache.Get(key, file)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
}

func TestScanCache_MissAndStaleLength(t *testing.T) {
	cache, err := OpenScanCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	files := source.NewFileSet()
	id := files.AddVirtual("/repo/a.ext", make([]byte, 64))
	file := files.Get(id)
	key := cache.Key(sha256.Sum256([]byte("unit-a")), "m")

	if _, ok, err := cache.Get(key, file); ok || err != nil {
		t.Errorf("empty cache: ok=%v err=%v, want miss", ok, err)
	}

	if err := cache.Put(key, file, nil); err != nil {
		t.Fatal(err)
	}
	// Файл "изменился": другая длина под тем же ключом — запись устарела.
	id2 := files.AddVirtual("/repo/a.ext", make([]byte, 128))
	if _, ok, _ := cache.Get(key, files.Get(id2)); ok {
		t.Error("stale file length must read as a miss")
	}
}

func TestScanCache_KeyDependsOnMarker(t *testing.T) {
	cache, err := OpenScanCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	digest := sha256.Sum256([]byte("unit-a"))
	k1 := cache.Key(digest, "corp.A")
	k2 := cache.Key(digest, "corp.B")
	if k1 == k2 {
		t.Error("different markers must derive different cache keys")
	}
	if k3 := cache.Key(sha256.Sum256([]byte("unit-b")), "corp.A"); k3 == k1 {
		t.Error("different unit digests must derive different cache keys")
	}
}

func TestScanCache_NilIsNoop(t *testing.T) {
	var cache *ScanCache
	files := source.NewFileSet()
	file := files.Get(files.AddVirtual("/a", nil))

	if err := cache.Put([32]byte{}, file, nil); err != nil {
		t.Errorf("nil cache Put: %v", err)
	}
	if _, ok, err := cache.Get([32]byte{}, file); ok || err != nil {
		t.Errorf("nil cache Get: ok=%v err=%v", ok, err)
	}
}
