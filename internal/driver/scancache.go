package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"quell/internal/source"
	"quell/internal/suppress"
)

// Current schema version - increment when ScanPayload format changes
const scanCacheSchemaVersion uint16 = 1

// ScanCache хранит вычисленные диапазоны подавления по дайджесту юнита.
// Повторный прогон по неизменённому юниту обходится без скана.
// Thread-safe for concurrent access.
type ScanCache struct {
	mu  sync.RWMutex
	dir string
}

// ScanPayload stores cached scan output for one file.
type ScanPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path    string
	FileLen uint32

	// Ranges in scanner output order, inclusive bounds.
	Starts []uint32
	Ends   []uint32
}

// OpenScanCache initializes and returns a scan cache at the standard
// XDG location.
func OpenScanCache(app string) (*ScanCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ScanCache{dir: dir}, nil
}

// OpenScanCacheAt opens a cache rooted at an explicit directory (tests,
// hermetic builds).
func OpenScanCacheAt(dir string) (*ScanCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ScanCache{dir: dir}, nil
}

// Key derives the cache key for a unit: the digest of its hand-over
// document mixed with the marker name, так что смена маркера
// инвалидирует кэш сама собой.
func (c *ScanCache) Key(digest [32]byte, markerFQN string) [32]byte {
	h := sha256.New()
	h.Write(digest[:])
	h.Write([]byte(markerFQN))
	var key [32]byte
	copy(key[:], h.Sum(nil))
	return key
}

func (c *ScanCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки — подкаталог "scans".
	return filepath.Join(c.dir, "scans", hexKey+".mp")
}

// Put serializes and writes scan output to the cache.
func (c *ScanCache) Put(key [32]byte, file *source.File, ranges []suppress.Range) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := &ScanPayload{
		Schema:  scanCacheSchemaVersion,
		Path:    file.Path,
		FileLen: file.Len(),
		Starts:  make([]uint32, len(ranges)),
		Ends:    make([]uint32, len(ranges)),
	}
	for i, r := range ranges {
		payload.Starts[i] = r.Start
		payload.Ends[i] = r.End
	}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads cached scan output. A miss, a schema mismatch and a stale
// file length all return ok=false without error.
func (c *ScanCache) Get(key [32]byte, file *source.File) (ranges []suppress.Range, ok bool, err error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload ScanPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != scanCacheSchemaVersion || payload.FileLen != file.Len() {
		return nil, false, nil
	}
	if len(payload.Starts) != len(payload.Ends) {
		return nil, false, nil
	}

	ranges = make([]suppress.Range, len(payload.Starts))
	for i := range payload.Starts {
		ranges[i] = suppress.Range{
			File:  file.ID,
			Start: payload.Starts[i],
			End:   payload.Ends[i],
		}
	}
	return ranges, true, nil
}
