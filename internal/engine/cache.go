package engine

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"sniff/internal/diag"
	"sniff/internal/source"
)

// Increment when the payload format changes.
const cacheSchemaVersion uint16 = 1

// Cache stores per-file check results on disk, keyed by content hash and
// ruleset hash. Fix runs never consult it. Thread-safe.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// OpenCache initializes the cache at the standard XDG location.
func OpenCache(app string) (*Cache, error) {
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
	return &Cache{dir: dir}, nil
}

type cachedViolation struct {
	Severity uint8
	Code     uint16
	Rule     string
	Message  string
	Line     uint32
	Col      uint32
}

type cachePayload struct {
	Schema        uint16
	Malformed     bool
	MalformedCode uint16
	MalformedMsg  string
	Violations    []cachedViolation
}

func (c *Cache) pathFor(contentHash [32]byte, rulesetHash string) string {
	key := hex.EncodeToString(contentHash[:]) + "-" + rulesetHash
	return filepath.Join(c.dir, "results", key+".mp")
}

// Put serializes a finished check result. Failures are reported but never
// affect the run itself.
func (c *Cache) Put(contentHash [32]byte, rulesetHash string, res *FileResult) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := cachePayload{Schema: cacheSchemaVersion}
	if res.Malformed != nil {
		payload.Malformed = true
		payload.MalformedCode = uint16(res.Malformed.Code)
		payload.MalformedMsg = res.Malformed.Msg
	}
	for _, v := range res.Bag.Items() {
		payload.Violations = append(payload.Violations, cachedViolation{
			Severity: uint8(v.Severity),
			Code:     uint16(v.Code),
			Rule:     v.Rule,
			Message:  v.Message,
			Line:     v.Line,
			Col:      v.Col,
		})
	}

	p := c.pathFor(contentHash, rulesetHash)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace.
	return os.Rename(f.Name(), p)
}

// Get reconstructs a cached result for the file. The boolean reports a
// usable hit; schema mismatches read as misses.
func (c *Cache) Get(contentHash [32]byte, rulesetHash string, path string, id source.FileID, maxDiagnostics int) (FileResult, bool, error) {
	if c == nil {
		return FileResult{}, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(contentHash, rulesetHash))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FileResult{}, false, nil
		}
		return FileResult{}, false, err
	}
	defer f.Close()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return FileResult{}, false, err
	}
	if payload.Schema != cacheSchemaVersion {
		return FileResult{}, false, nil
	}

	res := FileResult{
		Path:   path,
		FileID: id,
		Passes: 0,
		Bag:    diag.NewBag(maxDiagnostics, nil),
	}
	if payload.Malformed {
		res.Malformed = &diag.MalformedSourceError{
			Code: diag.Code(payload.MalformedCode),
			Span: source.Span{File: id},
			Msg:  payload.MalformedMsg,
		}
	}
	for _, v := range payload.Violations {
		res.Bag.Add(diag.Violation{
			Severity: diag.Severity(v.Severity),
			Code:     diag.Code(v.Code),
			Rule:     v.Rule,
			Message:  v.Message,
			Primary:  source.Span{File: id},
			Line:     v.Line,
			Col:      v.Col,
		})
	}
	return res, true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
