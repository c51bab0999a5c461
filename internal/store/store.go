package store

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "sync"
)

// ErrNotFound is returned when a key has no backing file yet.
var ErrNotFound = errors.New("store: key not found")

// Store persists each key as <dir>/<key>.json. Writes go through a
// temp file plus rename so readers never observe a partial file, and
// are serialized per key (single writer; last write wins across
// processes, which is acceptable for a single-admin deployment).
type Store struct {
    dir string

    mu    sync.Mutex
    locks map[string]*sync.Mutex
}

func New(dir string) *Store {
    return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}
}

func (s *Store) path(key string) string {
    return filepath.Join(s.dir, key+".json")
}

func (s *Store) keyLock(key string) *sync.Mutex {
    s.mu.Lock()
    defer s.mu.Unlock()
    l, ok := s.locks[key]
    if !ok {
        l = &sync.Mutex{}
        s.locks[key] = l
    }
    return l
}

// Read returns the raw file content for key.
func (s *Store) Read(key string) ([]byte, error) {
    data, err := os.ReadFile(s.path(key))
    if err != nil {
        if os.IsNotExist(err) {
            return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
        }
        return nil, err
    }
    return data, nil
}

// ReadJSON decodes the file for key into v.
func (s *Store) ReadJSON(key string, v any) error {
    data, err := s.Read(key)
    if err != nil {
        return err
    }
    return json.Unmarshal(data, v)
}

// Write marshals v and atomically replaces the file for key.
func (s *Store) Write(key string, v any) error {
    lock := s.keyLock(key)
    lock.Lock()
    defer lock.Unlock()
    return s.writeLocked(key, v)
}

func (s *Store) writeLocked(key string, v any) error {
    data, err := json.MarshalIndent(v, "", "  ")
    if err != nil {
        return err
    }
    if err := os.MkdirAll(s.dir, 0o755); err != nil {
        return err
    }
    tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
    if err != nil {
        return err
    }
    tmpName := tmp.Name()
    if _, err := tmp.Write(data); err != nil {
        tmp.Close()
        os.Remove(tmpName)
        return err
    }
    if err := tmp.Close(); err != nil {
        os.Remove(tmpName)
        return err
    }
    if err := os.Rename(tmpName, s.path(key)); err != nil {
        os.Remove(tmpName)
        return err
    }
    return nil
}

// EnsureExists creates the file for key with def iff it is absent.
// Idempotent; called once per key at process start.
func (s *Store) EnsureExists(key string, def any) error {
    lock := s.keyLock(key)
    lock.Lock()
    defer lock.Unlock()
    if _, err := os.Stat(s.path(key)); err == nil {
        return nil
    } else if !os.IsNotExist(err) {
        return err
    }
    return s.writeLocked(key, def)
}
