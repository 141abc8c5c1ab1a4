// Package store persists zentask state as independent JSON values in a local
// key-value store.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Keys under which each collection is persisted.
const (
	KeyTasks    = "zentask-tasks"
	KeyProjects = "zentask-projects"
	KeySections = "zentask-sections"
	KeyLogs     = "zentask-logs"
	KeyUser     = "zentask-user"
	KeyView     = "zentask-view"
)

// Keys lists every key the app writes.
var Keys = []string{KeyTasks, KeyProjects, KeySections, KeyLogs, KeyUser, KeyView}

// ErrNotFound is returned by Read when no value is stored under the key.
var ErrNotFound = errors.New("store: key not found")

const fileExt = ".json"

// Persistence is a synchronous key-value store of JSON documents.
type Persistence interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Has(key string) bool
	Erase(key string) error
	EraseAll() error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config. A nil
// config is loaded from the environment.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		fc, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		cfg = fc
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Read(key string) ([]byte, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (p *persistence) Write(key string, data []byte) error {
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Has(key string) bool {
	return p.d.Has(key)
}

func (p *persistence) Erase(key string) error {
	if !p.d.Has(key) {
		return nil
	}
	if err := p.d.Erase(key); err != nil {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

// EraseAll removes every stored value but keeps the base directory so
// watchers stay attached.
func (p *persistence) EraseAll() error {
	var keys []string
	for key := range p.d.Keys(nil) {
		keys = append(keys, key)
	}
	for _, key := range keys {
		if err := p.Erase(key); err != nil {
			return err
		}
	}
	return nil
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key + fileExt,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, fileExt)
}
