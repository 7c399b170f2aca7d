// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/apex/log"
	"golang.org/x/sync/singleflight"

	"github.com/tfctl/cfgstore/internal/handler"
)

// DefaultFormat is used by Get.
const DefaultFormat = handler.JSON

// slotKey identifies one cache slot. The same file name may be cached once per
// format.
type slotKey struct {
	name   string
	format handler.Format
}

func (k slotKey) String() string {
	return k.name + "." + string(k.format)
}

type slot struct {
	handler  handler.Handler
	path     string
	size     int
	loadedAt time.Time
}

// Store memoizes config handlers by file name and format. A slot is loaded on
// first access and reused afterwards; failed loads are not cached. Store is safe
// for concurrent use and materializes each slot at most once.
type Store struct {
	root   string
	reader Reader
	logger log.Interface
	now    func() time.Time

	mu    sync.RWMutex
	slots map[slotKey]*slot
	group singleflight.Group
}

// Option configures a Store.
type Option func(*Store)

// WithReader replaces the default OSReader.
func WithReader(r Reader) Option {
	return func(s *Store) { s.reader = r }
}

// WithLogger replaces the default apex logger.
func WithLogger(l log.Interface) Option {
	return func(s *Store) { s.logger = l }
}

// WithClock sets the time source used for Result.LoadedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns an empty Store reading files below root.
func New(root string, opts ...Option) *Store {
	s := &Store{
		root:   root,
		reader: OSReader{},
		logger: log.Log,
		now:    time.Now,
		slots:  make(map[slotKey]*slot),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the directory config files are resolved against.
func (s *Store) Root() string {
	return s.root
}

// Get returns the JSON handler for fileName.
func (s *Store) Get(fileName string) Result {
	return s.GetFormat(fileName, string(DefaultFormat))
}

// GetFormat returns the handler for fileName in the given format, loading
// <root>/<fileName>.<format> on a cache miss. It never panics; failures are
// logged and reported through Result.Err.
func (s *Store) GetFormat(fileName, format string) Result {
	res := Result{Name: fileName}

	f, err := handler.ParseFormat(format)
	if err != nil {
		s.logger.WithFields(log.Fields{"file": fileName, "type": format}).
			Error("invalid config file type")
		res.Err = &LoadError{Name: fileName, Format: format, Kind: ErrUnsupportedFormat}
		return res
	}
	res.Format = f

	if !validName(fileName) {
		s.logger.WithFields(log.Fields{"file": fileName, "type": format}).
			Error("invalid config file name")
		res.Err = &LoadError{Name: fileName, Format: format, Kind: ErrInvalidName}
		return res
	}

	key := slotKey{name: fileName, format: f}
	if sl, ok := s.lookup(key); ok {
		return res.fill(sl, true)
	}

	v, err, _ := s.group.Do(key.String(), func() (any, error) {
		// Another caller may have populated the slot between lookup and Do.
		if sl, ok := s.lookup(key); ok {
			return sl, nil
		}
		return s.load(key)
	})
	if err != nil {
		res.Err = err
		return res
	}

	return res.fill(v.(*slot), false)
}

// Loaded reports whether a handler is cached for fileName and format.
func (s *Store) Loaded(fileName, format string) bool {
	_, ok := s.lookup(slotKey{name: fileName, format: handler.Format(format)})
	return ok
}

// Len returns the number of cached handlers.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

// Path returns the file path fileName resolves to for format.
func (s *Store) Path(fileName string, format handler.Format) string {
	return filepath.Join(s.root, fileName+"."+string(format))
}

func (s *Store) lookup(key slotKey) (*slot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sl, ok := s.slots[key]
	return sl, ok
}

// load reads and parses one file and caches the handler on success.
func (s *Store) load(key slotKey) (*slot, error) {
	path := s.Path(key.name, key.format)
	fields := log.Fields{"file": key.name, "type": string(key.format), "path": path}

	content, err := s.reader.ReadFile(path)
	if err != nil {
		return nil, s.fail(fields, &LoadError{
			Name: key.name, Format: string(key.format), Path: path, Kind: ErrRead, Err: err,
		})
	}

	h, err := handler.Parse(key.format, string(content))
	if err != nil {
		return nil, s.fail(fields, &LoadError{
			Name: key.name, Format: string(key.format), Path: path, Kind: ErrParse, Err: err,
		})
	}

	sl := &slot{handler: h, path: path, size: len(content), loadedAt: s.now()}

	s.mu.Lock()
	s.slots[key] = sl
	s.mu.Unlock()

	s.logger.WithFields(fields).Debugf("loaded config file: size=%d", sl.size)
	return sl, nil
}

func (s *Store) fail(fields log.Fields, le *LoadError) error {
	s.logger.WithFields(fields).
		WithError(le.Err).
		WithField("trace", le.Trace()).
		Error(le.Kind.Error())
	return le
}

// validName rejects empty names and names that would resolve outside the root.
func validName(name string) bool {
	return name != "" && filepath.IsLocal(name)
}

// Result is the outcome of a handler lookup. Check Ok or Err before using
// Handler.
type Result struct {
	Handler  handler.Handler
	Name     string
	Format   handler.Format
	Path     string
	Size     int
	LoadedAt time.Time
	// Cached is true when the handler was served without a load.
	Cached bool
	Err    error
}

// Ok reports whether Handler is usable.
func (r Result) Ok() bool {
	return r.Err == nil && r.Handler != nil
}

// LoadError returns Err as a *LoadError, if it is one.
func (r Result) LoadError() (*LoadError, bool) {
	var le *LoadError
	if errors.As(r.Err, &le) {
		return le, true
	}
	return nil, false
}

func (r Result) fill(sl *slot, cached bool) Result {
	r.Handler = sl.handler
	r.Path = sl.path
	r.Size = sl.size
	r.LoadedAt = sl.loadedAt
	r.Cached = cached
	return r
}
