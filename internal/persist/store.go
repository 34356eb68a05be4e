// Package persist saves and loads docking layouts. A layout file holds the
// whole tree, every DockID included, plus the floating windows. JSON is the
// default encoding; paths ending in .yaml or .yml are written as YAML.
package persist

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"dockyard/internal/dock"
)

const (
	// LayoutPathEnv overrides the layout file location.
	LayoutPathEnv = "DOCKYARD_LAYOUT_PATH"
	// DefaultLayoutFile is the layout location relative to the home directory.
	DefaultLayoutFile = ".config/dockyard/layout.json"
)

// ErrNotFound is returned by Load when no layout has been saved.
var ErrNotFound = errors.New("layout file not found")

// Source says where LoadOrDefault got its layout from.
type Source int

const (
	SourceFile Source = iota
	SourceDefaultMissing
	SourceDefaultInvalid
)

func (s Source) String() string {
	switch s {
	case SourceFile:
		return "file"
	case SourceDefaultMissing:
		return "default (no saved layout)"
	case SourceDefaultInvalid:
		return "default (saved layout unreadable)"
	default:
		return "unknown"
	}
}

// Store reads and writes one layout file.
type Store struct {
	path   string
	codec  codec
	log    *zap.Logger
	tracer oteltrace.Tracer
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithTracer sets the tracer used for save and load spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(s *Store) {
		if t != nil {
			s.tracer = t
		}
	}
}

// NewStore returns a store for path. An empty path falls back to
// DOCKYARD_LAYOUT_PATH, then to DefaultLayoutFile under the home directory.
func NewStore(path string, opts ...Option) (*Store, error) {
	if path == "" {
		path = os.Getenv(LayoutPathEnv)
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve layout path: %w", err)
		}
		path = filepath.Join(home, DefaultLayoutFile)
	}
	s := &Store{
		path:   path,
		codec:  codecFor(path),
		log:    zap.NewNop(),
		tracer: noop.NewTracerProvider().Tracer(""),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path returns the layout file path.
func (s *Store) Path() string {
	return s.path
}

// Save writes the layout. The file is replaced atomically so a failed save
// never leaves a truncated layout behind.
func (s *Store) Save(ctx context.Context, l *dock.Layout) (err error) {
	_, span := s.tracer.Start(ctx, "layout.save", oteltrace.WithAttributes(
		attribute.String("dockyard.layout.path", s.path),
		attribute.String("dockyard.layout.codec", s.codec.name()),
	))
	defer func() { endSpan(span, err) }()

	data, err := s.codec.encode(toDocument(l))
	if err != nil {
		return err
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("write layout %s: %w", s.path, err)
	}
	span.SetAttributes(attribute.Int("dockyard.layout.bytes", len(data)))
	s.log.Info("saved layout", zap.String("path", s.path), zap.Int("bytes", len(data)))
	return nil
}

// Load reads and validates the layout and advances the id allocator past
// every id it contains. A missing file yields an error wrapping ErrNotFound.
func (s *Store) Load(ctx context.Context) (l *dock.Layout, err error) {
	_, span := s.tracer.Start(ctx, "layout.load", oteltrace.WithAttributes(
		attribute.String("dockyard.layout.path", s.path),
		attribute.String("dockyard.layout.codec", s.codec.name()),
	))
	defer func() { endSpan(span, err) }()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("read layout %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("read layout %s: file is empty", s.path)
	}

	doc, err := s.codec.decode(data)
	if err != nil {
		return nil, err
	}
	l, err = fromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	l.ReserveIDs()
	l.SetLogger(s.log)

	s.log.Info("loaded layout", zap.String("path", s.path),
		zap.Int("panels", len(l.AllPanelIDs())), zap.Int("floating", len(l.Floating)))
	return l, nil
}

// LoadOrDefault loads the saved layout, falling back to dock.DefaultLayout
// when there is none or it cannot be used. It never fails.
func (s *Store) LoadOrDefault(ctx context.Context) (*dock.Layout, Source) {
	l, err := s.Load(ctx)
	if err == nil {
		return l, SourceFile
	}

	def := dock.DefaultLayout()
	def.SetLogger(s.log)
	if errors.Is(err, ErrNotFound) {
		s.log.Info("no saved layout, using default", zap.String("path", s.path))
		return def, SourceDefaultMissing
	}
	s.log.Warn("failed to load layout, using default", zap.String("path", s.path), zap.Error(err))
	return def, SourceDefaultInvalid
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Chmod(name, 0o644); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}

func endSpan(span oteltrace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
