// Package filestore implements the widget bridge on top of a single YAML
// document, standing in for the native widget host.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/quotewidget/internal/domain/widget"
	"github.com/alexisbeaulieu97/quotewidget/internal/logger"
	"github.com/alexisbeaulieu97/quotewidget/internal/ports"
	qwerrors "github.com/alexisbeaulieu97/quotewidget/pkg/errors"
)

const documentVersion = "1"

// ErrWidgetNotFound is returned for operations on an unknown instance id.
var ErrWidgetNotFound = errors.New("widget not found")

// Instance is one host-managed widget.
type Instance struct {
	ID         int              `yaml:"id"`
	Settings   *widget.Settings `yaml:"settings,omitempty"`
	RenderedAt *time.Time       `yaml:"rendered_at,omitempty"`
	Renders    int              `yaml:"renders,omitempty"`
}

type document struct {
	Version   string           `yaml:"version"`
	Defaults  *widget.Settings `yaml:"defaults,omitempty"`
	Instances []Instance       `yaml:"instances,omitempty"`
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for render timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger attaches a logger.
func WithLogger(l ports.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Store persists widget settings in a YAML file. Every operation re-reads the
// file so changes made by other processes are observed.
type Store struct {
	path   string
	mu     sync.Mutex
	now    func() time.Time
	logger ports.Logger
}

// Open prepares a store at path, creating its directory if needed. The file
// itself is created on first write.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{path: path, now: time.Now, logger: logger.NewNoOp()}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	if _, err := s.read(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// GetAllWidgetIDs implements ports.Bridge.
func (s *Store) GetAllWidgetIDs(ctx context.Context) (map[string]int, error) {
	doc, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(doc.Instances))
	for _, inst := range doc.Instances {
		ids = append(ids, inst.ID)
	}
	return widget.IDMap(ids), nil
}

// GetDefaultSettings implements ports.Bridge. A store without defaults
// yields the built-in defaults.
func (s *Store) GetDefaultSettings(ctx context.Context) (widget.Settings, error) {
	doc, err := s.snapshot(ctx)
	if err != nil {
		return widget.Settings{}, err
	}
	if doc.Defaults == nil {
		return widget.DefaultSettings(), nil
	}
	return *doc.Defaults, nil
}

// UpdateDefaultSettings implements ports.Bridge. Instances that have no
// settings of their own display the defaults and are re-rendered.
func (s *Store) UpdateDefaultSettings(ctx context.Context, settings widget.Settings) error {
	settings = settings.Normalize()
	if err := settings.Validate(); err != nil {
		return err
	}
	return s.mutate(ctx, func(doc *document) error {
		doc.Defaults = &settings
		now := s.now()
		for i := range doc.Instances {
			if doc.Instances[i].Settings == nil {
				markRendered(&doc.Instances[i], now)
			}
		}
		s.logger.Debug(ctx, "default settings saved")
		return nil
	})
}

// GetWidgetSettings implements ports.Bridge. An instance without its own
// record, or an id the host does not know, yields the defaults.
func (s *Store) GetWidgetSettings(ctx context.Context, id int) (widget.Settings, error) {
	doc, err := s.snapshot(ctx)
	if err != nil {
		return widget.Settings{}, err
	}
	if inst := find(&doc, id); inst != nil && inst.Settings != nil {
		return *inst.Settings, nil
	}
	if doc.Defaults != nil {
		return *doc.Defaults, nil
	}
	return widget.DefaultSettings(), nil
}

// UpdateWidgetSettings implements ports.Bridge. The reserved id 0 updates
// the defaults.
func (s *Store) UpdateWidgetSettings(ctx context.Context, id int, settings widget.Settings) error {
	if id == widget.DefaultID {
		return s.UpdateDefaultSettings(ctx, settings)
	}
	settings = settings.Normalize()
	if err := settings.Validate(); err != nil {
		return err
	}
	return s.mutate(ctx, func(doc *document) error {
		inst := find(doc, id)
		if inst == nil {
			return fmt.Errorf("%w: %d", ErrWidgetNotFound, id)
		}
		inst.Settings = &settings
		markRendered(inst, s.now())
		s.logger.Debug(ctx, "widget settings saved", "widget_id", id)
		return nil
	})
}

// ForceUpdateWidget implements ports.Bridge by recording a render.
func (s *Store) ForceUpdateWidget(ctx context.Context, id int) error {
	return s.mutate(ctx, func(doc *document) error {
		inst := find(doc, id)
		if inst == nil {
			return fmt.Errorf("%w: %d", ErrWidgetNotFound, id)
		}
		markRendered(inst, s.now())
		return nil
	})
}

// Instances lists host-managed widgets ordered by id.
func (s *Store) Instances(ctx context.Context) ([]Instance, error) {
	doc, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Instance, len(doc.Instances))
	copy(out, doc.Instances)
	return out, nil
}

// AddInstance places a new widget on the simulated home screen. An id of 0
// allocates the next free id. The new widget shows the defaults until it
// receives settings of its own.
func (s *Store) AddInstance(ctx context.Context, id int) (int, error) {
	if id < 0 {
		return 0, fmt.Errorf("widget id must be positive, got %d", id)
	}
	var added int
	err := s.mutate(ctx, func(doc *document) error {
		if id == widget.DefaultID {
			for _, inst := range doc.Instances {
				if inst.ID > id {
					id = inst.ID
				}
			}
			id++
		}
		if find(doc, id) != nil {
			return fmt.Errorf("widget %d already exists", id)
		}
		doc.Instances = append(doc.Instances, Instance{ID: id})
		sort.Slice(doc.Instances, func(i, j int) bool { return doc.Instances[i].ID < doc.Instances[j].ID })
		added = id
		return nil
	})
	return added, err
}

// RemoveInstance deletes a widget from the simulated home screen.
func (s *Store) RemoveInstance(ctx context.Context, id int) error {
	return s.mutate(ctx, func(doc *document) error {
		for i, inst := range doc.Instances {
			if inst.ID == id {
				doc.Instances = append(doc.Instances[:i], doc.Instances[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %d", ErrWidgetNotFound, id)
	})
}

func (s *Store) snapshot(ctx context.Context) (document, error) {
	if err := ctx.Err(); err != nil {
		return document{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *Store) mutate(ctx context.Context, fn func(*document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *Store) read() (document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return document{Version: documentVersion}, nil
		}
		return document{}, fmt.Errorf("failed to read widget store: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return document{}, qwerrors.NewParseError(s.path, 0, err)
	}
	if doc.Version == "" {
		doc.Version = documentVersion
	}
	return doc, nil
}

// write saves the document atomically through a temporary file.
func (s *Store) write(doc document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal widget store: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

func find(doc *document, id int) *Instance {
	for i := range doc.Instances {
		if doc.Instances[i].ID == id {
			return &doc.Instances[i]
		}
	}
	return nil
}

func markRendered(inst *Instance, now time.Time) {
	t := now.UTC()
	inst.RenderedAt = &t
	inst.Renders++
}

var _ ports.Bridge = (*Store)(nil)
