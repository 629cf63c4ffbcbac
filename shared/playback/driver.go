// Package playback steps through an ordered sequence of snapshots and builds
// the set of mapped positions for the current step.
package playback

import (
	"errors"
	"fmt"

	"github.com/automoto/orbitview/shared/galaxymath"
	"github.com/automoto/orbitview/shared/snapshot"
)

var (
	ErrEmptySequence  = errors.New("step sequence is empty")
	ErrNilLoader      = errors.New("snapshot loader is nil")
	ErrNotInitialized = errors.New("driver not initialized")
)

// ConfigError reports settings that keep the driver from starting.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return "playback config: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LoadError reports a snapshot that could not be loaded for a step. The
// previous render set stays current.
type LoadError struct {
	Step int
	ID   string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load step %d (%s): %v", e.Step, e.ID, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Options configure a Driver.
type Options struct {
	Sequence   []string
	Loader     snapshot.Loader
	Extent     galaxymath.GalaxyExtent
	LightSpeed float64
	Sprite     Sprite
	BaseScale  float64
}

// Driver owns the step sequence and the current render set.
type Driver struct {
	sequence  []string
	loader    snapshot.Loader
	mapper    galaxymath.Mapper
	sprite    Sprite
	baseScale float64

	step    int
	running bool
	current *RenderSet
}

// New validates opts. Every error it returns is a *ConfigError.
func New(opts Options) (*Driver, error) {
	if len(opts.Sequence) == 0 {
		return nil, &ConfigError{Err: ErrEmptySequence}
	}
	if opts.Loader == nil {
		return nil, &ConfigError{Err: ErrNilLoader}
	}
	mapper, err := galaxymath.NewMapper(opts.Extent, opts.LightSpeed)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}

	sequence := make([]string, len(opts.Sequence))
	copy(sequence, opts.Sequence)

	return &Driver{
		sequence:  sequence,
		loader:    opts.Loader,
		mapper:    mapper,
		sprite:    opts.Sprite,
		baseScale: opts.BaseScale,
	}, nil
}

// Initialize moves the driver to step 0 and builds its render set. On error
// the driver stays uninitialized.
func (d *Driver) Initialize(viewport galaxymath.Viewport) error {
	set, err := d.build(0, viewport)
	if err != nil {
		return err
	}
	d.step = 0
	d.current = set
	d.running = true
	return nil
}

// Tick advances one step, wrapping after the last, and swaps in the new
// render set. If the snapshot cannot be loaded the step still advances, the
// previous render set is kept, and a *LoadError is returned.
func (d *Driver) Tick(viewport galaxymath.Viewport) error {
	if !d.running {
		return ErrNotInitialized
	}

	d.step = (d.step + 1) % len(d.sequence)

	set, err := d.build(d.step, viewport)
	if err != nil {
		return err
	}
	d.current = set
	return nil
}

func (d *Driver) build(step int, viewport galaxymath.Viewport) (*RenderSet, error) {
	id := d.sequence[step]
	records, err := d.loader.Load(id)
	if err != nil {
		return nil, &LoadError{Step: step, ID: id, Err: err}
	}

	entries := make([]Entry, len(records))
	for i, r := range records {
		raw := galaxymath.RawPosition{X: r.X, Y: r.Y}
		entries[i] = Entry{
			Raw:      raw,
			Position: d.mapper.Map(raw, viewport),
			Scale:    d.baseScale,
			Sprite:   d.sprite,
		}
	}
	return &RenderSet{Step: step, ID: id, entries: entries}, nil
}

// Step returns the index of the current step.
func (d *Driver) Step() int {
	return d.step
}

// Len returns the length of the step sequence.
func (d *Driver) Len() int {
	return len(d.sequence)
}

// Running reports whether Initialize has succeeded.
func (d *Driver) Running() bool {
	return d.running
}

// Current returns the render set for the last successfully loaded step, or
// nil before Initialize.
func (d *Driver) Current() *RenderSet {
	return d.current
}

// Mapper returns the coordinate mapper the driver uses.
func (d *Driver) Mapper() galaxymath.Mapper {
	return d.mapper
}
