package stepcontext

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/semitest/stl-go/pkg/log"
)

// Context is one test step's view of the host sequencer.
// It is safe for concurrent use.
type Context struct {
	id         string
	name       string
	sites      []int
	dutPins    []string
	systemPins []string
	systemPin  map[string]bool

	store   Store
	results log.Logger
	logger  *slog.Logger

	// mu keeps the events of one publish call contiguous. Contexts derived
	// with WithSites share it.
	mu  *sync.Mutex
	now func() time.Time
}

// New creates a step context from a validated configuration.
func New(cfg Config) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Context{
		id:         uuid.NewString(),
		name:       cfg.Name,
		sites:      slices.Clone(cfg.Sites),
		dutPins:    slices.Clone(cfg.Pins.DUT),
		systemPins: slices.Clone(cfg.Pins.System),
		systemPin:  make(map[string]bool, len(cfg.Pins.DUT)+len(cfg.Pins.System)),
		store:      cfg.Store,
		results:    cfg.Results,
		logger:     cfg.Logger,
		mu:         &sync.Mutex{},
		now:        time.Now,
	}
	for _, p := range cfg.Pins.DUT {
		c.systemPin[p] = false
	}
	for _, p := range cfg.Pins.System {
		c.systemPin[p] = true
	}
	if c.store == nil {
		c.store = NewMemoryStore()
	}
	if c.results == nil {
		c.results = log.NoopLogger{}
	}

	c.debugLog("step context created",
		"stepID", c.id,
		"name", c.name,
		"sites", c.sites,
		"pins", len(c.systemPin))
	return c, nil
}

// ID returns the step ID stamped on every result event.
func (c *Context) ID() string { return c.id }

// Name returns the configured step name.
func (c *Context) Name() string { return c.name }

// Store returns the shared data store.
func (c *Context) Store() Store { return c.store }

// SiteNumbers returns the active site numbers in publishing order.
func (c *Context) SiteNumbers() []int { return slices.Clone(c.sites) }

// PinNames returns the DUT pins followed by the system pins.
func (c *Context) PinNames() []string {
	return append(slices.Clone(c.dutPins), c.systemPins...)
}

// DUTPins returns the configured DUT pins.
func (c *Context) DUTPins() []string { return slices.Clone(c.dutPins) }

// SystemPins returns the configured system pins.
func (c *Context) SystemPins() []string { return slices.Clone(c.systemPins) }

// IsSystemPin reports whether pin is configured as a system pin.
func (c *Context) IsSystemPin(pin string) bool { return c.systemPin[pin] }

// HasPin reports whether pin is part of the configuration.
func (c *Context) HasPin(pin string) bool {
	_, ok := c.systemPin[pin]
	return ok
}

// ValidatePins checks that every name is a configured pin. All unknown
// names are reported together.
func (c *Context) ValidatePins(pins []string) error {
	var unknown []string
	for _, p := range pins {
		if !c.HasPin(p) {
			unknown = append(unknown, fmt.Sprintf("%q", p))
		}
	}
	if len(unknown) > 0 {
		err := fmt.Errorf("%w: %s", ErrUnknownPin, strings.Join(unknown, ", "))
		c.warnLog("pin validation failed", "error", err)
		return err
	}
	return nil
}

// WithSites returns a context restricted to a subset of the active sites,
// in the given order. The step ID, store and result logger are shared.
func (c *Context) WithSites(sites []int) (*Context, error) {
	if len(sites) == 0 {
		return nil, fmt.Errorf("%w: no sites", ErrInvalidConfig)
	}
	seen := make(map[int]bool, len(sites))
	for _, s := range sites {
		if !slices.Contains(c.sites, s) {
			return nil, fmt.Errorf("%w: %d", ErrSiteNotActive, s)
		}
		if seen[s] {
			return nil, fmt.Errorf("%w: duplicate site number %d", ErrInvalidConfig, s)
		}
		seen[s] = true
	}
	sub := *c
	sub.sites = slices.Clone(sites)
	return &sub, nil
}

func (c *Context) event(kind log.Kind) log.Event {
	return log.Event{
		Timestamp: c.now(),
		StepID:    c.id,
		StepName:  c.name,
		Kind:      kind,
	}
}

func (c *Context) emit(events ...log.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range events {
		c.results.Log(e)
	}
}

// fail records err as an error event and returns it.
func (c *Context) fail(op string, err error) error {
	c.warnLog(op+" failed", "error", err)
	e := c.event(log.KindError)
	e.Error = &log.ErrorEventData{Message: err.Error(), Context: op}
	c.emit(e)
	return err
}

func (c *Context) debugLog(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

func (c *Context) warnLog(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}
