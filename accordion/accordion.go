package accordion

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// Accordion is a vertical stack of collapsible panels. Whether it owns its
// open-state is decided at construction and fixed for its lifetime:
// accordions built with New manage the state themselves, accordions built
// with NewControlled only report toggle requests through a callback and
// render whatever value the caller feeds back via SetValue.
type Accordion struct {
	widget.BaseWidget

	cfg    Config
	rootID string
	logger *slog.Logger

	controlled bool
	onChange   func(index int)

	// open holds the current *OpenSet. Untyped bindings require comparable
	// values, and a fresh pointer per transition guarantees listeners fire.
	open binding.Untyped

	registry *descendantRegistry
	items    []*Item
	box      *fyne.Container

	defaults    []int
	hasDefaults bool
}

// Option configures an Accordion at construction time.
type Option func(*Accordion)

// WithRootID sets the root identifier all item identifiers are derived
// from. Without it a fresh identifier is generated.
func WithRootID(id string) Option {
	return func(a *Accordion) { a.rootID = id }
}

// WithLogger sets the logger used to report usage errors.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Accordion) { a.logger = logger }
}

// WithDefaults sets the panels that start open on an uncontrolled
// accordion, overriding the collapsible-based default. The indices are
// coerced to the configured shape; in single mode the first one wins.
// Controlled accordions ignore this option.
func WithDefaults(indices ...int) Option {
	return func(a *Accordion) {
		a.defaults = indices
		if a.defaults == nil {
			a.defaults = []int{}
		}
		a.hasDefaults = true
	}
}

// New creates an uncontrolled Accordion: the widget owns its open-state
// and applies toggles itself.
func New(cfg Config, opts ...Option) *Accordion {
	a := newAccordion(cfg, opts...)
	initial := DefaultOpenSet(a.defaultIndices(), cfg)
	_ = a.open.Set(&initial)
	return a
}

// NewControlled creates a controlled Accordion: every toggle is reported
// to onChange and no internal mutation happens; the caller is expected to
// feed the updated value back through SetValue. The initial value is
// normalized to the configured shape.
func NewControlled(value OpenSet, onChange func(index int), cfg Config, opts ...Option) *Accordion {
	a := newAccordion(cfg, opts...)
	a.controlled = true
	a.onChange = onChange
	initial := value.Normalize(cfg.Multiple)
	_ = a.open.Set(&initial)
	return a
}

func newAccordion(cfg Config, opts ...Option) *Accordion {
	a := &Accordion{
		cfg:      cfg,
		open:     binding.NewUntyped(),
		registry: newDescendantRegistry(),
		box:      container.NewVBox(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rootID == "" {
		a.rootID = NewRootID()
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	a.ExtendBaseWidget(a)
	return a
}

func (a *Accordion) defaultIndices() []int {
	if !a.hasDefaults {
		return nil
	}
	return a.defaults
}

// Toggle requests a state change for the panel at index. Read-only
// accordions absorb the request. Controlled accordions invoke the change
// callback and leave their state untouched. Uncontrolled accordions run
// the selection transition and broadcast the new value to their items.
func (a *Accordion) Toggle(index int) {
	if a.cfg.ReadOnly {
		return
	}
	if a.controlled {
		if a.onChange != nil {
			a.onChange(index)
		}
		return
	}
	current := a.Value()
	next := Next(current, index, a.cfg)
	if next.Equal(current) {
		return
	}
	_ = a.open.Set(&next)
}

// SetValue replaces the open-state wholesale. It is only valid on a
// controlled accordion; calling it on an uncontrolled one is a usage
// error, logged and ignored rather than silently switching ownership.
func (a *Accordion) SetValue(value OpenSet) {
	if !a.controlled {
		a.logger.Error("SetValue called on uncontrolled accordion, ignoring",
			slog.String("root_id", a.rootID))
		return
	}
	next := value.Normalize(a.cfg.Multiple)
	_ = a.open.Set(&next)
}

// Value returns the current open-state.
func (a *Accordion) Value() OpenSet {
	v, _ := a.open.Get()
	if set, ok := v.(*OpenSet); ok && set != nil {
		return *set
	}
	return AllClosed(a.cfg.Multiple)
}

// IsOpen reports whether the panel at index is open.
func (a *Accordion) IsOpen(index int) bool {
	return a.Value().IsOpen(index)
}

// Config returns the accordion's configuration.
func (a *Accordion) Config() Config {
	return a.cfg
}

// RootID returns the identifier all item identifiers derive from.
func (a *Accordion) RootID() string {
	return a.rootID
}

// Items returns the mounted items in tree order.
func (a *Accordion) Items() []*Item {
	out := make([]*Item, len(a.items))
	copy(out, a.items)
	return out
}

// Append mounts an item after all existing ones.
func (a *Accordion) Append(item *Item) {
	a.InsertAt(len(a.items), item)
}

// InsertAt mounts an item at the given tree position. Indices of all
// items are recomputed before the call returns, so a toggle emitted by
// any mounted item immediately afterwards resolves correctly.
func (a *Accordion) InsertAt(pos int, item *Item) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(a.items) {
		pos = len(a.items)
	}
	a.items = append(a.items, nil)
	copy(a.items[pos+1:], a.items[pos:])
	a.items[pos] = item
	a.registry.register(item, pos)
	item.attach(a)
	a.rebuildContent()
}

// Remove unmounts an item; remaining indices stay contiguous and
// tree-ordered. Removing an unknown item is a no-op.
func (a *Accordion) Remove(item *Item) {
	if _, err := a.registry.indexOf(item); err != nil {
		return
	}
	for i, it := range a.items {
		if it == item {
			a.items = append(a.items[:i], a.items[i+1:]...)
			break
		}
	}
	a.registry.unregister(item)
	item.detach()
	a.rebuildContent()
}

func (a *Accordion) rebuildContent() {
	objects := make([]fyne.CanvasObject, len(a.items))
	for i, it := range a.items {
		objects[i] = it
	}
	a.box.Objects = objects
	// Indices may have shifted, so every item re-derives its state.
	for _, it := range a.items {
		it.applyState()
	}
	a.box.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (a *Accordion) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(a.box)
}
