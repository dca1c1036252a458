package accordion

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Item is one collapsible panel of an Accordion: a header button that
// toggles the panel, and detail content shown while the panel is open.
// An Item derives its open state by testing its own index against the
// open-set its parent broadcasts; it holds no selection state of its own.
type Item struct {
	widget.BaseWidget

	title  string
	detail fyne.CanvasObject

	parent   *Accordion
	header   *widget.Button
	listener binding.DataListener
	open     bool
}

// NewItem creates a panel with the given header title and detail content.
// The item participates in selection once mounted via Accordion.Append or
// Accordion.InsertAt.
func NewItem(title string, detail fyne.CanvasObject) *Item {
	it := &Item{
		title:  title,
		detail: detail,
	}
	it.header = widget.NewButtonWithIcon(title, theme.MenuDropDownIcon(), it.tapped)
	it.header.Alignment = widget.ButtonAlignLeading
	it.detail.Hide()
	it.ExtendBaseWidget(it)
	return it
}

// Title returns the header title.
func (it *Item) Title() string {
	return it.title
}

// Open reports whether the panel is currently expanded.
func (it *Item) Open() bool {
	return it.open
}

// Index returns the item's tree-order index within its accordion, or
// ErrItemNotRegistered if the item is not mounted.
func (it *Item) Index() (int, error) {
	if it.parent == nil {
		return 0, ErrItemNotRegistered
	}
	return it.parent.registry.indexOf(it)
}

// IDs returns the derived identifier triple for this item, or
// ErrItemNotRegistered if the item is not mounted.
func (it *Item) IDs() (IDSet, error) {
	index, err := it.Index()
	if err != nil {
		return IDSet{}, err
	}
	return DeriveIDs(it.parent.rootID, index), nil
}

// tapped routes a header tap through the registry so the toggle carries
// the item's current tree-order index. An item that has not completed
// registration must not produce a toggle.
func (it *Item) tapped() {
	if it.parent == nil {
		return
	}
	index, err := it.parent.registry.indexOf(it)
	if err != nil {
		it.parent.logger.Error("toggle from unregistered item dropped",
			slog.String("title", it.title))
		return
	}
	it.parent.Toggle(index)
}

// attach subscribes the item to its parent's open-set broadcast. The
// parent registers the item before calling attach, so the first state
// derivation already resolves an index.
func (it *Item) attach(parent *Accordion) {
	it.parent = parent
	it.listener = binding.NewDataListener(it.applyState)
	parent.open.AddListener(it.listener)
}

// detach unsubscribes the item and resets it to closed.
func (it *Item) detach() {
	if it.parent != nil && it.listener != nil {
		it.parent.open.RemoveListener(it.listener)
	}
	it.parent = nil
	it.listener = nil
	it.setOpen(false)
}

// applyState re-derives the open state from the parent's current open-set
// by membership test on this item's index.
func (it *Item) applyState() {
	if it.parent == nil {
		return
	}
	index, err := it.parent.registry.indexOf(it)
	if err != nil {
		it.setOpen(false)
		return
	}
	it.setOpen(it.parent.Value().IsOpen(index))
}

func (it *Item) setOpen(open bool) {
	if it.open == open {
		return
	}
	it.open = open
	if open {
		it.header.SetIcon(theme.MenuDropUpIcon())
		it.detail.Show()
	} else {
		it.header.SetIcon(theme.MenuDropDownIcon())
		it.detail.Hide()
	}
	it.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (it *Item) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewVBox(it.header, it.detail))
}
