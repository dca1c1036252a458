package accordion

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/squeezebox/internal/logging"
)

func newTestAccordion(t *testing.T, cfg Config, titles ...string) *Accordion {
	t.Helper()
	a := New(cfg, WithRootID("test"), WithLogger(logging.NewNopLogger()))
	for _, title := range titles {
		a.Append(NewItem(title, widget.NewLabel(title+" detail")))
	}
	return a
}

func TestNew_DefaultState(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	a := newTestAccordion(t, Config{}, "one", "two")
	assert.True(t, SingleOpen(0).Equal(a.Value()), "non-collapsible single starts with panel 0 open")

	a = newTestAccordion(t, Config{Multiple: true, Collapsible: true}, "one", "two")
	assert.True(t, MultipleOpen().Equal(a.Value()), "collapsible multiple starts closed")
}

func TestNew_WithDefaults(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	a := New(Config{Multiple: true}, WithDefaults(2, 0), WithLogger(logging.NewNopLogger()))
	assert.True(t, MultipleOpen(0, 2).Equal(a.Value()))

	a = New(Config{}, WithDefaults(1), WithLogger(logging.NewNopLogger()))
	assert.True(t, SingleOpen(1).Equal(a.Value()))
}

func TestAccordion_ToggleUncontrolled(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	a := newTestAccordion(t, Config{Collapsible: true}, "one", "two", "three")

	a.Toggle(2)
	assert.True(t, SingleOpen(2).Equal(a.Value()))
	assert.True(t, a.IsOpen(2))
	assert.False(t, a.IsOpen(0))

	a.Toggle(2)
	assert.True(t, NoneOpen().Equal(a.Value()), "collapsible single closes on second toggle")
}

func TestAccordion_ToggleReadOnly(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	a := newTestAccordion(t, Config{ReadOnly: true}, "one", "two")

	a.Toggle(1)
	assert.True(t, SingleOpen(0).Equal(a.Value()), "read-only accordion absorbs toggles")
}

func TestAccordion_ControlledTogglesOnlyNotify(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var reported []int
	a := NewControlled(SingleOpen(1), func(index int) {
		reported = append(reported, index)
	}, Config{}, WithLogger(logging.NewNopLogger()))
	a.Append(NewItem("one", widget.NewLabel("one")))
	a.Append(NewItem("two", widget.NewLabel("two")))

	a.Toggle(0)
	a.Toggle(1)

	assert.Equal(t, []int{0, 1}, reported)
	assert.True(t, SingleOpen(1).Equal(a.Value()), "controlled toggles must not mutate state")
}

func TestAccordion_ControlledSetValue(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	a := NewControlled(MultipleOpen(), nil, Config{Multiple: true}, WithLogger(logging.NewNopLogger()))
	items := []*Item{
		NewItem("one", widget.NewLabel("one")),
		NewItem("two", widget.NewLabel("two")),
	}
	for _, item := range items {
		a.Append(item)
	}

	a.SetValue(MultipleOpen(1))

	assert.True(t, MultipleOpen(1).Equal(a.Value()))
	assert.True(t, items[1].Open())
	assert.False(t, items[0].Open())
}

func TestAccordion_ControlledValueNormalizedToShape(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	a := NewControlled(SingleOpen(2), nil, Config{Multiple: true}, WithLogger(logging.NewNopLogger()))
	assert.True(t, MultipleOpen(2).Equal(a.Value()), "initial value is coerced to the configured shape")

	a.SetValue(MultipleOpen(3, 1))
	assert.True(t, MultipleOpen(1, 3).Equal(a.Value()))
}

func TestAccordion_SetValueOnUncontrolledIsIgnored(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	a := newTestAccordion(t, Config{}, "one", "two")

	a.SetValue(SingleOpen(1))
	assert.True(t, SingleOpen(0).Equal(a.Value()), "state ownership must not switch mid-lifecycle")
}

func TestAccordion_ItemsFollowBroadcastState(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	a := New(Config{Multiple: true, Collapsible: true}, WithRootID("test"), WithLogger(logging.NewNopLogger()))
	items := []*Item{
		NewItem("one", widget.NewLabel("one")),
		NewItem("two", widget.NewLabel("two")),
		NewItem("three", widget.NewLabel("three")),
	}
	for _, item := range items {
		a.Append(item)
	}

	a.Toggle(0)
	a.Toggle(2)

	assert.True(t, items[0].Open())
	assert.False(t, items[1].Open())
	assert.True(t, items[2].Open())
}

func TestAccordion_HeaderTapTogglesPanel(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	a := newTestAccordion(t, Config{Collapsible: true}, "one", "two")
	window := app.NewWindow("test")
	defer window.Close()
	window.SetContent(a)

	items := a.Items()
	test.Tap(items[1].header)

	assert.True(t, SingleOpen(1).Equal(a.Value()))
	assert.True(t, items[1].Open())
}

func TestAccordion_InsertReindexesItems(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	a := newTestAccordion(t, Config{Collapsible: true}, "b", "c")
	first := NewItem("a", widget.NewLabel("a"))
	a.InsertAt(0, first)

	idx, err := first.Index()
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	items := a.Items()
	for want, item := range items {
		got, err := item.Index()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestAccordion_RemoveReindexesItems(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	a := newTestAccordion(t, Config{Collapsible: true}, "one", "two", "three")
	items := a.Items()

	a.Remove(items[0])

	idx, err := items[1].Index()
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = items[0].Index()
	assert.ErrorIs(t, err, ErrItemNotRegistered)
	assert.Len(t, a.Items(), 2)
}

func TestItem_IDs(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	a := newTestAccordion(t, Config{}, "one", "two")
	items := a.Items()

	ids, err := items[1].IDs()
	require.NoError(t, err)
	assert.Equal(t, "test-1", ids.Item)
	assert.Equal(t, "panel-test-1", ids.Panel)
	assert.Equal(t, "button-test-1", ids.Button)
}

func TestItem_IDsBeforeMount(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	item := NewItem("loose", widget.NewLabel("loose"))

	_, err := item.IDs()
	assert.ErrorIs(t, err, ErrItemNotRegistered)
}

func TestAccordion_CreateRenderer(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	a := newTestAccordion(t, Config{}, "one")
	assert.NotNil(t, a.CreateRenderer())

	items := a.Items()
	assert.NotNil(t, items[0].CreateRenderer())
}

func TestAccordion_GeneratedRootID(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	a := New(Config{}, WithLogger(logging.NewNopLogger()))
	b := New(Config{}, WithLogger(logging.NewNopLogger()))

	assert.NotEmpty(t, a.RootID())
	assert.NotEqual(t, a.RootID(), b.RootID())
}
