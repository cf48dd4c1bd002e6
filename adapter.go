package cyclemenu

import (
	"fmt"
	"slices"
)

// ItemClickListener receives clicks on arc items. Positions are real
// positions, already mapped through RealPosition.
type ItemClickListener interface {
	OnItemClick(position int)
	OnItemLongClick(position int)
}

// ItemClickFuncs adapts plain functions to ItemClickListener.
// Nil fields are skipped.
type ItemClickFuncs struct {
	Click     func(position int)
	LongClick func(position int)
}

// OnItemClick calls f.Click.
func (f ItemClickFuncs) OnItemClick(position int) {
	if f.Click != nil {
		f.Click(position)
	}
}

// OnItemLongClick calls f.LongClick.
func (f ItemClickFuncs) OnItemLongClick(position int) {
	if f.LongClick != nil {
		f.LongClick(position)
	}
}

// Adapter exposes the menu items to the widget and the arc.
type Adapter interface {
	// ItemCount is the number of raw positions; Unbounded under Endless.
	ItemCount() ItemCount
	// RealItemCount is the number of distinct items.
	RealItemCount() int
	// SetScrollPolicy is called by the widget once the policy has been
	// checked against the space available on the arc.
	SetScrollPolicy(ScrollPolicy)
	// SetItemClickListener installs the listener receiving real positions.
	SetItemClickListener(ItemClickListener)
	// OnItemClick and OnItemLongClick are called by the arc with raw positions.
	OnItemClick(raw int)
	OnItemLongClick(raw int)
}

// Labeler is implemented by adapters that can name the item at a real
// position. The stock ring draws these names on its items.
type Labeler interface {
	Label(index int) string
}

// ItemAdapter is the stock Adapter over a slice of items.
type ItemAdapter[T any] struct {
	items    []T
	policy   ScrollPolicy
	listener ItemClickListener
}

// NewItemAdapter returns an adapter holding a copy of items.
func NewItemAdapter[T any](items ...T) *ItemAdapter[T] {
	return &ItemAdapter[T]{items: slices.Clone(items), policy: Basic}
}

// Add appends items.
func (a *ItemAdapter[T]) Add(items ...T) {
	a.items = append(a.items, items...)
}

// Clear removes all items.
func (a *ItemAdapter[T]) Clear() {
	a.items = nil
}

// Item returns the item at real position i. It panics if i is out of
// range, like a slice index.
func (a *ItemAdapter[T]) Item(i int) T {
	return a.items[i]
}

// ItemAt returns the item behind a raw position. ok is false when the
// adapter is empty.
func (a *ItemAdapter[T]) ItemAt(raw int) (item T, ok bool) {
	if len(a.items) == 0 {
		return item, false
	}
	return a.items[RealPosition(raw, len(a.items))], true
}

// Label implements Labeler with the item's default format.
func (a *ItemAdapter[T]) Label(i int) string {
	if i < 0 || i >= len(a.items) {
		return ""
	}
	return fmt.Sprint(a.items[i])
}

// Items returns a copy of all items.
func (a *ItemAdapter[T]) Items() []T {
	return slices.Clone(a.items)
}

// ScrollPolicy returns the policy last set by the widget.
func (a *ItemAdapter[T]) ScrollPolicy() ScrollPolicy {
	return a.policy
}

// ItemCount implements Adapter.
func (a *ItemAdapter[T]) ItemCount() ItemCount {
	if a.policy == Endless {
		return Unbounded()
	}
	return Bounded(len(a.items))
}

// RealItemCount implements Adapter.
func (a *ItemAdapter[T]) RealItemCount() int {
	return len(a.items)
}

// SetScrollPolicy implements Adapter.
func (a *ItemAdapter[T]) SetScrollPolicy(p ScrollPolicy) {
	a.policy = p
}

// SetItemClickListener implements Adapter.
func (a *ItemAdapter[T]) SetItemClickListener(l ItemClickListener) {
	a.listener = l
}

// OnItemClick implements Adapter.
func (a *ItemAdapter[T]) OnItemClick(raw int) {
	if a.listener != nil && len(a.items) > 0 {
		a.listener.OnItemClick(RealPosition(raw, len(a.items)))
	}
}

// OnItemLongClick implements Adapter.
func (a *ItemAdapter[T]) OnItemLongClick(raw int) {
	if a.listener != nil && len(a.items) > 0 {
		a.listener.OnItemLongClick(RealPosition(raw, len(a.items)))
	}
}
