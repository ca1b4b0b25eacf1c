package selection

import (
	"slices"

	"selectbox/internal/domain"
)

// MultiSink receives the full selection of a multi-mode control after
// every change. The slice is owned by the receiver.
type MultiSink func(selected []domain.Option)

// Multiple is a controller holding an ordered set of options
type Multiple struct {
	core
	selected []domain.Option
	sink     MultiSink
}

var _ Controller = (*Multiple)(nil)

// NewMultiple creates a multi-mode controller. Duplicates in initial are
// dropped, keeping the first occurrence.
func NewMultiple(options []domain.Option, initial []domain.Option, sink MultiSink) *Multiple {
	m := &Multiple{
		core: newCore(options),
		sink: sink,
	}
	for _, o := range initial {
		if !slices.Contains(m.selected, o) {
			m.selected = append(m.selected, o)
		}
	}
	m.commit = m.SelectOption
	return m
}

// Mode returns domain.ModeMultiple
func (m *Multiple) Mode() domain.Mode {
	return domain.ModeMultiple
}

// Selected returns a copy of the selection in insertion order
func (m *Multiple) Selected() []domain.Option {
	return slices.Clone(m.selected)
}

// IsSelected reports whether option is a member of the selection
func (m *Multiple) IsSelected(option domain.Option) bool {
	return slices.Contains(m.selected, option)
}

// SelectOption toggles membership of option and always notifies
func (m *Multiple) SelectOption(option domain.Option) {
	if m.IsSelected(option) {
		m.selected = without(m.selected, option)
	} else {
		m.selected = with(m.selected, option)
	}
	m.notify()
}

// ClearSelection empties the selection, notifying only if it was non-empty
func (m *Multiple) ClearSelection() {
	if len(m.selected) == 0 {
		return
	}
	m.selected = nil
	m.notify()
}

func (m *Multiple) notify() {
	if m.sink != nil {
		m.sink(m.Selected())
	}
}

// with returns a new slice holding set followed by option
func with(set []domain.Option, option domain.Option) []domain.Option {
	next := make([]domain.Option, 0, len(set)+1)
	next = append(next, set...)
	return append(next, option)
}

// without returns a new slice holding set minus option
func without(set []domain.Option, option domain.Option) []domain.Option {
	next := make([]domain.Option, 0, len(set))
	for _, o := range set {
		if o != option {
			next = append(next, o)
		}
	}
	return next
}
