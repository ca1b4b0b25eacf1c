package selection

import (
	"selectbox/internal/domain"
)

// SingleSink receives the new value of a single-mode control.
// ok is false when the selection was cleared.
type SingleSink func(option domain.Option, ok bool)

// Single is a controller holding at most one selected option
type Single struct {
	core
	selected domain.Option
	has      bool
	sink     SingleSink
}

var _ Controller = (*Single)(nil)

// NewSingle creates a single-mode controller. initial may be nil.
func NewSingle(options []domain.Option, initial *domain.Option, sink SingleSink) *Single {
	s := &Single{
		core: newCore(options),
		sink: sink,
	}
	if initial != nil {
		s.selected, s.has = *initial, true
	}
	s.commit = s.SelectOption
	return s
}

// Mode returns domain.ModeSingle
func (s *Single) Mode() domain.Mode {
	return domain.ModeSingle
}

// Selection returns the selected option, if any
func (s *Single) Selection() (domain.Option, bool) {
	return s.selected, s.has
}

// Selected returns the selection as a zero- or one-element slice
func (s *Single) Selected() []domain.Option {
	if !s.has {
		return nil
	}
	return []domain.Option{s.selected}
}

// IsSelected reports whether option is the current selection
func (s *Single) IsSelected(option domain.Option) bool {
	return s.has && s.selected == option
}

// SelectOption replaces the selection. Re-selecting the current option
// does nothing and does not notify.
func (s *Single) SelectOption(option domain.Option) {
	if s.IsSelected(option) {
		return
	}
	s.selected, s.has = option, true
	s.notify()
}

// ClearSelection empties the selection, notifying only if it was set
func (s *Single) ClearSelection() {
	if !s.has {
		return
	}
	s.selected, s.has = domain.Option{}, false
	s.notify()
}

func (s *Single) notify() {
	if s.sink != nil {
		s.sink(s.selected, s.has)
	}
}
