package selection

import (
	"selectbox/internal/domain"
)

var (
	optA = domain.Option{Label: "Apple", Value: domain.StringValue("a")}
	optB = domain.Option{Label: "Banana", Value: domain.StringValue("b")}
	optC = domain.Option{Label: "Cherry", Value: domain.NumberValue(3)}
)

type singleCall struct {
	option domain.Option
	ok     bool
}

type singleRecorder struct {
	calls []singleCall
}

func (r *singleRecorder) sink(option domain.Option, ok bool) {
	r.calls = append(r.calls, singleCall{option: option, ok: ok})
}

type multiRecorder struct {
	calls [][]domain.Option
}

func (r *multiRecorder) sink(selected []domain.Option) {
	r.calls = append(r.calls, selected)
}

// fakeSource records subscriptions so tests can push intents and blur
type fakeSource struct {
	onIntent     map[string]func(domain.Intent)
	onBlur       map[string]func()
	unsubscribed []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		onIntent: make(map[string]func(domain.Intent)),
		onBlur:   make(map[string]func()),
	}
}

func (f *fakeSource) Subscribe(id string, onIntent func(domain.Intent), onBlur func()) func() {
	f.onIntent[id] = onIntent
	f.onBlur[id] = onBlur
	return func() {
		delete(f.onIntent, id)
		delete(f.onBlur, id)
		f.unsubscribed = append(f.unsubscribed, id)
	}
}

func (f *fakeSource) send(id string, intent domain.Intent) {
	if fn, ok := f.onIntent[id]; ok {
		fn(intent)
	}
}

func (f *fakeSource) blur(id string) {
	if fn, ok := f.onBlur[id]; ok {
		fn()
	}
}
