package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectbox/internal/domain"
)

func TestToggleOpenResetsHighlight(t *testing.T) {
	c := NewSingle([]domain.Option{optA, optB, optC}, nil, nil)

	c.ToggleOpen()
	c.SetHighlighted(2)
	require.Equal(t, 2, c.Highlighted())

	c.ToggleOpen()
	assert.False(t, c.IsOpen())

	c.ToggleOpen()
	assert.True(t, c.IsOpen())
	assert.Equal(t, 0, c.Highlighted(), "opening always starts at the first option")
}

func TestCloseIsIdempotentAndKeepsSelection(t *testing.T) {
	rec := &singleRecorder{}
	c := NewSingle([]domain.Option{optA, optB}, &optB, rec.sink)

	c.ToggleOpen()
	c.Close()
	c.Close()

	assert.False(t, c.IsOpen())
	assert.True(t, c.IsSelected(optB))
	assert.Empty(t, rec.calls)
}

func TestSetHighlightedIgnoresOutOfRange(t *testing.T) {
	c := NewMultiple([]domain.Option{optA, optB, optC}, nil, nil)
	c.ToggleOpen()

	c.SetHighlighted(1)
	c.SetHighlighted(-1)
	assert.Equal(t, 1, c.Highlighted())
	c.SetHighlighted(3)
	assert.Equal(t, 1, c.Highlighted())
}

func TestHighlightStaysInBounds(t *testing.T) {
	options := []domain.Option{optA, optB, optC}
	moves := []domain.Intent{
		domain.IntentUp, domain.IntentDown, domain.IntentDown, domain.IntentDown,
		domain.IntentDown, domain.IntentUp, domain.IntentUp, domain.IntentUp, domain.IntentUp,
	}

	c := NewSingle(options, nil, nil)
	c.HandleIntent(domain.IntentDown) // opens
	require.True(t, c.IsOpen())
	require.Equal(t, 0, c.Highlighted())

	for _, move := range moves {
		before := c.Highlighted()
		c.HandleIntent(move)
		got := c.Highlighted()
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, len(options))

		want := before + 1
		if move == domain.IntentUp {
			want = before - 1
		}
		if want < 0 || want >= len(options) {
			assert.Equal(t, before, got, "boundary move leaves highlight unchanged")
		} else {
			assert.Equal(t, want, got)
		}
	}
}

func TestBoundsWithSingleOption(t *testing.T) {
	c := NewSingle([]domain.Option{optA}, nil, nil)
	c.HandleIntent(domain.IntentConfirm)
	require.True(t, c.IsOpen())

	c.HandleIntent(domain.IntentUp)
	assert.Equal(t, 0, c.Highlighted())
	c.HandleIntent(domain.IntentDown)
	assert.Equal(t, 0, c.Highlighted())
}

func TestIntentsWhileClosed(t *testing.T) {
	for _, intent := range []domain.Intent{domain.IntentConfirm, domain.IntentUp, domain.IntentDown} {
		t.Run(intent.String(), func(t *testing.T) {
			rec := &singleRecorder{}
			c := NewSingle([]domain.Option{optA, optB}, nil, rec.sink)

			c.HandleIntent(intent)

			assert.True(t, c.IsOpen())
			assert.Equal(t, 0, c.Highlighted())
			assert.Empty(t, rec.calls, "opening never commits")
		})
	}

	t.Run("dismiss", func(t *testing.T) {
		c := NewSingle([]domain.Option{optA}, nil, nil)
		c.HandleIntent(domain.IntentDismiss)
		assert.False(t, c.IsOpen())
	})
}

func TestDismissClosesWithoutCommit(t *testing.T) {
	rec := &multiRecorder{}
	c := NewMultiple([]domain.Option{optA, optB}, []domain.Option{optA}, rec.sink)

	c.HandleIntent(domain.IntentDown)
	c.HandleIntent(domain.IntentDown)
	c.HandleIntent(domain.IntentDismiss)

	assert.False(t, c.IsOpen())
	assert.Equal(t, []domain.Option{optA}, c.Selected())
	assert.Empty(t, rec.calls)
}

func TestConfirmOnEmptyOptionsOnlyCloses(t *testing.T) {
	rec := &singleRecorder{}
	c := NewSingle(nil, nil, rec.sink)

	c.HandleIntent(domain.IntentConfirm)
	require.True(t, c.IsOpen())
	c.HandleIntent(domain.IntentDown)
	assert.Equal(t, 0, c.Highlighted())
	c.HandleIntent(domain.IntentConfirm)

	assert.False(t, c.IsOpen())
	assert.Empty(t, rec.calls)
}

func TestPick(t *testing.T) {
	rec := &singleRecorder{}
	c := NewSingle([]domain.Option{optA, optB}, nil, rec.sink)
	c.ToggleOpen()

	c.Pick(5)
	assert.True(t, c.IsOpen(), "out-of-range pick is ignored")
	assert.Empty(t, rec.calls)

	c.Pick(1)
	assert.False(t, c.IsOpen())
	require.Len(t, rec.calls, 1)
	assert.Equal(t, singleCall{option: optB, ok: true}, rec.calls[0])
}

func TestOptionsAreCopied(t *testing.T) {
	options := []domain.Option{optA, optB}
	c := NewSingle(options, nil, nil)
	options[0] = optC

	assert.Equal(t, optA, c.Options()[0])
}

func TestAttachRoutesIntentsAndBlur(t *testing.T) {
	src := newFakeSource()
	rec := &singleRecorder{}
	c := NewSingle([]domain.Option{optA, optB}, nil, rec.sink)
	c.Attach(src, "fruit")

	src.send("fruit", domain.IntentConfirm)
	require.True(t, c.IsOpen())
	src.send("fruit", domain.IntentDown)
	assert.Equal(t, 1, c.Highlighted())

	src.blur("fruit")
	assert.False(t, c.IsOpen())

	c.Release()
	c.Release()
	assert.Equal(t, []string{"fruit"}, src.unsubscribed)

	src.send("fruit", domain.IntentConfirm)
	assert.False(t, c.IsOpen(), "released controller no longer reacts")
	assert.Empty(t, rec.calls)
}

func TestAttachReplacesPreviousSubscription(t *testing.T) {
	src := newFakeSource()
	c := NewMultiple([]domain.Option{optA}, nil, nil)

	c.Attach(src, "one")
	c.Attach(src, "two")

	assert.Equal(t, []string{"one"}, src.unsubscribed)
	src.send("two", domain.IntentConfirm)
	assert.True(t, c.IsOpen())
}
