package domain

import (
	"strconv"
)

// Mode selects the shape of a control's selection. It is fixed for the
// lifetime of a controller.
type Mode int

const (
	ModeSingle Mode = iota
	ModeMultiple
)

// String returns the config spelling of the mode
func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeMultiple:
		return "multiple"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMode parses the config spelling of a mode
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "single", "":
		return ModeSingle, true
	case "multiple", "multi":
		return ModeMultiple, true
	}
	return 0, false
}

type valueKind uint8

const (
	kindString valueKind = iota
	kindNumber
)

// Value is an option value: either a string or a number.
// Values are comparable with ==.
type Value struct {
	kind valueKind
	str  string
	num  float64
}

// StringValue returns a string value
func StringValue(s string) Value {
	return Value{kind: kindString, str: s}
}

// NumberValue returns a numeric value
func NumberValue(n float64) Value {
	return Value{kind: kindNumber, num: n}
}

// Number returns the numeric payload and whether v is a number
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == kindNumber
}

// Interface returns the payload as a string or float64, suitable for encoders
func (v Value) Interface() any {
	if v.kind == kindNumber {
		return v.num
	}
	return v.str
}

// String formats the value for display and logs
func (v Value) String() string {
	if v.kind == kindNumber {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// Option is a single labeled, valued entry in a control's list.
// Two options are the same option only if label and value both match.
type Option struct {
	Label string
	Value Value
}

// Intent is the normalized input alphabet understood by a controller
type Intent int

const (
	IntentNone Intent = iota
	IntentConfirm
	IntentUp
	IntentDown
	IntentDismiss
)

func (i Intent) String() string {
	switch i {
	case IntentConfirm:
		return "confirm"
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentDismiss:
		return "dismiss"
	default:
		return "none"
	}
}

// ParseIntent maps a script token ("enter", "up", "esc", ...) to an intent
func ParseIntent(s string) (Intent, bool) {
	switch s {
	case "confirm", "enter", "space":
		return IntentConfirm, true
	case "up", "k":
		return IntentUp, true
	case "down", "j":
		return IntentDown, true
	case "dismiss", "esc", "escape":
		return IntentDismiss, true
	}
	return IntentNone, false
}
