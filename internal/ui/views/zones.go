package views

// ZoneKind identifies what a clickable region of the screen does
type ZoneKind int

const (
	ZoneBox    ZoneKind = iota // control body: toggles the list
	ZoneChip                   // a selected option's badge: removes it
	ZoneClear                  // clear button
	ZoneOption                 // an option row of an open list
)

// Zone is a clickable rectangle one line high, in screen cells
type Zone struct {
	Kind    ZoneKind
	Control int // index of the control in render order
	Option  int // option index for ZoneChip and ZoneOption
	X, Y    int
	Width   int
}

// Contains reports whether the cell (x, y) falls inside the zone
func (z Zone) Contains(x, y int) bool {
	return y == z.Y && x >= z.X && x < z.X+z.Width
}

// HitTest returns the zone under (x, y). Later zones win, so chips and
// the clear button take precedence over the box they sit on.
func HitTest(zones []Zone, x, y int) (Zone, bool) {
	for i := len(zones) - 1; i >= 0; i-- {
		if zones[i].Contains(x, y) {
			return zones[i], true
		}
	}
	return Zone{}, false
}
