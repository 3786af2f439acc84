// Package dial models the circular time-range selector: the angle/time
// mapping, the drag state machine for the work and break arcs, and the SVG
// arc geometry the frontend renders.
package dial

import (
	"fmt"
	"math"
	"regexp"
)

const minutesPerDay = 24 * 60

// Handle identifies what a drag grabbed on an arc.
type Handle int

const (
	HandleNone Handle = iota
	HandleStart
	HandleEnd
	// HandleArc drags the whole interval, both bounds translate together.
	HandleArc
)

type State int

const (
	Idle State = iota
	Dragging
)

// NormalizeAngle maps any angle into [0,360).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// AngleToMinutes converts a dial angle to minutes since midnight, snapped
// to the given granularity. Angle 0 is 12:00 at the top of the dial.
func AngleToMinutes(angle float64, snapMinutes int) int {
	if snapMinutes < 1 {
		snapMinutes = 1
	}

	total := NormalizeAngle(angle) / 360 * minutesPerDay
	snapped := int(math.Round(total/float64(snapMinutes))) * snapMinutes
	return ((snapped % minutesPerDay) + minutesPerDay) % minutesPerDay
}

// MinutesToAngle is the inverse mapping.
func MinutesToAngle(minutes int) float64 {
	m := ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return float64(m) / minutesPerDay * 360
}

// PointerAngle converts a pointer position into a dial angle. Standard
// atan2 puts 0 degrees at three o'clock, the +90 rotation moves it to the
// dial's 12:00-at-top convention.
func PointerAngle(x, y, centerX, centerY float64) float64 {
	deg := math.Atan2(y-centerY, x-centerX) * 180 / math.Pi
	return NormalizeAngle(deg + 90)
}

// FormatMinutes renders minutes since midnight as HH:MM.
func FormatMinutes(minutes int) string {
	m := ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

var textEntry = regexp.MustCompile(`^\d{2}:\d{2}$`)

// ParseText validates a typed HH:MM value for the manual entry fallback.
// Anything that is not exactly two-digit colon two-digit in range is
// rejected, the caller reverts the field.
func ParseText(s string) (int, bool) {
	if !textEntry.MatchString(s) {
		return 0, false
	}

	var h, m int
	fmt.Sscanf(s, "%02d:%02d", &h, &m)
	if h > 23 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// Arc is one selected interval on the dial, bounds in minutes since
// midnight.
type Arc struct {
	Start int
	End   int
}

// Duration in minutes, wrapping past midnight.
func (a Arc) Duration() int {
	return ((a.End - a.Start) % minutesPerDay + minutesPerDay) % minutesPerDay
}

func (a Arc) StartAngle() float64 { return MinutesToAngle(a.Start) }
func (a Arc) EndAngle() float64   { return MinutesToAngle(a.End) }

// Control is the drag state machine for one arc. Pointer events feed it
// angles, it keeps the arc's bounds.
type Control struct {
	// SnapMinutes is the rounding granularity of this dial instance,
	// 1 for free movement or 15 for quarter-hour snapping.
	SnapMinutes int

	arc    Arc
	state  State
	handle Handle

	initialAngle float64
	initialStart float64
	initialEnd   float64
}

func NewControl(arc Arc, snapMinutes int) *Control {
	if snapMinutes < 1 {
		snapMinutes = 1
	}
	return &Control{SnapMinutes: snapMinutes, arc: arc}
}

func (c *Control) Arc() Arc     { return c.arc }
func (c *Control) State() State { return c.state }

// PointerDown starts a drag. For whole-arc drags the initial bound angles
// are captured so moves apply a relative offset.
func (c *Control) PointerDown(handle Handle, angle float64) {
	if c.state != Idle || handle == HandleNone {
		return
	}

	c.state = Dragging
	c.handle = handle
	c.initialAngle = NormalizeAngle(angle)
	c.initialStart = c.arc.StartAngle()
	c.initialEnd = c.arc.EndAngle()
}

// PointerMove recomputes the dragged bound(s) from the new angle. Ignored
// while idle.
func (c *Control) PointerMove(angle float64) {
	if c.state != Dragging {
		return
	}

	switch c.handle {
	case HandleStart:
		c.arc.Start = AngleToMinutes(angle, c.SnapMinutes)
	case HandleEnd:
		c.arc.End = AngleToMinutes(angle, c.SnapMinutes)
	case HandleArc:
		delta := NormalizeAngle(angle) - c.initialAngle
		c.arc.Start = AngleToMinutes(c.initialStart+delta, c.SnapMinutes)
		c.arc.End = AngleToMinutes(c.initialEnd+delta, c.SnapMinutes)
	}
}

// PointerUp ends the drag wherever the pointer is, the current bounds
// stand.
func (c *Control) PointerUp() {
	c.state = Idle
	c.handle = HandleNone
}

// CommitText applies a typed value to one bound. Invalid input leaves the
// arc untouched and reports false so the field can revert.
func (c *Control) CommitText(handle Handle, s string) bool {
	minutes, ok := ParseText(s)
	if !ok {
		return false
	}

	switch handle {
	case HandleStart:
		c.arc.Start = minutes
	case HandleEnd:
		c.arc.End = minutes
	default:
		return false
	}
	return true
}

// Dial couples the geometry with the two arc controls.
type Dial struct {
	CenterX float64
	CenterY float64
	Radius  float64

	Work  *Control
	Break *Control
}

func New(centerX, centerY, radius float64, work, brk Arc, snapMinutes int) *Dial {
	return &Dial{
		CenterX: centerX,
		CenterY: centerY,
		Radius:  radius,
		Work:    NewControl(work, snapMinutes),
		Break:   NewControl(brk, snapMinutes),
	}
}

// PointerAngle of a pointer position relative to this dial.
func (d *Dial) PointerAngle(x, y float64) float64 {
	return PointerAngle(x, y, d.CenterX, d.CenterY)
}

// Point on the dial circumference at the given angle.
func (d *Dial) Point(angle float64) (float64, float64) {
	rad := (NormalizeAngle(angle) - 90) * math.Pi / 180
	return d.CenterX + d.Radius*math.Cos(rad), d.CenterY + d.Radius*math.Sin(rad)
}

// ArcPath renders the SVG path for an arc, sweeping clockwise from start
// to end with the large-arc flag set when the interval exceeds half a day.
func (d *Dial) ArcPath(arc Arc) string {
	x1, y1 := d.Point(arc.StartAngle())
	x2, y2 := d.Point(arc.EndAngle())

	largeArc := 0
	if arc.Duration() > minutesPerDay/2 {
		largeArc = 1
	}

	return fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f",
		x1, y1, d.Radius, d.Radius, largeArc, x2, y2)
}
