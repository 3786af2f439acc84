package dial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleToMinutes(t *testing.T) {
	assert.Equal(t, 0, AngleToMinutes(0, 1))
	assert.Equal(t, 360, AngleToMinutes(90, 1))  // 06:00
	assert.Equal(t, 720, AngleToMinutes(180, 1)) // 12:00
	assert.Equal(t, 0, AngleToMinutes(360, 1))
	assert.Equal(t, 720, AngleToMinutes(-180, 1))

	// quarter-hour snapping
	assert.Equal(t, 360, AngleToMinutes(91, 15))
	assert.Equal(t, 375, AngleToMinutes(93, 15))
}

func TestMinutesToAngle(t *testing.T) {
	assert.Equal(t, 0.0, MinutesToAngle(0))
	assert.Equal(t, 90.0, MinutesToAngle(360))
	assert.Equal(t, 180.0, MinutesToAngle(720))
	assert.Equal(t, 90.0, MinutesToAngle(360+1440))
}

func TestAngleRoundTrip(t *testing.T) {
	for _, snap := range []int{1, 15} {
		granularity := float64(snap) / 1440 * 360
		for a := 0.0; a < 360; a += 7.3 {
			back := MinutesToAngle(AngleToMinutes(a, snap))
			diff := math.Abs(back - a)
			if diff > 180 {
				diff = 360 - diff
			}
			assert.LessOrEqual(t, diff, granularity/2+1e-9, "angle %.1f snap %d", a, snap)
		}
	}
}

func TestPointerAngle(t *testing.T) {
	// straight up from center is 12:00
	assert.InDelta(t, 0, PointerAngle(100, 0, 100, 100), 1e-9)
	// straight right is 06:00
	assert.InDelta(t, 90, PointerAngle(200, 100, 100, 100), 1e-9)
	// straight down is 18:00's opposite, 180 degrees
	assert.InDelta(t, 180, PointerAngle(100, 200, 100, 100), 1e-9)
	assert.InDelta(t, 270, PointerAngle(0, 100, 100, 100), 1e-9)
}

func TestParseText(t *testing.T) {
	m, ok := ParseText("09:30")
	assert.True(t, ok)
	assert.Equal(t, 570, m)

	m, ok = ParseText("00:00")
	assert.True(t, ok)
	assert.Equal(t, 0, m)

	m, ok = ParseText("23:59")
	assert.True(t, ok)
	assert.Equal(t, 1439, m)

	for _, bad := range []string{"9:30", "09:3", "24:00", "12:60", "12.30", " 09:30", "09:30 ", "aa:bb"} {
		_, ok := ParseText(bad)
		assert.False(t, ok, bad)
	}
}

func TestControlHandleDrag(t *testing.T) {
	c := NewControl(Arc{Start: 9 * 60, End: 17 * 60}, 15)

	assert.Equal(t, Idle, c.State())

	c.PointerDown(HandleStart, MinutesToAngle(9*60))
	assert.Equal(t, Dragging, c.State())

	c.PointerMove(MinutesToAngle(10 * 60))
	assert.Equal(t, 10*60, c.Arc().Start)
	assert.Equal(t, 17*60, c.Arc().End)

	// release anywhere commits
	c.PointerUp()
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, 10*60, c.Arc().Start)

	// moves while idle are ignored
	c.PointerMove(MinutesToAngle(3 * 60))
	assert.Equal(t, 10*60, c.Arc().Start)
}

func TestControlArcDragPreservesDuration(t *testing.T) {
	for _, snap := range []int{1, 15} {
		c := NewControl(Arc{Start: 9 * 60, End: 17 * 60}, snap)
		before := c.Arc().Duration()

		c.PointerDown(HandleArc, 45)
		for _, delta := range []float64{10, 33.5, 120, 250, 359} {
			c.PointerMove(45 + delta)
			assert.Equal(t, before, c.Arc().Duration(), "snap %d delta %.1f", snap, delta)
		}
		c.PointerUp()
	}
}

func TestControlArcDragWrapsMidnight(t *testing.T) {
	c := NewControl(Arc{Start: 22 * 60, End: 23 * 60}, 1)

	c.PointerDown(HandleArc, MinutesToAngle(22*60+30))
	c.PointerMove(MinutesToAngle(23*60 + 45))
	c.PointerUp()

	assert.Equal(t, 60, c.Arc().Duration())
	assert.Equal(t, 23*60+15, c.Arc().Start)
	assert.Equal(t, 15, c.Arc().End)
}

func TestControlCommitText(t *testing.T) {
	c := NewControl(Arc{Start: 9 * 60, End: 17 * 60}, 15)

	assert.True(t, c.CommitText(HandleStart, "08:45"))
	assert.Equal(t, 8*60+45, c.Arc().Start)

	// invalid input leaves the bound untouched
	assert.False(t, c.CommitText(HandleStart, "8:45"))
	assert.Equal(t, 8*60+45, c.Arc().Start)

	assert.False(t, c.CommitText(HandleArc, "10:00"))
}

func TestDialArcPath(t *testing.T) {
	d := New(100, 100, 80, Arc{Start: 9 * 60, End: 17 * 60}, Arc{Start: 12 * 60, End: 13 * 60}, 15)

	// 06:00 sits at the right edge of the circle
	x, y := d.Point(90)
	assert.InDelta(t, 180, x, 1e-9)
	assert.InDelta(t, 100, y, 1e-9)

	short := d.ArcPath(Arc{Start: 9 * 60, End: 17 * 60})
	assert.Contains(t, short, "A 80.00 80.00 0 0 1")

	long := d.ArcPath(Arc{Start: 17 * 60, End: 9 * 60})
	assert.Contains(t, long, "A 80.00 80.00 0 1 1")
}
