package reveal

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
)

// CountUp animates a number from zero towards Target on first reveal.
// Every Interval the value grows by Step, clamped at Target; the animation
// stops after Duration even if Target was not reached.
type CountUp struct {
	Target   float64
	Step     float64
	Interval time.Duration
	Duration time.Duration
}

// CoverageCountUp is the "40k m² coverage" stat: +1 every 20ms for 1s
var CoverageCountUp = CountUp{Target: 40, Step: 1, Interval: 20 * time.Millisecond, Duration: time.Second}

// Ticks is the number of increments that fit in Duration
func (c CountUp) Ticks() int {
	if c.Interval <= 0 || c.Duration <= 0 {
		return 0
	}
	return int(c.Duration / c.Interval)
}

// Frames returns every displayed value after each tick, starting above zero.
// Values never decrease and never exceed Target.
func (c CountUp) Frames() []float64 {
	ticks := c.Ticks()
	if ticks == 0 || c.Step <= 0 || c.Target <= 0 {
		return nil
	}
	frames := make([]float64, 0, ticks)
	v := 0.0
	for i := 0; i < ticks; i++ {
		if v < c.Target {
			v += c.Step
			if v > c.Target {
				v = c.Target
			}
		}
		frames = append(frames, v)
	}
	return frames
}

// Final is the value shown when the animation ends (and without JS)
func (c CountUp) Final() float64 {
	frames := c.Frames()
	if len(frames) == 0 {
		return 0
	}
	return frames[len(frames)-1]
}

// Attrs carries the animation parameters to the script
func (c CountUp) Attrs() g.Node {
	return g.Group([]g.Node{
		g.Attr("data-count-to", formatNumber(c.Final())),
		g.Attr("data-count-step", formatNumber(c.Step)),
		g.Attr("data-count-interval", strconv.FormatInt(c.Interval.Milliseconds(), 10)),
		g.Attr("data-count-duration", strconv.FormatInt(c.Duration.Milliseconds(), 10)),
	})
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
