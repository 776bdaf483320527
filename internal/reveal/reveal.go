// Package reveal models the one-shot "fade in when scrolled into view" effect
// shared by every landing section, and the count-up used by the specs stats.
//
// Latch is the reference model of the rule the page script applies per
// element (initReveal in site.js): reveal on the first intersection whose
// ratio reaches the threshold, then stop observing. Attrs emits the latch's
// clamped threshold, so the markup and the model cannot disagree.
package reveal

import (
	"strconv"
	"sync"

	g "maragu.dev/gomponents"
)

// Section thresholds: the intersection ratio at which a section reveals
const (
	HeroThreshold           = 0.1
	ProblemSpaceThreshold   = 0.2
	CoreFeaturesThreshold   = 0.2
	TechnicalSpecsThreshold = 0.3
	ContactFormThreshold    = 0.2
	FooterThreshold         = 0.2
)

// Latch is a one-way visibility flag. Once visible it never reverts.
type Latch struct {
	mu        sync.Mutex
	threshold float64
	visible   bool
}

// NewLatch clamps threshold into [0, 1]
func NewLatch(threshold float64) *Latch {
	return &Latch{threshold: clamp(threshold)}
}

// Observe feeds one intersection ratio and reports visibility afterwards
func (l *Latch) Observe(ratio float64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.visible && ratio > 0 && ratio >= l.threshold {
		l.visible = true
	}
	return l.visible
}

func (l *Latch) Visible() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.visible
}

func (l *Latch) Threshold() float64 {
	return l.threshold
}

// Attrs marks an element for the reveal script with the latch's threshold.
// Revealed elements get data-revealed="true" exactly once.
func (l *Latch) Attrs() g.Node {
	return g.Group([]g.Node{
		g.Attr("data-reveal", ""),
		g.Attr("data-reveal-threshold", strconv.FormatFloat(l.Threshold(), 'f', -1, 64)),
	})
}

// Attrs marks a section that reveals at threshold
func Attrs(threshold float64) g.Node {
	return NewLatch(threshold).Attrs()
}

// Delay staggers child transitions inside a revealing section
func Delay(ms int) g.Node {
	if ms <= 0 {
		return nil
	}
	return g.Attr("style", "transition-delay: "+strconv.Itoa(ms)+"ms")
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
