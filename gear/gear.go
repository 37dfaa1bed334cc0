// Package gear implements the draggable time-offset control. A drag session
// accumulates horizontal pointer movement and quantizes it into quarter-hour
// steps; the owning view is notified only when the quantized step count
// crosses a boundary, never on sub-threshold movement.
package gear

import (
	"fmt"
	"strconv"
)

const (
	// UnitsPerStep is the drag distance that advances the offset by one
	// quarter-hour step. Dragging left (negative delta) moves time forward.
	UnitsPerStep = 10
	// StepMinutes is the quantization step of the emitted offset.
	StepMinutes = 15
	// RulerWrap is the period, in drag units, at which the tick ruler
	// repeats. Cosmetic only.
	RulerWrap = 400
)

// Gear converts horizontal drag movement into a signed time offset in
// minutes, always a multiple of StepMinutes. The zero value is not usable;
// construct with New.
type Gear struct {
	onChange func(offsetMinutes int)

	dragging    bool
	lastX       int
	accumulated int // cumulative drag units, signed
	lastSteps   int // last emitted quarter-hour step count
}

// New returns a Gear reporting offset changes through onChange. A nil
// callback is allowed; the gear then only tracks state.
func New(onChange func(offsetMinutes int)) *Gear {
	return &Gear{onChange: onChange}
}

// StartDrag begins a drag session at position x (in drag units).
func (g *Gear) StartDrag(x int) {
	g.dragging = true
	g.lastX = x
}

// Drag continues an active session. The delta from the previous position is
// accumulated and the quantized step count re-derived; the callback fires
// only when that count changes. Ignored when no session is active.
func (g *Gear) Drag(x int) {
	if !g.dragging {
		return
	}
	g.accumulated += x - g.lastX
	g.lastX = x
	g.emitIfChanged()
}

// EndDrag deactivates the session. The accumulated offset and last emitted
// value persist until Reset.
func (g *Gear) EndDrag() {
	g.dragging = false
}

// Dragging reports whether a drag session is active.
func (g *Gear) Dragging() bool {
	return g.dragging
}

// Scrub moves the offset by a whole number of quarter-hour steps without a
// pointer session, e.g. from arrow keys or a wheel.
func (g *Gear) Scrub(steps int) {
	g.accumulated -= steps * UnitsPerStep
	g.emitIfChanged()
}

// Reset zeroes the accumulated offset and re-emits zero minutes, restoring
// the no-shift state. It does not begin a drag session.
func (g *Gear) Reset() {
	g.dragging = false
	g.accumulated = 0
	g.lastSteps = 0
	if g.onChange != nil {
		g.onChange(0)
	}
}

// Steps returns the current quantized quarter-hour step count.
func (g *Gear) Steps() int {
	return quantize(g.accumulated)
}

// Offset returns the current offset in minutes, a multiple of StepMinutes.
func (g *Gear) Offset() int {
	return quantize(g.accumulated) * StepMinutes
}

// Phase returns the accumulated drag distance wrapped to [0, RulerWrap),
// used to scroll the tick ruler.
func (g *Gear) Phase() int {
	return ((g.accumulated % RulerWrap) + RulerWrap) % RulerWrap
}

// Ruler renders a tick-mark line of the given width, scrolled by the current
// phase. Every fourth cell carries a major tick.
func (g *Gear) Ruler(width int) string {
	if width <= 0 {
		return ""
	}
	ticks := make([]rune, width)
	for i := range ticks {
		if (i+g.Phase())%4 == 0 {
			ticks[i] = '|'
		} else {
			ticks[i] = '\''
		}
	}
	return string(ticks)
}

func (g *Gear) emitIfChanged() {
	steps := quantize(g.accumulated)
	if steps == g.lastSteps {
		return
	}
	g.lastSteps = steps
	if g.onChange != nil {
		g.onChange(steps * StepMinutes)
	}
}

// quantize derives the quarter-hour step count from accumulated drag units:
// floor(-accumulated / UnitsPerStep). Leftward drag (negative accumulation)
// yields positive steps. Floor, not truncation, so that -5 units already
// rounds down to a full negative step, matching the source behavior.
func quantize(accumulated int) int {
	n := -accumulated
	if n >= 0 {
		return n / UnitsPerStep
	}
	return -((-n + UnitsPerStep - 1) / UnitsPerStep)
}

// FormatTimeChange renders a nonzero offset as a human-readable delta:
// "1d 1h" for magnitudes of a day or more, "-3h" below that. Fractional
// hours from quarter steps render trimmed ("1.25h"). The zero offset is
// never formatted; the caller shows a neutral indicator instead.
func FormatTimeChange(offsetMinutes int) string {
	hours := float64(offsetMinutes) / 60
	sign := ""
	if hours < 0 {
		sign = "-"
		hours = -hours
	}
	if hours >= 24 {
		days := int(hours / 24)
		return fmt.Sprintf("%s%dd %sh", sign, days, formatHours(hours-float64(days)*24))
	}
	return fmt.Sprintf("%s%sh", sign, formatHours(hours))
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
