package interrupt

import (
	"math"

	"golang.org/x/exp/constraints"

	"omibyte.io/cortexm/peripheral"
)

// invalid never addresses a slot: the largest table has its last peripheral
// slot one below it.
const invalid IRQ = math.MaxInt16

var _ peripheral.Interrupt = Line{}

// Line is one interrupt of a controller.
type Line struct {
	c   *Controller
	irq IRQ
}

// LineOf returns the line irq names on c. irq may be any signed integer type,
// including a chip's own enumeration of its interrupts. Values that do not
// fit an IRQ give a line that is never valid.
func LineOf[T constraints.Signed](c *Controller, irq T) Line {
	if int64(irq) < math.MinInt16 || int64(irq) > math.MaxInt16 {
		return Line{c: c, irq: invalid}
	}
	return Line{c: c, irq: IRQ(irq)}
}

func (l Line) IRQ() IRQ {
	return l.irq
}

func (l Line) Enable(handler func()) {
	l.c.Enable(l.irq, handler)
}

func (l Line) Disable() {
	l.c.Disable(l.irq)
}

func (l Line) Verify(handler func()) bool {
	return l.c.Verify(l.irq, handler)
}

func (l Line) SetPriority(priority uint8) {
	l.c.SetPriority(l.irq, priority)
}
