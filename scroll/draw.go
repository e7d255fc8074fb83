package scroll

import (
	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/printer"
)

const (
	trackRune  = '░'
	thumbRune  = '█'
	cornerRune = '╳'
)

// Draw implements View.Draw for a scrollable view: draws the
// scrollbars on the outer printer, then hands the child a printer
// scrolled and sized for the content.
func Draw(c *Core, p printer.Printer, childDraw func(printer.Printer)) {
	avail := c.availableSize()

	if c.showScrollbars {
		scrolling := c.IsScrolling()
		lengths := c.thumbLengths()
		offsets := c.thumbOffsets(lengths)

		st := p.Theme().HighlightInactive()
		if p.Focused {
			st = p.Theme().Highlight()
		}

		for _, o := range []geom.Orientation{geom.Horizontal, geom.Vertical} {
			if !scrolling.Get(o) {
				continue
			}
			// The bar sits on the last row (horizontal) or column
			// (vertical) of the outer area.
			start := p.Size.Sub(geom.V(1, 1)).WithAxis(o, 0)
			p.PrintLine(o, start, avail.Get(o), trackRune)

			thumb := thumbRune
			if c.grab != nil && c.grab.orientation == o {
				thumb = ' '
			}
			length := lengths.Get(o)
			offset := o.MakeVec(offsets.Get(o), 0)
			p.WithStyle(st, func(sp printer.Printer) {
				sp.PrintLine(o, start.Add(offset), length, thumb)
			})
		}

		if geom.Both(scrolling) {
			p.PrintRune(p.Size.Sub(geom.V(1, 1)), cornerRune)
		}
	}

	childDraw(p.Cropped(avail).ContentOffset(c.offset).InnerSize(c.innerSize))
}

// thumbLengths returns, per axis, the thumb length proportional to the
// visible share of the content, at least one cell.
func (c *Core) thumbLengths() geom.Vec2 {
	avail := c.availableSize()
	return avail.Mul(avail).Div(c.innerSize.Max(geom.V(1, 1))).Max(geom.V(1, 1))
}

// thumbOffsets returns, per axis, where the thumb starts on its track.
func (c *Core) thumbOffsets(lengths geom.Vec2) geom.Vec2 {
	avail := c.availableSize()
	steps := avail.Add(geom.V(1, 1)).Sub(lengths)
	maxOffset := c.innerSize.Sub(avail).Add(geom.V(1, 1))
	return steps.Mul(c.offset).Div(maxOffset)
}
