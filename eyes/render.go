package eyes

import "faceplate/irisgl"

// Renderer rasterizes the current eye pair into a target. It never mutates
// engine state; two renders with no tick in between produce identical output.
type Renderer struct {
	Background irisgl.Color
	EyeColor   irisgl.Color
}

// NewRenderer returns a renderer with the classic black/white OLED palette.
func NewRenderer() *Renderer {
	return &Renderer{
		Background: irisgl.RGB(0, 0, 0),
		EyeColor:   irisgl.RGB(255, 255, 255),
	}
}

// Render draws one complete frame of the controller's eye pair.
func (r *Renderer) Render(t irisgl.Target, c *Controller) {
	if t == nil || c == nil {
		return
	}
	t.Clear(r.Background)
	r.drawEye(t, c.Left())
	r.drawEye(t, c.Right())
}

func (r *Renderer) drawEye(t irisgl.Target, e *EyeModel) {
	w := int(e.Width() + 0.5)
	h := int(e.Height() + 0.5)
	if w <= 0 || h <= 0 {
		return
	}
	x := int(e.CenterX() - e.Width()/2 + 0.5)
	y := int(e.CenterY() - e.Height()/2 + 0.5)
	rad := int(e.CornerRadius() + 0.5)

	irisgl.FillRoundRect(t, x, y, w, h, rad, r.EyeColor)

	// Eyelids are background-colored rectangles overlaid from the top and
	// bottom per coverage fraction.
	top, bottom := e.Lids()
	if topH := int(top*float64(h) + 0.5); topH > 0 {
		irisgl.FillRect(t, x, y, w, topH, r.Background)
	}
	if botH := int(bottom*float64(h) + 0.5); botH > 0 {
		irisgl.FillRect(t, x, y+h-botH, w, botH, r.Background)
	}
}
