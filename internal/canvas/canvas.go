// Package canvas defines the 2D drawing surface the visualizations render
// onto, together with its geometry, path and paint types.
//
// Backends live in subpackages: ebitencanvas draws into a live ebiten
// window and raster draws into an in-memory RGBA image. Recorder captures
// draw calls for inspection.
package canvas

import "image/color"

// Canvas is a 2D drawing surface with a save/restore transform stack.
type Canvas interface {
	// Size returns the drawable extent in canvas units.
	Size() Size

	// Save pushes the current transform.
	Save()

	// SaveLayerShadow pushes the current transform and starts an offscreen
	// layer. The matching Restore composites the layer, with its drop
	// shadow beneath it, onto the parent in one step.
	SaveLayerShadow(shadow Shadow)

	// Restore pops the most recent Save or SaveLayerShadow.
	Restore()

	// Translate moves the origin by (dx, dy).
	Translate(dx, dy float64)

	// Rotate turns the coordinate system clockwise by radians.
	Rotate(radians float64)

	// Clear fills the whole surface with c, ignoring the transform.
	Clear(c color.RGBA)

	// DrawPath fills or strokes path with paint.
	DrawPath(path *Path, paint Paint)

	// DrawText draws text centred on at.
	DrawText(text string, at Offset, style TextStyle)
}

// Shadow describes a drop shadow applied by SaveLayerShadow.
type Shadow struct {
	Color  color.RGBA
	Radius float64
	Offset Offset
}

// TextStyle describes how DrawText renders a string. Backends that cannot
// load Font fall back to their built-in face scaled to Size.
type TextStyle struct {
	Font  string
	Size  float64
	Color color.RGBA
}

// WithTransform runs fn between Save and Restore, so transforms applied
// inside fn are reverted when it returns.
func WithTransform(c Canvas, fn func()) {
	c.Save()
	defer c.Restore()
	fn()
}

// WithShadow runs fn inside a shadow layer that is composited when fn returns.
func WithShadow(c Canvas, shadow Shadow, fn func()) {
	c.SaveLayerShadow(shadow)
	defer c.Restore()
	fn()
}
