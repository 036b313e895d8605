package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: invalid viewport dimensions")
	ErrResizeInFlight    = errors.New("renderer: render target resized while a frame is in flight")
	ErrNoRenderTarget    = errors.New("renderer: no render target allocated")
)
