//go:build noebiten

package render

import (
	"context"
	"errors"
	"image"
)

// ErrPreviewClosed is returned by Update once the preview's context ends.
var ErrPreviewClosed = errors.New("preview closed")

// ErrPreviewUnavailable is returned by Run in builds without a window
// system.
var ErrPreviewUnavailable = errors.New("preview not available in this build")

// Preview is a placeholder in noebiten builds. Frames are dropped.
type Preview struct{}

// NewPreview returns a placeholder preview.
func NewPreview(title string, width, height int) *Preview {
	return &Preview{}
}

// SetFrame discards img.
func (p *Preview) SetFrame(img image.Image) {}

// Frames always returns 0.
func (p *Preview) Frames() int { return 0 }

// Run always fails with ErrPreviewUnavailable.
func (p *Preview) Run(ctx context.Context) error {
	return ErrPreviewUnavailable
}
