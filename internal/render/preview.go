//go:build !noebiten

package render

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrPreviewClosed is returned by Update once the preview's context ends.
var ErrPreviewClosed = errors.New("preview closed")

// previewBackground shows through transparent parts of a frame.
var previewBackground = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}

// Preview shows the latest rendered frame in a window. It implements
// ebiten.Game.
type Preview struct {
	title   string
	width   int
	height  int
	pending image.Image
	frame   *ebiten.Image
	frames  int
	ctx     context.Context
	running bool
	mu      sync.RWMutex
}

// NewPreview creates a preview window of the given canvas size.
func NewPreview(title string, width, height int) *Preview {
	return &Preview{
		title:  title,
		width:  width,
		height: height,
	}
}

// SetFrame queues img for display. It is safe to call from any goroutine;
// the upload happens on the next Update.
func (p *Preview) SetFrame(img image.Image) {
	if img == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = img
}

// SetContext sets a context whose end closes the window.
func (p *Preview) SetContext(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ctx = ctx
}

// Frames returns how many frames have been uploaded.
func (p *Preview) Frames() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.frames
}

// Update implements ebiten.Game.Update.
func (p *Preview) Update() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctx != nil {
		select {
		case <-p.ctx.Done():
			return ErrPreviewClosed
		default:
		}
	}

	if p.pending == nil {
		return nil
	}
	img := p.pending
	p.pending = nil

	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if ok && p.frame != nil && p.frame.Bounds().Size() == b.Size() && rgba.Stride == 4*b.Dx() {
		p.frame.WritePixels(rgba.Pix)
	} else {
		if p.frame != nil {
			p.frame.Deallocate()
		}
		p.frame = ebiten.NewImageFromImage(img)
	}
	p.frames++
	return nil
}

// Draw implements ebiten.Game.Draw.
func (p *Preview) Draw(screen *ebiten.Image) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	screen.Fill(previewBackground)
	if p.frame != nil {
		screen.DrawImage(p.frame, nil)
	}
}

// Layout implements ebiten.Game.Layout.
func (p *Preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.width, p.height
}

// IsRunning reports whether the window is open.
func (p *Preview) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.running
}

// Run opens the window and blocks until it is closed or ctx ends. It must
// be called from the main goroutine.
func (p *Preview) Run(ctx context.Context) error {
	p.SetContext(ctx)
	ebiten.SetWindowSize(p.width, p.height)
	ebiten.SetWindowTitle(p.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	p.mu.Lock()
	p.running = true
	p.mu.Unlock()

	err := ebiten.RunGame(p)

	p.mu.Lock()
	p.running = false
	p.mu.Unlock()

	if errors.Is(err, ErrPreviewClosed) {
		return nil
	}
	return err
}
