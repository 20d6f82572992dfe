package zedit

import (
	"context"
	"time"
)

// CARET BLINKING

// Blinking returns true if the caret blink timer is running.
func (p *Paragraph) Blinking() bool {
	if p == nil {
		return false
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.blinkCtx != nil
}

// startBlink starts the blink timer unless it is already running. The mutex must be held.
func (p *Paragraph) startBlink() {
	if p.blinkCtx != nil {
		return
	}
	on, off := p.Config.CaretOnDuration, p.Config.CaretOffDuration
	if on <= 0 || off <= 0 {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.blinkCtx, p.blinkCancel = ctx, cancel
	go p.blink(ctx, on, off)
}

// stopBlink cancels the blink timer. The mutex must be held, so a step that is waiting for it
// sees the cancellation and does nothing.
func (p *Paragraph) stopBlink() {
	if p.blinkCtx == nil {
		return
	}
	p.blinkCancel()
	p.blinkCtx, p.blinkCancel = nil, nil
}

func (p *Paragraph) blink(ctx context.Context, on, off time.Duration) {
	for {
		if !sleepContext(ctx, on) || !p.blinkStep(ctx, false) {
			return
		}
		if !sleepContext(ctx, off) || !p.blinkStep(ctx, true) {
			return
		}
	}
}

// blinkStep shows or hides the caret at its last position. It returns false once ctx is done.
func (p *Paragraph) blinkStep(ctx context.Context, show bool) bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if ctx.Err() != nil {
		return false
	}
	switch {
	case show && !p.cursor.visible:
		p.cursor.Draw(p.renderer, p.cursor.left, p.cursor.bottom())
	case !show:
		p.hideCursor()
	}
	return true
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
