package overlay

// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

import (
	"github.com/npillmayer/pilcrow/core/invisible"
	"github.com/npillmayer/pilcrow/core/prefs"
	"github.com/npillmayer/pilcrow/engine/layout"
)

// Controller tracks the visibility preferences for invisible characters
// and drives invalidation of the host's display. While invisibles are
// shown it holds a subscription on the per-kind preference keys, so that
// toggling a single kind refreshes the display; the subscription is
// dropped as soon as invisibles are hidden.
//
// Hosts call Invalidate whenever the show-invisibles preference flips,
// and Release before discarding the controller.
type Controller struct {
	engine        layout.Engine
	regs          *prefs.Registers
	inv           layout.Invalidator
	shows         bool
	showsControls bool
	sub           *prefs.Subscription
}

// NewController creates a controller and reconciles it with the current
// preference state.
func NewController(eng layout.Engine, regs *prefs.Registers, inv layout.Invalidator) *Controller {
	ctl := &Controller{
		engine: eng,
		regs:   regs,
		inv:    inv,
	}
	ctl.Invalidate()
	return ctl
}

// ShowsInvisibles reports whether invisible characters are currently
// shown.
func (ctl *Controller) ShowsInvisibles() bool {
	return ctl.shows
}

// ShowsControls reports whether control character placeholders are
// currently shown.
func (ctl *Controller) ShowsControls() bool {
	return ctl.showsControls
}

// Invalidate reconciles the controller with the preference state. The
// full text range is invalidated for display; if visibility of control
// characters changed, additionally for layout, since control glyph
// placeholders alter glyph advances.
func (ctl *Controller) Invalidate() {
	full := ctl.engine.FullRange()
	ctl.inv.InvalidateDisplay(full)
	ctl.shows = ctl.regs.Bool(invisible.PrefKeyShow)
	showsControls := ctl.shows && ctl.regs.Bool(invisible.PrefKeyControl)
	if showsControls != ctl.showsControls {
		ctl.showsControls = showsControls
		ctl.inv.InvalidateLayout(full)
	}
	if ctl.shows && ctl.sub == nil {
		tracer().Debugf("invisibles shown, subscribing to preference changes")
		ctl.sub = ctl.regs.Subscribe(invisible.ObservationKeys(), func(string) {
			ctl.Invalidate()
		})
	} else if !ctl.shows && ctl.sub != nil {
		tracer().Debugf("invisibles hidden, dropping preference subscription")
		ctl.sub.Cancel()
		ctl.sub = nil
	}
}

// Release drops the controller's preference subscription, if any.
// Safe to call more than once.
func (ctl *Controller) Release() {
	if ctl.sub != nil {
		ctl.sub.Cancel()
		ctl.sub = nil
	}
}

// ShouldRenderControlGlyphPlaceholder decides if the glyph for a control
// character is to be replaced by a placeholder: control placeholders
// must be shown, the layout engine must propose to give the glyph no
// advance, and the character must classify as a control character.
func (ctl *Controller) ShouldRenderControlGlyphPlaceholder(charIndex int,
	proposed layout.ControlAction) bool {
	//
	return ctl.showsControls &&
		proposed.Has(layout.ActionZeroAdvance) &&
		invisible.Classify(ctl.engine.CharAt(charIndex)) == invisible.OtherControl
}
