/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package prefs

import (
	"strconv"

	"github.com/npillmayer/pilcrow/core/invisible"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pilcrow.core'.
func tracer() tracing.Trace {
	return tracing.Select("pilcrow.core")
}

// Registers hold key-addressed boolean preferences, with optional grouped
// (scoped) overrides. Registers are not safe for concurrent use; they live
// on the thread that owns the rendering state.
type Registers struct {
	base       map[string]bool
	groups     *prefsGroup
	grouplevel int
	subs       []*Subscription
}

type prefsGroup struct {
	prefs map[string]bool
	level int
	next  *prefsGroup
}

// NewRegisters creates preference registers with default values for the
// well-known invisibles keys.
func NewRegisters() *Registers {
	regs := &Registers{base: make(map[string]bool)}
	initPrefs(regs.base)
	return regs
}

func initPrefs(p map[string]bool) {
	p[invisible.PrefKeyShow] = false
	p[invisible.PrefKeyNewLine] = true
	p[invisible.PrefKeyTab] = true
	p[invisible.PrefKeySpace] = true
	p[invisible.PrefKeyWhitespace] = false
	p[invisible.PrefKeyFullwidthSpace] = false
	p[invisible.PrefKeyControl] = false
}

// InitFromConfig seeds the well-known keys from the global (schuko)
// configuration. Unset or unparsable values keep their defaults.
func (regs *Registers) InitFromConfig() {
	keys := append([]string{invisible.PrefKeyShow}, invisible.ObservationKeys()...)
	for _, key := range keys {
		s := gconf.GetString(key)
		if s == "" {
			continue
		}
		v, err := strconv.ParseBool(s)
		if err != nil {
			tracer().Errorf("configuration value for %s is not boolean: %q", key, s)
			continue
		}
		regs.base[key] = v
	}
}

// Begingroup opens a scope for transient preference overrides.
func (regs *Registers) Begingroup() {
	regs.grouplevel++
}

// Endgroup closes the most recent override scope, dropping its overrides.
func (regs *Registers) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

// Push sets a preference within the current scope. Outside of any group it
// is equivalent to Set, except that no subscribers are notified.
func (regs *Registers) Push(key string, value bool) {
	if regs.grouplevel > 0 {
		g := regs.groups
		if g == nil || g.level < regs.grouplevel {
			g = &prefsGroup{
				prefs: make(map[string]bool),
				level: regs.grouplevel,
				next:  regs.groups,
			}
			regs.groups = g
		}
		g.prefs[key] = value
	} else {
		regs.base[key] = value
	}
}

// Bool returns the value of a boolean preference. Unknown keys are false.
func (regs *Registers) Bool(key string) bool {
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			if v, ok := g.prefs[key]; ok {
				return v
			}
		}
	}
	return regs.base[key]
}

// Set changes a base preference and notifies subscribers watching key.
// Subscribers are invoked inline, on the caller's thread.
func (regs *Registers) Set(key string, value bool) {
	old := regs.base[key]
	regs.base[key] = value
	if old == value {
		return
	}
	tracer().Debugf("preference %s changes to %v", key, value)
	for _, sub := range regs.snapshotSubs() {
		if sub.watches(key) {
			sub.fn(key)
		}
	}
}

// snapshotSubs copies the subscriber list, so that callbacks may cancel or
// subscribe without corrupting the iteration.
func (regs *Registers) snapshotSubs() []*Subscription {
	if len(regs.subs) == 0 {
		return nil
	}
	snapshot := make([]*Subscription, len(regs.subs))
	copy(snapshot, regs.subs)
	return snapshot
}

// --- Subscriptions ---------------------------------------------------------

// Subscription is a standing observation of a set of preference keys.
type Subscription struct {
	keys map[string]bool
	fn   func(key string)
	regs *Registers
}

// Subscribe registers fn to be called whenever one of the given keys
// changes. Duplicate keys are observed once. The returned subscription
// stays active until cancelled.
func (regs *Registers) Subscribe(keys []string, fn func(key string)) *Subscription {
	sub := &Subscription{
		keys: make(map[string]bool, len(keys)),
		fn:   fn,
		regs: regs,
	}
	for _, key := range keys {
		sub.keys[key] = true
	}
	regs.subs = append(regs.subs, sub)
	return sub
}

func (sub *Subscription) watches(key string) bool {
	return sub.keys[key]
}

// Cancel removes the subscription. Cancelling twice is harmless.
func (sub *Subscription) Cancel() {
	if sub.regs == nil {
		return
	}
	regs := sub.regs
	sub.regs = nil
	for i, s := range regs.subs {
		if s == sub {
			regs.subs = append(regs.subs[:i], regs.subs[i+1:]...)
			break
		}
	}
}

// SubscriptionCount returns the number of active subscriptions.
func (regs *Registers) SubscriptionCount() int {
	return len(regs.subs)
}
