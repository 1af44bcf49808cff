// Package encounter contains the domain logic for the boss helper: the
// encounter State and the Tracker state machine that turns host events
// into attack counts and a predicted special attack.
//
// Maintenance notes:
//   - The Tracker is not safe for concurrent use. The application routes
//     every event through its single command-loop goroutine, so all
//     mutations happen on one goroutine. Keep it that way rather than
//     adding locks here.
//   - The Indicator is driven only from updateIndicator, removeIndicator
//     and Stop. Implementations must tolerate Hide when nothing is shown.
package encounter

import (
	"log/slog"

	"fyne.io/fyne/v2"
)

// Indicator is the on-screen counter the tracker drives.
type Indicator interface {
	Show(count int, icon fyne.Resource)
	Update(count int)
	Hide()
}

// IconLookup resolves the icon shown for a predicted special. It must
// never return nil.
type IconLookup interface {
	Icon(Special) fyne.Resource
}

// State is the encounter state. Boss is a back-reference only.
type State struct {
	Boss           *NPC
	AttackCount    int
	NextSpecial    Special
	LastProjectile string
}

// Tracker applies host events to State and keeps the Indicator in sync.
type Tracker struct {
	state     State
	indicator Indicator
	icons     IconLookup
	shown     bool

	// OnSpecialDue, if set, is called when the attack count wraps to zero
	// through a regular attack.
	OnSpecialDue func(Special)
}

// NewTracker creates a dormant tracker.
func NewTracker(indicator Indicator, icons IconLookup) *Tracker {
	return &Tracker{indicator: indicator, icons: icons}
}

var handlers = map[Kind]func(*Tracker, Event){
	KindNPCSpawned: func(t *Tracker, ev Event) { t.OnNPCSpawned(ev.NPC, ev.NPCID) },
	KindNPCChanged: func(t *Tracker, ev Event) { t.OnNPCChanged(ev.NPC, ev.NPCID) },
	KindNPCDespawned: func(t *Tracker, ev Event) {
		t.OnNPCDespawned(ev.NPC)
	},
	KindGameObjectSpawned: func(t *Tracker, ev Event) {
		t.OnGameObjectSpawned(ev.ObjectID)
	},
	KindGraphicsObjectCreated: func(t *Tracker, ev Event) {
		t.OnGraphicsObjectCreated(ev.ObjectID)
	},
	KindProjectileMoved: func(t *Tracker, ev Event) {
		t.OnProjectileMoved(ev.Projectile)
	},
}

// Dispatch routes ev to its handler. Unknown kinds are ignored.
func (t *Tracker) Dispatch(ev Event) {
	if h, ok := handlers[ev.Kind]; ok {
		h(t, ev)
	}
}

// State returns a copy of the current state.
func (t *Tracker) State() State {
	return t.state
}

// Active reports whether a boss is being tracked.
func (t *Tracker) Active() bool {
	return t.state.Boss != nil
}

// Showing reports whether the tracker currently has an indicator up.
func (t *Tracker) Showing() bool {
	return t.shown
}

// OnNPCSpawned starts tracking a sleeping boss. id is the form the NPC
// spawned in.
func (t *Tracker) OnNPCSpawned(npc *NPC, id int) {
	if npc == nil || id != AsleepID {
		return
	}
	t.state.Boss = npc
}

// OnNPCChanged resets the cycle when the boss wakes up. id is the form
// the NPC changed into.
func (t *Tracker) OnNPCChanged(npc *NPC, id int) {
	if npc == nil || id != AwakeID {
		return
	}
	slog.Debug("boss awoke", "index", npc.Index)
	t.state.Boss = npc
	t.state.AttackCount = 0
	t.state.NextSpecial = SpecialUnknown
	t.updateIndicator(false)
}

// OnGameObjectSpawned handles the quickfire barrage marker.
func (t *Tracker) OnGameObjectSpawned(id int) {
	if id != QuickfireBarrageObjectID {
		return
	}
	slog.Debug("matched event", "event", "VORKATH_POISON_POOL_QUICKFIRE_BARRAGE")
	t.state.AttackCount = 0
	t.state.NextSpecial = SpecialIceBarrage
	t.updateIndicator(false)
}

// OnGraphicsObjectCreated counts the high damage dragonfire.
func (t *Tracker) OnGraphicsObjectCreated(id int) {
	if id != HighDamageFireGraphicID {
		return
	}
	slog.Debug("matched event", "event", "VORKATH_HIGH_DAMAGE_DRAGONFIRE")
	t.state.AttackCount++
	t.updateIndicator(true)
}

// OnNPCDespawned resets everything when the tracked boss leaves.
func (t *Tracker) OnNPCDespawned(npc *NPC) {
	if npc == nil || npc != t.state.Boss {
		return
	}
	slog.Debug("boss despawned", "index", npc.Index)
	t.Reset()
}

// OnProjectileMoved counts regular attack projectiles and handles the
// freeze that precedes the poison pool special. A projectile is counted
// once no matter how many move callbacks it produces.
func (t *Tracker) OnProjectileMoved(p *Projectile) {
	if p == nil || p.Signature == "" || p.Signature == t.state.LastProjectile {
		return
	}

	if name, ok := regularProjectiles[p.ID]; ok {
		slog.Debug("matched event", "event", name)
		t.state.LastProjectile = p.Signature
		t.state.AttackCount++
		t.updateIndicator(true)
		return
	}

	if p.ID == ProjectileFreeze {
		slog.Debug("matched event", "event", "VORKATH_FREEZE")
		t.state.LastProjectile = p.Signature
		t.state.AttackCount = 0
		t.state.NextSpecial = SpecialPoisonPool
		t.updateIndicator(false)
	}
}

// Reset returns the tracker to its dormant state and hides the indicator.
func (t *Tracker) Reset() {
	t.state.Boss = nil
	t.state.AttackCount = 0
	t.state.NextSpecial = SpecialUnknown
	t.removeIndicator()
}

// Stop releases the indicator. It is safe to call in any state.
func (t *Tracker) Stop() {
	t.removeIndicator()
}

func (t *Tracker) updateIndicator(counted bool) {
	t.state.AttackCount %= CycleLength
	if t.state.AttackCount == 0 {
		t.removeIndicator()
		t.indicator.Show(0, t.icons.Icon(t.state.NextSpecial))
		t.shown = true
		if counted && t.OnSpecialDue != nil {
			t.OnSpecialDue(t.state.NextSpecial)
		}
		return
	}
	if t.shown {
		t.indicator.Update(t.state.AttackCount)
	}
}

func (t *Tracker) removeIndicator() {
	t.indicator.Hide()
	t.shown = false
}
