package engine

import (
	"github.com/dm23046/Oligo-boardgame/app/models"
	"github.com/dm23046/Oligo-boardgame/platform/board"
)

func (g *Game) modifier() models.Modifier {
	return board.Modifiers[g.modifierIdx]
}

// drawEvent reveals the next undrawn event of the active modifier. Once every
// event has been revealed, the next draw advances the cycle instead.
func (g *Game) drawEvent() {
	events := g.modifier().Events
	if len(events) == 0 {
		return
	}
	if g.drawnEvents >= len(events) {
		g.advanceModifier()
		return
	}
	g.activeEvents = append(g.activeEvents, events[g.drawnEvents])
	g.drawnEvents++
}

// advanceModifier moves to the next modifier, wrapping, and clears all
// revealed events.
func (g *Game) advanceModifier() {
	g.modifierIdx = (g.modifierIdx + 1) % len(board.Modifiers)
	g.activeEvents = nil
	g.drawnEvents = 0
}

func (g *Game) activeEventByEffect(effect models.EventEffect) *models.Event {
	for i := range g.activeEvents {
		if g.activeEvents[i].Effect == effect {
			return &g.activeEvents[i]
		}
	}
	return nil
}

// BorrowingLimit is the maximum voluntary borrow the active modifier allows
// against a purchase of the given category and price.
func (g *Game) BorrowingLimit(category models.Category, price int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return price * g.modifier().Limits.For(category) / 100
}
