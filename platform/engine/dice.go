package engine

import (
	"math/rand"
	"time"
)

// Roller produces single die faces 1..DiceSides. It is injected so tests can
// script rolls.
type Roller interface {
	Roll() int
}

type randRoller struct {
	rng *rand.Rand
}

// NewRoller returns the default randomness source.
func NewRoller() Roller {
	return &randRoller{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (r *randRoller) Roll() int {
	return r.rng.Intn(DiceSides) + 1
}

// FixedRoller replays a scripted sequence of faces, repeating the last face
// once the script runs out.
type FixedRoller struct {
	Faces []int
	next  int
}

func (f *FixedRoller) Roll() int {
	if len(f.Faces) == 0 {
		return 1
	}
	face := f.Faces[f.next]
	if f.next < len(f.Faces)-1 {
		f.next++
	}
	return face
}

// rollTwo returns a dice pair, honoring a one-shot forced total set through
// the debug hook. A forced total is split so it only reads as a double when
// no other split exists (2 and 12).
func (g *Game) rollTwo() (int, int) {
	if g.forcedRoll >= 2 && g.forcedRoll <= 12 {
		total := g.forcedRoll
		g.forcedRoll = 0
		d1 := total / 2
		d2 := total - d1
		if d1 == d2 && d1 > 1 && d2 < DiceSides {
			d1--
			d2++
		}
		return d1, d2
	}
	return g.roller.Roll(), g.roller.Roll()
}
