package engine

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dm23046/Oligo-boardgame/app/models"
	"github.com/dm23046/Oligo-boardgame/platform/board"
)

type GameState string

const (
	StateSetup    GameState = "setup"
	StatePlaying  GameState = "playing"
	StateFinished GameState = "finished"
)

// MoneyChange is a transient animation hint emitted after cash mutations. It
// carries no engine semantics.
type MoneyChange struct {
	PlayerId int    `json:"player_id"`
	Amount   int    `json:"amount"`
	Reason   string `json:"reason"`
}

// PropertyOffer is the pending buy-or-pass decision for one player.
type PropertyOffer struct {
	Card     models.Card `json:"card"`
	PlayerId int         `json:"player_id"`
}

// ForcedSale blocks a player until they liquidate cards. Required is zero for
// single-sale modes (bingo outcomes); otherwise it is the amount still owed.
type ForcedSale struct {
	PlayerId int     `json:"player_id"`
	Reason   string  `json:"reason"`
	Fraction float64 `json:"fraction"`
	Required int     `json:"required"`
}

// FreePickState is the open pick-any-pool decision for one player.
type FreePickState struct {
	PlayerId int             `json:"player_id"`
	Pool     models.Category `json:"pool,omitempty"`
}

// Game is one running game. All operations are serialized behind one mutex:
// a settlement chain always runs to completion before another call observes
// the state.
type Game struct {
	mu sync.Mutex

	state   GameState
	players []*Player
	current int

	pending      *PropertyOffer
	freePick     *FreePickState
	forcedSale   *ForcedSale
	bingoPlayer  int
	casinoPlayer int
	duelPlayer   int

	modifierIdx  int
	drawnEvents  int
	activeEvents []models.Event

	roller     Roller
	rng        *rand.Rand
	forcedRoll int

	changes []MoneyChange
	winner  int
}

type Option func(*Game)

// WithRoller swaps the dice source, used by tests and scripted games.
func WithRoller(r Roller) Option {
	return func(g *Game) { g.roller = r }
}

// WithRand swaps the draw-pool sampling source.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

func NewGame(opts ...Option) *Game {
	g := &Game{
		state:  StateSetup,
		roller: NewRoller(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// InitializePlayers creates the seat ledgers. The count is clamped to the
// 2..6 range. Only valid while in setup.
func (g *Game) InitializePlayers(count int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateSetup {
		return errors.New("players can only be initialized during setup")
	}
	g.initializePlayersLocked(count)
	return nil
}

func (g *Game) initializePlayersLocked(count int) {
	if count < MinPlayers {
		count = MinPlayers
	}
	if count > MaxPlayers {
		count = MaxPlayers
	}
	g.players = make([]*Player, 0, count)
	for i := 1; i <= count; i++ {
		g.players = append(g.players, newPlayer(i))
	}
	g.current = 0
}

// Start begins play with the configured players, initializing the minimum
// seat count if none were configured.
func (g *Game) Start() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StatePlaying {
		return errors.New("game already started")
	}
	if len(g.players) == 0 {
		g.initializePlayersLocked(MinPlayers)
	}
	g.state = StatePlaying
	g.current = 0
	g.modifierIdx = 0
	g.drawnEvents = 0
	g.activeEvents = nil
	g.winner = 0
	log.Infof("game started with %d players", len(g.players))
	return nil
}

// Reset returns the game to a clean setup state.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state = StateSetup
	g.players = nil
	g.current = 0
	g.pending = nil
	g.freePick = nil
	g.forcedSale = nil
	g.bingoPlayer = 0
	g.casinoPlayer = 0
	g.duelPlayer = 0
	g.modifierIdx = 0
	g.drawnEvents = 0
	g.activeEvents = nil
	g.forcedRoll = 0
	g.changes = nil
	g.winner = 0
}

// EndTurn finishes the active player's turn. A pending offer or forced sale
// for that player blocks it; jail turns are spent through JailWait instead.
func (g *Game) EndTurn(playerID int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.currentPlayer()
	if g.state != StatePlaying || p == nil || p.Id != playerID {
		return errors.New("not your turn")
	}
	if !p.HasMoved {
		return errors.New("you must roll the dice first")
	}
	if g.blockedByDecision(playerID) {
		return errors.New("resolve the pending decision first")
	}
	g.rotateLocked(p)
	return nil
}

// rotateLocked applies end-of-turn clearances and advances the seat pointer.
func (g *Game) rotateLocked(p *Player) {
	p.Chance = nil
	if p.ClearMafia {
		p.Mafia = false
		p.ClearMafia = false
	}
	p.Jail.JustEntered = false

	g.current = (g.current + 1) % len(g.players)
	next := g.players[g.current]
	next.HasMoved = false
	next.JustPurchasedId = ""
}

// blockedByDecision reports whether an unresolved decision belongs to the
// player.
func (g *Game) blockedByDecision(playerID int) bool {
	if g.pending != nil && g.pending.PlayerId == playerID {
		return true
	}
	if g.forcedSale != nil && g.forcedSale.PlayerId == playerID {
		return true
	}
	if g.freePick != nil && g.freePick.PlayerId == playerID {
		return true
	}
	return g.bingoPlayer == playerID || g.casinoPlayer == playerID || g.duelPlayer == playerID
}

// closeDecisionsFor drops every pending decision owned by the player. Used on
// bankruptcy.
func (g *Game) closeDecisionsFor(playerID int) {
	if g.pending != nil && g.pending.PlayerId == playerID {
		g.pending = nil
	}
	if g.forcedSale != nil && g.forcedSale.PlayerId == playerID {
		g.forcedSale = nil
	}
	if g.freePick != nil && g.freePick.PlayerId == playerID {
		g.freePick = nil
	}
	if g.bingoPlayer == playerID {
		g.bingoPlayer = 0
	}
	if g.casinoPlayer == playerID {
		g.casinoPlayer = 0
	}
	if g.duelPlayer == playerID {
		g.duelPlayer = 0
	}
}

func (g *Game) currentPlayer() *Player {
	if len(g.players) == 0 {
		return nil
	}
	return g.players[g.current]
}

func (g *Game) playerById(id int) *Player {
	for _, p := range g.players {
		if p.Id == id {
			return p
		}
	}
	return nil
}

func (g *Game) appendChange(playerID, amount int, reason string) {
	g.changes = append(g.changes, MoneyChange{PlayerId: playerID, Amount: amount, Reason: reason})
}

// TakeMoneyChanges drains the accumulated animation events.
func (g *Game) TakeMoneyChanges() []MoneyChange {
	g.mu.Lock()
	defer g.mu.Unlock()

	changes := g.changes
	g.changes = nil
	return changes
}

// checkWin ends the game the moment a player reaches the winning amount.
func (g *Game) checkWin(p *Player) {
	if g.state == StatePlaying && p.Cash >= WinningCash {
		g.state = StateFinished
		g.winner = p.Id
		p.Won = true
		log.Infof("%s won with $%d", p.Name, p.Cash)
	}
}

// ForceNextRoll pins the next dice total, for debugging. Totals outside
// [2,12] are rejected with no state change.
func (g *Game) ForceNextRoll(total int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if total < 2 || total > 12 {
		log.Warnf("rejected forced roll %d: must be 2-12", total)
		return errors.New("forced roll must be between 2 and 12")
	}
	g.forcedRoll = total
	return nil
}

// SetCash overwrites the active player's cash, for debugging.
func (g *Game) SetCash(amount int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if amount < 0 {
		log.Warn("rejected cash override: amount must be non-negative")
		return errors.New("amount must be non-negative")
	}
	p := g.currentPlayer()
	if p == nil {
		return errors.New("no active player")
	}
	p.Cash = roundUp100(amount)
	return nil
}

// Modifier returns the active modifier table entry.
func (g *Game) Modifier() models.Modifier {
	g.mu.Lock()
	defer g.mu.Unlock()
	return board.Modifiers[g.modifierIdx]
}
