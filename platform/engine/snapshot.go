package engine

import (
	"github.com/dm23046/Oligo-boardgame/app/models"
	"github.com/dm23046/Oligo-boardgame/platform/board"
)

// PlayerView is the wire copy of one player ledger.
type PlayerView struct {
	Id              int               `json:"id"`
	Name            string            `json:"name"`
	ColorIndex      int               `json:"color_index"`
	Position        int               `json:"position"`
	Tile            int               `json:"tile"`
	Cash            int               `json:"cash"`
	Cards           []OwnedCard       `json:"cards"`
	Loans           []Loan            `json:"loans"`
	LapCount        int               `json:"lap_count"`
	Jail            JailStatus        `json:"jail"`
	Mafia           bool              `json:"mafia"`
	Chance          *ChanceMultiplier `json:"chance,omitempty"`
	BingoDiscount   float64           `json:"bingo_discount,omitempty"`
	Bankrupt        bool              `json:"bankrupt"`
	HasMoved        bool              `json:"has_moved"`
	JustPurchasedId string            `json:"just_purchased_id,omitempty"`
	Won             bool              `json:"won"`
}

// GameSnapshot is the full broadcast view of a game. Every slice and pointer
// is a copy; mutating a snapshot never touches the live game.
type GameSnapshot struct {
	State              GameState       `json:"state"`
	Players            []PlayerView    `json:"players"`
	CurrentPlayerIndex int             `json:"current_player_index"`
	PendingProperty    *PropertyOffer  `json:"pending_property,omitempty"`
	ForcedSale         *ForcedSale     `json:"forced_sale,omitempty"`
	FreePick           *FreePickState  `json:"free_pick,omitempty"`
	BingoPlayerId      int             `json:"bingo_player_id,omitempty"`
	CasinoPlayerId     int             `json:"casino_player_id,omitempty"`
	DuelPlayerId       int             `json:"duel_player_id,omitempty"`
	Modifier           models.Modifier `json:"modifier"`
	ModifierIndex      int             `json:"modifier_index"`
	ActiveEvents       []models.Event  `json:"active_events"`
	WinnerId           int             `json:"winner_id,omitempty"`
}

// Snapshot copies the whole game state under the lock.
func (g *Game) Snapshot() GameSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := GameSnapshot{
		State:              g.state,
		Players:            make([]PlayerView, 0, len(g.players)),
		CurrentPlayerIndex: g.current,
		BingoPlayerId:      g.bingoPlayer,
		CasinoPlayerId:     g.casinoPlayer,
		DuelPlayerId:       g.duelPlayer,
		Modifier:           board.Modifiers[g.modifierIdx],
		ModifierIndex:      g.modifierIdx,
		ActiveEvents:       append([]models.Event(nil), g.activeEvents...),
		WinnerId:           g.winner,
	}
	for _, p := range g.players {
		snap.Players = append(snap.Players, playerView(p))
	}
	if g.pending != nil {
		pending := *g.pending
		snap.PendingProperty = &pending
	}
	if g.forcedSale != nil {
		sale := *g.forcedSale
		snap.ForcedSale = &sale
	}
	if g.freePick != nil {
		pick := *g.freePick
		snap.FreePick = &pick
	}
	return snap
}

func playerView(p *Player) PlayerView {
	view := PlayerView{
		Id:              p.Id,
		Name:            p.Name,
		ColorIndex:      p.ColorIndex,
		Position:        p.Position,
		Tile:            board.TileAt(p.Position).Id,
		Cash:            p.Cash,
		Cards:           append([]OwnedCard(nil), p.Cards...),
		Loans:           make([]Loan, 0, len(p.Loans)),
		LapCount:        p.LapCount,
		Jail:            p.Jail,
		Mafia:           p.Mafia,
		BingoDiscount:   p.BingoDiscount,
		Bankrupt:        p.Bankrupt,
		HasMoved:        p.HasMoved,
		JustPurchasedId: p.JustPurchasedId,
		Won:             p.Won,
	}
	for _, loan := range p.Loans {
		view.Loans = append(view.Loans, *loan)
	}
	if p.Chance != nil {
		chance := *p.Chance
		view.Chance = &chance
	}
	return view
}
