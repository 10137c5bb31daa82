package state

// Board and hand capacity limits.
const (
	MaxBoardSize = 7
	MaxHandSize  = 10
)

// Player is one side of the game.
type Player struct {
	ID PlayerID

	Deck      []string
	Hand      []string
	Board     []*Minion
	Graveyard []string
	Dead      []*Minion

	ActiveSecrets []ActiveSecret

	Health    int
	MaxHealth int
	Armor     int

	Mana    int
	MaxMana int

	Fatigue int

	Hero *Hero

	HeroPowerUsedThisTurn bool
	HeroFrozen            bool
	HeroHasAttackedTurn   bool

	Weapon *Weapon

	TempCostMods []TempCostMod

	// TempAttack is the hero's per-caster temporary attack bonus (e.g. a
	// weapon-like "gain X Attack this turn" effect on a character rather
	// than a minion), expiring the same way TempStats does on a Minion.
	TempAttack map[PlayerID]int
}

// NewPlayer creates an empty player shell for the given id and deck.
func NewPlayer(id PlayerID, deck []string, hero *Hero) *Player {
	d := make([]string, len(deck))
	copy(d, deck)
	return &Player{
		ID:        id,
		Deck:      d,
		Hero:      hero,
		Health:    30,
		MaxHealth: 30,
	}
}

// FindBoardIndex returns the board index of the minion with the given id,
// or -1 if not present.
func (p *Player) FindBoardIndex(id MinionID) int {
	for i, m := range p.Board {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// RemoveFromBoard removes and returns the minion at the given id without
// triggering anything (structural-only; callers handle deathrattles,
// aura revocation and events). A minion is on-board XOR in dead_minions,
// never both.
func (p *Player) RemoveFromBoard(id MinionID) (*Minion, int, bool) {
	idx := p.FindBoardIndex(id)
	if idx < 0 {
		return nil, -1, false
	}
	m := p.Board[idx]
	p.Board = append(p.Board[:idx], p.Board[idx+1:]...)
	return m, idx, true
}

// InsertOnBoard inserts m at the given index, clamped into [0, len(board)],
// or appends if insertAt is nil. Returns false if the board is full.
func (p *Player) InsertOnBoard(m *Minion, insertAt *int) (int, bool) {
	if len(p.Board) >= MaxBoardSize {
		return -1, false
	}
	idx := len(p.Board)
	if insertAt != nil {
		idx = *insertAt
		if idx < 0 {
			idx = 0
		}
		if idx > len(p.Board) {
			idx = len(p.Board)
		}
	}
	p.Board = append(p.Board, nil)
	copy(p.Board[idx+1:], p.Board[idx:])
	p.Board[idx] = m
	return idx, true
}

// PopHand removes and returns the card id at handIndex.
func (p *Player) PopHand(handIndex int) (string, bool) {
	if handIndex < 0 || handIndex >= len(p.Hand) {
		return "", false
	}
	id := p.Hand[handIndex]
	p.Hand = append(p.Hand[:handIndex], p.Hand[handIndex+1:]...)
	return id, true
}

// HasActiveSecret reports whether the player already has an armed secret
// with the given card id. An armed secret is unique per player per card id.
func (p *Player) HasActiveSecret(cardID string) bool {
	for _, s := range p.ActiveSecrets {
		if s.CardID == cardID {
			return true
		}
	}
	return false
}

// RemoveSecret removes and returns the active secret at index.
func (p *Player) RemoveSecret(index int) (ActiveSecret, bool) {
	if index < 0 || index >= len(p.ActiveSecrets) {
		return ActiveSecret{}, false
	}
	s := p.ActiveSecrets[index]
	p.ActiveSecrets = append(p.ActiveSecrets[:index], p.ActiveSecrets[index+1:]...)
	return s, true
}
