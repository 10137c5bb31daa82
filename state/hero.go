package state

import "fmt"

// HeroPower is a hero's once-per-turn activated ability.
type HeroPower struct {
	Name          string
	Text          string
	Cost          int
	Targeting     string
	Runner        Runner
	CountsAsSpell bool
}

// Hero is the canonical hero a player controls.
type Hero struct {
	ID    string
	Name  string
	Power HeroPower
}

// EntityID implements Entity.
func (h *Hero) EntityID() string { return fmt.Sprintf("hero:%s", h.ID) }

// EntityKind implements Entity.
func (h *Hero) EntityKind() EntityKind { return EntityHero }
