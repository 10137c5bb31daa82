package state

import "fmt"

// Weapon is the equipped-weapon instance.
type Weapon struct {
	CardID        string
	Name          string
	Attack        int
	Durability    int
	MaxDurability int
	Triggers      []TriggerSpec
}

// EntityID implements Entity.
func (w *Weapon) EntityID() string { return fmt.Sprintf("weapon:%s", w.CardID) }

// EntityKind implements Entity.
func (w *Weapon) EntityKind() EntityKind { return EntityWeapon }

// IsBroken reports whether the weapon has run out of durability.
func (w *Weapon) IsBroken() bool { return w.Durability <= 0 }
