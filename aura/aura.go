// Package aura implements the Aura & Cost Subsystem: continuous
// stat auras (global-side and adjacency-scoped) and cost auras, recomputed
// from scratch on every board-structure change rather than maintained
// incrementally.
package aura

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

// RecomputeSide fully revokes and re-grants every stat aura sourced from a
// minion on pid's board, accounting for adjacency by current board index.
// Call this after any summon, death, silence, transform, or board reorder
// on that side.
//
// Revoke-then-re-grant must be a no-op on a minion whose aura membership
// didn't change, including a damaged one under a health aura: the revoke
// phase records how much current health each minion lost to the
// max-health clamp, and the re-grant phase restores only that recorded
// loss rather than the full delta. Only a genuinely new grant lifts
// current health by the aura's full health bonus.
func RecomputeSide(g *state.GameState, pid state.PlayerID) {
	p := g.Player(pid)

	// Phase 1: revoke every previously-cached grant, recording per-minion
	// how much current health the max-health clamp took away.
	clampDebt := map[state.MinionID]int{}
	for _, src := range p.Board {
		revokeAll(g, pid, src, clampDebt)
	}

	// Phase 2: recompute membership and re-grant, repaying the clamp debt
	// for minions that already held the grant before phase 1.
	for i, src := range p.Board {
		specs := src.AuraSpecs()
		if len(specs) == 0 {
			continue
		}
		prev := src.AuraGrants
		src.AuraGrants = make([]map[state.MinionID]bool, len(specs))
		for si, spec := range specs {
			grants := map[state.MinionID]bool{}
			for _, tgtIdx := range eligibleIndices(p, i, spec) {
				tgt := p.Board[tgtIdx]
				held := si < len(prev) && prev[si][tgt.ID]
				applyGrant(tgt, spec, held, clampDebt)
				grants[tgt.ID] = true
			}
			src.AuraGrants[si] = grants
		}
	}
}

// DisableSource revokes exactly the grants owned by src (used by Silence,
// which disables a single source's auras before reverting its own base
// stats). Callers must follow with RecomputeSide
// for the affected side so adjacency shifts (src leaving the aura-granting
// set) are reflected for the remaining minions. Health lost to the
// max-health clamp here is gone for good; only RecomputeSide's own
// revoke/re-grant cycle repays it.
func DisableSource(g *state.GameState, pid state.PlayerID, src *state.Minion) {
	revokeAll(g, pid, src, nil)
	src.AuraGrants = nil
}

func revokeAll(g *state.GameState, pid state.PlayerID, src *state.Minion, clampDebt map[state.MinionID]int) {
	specs := src.AuraSpecs()
	for si, grants := range src.AuraGrants {
		if si >= len(specs) {
			continue
		}
		spec := specs[si]
		for id := range grants {
			if tgt, owner, _, ok := g.FindMinion(id); ok && owner == pid {
				revokeGrant(tgt, spec, clampDebt)
			}
		}
	}
}

func eligibleIndices(p *state.Player, sourceIdx int, spec state.StatAuraSpec) []int {
	var out []int
	switch spec.Scope {
	case "adjacent_friendly_minions":
		if sourceIdx-1 >= 0 {
			out = append(out, sourceIdx-1)
		}
		if sourceIdx+1 < len(p.Board) {
			out = append(out, sourceIdx+1)
		}
	case "other_friendly_minions":
		for i := range p.Board {
			if i == sourceIdx {
				continue
			}
			if spec.Tribe != "" && spec.Tribe != state.TribeAll {
				if p.Board[i].Tribe != spec.Tribe && p.Board[i].Tribe != state.TribeAll {
					continue
				}
			}
			out = append(out, i)
		}
	}
	return out
}

// applyGrant adds spec's bonuses to tgt. held marks a grant tgt already
// had before this recompute's revoke phase: its health lift is limited to
// whatever the revoke clamp actually took (so recompute is a no-op on a
// damaged minion), while a fresh grant lifts current health by the full
// delta.
func applyGrant(tgt *state.Minion, spec state.StatAuraSpec, held bool, clampDebt map[state.MinionID]int) {
	tgt.Attack += spec.Attack
	if spec.Health != 0 {
		tgt.MaxHealth += spec.Health
		if held {
			restore := spec.Health
			if d := clampDebt[tgt.ID]; restore > d {
				restore = d
			}
			if restore > 0 {
				tgt.Health += restore
				clampDebt[tgt.ID] -= restore
			}
		} else {
			tgt.Health += spec.Health
		}
		if tgt.Health > tgt.MaxHealth {
			tgt.Health = tgt.MaxHealth
		}
	}
}

// revokeGrant subtracts spec's bonuses from tgt, clamping current health
// to the lowered cap. When clampDebt is non-nil the clamped-off health is
// recorded there for applyGrant to repay within the same recompute.
func revokeGrant(tgt *state.Minion, spec state.StatAuraSpec, clampDebt map[state.MinionID]int) {
	tgt.Attack -= spec.Attack
	if spec.Health != 0 {
		tgt.MaxHealth -= spec.Health
		if tgt.Health > tgt.MaxHealth {
			if clampDebt != nil {
				clampDebt[tgt.ID] += tgt.Health - tgt.MaxHealth
			}
			tgt.Health = tgt.MaxHealth
		}
	}
}
