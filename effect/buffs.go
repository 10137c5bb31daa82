package effect

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

func init() {
	register("add_attack", addAttack)
	register("add_stats", addStats)
	register("add_self_stats", addSelfStats)
	register("random_add_stat", randomAddStat)
	register("add_keyword", addKeyword)
	register("adjacent_buff", adjacentBuff)
	register("temp_modify", tempModify)
	register("temp_modify_random", tempModifyRandom)
	register("temp_modify_aoe", tempModifyAoe)
	register("temp_add_attack_to_character", tempAddAttackToCharacter)
}

// buffTarget resolves the minion a buff primitive applies to: the
// explicit tgt if one was supplied, else the source's own minion (a
// self-buff with no chosen target, e.g. "this minion gains +1 Attack").
func buffTarget(g *state.GameState, src state.Source, tgt state.Target) (*state.Minion, state.PlayerID, bool) {
	if tgt.Kind == state.TargetMinion {
		return resolveMinion(g, tgt)
	}
	if src.HasSelfID {
		if m, owner, _, ok := g.FindMinion(src.SelfID); ok {
			return m, owner, true
		}
	}
	return nil, 0, false
}

func applyPermanentStats(g *state.GameState, m *state.Minion, attack, health int) []event.Event {
	m.Attack += attack
	if health != 0 {
		m.MaxHealth += health
		m.Health += health
	}
	return g.Emit(event.New(event.KindBuff, "minion", m.ID, "attack", attack, "health", health))
}

func addAttack(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	m, _, ok := buffTarget(g, src, tgt)
	if !ok {
		return nil
	}
	return applyPermanentStats(g, m, paramInt(params, "amount", 0), 0)
}

func addStats(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	m, _, ok := buffTarget(g, src, tgt)
	if !ok {
		return nil
	}
	return applyPermanentStats(g, m, paramInt(params, "attack", 0), paramInt(params, "health", 0))
}

func addSelfStats(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	if !src.HasSelfID {
		return nil
	}
	m, _, _, found := g.FindMinion(src.SelfID)
	if !found {
		return nil
	}
	return applyPermanentStats(g, m, paramInt(params, "attack", 0), paramInt(params, "health", 0))
}

func randomAddStat(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	pid := resolveOwner(paramString(params, "owner", "friendly"), g, src)
	candidates := aliveMinions(friendlyMinions(g, pid))
	if len(candidates) == 0 {
		return nil
	}
	idx, _ := g.RNG.Intn(len(candidates))
	return applyPermanentStats(g, candidates[idx], paramInt(params, "attack", 0), paramInt(params, "health", 0))
}

func addKeyword(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	m, _, ok := buffTarget(g, src, tgt)
	if !ok {
		return nil
	}
	switch state.Keyword(paramString(params, "keyword", "")) {
	case state.KeywordTaunt:
		m.Taunt = true
	case state.KeywordDivineShield:
		m.DivineShield = true
	case state.KeywordCharge:
		m.Charge = true
	case state.KeywordRush:
		m.Rush = true
	case state.KeywordCantAttack:
		m.CantAttack = true
	default:
		return nil
	}
	return g.Emit(event.New(event.KindBuffKeyword, "minion", m.ID, "keyword", paramString(params, "keyword", "")))
}

// adjacentBuff permanently buffs the minions adjacent to the source's own
// minion on its own board (e.g. Dire Wolf Alpha's battlecry-less version
// of the same shape, a one-time grant rather than a continuous aura).
func adjacentBuff(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	if !src.HasSelfID {
		return nil
	}
	p := g.Player(src.Owner)
	idx := p.FindBoardIndex(src.SelfID)
	if idx < 0 {
		return nil
	}
	attack, health := paramInt(params, "attack", 0), paramInt(params, "health", 0)
	var out []event.Event
	if idx-1 >= 0 {
		out = append(out, applyPermanentStats(g, p.Board[idx-1], attack, health)...)
	}
	if idx+1 < len(p.Board) {
		out = append(out, applyPermanentStats(g, p.Board[idx+1], attack, health)...)
	}
	return out
}

// tempDeltas is the full parameter set the temp_modify family accepts:
// stat deltas plus keyword stacks, all expiring at the caster's end of
// turn. "health" adjusts current health only (clamped to the cap);
// "max_health" moves the cap and lifts current health with it on an
// increase.
type tempDeltas struct {
	Attack    int
	Health    int
	MaxHealth int
	AddKW     []string
	RemoveKW  []string
}

func tempParams(params state.Context) tempDeltas {
	return tempDeltas{
		Attack:    paramInt(params, "attack", 0),
		Health:    paramInt(params, "health", 0),
		MaxHealth: paramInt(params, "max_health", 0),
		AddKW:     paramStringSlice(params, "add_keywords"),
		RemoveKW:  paramStringSlice(params, "remove_keywords"),
	}
}

// grantTempStat records d on m's per-caster temp stacks and applies it
// to the live stats and keyword flags. A removed keyword only decrements
// the stack; the live flag recomputes when the stack expires.
func grantTempStat(g *state.GameState, caster state.PlayerID, m *state.Minion, d tempDeltas) []event.Event {
	m.ResetTempMaps()
	stack := m.TempStats[caster]
	stack.Attack += d.Attack
	stack.Health += d.Health
	stack.MaxHealth += d.MaxHealth
	m.TempStats[caster] = stack

	var out []event.Event
	if d.Attack != 0 {
		before := m.Attack
		m.Attack += d.Attack
		if m.Attack < 0 {
			m.Attack = 0
		}
		out = append(out, g.Emit(event.New(event.KindBuff, "minion", m.ID, "attack", m.Attack-before, "health", 0, "temp", true))...)
	}
	if d.MaxHealth != 0 {
		before := m.MaxHealth
		m.MaxHealth += d.MaxHealth
		if m.MaxHealth < 1 {
			m.MaxHealth = 1
		}
		if d.MaxHealth > 0 {
			m.Health += d.MaxHealth
		} else if m.Health > m.MaxHealth {
			m.Health = m.MaxHealth
		}
		out = append(out, g.Emit(event.New(event.KindBuff, "minion", m.ID, "attack", 0, "health", m.MaxHealth-before, "temp", true))...)
	}
	if d.Health != 0 {
		before := m.Health
		m.Health += d.Health
		if m.Health > m.MaxHealth {
			m.Health = m.MaxHealth
		}
		if m.Health < 0 {
			m.Health = 0
		}
		out = append(out, g.Emit(event.New(event.KindBuff, "minion", m.ID, "attack", 0, "health", m.Health-before, "temp", true))...)
	}

	if len(d.AddKW) > 0 || len(d.RemoveKW) > 0 {
		kw := m.TempKeywords[caster]
		if kw == nil {
			kw = state.TempKeywordStack{}
			m.TempKeywords[caster] = kw
		}
		for _, raw := range d.AddKW {
			k := state.Keyword(raw)
			kw[k]++
			if kw[k] > 0 {
				m.GrantKeywordFlag(k)
			}
		}
		for _, raw := range d.RemoveKW {
			kw[state.Keyword(raw)]--
		}
	}
	return out
}

func tempModify(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	m, _, ok := buffTarget(g, src, tgt)
	if !ok {
		return nil
	}
	return grantTempStat(g, src.Owner, m, tempParams(params))
}

func tempModifyRandom(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	pid := resolveOwner(paramString(params, "owner", "friendly"), g, src)
	candidates := aliveMinions(friendlyMinions(g, pid))
	if len(candidates) == 0 {
		return nil
	}
	idx, _ := g.RNG.Intn(len(candidates))
	return grantTempStat(g, src.Owner, candidates[idx], tempParams(params))
}

func tempModifyAoe(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	d := tempParams(params)
	var out []event.Event
	for _, pid := range resolveOwners(paramString(params, "owner", "friendly"), g, src) {
		for _, m := range aliveMinions(friendlyMinions(g, pid)) {
			out = append(out, grantTempStat(g, src.Owner, m, d)...)
		}
	}
	return out
}

// tempAddAttackToCharacter grants temporary attack to a hero (tgt is a
// Player) rather than a minion.
func tempAddAttackToCharacter(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	amount := paramInt(params, "amount", 0)
	if tgt.Kind != state.TargetPlayer {
		return nil
	}
	p := g.Player(tgt.Player)
	if p.TempAttack == nil {
		p.TempAttack = map[state.PlayerID]int{}
	}
	p.TempAttack[src.Owner] += amount
	return g.Emit(event.New(event.KindBuff, "player", tgt.Player, "attack", amount, "temp", true))
}
