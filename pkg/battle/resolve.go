// Package battle resolves a single battle between two committed main
// phase choices and advances the known state to the next battlefield
// (or ends the match).
package battle

import (
	"github.com/behrlich/echo-solver/pkg/debugassert"
	"github.com/behrlich/echo-solver/pkg/game"
)

// Result is the outcome of a battle, relative to some player.
type Result int

const (
	Lost Result = iota
	Tied
	Won
)

// Not flips a result from one player's perspective to the other's.
func (r Result) Not() Result {
	switch r {
	case Lost:
		return Won
	case Won:
		return Lost
	default:
		return Tied
	}
}

// Context holds everything needed to resolve one battle: the final
// (single-creature) choices both players committed to, any sabotage
// guesses made, and the known state the battle is being fought under.
type Context struct {
	MainChoices     game.Pair[game.FinalMainPhaseChoice]
	SabotageChoices game.Pair[game.SabotagePhaseChoice]
	State           game.KnownState
}

func (c Context) mainChoice(p game.Player) game.FinalMainPhaseChoice {
	return game.Select(p, c.MainChoices)
}

func (c Context) edict(p game.Player) game.Edict {
	return c.mainChoice(p).Edict
}

func (c Context) creature(p game.Player) game.Creature {
	return c.mainChoice(p).Creature
}

func (c Context) playerEffects(p game.Player) game.StatusEffectSet {
	return game.Select(p, c.State.PlayerStates).Effects
}

func (c Context) battlefield() game.Battlefield {
	return c.State.Battlefields.Current()
}

// creatureIsNegated reports whether a player's committed creature has
// had its effect cancelled by the opponent's Witch, or by facing a
// Rogue while playing Seer.
func (c Context) creatureIsNegated(p game.Player) bool {
	witch := c.creature(p.Other()) == game.Witch
	rogue := c.creature(p) == game.Seer && c.creature(p.Other()) == game.Rogue
	return witch || rogue
}

func (c Context) isActiveCreature(p game.Player, creature game.Creature) bool {
	return creature == c.creature(p) && !c.creatureIsNegated(p)
}

// edictMultiplier returns the multiplier applied to a player's edict
// bonus: boosted by the Urban battlefield and by an active Steward.
func (c Context) edictMultiplier(p game.Player) int {
	result := 1
	if c.battlefield() == game.Urban {
		result++
	}
	if c.isActiveCreature(p, game.Steward) {
		result++
	}
	return result
}

func (c Context) battlefieldBonus(p game.Player) bool {
	return c.battlefield().Bonus(c.creature(p))
}

// strengthModifier computes every addend to a player's base creature
// strength: battlefield bonus, creature-specific bonuses, edict
// bonuses (disabled entirely for the Witch), and lingering effects.
func (c Context) strengthModifier(p game.Player) int {
	effects := c.playerEffects(p)
	result := 0

	if c.battlefieldBonus(p) {
		result += 2
	}

	if !c.creatureIsNegated(p) {
		switch c.creature(p) {
		case game.Ranger:
			if c.battlefieldBonus(p) && !c.battlefieldBonus(p.Other()) {
				result += 2
			}
		case game.Barbarian:
			if effects.Has(game.BarbarianEffect) {
				result += 2
			}
		}
	}

	if c.creature(p) != game.Witch {
		bonus := 0
		switch c.edict(p) {
		case game.Sabotage:
			if guess := game.Select(p, c.SabotageChoices); guess != nil && *guess == c.creature(p.Other()) {
				bonus = 3
			}
		case game.Ambush:
			if c.battlefieldBonus(p) {
				bonus = 1
			}
		case game.Gambit:
			bonus = 1
		}
		result += c.edictMultiplier(p) * bonus
	}

	if effects.Has(game.BardEffect) {
		result++
	} else if effects.Has(game.MercenaryEffect) {
		result--
	}

	if effects.Has(game.MountainEffect) {
		result++
	}

	return result
}

// winsByEffect reports whether a player wins the battle outright
// through a creature or edict effect, bypassing a strength comparison.
func (c Context) winsByEffect(p game.Player) bool {
	if c.creatureIsNegated(p) {
		return false
	}

	if c.creature(p.Other()) == game.Wall && (c.creature(p) == game.Witch || c.creature(p) == game.Rogue) {
		return true
	}

	if c.creature(p) == game.Rogue && c.creature(p.Other()) == game.Monarch {
		return true
	}

	if c.creature(p) == game.Diplomat && c.edict(p) == c.edict(p.Other()) {
		return true
	}

	return false
}

// resolveGambits breaks a tie when one or both players played Gambit.
func (c Context) resolveGambits(p game.Player) Result {
	if c.edict(p) == c.edict(p.Other()) {
		return Tied
	}
	if c.edict(p) == game.Gambit {
		return Lost
	}
	if c.edict(p.Other()) == game.Gambit {
		return Won
	}
	return Tied
}

// battleResult resolves the full battle from p's perspective.
func (c Context) battleResult(p game.Player) Result {
	if c.winsByEffect(p) {
		return Won
	}
	if c.winsByEffect(p.Other()) {
		return Lost
	}
	if c.creature(p) == game.Wall || c.creature(p.Other()) == game.Wall {
		return c.resolveGambits(p)
	}

	baseStrengths := [2]int{c.creature(p).Strength(), c.creature(p.Other()).Strength()}
	modifiers := [2]int{c.strengthModifier(p), c.strengthModifier(p.Other())}
	strengths := [2]int{baseStrengths[0] + modifiers[0], baseStrengths[1] + modifiers[1]}

	switch {
	case strengths[0] < strengths[1]:
		return Lost
	case strengths[0] > strengths[1]:
		return Won
	default:
		return c.resolveGambits(p)
	}
}

// edictReward computes the victory-point delta contributed by a
// player's own edict (RileThePublic/DivertAttention).
func (c Context) edictReward(p game.Player) int {
	switch c.edict(p) {
	case game.RileThePublic:
		return c.edictMultiplier(p) * 1
	case game.DivertAttention:
		if c.edict(p.Other()) != game.RileThePublic {
			return c.edictMultiplier(p) * -1
		}
	}
	return 0
}

// battleReward computes the victory points a player earns for winning
// the current battle, before the win/loss/tie sign is applied.
func (c Context) battleReward(p game.Player) int {
	effects := c.playerEffects(p)
	total := c.battlefield().Reward()

	if effects.Has(game.NightEffect) {
		total++
	} else if effects.Has(game.GladeEffect) {
		total += 2
	}

	if effects.Has(game.BardEffect) {
		total++
	}

	total += c.edictReward(p) + c.edictReward(p.Other())
	if total < 0 {
		total = 0
	}
	return total
}

// monarchReward returns the bonus a player earns for having defeated
// (or tied against) an active Monarch.
func (c Context) monarchReward(p game.Player, result Result) int {
	if (result == Won || result == Tied) && c.isActiveCreature(p.Other(), game.Monarch) {
		return 2
	}
	return 0
}

// battleScoreDelta is the signed change to the running score from p's
// perspective: positive when p gained points.
func (c Context) battleScoreDelta(result Result, p game.Player) int {
	delta := 0
	switch result {
	case Won:
		delta = c.battleReward(p)
	case Lost:
		delta = -c.battleReward(p.Other())
	}

	delta += c.monarchReward(p, result)
	delta -= c.monarchReward(p.Other(), result.Not())

	return delta
}

// AdvanceKnownState resolves the battle and either produces the next
// round's KnownState, or the final score once the last battlefield has
// been fought.
func (c Context) AdvanceKnownState() game.TurnResult {
	player := game.Me
	result := c.battleResult(player)
	debugassert.Check(result == c.battleResult(player.Other()).Not(), "battle: result is not symmetrical between players")

	scoreDelta := c.battleScoreDelta(result, player)
	debugassert.Check(scoreDelta == -c.battleScoreDelta(result.Not(), player.Other()), "battle: score delta is not symmetrical between players")
	score := c.State.Score + game.Score(scoreDelta)

	next, ok := c.State.Battlefields.Next()
	if !ok {
		return game.Finished(score)
	}

	newState := c.State
	newState.Battlefields = next
	newState.Score = score

	p1 := &newState.PlayerStates[player]
	p2 := &newState.PlayerStates[player.Other()]

	p1.Edicts = p1.Edicts.Remove(c.edict(player))
	p2.Edicts = p2.Edicts.Remove(c.edict(player.Other()))

	p1.Effects = p1.Effects.Clear()
	p2.Effects = p2.Effects.Clear()

	if c.isActiveCreature(player, game.Steward) {
		p1.Edicts = game.AllEdicts()
	} else if c.isActiveCreature(player.Other(), game.Steward) {
		p2.Edicts = game.AllEdicts()
	}

	if c.battlefield() == game.Night {
		p1.Effects = p1.Effects.Add(game.NightEffect)
		p2.Effects = p2.Effects.Add(game.NightEffect)
	}

	var winner, loser *game.KnownPlayerState
	switch result {
	case Won:
		winner, loser = p1, p2
	case Lost:
		winner, loser = p2, p1
	}

	if winner != nil {
		switch c.State.Battlefields.Current() {
		case game.Glade:
			winner.Effects = winner.Effects.Add(game.GladeEffect)
		case game.Mountain:
			winner.Effects = winner.Effects.Add(game.MountainEffect)
		}

		if !newState.SpentCreatures.Has(game.Barbarian) {
			loser.Effects = loser.Effects.Add(game.BarbarianEffect)
		}
	}

	for _, p := range game.Players {
		state := &newState.PlayerStates[p]
		switch c.creature(p) {
		case game.Mercenary:
			state.Effects = state.Effects.Add(game.MercenaryEffect)
		case game.Seer:
			state.Effects = state.Effects.Add(game.SeerEffect)
		case game.Bard:
			state.Effects = state.Effects.Add(game.BardEffect)
		}
	}

	// The played creatures themselves are added to the graveyard by the
	// caller (SeerPhase.AdvanceState in package phase), which holds both
	// players' committed creatures for the round.
	return game.Unfinished(newState)
}
