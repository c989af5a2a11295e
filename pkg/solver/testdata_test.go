package solver

import "github.com/behrlich/echo-solver/pkg/game"

// smallState returns a KnownState with only one battlefield left to
// fight and a hand size of one per player, so the generated tree stays
// tiny enough for fast, deterministic tests.
func smallState() game.KnownState {
	state := game.NewKnownState([4]game.Battlefield{game.Mountain, game.Glade, game.Urban, game.Plains})
	state.Battlefields.Cursor = 3

	graveyard := game.SingletonCreature(game.Wall).
		Add(game.Seer).Add(game.Rogue).Add(game.Bard).
		Add(game.Diplomat).Add(game.Ranger).Add(game.Steward).Add(game.Barbarian)
	state.SpentCreatures = graveyard
	return state
}
