package solver

import (
	"testing"

	"github.com/behrlich/echo-solver/pkg/game"
	"github.com/behrlich/echo-solver/pkg/phase"
)

func TestGeneratePhaseRootIsMainPhaseShaped(t *testing.T) {
	state := smallState()
	root := generatePhase(phase.NewMainPhase(), state, UnlimitedTurns)

	if root.Completed {
		t.Fatalf("root scope should not be completed before any battle is fought")
	}

	wantDecisions := phase.NewMainPhase().DecisionCounts(state)
	if got := root.Matrices.DecisionCounts(); got != wantDecisions {
		t.Errorf("root Matrices.DecisionCounts() = %v, want %v", got, wantDecisions)
	}

	wantReveals := phase.NewMainPhase().RevealCount(state)
	if got := len(root.Next); got != wantReveals {
		t.Errorf("len(root.Next) = %d, want %d (RevealCount)", got, wantReveals)
	}
}

func TestGeneratePhaseSingleBattlefieldEndsInCompletedLeaves(t *testing.T) {
	state := smallState()
	root := generatePhase(phase.NewMainPhase(), state, UnlimitedTurns)

	// With only one battlefield left, every path through Main -> Sabotage
	// -> Seer resolves the match: every leaf several levels down must be
	// Completed, never another open Main phase.
	var walk func(s *Scope, depth int)
	sawCompleted := false
	walk = func(s *Scope, depth int) {
		if depth > 3 {
			t.Fatalf("tree is deeper than the 3 phase steps a single battlefield should need")
		}
		if s.Completed {
			sawCompleted = true
			return
		}
		for i := range s.Next {
			walk(&s.Next[i], depth+1)
		}
	}
	walk(&root, 0)

	if !sawCompleted {
		t.Errorf("expected at least one Completed leaf in the generated tree")
	}
}

func TestGeneratorGenerateMatchesManualWalk(t *testing.T) {
	state := smallState()
	manual := generatePhase(phase.NewMainPhase(), state, UnlimitedTurns)
	viaGenerator := Generator{State: state, Turns: UnlimitedTurns}.Generate()

	if len(manual.Next) != len(viaGenerator.Next) {
		t.Errorf("Generator.Generate() produced a differently-shaped tree than a manual generatePhase call")
	}
}

func TestEstimateTreeNodeCountMatchesGeneratedTree(t *testing.T) {
	state := smallState()
	root := generatePhase(phase.NewMainPhase(), state, UnlimitedTurns)
	stats := EstimateTree(state, UnlimitedTurns)

	// EstimateTree counts phase steps and Unexplored leaves, not the
	// Completed leaves that end the match.
	var countNodes func(s *Scope) int
	countNodes = func(s *Scope) int {
		if s.Completed {
			return 0
		}
		n := 1
		for i := range s.Next {
			n += countNodes(&s.Next[i])
		}
		return n
	}

	if got := countNodes(&root); got != stats.Nodes {
		t.Errorf("EstimateTree().Nodes = %d, want %d (actual generated node count)", stats.Nodes, got)
	}
}

func TestEstimateTreeIsDeterministic(t *testing.T) {
	state := smallState()
	a := EstimateTree(state, UnlimitedTurns)
	b := EstimateTree(state, UnlimitedTurns)
	if a != b {
		t.Errorf("EstimateTree() is not deterministic: %+v != %+v", a, b)
	}
}

// partialHorizonState leaves three battlefields to fight (more than
// the turns=2 horizon below can fully resolve) with a small hand size,
// so truncation is both meaningful and cheap to enumerate.
func partialHorizonState() game.KnownState {
	state := game.NewKnownState([4]game.Battlefield{game.Mountain, game.Glade, game.Urban, game.Plains})
	state.Battlefields.Cursor = 1
	state.SpentCreatures = game.SingletonCreature(game.Wall).
		Add(game.Seer).Add(game.Rogue).Add(game.Bard).Add(game.Diplomat).Add(game.Ranger)
	return state
}

// TestGeneratePhaseTruncatesAtTurnHorizon exercises spec Scenario F: a
// Generator bounded to a finite number of rounds must cut the tree off
// with Unexplored leaves at that horizon, distinct from (and smaller
// than) the unbounded tree over the same starting state.
func TestGeneratePhaseTruncatesAtTurnHorizon(t *testing.T) {
	state := partialHorizonState()

	rootZero := generatePhase(phase.NewMainPhase(), state, 0)
	if !rootZero.Unexplored {
		t.Fatalf("generatePhase with turns=0 should return an Unexplored leaf at the root")
	}
	if rootZero.UnexploredState != state {
		t.Errorf("Unexplored leaf's state = %+v, want %+v", rootZero.UnexploredState, state)
	}

	var countUnexplored func(s *Scope) int
	countUnexplored = func(s *Scope) int {
		if s.Unexplored {
			return 1
		}
		n := 0
		for i := range s.Next {
			n += countUnexplored(&s.Next[i])
		}
		return n
	}

	limited := generatePhase(phase.NewMainPhase(), state, 2)
	if countUnexplored(&limited) == 0 {
		t.Errorf("a 2-round horizon over a 4-battlefield match should still cut off into Unexplored leaves")
	}

	full := generatePhase(phase.NewMainPhase(), state, UnlimitedTurns)
	if countUnexplored(&full) != 0 {
		t.Errorf("an unlimited-turns generation should never produce an Unexplored leaf")
	}

	statsLimited := EstimateTree(state, 2)
	statsFull := EstimateTree(state, UnlimitedTurns)
	if statsLimited.Nodes >= statsFull.Nodes {
		t.Errorf("a 2-round partial tree (%d nodes) should be strictly smaller than the full tree (%d nodes)",
			statsLimited.Nodes, statsFull.Nodes)
	}

	statsLimitedAgain := EstimateTree(state, 2)
	if statsLimited != statsLimitedAgain {
		t.Errorf("EstimateTree with a turn horizon is not deterministic: %+v != %+v", statsLimited, statsLimitedAgain)
	}
}
