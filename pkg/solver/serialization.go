package solver

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/behrlich/echo-solver/pkg/game"
)

// serializableVector is a JSON-friendly DecisionVector. RegretSum is
// saved alongside StrategySum (rather than just the derived average
// strategy) so a reloaded tree can keep training from where it left
// off instead of starting every regret back at zero.
type serializableVector struct {
	RegretSum   []float64 `json:"regret_sum"`
	StrategySum []float64 `json:"strategy_sum"`
}

type serializableMatrix struct {
	Trivial bool                 `json:"trivial"`
	Vectors []serializableVector `json:"vectors,omitempty"`
}

type serializableMatrices struct {
	Symmetrical bool                  `json:"symmetrical"`
	Shared      *serializableMatrix   `json:"shared,omitempty"`
	Pair        [2]serializableMatrix `json:"pair,omitempty"`
}

type serializableScope struct {
	Completed       bool                 `json:"completed"`
	Score           game.Score           `json:"score,omitempty"`
	Unexplored      bool                 `json:"unexplored,omitempty"`
	UnexploredState game.KnownState      `json:"unexplored_state,omitempty"`
	Matrices        serializableMatrices `json:"matrices,omitempty"`
	Next            []serializableScope  `json:"next,omitempty"`
}

// SerializableTree is the JSON-friendly representation a trained tree
// round-trips through: the starting KnownState and turn horizon (so
// the tree's shape can be regenerated on load) and the trained
// weights, in tree order.
type SerializableTree struct {
	Version string            `json:"version"`
	State   game.KnownState   `json:"state"`
	Turns   int               `json:"turns"`
	Root    serializableScope `json:"root"`
}

func toSerializableVector(v *DecisionVector) serializableVector {
	if v == nil {
		return serializableVector{}
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return serializableVector{
		RegretSum:   append([]float64(nil), v.RegretSum...),
		StrategySum: append([]float64(nil), v.StrategySum...),
	}
}

func toSerializableMatrix(m *DecisionMatrix) serializableMatrix {
	if m.IsTrivial() {
		return serializableMatrix{Trivial: true}
	}
	out := serializableMatrix{Vectors: make([]serializableVector, len(m.vectors))}
	for i := range m.vectors {
		out.Vectors[i] = toSerializableVector(&m.vectors[i])
	}
	return out
}

func toSerializableMatrices(m *DecisionMatrices) serializableMatrices {
	if m.symmetrical {
		shared := toSerializableMatrix(&m.shared)
		return serializableMatrices{Symmetrical: true, Shared: &shared}
	}
	return serializableMatrices{Pair: [2]serializableMatrix{
		toSerializableMatrix(&m.pair[game.Me]),
		toSerializableMatrix(&m.pair[game.You]),
	}}
}

func toSerializableScope(s *Scope) serializableScope {
	if s.Completed {
		return serializableScope{Completed: true, Score: s.Score}
	}
	if s.Unexplored {
		return serializableScope{Unexplored: true, UnexploredState: s.UnexploredState}
	}
	out := serializableScope{
		Matrices: toSerializableMatrices(&s.Matrices),
		Next:     make([]serializableScope, len(s.Next)),
	}
	for i := range s.Next {
		out.Next[i] = toSerializableScope(&s.Next[i])
	}
	return out
}

// ToJSON serializes a trained tree, alongside the KnownState and turn
// horizon it was generated from, to JSON.
func ToJSON(state game.KnownState, turns int, root *Scope) ([]byte, error) {
	tree := SerializableTree{
		Version: "1.0",
		State:   state,
		Turns:   turns,
		Root:    toSerializableScope(root),
	}
	return json.MarshalIndent(tree, "", "  ")
}

func fromSerializableVector(v *DecisionVector, s serializableVector) error {
	if v == nil {
		return nil
	}
	if len(s.RegretSum) != len(v.RegretSum) {
		return fmt.Errorf("solver: saved vector has %d entries, tree expects %d", len(s.RegretSum), len(v.RegretSum))
	}
	copy(v.RegretSum, s.RegretSum)
	copy(v.StrategySum, s.StrategySum)
	v.recomputeRegretMagnitudeLocked()
	return nil
}

func fromSerializableMatrix(m *DecisionMatrix, s serializableMatrix) error {
	if m.IsTrivial() {
		return nil
	}
	if len(s.Vectors) != len(m.vectors) {
		return fmt.Errorf("solver: saved matrix has %d vectors, tree expects %d", len(s.Vectors), len(m.vectors))
	}
	for i := range m.vectors {
		if err := fromSerializableVector(&m.vectors[i], s.Vectors[i]); err != nil {
			return err
		}
	}
	return nil
}

func fromSerializableMatrices(m *DecisionMatrices, s serializableMatrices) error {
	if m.symmetrical {
		if s.Shared == nil {
			return fmt.Errorf("solver: tree expects a symmetrical matrix but the save does not have one")
		}
		return fromSerializableMatrix(&m.shared, *s.Shared)
	}
	for _, player := range game.Players {
		if err := fromSerializableMatrix(&m.pair[player], s.Pair[player]); err != nil {
			return err
		}
	}
	return nil
}

func fromSerializableScope(s *Scope, saved serializableScope) error {
	if s.Completed {
		return nil
	}
	if s.Unexplored {
		if !saved.Unexplored {
			return fmt.Errorf("solver: tree expects an unexplored leaf but the save has an explored one")
		}
		return nil
	}
	if saved.Unexplored {
		return fmt.Errorf("solver: save has an unexplored leaf but the regenerated tree expects an explored one")
	}
	if err := fromSerializableMatrices(&s.Matrices, saved.Matrices); err != nil {
		return err
	}
	if len(saved.Next) != len(s.Next) {
		return fmt.Errorf("solver: saved tree has %d children, regenerated tree expects %d", len(saved.Next), len(s.Next))
	}
	for i := range s.Next {
		if err := fromSerializableScope(&s.Next[i], saved.Next[i]); err != nil {
			return err
		}
	}
	return nil
}

// FromJSON rebuilds a trained tree from JSON bytes: the saved
// KnownState and turn horizon drive a fresh Generate(), and the saved
// regret/strategy weights are copied into the freshly shaped tree. The
// tree is regenerated rather than deserialized directly because its
// shape (decision and reveal counts at every node) is a pure function
// of the KnownState and turn horizon, and storing it twice would
// invite the two copies to drift apart.
func FromJSON(data []byte) (game.KnownState, *Scope, error) {
	var tree SerializableTree
	if err := json.Unmarshal(data, &tree); err != nil {
		return game.KnownState{}, nil, fmt.Errorf("solver: decoding saved tree: %w", err)
	}

	root := Generator{State: tree.State, Turns: tree.Turns}.Generate()
	if err := fromSerializableScope(&root, tree.Root); err != nil {
		return game.KnownState{}, nil, fmt.Errorf("solver: saved tree does not match its own KnownState: %w", err)
	}
	return tree.State, &root, nil
}

// SaveToFile writes a trained tree to a JSON file.
func SaveToFile(filename string, state game.KnownState, turns int, root *Scope) error {
	data, err := ToJSON(state, turns, root)
	if err != nil {
		return fmt.Errorf("solver: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}

// LoadFromFile loads a trained tree from a JSON file.
func LoadFromFile(filename string) (game.KnownState, *Scope, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return game.KnownState{}, nil, fmt.Errorf("solver: reading %s: %w", filename, err)
	}
	return FromJSON(data)
}
