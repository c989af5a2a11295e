package game

import "testing"

func TestCreatureStrength(t *testing.T) {
	cases := map[Creature]int{
		Wall:    0,
		Seer:    0,
		Rogue:   1,
		Bard:    2,
		Monarch: 6,
	}
	for c, want := range cases {
		if got := c.Strength(); got != want {
			t.Errorf("%v.Strength() = %d, want %d", c, got, want)
		}
	}
}

func TestCreatureSetAddHasRemove(t *testing.T) {
	s := EmptyCreatureSet
	if s.Has(Rogue) {
		t.Errorf("empty set should not have Rogue")
	}
	s = s.Add(Rogue)
	if !s.Has(Rogue) {
		t.Errorf("expected Rogue to be present after Add")
	}
	s = s.Remove(Rogue)
	if s.Has(Rogue) {
		t.Errorf("expected Rogue to be absent after Remove")
	}
}

func TestCreatureSetUnionIntersectMinus(t *testing.T) {
	a := SingletonCreature(Rogue).Add(Bard)
	b := SingletonCreature(Bard).Add(Witch)

	union := a.Union(b)
	for _, c := range []Creature{Rogue, Bard, Witch} {
		if !union.Has(c) {
			t.Errorf("union missing %v", c)
		}
	}

	inter := a.Intersect(b)
	if inter.Len() != 1 || !inter.Has(Bard) {
		t.Errorf("Intersect = %v, want {Bard}", inter)
	}

	minus := a.Minus(b)
	if minus.Len() != 1 || !minus.Has(Rogue) {
		t.Errorf("Minus = %v, want {Rogue}", minus)
	}
}

func TestCreatureSetNot(t *testing.T) {
	s := AllCreatures().Remove(Wall)
	not := s.Not()
	if not.Len() != 1 || !not.Has(Wall) {
		t.Errorf("Not() = %v, want {Wall}", not)
	}
}

func TestCreatureSetIsSubsetOf(t *testing.T) {
	small := SingletonCreature(Rogue)
	big := SingletonCreature(Rogue).Add(Bard)
	if !small.IsSubsetOf(big) {
		t.Errorf("expected %v to be a subset of %v", small, big)
	}
	if big.IsSubsetOf(small) {
		t.Errorf("did not expect %v to be a subset of %v", big, small)
	}
}

func TestCreatureSetEncodeDecodeRelativeToRoundTrip(t *testing.T) {
	other := SingletonCreature(Rogue).Add(Bard).Add(Witch).Add(Monarch)
	for _, sub := range other.SubsetsOfSize(2) {
		encoded := sub.EncodeRelativeTo(other)
		decoded, ok := DecodeCreatureSetRelativeTo(encoded, other)
		if !ok {
			t.Fatalf("failed to decode subset %v of %v", sub, other)
		}
		if decoded != sub {
			t.Errorf("round trip mismatch: started with %v, got %v", sub, decoded)
		}
	}
}

func TestCreatureSetHandsOfSize(t *testing.T) {
	s := AllCreatures()
	if got, want := s.HandsOfSize(2), 55; got != want {
		t.Errorf("HandsOfSize(2) on all 11 creatures = %d, want %d", got, want)
	}
}

func TestCreatureSetElementsOrder(t *testing.T) {
	s := SingletonCreature(Monarch).Add(Wall).Add(Bard)
	got := s.Elements()
	want := []Creature{Wall, Bard, Monarch}
	if len(got) != len(want) {
		t.Fatalf("Elements() returned %d creatures, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Elements()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestOptSingletonCreature(t *testing.T) {
	if got := OptSingletonCreature(nil); got != EmptyCreatureSet {
		t.Errorf("OptSingletonCreature(nil) = %v, want empty", got)
	}
	c := Rogue
	if got := OptSingletonCreature(&c); got != SingletonCreature(Rogue) {
		t.Errorf("OptSingletonCreature(&Rogue) = %v, want {Rogue}", got)
	}
}

func TestAllCreatureSetsCount(t *testing.T) {
	all := AllCreatureSets()
	if len(all) != 1<<NumCreatures() {
		t.Errorf("AllCreatureSets() returned %d sets, want %d", len(all), 1<<NumCreatures())
	}
}
