package genome

import (
	"testing"

	"evoserve/internal/rng"
)

func TestMutateEmptyGenomeInsertsOne(t *testing.T) {
	g := Genome{}
	Mutate(&g, rng.New(1))
	if len(g.Instructions) != 1 {
		t.Fatalf("expected length 1, got %d", len(g.Instructions))
	}
}

func TestMutateNeverExceedsMaxAbsLen(t *testing.T) {
	r := rng.New(3)
	g := Random(r)
	for i := 0; i < 1000; i++ {
		Mutate(&g, r)
		if len(g.Instructions) > MaxAbsLen {
			t.Fatalf("length %d exceeds MaxAbsLen", len(g.Instructions))
		}
		if len(g.Instructions) == 0 {
			t.Fatalf("mutation left genome empty")
		}
	}
}

func TestTweakPushClampsToRange(t *testing.T) {
	g := Genome{Instructions: []Instruction{{Op: OpPush, Arg: Float64(9.99)}}}
	r := rng.New(5)
	for i := 0; i < 200; i++ {
		tweakPush(&g, r)
		if *g.Instructions[0].Arg < PushArgMin || *g.Instructions[0].Arg > PushArgMax {
			t.Fatalf("tweak-push arg out of range: %v", *g.Instructions[0].Arg)
		}
	}
}

func TestTweakPushFallsBackWithoutPush(t *testing.T) {
	g := Genome{Instructions: []Instruction{{Op: OpNop}}}
	r := rng.New(6)
	tweakPush(&g, r)
	if g.Instructions[0].Op == OpNop && g.Instructions[0].Arg != nil {
		t.Fatalf("fallback should produce a well-formed instruction")
	}
}

func TestInsertFallsBackAtMaxLen(t *testing.T) {
	instrs := make([]Instruction, MaxAbsLen)
	for i := range instrs {
		instrs[i] = Instruction{Op: OpNop}
	}
	g := Genome{Instructions: instrs}
	r := rng.New(7)
	insert(&g, r)
	if len(g.Instructions) != MaxAbsLen {
		t.Fatalf("expected fallback to point-mutate, length changed to %d", len(g.Instructions))
	}
}

func TestDeleteNoopsAtLengthOne(t *testing.T) {
	g := Genome{Instructions: []Instruction{{Op: OpNop}}}
	r := rng.New(8)
	deleteInstruction(&g, r)
	if len(g.Instructions) != 1 {
		t.Fatalf("expected length to stay 1, got %d", len(g.Instructions))
	}
}

func TestMutateIsDeterministicForSameSeed(t *testing.T) {
	g1 := Random(rng.New(11))
	g2 := Random(rng.New(11))
	r1 := rng.New(22)
	r2 := rng.New(22)
	for i := 0; i < 20; i++ {
		Mutate(&g1, r1)
		Mutate(&g2, r2)
	}
	if len(g1.Instructions) != len(g2.Instructions) {
		t.Fatalf("length mismatch after mutation sequence")
	}
	for i := range g1.Instructions {
		if g1.Instructions[i].Op != g2.Instructions[i].Op {
			t.Fatalf("op mismatch at %d", i)
		}
	}
}
