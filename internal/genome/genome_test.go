package genome

import (
	"testing"

	"evoserve/internal/rng"
)

func TestRandomGenomeLengthInRange(t *testing.T) {
	r := rng.New(1)
	for i := 0; i < 50; i++ {
		g := Random(r)
		if len(g.Instructions) < MinLen || len(g.Instructions) > MaxLen {
			t.Fatalf("length %d out of [%d,%d]", len(g.Instructions), MinLen, MaxLen)
		}
	}
}

func TestRandomInstructionWellFormed(t *testing.T) {
	r := rng.New(2)
	for i := 0; i < 500; i++ {
		instr := RandomInstruction(r)
		switch instr.Op {
		case OpPush:
			if instr.Arg == nil {
				t.Fatalf("PUSH missing arg")
			}
			if *instr.Arg < PushArgMin || *instr.Arg >= PushArgMax {
				t.Fatalf("PUSH arg out of range: %v", *instr.Arg)
			}
		case OpLoad, OpStore:
			if _, ok := ParseRegister(instr.Arg); !ok {
				t.Fatalf("%s has invalid register arg %v", instr.Op, instr.Arg)
			}
		default:
			if instr.Arg != nil {
				t.Fatalf("%s should carry no arg, got %v", instr.Op, *instr.Arg)
			}
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := Genome{Instructions: []Instruction{{Op: OpPush, Arg: Float64(1)}}}
	clone := g.Clone()
	*clone.Instructions[0].Arg = 99
	if *g.Instructions[0].Arg != 1 {
		t.Fatalf("clone mutation leaked into original: %v", *g.Instructions[0].Arg)
	}
}

func TestDeterministicSequenceForSameSeed(t *testing.T) {
	a := Random(rng.New(42))
	b := Random(rng.New(42))
	if len(a.Instructions) != len(b.Instructions) {
		t.Fatalf("length mismatch: %d vs %d", len(a.Instructions), len(b.Instructions))
	}
	for i := range a.Instructions {
		if a.Instructions[i].Op != b.Instructions[i].Op {
			t.Fatalf("op mismatch at %d", i)
		}
	}
}
