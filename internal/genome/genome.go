package genome

import "evoserve/internal/rng"

// Length bounds. Initial random genomes draw their length uniformly in
// [MinLen, MaxLen]; mutation may grow or shrink a genome but it is always
// clamped back into [1, MaxAbsLen].
const (
	MinLen    = 8
	MaxLen    = 32
	MaxAbsLen = 64
)

// PushArgMin and PushArgMax bound both freshly drawn PUSH arguments and
// the clamp applied after tweak-push mutation.
const (
	PushArgMin = -10.0
	PushArgMax = 10.0
)

// Genome is an ordered program of 1..64 instructions.
type Genome struct {
	Instructions []Instruction `json:"instructions"`
}

// Clone returns a deep copy; genomes are cloned on every elitist
// carry-over and every reproduction step so that mutating a child never
// aliases a parent or the population's recorded best.
func (g Genome) Clone() Genome {
	out := Genome{Instructions: make([]Instruction, len(g.Instructions))}
	for i, instr := range g.Instructions {
		out.Instructions[i] = instr
		if instr.Arg != nil {
			v := *instr.Arg
			out.Instructions[i].Arg = &v
		}
	}
	return out
}

// RandomInstruction draws one well-formed instruction: op uniform over
// the 12-symbol set, PUSH carries a uniform real in [-10, 10), LOAD/STORE
// carry a uniform register index in {0,1,2,3}, everything else carries
// no argument.
func RandomInstruction(r *rng.Source) Instruction {
	op := Opcodes[r.IntN(len(Opcodes))]
	switch op {
	case OpPush:
		return Instruction{Op: op, Arg: Float64(r.Float64Range(PushArgMin, PushArgMax))}
	case OpLoad, OpStore:
		return Instruction{Op: op, Arg: Float64(float64(r.IntN(RegisterCount)))}
	default:
		return Instruction{Op: op}
	}
}

// Random draws a genome of uniform random length in [MinLen, MaxLen]
// (inclusive), each instruction drawn in order from r.
func Random(r *rng.Source) Genome {
	length := MinLen + r.IntN(MaxLen-MinLen+1)
	instrs := make([]Instruction, length)
	for i := range instrs {
		instrs[i] = RandomInstruction(r)
	}
	return Genome{Instructions: instrs}
}
