package genome

import "evoserve/internal/rng"

// Mutate applies one mutation operator to g in place. The four operators
// are chosen uniformly; a mutation that would leave the genome empty
// instead inserts a random instruction, and one that would leave it
// longer than MaxAbsLen is truncated. RNG consumption order (operator
// choice first, then the operator's own draws, including the extra draw
// a fallback path consumes) is part of the determinism contract and
// must not be reordered.
func Mutate(g *Genome, r *rng.Source) {
	if len(g.Instructions) == 0 {
		g.Instructions = append(g.Instructions, RandomInstruction(r))
		return
	}

	switch r.IntN(4) {
	case 0:
		pointMutate(g, r)
	case 1:
		tweakPush(g, r)
	case 2:
		insert(g, r)
	default:
		deleteInstruction(g, r)
	}

	if len(g.Instructions) == 0 {
		g.Instructions = append(g.Instructions, RandomInstruction(r))
	}
	if len(g.Instructions) > MaxAbsLen {
		g.Instructions = g.Instructions[:MaxAbsLen]
	}
}

func pointMutate(g *Genome, r *rng.Source) {
	idx := r.IntN(len(g.Instructions))
	g.Instructions[idx] = RandomInstruction(r)
}

func tweakPush(g *Genome, r *rng.Source) {
	var pushIdx []int
	for i, instr := range g.Instructions {
		if instr.Op == OpPush {
			pushIdx = append(pushIdx, i)
		}
	}
	if len(pushIdx) == 0 {
		pointMutate(g, r)
		return
	}
	idx := pushIdx[r.IntN(len(pushIdx))]
	noise := r.Float64Range(-1, 1)
	current := 0.0
	if g.Instructions[idx].Arg != nil {
		current = *g.Instructions[idx].Arg
	}
	next := clamp(current+noise, PushArgMin, PushArgMax)
	g.Instructions[idx].Arg = Float64(next)
}

func insert(g *Genome, r *rng.Source) {
	if len(g.Instructions) >= MaxAbsLen {
		pointMutate(g, r)
		return
	}
	idx := r.IntN(len(g.Instructions) + 1)
	instr := RandomInstruction(r)
	g.Instructions = append(g.Instructions, Instruction{})
	copy(g.Instructions[idx+1:], g.Instructions[idx:])
	g.Instructions[idx] = instr
}

func deleteInstruction(g *Genome, r *rng.Source) {
	if len(g.Instructions) <= 1 {
		return
	}
	idx := r.IntN(len(g.Instructions))
	g.Instructions = append(g.Instructions[:idx], g.Instructions[idx+1:]...)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
