package genome

// Opcode is one of the twelve symbols a stack-VM instruction may carry.
// It is a distinct type, not a bare string, but any string can still be
// converted to it (e.g. Opcode("WAT"), or decoded JSON); the VM reports
// unknown_opcode for values outside the twelve constants below.
type Opcode string

const (
	OpPush  Opcode = "PUSH"
	OpLoad  Opcode = "LOAD"
	OpStore Opcode = "STORE"
	OpAdd   Opcode = "ADD"
	OpSub   Opcode = "SUB"
	OpMul   Opcode = "MUL"
	OpDiv   Opcode = "DIV"
	OpDup   Opcode = "DUP"
	OpSwap  Opcode = "SWAP"
	OpPop   Opcode = "POP"
	OpHalt  Opcode = "HALT"
	OpNop   Opcode = "NOP"
)

// Opcodes lists the fixed 12-symbol instruction set in a stable order,
// used both by random construction and by anything that needs to
// enumerate it (docs, tests).
var Opcodes = []Opcode{
	OpPush, OpLoad, OpStore, OpAdd, OpSub, OpMul, OpDiv, OpDup, OpSwap, OpPop, OpHalt, OpNop,
}

// RegisterCount is the number of addressable registers, R[0]..R[3].
const RegisterCount = 4

// Instruction is a single (op, arg) pair. Arg is nil for ops that take
// none; PUSH carries any finite real, LOAD/STORE carry a register index
// stored as a float (0..3).
type Instruction struct {
	Op  Opcode   `json:"op"`
	Arg *float64 `json:"arg,omitempty"`
}

// TakesArg reports whether op is expected to carry an argument under
// well-formed construction. STORE and LOAD take a register index, PUSH
// takes a value; the rest take none.
func (op Opcode) TakesArg() bool {
	switch op {
	case OpPush, OpLoad, OpStore:
		return true
	default:
		return false
	}
}

// ParseRegister validates arg as an exact register index (0.0, 1.0, 2.0
// or 3.0) and returns it as an int. Any other value, including a nil
// arg, is invalid_register.
func ParseRegister(arg *float64) (int, bool) {
	if arg == nil {
		return 0, false
	}
	switch *arg {
	case 0.0:
		return 0, true
	case 1.0:
		return 1, true
	case 2.0:
		return 2, true
	case 3.0:
		return 3, true
	default:
		return 0, false
	}
}

// Float64 is a small constructor helper for building an *float64 literal
// in instruction construction and tests.
func Float64(v float64) *float64 {
	return &v
}
