package record

import "fmt"

// Kind classifies what a parsed unit of input represents.
type Kind int

const (
	KindConstant Kind = iota // symbolic constant alias
	KindFunction             // forwarding function signature
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindFunction:
		return "function"
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// Record is a completed unit parsed from a reference page: either a
// Constant or a *Function. Only finished records leave the scanner, so a
// Record is never observable half-built.
type Record interface {
	RecordKind() Kind
	RecordName() string
}

// Constant is a symbolic constant captured from a reference page.
type Constant struct {
	Name string
}

func (Constant) RecordKind() Kind { return KindConstant }

func (c Constant) RecordName() string { return c.Name }

// Param is one function parameter, type and name exactly as captured.
type Param struct {
	Type string
	Name string
}

// Function is a full signature reassembled from one or more prototype
// lines. Params preserve declaration order.
type Function struct {
	Name       string
	ReturnType string
	Params     []Param
	Line       int // 1-based line where the prototype opened
}

func (*Function) RecordKind() Kind { return KindFunction }

func (f *Function) RecordName() string { return f.Name }

// Void reports whether the function returns nothing.
func (f *Function) Void() bool { return f.ReturnType == "void" }
