package scan

import (
	"fmt"

	"github.com/odvcencio/glgen/pkg/record"
)

// accumulator reassembles one function signature across however many
// prototype lines it spans. It is an explicit two-state machine so the
// terminator fragility stays in one place.
type accumulator struct {
	st      accState
	partial *record.Function
}

type accState int

const (
	stateIdle accState = iota
	stateAccumulating
)

// feed consumes one classified prototype line. It returns the completed
// function when the line terminates one.
//
// A zero-parameter prototype must carry the terminator on its opening line;
// the open line otherwise moves the machine to accumulating.
func (a *accumulator) feed(lm lineMatch, lineNo int) (*record.Function, error) {
	switch a.st {
	case stateIdle:
		if lm.class != ClassOpen {
			// Stray continuation markup outside a prototype; no record.
			return nil, nil
		}
		fn := &record.Function{Name: lm.name, ReturnType: lm.returnType, Line: lineNo}
		if lm.param != nil {
			fn.Params = append(fn.Params, *lm.param)
		}
		if lm.terminated {
			return fn, nil
		}
		a.st = stateAccumulating
		a.partial = fn
		return nil, nil

	case stateAccumulating:
		if lm.class == ClassOpen {
			return nil, fmt.Errorf("function %s opened at line %d never terminated",
				a.partial.Name, a.partial.Line)
		}
		if lm.param != nil {
			a.partial.Params = append(a.partial.Params, *lm.param)
		}
		if lm.terminated {
			fn := a.partial
			a.st = stateIdle
			a.partial = nil
			return fn, nil
		}
		return nil, nil
	}
	return nil, fmt.Errorf("invalid accumulator state %d", a.st)
}

// pending returns the in-flight partial signature, if any.
func (a *accumulator) pending() *record.Function {
	if a.st == stateAccumulating {
		return a.partial
	}
	return nil
}
