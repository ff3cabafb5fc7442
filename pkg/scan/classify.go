// Package scan turns one reference page into an ordered stream of records.
//
// Three line recognizers are applied in priority order: constant
// declaration, function-prototype open, parameter continuation or
// terminator. Lines matching none are surrounding prose or unrelated markup
// and are skipped without side effects. The recognizers are deliberately
// coupled to the refpage line format; changing the documentation source
// means changing them here.
package scan

import (
	"regexp"
	"strings"

	"github.com/odvcencio/glgen/pkg/record"
)

var (
	constantRe = regexp.MustCompile(`<constant>\s*(GL_[A-Za-z0-9_]+)\s*</constant>`)
	funcOpenRe = regexp.MustCompile(`<funcdef>\s*([A-Za-z_][A-Za-z0-9_ ]*?(?:\s*\*+)?)\s*<function>\s*([A-Za-z_][A-Za-z0-9_]*)\s*</function>\s*</funcdef>`)
	paramRe    = regexp.MustCompile(`<paramdef>\s*([A-Za-z_][A-Za-z0-9_ ]*?(?:\s*\*+)?)\s*<parameter>\s*([A-Za-z_][A-Za-z0-9_]*)\s*</parameter>\s*</paramdef>`)
)

// terminatorSuffix closes a prototype. This is a literal suffix test on the
// raw line: markup reordered after the closing tag breaks recognition.
const terminatorSuffix = "</funcprototype>"

// Class is the recognizer category a line falls into.
type Class int

const (
	ClassNone     Class = iota // prose or unrecognized markup; skipped
	ClassConstant              // constant declaration
	ClassOpen                  // function-prototype open
	ClassPart                  // parameter continuation and/or terminator
)

func (c Class) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassConstant:
		return "constant"
	case ClassOpen:
		return "open"
	case ClassPart:
		return "part"
	}
	return "invalid"
}

// lineMatch carries whatever the winning recognizer captured from a line.
type lineMatch struct {
	class      Class
	name       string        // constant or function name
	returnType string        // function return type, open lines only
	param      *record.Param // first/next parameter, if the line carries one
	terminated bool          // line ends the prototype
}

// classify applies the recognizers in priority order. A recognizer that
// partially matches but fails full capture yields ClassNone, never an error.
func classify(line string) lineMatch {
	if m := constantRe.FindStringSubmatch(line); m != nil {
		return lineMatch{class: ClassConstant, name: m[1]}
	}
	terminated := strings.HasSuffix(line, terminatorSuffix)
	if m := funcOpenRe.FindStringSubmatch(line); m != nil {
		return lineMatch{
			class:      ClassOpen,
			name:       m[2],
			returnType: normalizeType(m[1]),
			param:      matchParam(line),
			terminated: terminated,
		}
	}
	if p := matchParam(line); p != nil {
		return lineMatch{class: ClassPart, param: p, terminated: terminated}
	}
	if terminated {
		return lineMatch{class: ClassPart, terminated: true}
	}
	return lineMatch{class: ClassNone}
}

// matchParam captures one (type, name) pair from a paramdef on the line.
// A bare <paramdef>void</paramdef> carries no <parameter> and contributes
// no parameter.
func matchParam(line string) *record.Param {
	m := paramRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	return &record.Param{Type: normalizeType(m[1]), Name: m[2]}
}

func normalizeType(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
