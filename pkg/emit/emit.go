// Package emit renders parsed records into the generated Java wrapper
// class. Every stub forwards through a single private gl() accessor that
// resolves the live binding from a constructor-injected context; nothing in
// the generated class reaches the binding any other way.
package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/odvcencio/glgen/pkg/record"
)

const (
	DefaultPackage = "glwrap"
	DefaultClass   = "GLPass"
)

// Emitter writes the generated class to w. All methods surface write
// errors to the caller; nothing is retried.
type Emitter struct {
	w     io.Writer
	pkg   string
	class string
}

// New returns an Emitter targeting w. Empty pkg or class fall back to the
// defaults.
func New(w io.Writer, pkg, class string) *Emitter {
	if pkg == "" {
		pkg = DefaultPackage
	}
	if class == "" {
		class = DefaultClass
	}
	return &Emitter{w: w, pkg: pkg, class: class}
}

const prologueFormat = `// Generated by glgen. DO NOT EDIT.

package %s;

import com.jogamp.opengl.GL2ES2;
import com.jogamp.opengl.GLContext;

public class %s {

  private final GLContext context;

  public %s(GLContext context) {
    this.context = context;
  }

`

// Prologue writes the file header, imports, class open, and the injected
// context field that the accessor resolves through.
func (e *Emitter) Prologue() error {
	_, err := fmt.Fprintf(e.w, prologueFormat, e.pkg, e.class, e.class)
	return err
}

// Banner separates one source document's records from the next.
func (e *Emitter) Banner(doc string) error {
	_, err := fmt.Fprintf(e.w, "  // ---- %s ----\n\n", doc)
	return err
}

// Constant writes one alias whose value is the same name qualified by the
// external constants namespace.
func (e *Emitter) Constant(c record.Constant) error {
	_, err := fmt.Fprintf(e.w, "  public static final int %s = GL2ES2.%s;\n\n", c.Name, c.Name)
	return err
}

// Function writes one forwarding stub: identical name, identical parameter
// list in captured order, body delegating to the live binding with the
// arguments unchanged. Void functions forward without a return.
func (e *Emitter) Function(f *record.Function) error {
	params := make([]string, len(f.Params))
	args := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Type + " " + p.Name
		args[i] = p.Name
	}
	ret := "return "
	if f.Void() {
		ret = ""
	}
	_, err := fmt.Fprintf(e.w, "  public %s %s(%s) {\n    %sgl().%s(%s);\n  }\n\n",
		f.ReturnType, f.Name, strings.Join(params, ", "),
		ret, f.Name, strings.Join(args, ", "))
	return err
}

const epilogue = `  public String getString(int name) {
    return gl().glGetString(name);
  }

  public void flush() {
    gl().glFlush();
  }

  private GL2ES2 gl() {
    return context.getGL().getGL2ES2();
  }
}
`

// Epilogue writes the two fixed auxiliary pass-throughs, the accessor, and
// the closing brace.
func (e *Emitter) Epilogue() error {
	_, err := io.WriteString(e.w, epilogue)
	return err
}

// Record dispatches to Constant or Function by kind.
func (e *Emitter) Record(r record.Record) error {
	switch r := r.(type) {
	case record.Constant:
		return e.Constant(r)
	case *record.Function:
		return e.Function(r)
	}
	return fmt.Errorf("emit: unsupported record kind %s", r.RecordKind())
}
