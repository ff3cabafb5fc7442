package gen

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

const (
	clearDoc = `<refentry id="glClear">
<funcprototype><funcdef>void <function>glClear</function></funcdef><paramdef>int <parameter>mask</parameter></paramdef>);</funcprototype>
<para>Masks include <constant>GL_COLOR_BUFFER_BIT</constant>.</para>
</refentry>
`
	blendDoc = `<funcprototype><funcdef>void <function>glBlendFuncSeparate</function></funcdef><paramdef>int <parameter>srcRGB</parameter></paramdef>
<paramdef>int <parameter>dstRGB</parameter></paramdef>
<paramdef>int <parameter>srcAlpha</parameter></paramdef>
<paramdef>int <parameter>dstAlpha</parameter></paramdef>);</funcprototype>
`
)

// memOpen serves documents from a map, standing in for the filesystem.
func memOpen(docs map[string]string) OpenFunc {
	return func(id string) (io.ReadCloser, error) {
		body, ok := docs[id]
		if !ok {
			return nil, fs.ErrNotExist
		}
		return io.NopCloser(strings.NewReader(body)), nil
	}
}

func runToString(t *testing.T, opts Options) string {
	t.Helper()
	opts.Output = filepath.Join(t.TempDir(), "out.java")
	if err := Run(opts); err != nil {
		t.Fatalf("Run: %v", err)
	}
	out, err := os.ReadFile(opts.Output)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

// wantOrdered checks that each fragment appears, each after the previous one.
func wantOrdered(t *testing.T, out string, frags ...string) {
	t.Helper()
	pos := 0
	for _, frag := range frags {
		i := strings.Index(out[pos:], frag)
		if i < 0 {
			t.Fatalf("missing or out of order: %q\n%s", frag, out)
		}
		pos += i + len(frag)
	}
}

func TestRunEmissionOrder(t *testing.T) {
	out := runToString(t, Options{
		Inputs: []string{"glClear.xml", "glBlendFuncSeparate.xml"},
		Open: memOpen(map[string]string{
			"glClear.xml":             clearDoc,
			"glBlendFuncSeparate.xml": blendDoc,
		}),
	})
	wantOrdered(t, out,
		"public class GLPass {",
		"// ---- glClear.xml ----",
		"public void glClear(int mask) {",
		"gl().glClear(mask);",
		"public static final int GL_COLOR_BUFFER_BIT = GL2ES2.GL_COLOR_BUFFER_BIT;",
		"// ---- glBlendFuncSeparate.xml ----",
		"public void glBlendFuncSeparate(int srcRGB, int dstRGB, int srcAlpha, int dstAlpha) {",
		"gl().glBlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha);",
		"private GL2ES2 gl() {",
	)
}

func TestRunIdempotent(t *testing.T) {
	opts := Options{
		Inputs: []string{"glClear.xml", "glBlendFuncSeparate.xml"},
		Open: memOpen(map[string]string{
			"glClear.xml":             clearDoc,
			"glBlendFuncSeparate.xml": blendDoc,
		}),
	}
	first := runToString(t, opts)
	second := runToString(t, opts)
	if first != second {
		t.Error("two runs over unchanged inputs differ")
	}
}

func TestRunDuplicateKeepFirst(t *testing.T) {
	var logBuf bytes.Buffer
	log := zerolog.New(&logBuf)
	out := runToString(t, Options{
		Inputs: []string{"a.xml", "b.xml"},
		Open: memOpen(map[string]string{
			"a.xml": "<constant>GL_TRIANGLES</constant>\n",
			"b.xml": "<constant>GL_TRIANGLES</constant>\n",
		}),
		Log: &log,
	})
	if n := strings.Count(out, "public static final int GL_TRIANGLES"); n != 1 {
		t.Errorf("GL_TRIANGLES emitted %d times, want 1", n)
	}
	logged := logBuf.String()
	if !strings.Contains(logged, "duplicate declaration skipped") {
		t.Errorf("duplicate not reported: %s", logged)
	}
	for _, frag := range []string{"a.xml", "b.xml", "GL_TRIANGLES"} {
		if !strings.Contains(logged, frag) {
			t.Errorf("duplicate report missing %q: %s", frag, logged)
		}
	}
}

func TestRunKeepDuplicates(t *testing.T) {
	out := runToString(t, Options{
		Inputs: []string{"a.xml", "b.xml"},
		Open: memOpen(map[string]string{
			"a.xml": "<constant>GL_TRIANGLES</constant>\n",
			"b.xml": "<constant>GL_TRIANGLES</constant>\n",
		}),
		KeepDuplicates: true,
	})
	if n := strings.Count(out, "public static final int GL_TRIANGLES"); n != 2 {
		t.Errorf("GL_TRIANGLES emitted %d times, want 2", n)
	}
}

func TestRunUnterminatedPrototypeFails(t *testing.T) {
	opts := Options{
		Inputs: []string{"broken.xml"},
		Output: filepath.Join(t.TempDir(), "out.java"),
		Open: memOpen(map[string]string{
			"broken.xml": `<funcprototype><funcdef>void <function>glOops</function></funcdef><paramdef>int <parameter>a</parameter></paramdef>` + "\n",
		}),
	}
	err := Run(opts)
	if err == nil {
		t.Fatal("expected an error for an unterminated prototype")
	}
	for _, frag := range []string{"broken.xml", "glOops", "line 1"} {
		if !strings.Contains(err.Error(), frag) {
			t.Errorf("error %q does not mention %q", err, frag)
		}
	}
}

func TestRunValidation(t *testing.T) {
	docs := memOpen(map[string]string{"a.xml": ""})
	tests := []struct {
		name string
		opts Options
		frag string
	}{
		{
			name: "no inputs",
			opts: Options{Output: "out.java", Open: docs},
			frag: "no input documents",
		},
		{
			name: "no output",
			opts: Options{Inputs: []string{"a.xml"}, Open: docs},
			frag: "no output path",
		},
		{
			name: "repeated input identifier",
			opts: Options{Inputs: []string{"a.xml", "a.xml"}, Output: "out.java", Open: docs},
			frag: "duplicate input document",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Run(tc.opts)
			if err == nil || !strings.Contains(err.Error(), tc.frag) {
				t.Errorf("err = %v, want mention of %q", err, tc.frag)
			}
		})
	}
}

func TestRunMissingDocumentFails(t *testing.T) {
	err := Run(Options{
		Inputs: []string{"absent.xml"},
		Output: filepath.Join(t.TempDir(), "out.java"),
		Open:   memOpen(nil),
	})
	if err == nil || !strings.Contains(err.Error(), "absent.xml") {
		t.Errorf("err = %v, want open failure naming absent.xml", err)
	}
}

func TestRunEmptyDocumentStillGetsBanner(t *testing.T) {
	out := runToString(t, Options{
		Inputs: []string{"empty.xml"},
		Open:   memOpen(map[string]string{"empty.xml": "nothing to see\n"}),
	})
	wantOrdered(t, out, "// ---- empty.xml ----", "private GL2ES2 gl() {")
}
