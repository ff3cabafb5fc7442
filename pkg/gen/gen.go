// Package gen drives the single-pass batch run: enumerate documents in
// order, scan each into records, and emit the wrapper class. Everything is
// synchronous and strictly sequential; any I/O failure aborts the run.
package gen

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/odvcencio/glgen/pkg/emit"
	"github.com/odvcencio/glgen/pkg/scan"
)

// Options parameterizes one generation run. Inputs and Output have no
// defaults; a run is always given its document list explicitly.
type Options struct {
	Inputs  []string // ordered document identifiers, each processed exactly once
	Output  string   // path of the generated file, exclusively owned for the run
	Package string   // Java package of the generated class
	Class   string   // name of the generated class

	// KeepDuplicates emits every record even when the name was already
	// emitted by an earlier document, reproducing the manual-post-edit
	// workflow of the original tool. The default keeps the first
	// occurrence and reports the rest.
	KeepDuplicates bool

	// Open resolves a document identifier to its content. Defaults to
	// OpenFile.
	Open OpenFunc

	// Log reports per-document progress and skipped duplicates. Nil
	// silences the run.
	Log *zerolog.Logger
}

// Run executes one generation run. The output file is created at the
// start, written in emission order, and closed on every exit path. A close
// error on an otherwise clean run is surfaced.
func Run(opts Options) (err error) {
	if len(opts.Inputs) == 0 {
		return fmt.Errorf("gen: no input documents")
	}
	if opts.Output == "" {
		return fmt.Errorf("gen: no output path")
	}
	seenDoc := make(map[string]bool, len(opts.Inputs))
	for _, doc := range opts.Inputs {
		if seenDoc[doc] {
			return fmt.Errorf("gen: duplicate input document %s", doc)
		}
		seenDoc[doc] = true
	}

	open := opts.Open
	if open == nil {
		open = OpenFile
	}
	log := zerolog.Nop()
	if opts.Log != nil {
		log = *opts.Log
	}

	out, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("gen: create %s: %w", opts.Output, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("gen: close %s: %w", opts.Output, cerr)
		}
	}()

	w := bufio.NewWriter(out)
	em := emit.New(w, opts.Package, opts.Class)
	if err := em.Prologue(); err != nil {
		return fmt.Errorf("gen: write prologue: %w", err)
	}

	seen := make(map[string]string) // record name -> document that first emitted it
	for _, doc := range opts.Inputs {
		if err := runDocument(doc, open, em, seen, opts.KeepDuplicates, log); err != nil {
			return err
		}
	}

	if err := em.Epilogue(); err != nil {
		return fmt.Errorf("gen: write epilogue: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("gen: flush %s: %w", opts.Output, err)
	}
	return nil
}

func runDocument(doc string, open OpenFunc, em *emit.Emitter, seen map[string]string, keepDup bool, log zerolog.Logger) error {
	r, err := open(doc)
	if err != nil {
		return fmt.Errorf("gen: open %s: %w", doc, err)
	}
	defer r.Close()

	if err := em.Banner(doc); err != nil {
		return fmt.Errorf("gen: write banner for %s: %w", doc, err)
	}

	var emitted, skipped int
	sc := scan.NewScanner(doc, r)
	for sc.Scan() {
		rec := sc.Record()
		name := rec.RecordName()
		if first, dup := seen[name]; dup {
			if !keepDup {
				log.Warn().
					Str("name", name).
					Str("document", doc).
					Str("first", first).
					Msg("duplicate declaration skipped")
				skipped++
				continue
			}
			log.Warn().
				Str("name", name).
				Str("document", doc).
				Str("first", first).
				Msg("duplicate declaration emitted; output needs manual post-editing")
		} else {
			seen[name] = doc
		}
		if err := em.Record(rec); err != nil {
			return fmt.Errorf("gen: write %s %s: %w", rec.RecordKind(), name, err)
		}
		emitted++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("gen: %w", err)
	}

	log.Info().
		Str("document", doc).
		Int("records", emitted).
		Int("duplicates", skipped).
		Msg("document processed")
	return nil
}
