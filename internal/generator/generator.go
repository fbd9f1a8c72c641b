package generator

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/okkostudio/wren2c/internal/encoder"
	"github.com/okkostudio/wren2c/internal/fsutil"
)

// ErrStale is returned by Check when the artifact on disk does not match
// what Generate would write.
var ErrStale = errors.New("generated file is out of date")

// Job describes one script to convert.
type Job struct {
	// Input is the script path. It is also the origin recorded in the header.
	Input string
	// Output is the include file to write.
	Output string
	// Module overrides the identifier derived from Input.
	Module string
}

// Options contains optional flags for the code generation process.
type Options struct {
	// EscapeBackslashes doubles backslashes in the embedded text.
	EscapeBackslashes bool
}

// Result summarizes a completed conversion.
type Result struct {
	Module string
	Lines  int
	Bytes  int
}

// Generate converts job.Input into the include fragment at job.Output.
// The output is replaced atomically; on failure it keeps its previous
// content or stays absent.
//
// Parameters:
//   - job: The input and output paths.
//   - opts: Encoding options.
//
// Returns:
//   - *Result: Details of the written artifact.
//   - error: An *Error naming the failing operation and path.
func Generate(job Job, opts Options) (*Result, error) {
	content, res, err := render(job, opts)
	if err != nil {
		return nil, err
	}

	slog.Debug("writing artifact", "path", job.Output, "bytes", len(content))
	if err := fsutil.WriteFileAtomic(job.Output, content, 0644); err != nil {
		return nil, &Error{Op: OpWrite, Path: job.Output, Err: err}
	}

	slog.Debug("generated", "input", job.Input, "output", job.Output, "module", res.Module, "lines", res.Lines)
	return res, nil
}

// Render returns the artifact Generate would write, without touching the
// output path.
func Render(job Job, opts Options) ([]byte, error) {
	content, _, err := render(job, opts)
	return content, err
}

// Check reports whether job.Output is up to date with job.Input. A missing
// or different artifact yields an error wrapping ErrStale.
func Check(job Job, opts Options) error {
	want, _, err := render(job, opts)
	if err != nil {
		return err
	}

	got, err := os.ReadFile(job.Output)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w (missing)", job.Output, ErrStale)
		}
		return &Error{Op: OpRead, Path: job.Output, Err: err}
	}

	if !bytes.Equal(got, want) {
		return fmt.Errorf("%s: %w", job.Output, ErrStale)
	}
	slog.Debug("artifact up to date", "path", job.Output)
	return nil
}

func render(job Job, opts Options) ([]byte, *Result, error) {
	slog.Debug("reading script", "path", job.Input)
	data, err := os.ReadFile(job.Input)
	if err != nil {
		return nil, nil, &Error{Op: OpRead, Path: job.Input, Err: err}
	}

	module := job.Module
	if module == "" {
		module = encoder.ModuleName(job.Input)
		if !encoder.IsIdentifier(module) {
			slog.Warn("derived module name is not a valid C identifier", "module", module, "input", job.Input)
		}
	}

	lines := encoder.SplitLines(data)
	text, err := encoder.Render(encoder.Source{
		Origin: job.Input,
		Module: module,
		Lines:  lines,
	}, encoder.Options{EscapeBackslashes: opts.EscapeBackslashes})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to render %s: %w", job.Input, err)
	}

	return []byte(text), &Result{Module: module, Lines: len(lines), Bytes: len(text)}, nil
}
