// Package encoder turns script text into a C string literal that can be
// compiled straight into a binary.
//
// The output relies on adjacent string literal concatenation: every source
// line becomes one quoted segment on its own line, terminated by an explicit
// "\n" escape.
package encoder

import (
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/okkostudio/wren2c/internal/templates"
)

// Options controls how lines are escaped.
type Options struct {
	// EscapeBackslashes doubles every backslash before quotes are escaped.
	// Off by default: raw backslashes pass through, so a line ending in a
	// backslash turns the synthesized "\n" into "\\n" in the compiled string.
	EscapeBackslashes bool
}

// Source is a script ready to be rendered.
type Source struct {
	// Origin is the input path recorded verbatim in the header comment.
	Origin string
	// Module names the generated constant (<Module>ModuleSource).
	Module string
	// Lines holds the script text without line terminators.
	Lines []string
}

var (
	quoteEscaper     = strings.NewReplacer(`"`, `\"`)
	backslashEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

	identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// SplitLines splits raw file content into lines. "\r\n", "\n" and a lone
// "\r" all end a line and are excluded from it. A terminator at the end of
// the input does not produce a trailing empty line, and a final line without
// one is kept.
func SplitLines(data []byte) []string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	parts := strings.SplitAfter(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, strings.TrimSuffix(p, "\n"))
	}
	return lines
}

// ModuleName derives the module identifier from a path: directories and
// the final extension are removed. Leading dots never start an extension,
// so ".wren" and "..wren" are returned whole.
func ModuleName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(strings.TrimLeft(base, "."))
	if ext == "" {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// IsIdentifier reports whether s is usable as a C identifier.
func IsIdentifier(s string) bool {
	return identRe.MatchString(s)
}

// EscapeLine returns the quoted literal segment for a single line.
func EscapeLine(line string, opts Options) string {
	escaper := quoteEscaper
	if opts.EscapeBackslashes {
		escaper = backslashEscaper
	}
	return `"` + escaper.Replace(line) + `\n"`
}

// Segments escapes every line in order.
func Segments(lines []string, opts Options) []string {
	segments := make([]string, len(lines))
	for i, line := range lines {
		segments[i] = EscapeLine(line, opts)
	}
	return segments
}

// Literal joins the escaped segments one per output line. An empty script
// yields "" so the declaration stays valid.
func Literal(lines []string, opts Options) string {
	if len(lines) == 0 {
		return `""`
	}
	return strings.Join(Segments(lines, opts), "\n")
}

// Render produces the complete include fragment for src.
func Render(src Source, opts Options) (string, error) {
	tmplContent, err := templates.Get(templates.ModuleInc)
	if err != nil {
		return "", err
	}

	t, err := template.New(templates.ModuleInc).Parse(tmplContent)
	if err != nil {
		return "", err
	}

	data := struct {
		Origin  string
		Module  string
		Literal string
	}{
		Origin:  src.Origin,
		Module:  src.Module,
		Literal: Literal(src.Lines, opts),
	}

	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
