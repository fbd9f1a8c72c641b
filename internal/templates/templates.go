// Package templates embeds the text/template sources of generated files.
package templates

import (
	"embed"
	"fmt"
)

// ModuleInc renders a script as a C string constant for inclusion in a
// translation unit.
const ModuleInc = "module.inc.tmpl"

//go:embed *.tmpl
var templatesFS embed.FS

// Get loads an embedded template by file name, normally ModuleInc. The
// error names the template so a typo in a caller is easy to spot.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}
