package scaffold

import "strings"

// Render substitutes ///KEY/// markers in template text.
//
// Only the first occurrence of each marker is replaced. Templates that
// repeat a marker keep the later occurrences literal; so do markers for
// keys missing from vars. Neither case is an error.
func Render(text string, vars map[string]string) string {
	for key, value := range vars {
		text = strings.Replace(text, "///"+key+"///", value, 1)
	}
	return text
}
