package remix

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Suggestions are the canned prompts offered in the lab.
var Suggestions = []string{
	"Make it look like antique bronze with verdigris",
	"Neon cyberpunk aesthetic with glitches",
	"Traditional hand-carved wood with ivory inlays",
}

// Suggest returns the canned prompts that fuzzily match typed, best first.
// A blank input returns every suggestion in order.
func Suggest(typed string) []string {
	typed = strings.TrimSpace(typed)
	if typed == "" {
		return append([]string(nil), Suggestions...)
	}
	matches := fuzzy.Find(typed, Suggestions)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}
