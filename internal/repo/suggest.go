package repo

import "github.com/sahilm/fuzzy"

// maxSuggestions caps how many near matches are offered.
const maxSuggestions = 3

// Suggest returns installed names resembling target, best match first.
func Suggest(target string, names []string) []string {
	if target == "" || len(names) == 0 {
		return nil
	}

	matches := fuzzy.Find(target, names)
	var out []string
	for _, m := range matches {
		if m.Str == target {
			continue
		}
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
