package batch

import (
	"context"

	"github.com/raphi011/aurx/internal/location"
	"github.com/raphi011/aurx/internal/log"
	"github.com/raphi011/aurx/internal/repo"
)

// Lister streams the working copies selected by targets.
type Lister struct {
	Root      string
	Regex     bool
	OnNoMatch NoMatchFunc
}

// List calls fn with the absolute path of every selected working copy.
// A bad pattern or unreadable root counts as one failure.
func (ls *Lister) List(ctx context.Context, targets []location.Location, fn func(path string)) Outcome {
	var out Outcome

	matches, err := repo.MatchingExisting(ls.Root, targets, ls.Regex)
	if err != nil {
		log.FromContext(ctx).Printf("%v\n", err)
		out.Fail()
		return out
	}

	matched := 0
	for path := range matches {
		matched++
		fn(path)
	}
	if matched == 0 {
		notifyNoMatch(ctx, ls.OnNoMatch, ls.Root, targets)
	}
	return out
}
