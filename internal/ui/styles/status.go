package styles

// Status words printed in front of a package ID.
const (
	StatusDone      = "done"
	StatusFailed    = "failed"
	StatusRemoved   = "removed"
	StatusSkipped   = "skipped"
	StatusExists    = "exists"
	StatusInstalled = "built"
)

// StatusWord renders a status word in the color matching its outcome.
// Unknown words use the normal text color.
func StatusWord(word string) string {
	switch word {
	case StatusDone, StatusRemoved, StatusInstalled:
		return SuccessStyle.Render(word)
	case StatusFailed:
		return ErrorStyle.Render(word)
	case StatusSkipped:
		return MutedStyle.Render(word)
	case StatusExists:
		return WarningStyle.Render(word)
	default:
		return NormalStyle.Render(word)
	}
}
