package repositories

// ClipboardRepository pushes text to the system clipboard.
type ClipboardRepository interface {
	WriteAll(text string) error
}
