package renderer

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleItem
	StyleRoom
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
	StyleTitle
)

// Renderer defines the interface for game output backends
type Renderer interface {
	// Init initializes the renderer (colors, etc.)
	Init()

	// Clear clears the display
	Clear()

	// ShowTitle displays the game title
	ShowTitle(title string)

	// ShowMessage displays one message, expanding its markup
	ShowMessage(msg string)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string
}
