package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gookit/color"

	"tangrin/pkg/engine/terminal"
	"tangrin/pkg/game/renderer"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorItem        color.Style
	colorRoom        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style

	titleStyle lipgloss.Style
}

// New creates a new TUI renderer writing to out; nil means stdout.
func New(out io.Writer) *TUIRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TUIRenderer{out: out}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorItem = color.Style{color.FgGreen, color.OpBold}
	t.colorRoom = color.Style{color.FgCyan}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	t.titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214")).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 3)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if t.out != os.Stdout || !terminal.IsInteractive(os.Stdout) {
		fmt.Fprintln(t.out)
		return
	}
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// ShowTitle draws the title in a box centred on the terminal, underlined with stars
func (t *TUIRenderer) ShowTitle(title string) {
	width := terminal.GetWidth()
	box := t.titleStyle.Render(title)
	fmt.Fprintln(t.out, lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
	stars := strings.Repeat("*", lipgloss.Width(box))
	fmt.Fprintln(t.out, lipgloss.PlaceHorizontal(width, lipgloss.Center, stars))
	fmt.Fprintln(t.out)
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, t.FormatText(msg))
}

// StyleText applies a style to text and returns the styled string
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleTitle:
		return t.titleStyle.Render(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.ApplyMarkup(t.style, msg, args...)
}

func (t *TUIRenderer) style(function, operand string) (string, bool) {
	switch function {
	case "GT":
		return operand, true
	case "ITEM":
		return t.StyleText(operand, renderer.StyleItem), true
	case "ROOM":
		return t.StyleText(operand, renderer.StyleRoom), true
	case "ACTION":
		if operand == "" {
			return "", true
		}
		return t.StyleText(operand[0:1], renderer.StyleActionShort) + t.StyleText(operand[1:], renderer.StyleAction), true
	case "DENIED":
		return t.StyleText(operand, renderer.StyleDenied), true
	case "SUBTLE":
		return t.StyleText(operand, renderer.StyleSubtle), true
	}
	return "", false
}
