// Package renderer defines game output and the message markup shared by its backends.
package renderer

import (
	"fmt"
	"regexp"

	"github.com/leonelquinteros/gotext"
)

// markupPattern matches FUNCTION{operand}, e.g. ITEM{a tin opener}.
var markupPattern = regexp.MustCompile(`([A-Z_]+)\{([^{}]*)\}`)

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet's printf check away from non-constant keys.
var dynamicGet = gotext.Get

// Styler renders one markup function applied to operand. It returns false for
// functions it does not know, which leaves the markup untouched.
type Styler func(function, operand string) (string, bool)

// ApplyMarkup formats msg with args, when given, and expands every markup function with style.
func ApplyMarkup(style Styler, msg string, args ...any) string {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return markupPattern.ReplaceAllStringFunc(msg, func(match string) string {
		parts := markupPattern.FindStringSubmatch(match)
		function, operand := parts[1], parts[2]
		if function == "GT" {
			operand = dynamicGet(operand)
		}
		if styled, ok := style(function, operand); ok {
			return styled
		}
		return match
	})
}

// plainStyler replaces markup with its bare operand
func plainStyler(function, operand string) (string, bool) {
	switch function {
	case "GT", "ITEM", "ROOM", "ACTION", "DENIED", "SUBTLE":
		return operand, true
	}
	return "", false
}

// PlainText returns msg with all markup removed
func PlainText(msg string, args ...any) string {
	return ApplyMarkup(plainStyler, msg, args...)
}
