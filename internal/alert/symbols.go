package alert

import (
	"strings"
	"unicode/utf8"
)

// symbolGlyphs maps icon identifiers to glyphs that render in any terminal.
var symbolGlyphs = map[string]string{
	"folder":                   "▤",
	"folder.fill":              "▤",
	"folder.fill.badge.plus":   "+",
	"plus":                     "+",
	"trash":                    "✕",
	"trash.fill":               "✕",
	"xmark":                    "✕",
	"checkmark":                "✓",
	"checkmark.circle":         "✓",
	"exclamationmark":          "!",
	"exclamationmark.triangle": "!",
	"questionmark":             "?",
	"info":                     "i",
	"info.circle":              "i",
	"bell":                     "♪",
	"star":                     "★",
	"heart":                    "♥",
	"lock":                     "⚿",
}

// SymbolGlyph resolves an icon identifier. Unknown identifiers render their
// first character.
func SymbolGlyph(symbol string) string {
	if g, ok := symbolGlyphs[symbol]; ok {
		return g
	}
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(symbol)
	return string(r)
}
