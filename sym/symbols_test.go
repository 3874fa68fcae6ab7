package sym

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSymbolToCommandAndCommandToSymbolAreBidirectional(t *testing.T) {
	for symbol, cmd := range SymbolToCommand {
		assert.Equal(t, symbol, CommandToSymbol[cmd], "command %q", cmd)
	}
	for cmd, symbol := range CommandToSymbol {
		assert.Equal(t, cmd, SymbolToCommand[symbol], "glyph %q", symbol)
	}
}

func TestMapsHaveSameSize(t *testing.T) {
	assert.Len(t, CommandToSymbol, len(SymbolToCommand), "a glyph is shared by two commands")
	assert.Len(t, CommandDescriptions, len(CommandToSymbol))
	assert.Len(t, PaletteOrder, len(registry))
}

func TestGlyphsAreSingleRunes(t *testing.T) {
	for _, g := range append([]string{Pass, Fail}, PaletteOrder...) {
		assert.Equal(t, 1, utf8.RuneCountInString(g), "glyph %q", g)
	}
}

func TestShort(t *testing.T) {
	assert.Equal(t, Reflect+" Reflect a tag expression into the defs it implements", Short("reflect"))
	assert.Empty(t, Short("nope"))
}
