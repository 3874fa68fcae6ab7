// Package sym defines the glyphs the haystack CLI prints for its commands and
// for check results. They are stable across help text and command output.
package sym

// Command glyphs.
const (
	Def      = "◆" // def, subtypes: the def graph
	Reflect  = "⟐" // reflect: defs implemented by a record
	Validate = "⊢" // validate: record fits a def
	Protos   = "⧉" // protos: child prototypes
	Rel      = "⇄" // rel: relationships between records
	Libs     = "▤" // libs: lib defs and versions
	Watch    = "◎" // watch: live namespace rebuilds
	Config   = "≡" // config: settings and their sources
)

// Result glyphs.
const (
	Pass = "✓"
	Fail = "✗"
)

type entry struct {
	glyph       string
	command     string
	description string
}

// registry is the canonical command to glyph mapping, in help order.
var registry = []entry{
	{Def, "def", "Show a def with its inheritance and implementation"},
	{Reflect, "reflect", "Reflect a tag expression into the defs it implements"},
	{Validate, "validate", "Check a record against a def"},
	{Protos, "protos", "Generate child prototypes for a parent record"},
	{Rel, "rel", "Query a relationship on a record"},
	{Libs, "libs", "List libs and check version constraints"},
	{Watch, "watch", "Rebuild the namespace as def files change"},
	{Config, "config", "Show or change configuration"},
}

// Lookup tables built from the registry at init time.
var (
	SymbolToCommand     = make(map[string]string, len(registry))
	CommandToSymbol     = make(map[string]string, len(registry))
	CommandDescriptions = make(map[string]string, len(registry))
	// PaletteOrder lists the command glyphs in help order.
	PaletteOrder = make([]string, 0, len(registry))
)

func init() {
	for _, e := range registry {
		SymbolToCommand[e.glyph] = e.command
		CommandToSymbol[e.command] = e.glyph
		CommandDescriptions[e.command] = e.description
		PaletteOrder = append(PaletteOrder, e.glyph)
	}
}

// Short returns the one line help of a command, prefixed with its glyph.
func Short(command string) string {
	desc, ok := CommandDescriptions[command]
	if !ok {
		return ""
	}
	return CommandToSymbol[command] + " " + desc
}
