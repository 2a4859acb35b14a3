package markdown

import "fmt"

// Capabilities selects which parts of the markdown-lite dialect are recognised
type Capabilities struct {
	Heading3   bool
	Heading4   bool
	Italic     bool
	Links      bool
	FencedCode bool
	// WrapLists wraps runs of list items in <ul>. Off in both presets, so
	// list items are emitted bare.
	WrapLists bool
}

// FullView is the dialect used when reading an article
func FullView() Capabilities {
	return Capabilities{
		Heading3:   true,
		Heading4:   true,
		FencedCode: true,
	}
}

// EditorPreview is the dialect used by the editor's live preview. Only
// level-2 headings are recognised; "### x" stays literal text.
func EditorPreview() Capabilities {
	return Capabilities{
		Italic: true,
		Links:  true,
	}
}

// EscapeMode controls how user-authored text is made safe for display
type EscapeMode int

const (
	// EscapeNone emits user text verbatim; output must be treated as trusted
	EscapeNone EscapeMode = iota
	// EscapeSource HTML-escapes user text before any transformation and
	// only keeps links to http, https, mailto or relative targets
	EscapeSource
	// SanitizeOutput renders first and then strips unsafe markup
	SanitizeOutput
)

func (m EscapeMode) String() string {
	switch m {
	case EscapeNone:
		return "none"
	case EscapeSource:
		return "source"
	case SanitizeOutput:
		return "sanitize"
	default:
		return fmt.Sprintf("EscapeMode(%d)", int(m))
	}
}

// ParseEscapeMode maps a configuration value to an EscapeMode
func ParseEscapeMode(s string) (EscapeMode, error) {
	switch s {
	case "", "none":
		return EscapeNone, nil
	case "source":
		return EscapeSource, nil
	case "sanitize":
		return SanitizeOutput, nil
	default:
		return EscapeNone, fmt.Errorf("unknown escape mode %q (want none, source or sanitize)", s)
	}
}

// Engine selects the markdown implementation
type Engine string

const (
	EngineLite     Engine = "lite"
	EngineGoldmark Engine = "goldmark"
)

// ParseEngine maps a configuration value to an Engine
func ParseEngine(s string) (Engine, error) {
	switch Engine(s) {
	case "", EngineLite:
		return EngineLite, nil
	case EngineGoldmark:
		return EngineGoldmark, nil
	default:
		return EngineLite, fmt.Errorf("unknown render engine %q (want lite or goldmark)", s)
	}
}

// Options configures a Formatter
type Options struct {
	Engine       Engine
	Capabilities Capabilities
	Escape       EscapeMode
}
