// Package markdown renders article bodies written in the blog's
// markdown-lite dialect (or full markdown through goldmark) into HTML.
//
// The lite engine is an ordered pipeline: block scan, inline spans,
// optional list wrapping, paragraph grouping. Output is only safe to inject
// into a page when the Formatter is built with EscapeSource or
// SanitizeOutput; EscapeNone reproduces the trusted-markup behaviour.
package markdown

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Renderer turns source text into display markup
type Renderer interface {
	Render(src string) string
}

// Formatter is a configured Renderer
type Formatter struct {
	opts   Options
	gm     goldmark.Markdown
	policy *bluemonday.Policy
}

var _ Renderer = (*Formatter)(nil)

// New builds a Formatter from opts
func New(opts Options) *Formatter {
	if opts.Engine == "" {
		opts.Engine = EngineLite
	}
	f := &Formatter{opts: opts}
	if opts.Engine == EngineGoldmark {
		f.gm = newGoldmark(opts.Escape)
	}
	if opts.Escape == SanitizeOutput {
		f.policy = newPolicy()
	}
	return f
}

// Options returns the configuration the formatter was built with
func (f *Formatter) Options() Options {
	return f.opts
}

// Render converts src to HTML. It never fails: unrecognised syntax passes
// through as literal text.
func (f *Formatter) Render(src string) string {
	var out string
	if f.gm != nil {
		var err error
		out, err = renderGoldmark(f.gm, src)
		if err != nil {
			out = renderLite(src, f.opts.Capabilities, f.opts.Escape == EscapeSource)
		}
	} else {
		out = renderLite(src, f.opts.Capabilities, f.opts.Escape == EscapeSource)
	}

	if f.policy != nil {
		out = f.policy.Sanitize(out)
	}
	return out
}

func renderLite(src string, caps Capabilities, escape bool) string {
	var sb strings.Builder
	for _, chunk := range chunks(scanBlocks(src, caps)) {
		sb.WriteString(renderChunk(chunk, caps, escape))
	}
	return sb.String()
}

func renderChunk(chunk []block, caps Capabilities, escape bool) string {
	structural := false
	for _, b := range chunk {
		if b.structural() {
			structural = true
			break
		}
	}

	lines := make([]string, 0, len(chunk)+2)
	inList := false
	for _, b := range chunk {
		if caps.WrapLists {
			if b.kind == blockListItem && !inList {
				lines = append(lines, "<ul>")
				inList = true
			} else if b.kind != blockListItem && inList {
				lines = append(lines, "</ul>")
				inList = false
			}
		}
		lines = append(lines, renderBlock(b, caps, escape))
	}
	if inList {
		lines = append(lines, "</ul>")
	}

	text := strings.Join(lines, "\n")
	if structural {
		return text
	}
	if text = strings.TrimSpace(text); text == "" {
		return ""
	}
	return "<p>" + text + "</p>"
}

func renderBlock(b block, caps Capabilities, escape bool) string {
	switch b.kind {
	case blockHeading:
		return fmt.Sprintf("<h%d>%s</h%d>", b.level, renderInline(b.text, caps, escape), b.level)
	case blockListItem:
		return "<li>" + renderInline(b.text, caps, escape) + "</li>"
	case blockCode:
		return "<pre><code>" + escapeIf(b.text, escape) + "</code></pre>"
	default:
		return renderInline(b.text, caps, escape)
	}
}
