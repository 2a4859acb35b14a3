package markdown

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// newGoldmark builds a GFM engine. Raw HTML is only passed through when it
// is either trusted or sanitised afterwards.
func newGoldmark(escape EscapeMode) goldmark.Markdown {
	var rendererOptions []renderer.Option
	if escape != EscapeSource {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(rendererOptions...),
	)
}

func renderGoldmark(md goldmark.Markdown, src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// newPolicy allows the markup both engines emit and nothing executable
func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("h2", "h3", "h4", "ul", "li", "pre", "code", "strong", "em", "p")
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre")
	return p
}
