package markdown

import (
	"html"
	"net/url"
	"regexp"
	"strings"
)

var (
	codeSpanRe = regexp.MustCompile("`([^`]+)`")
	boldRe     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe   = regexp.MustCompile(`\*([^*]+)\*`)
	linkRe     = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// renderInline applies the inline stages to one line of text. Code spans
// are cut out first; emphasis and links only see the text between them.
func renderInline(s string, caps Capabilities, escape bool) string {
	var sb strings.Builder
	last := 0
	for _, m := range codeSpanRe.FindAllStringSubmatchIndex(s, -1) {
		sb.WriteString(renderSpans(s[last:m[0]], caps, escape))
		sb.WriteString("<code>")
		sb.WriteString(escapeIf(s[m[2]:m[3]], escape))
		sb.WriteString("</code>")
		last = m[1]
	}
	sb.WriteString(renderSpans(s[last:], caps, escape))
	return sb.String()
}

func renderSpans(s string, caps Capabilities, escape bool) string {
	s = escapeIf(s, escape)
	s = boldRe.ReplaceAllString(s, "<strong>$1</strong>")
	if caps.Italic {
		s = italicRe.ReplaceAllString(s, "<em>$1</em>")
	}
	if caps.Links {
		if escape {
			s = linkRe.ReplaceAllStringFunc(s, safeLink)
		} else {
			s = linkRe.ReplaceAllString(s, `<a href="$2">$1</a>`)
		}
	}
	return s
}

// safeLink renders an already escaped link match. Targets with a scheme
// other than http, https or mailto lose their anchor and keep only the text.
func safeLink(match string) string {
	m := linkRe.FindStringSubmatch(match)
	if !allowedHref(html.UnescapeString(m[2])) {
		return m[1]
	}
	return `<a href="` + m[2] + `">` + m[1] + `</a>`
}

func allowedHref(href string) bool {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "", "http", "https", "mailto":
		return true
	default:
		return false
	}
}

func escapeIf(s string, escape bool) string {
	if !escape {
		return s
	}
	return html.EscapeString(s)
}
