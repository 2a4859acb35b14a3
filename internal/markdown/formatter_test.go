package markdown

import (
	"strings"
	"testing"
)

func TestRender_FullView(t *testing.T) {
	f := New(Options{Capabilities: FullView()})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty input", input: "", want: ""},
		{name: "plain text", input: "just some words", want: "<p>just some words</p>"},
		{name: "plain text is trimmed", input: "  padded  ", want: "<p>padded</p>"},
		{name: "heading then paragraph", input: "## Title\n\nBody text", want: "<h2>Title</h2><p>Body text</p>"},
		{name: "bold", input: "**bold**", want: "<p><strong>bold</strong></p>"},
		{name: "level 3 heading", input: "### Sub", want: "<h3>Sub</h3>"},
		{name: "level 4 heading", input: "#### Detail", want: "<h4>Detail</h4>"},
		{name: "italic is not part of the full view", input: "*it*", want: "<p>*it*</p>"},
		{name: "links are not part of the full view", input: "[Go](https://go.dev)", want: "<p>[Go](https://go.dev)</p>"},
		{name: "list items stay unwrapped", input: "- a\n- b", want: "<li>a</li>\n<li>b</li>"},
		{name: "dash inside a sentence is text", input: "a - b", want: "<p>a - b</p>"},
		{name: "inline code protects its contents", input: "use `**x**` here", want: "<p>use <code>**x**</code> here</p>"},
		{name: "fenced code drops the language", input: "```go\nfmt.Println(\"- hi\")\n```", want: "<pre><code>fmt.Println(\"- hi\")</code></pre>"},
		{name: "fenced code keeps blank lines", input: "```\na\n\nb\n```", want: "<pre><code>a\n\nb</code></pre>"},
		{name: "heading suppresses wrapping of its chunk", input: "## T\nbody", want: "<h2>T</h2>\nbody"},
		{name: "multiple paragraphs", input: "one\n\ntwo\n\n\nthree", want: "<p>one</p><p>two</p><p>three</p>"},
		{name: "crlf line endings", input: "## T\r\n\r\nbody", want: "<h2>T</h2><p>body</p>"},
		{name: "level 1 heading is not recognised", input: "# Top", want: "<p># Top</p>"},
		{name: "raw html passes through untouched", input: "<b>x</b>", want: "<p><b>x</b></p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Render(tt.input); got != tt.want {
				t.Errorf("Render(%q)\n got: %q\nwant: %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRender_EditorPreview(t *testing.T) {
	f := New(Options{Capabilities: EditorPreview()})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "italic", input: "*it*", want: "<p><em>it</em></p>"},
		{name: "bold before italic", input: "**b** and *i*", want: "<p><strong>b</strong> and <em>i</em></p>"},
		{name: "link", input: "[Go](https://go.dev)", want: `<p><a href="https://go.dev">Go</a></p>`},
		{name: "level 4 heading is plain text", input: "#### Detail", want: "<p>#### Detail</p>"},
		{name: "level 3 heading is plain text", input: "### Sub", want: "<p>### Sub</p>"},
		{name: "level 2 heading", input: "## Top", want: "<h2>Top</h2>"},
		{name: "inline code", input: "`x`", want: "<p><code>x</code></p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Render(tt.input); got != tt.want {
				t.Errorf("Render(%q)\n got: %q\nwant: %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRender_WrapLists(t *testing.T) {
	caps := FullView()
	caps.WrapLists = true
	f := New(Options{Capabilities: caps})

	got := f.Render("## Steps\n- a\n- b\ndone")
	want := "<h2>Steps</h2>\n<ul>\n<li>a</li>\n<li>b</li>\n</ul>\ndone"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_EscapeSource(t *testing.T) {
	f := New(Options{Capabilities: EditorPreview(), Escape: EscapeSource})

	got := f.Render("<script>x</script> **b**")
	want := "<p>&lt;script&gt;x&lt;/script&gt; <strong>b</strong></p>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	code := New(Options{Capabilities: FullView(), Escape: EscapeSource}).Render("```\n<div>\n```")
	if code != "<pre><code>&lt;div&gt;</code></pre>" {
		t.Errorf("code block not escaped: %q", code)
	}
}

func TestRender_EscapeSourceLinks(t *testing.T) {
	f := New(Options{Capabilities: EditorPreview(), Escape: EscapeSource})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "https link kept", input: "[Go](https://go.dev)", want: `<p><a href="https://go.dev">Go</a></p>`},
		{name: "query string escaped in href", input: "[q](https://go.dev/?a=1&b=2)", want: `<p><a href="https://go.dev/?a=1&amp;b=2">q</a></p>`},
		{name: "relative link kept", input: "[home](/articles/1)", want: `<p><a href="/articles/1">home</a></p>`},
		{name: "mailto kept", input: "[mail](mailto:team@techblog.dev)", want: `<p><a href="mailto:team@techblog.dev">mail</a></p>`},
		{name: "javascript dropped", input: "[click](javascript:alert(document.cookie))", want: "<p>click)</p>"},
		{name: "mixed case scheme dropped", input: "[x](JaVaScRiPt:alert(1))", want: "<p>x)</p>"},
		{name: "padded scheme dropped", input: "[x]( javascript:alert(1))", want: "<p>x)</p>"},
		{name: "data url dropped", input: "[x](data:text/html;base64,PHNjcmlwdD4=)", want: "<p>x</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Render(tt.input); got != tt.want {
				t.Errorf("Render(%q)\n got: %q\nwant: %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRender_EscapeSourceHostileInput(t *testing.T) {
	presets := map[string]Capabilities{
		"full view":      FullView(),
		"editor preview": EditorPreview(),
	}
	inputs := []struct {
		name   string
		input  string
		forbid []string
	}{
		{name: "javascript href", input: "[click](javascript:alert(document.cookie))", forbid: []string{"<a", `href="javascript`}},
		{name: "quote breaks out of href", input: `[x](https://go.dev" onmouseover="alert(1))`, forbid: []string{`" onmouseover`, `onmouseover="`}},
		{name: "script inside a fence", input: "```html\n<script>alert(1)</script>\n```", forbid: []string{"<script"}},
		{name: "script inside inline code", input: "`<script>alert(1)</script>`", forbid: []string{"<script"}},
		{name: "script inside a heading", input: "## <script>alert(1)</script>", forbid: []string{"<script"}},
	}

	for presetName, caps := range presets {
		f := New(Options{Capabilities: caps, Escape: EscapeSource})
		for _, tt := range inputs {
			t.Run(presetName+"/"+tt.name, func(t *testing.T) {
				got := f.Render(tt.input)
				for _, bad := range tt.forbid {
					if strings.Contains(got, bad) {
						t.Errorf("Render(%q) = %q, must not contain %q", tt.input, got, bad)
					}
				}
			})
		}
	}
}

func TestRender_EscapeNoneKeepsTrustedLinks(t *testing.T) {
	f := New(Options{Capabilities: EditorPreview()})

	got := f.Render("[run](javascript:void(0))")
	want := `<p><a href="javascript:void(0">run</a>)</p>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_SanitizeOutput(t *testing.T) {
	f := New(Options{Capabilities: EditorPreview(), Escape: SanitizeOutput})

	got := f.Render("hello <script>alert(1)</script> **world**")
	if strings.Contains(got, "<script") {
		t.Errorf("script survived sanitising: %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Errorf("formatting was stripped: %q", got)
	}
	if !strings.HasPrefix(got, "<p>hello") {
		t.Errorf("paragraph was stripped: %q", got)
	}
}

func TestRender_Goldmark(t *testing.T) {
	f := New(Options{Engine: EngineGoldmark})

	got := f.Render("# Title\n\nSome *text*")
	if !strings.Contains(got, "<h1>Title</h1>") {
		t.Errorf("missing heading: %q", got)
	}
	if !strings.Contains(got, "<em>text</em>") {
		t.Errorf("missing emphasis: %q", got)
	}

	safe := New(Options{Engine: EngineGoldmark, Escape: EscapeSource})
	if out := safe.Render("<b>x</b>"); strings.Contains(out, "<b>") {
		t.Errorf("raw html should be omitted: %q", out)
	}
	if out := safe.Render("[x](javascript:alert(1))"); strings.Contains(out, "javascript:") {
		t.Errorf("dangerous link survived: %q", out)
	}
}

func TestParseEscapeMode(t *testing.T) {
	tests := []struct {
		in      string
		want    EscapeMode
		wantErr bool
	}{
		{in: "", want: EscapeNone},
		{in: "none", want: EscapeNone},
		{in: "source", want: EscapeSource},
		{in: "sanitize", want: SanitizeOutput},
		{in: "html", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseEscapeMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseEscapeMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseEscapeMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseEngine(t *testing.T) {
	if e, err := ParseEngine(""); err != nil || e != EngineLite {
		t.Errorf("empty engine = %v, %v", e, err)
	}
	if e, err := ParseEngine("goldmark"); err != nil || e != EngineGoldmark {
		t.Errorf("goldmark engine = %v, %v", e, err)
	}
	if _, err := ParseEngine("blackfriday"); err == nil {
		t.Error("expected error for unknown engine")
	}
}

func BenchmarkRender(b *testing.B) {
	src := strings.Repeat("## Section\n\nSome **bold** text with `code`.\n\n- item one\n- item two\n\n```go\nx := 1\n```\n\n", 50)
	f := New(Options{Capabilities: FullView()})

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f.Render(src)
	}
}
