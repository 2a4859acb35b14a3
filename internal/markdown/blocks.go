package markdown

import "strings"

type blockKind int

const (
	blockText blockKind = iota
	blockBlank
	blockHeading
	blockListItem
	blockCode
)

type block struct {
	kind  blockKind
	level int
	text  string
}

// structural reports whether the block suppresses paragraph wrapping of
// the chunk it belongs to.
func (b block) structural() bool {
	return b.kind == blockHeading || b.kind == blockListItem || b.kind == blockCode
}

// scanBlocks splits source into line-level blocks. Fenced code is taken
// verbatim so no later stage can match inside it.
func scanBlocks(src string, caps Capabilities) []block {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")

	blocks := make([]block, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if caps.FencedCode && strings.HasPrefix(line, "```") {
			if end := fenceEnd(lines, i+1); end >= 0 {
				blocks = append(blocks, block{kind: blockCode, text: strings.Join(lines[i+1:end], "\n")})
				i = end
				continue
			}
		}
		blocks = append(blocks, classifyLine(line, caps))
	}
	return blocks
}

func fenceEnd(lines []string, from int) int {
	for j := from; j < len(lines); j++ {
		if strings.HasPrefix(strings.TrimSpace(lines[j]), "```") {
			return j
		}
	}
	return -1
}

func classifyLine(line string, caps Capabilities) block {
	if strings.TrimSpace(line) == "" {
		return block{kind: blockBlank}
	}

	// longest marker first so "### x" is never read as "## #x"
	if caps.Heading4 && strings.HasPrefix(line, "#### ") {
		return block{kind: blockHeading, level: 4, text: strings.TrimSpace(line[5:])}
	}
	if caps.Heading3 && strings.HasPrefix(line, "### ") {
		return block{kind: blockHeading, level: 3, text: strings.TrimSpace(line[4:])}
	}
	if strings.HasPrefix(line, "## ") {
		return block{kind: blockHeading, level: 2, text: strings.TrimSpace(line[3:])}
	}

	if trimmed := strings.TrimLeft(line, " \t"); strings.HasPrefix(trimmed, "- ") {
		return block{kind: blockListItem, text: strings.TrimSpace(trimmed[2:])}
	}

	return block{kind: blockText, text: line}
}

// chunks groups blocks into runs separated by blank lines
func chunks(blocks []block) [][]block {
	var out [][]block
	var cur []block
	for _, b := range blocks {
		if b.kind == blockBlank {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, b)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
