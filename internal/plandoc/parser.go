// Package plandoc turns a generated markdown document into typed
// display blocks. Presentation only; the raw text stays the source of
// truth.
package plandoc

import "strings"

// BlockType classifies one rendered line.
type BlockType string

const (
	BlockHeading1  BlockType = "heading1"
	BlockHeading2  BlockType = "heading2"
	BlockHeading3  BlockType = "heading3"
	BlockListItem  BlockType = "listItem"
	BlockDivider   BlockType = "divider"
	BlockBlank     BlockType = "blank"
	BlockParagraph BlockType = "paragraph"
)

// Block is one line of the document with its classification. Content
// carries the text with the markdown prefix stripped.
type Block struct {
	Type    BlockType `json:"type"`
	Content string    `json:"content"`
}

// DownloadFilename is the attachment name for the raw document.
const DownloadFilename = "사업계획서.md"

// Parse splits the document into lines and classifies each by its
// prefix. Unrecognized lines become paragraphs.
func Parse(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, classify(line))
	}
	return blocks
}

func classify(line string) Block {
	switch {
	case strings.TrimSpace(line) == "":
		return Block{Type: BlockBlank}
	case strings.HasPrefix(line, "---"):
		return Block{Type: BlockDivider}
	case strings.HasPrefix(line, "### "):
		return Block{Type: BlockHeading3, Content: strings.TrimPrefix(line, "### ")}
	case strings.HasPrefix(line, "## "):
		return Block{Type: BlockHeading2, Content: strings.TrimPrefix(line, "## ")}
	case strings.HasPrefix(line, "# "):
		return Block{Type: BlockHeading1, Content: strings.TrimPrefix(line, "# ")}
	case strings.HasPrefix(line, "- "):
		return Block{Type: BlockListItem, Content: strings.TrimPrefix(line, "- ")}
	default:
		return Block{Type: BlockParagraph, Content: line}
	}
}
