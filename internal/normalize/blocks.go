package normalize

import (
	"strings"

	"github.com/jomei/notionapi"
)

// RenderBlocks flattens a page's content blocks into a lightweight line
// markup: "#"-prefixed headings, "•" bullets, "1." numbered items, ">"
// quotes. Block order is preserved as returned by the store. Kinds with no
// textual equivalent (embeds, images, tables, code) are dropped silently.
//
// The dialect has no escaping: body text that itself starts with a marker
// sequence is indistinguishable from structure downstream.
func RenderBlocks(blocks []notionapi.Block) string {
	var b strings.Builder

	for _, block := range blocks {
		switch v := block.(type) {
		case *notionapi.ParagraphBlock:
			if text := PlainText(v.Paragraph.RichText); text != "" {
				b.WriteString(text)
				b.WriteString("\n\n")
			}
		case *notionapi.Heading1Block:
			b.WriteString("# ")
			b.WriteString(PlainText(v.Heading1.RichText))
			b.WriteString("\n\n")
		case *notionapi.Heading2Block:
			b.WriteString("## ")
			b.WriteString(PlainText(v.Heading2.RichText))
			b.WriteString("\n\n")
		case *notionapi.Heading3Block:
			b.WriteString("### ")
			b.WriteString(PlainText(v.Heading3.RichText))
			b.WriteString("\n\n")
		case *notionapi.BulletedListItemBlock:
			b.WriteString("• ")
			b.WriteString(PlainText(v.BulletedListItem.RichText))
			b.WriteString("\n")
		case *notionapi.NumberedListItemBlock:
			b.WriteString("1. ")
			b.WriteString(PlainText(v.NumberedListItem.RichText))
			b.WriteString("\n")
		case *notionapi.QuoteBlock:
			b.WriteString("> ")
			b.WriteString(PlainText(v.Quote.RichText))
			b.WriteString("\n\n")
		case *notionapi.CalloutBlock:
			b.WriteString(PlainText(v.Callout.RichText))
			b.WriteString("\n\n")
		}
	}

	return strings.TrimSpace(b.String())
}
