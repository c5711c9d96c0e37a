package pulse

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var urlPattern = regexp.MustCompile(`https?://\S+|www\.\S+`)

// PlainText renders markdown feedback to plain text. Link targets and bare
// URLs are dropped, link text is kept, and block elements end in a newline so
// sentence segmentation still sees the boundaries.
func PlainText(markdown string) string {
	root := blackfriday.New(blackfriday.WithExtensions(blackfriday.CommonExtensions)).Parse([]byte(markdown))

	var b strings.Builder
	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		switch node.Type {
		case blackfriday.Text, blackfriday.Code, blackfriday.CodeBlock:
			if entering {
				b.Write(node.Literal)
			}
		case blackfriday.Softbreak, blackfriday.Hardbreak:
			b.WriteByte(' ')
		case blackfriday.Paragraph, blackfriday.Heading, blackfriday.Item, blackfriday.TableCell:
			if !entering {
				b.WriteByte('\n')
			}
		}
		return blackfriday.GoToNext
	})

	lines := strings.Split(urlPattern.ReplaceAllString(b.String(), ""), "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
