// Package assembler packages ordered sections into the distributable
// magazine document. The output is a single self-contained HTML file:
// one heading per section, one article block per item, bodies rendered
// from markdown (inline HTML passes through).
package assembler

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/thebtf/gazette/pkg/cluster"
)

// markdown renders article bodies. Unsafe rendering keeps the inline
// markup that content records are allowed to carry.
var markdown = goldmark.New(
	goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
)

// Assemble flattens ordered sections into the magazine document. When
// clustered is true, each item is emitted under its section's name in
// place of its original category label; when false, labels pass through
// untouched.
func Assemble(title string, sections []cluster.Section, clustered bool) ([]byte, error) {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(title))

	for _, section := range sections {
		b.WriteString("<section>\n")
		fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(section.Name))

		for _, item := range section.Items {
			label := item.Category
			if clustered {
				label = section.Name
			}

			b.WriteString("<article>\n")
			fmt.Fprintf(&b, "<h3>%s</h3>\n", html.EscapeString(item.Title))
			if label != "" {
				fmt.Fprintf(&b, "<p class=\"category\">%s</p>\n", html.EscapeString(label))
			}

			var body bytes.Buffer
			if err := markdown.Convert([]byte(item.Body), &body); err != nil {
				return nil, fmt.Errorf("render article %q: %w", item.Title, err)
			}
			b.Write(body.Bytes())
			b.WriteString("</article>\n")
		}

		b.WriteString("</section>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return []byte(b.String()), nil
}

// Write assembles the document and writes it to path.
func Write(path, title string, result cluster.Result, clustered bool) error {
	doc, err := Assemble(title, result.Sections, clustered)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("write magazine: %w", err)
	}

	log.Info().
		Str("path", path).
		Int("sections", result.Metrics.SectionCount).
		Int("articles", result.Metrics.ItemCount).
		Float64("avg_section_size", result.Metrics.AvgSectionSize).
		Msg("Magazine assembled")
	return nil
}
