package content

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// md renders markdown bodies to HTML. Hard wraps turn single newlines into
// <br />, tables are on, and fenced code blocks come out wrapped in
// <div class="highlight"> with chroma classes so styling stays in CSS.
// Raw HTML passes through untouched.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true),
			),
			highlighting.WithWrapperRenderer(func(w util.BufWriter, ctx highlighting.CodeBlockContext, entering bool) {
				switch {
				case ctx.Highlighted() && entering:
					_, _ = w.WriteString(`<div class="highlight">`)
				case ctx.Highlighted():
					_, _ = w.WriteString("</div>")
				case entering:
					_, _ = w.WriteString("<pre><code>")
				default:
					_, _ = w.WriteString("</code></pre>\n")
				}
			}),
		),
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
		html.WithXHTML(),
		html.WithUnsafe(),
	),
)

// RenderMarkdown converts a markdown body to HTML. The conversion is
// deterministic: the same body always yields the same bytes.
func RenderMarkdown(body []byte) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("fail to render markdown: %w", err)
	}
	return buf.String(), nil
}
