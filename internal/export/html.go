// Package export renders a content package into shareable artifacts: a
// standalone HTML document for download and a clipboard payload in plain
// or rich form.
package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/minsu-oh/hallabong/internal/models"
)

// Document is a downloadable file.
type Document struct {
	Filename string
	Body     []byte
}

const bannerLinkURL = "https://www.certbiz.com"

// Callout lines use a blockquote marker plus an emoji label. Each becomes a
// styled div; anything that doesn't match stays regular markdown.
var calloutRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`> 💡 \*\*Tip:\*\* (.*)`), `<div class="tip-box"><strong>💡 Tip:</strong> $1</div>`},
	{regexp.MustCompile(`> ⚠️ \*\*주의:\*\* (.*)`), `<div class="warning-box"><strong>⚠️ 주의:</strong> $1</div>`},
	{regexp.MustCompile(`> 🖼️ \*\*\[이미지 삽입\]:\*\* (.*)`), `<div class="image-guide">📷 이미지 삽입: $1</div>`},
	{regexp.MustCompile(`> ❓ \*\*Q&A:\*\* (.*)`), `<div class="qna-box"><strong>❓ Q&A:</strong> $1</div>`},
	{regexp.MustCompile(`> 🏢 \*\*실제 사례:\*\* (.*)`), `<div class="case-box"><strong>🏢 실제 사례:</strong> $1</div>`},
}

var (
	h3Line    = regexp.MustCompile(`(?m)^### (.*)$`)
	h2Line    = regexp.MustCompile(`(?m)^## (.*)$`)
	boldSpan  = regexp.MustCompile(`\*\*(.*?)\*\*`)
	paraBreak = regexp.MustCompile(`\n\n`)
)

// renderBody converts the narrow markdown dialect the generator emits into
// document HTML. Callouts are rewritten before bold spans so their `**`
// labels are consumed by the callout rules, not the bold rule.
func renderBody(body string) string {
	out := body
	for _, rule := range calloutRules {
		out = rule.re.ReplaceAllString(out, rule.repl)
	}
	out = h3Line.ReplaceAllString(out, "<h3>$1</h3>")
	out = h2Line.ReplaceAllString(out, "<h2>$1</h2>")
	out = boldSpan.ReplaceAllString(out, "<strong>$1</strong>")
	out = paraBreak.ReplaceAllString(out, "<br/><br/>")
	return out
}

func renderBanner(b *models.BannerConfig) string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf(`
       <div style="margin-top: 50px; padding: 40px; background-color: %[1]s; border-radius: 16px; text-align: center; color: white;">
           <div style="font-size: 16px; opacity: 0.9; margin-bottom: 8px;">%[2]s</div>
           <div style="font-size: 28px; font-weight: bold; margin-bottom: 24px;">%[3]s</div>
           <a href="%[4]s" target="_blank" style="display: inline-block; padding: 15px 30px; background-color: white; color: %[1]s; font-weight: bold; text-decoration: none; border-radius: 8px;">%[5]s</a>
       </div>
    `, b.BGColor, b.SubCopy, b.MainCopy, bannerLinkURL, b.CTAText)
}

const documentStyle = `
                body {
                    font-family: 'Apple SD Gothic Neo', 'Malgun Gothic', sans-serif;
                    line-height: 1.8;
                    max-width: 800px;
                    margin: 0 auto;
                    padding: 40px;
                    color: #1f2937;
                    background-color: #fff;
                }
                h1 { font-size: 36px; color: #111; margin-bottom: 30px; letter-spacing: -1px; border-bottom: 4px solid #111; padding-bottom: 20px; line-height: 1.3; }
                h2 { font-size: 28px; color: #1e3a8a; margin-top: 60px; margin-bottom: 24px; border-bottom: 2px solid #e2e8f0; padding-bottom: 12px; font-weight: 800; }
                h3 { font-size: 22px; color: #334155; margin-top: 40px; margin-bottom: 16px; font-weight: 700; border-left: 5px solid #3b82f6; padding-left: 12px; }
                p { margin-bottom: 24px; font-size: 17px; word-break: keep-all; color: #374151; }

                ul, ol { margin-bottom: 24px; padding-left: 24px; }
                li { margin-bottom: 10px; font-size: 17px; }

                .lead-section { background-color: #eff6ff; padding: 30px; border-radius: 12px; margin-bottom: 50px; border: 1px solid #dbeafe; }
                .lead-text { font-size: 19px; font-weight: 600; color: #1e40af; line-height: 1.6; }
                .tip-box { background: #f0f9ff; border-left: 5px solid #0ea5e9; padding: 20px; margin: 30px 0; border-radius: 4px; }
                .warning-box { background: #fef2f2; border-left: 5px solid #ef4444; padding: 20px; margin: 30px 0; border-radius: 4px; }
                .image-guide { background: #f3e8ff; border: 1px dashed #d8b4fe; padding: 15px; margin: 30px 0; font-size: 14px; color: #6b21a8; text-align: center; border-radius: 8px; }
                .qna-box { background: #f0fdf4; border: 1px solid #bbf7d0; border-radius: 12px; padding: 20px; margin: 30px 0; }
                .case-box { background: #f8fafc; border: 1px solid #e2e8f0; border-left: 5px solid #64748b; padding: 20px; margin: 30px 0; }

                table { border-collapse: collapse; width: 100%; margin: 30px 0; font-size: 15px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); }
                th, td { border: 1px solid #cbd5e1; padding: 12px 15px; text-align: left; }
                th { background-color: #f1f5f9; font-weight: bold; color: #334155; }
                tr:nth-child(even) { background-color: #f8fafc; }

                strong { color: #000; font-weight: 800; }
`

// HTML renders pkg as a self-contained document. body is the text to render,
// which may differ from pkg.BlogPost.Body when the caller holds unsaved
// edits. The filename is derived from the post title.
func HTML(pkg *models.ContentPackage, body string) Document {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"ko\">\n  <head>\n    <meta charset=\"utf-8\">\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", pkg.BlogPost.Title)
	sb.WriteString("    <style>")
	sb.WriteString(documentStyle)
	sb.WriteString("    </style>\n  </head>\n  <body>\n")
	fmt.Fprintf(&sb, "    <h1>%s</h1>\n\n", pkg.BlogPost.Title)
	fmt.Fprintf(&sb, "    <div class=\"lead-section\">\n        <div class=\"lead-text\">%s</div>\n    </div>\n\n", pkg.BlogPost.Lead)
	sb.WriteString(renderBody(body))
	sb.WriteString(renderBanner(pkg.BlogPost.BannerConfig))
	sb.WriteString("\n  </body>\n</html>\n")

	return Document{
		Filename: sanitizeFilename(pkg.BlogPost.Title) + ".html",
		Body:     []byte(sb.String()),
	}
}

func sanitizeFilename(title string) string {
	name := strings.TrimSpace(title)
	if name == "" {
		name = "untitled"
	}
	return strings.NewReplacer("/", "-", "\\", "-").Replace(name)
}
