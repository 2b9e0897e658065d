package export

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"

	"github.com/minsu-oh/hallabong/internal/markup"
)

// ClipboardUnavailable reports that a clipboard payload could not be
// produced in the requested format.
type ClipboardUnavailable struct {
	Format string
	Err    error
}

func (e *ClipboardUnavailable) Error() string {
	return fmt.Sprintf("clipboard payload (%s) unavailable: %v", e.Format, e.Err)
}

func (e *ClipboardUnavailable) Unwrap() error { return e.Err }

// Payload carries both clipboard flavors for one body so a client can
// populate text/plain and text/html targets in a single write.
type Payload struct {
	Text string `json:"text"`
	HTML string `json:"html,omitempty"`
}

// PlainText strips all markdown syntax from body, leaving the readable
// text. Used for paste targets that reject rich content.
func PlainText(body string) string {
	return markup.StripSyntax(body)
}

// RichText renders body to HTML alongside its plain form.
func RichText(body string) (Payload, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(body), &buf); err != nil {
		return Payload{}, &ClipboardUnavailable{Format: "rich", Err: err}
	}
	return Payload{
		Text: markup.StripSyntax(body),
		HTML: buf.String(),
	}, nil
}
