// Package extract recovers structured JSON payloads from free-form generator
// output. Generators routinely wrap valid JSON in explanatory prose or code
// fences; this package peels those layers off before decoding.
package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// MalformedResponseError reports that no valid structured payload could be
// recovered from a generator response. Raw retains the full response text
// for diagnostics; it must never be surfaced to end users.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no structured payload in generator response: %v", e.Err)
	}
	return "no structured payload in generator response"
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

var fencedBlock = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")

// JSON locates and returns the structured payload embedded in raw text.
// Three strategies are tried in order, and the first region found decides
// the outcome:
//
//  1. The contents of a fenced code block (```json or plain ```).
//  2. The substring from the earliest '{' or '[' to the latest '}' or ']'.
//  3. The whole text as-is.
//
// Fencing is checked before the delimiter scan because naive brace matching
// can capture prose-embedded braces that are not part of the payload. The
// delimiter scan deliberately uses the first opening and last closing
// delimiter even though that can mis-extract when the text contains several
// independent JSON regions; that is the inherited contract, not an accident.
func JSON(raw string) (json.RawMessage, error) {
	if m := fencedBlock.FindStringSubmatch(raw); m != nil {
		candidate := strings.TrimSpace(m[1])
		if candidate != "" && gjson.Valid(candidate) {
			return json.RawMessage(candidate), nil
		}
		return nil, &MalformedResponseError{Raw: raw}
	}

	start := earliestDelimiter(raw)
	end := latestDelimiter(raw)
	if start >= 0 && end > start {
		candidate := raw[start : end+1]
		if gjson.Valid(candidate) {
			return json.RawMessage(candidate), nil
		}
		return nil, &MalformedResponseError{Raw: raw}
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed != "" && gjson.Valid(trimmed) {
		return json.RawMessage(trimmed), nil
	}
	return nil, &MalformedResponseError{Raw: raw}
}

// Unmarshal extracts the structured payload from raw and decodes it into v.
// Decode failures are reported as MalformedResponseError because they mean
// the recovered region did not match the expected shape.
func Unmarshal(raw string, v any) error {
	payload, err := JSON(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return &MalformedResponseError{Raw: raw, Err: err}
	}
	return nil
}

// earliestDelimiter returns the index of the first '{' or '[' in s, or -1.
func earliestDelimiter(s string) int {
	brace := strings.IndexByte(s, '{')
	bracket := strings.IndexByte(s, '[')
	switch {
	case brace == -1:
		return bracket
	case bracket == -1:
		return brace
	case brace < bracket:
		return brace
	default:
		return bracket
	}
}

// latestDelimiter returns the index of the last '}' or ']' in s, or -1.
func latestDelimiter(s string) int {
	brace := strings.LastIndexByte(s, '}')
	bracket := strings.LastIndexByte(s, ']')
	if brace > bracket {
		return brace
	}
	return bracket
}
