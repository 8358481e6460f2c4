package clients

import "encoding/json"

type bodyKind int

const (
	bodyEmpty bodyKind = iota
	bodyJSON
	bodyText
)

// Body is the decoded form of a backend response body: a JSON value, raw
// text that failed to parse as JSON, or nothing at all. Decoding is total —
// a malformed backend body never produces an error here.
type Body struct {
	kind bodyKind
	json any
	text string
}

func decodeBody(data []byte) Body {
	if len(data) == 0 {
		return Body{kind: bodyEmpty}
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return Body{kind: bodyText, text: string(data)}
	}
	return Body{kind: bodyJSON, json: value}
}

// Value returns the payload the way the client hands it to callers: the
// JSON value as decoded, a {"message": text} object for plain-text bodies,
// or nil for an empty body.
func (b Body) Value() any {
	switch b.kind {
	case bodyJSON:
		return b.json
	case bodyText:
		return map[string]any{"message": b.text}
	default:
		return nil
	}
}

// Message extracts a human-readable message: a string "message" field from
// a JSON object body, the raw text for text bodies, "" otherwise.
func (b Body) Message() string {
	switch b.kind {
	case bodyJSON:
		if obj, ok := b.json.(map[string]any); ok {
			if msg, ok := obj["message"].(string); ok {
				return msg
			}
		}
		return ""
	case bodyText:
		return b.text
	default:
		return ""
	}
}
