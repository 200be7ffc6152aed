package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"mazegen/internal/geometry"
)

const (
	// StaticsKey names the document field holding the obstacle entries.
	StaticsKey = "statics"
	// BorderCount is the number of leading entries kept as the arena border.
	BorderCount = 4
)

// Entry is one generated obstacle: its four corners plus the style copied
// from the first border entry.
type Entry struct {
	Shape []geometry.Point `json:"shape"`
	Style json.RawMessage  `json:"style"`
}

// member is one top-level field of the document, kept in file order.
type member struct {
	key   string
	value json.RawMessage
}

// Document is a parsed scene description. Fields other than the statics
// are carried through untouched and in their original order; border
// entries are kept as raw JSON and never re-encoded.
type Document struct {
	members []member
	statics []json.RawMessage
	style   json.RawMessage
}

// Parse decodes a scene document and checks that it starts with
// BorderCount border entries that each carry a style.
func Parse(data []byte) (*Document, error) {
	members, err := decodeMembers(data)
	if err != nil {
		return nil, err
	}
	doc := &Document{members: members}

	var raw json.RawMessage
	for _, m := range members {
		if m.key == StaticsKey {
			raw = m.value
		}
	}
	if raw == nil {
		return nil, fmt.Errorf("missing %q field", StaticsKey)
	}
	if err := json.Unmarshal(raw, &doc.statics); err != nil {
		return nil, fmt.Errorf("%q is not a list: %w", StaticsKey, err)
	}
	if len(doc.statics) < BorderCount {
		return nil, fmt.Errorf("%q has %d entries, need at least %d border entries",
			StaticsKey, len(doc.statics), BorderCount)
	}
	for i, entry := range doc.statics[:BorderCount] {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(entry, &fields); err != nil {
			return nil, fmt.Errorf("border entry %d is not an object: %w", i, err)
		}
		style, ok := fields["style"]
		if !ok {
			return nil, fmt.Errorf("border entry %d has no style", i)
		}
		if i == 0 {
			doc.style = style
		}
	}
	return doc, nil
}

// decodeMembers splits a JSON object into its fields without reordering.
func decodeMembers(data []byte) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("document is not a JSON object")
	}

	var members []member
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		members = append(members, member{key: key, value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after document")
	}
	return members, nil
}

// Borders returns the border entries as they appeared in the input.
func (d *Document) Borders() []json.RawMessage {
	return append([]json.RawMessage(nil), d.statics[:BorderCount]...)
}

// Style returns the first border entry's style.
func (d *Document) Style() json.RawMessage { return d.style }

// Statics returns every obstacle entry currently in the document.
func (d *Document) Statics() []json.RawMessage {
	return append([]json.RawMessage(nil), d.statics...)
}

// SetWalls drops every entry after the borders and appends one entry per
// wall, in the order given.
func (d *Document) SetWalls(walls []geometry.Wall) error {
	statics := d.statics[:BorderCount:BorderCount]
	for _, w := range walls {
		b, err := encode(Entry{Shape: w.Corners[:], Style: d.style})
		if err != nil {
			return err
		}
		statics = append(statics, b)
	}
	d.statics = statics
	return nil
}

// Marshal renders the document indented by indent spaces per level, with a
// trailing newline.
func (d *Document) Marshal(indent int) ([]byte, error) {
	var flat bytes.Buffer
	flat.WriteByte('{')
	for i, m := range d.members {
		if i > 0 {
			flat.WriteByte(',')
		}
		key, err := encode(m.key)
		if err != nil {
			return nil, err
		}
		flat.Write(key)
		flat.WriteByte(':')
		if m.key == StaticsKey {
			flat.WriteByte('[')
			for j, entry := range d.statics {
				if j > 0 {
					flat.WriteByte(',')
				}
				flat.Write(entry)
			}
			flat.WriteByte(']')
		} else {
			flat.Write(m.value)
		}
	}
	flat.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, flat.Bytes(), "", strings.Repeat(" ", indent)); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// encode marshals v without HTML escaping, so copied styles keep <, > and &
// as written.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
