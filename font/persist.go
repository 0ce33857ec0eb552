package font

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

type persistedCharacter struct {
	Segments uint16  `json:"segments"`
	Name     *string `json:"name"`
}

type persistedDocument struct {
	Name       string                `json:"name"`
	Characters []*persistedCharacter `json:"characters"`
}

// Parse decodes the persisted JSON form and normalizes it with Load.
//
// Only bytes that are not JSON at all produce an error; every structural
// problem is repaired by Load.
func Parse(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Document{}, fmt.Errorf("font: decode document: %w", err)
	}
	return Load(raw), nil
}

// Load normalizes a generically decoded document (the result of decoding
// JSON into an `any`) into a Document:
//
//   - a missing or non-string name becomes LoadedName
//   - entries past index 255 are dropped
//   - null and non-object entries are absent
//   - malformed segments default to 0, malformed names to no name
//   - an absent slot 0 is populated with an empty character
func Load(raw any) Document {
	d := Document{Name: LoadedName}

	obj, _ := raw.(map[string]any)
	if name, ok := obj["name"].(string); ok && name != "" {
		d.Name = name
	}

	entries, _ := obj["characters"].([]any)
	for i, e := range entries {
		if i >= Size {
			break
		}
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		d.Table.Set(i, Character{
			Segments: loadSegments(entry["segments"]),
			Name:     loadName(entry["name"]),
		})
	}

	d.ensureSlotZero()
	return d
}

func loadSegments(v any) uint16 {
	var n float64
	switch v := v.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		n = f
	case float64:
		n = v
	case int:
		n = float64(v)
	default:
		return 0
	}
	if n != math.Trunc(n) || n < 0 || n > float64(SegmentMask) {
		return 0
	}
	return uint16(n)
}

func loadName(v any) string {
	s, _ := v.(string)
	return s
}

// Marshal encodes d in the persisted form with exactly Size entries.
func Marshal(d Document) ([]byte, error) {
	out := persistedDocument{
		Name:       d.Name,
		Characters: make([]*persistedCharacter, Size),
	}
	d.Table.All(func(i int, c Character) {
		pc := &persistedCharacter{Segments: c.Segments}
		if c.HasName() {
			name := c.Name
			pc.Name = &name
		}
		out.Characters[i] = pc
	})

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("font: encode document: %w", err)
	}
	return b, nil
}
