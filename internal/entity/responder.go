package entity

import (
	"bytes"
	"encoding/json"
	"sort"
)

// ResponseDocument is the root of the intent library. JSON field names
// follow the respuestas.json wire format used by the admin panel.
type ResponseDocument struct {
	GlobalVars map[string][]string `json:"global_vars"`
	Intents    map[string]Intent   `json:"intenciones"`
	DebugMode  bool                `json:"debug,omitempty"`

	// intentOrder records the order in which intent names appeared in
	// the source document. Tie-breaking keeps the earliest-seen intent,
	// and map iteration alone cannot provide that.
	intentOrder []string
}

type Intent struct {
	Patterns  []string            `json:"patterns"`
	Templates []string            `json:"plantilla"`
	LocalVars map[string][]string `json:"variables,omitempty"`
}

func NewResponseDocument() *ResponseDocument {
	return &ResponseDocument{
		GlobalVars: map[string][]string{},
		Intents:    map[string]Intent{},
	}
}

// EnsureDefaults replaces nil maps with empty ones so callers never see a
// half-initialized document.
func (d *ResponseDocument) EnsureDefaults() {
	if d.GlobalVars == nil {
		d.GlobalVars = map[string][]string{}
	}
	if d.Intents == nil {
		d.Intents = map[string]Intent{}
	}
}

func (d *ResponseDocument) TotalPatterns() int {
	total := 0
	for _, intent := range d.Intents {
		total += len(intent.Patterns)
	}
	return total
}

// IntentNames returns intent names in document order when known, sorted
// order otherwise. Either way the sequence is deterministic.
func (d *ResponseDocument) IntentNames() []string {
	if len(d.intentOrder) == len(d.Intents) {
		valid := true
		for _, name := range d.intentOrder {
			if _, ok := d.Intents[name]; !ok {
				valid = false
				break
			}
		}
		if valid {
			return append([]string(nil), d.intentOrder...)
		}
	}

	names := make([]string, 0, len(d.Intents))
	for name := range d.Intents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d *ResponseDocument) UnmarshalJSON(data []byte) error {
	type plain ResponseDocument
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	*d = ResponseDocument(p)
	d.intentOrder = intentKeyOrder(data)
	return nil
}

func intentKeyOrder(data []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil
		}
		key, _ := keyTok.(string)

		if key == "intenciones" {
			return objectKeys(dec)
		}
		if err := skipValue(dec); err != nil {
			return nil
		}
	}

	return nil
}

func objectKeys(dec *json.Decoder) []string {
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil
	}

	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil
		}
		if key, ok := keyTok.(string); ok {
			keys = append(keys, key)
		}
		if err := skipValue(dec); err != nil {
			return nil
		}
	}

	return keys
}

func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if d, ok := tok.(json.Delim); ok && (d == '{' || d == '[') {
		depth := 1
		for depth > 0 {
			t, err := dec.Token()
			if err != nil {
				return err
			}
			if dd, ok := t.(json.Delim); ok {
				switch dd {
				case '{', '[':
					depth++
				case '}', ']':
					depth--
				}
			}
		}
	}

	return nil
}
