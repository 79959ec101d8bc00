package fiatconnect

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FiatAccountEntry pairs a fiat account type with its schema details
type FiatAccountEntry struct {
	Type   string
	Detail FiatAccountDetail
}

// FiatAccount is the fiatAccount object of a quote response.
// Entries keep the key order of the JSON document, so "first" is well defined.
type FiatAccount struct {
	Entries []FiatAccountEntry
}

// First returns the first fiat account type in document order
func (f *FiatAccount) First() (FiatAccountEntry, bool) {
	if f == nil || len(f.Entries) == 0 {
		return FiatAccountEntry{}, false
	}
	return f.Entries[0], true
}

// UnmarshalJSON decodes the object key by key to preserve ordering
func (f *FiatAccount) UnmarshalJSON(data []byte) error {
	keys, values, err := decodeOrderedObject(data)
	if err != nil {
		return err
	}

	entries := make([]FiatAccountEntry, 0, len(keys))
	for i, key := range keys {
		var detail FiatAccountDetail
		if err := json.Unmarshal(values[i], &detail); err != nil {
			return fmt.Errorf("fiatAccount.%s: %w", key, err)
		}
		entries = append(entries, FiatAccountEntry{Type: key, Detail: detail})
	}

	f.Entries = entries
	return nil
}

// MarshalJSON writes the entries back as an object in their original order
func (f FiatAccount) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range f.Entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Type)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.Detail)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// AllowedValues is an allowedValues object (field name -> permitted values).
// The raw bytes are kept only to recover the original key order.
type AllowedValues json.RawMessage

// UnmarshalJSON keeps a copy of the raw object; null becomes empty
func (a *AllowedValues) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*a = nil
		return nil
	}
	*a = append((*a)[:0], trimmed...)
	return nil
}

// MarshalJSON re-encodes the decoded object
func (a AllowedValues) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return []byte("null"), nil
	}
	s, err := a.Stringify()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Len returns the number of keys, or 0 when the value is absent or not an object
func (a AllowedValues) Len() int {
	if len(a) == 0 {
		return 0
	}
	keys, _, err := decodeOrderedObject(a)
	if err != nil {
		return 0
	}
	return len(keys)
}

// Stringify decodes the object and writes it back in compact form with keys in
// their original order. Escapes in the input are resolved, so "A\/B" and
// "M\u0026T" come out as "A/B" and "M&T".
func (a AllowedValues) Stringify() (string, error) {
	keys, values, err := decodeOrderedObject(a)
	if err != nil {
		return "", fmt.Errorf("decoding allowed values: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	// Encode appends a newline after every value
	encode := func(v any) error {
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding allowed values: %w", err)
		}
		buf.Truncate(buf.Len() - 1)
		return nil
	}

	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encode(key); err != nil {
			return "", err
		}
		buf.WriteByte(':')

		var value any
		dec := json.NewDecoder(bytes.NewReader(values[i]))
		dec.UseNumber()
		if err := dec.Decode(&value); err != nil {
			return "", fmt.Errorf("decoding allowed values %s: %w", key, err)
		}
		if err := encode(value); err != nil {
			return "", err
		}
	}
	buf.WriteByte('}')
	return buf.String(), nil
}

// validate checks the value is an object of string arrays
func (a AllowedValues) validate() error {
	if len(a) == 0 {
		return nil
	}
	keys, values, err := decodeOrderedObject(a)
	if err != nil {
		return fmt.Errorf("expected object")
	}
	for i, key := range keys {
		var list []string
		if err := json.Unmarshal(values[i], &list); err != nil || list == nil {
			return fmt.Errorf("%s: expected array of strings", key)
		}
	}
	return nil
}

// decodeOrderedObject splits a JSON object into its keys and raw values in document order
func decodeOrderedObject(data []byte) ([]string, []json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var keys []string
	var values []json.RawMessage
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected object key, got %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, fmt.Errorf("decoding %s: %w", key, err)
		}
		keys = append(keys, key)
		values = append(values, raw)
	}

	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return keys, values, nil
}
