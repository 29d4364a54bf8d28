package ogpeek

import (
	"encoding/json"
	"fmt"
)

// TypeKey is the property that selects the record kind of a bag.
const TypeKey = "og:type"

// Bag holds the Open Graph properties that describe one object, keyed by
// namespaced property name (e.g. "og:title", "og:image:width").
//
// Values are one of string, []string (a repeated property, in document
// order), Bag or []Bag (nested objects such as authors or albums).
type Bag map[string]any

// Type returns the value of og:type and whether it is present.
func (b Bag) Type() (string, bool) {
	s, ok := b[TypeKey].(string)
	return s, ok
}

// UnmarshalJSON decodes a bag, restoring the typed values that a generic JSON
// decode would otherwise leave as []any and map[string]any.
func (b *Bag) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	bag, err := normalizeBag(raw)
	if err != nil {
		return err
	}
	*b = bag
	return nil
}

func normalizeBag(raw map[string]any) (Bag, error) {
	bag := make(Bag, len(raw))
	for k, v := range raw {
		nv, err := normalizeValue(v)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", k, err)
		}
		bag[k] = nv
	}
	return bag, nil
}

func normalizeValue(v any) (any, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case map[string]any:
		return normalizeBag(v)
	case []any:
		if len(v) == 0 {
			return []string{}, nil
		}
		if _, ok := v[0].(map[string]any); ok {
			bags := make([]Bag, 0, len(v))
			for _, item := range v {
				m, ok := item.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("mixed list element %T", item)
				}
				nb, err := normalizeBag(m)
				if err != nil {
					return nil, err
				}
				bags = append(bags, nb)
			}
			return bags, nil
		}
		strs := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("mixed list element %T", item)
			}
			strs = append(strs, s)
		}
		return strs, nil
	default:
		return nil, fmt.Errorf("unsupported value %T", v)
	}
}

// str returns the first present key's value as a single string.
// A repeated property yields its first occurrence.
func (b Bag) str(keys ...string) (string, bool) {
	for _, k := range keys {
		switch v := b[k].(type) {
		case string:
			return v, true
		case []string:
			if len(v) > 0 {
				return v[0], true
			}
		}
	}
	return "", false
}

// strs returns the first present key's value as a list of strings.
func (b Bag) strs(keys ...string) []string {
	for _, k := range keys {
		switch v := b[k].(type) {
		case string:
			return []string{v}
		case []string:
			return append([]string(nil), v...)
		}
	}
	return nil
}

// bags returns the first present key's value as nested bags. A single bag is
// lifted into a one-element list and URL strings become bags holding og:url.
func (b Bag) bags(keys ...string) []Bag {
	for _, k := range keys {
		switch v := b[k].(type) {
		case Bag:
			return []Bag{v}
		case []Bag:
			return v
		case map[string]any:
			return []Bag{Bag(v)}
		case string:
			return []Bag{{"og:url": v}}
		case []string:
			out := make([]Bag, 0, len(v))
			for _, s := range v {
				out = append(out, Bag{"og:url": s})
			}
			return out
		}
	}
	return nil
}

// bag returns the first nested bag found under keys.
func (b Bag) bag(keys ...string) (Bag, bool) {
	if all := b.bags(keys...); len(all) > 0 {
		return all[0], true
	}
	return nil, false
}

// ns expands a kind-specific property ("article:author") into the
// og-prefixed key followed by the bare key.
func ns(key string) []string {
	return []string{"og:" + key, key}
}
