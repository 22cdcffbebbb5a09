package cart

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// SchemaVersion is written into every persisted cart. Version 0 is the
// legacy shape: a bare JSON array of items.
const SchemaVersion = 1

var ErrUnknownVersion = errors.New("unknown cart schema version")

type document struct {
	Version int    `json:"v"`
	Items   []Item `json:"items"`
}

func encode(items []Item) (string, error) {
	if items == nil {
		items = []Item{}
	}
	b, err := json.Marshal(document{Version: SchemaVersion, Items: items})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decode(raw string) ([]Item, error) {
	b := bytes.TrimSpace([]byte(raw))
	if len(b) == 0 {
		return nil, nil
	}

	var items []Item
	switch b[0] {
	case '[':
		if err := json.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("decode legacy cart: %w", err)
		}
	case '{':
		var doc document
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("decode cart: %w", err)
		}
		if doc.Version != SchemaVersion {
			return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, doc.Version)
		}
		items = doc.Items
	default:
		return nil, errors.New("decode cart: not a JSON array or object")
	}
	return normalize(items), nil
}

// normalize drops lines without an id, merges duplicate ids and keeps
// quantity within [1, MaxQuantity].
func normalize(items []Item) []Item {
	out := make([]Item, 0, len(items))
	idx := map[string]int{}
	for _, it := range items {
		if it.ID == "" {
			continue
		}
		it.Quantity = min(max(it.Quantity, 1), MaxQuantity)
		if i, ok := idx[it.ID]; ok {
			out[i].Quantity = min(out[i].Quantity+it.Quantity, MaxQuantity)
			continue
		}
		idx[it.ID] = len(out)
		out = append(out, it)
	}
	return out
}
