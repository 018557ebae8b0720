package diff

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/wI2L/jsondiff"
)

// PatchOp is a single JSON patch operation enriched with the replaced value.
type PatchOp struct {
	Op       string      `json:"op"`
	Actor    string      `json:"actor,omitempty"`
	Path     string      `json:"path"`
	NewValue interface{} `json:"new_value,omitempty"`
	OldValue interface{} `json:"old_value,omitempty"`
}

// GetChangelog compares the JSON forms of before and after.
func GetChangelog(before, after interface{}, actor string) ([]PatchOp, error) {
	jsonBefore, err := json.Marshal(before)
	if err != nil {
		return nil, err
	}
	jsonAfter, err := json.Marshal(after)
	if err != nil {
		return nil, err
	}

	patch, err := jsondiff.CompareJSON(jsonBefore, jsonAfter)
	if err != nil {
		return nil, err
	}
	if len(patch) == 0 {
		return nil, nil
	}

	var original interface{}
	if err := json.Unmarshal(jsonBefore, &original); err != nil {
		return nil, err
	}

	ops := make([]PatchOp, 0, len(patch))
	for _, op := range patch {
		p := PatchOp{
			Op:       op.Type,
			Actor:    actor,
			Path:     op.Path,
			NewValue: op.Value,
		}
		if op.Type == jsondiff.OperationRemove || op.Type == jsondiff.OperationReplace {
			if p.OldValue, err = lookup(original, op.Path); err != nil {
				return nil, err
			}
		}
		ops = append(ops, p)
	}
	return ops, nil
}

// lookup resolves an RFC 6901 pointer against a decoded JSON document.
func lookup(doc interface{}, pointer string) (interface{}, error) {
	current := doc
	for _, token := range splitPointer(pointer) {
		switch node := current.(type) {
		case map[string]interface{}:
			current = node[token]
		case []interface{}:
			i, err := strconv.Atoi(token)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in %s", token, pointer)
			}
			current = node[i]
		default:
			return nil, fmt.Errorf("invalid path: %s", pointer)
		}
	}
	return current, nil
}

func splitPointer(pointer string) []string {
	if pointer == "" || pointer == "/" {
		return nil
	}
	tokens := strings.Split(strings.TrimPrefix(pointer, "/"), "/")
	for i, t := range tokens {
		tokens[i] = strings.NewReplacer("~1", "/", "~0", "~").Replace(t)
	}
	return tokens
}
