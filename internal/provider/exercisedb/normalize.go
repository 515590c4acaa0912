package exercisedb

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"

	"alcyxob/fittrack/internal/domain"

	"github.com/google/uuid"
)

// Shape names the response layout Normalize recognized.
type Shape string

const (
	ShapeArray        Shape = "array"   // [ {...}, ... ]
	ShapeResults      Shape = "results" // {"results": [ ... ]}
	ShapeData         Shape = "data"    // {"data": [ ... ]}
	ShapeUnrecognized Shape = "unrecognized"
)

// Normalize maps a catalog response body to exercises. It never fails:
// layouts are tried in a fixed priority order and anything else is
// reported as ShapeUnrecognized with a nil slice.
func Normalize(body []byte) ([]domain.Exercise, Shape) {
	items, shape := locateItems(body)
	if shape == ShapeUnrecognized {
		return nil, shape
	}

	exercises := make([]domain.Exercise, 0, len(items))
	for _, raw := range items {
		var item map[string]any
		if err := json.Unmarshal(raw, &item); err != nil || item == nil {
			continue
		}
		exercises = append(exercises, normalizeItem(item))
	}
	return exercises, shape
}

func locateItems(body []byte) ([]json.RawMessage, Shape) {
	var list []json.RawMessage
	if err := json.Unmarshal(body, &list); err == nil && list != nil {
		return list, ShapeArray
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil || envelope == nil {
		return nil, ShapeUnrecognized
	}
	for _, candidate := range []struct {
		key   string
		shape Shape
	}{
		{"results", ShapeResults},
		{"data", ShapeData},
	} {
		raw, ok := envelope[candidate.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &list); err == nil && list != nil {
			return list, candidate.shape
		}
	}
	return nil, ShapeUnrecognized
}

func normalizeItem(item map[string]any) domain.Exercise {
	ex := domain.Exercise{
		ID:     firstString(item, "exerciseId", "id", "_id"),
		Name:   capitalize(firstString(item, "name")),
		Muscle: firstOfListOr(item, "bodyParts", "bodyPart", "General"),
		Target: firstOfListOr(item, "targetMuscles", "target", "Target"),
	}
	if ex.ID == "" {
		ex.ID = uuid.NewString()
	}
	if ex.Name == "" {
		ex.Name = "Exercise"
	}
	ex.Muscle = titleWords(ex.Muscle)
	if img := firstString(item, "imageUrl", "gifUrl", "image"); img != "" {
		ex.Image = &img
	}
	return ex
}

// firstString returns the first key holding a non-empty string or number.
func firstString(item map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := item[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// firstOfListOr prefers the first element of the list under listKey, then
// the scalar under key, then def.
func firstOfListOr(item map[string]any, listKey, key, def string) string {
	if list, ok := item[listKey].([]any); ok && len(list) > 0 {
		if s, ok := list[0].(string); ok && s != "" {
			return s
		}
	}
	if s := firstString(item, key); s != "" {
		return s
	}
	return def
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// titleWords upper-cases every letter that starts a word.
func titleWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevWord := false
	for _, r := range s {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
		if isWord && !prevWord {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		prevWord = isWord
	}
	return b.String()
}
