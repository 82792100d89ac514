package model

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxbook/pkg/domain/types"
)

// Child is a child profile registered under a customer account
type Child struct {
	ID          types.ChildID `json:"id"`
	Name        string        `json:"name"`
	DateOfBirth string        `json:"dateOfBirth,omitempty"`
	Gender      string        `json:"gender,omitempty"`
}

// Field precedence for backend child records, whose shape differs between endpoints.
var (
	childIDKeys    = []string{"childId", "childrenId", "id"}
	childNameKeys  = []string{"childName", "fullName", "name"}
	childBirthKeys = []string{"dateOfBirth", "dob", "birthDate"}
)

// NormalizeChild converts a raw backend child record into a Child. The first
// non-empty key in each precedence list wins.
func NormalizeChild(raw map[string]any) (*Child, error) {
	id, ok := firstString(raw, childIDKeys)
	if !ok {
		return nil, goerr.Wrap(ErrMalformedRecord, "child record has no id",
			goerr.V("keys", keysOf(raw)))
	}

	name, _ := firstString(raw, childNameKeys)
	dob, _ := firstString(raw, childBirthKeys)
	gender, _ := firstString(raw, []string{"gender"})

	return &Child{
		ID:          types.ChildID(id),
		Name:        name,
		DateOfBirth: dob,
		Gender:      gender,
	}, nil
}

func firstString(raw map[string]any, keys []string) (string, bool) {
	for _, key := range keys {
		if s, ok := stringValue(raw[key]); ok {
			return s, true
		}
	}
	return "", false
}

func stringValue(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		s := strings.TrimSpace(x)
		return s, s != ""
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case json.Number:
		return x.String(), true
	}
	return "", false
}

func keysOf(raw map[string]any) []string {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	return keys
}
