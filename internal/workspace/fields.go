package workspace

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"unitracker/internal/model"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)
)

// SlugKey turns a label such as "IELTS overall" into a field key such as "ielts_overall".
func SlugKey(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	s = nonSlugChars.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// ValidKey reports whether key is a machine-safe field key.
func ValidKey(key string) bool {
	return slugPattern.MatchString(key)
}

// CoerceField converts raw form input into the FieldValue stored for a field of type t.
// Blank input is null for every type except boolean, where only an explicit truthy value is true.
func CoerceField(t model.FieldType, raw string) model.FieldValue {
	v := strings.TrimSpace(raw)
	switch t {
	case model.FieldBoolean:
		switch strings.ToLower(v) {
		case "on", "true", "1", "yes":
			return model.BoolValue(true)
		}
		return model.BoolValue(false)
	case model.FieldNumber:
		if v == "" {
			return model.NullValue()
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return model.NullValue()
		}
		return model.NumberValue(n)
	}
	if v == "" {
		return model.NullValue()
	}
	return model.StringValue(v)
}

// ApplyFieldInput writes coerced values for every definition into a copy of fields.
// Keys without a definition are carried over so removing a column never wipes data.
func ApplyFieldInput(fields map[string]model.FieldValue, defs []model.UniversityFieldDefinition, input map[string]string) map[string]model.FieldValue {
	out := make(map[string]model.FieldValue, len(fields)+len(defs))
	for k, v := range fields {
		out[k] = v
	}
	for _, def := range defs {
		out[def.Key] = CoerceField(def.Type, input[def.Key])
	}
	return out
}
