package models

import (
	"bytes"
	"encoding/json"
)

// nodeFields decodes one JSON object field by field. A failed required field or
// id marks the object bad; a failed optional field is dropped.
type nodeFields struct {
	raw map[string]json.RawMessage
	bad bool
}

func newNodeFields(data []byte) *nodeFields {
	f := &nodeFields{}
	if err := json.Unmarshal(data, &f.raw); err != nil || f.raw == nil {
		// Not an object (array, scalar or null)
		f.bad = true
	}
	return f
}

func (f *nodeFields) value(key string) (json.RawMessage, bool) {
	raw, ok := f.raw[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false
	}
	return raw, true
}

// required decodes a mandatory string. Absent leaves "", which fails validation.
func (f *nodeFields) required(key string, dst *string) {
	raw, ok := f.value(key)
	if !ok {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		f.bad = true
	}
}

// id decodes an entity id. An id of the wrong type cannot be matched or
// trusted as absent, so the node is marked bad.
func (f *nodeFields) id(dst **string) {
	raw, ok := f.value("id")
	if !ok {
		return
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		f.bad = true
		return
	}
	*dst = &v
}

// optional decodes into a new T, leaving dst nil when absent or mistyped.
func optional[T any](f *nodeFields, key string, dst **T) {
	raw, ok := f.value(key)
	if !ok {
		return
	}
	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return
	}
	*dst = v
}

// children decodes a child list. Elements never fail to decode themselves, so
// only a non-array value is dropped.
func children[T any](f *nodeFields, key string, dst *[]T) {
	raw, ok := f.value(key)
	if !ok {
		return
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return
	}
	*dst = items
}

// UnmarshalJSON implements json.Unmarshaler. The domain has no skip rule, so
// mistyped fields other than name are dropped.
func (n *DomainNode) UnmarshalJSON(data []byte) error {
	f := newNodeFields(data)
	*n = DomainNode{}
	optional(f, "id", &n.ID)
	f.required("name", &n.Name)
	optional(f, "colorCode", &n.ColorCode)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *CompetencyNode) UnmarshalJSON(data []byte) error {
	f := newNodeFields(data)
	*n = CompetencyNode{}
	f.id(&n.ID)
	f.required("name", &n.Name)
	optional(f, "description", &n.Description)
	optional(f, "objectives", &n.Objectives)
	children(f, "subCompetencies", &n.SubCompetencies)
	n.malformed = f.bad
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *SubCompetencyNode) UnmarshalJSON(data []byte) error {
	f := newNodeFields(data)
	*n = SubCompetencyNode{}
	f.id(&n.ID)
	f.required("name", &n.Name)
	optional(f, "description", &n.Description)
	optional(f, "objectives", &n.Objectives)
	optional(f, "level", &n.Level)
	children(f, "resources", &n.Resources)
	children(f, "evaluations", &n.Evaluations)
	n.malformed = f.bad
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *ResourceNode) UnmarshalJSON(data []byte) error {
	f := newNodeFields(data)
	*n = ResourceNode{}
	f.id(&n.ID)
	f.required("type", &n.Type)
	f.required("name", &n.Name)
	optional(f, "description", &n.Description)
	optional(f, "url", &n.URL)
	optional(f, "fileKey", &n.FileKey)
	optional(f, "personUserId", &n.PersonUserID)
	n.malformed = f.bad
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *EvaluationNode) UnmarshalJSON(data []byte) error {
	f := newNodeFields(data)
	*n = EvaluationNode{}
	f.id(&n.ID)
	f.required("name", &n.Name)
	optional(f, "description", &n.Description)
	f.required("mode", &n.Mode)
	f.required("format", &n.Format)
	optional(f, "durationMin", &n.DurationMin)
	optional(f, "url", &n.URL)
	optional(f, "fileKey", &n.FileKey)
	n.malformed = f.bad
	return nil
}

// Malformed reports whether the node had an id or required field of the wrong JSON type.
func (n *CompetencyNode) Malformed() bool { return n.malformed }

// Malformed reports whether the node had an id or required field of the wrong JSON type.
func (n *SubCompetencyNode) Malformed() bool { return n.malformed }

// Malformed reports whether the node had an id or required field of the wrong JSON type.
func (n *ResourceNode) Malformed() bool { return n.malformed }

// Malformed reports whether the node had an id or required field of the wrong JSON type.
func (n *EvaluationNode) Malformed() bool { return n.malformed }
