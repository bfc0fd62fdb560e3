package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"curriculum-manager/core/utils"
)

// Document is the portable snapshot of a curriculum hierarchy used for import
// and export. A node's ID is set only when it refers to an existing entity.
//
// Optional fields are pointers without omitempty so that exports render them as
// null rather than dropping them.
//
// Nodes decode leniently (see decode.go): an optional field of the wrong JSON
// type is dropped, and a node whose id or required field has the wrong type is
// marked malformed so the importer skips it. Decoding a node never fails.
type Document struct {
	Domain       DomainNode       `json:"domain"`
	Competencies []CompetencyNode `json:"competencies"`
}

// DomainNode is the document form of a Domain.
type DomainNode struct {
	ID        *string `json:"id"`
	Name      string  `json:"name"`
	ColorCode *string `json:"colorCode"`
}

// CompetencyNode is the document form of a Competency.
type CompetencyNode struct {
	ID              *string             `json:"id"`
	Name            string              `json:"name" validate:"required"`
	Description     *string             `json:"description"`
	Objectives      *string             `json:"objectives"`
	SubCompetencies []SubCompetencyNode `json:"subCompetencies"`

	malformed bool
}

// SubCompetencyNode is the document form of a SubCompetency.
type SubCompetencyNode struct {
	ID          *string          `json:"id"`
	Name        string           `json:"name" validate:"required"`
	Description *string          `json:"description"`
	Objectives  *string          `json:"objectives"`
	Level       *string          `json:"level"`
	Resources   []ResourceNode   `json:"resources"`
	Evaluations []EvaluationNode `json:"evaluations"`

	malformed bool
}

// ResourceNode is the document form of a Resource.
type ResourceNode struct {
	ID           *string `json:"id"`
	Type         string  `json:"type" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Description  *string `json:"description"`
	URL          *string `json:"url"`
	FileKey      *string `json:"fileKey"`
	PersonUserID *string `json:"personUserId"`

	malformed bool
}

// EvaluationNode is the document form of an Evaluation.
type EvaluationNode struct {
	ID          *string  `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description"`
	Mode        string   `json:"mode" validate:"required"`
	Format      string   `json:"format" validate:"required"`
	DurationMin *Minutes `json:"durationMin"`
	URL         *string  `json:"url"`
	FileKey     *string  `json:"fileKey"`

	malformed bool
}

// Minutes is a duration in whole minutes. It decodes from a JSON number or a
// numeric string and always encodes as a number.
type Minutes int

// UnmarshalJSON implements json.Unmarshaler.
func (m *Minutes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	n, err := utils.ParseInt(raw)
	if err != nil {
		return fmt.Errorf("durationMin: %w", err)
	}
	*m = Minutes(n)
	return nil
}

// IntPtr converts an optional Minutes to an optional int.
func (m *Minutes) IntPtr() *int {
	if m == nil {
		return nil
	}
	v := int(*m)
	return &v
}

// MinutesPtr converts an optional int to optional Minutes.
func MinutesPtr(v *int) *Minutes {
	if v == nil {
		return nil
	}
	m := Minutes(*v)
	return &m
}
