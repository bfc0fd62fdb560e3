package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"curriculum-manager/feature/curriculum/models"

	"github.com/xeipuuv/gojsonschema"
)

var (
	// ErrMalformedInput is returned when the raw text is not valid JSON.
	ErrMalformedInput = errors.New("malformed input")
	// ErrInvalidShape is returned when the JSON lacks the domain/competencies shape.
	ErrInvalidShape = errors.New("invalid document shape")
)

// documentSchema only pins what import needs to start: a domain object with a
// string name and a competencies array. Nodes below are checked by the reconcilers.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["domain", "competencies"],
  "properties": {
    "domain": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": { "type": "string" }
      }
    },
    "competencies": { "type": "array" }
  }
}`

var schema = mustLoadSchema(documentSchema)

func mustLoadSchema(source string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		panic(fmt.Sprintf("codec: invalid document schema: %v", err))
	}
	return s
}

// ShapeResult is the outcome of CheckShape.
type ShapeResult struct {
	// Valid is true when the document has the minimum import shape.
	Valid bool
	// Problems lists the violations as "field: description".
	Problems []string
}

// CheckShape validates an already decoded JSON value against the document schema.
// It never fails; violations are reported in the result.
func CheckShape(decoded any) ShapeResult {
	result, err := schema.Validate(gojsonschema.NewGoLoader(decoded))
	if err != nil {
		return ShapeResult{Problems: []string{err.Error()}}
	}
	if result.Valid() {
		return ShapeResult{Valid: true}
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return ShapeResult{Problems: problems}
}

// Parse decodes raw text into a Document.
//
// It fails with ErrMalformedInput if raw is not valid JSON and with
// ErrInvalidShape if the decoded value does not carry a domain object with a
// string name and a competencies array. Nothing below that is validated here:
// mistyped nodes decode as malformed and are skipped on import, mistyped
// optional fields are dropped.
func Parse(raw []byte) (*models.Document, error) {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("%w: document is not valid JSON: %v", ErrMalformedInput, err)
	}

	if shape := CheckShape(decoded); !shape.Valid {
		return nil, fmt.Errorf("%w: expected a domain object with a string name and a competencies array (%s)",
			ErrInvalidShape, strings.Join(shape.Problems, "; "))
	}

	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	return &doc, nil
}
