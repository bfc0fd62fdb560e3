package codec

import (
	"encoding/json"

	"curriculum-manager/feature/curriculum/models"
)

// Export converts a live hierarchy into its portable document form.
// Absent optional fields are exported as null and child collections are always
// arrays. Live-only derived fields are not carried.
func Export(domain *models.Domain) models.Document {
	doc := models.Document{
		Domain: models.DomainNode{
			ID:        strPtr(domain.ID),
			Name:      domain.Name,
			ColorCode: clone(domain.ColorCode),
		},
		Competencies: make([]models.CompetencyNode, 0, len(domain.Competencies)),
	}

	for i := range domain.Competencies {
		doc.Competencies = append(doc.Competencies, exportCompetency(&domain.Competencies[i]))
	}
	return doc
}

// ExportJSON renders Export(domain) as JSON indented with two spaces.
func ExportJSON(domain *models.Domain) ([]byte, error) {
	return json.MarshalIndent(Export(domain), "", "  ")
}

func exportCompetency(c *models.Competency) models.CompetencyNode {
	node := models.CompetencyNode{
		ID:              strPtr(c.ID),
		Name:            c.Name,
		Description:     clone(c.Description),
		Objectives:      clone(c.Objectives),
		SubCompetencies: make([]models.SubCompetencyNode, 0, len(c.SubCompetencies)),
	}
	for i := range c.SubCompetencies {
		node.SubCompetencies = append(node.SubCompetencies, exportSubCompetency(&c.SubCompetencies[i]))
	}
	return node
}

func exportSubCompetency(s *models.SubCompetency) models.SubCompetencyNode {
	node := models.SubCompetencyNode{
		ID:          strPtr(s.ID),
		Name:        s.Name,
		Description: clone(s.Description),
		Objectives:  clone(s.Objectives),
		Level:       clone(s.Level),
		Resources:   make([]models.ResourceNode, 0, len(s.Resources)),
		Evaluations: make([]models.EvaluationNode, 0, len(s.Evaluations)),
	}
	for _, r := range s.Resources {
		node.Resources = append(node.Resources, models.ResourceNode{
			ID:           strPtr(r.ID),
			Type:         r.Type,
			Name:         r.Name,
			Description:  clone(r.Description),
			URL:          clone(r.URL),
			FileKey:      clone(r.FileKey),
			PersonUserID: clone(r.PersonUserID),
		})
	}
	for _, e := range s.Evaluations {
		node.Evaluations = append(node.Evaluations, models.EvaluationNode{
			ID:          strPtr(e.ID),
			Name:        e.Name,
			Description: clone(e.Description),
			Mode:        e.Mode,
			Format:      e.Format,
			DurationMin: models.MinutesPtr(e.DurationMin),
			URL:         clone(e.URL),
			FileKey:     clone(e.FileKey),
		})
	}
	return node
}

func strPtr(s string) *string {
	return &s
}

// clone copies an optional value so the document never aliases the live model.
func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
