package reconcile

import (
	"curriculum-manager/core/reconcile"
	"curriculum-manager/feature/curriculum/models"
	"curriculum-manager/feature/curriculum/store"

	"github.com/go-playground/validator/v10"
)

// nodeValidator checks the required tags on document nodes. Child slices carry
// no dive tag, so only the node's own fields are checked.
var nodeValidator = validator.New()

type malformer interface {
	Malformed() bool
}

// validNode rejects nodes that decoded with a mistyped id or required field,
// then checks the required tags.
func validNode[N any](node *N) bool {
	if m, ok := any(node).(malformer); ok && m.Malformed() {
		return false
	}
	return nodeValidator.Struct(node) == nil
}

func nodeID(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}

// levels holds the four reconcilers of one Importer.
type levels struct {
	competency    *reconcile.Level[models.CompetencyNode, models.CompetencyFields, models.Competency]
	subCompetency *reconcile.Level[models.SubCompetencyNode, models.SubCompetencyFields, models.SubCompetency]
	resource      *reconcile.Level[models.ResourceNode, models.ResourceFields, models.Resource]
	evaluation    *reconcile.Level[models.EvaluationNode, models.EvaluationFields, models.Evaluation]
}

func newLevels(stores store.Stores) levels {
	return levels{
		competency: &reconcile.Level[models.CompetencyNode, models.CompetencyFields, models.Competency]{
			Kind:   "competency",
			Store:  stores.Competencies,
			Valid:  validNode[models.CompetencyNode],
			NodeID: func(n *models.CompetencyNode) string { return nodeID(n.ID) },
			Fields: func(n *models.CompetencyNode, domainID string) models.CompetencyFields {
				return models.CompetencyFields{
					DomainID:    domainID,
					Name:        n.Name,
					Description: n.Description,
					Objectives:  n.Objectives,
				}
			},
			EntityID: func(c *models.Competency) string { return c.ID },
		},
		subCompetency: &reconcile.Level[models.SubCompetencyNode, models.SubCompetencyFields, models.SubCompetency]{
			Kind:   "sub_competency",
			Store:  stores.SubCompetencies,
			Valid:  validNode[models.SubCompetencyNode],
			NodeID: func(n *models.SubCompetencyNode) string { return nodeID(n.ID) },
			Fields: func(n *models.SubCompetencyNode, competencyID string) models.SubCompetencyFields {
				return models.SubCompetencyFields{
					CompetencyID: competencyID,
					Name:         n.Name,
					Description:  n.Description,
					Objectives:   n.Objectives,
					Level:        n.Level,
				}
			},
			EntityID: func(s *models.SubCompetency) string { return s.ID },
		},
		resource: &reconcile.Level[models.ResourceNode, models.ResourceFields, models.Resource]{
			Kind:   "resource",
			Store:  stores.Resources,
			Valid:  validNode[models.ResourceNode],
			NodeID: func(n *models.ResourceNode) string { return nodeID(n.ID) },
			Fields: func(n *models.ResourceNode, subCompetencyID string) models.ResourceFields {
				return models.ResourceFields{
					SubCompetencyID: subCompetencyID,
					Type:            n.Type,
					Name:            n.Name,
					Description:     n.Description,
					URL:             n.URL,
					FileKey:         n.FileKey,
					PersonUserID:    n.PersonUserID,
				}
			},
			EntityID: func(r *models.Resource) string { return r.ID },
		},
		evaluation: &reconcile.Level[models.EvaluationNode, models.EvaluationFields, models.Evaluation]{
			Kind:   "evaluation",
			Store:  stores.Evaluations,
			Valid:  validNode[models.EvaluationNode],
			NodeID: func(n *models.EvaluationNode) string { return nodeID(n.ID) },
			Fields: func(n *models.EvaluationNode, subCompetencyID string) models.EvaluationFields {
				return models.EvaluationFields{
					SubCompetencyID: subCompetencyID,
					Name:            n.Name,
					Description:     n.Description,
					Mode:            n.Mode,
					Format:          n.Format,
					DurationMin:     n.DurationMin.IntPtr(),
					URL:             n.URL,
					FileKey:         n.FileKey,
				}
			},
			EntityID: func(e *models.Evaluation) string { return e.ID },
		},
	}
}
