package reconcile

import (
	"curriculum-manager/core/reconcile"
	"curriculum-manager/feature/curriculum/models"
)

// BuildCompetencyIndex indexes existing competencies by id.
func BuildCompetencyIndex(existing []models.Competency) reconcile.Index[*models.Competency] {
	return reconcile.BuildIndex(existing,
		func(c *models.Competency) string { return c.ID },
		func(c *models.Competency) *models.Competency { return c },
	)
}

// BuildSubCompetencyIndexes indexes sub-competencies by id, scoped by competency id.
// Every known competency gets a scope, even when it has no children.
func BuildSubCompetencyIndexes(existing []models.Competency) *reconcile.ScopedIndex[*models.SubCompetency] {
	scoped := reconcile.NewScopedIndex[*models.SubCompetency]()
	for i := range existing {
		c := &existing[i]
		scoped.Put(c.ID, reconcile.BuildIndex(c.SubCompetencies,
			func(s *models.SubCompetency) string { return s.ID },
			func(s *models.SubCompetency) *models.SubCompetency { return s },
		))
	}
	return scoped
}

// BuildResourceIndexes indexes resources by id, scoped by sub-competency id.
func BuildResourceIndexes(existing []models.Competency) *reconcile.ScopedIndex[*models.Resource] {
	scoped := reconcile.NewScopedIndex[*models.Resource]()
	eachSubCompetency(existing, func(s *models.SubCompetency) {
		scoped.Put(s.ID, reconcile.BuildIndex(s.Resources,
			func(r *models.Resource) string { return r.ID },
			func(r *models.Resource) *models.Resource { return r },
		))
	})
	return scoped
}

// BuildEvaluationIndexes indexes evaluations by id, scoped by sub-competency id.
func BuildEvaluationIndexes(existing []models.Competency) *reconcile.ScopedIndex[*models.Evaluation] {
	scoped := reconcile.NewScopedIndex[*models.Evaluation]()
	eachSubCompetency(existing, func(s *models.SubCompetency) {
		scoped.Put(s.ID, reconcile.BuildIndex(s.Evaluations,
			func(e *models.Evaluation) string { return e.ID },
			func(e *models.Evaluation) *models.Evaluation { return e },
		))
	})
	return scoped
}

func eachSubCompetency(existing []models.Competency, fn func(*models.SubCompetency)) {
	for i := range existing {
		subs := existing[i].SubCompetencies
		for j := range subs {
			fn(&subs[j])
		}
	}
}
