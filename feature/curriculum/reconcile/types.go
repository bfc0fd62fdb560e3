package reconcile

import (
	"curriculum-manager/core/reconcile"
	"curriculum-manager/feature/curriculum/models"
)

// Summary reports the writes applied by one import.
// Every persisted write increments exactly one counter.
type Summary struct {
	DomainUpdated   bool              `json:"domainUpdated"`
	Competencies    reconcile.Counter `json:"competencies"`
	SubCompetencies reconcile.Counter `json:"subCompetencies"`
	Resources       reconcile.Counter `json:"resources"`
	Evaluations     reconcile.Counter `json:"evaluations"`
}

// Total returns the number of persisted writes, the domain update included.
func (s Summary) Total() int {
	total := s.Competencies.Total() + s.SubCompetencies.Total() + s.Resources.Total() + s.Evaluations.Total()
	if s.DomainUpdated {
		total++
	}
	return total
}

// Created returns the number of created entities across all levels.
func (s Summary) Created() int {
	return s.Competencies.Created + s.SubCompetencies.Created + s.Resources.Created + s.Evaluations.Created
}

// Target is the live state an import merges into.
type Target struct {
	// CurrentDomain is the live domain receiving the import.
	CurrentDomain *models.Domain
	// ExistingCompetencies is the live snapshot used to build the identity maps.
	ExistingCompetencies []models.Competency
}

// TargetFromDomain uses a loaded hierarchy as both domain and snapshot.
func TargetFromDomain(domain *models.Domain) Target {
	return Target{CurrentDomain: domain, ExistingCompetencies: domain.Competencies}
}

// MergeContext is the state of one import: the identity maps and the running
// summary. It is built fresh for every call and never shared.
type MergeContext struct {
	Competencies    reconcile.Index[*models.Competency]
	SubCompetencies *reconcile.ScopedIndex[*models.SubCompetency]
	Resources       *reconcile.ScopedIndex[*models.Resource]
	Evaluations     *reconcile.ScopedIndex[*models.Evaluation]
	Summary         Summary
}

// NewMergeContext builds the identity maps from the existing competencies.
func NewMergeContext(existing []models.Competency) *MergeContext {
	return &MergeContext{
		Competencies:    BuildCompetencyIndex(existing),
		SubCompetencies: BuildSubCompetencyIndexes(existing),
		Resources:       BuildResourceIndexes(existing),
		Evaluations:     BuildEvaluationIndexes(existing),
	}
}
