package reconcile

import (
	"context"
	"errors"
	"sync/atomic"

	"curriculum-manager/core/reconcile"
	"curriculum-manager/feature/curriculum/models"
	"curriculum-manager/feature/curriculum/store"

	"go.uber.org/zap"
)

var (
	// ErrNoTargetDomain is returned when Import is called without a current domain.
	ErrNoTargetDomain = errors.New("import target has no current domain")
	// ErrImportInProgress is returned when Import is called while another import runs.
	ErrImportInProgress = errors.New("an import is already in progress")
)

// Importer merges parsed documents into a live hierarchy.
//
// One Import call walks the document sequentially: domain, then each competency
// in order, each of its sub-competencies, and for each sub-competency its
// resources then its evaluations. The first store error stops the walk and is
// returned as-is; writes already applied stay applied.
type Importer struct {
	stores  store.Stores
	levels  levels
	logger  *zap.Logger
	loading atomic.Bool
}

// NewImporter creates an Importer writing through stores.
func NewImporter(stores store.Stores, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{
		stores: stores,
		levels: newLevels(stores),
		logger: logger,
	}
}

// Loading reports whether an import is in flight.
func (im *Importer) Loading() bool {
	return im.loading.Load()
}

// Import merges doc into target and returns the summary of applied writes.
// doc must have passed codec.Parse. Only one import runs per Importer at a
// time; a concurrent call fails with ErrImportInProgress and leaves the
// running import's flag untouched.
func (im *Importer) Import(ctx context.Context, doc *models.Document, target Target) (*Summary, error) {
	if target.CurrentDomain == nil {
		return nil, ErrNoTargetDomain
	}

	if !im.loading.CompareAndSwap(false, true) {
		return nil, ErrImportInProgress
	}
	defer im.loading.Store(false)

	mc := NewMergeContext(target.ExistingCompetencies)

	if err := im.importDomain(ctx, doc.Domain, target.CurrentDomain, mc); err != nil {
		return nil, err
	}

	domainID := target.CurrentDomain.ID
	for i := range doc.Competencies {
		if err := im.importCompetency(ctx, &doc.Competencies[i], domainID, mc); err != nil {
			return nil, err
		}
	}

	summary := mc.Summary
	return &summary, nil
}

// importDomain compares name and colorCode only, and writes just the changed fields.
// A nil imported colorCode is treated as not carried.
func (im *Importer) importDomain(ctx context.Context, node models.DomainNode, current *models.Domain, mc *MergeContext) error {
	var changes models.DomainFields
	if node.Name != current.Name {
		name := node.Name
		changes.Name = &name
	}
	if node.ColorCode != nil && (current.ColorCode == nil || *node.ColorCode != *current.ColorCode) {
		color := *node.ColorCode
		changes.ColorCode = &color
	}
	if changes.IsEmpty() {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := im.stores.Domains.Update(ctx, current.ID, changes); err != nil {
		return err
	}
	mc.Summary.DomainUpdated = true
	return nil
}

func (im *Importer) importCompetency(ctx context.Context, node *models.CompetencyNode, domainID string, mc *MergeContext) error {
	comp, outcome, err := im.levels.competency.Apply(ctx, node, domainID, mc.Competencies, &mc.Summary.Competencies)
	if err != nil {
		return err
	}
	if outcome == reconcile.OutcomeSkipped {
		im.skipped(im.levels.competency.Kind, domainID)
		return nil
	}

	scope := mc.SubCompetencies.Scope(comp.ID)
	for i := range node.SubCompetencies {
		if err := im.importSubCompetency(ctx, &node.SubCompetencies[i], comp.ID, scope, mc); err != nil {
			return err
		}
	}
	return nil
}

func (im *Importer) importSubCompetency(ctx context.Context, node *models.SubCompetencyNode, competencyID string, scope reconcile.Index[*models.SubCompetency], mc *MergeContext) error {
	sub, outcome, err := im.levels.subCompetency.Apply(ctx, node, competencyID, scope, &mc.Summary.SubCompetencies)
	if err != nil {
		return err
	}
	if outcome == reconcile.OutcomeSkipped {
		im.skipped(im.levels.subCompetency.Kind, competencyID)
		return nil
	}

	// Children reference the sub-competency id resolved just above
	resources := mc.Resources.Scope(sub.ID)
	for i := range node.Resources {
		_, outcome, err := im.levels.resource.Apply(ctx, &node.Resources[i], sub.ID, resources, &mc.Summary.Resources)
		if err != nil {
			return err
		}
		if outcome == reconcile.OutcomeSkipped {
			im.skipped(im.levels.resource.Kind, sub.ID)
		}
	}

	evaluations := mc.Evaluations.Scope(sub.ID)
	for i := range node.Evaluations {
		_, outcome, err := im.levels.evaluation.Apply(ctx, &node.Evaluations[i], sub.ID, evaluations, &mc.Summary.Evaluations)
		if err != nil {
			return err
		}
		if outcome == reconcile.OutcomeSkipped {
			im.skipped(im.levels.evaluation.Kind, sub.ID)
		}
	}
	return nil
}

// skipped logs an invalid node. Skips are not reported to the caller.
func (im *Importer) skipped(kind, parentID string) {
	im.logger.Debug("Skipped invalid node", zap.String("kind", kind), zap.String("parent_id", parentID))
}
