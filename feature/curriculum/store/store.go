package store

import (
	"context"
	"fmt"

	"curriculum-manager/core/reconcile"
	"curriculum-manager/feature/curriculum/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// DomainStore persists domains.
	DomainStore = reconcile.EntityStore[models.DomainFields, models.Domain]
	// CompetencyStore persists competencies.
	CompetencyStore = reconcile.EntityStore[models.CompetencyFields, models.Competency]
	// SubCompetencyStore persists sub-competencies.
	SubCompetencyStore = reconcile.EntityStore[models.SubCompetencyFields, models.SubCompetency]
	// ResourceStore persists resources.
	ResourceStore = reconcile.EntityStore[models.ResourceFields, models.Resource]
	// EvaluationStore persists evaluations.
	EvaluationStore = reconcile.EntityStore[models.EvaluationFields, models.Evaluation]
)

// Stores bundles the entity stores of the five curriculum kinds.
type Stores struct {
	Domains         DomainStore
	Competencies    CompetencyStore
	SubCompetencies SubCompetencyStore
	Resources       ResourceStore
	Evaluations     EvaluationStore
}

// NewGormStores returns GORM-backed stores sharing db.
func NewGormStores(db *gorm.DB) Stores {
	return Stores{
		Domains: &gormStore[models.DomainFields, models.Domain]{
			db:      db,
			build:   buildDomain,
			columns: domainColumns,
		},
		Competencies: &gormStore[models.CompetencyFields, models.Competency]{
			db: db,
			build: func(f models.CompetencyFields) *models.Competency {
				return &models.Competency{
					DomainID:    f.DomainID,
					Name:        f.Name,
					Description: f.Description,
					Objectives:  f.Objectives,
				}
			},
			columns: func(f models.CompetencyFields) map[string]any {
				cols := map[string]any{"name": f.Name}
				setIf(cols, "description", f.Description)
				setIf(cols, "objectives", f.Objectives)
				return cols
			},
		},
		SubCompetencies: &gormStore[models.SubCompetencyFields, models.SubCompetency]{
			db: db,
			build: func(f models.SubCompetencyFields) *models.SubCompetency {
				return &models.SubCompetency{
					CompetencyID: f.CompetencyID,
					Name:         f.Name,
					Description:  f.Description,
					Objectives:   f.Objectives,
					Level:        f.Level,
				}
			},
			columns: func(f models.SubCompetencyFields) map[string]any {
				cols := map[string]any{"name": f.Name}
				setIf(cols, "description", f.Description)
				setIf(cols, "objectives", f.Objectives)
				setIf(cols, "level", f.Level)
				return cols
			},
		},
		Resources: &gormStore[models.ResourceFields, models.Resource]{
			db: db,
			build: func(f models.ResourceFields) *models.Resource {
				return &models.Resource{
					SubCompetencyID: f.SubCompetencyID,
					Type:            f.Type,
					Name:            f.Name,
					Description:     f.Description,
					URL:             f.URL,
					FileKey:         f.FileKey,
					PersonUserID:    f.PersonUserID,
				}
			},
			columns: func(f models.ResourceFields) map[string]any {
				cols := map[string]any{"name": f.Name, "type": f.Type}
				setIf(cols, "description", f.Description)
				setIf(cols, "url", f.URL)
				setIf(cols, "file_key", f.FileKey)
				setIf(cols, "person_user_id", f.PersonUserID)
				return cols
			},
		},
		Evaluations: &gormStore[models.EvaluationFields, models.Evaluation]{
			db: db,
			build: func(f models.EvaluationFields) *models.Evaluation {
				return &models.Evaluation{
					SubCompetencyID: f.SubCompetencyID,
					Name:            f.Name,
					Description:     f.Description,
					Mode:            f.Mode,
					Format:          f.Format,
					DurationMin:     f.DurationMin,
					URL:             f.URL,
					FileKey:         f.FileKey,
				}
			},
			columns: func(f models.EvaluationFields) map[string]any {
				cols := map[string]any{"name": f.Name, "mode": f.Mode, "format": f.Format}
				setIf(cols, "description", f.Description)
				setIf(cols, "duration_min", f.DurationMin)
				setIf(cols, "url", f.URL)
				setIf(cols, "file_key", f.FileKey)
				return cols
			},
		},
	}
}

func buildDomain(f models.DomainFields) *models.Domain {
	d := &models.Domain{ColorCode: f.ColorCode}
	if f.Name != nil {
		d.Name = *f.Name
	}
	return d
}

func domainColumns(f models.DomainFields) map[string]any {
	cols := map[string]any{}
	setIf(cols, "name", f.Name)
	setIf(cols, "color_code", f.ColorCode)
	return cols
}

// gormStore implements reconcile.EntityStore for one model.
// Ids are assigned on create; update only writes the columns returned by columns.
type gormStore[F any, M any] struct {
	db      *gorm.DB
	build   func(F) *M
	columns func(F) map[string]any
}

// Create inserts a new row with a fresh UUID.
func (s *gormStore[F, M]) Create(ctx context.Context, fields F) (*M, error) {
	entity := s.build(fields)
	if err := assignID(entity); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}
	return entity, nil
}

// Update writes the field set onto the row with id and returns the reloaded row.
// An unknown id yields gorm.ErrRecordNotFound.
func (s *gormStore[F, M]) Update(ctx context.Context, id string, fields F) (*M, error) {
	db := s.db.WithContext(ctx)

	if cols := s.columns(fields); len(cols) > 0 {
		if err := db.Model(new(M)).Where("id = ?", id).Updates(cols).Error; err != nil {
			return nil, err
		}
	}

	entity := new(M)
	if err := db.Where("id = ?", id).First(entity).Error; err != nil {
		return nil, err
	}
	return entity, nil
}

func assignID(entity any) error {
	id := uuid.NewString()
	switch e := entity.(type) {
	case *models.Domain:
		e.ID = id
	case *models.Competency:
		e.ID = id
	case *models.SubCompetency:
		e.ID = id
	case *models.Resource:
		e.ID = id
	case *models.Evaluation:
		e.ID = id
	default:
		return fmt.Errorf("unsupported entity type %T", entity)
	}
	return nil
}

func setIf[T any](cols map[string]any, column string, value *T) {
	if value != nil {
		cols[column] = *value
	}
}
