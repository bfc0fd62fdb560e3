package store

import (
	"context"
	"errors"
	"fmt"

	"curriculum-manager/feature/curriculum/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrDomainNotFound is returned when a domain id does not exist.
var ErrDomainNotFound = errors.New("domain not found")

// Repository reads live hierarchies and manages the schema.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the curriculum tables.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate curriculum tables: %w", err)
	}
	return nil
}

// CreateDomain inserts a new, empty domain.
func (r *Repository) CreateDomain(ctx context.Context, name string, colorCode *string) (*models.Domain, error) {
	domain := &models.Domain{ID: uuid.NewString(), Name: name, ColorCode: colorCode}
	if err := r.db.WithContext(ctx).Create(domain).Error; err != nil {
		return nil, fmt.Errorf("failed to create domain: %w", err)
	}
	return domain, nil
}

// ListDomains returns all domains without their children.
func (r *Repository) ListDomains(ctx context.Context) ([]models.Domain, error) {
	var domains []models.Domain
	if err := r.db.WithContext(ctx).Order("name, id").Find(&domains).Error; err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}
	return domains, nil
}

// LoadDomain loads the full live hierarchy of a domain, children in creation
// order, and fills the derived counts.
func (r *Repository) LoadDomain(ctx context.Context, id string) (*models.Domain, error) {
	ordered := func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at, id")
	}

	var domain models.Domain
	err := r.db.WithContext(ctx).
		Preload("Competencies", ordered).
		Preload("Competencies.SubCompetencies", ordered).
		Preload("Competencies.SubCompetencies.Resources", ordered).
		Preload("Competencies.SubCompetencies.Evaluations", ordered).
		Where("id = ?", id).
		First(&domain).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrDomainNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load domain %s: %w", id, err)
	}

	for i := range domain.Competencies {
		c := &domain.Competencies[i]
		c.SubCompetencyCount = len(c.SubCompetencies)
		for j := range c.SubCompetencies {
			s := &c.SubCompetencies[j]
			s.ResourceCount = len(s.Resources)
			s.EvaluationCount = len(s.Evaluations)
		}
	}

	return &domain, nil
}
