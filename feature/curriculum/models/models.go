package models

import "time"

// Domain is the root of a live curriculum hierarchy.
type Domain struct {
	ID           string       `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name         string       `gorm:"column:name;size:255;not null" json:"name"`
	ColorCode    *string      `gorm:"column:color_code;size:32" json:"colorCode"`
	Competencies []Competency `gorm:"foreignKey:DomainID" json:"competencies"`
	CreatedAt    time.Time    `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    time.Time    `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName overrides the table name.
func (Domain) TableName() string {
	return "domains"
}

// Competency belongs to a Domain.
type Competency struct {
	ID              string          `gorm:"column:id;primaryKey;size:36" json:"id"`
	DomainID        string          `gorm:"column:domain_id;size:36;index;not null" json:"domainId"`
	Name            string          `gorm:"column:name;size:255;not null" json:"name"`
	Description     *string         `gorm:"column:description;type:text" json:"description"`
	Objectives      *string         `gorm:"column:objectives;type:text" json:"objectives"`
	SubCompetencies []SubCompetency `gorm:"foreignKey:CompetencyID" json:"subCompetencies"`
	CreatedAt       time.Time       `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"column:updated_at" json:"updatedAt"`

	// SubCompetencyCount is derived when the hierarchy is loaded.
	SubCompetencyCount int `gorm:"-" json:"subCompetencyCount"`
}

// TableName overrides the table name.
func (Competency) TableName() string {
	return "competencies"
}

// SubCompetency belongs to a Competency and owns resources and evaluations.
type SubCompetency struct {
	ID           string       `gorm:"column:id;primaryKey;size:36" json:"id"`
	CompetencyID string       `gorm:"column:competency_id;size:36;index;not null" json:"competencyId"`
	Name         string       `gorm:"column:name;size:255;not null" json:"name"`
	Description  *string      `gorm:"column:description;type:text" json:"description"`
	Objectives   *string      `gorm:"column:objectives;type:text" json:"objectives"`
	Level        *string      `gorm:"column:level;size:64" json:"level"`
	Resources    []Resource   `gorm:"foreignKey:SubCompetencyID" json:"resources"`
	Evaluations  []Evaluation `gorm:"foreignKey:SubCompetencyID" json:"evaluations"`
	CreatedAt    time.Time    `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    time.Time    `gorm:"column:updated_at" json:"updatedAt"`

	// ResourceCount and EvaluationCount are derived when the hierarchy is loaded.
	ResourceCount   int `gorm:"-" json:"resourceCount"`
	EvaluationCount int `gorm:"-" json:"evaluationCount"`
}

// TableName overrides the table name.
func (SubCompetency) TableName() string {
	return "sub_competencies"
}

// Resource is learning material attached to a SubCompetency.
type Resource struct {
	ID              string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	SubCompetencyID string    `gorm:"column:sub_competency_id;size:36;index;not null" json:"subCompetencyId"`
	Type            string    `gorm:"column:type;size:32;not null" json:"type"` // e.g. link, file, person
	Name            string    `gorm:"column:name;size:255;not null" json:"name"`
	Description     *string   `gorm:"column:description;type:text" json:"description"`
	URL             *string   `gorm:"column:url;size:2048" json:"url"`
	FileKey         *string   `gorm:"column:file_key;size:512" json:"fileKey"`
	PersonUserID    *string   `gorm:"column:person_user_id;size:36" json:"personUserId"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName overrides the table name.
func (Resource) TableName() string {
	return "resources"
}

// Evaluation assesses a SubCompetency.
type Evaluation struct {
	ID              string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	SubCompetencyID string    `gorm:"column:sub_competency_id;size:36;index;not null" json:"subCompetencyId"`
	Name            string    `gorm:"column:name;size:255;not null" json:"name"`
	Description     *string   `gorm:"column:description;type:text" json:"description"`
	Mode            string    `gorm:"column:mode;size:32;not null" json:"mode"`     // e.g. individual, group
	Format          string    `gorm:"column:format;size:32;not null" json:"format"` // e.g. quiz, project
	DurationMin     *int      `gorm:"column:duration_min" json:"durationMin"`
	URL             *string   `gorm:"column:url;size:2048" json:"url"`
	FileKey         *string   `gorm:"column:file_key;size:512" json:"fileKey"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName overrides the table name.
func (Evaluation) TableName() string {
	return "evaluations"
}

// All returns every model, in dependency order, for migrations.
func All() []any {
	return []any{&Domain{}, &Competency{}, &SubCompetency{}, &Resource{}, &Evaluation{}}
}
