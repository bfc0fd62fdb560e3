package models

// DomainFields is the field set written on a domain update.
// Nil fields are left untouched.
type DomainFields struct {
	Name      *string
	ColorCode *string
}

// IsEmpty reports whether no field is set.
func (f DomainFields) IsEmpty() bool {
	return f.Name == nil && f.ColorCode == nil
}

// CompetencyFields is the field set written for a competency.
// DomainID is only used on create.
type CompetencyFields struct {
	DomainID    string
	Name        string
	Description *string
	Objectives  *string
}

// SubCompetencyFields is the field set written for a sub-competency.
// CompetencyID is only used on create.
type SubCompetencyFields struct {
	CompetencyID string
	Name         string
	Description  *string
	Objectives   *string
	Level        *string
}

// ResourceFields is the field set written for a resource.
// SubCompetencyID is only used on create.
type ResourceFields struct {
	SubCompetencyID string
	Type            string
	Name            string
	Description     *string
	URL             *string
	FileKey         *string
	PersonUserID    *string
}

// EvaluationFields is the field set written for an evaluation.
// SubCompetencyID is only used on create.
type EvaluationFields struct {
	SubCompetencyID string
	Name            string
	Description     *string
	Mode            string
	Format          string
	DurationMin     *int
	URL             *string
	FileKey         *string
}
