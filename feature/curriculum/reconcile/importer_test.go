package reconcile

import (
	"context"
	"errors"
	"testing"

	"curriculum-manager/core/reconcile"
	"curriculum-manager/core/reconcile/mocks"
	"curriculum-manager/feature/curriculum/codec"
	"curriculum-manager/feature/curriculum/models"
	"curriculum-manager/feature/curriculum/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type storeMocks struct {
	domains         *mocks.EntityStore[models.DomainFields, models.Domain]
	competencies    *mocks.EntityStore[models.CompetencyFields, models.Competency]
	subCompetencies *mocks.EntityStore[models.SubCompetencyFields, models.SubCompetency]
	resources       *mocks.EntityStore[models.ResourceFields, models.Resource]
	evaluations     *mocks.EntityStore[models.EvaluationFields, models.Evaluation]
}

func newStoreMocks() (*storeMocks, store.Stores) {
	m := &storeMocks{
		domains:         new(mocks.EntityStore[models.DomainFields, models.Domain]),
		competencies:    new(mocks.EntityStore[models.CompetencyFields, models.Competency]),
		subCompetencies: new(mocks.EntityStore[models.SubCompetencyFields, models.SubCompetency]),
		resources:       new(mocks.EntityStore[models.ResourceFields, models.Resource]),
		evaluations:     new(mocks.EntityStore[models.EvaluationFields, models.Evaluation]),
	}
	return m, store.Stores{
		Domains:         m.domains,
		Competencies:    m.competencies,
		SubCompetencies: m.subCompetencies,
		Resources:       m.resources,
		Evaluations:     m.evaluations,
	}
}

func (m *storeMocks) assertExpectations(t *testing.T) {
	m.domains.AssertExpectations(t)
	m.competencies.AssertExpectations(t)
	m.subCompetencies.AssertExpectations(t)
	m.resources.AssertExpectations(t)
	m.evaluations.AssertExpectations(t)
}

func ptr[T any](v T) *T {
	return &v
}

func liveDomain() *models.Domain {
	return &models.Domain{
		ID:        "d1",
		Name:      "Math",
		ColorCode: ptr("#FF0000"),
		Competencies: []models.Competency{
			{
				ID:       "c1",
				DomainID: "d1",
				Name:     "Algebra",
				SubCompetencies: []models.SubCompetency{
					{
						ID:           "s1",
						CompetencyID: "c1",
						Name:         "Equations",
						Resources:    []models.Resource{{ID: "r1", SubCompetencyID: "s1", Type: "link", Name: "Intro"}},
						Evaluations:  []models.Evaluation{{ID: "e1", SubCompetencyID: "s1", Name: "Quiz", Mode: "written", Format: "individual"}},
					},
				},
			},
			{ID: "c2", DomainID: "d1", Name: "Geometry"},
		},
	}
}

func TestImport_UpdatesKnownAndCreatesNewCompetencies(t *testing.T) {
	m, stores := newStoreMocks()
	im := NewImporter(stores, nil)
	live := liveDomain()

	m.competencies.On("Update", mock.Anything, "c1", models.CompetencyFields{DomainID: "d1", Name: "Algebra II"}).
		Return(&models.Competency{ID: "c1", DomainID: "d1", Name: "Algebra II"}, nil)
	m.competencies.On("Create", mock.Anything, models.CompetencyFields{DomainID: "d1", Name: "New Comp"}).
		Return(&models.Competency{ID: "c9", DomainID: "d1", Name: "New Comp"}, nil)

	doc := &models.Document{
		Domain: models.DomainNode{ID: ptr("d1"), Name: "Math", ColorCode: ptr("#FF0000")},
		Competencies: []models.CompetencyNode{
			{ID: ptr("c1"), Name: "Algebra II"},
			{Name: "New Comp"},
		},
	}

	summary, err := im.Import(context.Background(), doc, TargetFromDomain(live))
	require.NoError(t, err)

	assert.False(t, summary.DomainUpdated)
	assert.Equal(t, reconcile.Counter{Created: 1, Updated: 1}, summary.Competencies)
	assert.Equal(t, 2, summary.Total())
	assert.Equal(t, 1, summary.Created())
	m.domains.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	m.assertExpectations(t)
}

func TestImport_DomainStage(t *testing.T) {
	tests := []struct {
		name    string
		node    models.DomainNode
		changes *models.DomainFields
	}{
		{
			name: "Unchanged",
			node: models.DomainNode{Name: "Math", ColorCode: ptr("#FF0000")},
		},
		{
			name: "NilColorIsNotAChange",
			node: models.DomainNode{Name: "Math"},
		},
		{
			name:    "NameChanged",
			node:    models.DomainNode{Name: "Mathematics", ColorCode: ptr("#FF0000")},
			changes: &models.DomainFields{Name: ptr("Mathematics")},
		},
		{
			name:    "ColorChanged",
			node:    models.DomainNode{Name: "Math", ColorCode: ptr("#00FF00")},
			changes: &models.DomainFields{ColorCode: ptr("#00FF00")},
		},
		{
			name:    "BothChanged",
			node:    models.DomainNode{ID: ptr("other"), Name: "Physics", ColorCode: ptr("#0000FF")},
			changes: &models.DomainFields{Name: ptr("Physics"), ColorCode: ptr("#0000FF")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, stores := newStoreMocks()
			im := NewImporter(stores, nil)
			if tt.changes != nil {
				// The update always targets the live domain, whatever id the document carries
				m.domains.On("Update", mock.Anything, "d1", *tt.changes).Return(&models.Domain{ID: "d1"}, nil)
			}

			summary, err := im.Import(context.Background(), &models.Document{Domain: tt.node}, TargetFromDomain(liveDomain()))
			require.NoError(t, err)

			assert.Equal(t, tt.changes != nil, summary.DomainUpdated)
			if tt.changes == nil {
				m.domains.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
				assert.Equal(t, 0, summary.Total())
			} else {
				assert.Equal(t, 1, summary.Total())
			}
			m.assertExpectations(t)
		})
	}
}

func TestImport_LiveDomainWithoutColor(t *testing.T) {
	m, stores := newStoreMocks()
	im := NewImporter(stores, nil)
	live := &models.Domain{ID: "d1", Name: "Math"}

	m.domains.On("Update", mock.Anything, "d1", models.DomainFields{ColorCode: ptr("#123456")}).Return(live, nil)

	summary, err := im.Import(context.Background(), &models.Document{
		Domain: models.DomainNode{Name: "Math", ColorCode: ptr("#123456")},
	}, TargetFromDomain(live))
	require.NoError(t, err)
	assert.True(t, summary.DomainUpdated)
	m.assertExpectations(t)
}

func TestImport_SkipsInvalidNodesSilently(t *testing.T) {
	m, stores := newStoreMocks()
	im := NewImporter(stores, nil)

	m.subCompetencies.On("Update", mock.Anything, "s1", models.SubCompetencyFields{CompetencyID: "c1", Name: "Equations"}).
		Return(&models.SubCompetency{ID: "s1", CompetencyID: "c1", Name: "Equations"}, nil)
	m.competencies.On("Update", mock.Anything, "c1", models.CompetencyFields{DomainID: "d1", Name: "Algebra"}).
		Return(&models.Competency{ID: "c1", DomainID: "d1", Name: "Algebra"}, nil)

	doc := &models.Document{
		Domain: models.DomainNode{Name: "Math"},
		Competencies: []models.CompetencyNode{
			// Skipped along with its whole subtree
			{Name: "", SubCompetencies: []models.SubCompetencyNode{{Name: "Orphan"}}},
			{
				ID:   ptr("c1"),
				Name: "Algebra",
				SubCompetencies: []models.SubCompetencyNode{
					{Name: "", Resources: []models.ResourceNode{{Type: "link", Name: "Lost"}}},
					{
						ID:          ptr("s1"),
						Name:        "Equations",
						Resources:   []models.ResourceNode{{Name: "No type"}, {Type: "file"}},
						Evaluations: []models.EvaluationNode{{Name: "No mode", Format: "group"}, {Name: "No format", Mode: "oral"}},
					},
				},
			},
		},
	}

	summary, err := im.Import(context.Background(), doc, TargetFromDomain(liveDomain()))
	require.NoError(t, err)

	assert.Equal(t, reconcile.Counter{Updated: 1}, summary.Competencies)
	assert.Equal(t, reconcile.Counter{Updated: 1}, summary.SubCompetencies)
	assert.Equal(t, reconcile.Counter{}, summary.Resources)
	assert.Equal(t, reconcile.Counter{}, summary.Evaluations)
	m.competencies.AssertNumberOfCalls(t, "Create", 0)
	m.subCompetencies.AssertNumberOfCalls(t, "Create", 0)
	m.resources.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.evaluations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.assertExpectations(t)
}

func TestImport_SkipsMistypedSiblings(t *testing.T) {
	m, stores := newStoreMocks()
	im := NewImporter(stores, nil)

	m.competencies.On("Update", mock.Anything, "c1", models.CompetencyFields{DomainID: "d1", Name: "Algebra"}).
		Return(&models.Competency{ID: "c1", DomainID: "d1", Name: "Algebra"}, nil)
	m.subCompetencies.On("Update", mock.Anything, "s1", models.SubCompetencyFields{CompetencyID: "c1", Name: "Equations"}).
		Return(&models.SubCompetency{ID: "s1", CompetencyID: "c1", Name: "Equations"}, nil)
	m.evaluations.On("Update", mock.Anything, "e1", models.EvaluationFields{SubCompetencyID: "s1", Name: "Quiz", Mode: "written", Format: "individual", DurationMin: ptr(30)}).
		Return(&models.Evaluation{ID: "e1"}, nil)

	doc, err := codec.Parse([]byte(`{
	  "domain": {"name": "Math", "colorCode": 5},
	  "competencies": [
	    {"id": 7, "name": "Numeric id"},
	    {"id": "c1", "name": "Algebra", "description": 5, "subCompetencies": [
	      {"id": "s1", "name": "Equations",
	       "resources": [{"id": "r1", "type": 3, "name": "Intro"}],
	       "evaluations": [{"id": "e1", "name": "Quiz", "mode": "written", "format": "individual", "durationMin": 30.0}]}
	    ]}
	  ]
	}`))
	require.NoError(t, err)

	summary, err := im.Import(context.Background(), doc, TargetFromDomain(liveDomain()))
	require.NoError(t, err)

	assert.False(t, summary.DomainUpdated)
	assert.Equal(t, reconcile.Counter{Updated: 1}, summary.Competencies)
	assert.Equal(t, reconcile.Counter{Updated: 1}, summary.SubCompetencies)
	assert.Equal(t, reconcile.Counter{}, summary.Resources)
	assert.Equal(t, reconcile.Counter{Updated: 1}, summary.Evaluations)
	m.competencies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.resources.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	m.assertExpectations(t)
}

func TestImport_NewParentCascadesItsID(t *testing.T) {
	m, stores := newStoreMocks()
	im := NewImporter(stores, nil)

	m.competencies.On("Create", mock.Anything, models.CompetencyFields{DomainID: "d1", Name: "Statistics"}).
		Return(&models.Competency{ID: "c-new", DomainID: "d1", Name: "Statistics"}, nil)
	// s1 exists, but under c1: within the new competency it is unknown
	m.subCompetencies.On("Create", mock.Anything, models.SubCompetencyFields{CompetencyID: "c-new", Name: "Sampling", Level: ptr("beginner")}).
		Return(&models.SubCompetency{ID: "s-new", CompetencyID: "c-new", Name: "Sampling"}, nil)
	m.resources.On("Create", mock.Anything, models.ResourceFields{SubCompetencyID: "s-new", Type: "link", Name: "Intro", URL: ptr("https://example.com")}).
		Return(&models.Resource{ID: "r-new", SubCompetencyID: "s-new"}, nil)
	m.evaluations.On("Create", mock.Anything, models.EvaluationFields{SubCompetencyID: "s-new", Name: "Quiz", Mode: "written", Format: "individual", DurationMin: ptr(30)}).
		Return(&models.Evaluation{ID: "e-new", SubCompetencyID: "s-new"}, nil)

	doc := &models.Document{
		Domain: models.DomainNode{Name: "Math"},
		Competencies: []models.CompetencyNode{{
			Name: "Statistics",
			SubCompetencies: []models.SubCompetencyNode{{
				ID:          ptr("s1"),
				Name:        "Sampling",
				Level:       ptr("beginner"),
				Resources:   []models.ResourceNode{{ID: ptr("r1"), Type: "link", Name: "Intro", URL: ptr("https://example.com")}},
				Evaluations: []models.EvaluationNode{{ID: ptr("e1"), Name: "Quiz", Mode: "written", Format: "individual", DurationMin: models.MinutesPtr(ptr(30))}},
			}},
		}},
	}

	summary, err := im.Import(context.Background(), doc, TargetFromDomain(liveDomain()))
	require.NoError(t, err)

	assert.Equal(t, reconcile.Counter{Created: 1}, summary.Competencies)
	assert.Equal(t, reconcile.Counter{Created: 1}, summary.SubCompetencies)
	assert.Equal(t, reconcile.Counter{Created: 1}, summary.Resources)
	assert.Equal(t, reconcile.Counter{Created: 1}, summary.Evaluations)
	m.assertExpectations(t)
}

func TestImport_ChildrenUpdatedWithinTheirScope(t *testing.T) {
	m, stores := newStoreMocks()
	im := NewImporter(stores, nil)

	m.competencies.On("Update", mock.Anything, "c1", mock.Anything).Return(&models.Competency{ID: "c1"}, nil)
	m.subCompetencies.On("Update", mock.Anything, "s1", mock.Anything).Return(&models.SubCompetency{ID: "s1"}, nil)
	m.resources.On("Update", mock.Anything, "r1", models.ResourceFields{SubCompetencyID: "s1", Type: "file", Name: "Slides", FileKey: ptr("files/slides.pdf")}).
		Return(&models.Resource{ID: "r1"}, nil)
	m.evaluations.On("Update", mock.Anything, "e1", models.EvaluationFields{SubCompetencyID: "s1", Name: "Exam", Mode: "written", Format: "individual"}).
		Return(&models.Evaluation{ID: "e1"}, nil)
	m.evaluations.On("Create", mock.Anything, models.EvaluationFields{SubCompetencyID: "s1", Name: "Oral", Mode: "oral", Format: "group"}).
		Return(&models.Evaluation{ID: "e2"}, nil)

	doc := &models.Document{
		Domain: models.DomainNode{Name: "Math"},
		Competencies: []models.CompetencyNode{{
			ID:   ptr("c1"),
			Name: "Algebra",
			SubCompetencies: []models.SubCompetencyNode{{
				ID:        ptr("s1"),
				Name:      "Equations",
				Resources: []models.ResourceNode{{ID: ptr("r1"), Type: "file", Name: "Slides", FileKey: ptr("files/slides.pdf")}},
				Evaluations: []models.EvaluationNode{
					{ID: ptr("e1"), Name: "Exam", Mode: "written", Format: "individual"},
					{ID: ptr(""), Name: "Oral", Mode: "oral", Format: "group"},
				},
			}},
		}},
	}

	summary, err := im.Import(context.Background(), doc, TargetFromDomain(liveDomain()))
	require.NoError(t, err)

	assert.Equal(t, reconcile.Counter{Updated: 1}, summary.Resources)
	assert.Equal(t, reconcile.Counter{Created: 1, Updated: 1}, summary.Evaluations)
	assert.Equal(t, 5, summary.Total())
	m.assertExpectations(t)
}

func TestImport_StopsAtFirstStoreError(t *testing.T) {
	m, stores := newStoreMocks()
	im := NewImporter(stores, nil)
	boom := errors.New("connection reset")

	names := []string{"C1", "C2", "C3", "C4", "C5"}
	for i, name := range names[:3] {
		call := m.competencies.On("Create", mock.Anything, models.CompetencyFields{DomainID: "d1", Name: name})
		if i == 2 {
			call.Return(nil, boom)
		} else {
			call.Return(&models.Competency{ID: "new-" + name}, nil)
		}
	}

	doc := &models.Document{Domain: models.DomainNode{Name: "Math"}}
	for _, name := range names {
		doc.Competencies = append(doc.Competencies, models.CompetencyNode{Name: name})
	}

	summary, err := im.Import(context.Background(), doc, TargetFromDomain(liveDomain()))
	assert.Nil(t, summary)
	assert.Same(t, boom, err)
	assert.False(t, im.Loading())
	m.competencies.AssertNumberOfCalls(t, "Create", 3)
	m.assertExpectations(t)
}

func TestImport_LoadingFlag(t *testing.T) {
	m, stores := newStoreMocks()
	im := NewImporter(stores, nil)
	assert.False(t, im.Loading())

	var during bool
	m.competencies.On("Create", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { during = im.Loading() }).
		Return(&models.Competency{ID: "c9"}, nil)

	_, err := im.Import(context.Background(), &models.Document{
		Domain:       models.DomainNode{Name: "Math"},
		Competencies: []models.CompetencyNode{{Name: "New"}},
	}, TargetFromDomain(liveDomain()))
	require.NoError(t, err)

	assert.True(t, during)
	assert.False(t, im.Loading())
}

func TestImport_RejectsConcurrentImport(t *testing.T) {
	m, stores := newStoreMocks()
	im := NewImporter(stores, nil)

	doc := &models.Document{
		Domain:       models.DomainNode{Name: "Math"},
		Competencies: []models.CompetencyNode{{Name: "New"}},
	}

	var nestedErr error
	var stillLoading bool
	m.competencies.On("Create", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			_, nestedErr = im.Import(context.Background(), doc, TargetFromDomain(liveDomain()))
			stillLoading = im.Loading()
		}).
		Return(&models.Competency{ID: "c9"}, nil).Once()

	summary, err := im.Import(context.Background(), doc, TargetFromDomain(liveDomain()))
	require.NoError(t, err)
	assert.Equal(t, reconcile.Counter{Created: 1}, summary.Competencies)

	assert.ErrorIs(t, nestedErr, ErrImportInProgress)
	assert.True(t, stillLoading, "a rejected import must not clear the running import's flag")
	assert.False(t, im.Loading())
	m.competencies.AssertNumberOfCalls(t, "Create", 1)
}

func TestImport_LogsSkippedNodeKinds(t *testing.T) {
	m, stores := newStoreMocks()
	core, logs := observer.New(zapcore.DebugLevel)
	im := NewImporter(stores, zap.New(core))

	m.competencies.On("Update", mock.Anything, "c1", mock.Anything).Return(&models.Competency{ID: "c1"}, nil)
	m.subCompetencies.On("Update", mock.Anything, "s1", mock.Anything).Return(&models.SubCompetency{ID: "s1"}, nil)

	doc := &models.Document{
		Domain: models.DomainNode{Name: "Math"},
		Competencies: []models.CompetencyNode{
			{Name: ""},
			{
				ID:   ptr("c1"),
				Name: "Algebra",
				SubCompetencies: []models.SubCompetencyNode{
					{Name: ""},
					{
						ID:          ptr("s1"),
						Name:        "Equations",
						Resources:   []models.ResourceNode{{Name: "No type"}},
						Evaluations: []models.EvaluationNode{{Name: "No mode"}},
					},
				},
			},
		},
	}

	_, err := im.Import(context.Background(), doc, TargetFromDomain(liveDomain()))
	require.NoError(t, err)

	var kinds []string
	for _, entry := range logs.FilterMessage("Skipped invalid node").All() {
		kinds = append(kinds, entry.ContextMap()["kind"].(string))
	}
	assert.Equal(t, []string{"competency", "sub_competency", "resource", "evaluation"}, kinds)
}

func TestImport_CancelledContext(t *testing.T) {
	m, stores := newStoreMocks()
	im := NewImporter(stores, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := im.Import(ctx, &models.Document{
		Domain:       models.DomainNode{Name: "Renamed"},
		Competencies: []models.CompetencyNode{{Name: "New"}},
	}, TargetFromDomain(liveDomain()))

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, im.Loading())
	m.domains.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	m.competencies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestImport_RequiresCurrentDomain(t *testing.T) {
	_, stores := newStoreMocks()
	im := NewImporter(stores, nil)

	_, err := im.Import(context.Background(), &models.Document{}, Target{})
	assert.ErrorIs(t, err, ErrNoTargetDomain)
}

func TestImport_FreshContextPerCall(t *testing.T) {
	m, stores := newStoreMocks()
	im := NewImporter(stores, nil)

	m.competencies.On("Create", mock.Anything, mock.Anything).Return(&models.Competency{ID: "c9"}, nil)

	doc := &models.Document{
		Domain:       models.DomainNode{Name: "Math"},
		Competencies: []models.CompetencyNode{{ID: ptr("c9"), Name: "New"}},
	}

	// c9 was created by the first call but is absent from the snapshot of the second
	for i := 0; i < 2; i++ {
		summary, err := im.Import(context.Background(), doc, TargetFromDomain(liveDomain()))
		require.NoError(t, err)
		assert.Equal(t, reconcile.Counter{Created: 1}, summary.Competencies)
	}
	m.competencies.AssertNumberOfCalls(t, "Create", 2)
	m.competencies.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
