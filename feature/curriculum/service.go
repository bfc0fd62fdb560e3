package curriculum

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	core "curriculum-manager/core/reconcile"
	"curriculum-manager/core/storage"
	"curriculum-manager/feature/curriculum/codec"
	"curriculum-manager/feature/curriculum/models"
	"curriculum-manager/feature/curriculum/reconcile"
	"curriculum-manager/feature/curriculum/store"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrImportInProgress is returned when an import is submitted while another one runs.
	ErrImportInProgress = reconcile.ErrImportInProgress
	// ErrObjectNotFound is returned when the requested import object does not exist.
	ErrObjectNotFound = errors.New("object not found")
)

// Service exposes export and import of curriculum hierarchies.
type Service struct {
	repo     *store.Repository
	importer *reconcile.Importer
	client   storage.Client
	bucket   string
	cfg      Config
	logger   *zap.Logger
	exports  *core.Cache[[]byte]
}

// NewService creates a new curriculum service.
func NewService(db *gorm.DB, client storage.Client, bucket string, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		repo:     store.NewRepository(db),
		importer: reconcile.NewImporter(store.NewGormStores(db), logger),
		client:   client,
		bucket:   bucket,
		cfg:      cfg,
		logger:   logger,
		exports:  core.NewCache[[]byte](cfg.ExportCacheTTL()),
	}
}

// Migrate creates the curriculum tables.
func (s *Service) Migrate(ctx context.Context) error {
	return s.repo.Migrate(ctx)
}

// CreateDomain seeds an empty domain.
func (s *Service) CreateDomain(ctx context.Context, name string, colorCode *string) (*models.Domain, error) {
	return s.repo.CreateDomain(ctx, name, colorCode)
}

// ListDomains returns every domain without children.
func (s *Service) ListDomains(ctx context.Context) ([]models.Domain, error) {
	return s.repo.ListDomains(ctx)
}

// ExportDomain renders the live hierarchy of domainID as an indented JSON document.
func (s *Service) ExportDomain(ctx context.Context, domainID string) ([]byte, error) {
	return s.exports.GetOrBuild(ctx, domainID, func(ctx context.Context) ([]byte, error) {
		domain, err := s.repo.LoadDomain(ctx, domainID)
		if err != nil {
			return nil, err
		}
		data, err := codec.ExportJSON(domain)
		if err != nil {
			return nil, fmt.Errorf("failed to encode domain %s: %w", domainID, err)
		}
		return data, nil
	})
}

// ImportDomain parses raw and merges it into the live hierarchy of domainID.
// Parse errors are returned as codec.ErrMalformedInput or codec.ErrInvalidShape
// before anything is written.
func (s *Service) ImportDomain(ctx context.Context, domainID string, raw []byte) (*reconcile.Summary, error) {
	doc, err := codec.Parse(raw)
	if err != nil {
		return nil, err
	}

	domain, err := s.repo.LoadDomain(ctx, domainID)
	if err != nil {
		return nil, err
	}

	// A failed import may still have applied writes
	defer s.exports.Invalidate(domainID)

	summary, err := s.importer.Import(ctx, doc, reconcile.TargetFromDomain(domain))
	if errors.Is(err, ErrImportInProgress) {
		return nil, err
	}
	if err != nil {
		s.logger.Error("Curriculum import failed", zap.String("domain_id", domainID), zap.Error(err))
		return nil, fmt.Errorf("import into domain %s failed: %w", domainID, err)
	}

	s.logger.Info("Curriculum import completed",
		zap.String("domain_id", domainID),
		zap.Bool("domain_updated", summary.DomainUpdated),
		zap.Int("competencies_created", summary.Competencies.Created),
		zap.Int("competencies_updated", summary.Competencies.Updated),
		zap.Int("sub_competencies_created", summary.SubCompetencies.Created),
		zap.Int("sub_competencies_updated", summary.SubCompetencies.Updated),
		zap.Int("resources_created", summary.Resources.Created),
		zap.Int("resources_updated", summary.Resources.Updated),
		zap.Int("evaluations_created", summary.Evaluations.Created),
		zap.Int("evaluations_updated", summary.Evaluations.Updated),
	)

	return summary, nil
}

// PublishExport uploads the export of domainID to object storage and returns its key.
func (s *Service) PublishExport(ctx context.Context, domainID string) (string, error) {
	data, err := s.ExportDomain(ctx, domainID)
	if err != nil {
		return "", err
	}

	if err := storage.EnsureBucket(ctx, s.client, s.bucket); err != nil {
		return "", err
	}

	key := s.cfg.ExportKey(domainID)
	if err := storage.PutJSON(ctx, s.client, s.bucket, key, data); err != nil {
		return "", err
	}

	s.logger.Info("Curriculum export published", zap.String("domain_id", domainID), zap.String("key", key), zap.Int("bytes", len(data)))
	return key, nil
}

// ImportFromObject imports the document stored under key into domainID.
func (s *Service) ImportFromObject(ctx context.Context, domainID, key string) (*reconcile.Summary, error) {
	raw, err := storage.ReadObject(ctx, s.client, s.bucket, key)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return nil, err
	}
	return s.ImportDomain(ctx, domainID, raw)
}

// PublishStatus compares the published export of a domain with its live export.
type PublishStatus struct {
	Key       string `json:"key"`
	Published bool   `json:"published"`
	UpToDate  bool   `json:"upToDate"`
}

// CheckPublished reports whether domainID has a published export and whether
// it still matches the live hierarchy.
func (s *Service) CheckPublished(ctx context.Context, domainID string) (*PublishStatus, error) {
	live, err := s.ExportDomain(ctx, domainID)
	if err != nil {
		return nil, err
	}

	status := &PublishStatus{Key: s.cfg.ExportKey(domainID)}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return status, nil
	}

	published, err := storage.ReadObject(ctx, s.client, s.bucket, status.Key)
	if isNoSuchKey(err) {
		return status, nil
	}
	if err != nil {
		return nil, err
	}

	status.Published = true
	status.UpToDate = bytes.Equal(published, live)
	return status, nil
}

func isNoSuchKey(err error) bool {
	var resp minio.ErrorResponse
	return errors.As(err, &resp) && resp.Code == "NoSuchKey"
}

// PublishedExports lists the keys of published exports.
func (s *Service) PublishedExports(ctx context.Context) ([]string, error) {
	return storage.ListKeys(ctx, s.client, s.bucket, s.cfg.ExportPrefix)
}

// ImportInProgress reports whether an import is currently running.
func (s *Service) ImportInProgress() bool {
	return s.importer.Loading()
}
