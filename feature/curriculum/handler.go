package curriculum

import (
	"errors"

	"curriculum-manager/core/logger"
	"curriculum-manager/feature/curriculum/codec"
	"curriculum-manager/feature/curriculum/models"
	"curriculum-manager/feature/curriculum/reconcile"
	"curriculum-manager/feature/curriculum/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for curriculum import and export.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = models.Document{}
	var _ = reconcile.Summary{}
	return &Handler{service: service}
}

// RegisterRoutes registers the curriculum routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/curriculum")
	group.Get("/domains", h.HandleListDomains)
	group.Get("/domains/:id/export", h.HandleExport)
	group.Post("/domains/:id/import", h.HandleImport)
	group.Post("/domains/:id/import/object", h.HandleImportObject)
	group.Post("/domains/:id/publish", h.HandlePublish)
	group.Get("/domains/:id/publish", h.HandlePublishStatus)
	group.Get("/exports", h.HandleListExports)
	group.Get("/import/status", h.HandleImportStatus)
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, codec.ErrMalformedInput), errors.Is(err, codec.ErrInvalidShape):
		return fiber.StatusBadRequest
	case errors.Is(err, store.ErrDomainNotFound), errors.Is(err, ErrObjectNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrImportInProgress):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// HandleListDomains lists the domains available for export.
// @Summary List Domains
// @Description List all curriculum domains without their children.
// @Tags curriculum
// @Produce json
// @Success 200 {array} models.Domain "Domains"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /curriculum/domains [get]
func (h *Handler) HandleListDomains(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	domains, err := h.service.ListDomains(c.Context())
	if err != nil {
		return h.fail(c, l, "Listing domains failed", err)
	}
	return c.JSON(domains)
}

// HandleExport returns the export document of a domain.
// @Summary Export Domain
// @Description Serialize the live hierarchy of a domain to a portable tree document.
// @Tags curriculum
// @Produce json
// @Param id path string true "Domain ID"
// @Param download query bool false "Serve as a file attachment"
// @Success 200 {object} models.Document "Export Document"
// @Failure 404 {object} map[string]string "Domain Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /curriculum/domains/{id}/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("domain_id", id))

	data, err := h.service.ExportDomain(c.Context(), id)
	if err != nil {
		return h.fail(c, l, "Curriculum export failed", err)
	}

	if c.QueryBool("download") {
		c.Attachment(id + ".json")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(data)
}

// HandleImport merges the request body into a domain.
// @Summary Import Domain
// @Description Merge a tree document into the live hierarchy. Nodes with a known id are updated, others are created, invalid nodes are skipped.
// @Tags curriculum
// @Accept json
// @Produce json
// @Param id path string true "Domain ID"
// @Param document body models.Document true "Tree Document"
// @Success 200 {object} reconcile.Summary "Import Summary"
// @Failure 400 {object} map[string]string "Malformed or Invalid Document"
// @Failure 404 {object} map[string]string "Domain Not Found"
// @Failure 409 {object} map[string]string "Import In Progress"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /curriculum/domains/{id}/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("domain_id", id))

	summary, err := h.service.ImportDomain(c.Context(), id, c.Body())
	if err != nil {
		return h.fail(c, l, "Curriculum import failed", err)
	}
	return c.JSON(summary)
}

// HandleImportObject imports a document stored in object storage.
// @Summary Import Domain From Storage
// @Description Merge a tree document read from the storage bucket into the live hierarchy.
// @Tags curriculum
// @Produce json
// @Param id path string true "Domain ID"
// @Param key query string true "Object Key"
// @Success 200 {object} reconcile.Summary "Import Summary"
// @Failure 400 {object} map[string]string "Missing Key or Invalid Document"
// @Failure 404 {object} map[string]string "Domain or Object Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /curriculum/domains/{id}/import/object [post]
func (h *Handler) HandleImportObject(c *fiber.Ctx) error {
	id := c.Params("id")
	key := c.Query("key")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("domain_id", id), zap.String("key", key))

	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "query parameter 'key' is required",
		})
	}

	summary, err := h.service.ImportFromObject(c.Context(), id, key)
	if err != nil {
		return h.fail(c, l, "Curriculum import from storage failed", err)
	}
	return c.JSON(summary)
}

// HandlePublish uploads the export of a domain to object storage.
// @Summary Publish Export
// @Description Export a domain and store the document in the storage bucket.
// @Tags curriculum
// @Produce json
// @Param id path string true "Domain ID"
// @Success 200 {object} map[string]string "Published Key"
// @Failure 404 {object} map[string]string "Domain Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /curriculum/domains/{id}/publish [post]
func (h *Handler) HandlePublish(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("domain_id", id))

	key, err := h.service.PublishExport(c.Context(), id)
	if err != nil {
		return h.fail(c, l, "Curriculum publish failed", err)
	}
	return c.JSON(fiber.Map{
		"key": key,
	})
}

// HandlePublishStatus reports whether the published export of a domain is current.
// @Summary Published Export Status
// @Description Compare the export stored in the bucket with the live hierarchy.
// @Tags curriculum
// @Produce json
// @Param id path string true "Domain ID"
// @Success 200 {object} PublishStatus "Publish Status"
// @Failure 404 {object} map[string]string "Domain Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /curriculum/domains/{id}/publish [get]
func (h *Handler) HandlePublishStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("domain_id", id))

	status, err := h.service.CheckPublished(c.Context(), id)
	if err != nil {
		return h.fail(c, l, "Publish status check failed", err)
	}
	return c.JSON(status)
}

// HandleListExports lists the published export documents.
// @Summary List Published Exports
// @Description List the object keys of exports published to storage.
// @Tags curriculum
// @Produce json
// @Success 200 {array} string "Object Keys"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /curriculum/exports [get]
func (h *Handler) HandleListExports(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	keys, err := h.service.PublishedExports(c.Context())
	if err != nil {
		return h.fail(c, l, "Listing published exports failed", err)
	}
	if keys == nil {
		keys = []string{}
	}
	return c.JSON(keys)
}

// HandleImportStatus reports whether an import is running.
// @Summary Import Status
// @Description Report whether an import is currently in progress.
// @Tags curriculum
// @Produce json
// @Success 200 {object} map[string]bool "Loading Flag"
// @Router /curriculum/import/status [get]
func (h *Handler) HandleImportStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"loading": h.service.ImportInProgress(),
	})
}
