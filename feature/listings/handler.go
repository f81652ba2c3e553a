package listings

import (
	"errors"

	"listing-sync/core/logger"
	"listing-sync/core/reconcile"
	"listing-sync/feature/listings/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for listings.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the listings routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/listings")
	group.Post("/sync", h.HandleSync)
	group.Get("/plan", h.HandlePlan)
	group.Get("/feed", h.HandleFeed)
	group.Get("/sql", h.HandleSQL)
	group.Post("/sql/upload", h.HandleUploadSQL)
	group.Get("/exports", h.HandleListExports)
	group.Get("/:code", h.HandleGetStored)
}

// HandleSync runs a reconciliation against the database.
// @Summary Synchronize listings
// @Description Fetches the feed and applies adds, updates and soft deletes.
// @Tags listings
// @Produce json
// @Success 200 {object} reconcile.SyncResult "Run completed without errors"
// @Success 207 {object} reconcile.SyncResult "Run completed with per-listing errors"
// @Failure 409 {object} reconcile.SyncResult "Another process is running a sync"
// @Failure 500 {object} reconcile.SyncResult "Run failed"
// @Router /listings/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, shared := h.service.Sync(c.Context())
	l.Info("Sync requested",
		zap.String("run_id", result.RunID),
		zap.Bool("success", result.Success),
		zap.Bool("shared", shared))

	return c.Status(syncStatus(result)).JSON(result)
}

func syncStatus(result reconcile.SyncResult) int {
	switch {
	case result.Success:
		return fiber.StatusOK
	case len(result.Errors) == 1 && result.Errors[0] == reconcile.ErrRunInProgress.Error():
		return fiber.StatusConflict
	case result.Added+result.Updated+result.Deleted > 0:
		return fiber.StatusMultiStatus
	default:
		return fiber.StatusInternalServerError
	}
}

// HandlePlan reports what a sync would change without applying it.
// @Summary Dry-run synchronization
// @Tags listings
// @Produce json
// @Success 200 {object} reconcile.PlanSummary "Plan"
// @Failure 502 {object} map[string]string "Feed unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /listings/plan [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	plan, err := h.service.Plan(c.Context())
	if err != nil {
		l.Error("Plan failed", zap.Error(err))
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(plan)
}

// HandleFeed returns the normalized feed.
// @Summary Current feed
// @Tags listings
// @Produce json
// @Success 200 {object} map[string]interface{} "count and items"
// @Failure 502 {object} map[string]string "Feed unavailable"
// @Router /listings/feed [get]
func (h *Handler) HandleFeed(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	items, err := h.service.Feed(c.Context())
	if err != nil {
		l.Error("Feed fetch failed", zap.Error(err))
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"count": len(items), "items": items})
}

// HandleSQL renders the feed as INSERT statements.
// @Summary SQL export
// @Tags listings
// @Produce plain
// @Success 200 {string} string "INSERT statements"
// @Failure 502 {object} map[string]string "Feed unavailable"
// @Router /listings/sql [get]
func (h *Handler) HandleSQL(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	sql, _, err := h.service.ExportSQL(c.Context())
	if err != nil {
		l.Error("SQL export failed", zap.Error(err))
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(sql)
}

// HandleUploadSQL stores the SQL export in object storage.
// @Summary Upload SQL export
// @Tags listings
// @Produce json
// @Success 201 {object} ExportInfo "Uploaded object"
// @Failure 502 {object} map[string]string "Feed unavailable"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /listings/sql/upload [post]
func (h *Handler) HandleUploadSQL(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	info, err := h.service.UploadExport(c.Context())
	if err != nil {
		l.Error("SQL upload failed", zap.Error(err))
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}

// HandleListExports lists uploaded SQL exports.
// @Summary List SQL exports
// @Tags listings
// @Produce json
// @Success 200 {array} string "Object keys"
// @Router /listings/exports [get]
func (h *Handler) HandleListExports(c *fiber.Ctx) error {
	keys, err := h.service.Exports(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Listing exports failed", zap.Error(err))
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	if keys == nil {
		keys = []string{}
	}
	return c.JSON(keys)
}

// HandleGetStored returns the persisted row of one listing.
// @Summary Stored listing
// @Tags listings
// @Produce json
// @Param code path string true "Listing code"
// @Success 200 {object} models.Row "Stored row"
// @Failure 404 {object} map[string]string "Unknown code"
// @Router /listings/{code} [get]
func (h *Handler) HandleGetStored(c *fiber.Ctx) error {
	row, err := h.service.Stored(c.Context(), c.Params("code"))
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.WithRayID(h.service.logger, c).Error("Stored listing lookup failed", zap.Error(err))
		}
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(row)
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, reconcile.ErrFetch), errors.Is(err, reconcile.ErrParse):
		return fiber.StatusBadGateway
	case errors.Is(err, store.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrStorageDisabled), errors.Is(err, store.ErrNotConnected):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
