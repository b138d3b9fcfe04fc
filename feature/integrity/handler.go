package integrity

import (
	"roundest/core/logger"
	"roundest/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/votes", h.HandleVotesCheck)
	group.Get("/ratings", h.HandleRatingsCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/catalog", h.HandleCatalogCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Runs the schema, votes, ratings and storage checks. Failing checks are reported in their section.
// @Tags integrity
// @Produce json
// @Success 200 {object} integrity.Report "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := h.service.Run(c.Context())
	if !report.Healthy {
		l.Warn("Integrity checks reported problems")
	}
	return c.JSON(report)
}

// HandleSchemaCheck checks the ranking tables.
// @Summary Check Schema
// @Description Checks that the pokemon and votes tables have every column the models declare.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckSchema()
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleVotesCheck checks the vote log.
// @Summary Check Votes
// @Description Counts votes with the same winner and loser or with a missing Pokémon.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.VoteReport "Vote Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/votes [get]
func (h *Handler) HandleVotesCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckVotes(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Votes check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleRatingsCheck checks the rating mass.
// @Summary Check Ratings
// @Description Verifies that no rating is null and that the ratings sum to 1200 per Pokémon.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.RatingReport "Rating Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/ratings [get]
func (h *Handler) HandleRatingsCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckRatings(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Ratings check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleStorageCheck checks the bucket.
// @Summary Check Storage
// @Description Verifies the bucket exists and holds the catalog snapshot.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.StorageReport "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	if !h.service.StorageEnabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "storage is not configured"})
	}
	report, err := h.service.CheckStorage(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleCatalogCheck compares the database with the catalog snapshot.
// @Summary Check Catalog
// @Description Lists Pokémon missing from the database or the snapshot, and name or slug mismatches.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.CatalogReport "Catalog Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /integrity/catalog [get]
func (h *Handler) HandleCatalogCheck(c *fiber.Ctx) error {
	if !h.service.StorageEnabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "storage is not configured"})
	}
	report, err := h.service.CheckCatalog(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Catalog check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
