package ranking

import (
	"errors"
	"math"
	"math/rand/v2"
	"strconv"

	"roundest/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PairResponse is the body of GET /pair.
type PairResponse struct {
	ItemA Pokemon `json:"itemA"`
	ItemB Pokemon `json:"itemB"`
	Seed  float64 `json:"seed"`
}

// VoteRequest is the body of POST /vote.
type VoteRequest struct {
	WinnerID uint `json:"winnerId"`
	LoserID  uint `json:"loserId"`
}

// Handler handles HTTP requests for the ranking feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the ranking routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/pair", h.HandleGetPair)
	app.Post("/vote", h.HandleVote)
	app.Get("/results", h.HandleResults)
	app.Get("/pokemon/:slug", h.HandleGetPokemon)
}

// HandleGetPair returns two distinct Pokémon to compare.
// @Summary Get Pair
// @Description Picks two distinct Pokémon with a seeded shuffle. The same seed returns the same pair while ratings are unchanged. Omit seed for a random pair.
// @Tags ranking
// @Produce json
// @Param seed query number false "Shuffle seed, usually in [0,1)"
// @Success 200 {object} ranking.PairResponse "Pair"
// @Failure 400 {object} map[string]string "Invalid seed"
// @Failure 409 {object} map[string]string "Fewer than two Pokémon"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /pair [get]
func (h *Handler) HandleGetPair(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	seed := rand.Float64()
	if raw := c.Query("seed"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidSeed.Error()})
		}
		seed = v
	}

	a, b, err := h.service.GetPair(c.Context(), seed)
	if err != nil {
		l.Error("Pair request failed", zap.Float64("seed", seed), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(PairResponse{ItemA: a, ItemB: b, Seed: seed})
}

// HandleVote records a vote.
// @Summary Vote
// @Description Applies an Elo update to both Pokémon and stores the vote. A repeated request counts again.
// @Tags ranking
// @Accept json
// @Param vote body ranking.VoteRequest true "Winner and loser ids"
// @Success 204 "Vote recorded"
// @Failure 400 {object} map[string]string "Invalid body or same Pokémon twice"
// @Failure 404 {object} map[string]string "Unknown Pokémon"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /vote [post]
func (h *Handler) HandleVote(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req VoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.WinnerID == 0 || req.LoserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "winnerId and loserId are required"})
	}

	if err := h.service.RecordVote(c.Context(), req.WinnerID, req.LoserID); err != nil {
		status := statusFor(err)
		if status >= fiber.StatusInternalServerError {
			l.Error("Vote failed", zap.Uint("winner_id", req.WinnerID), zap.Uint("loser_id", req.LoserID), zap.Error(err))
		} else {
			l.Warn("Vote rejected", zap.Uint("winner_id", req.WinnerID), zap.Uint("loser_id", req.LoserID), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleResults returns the leaderboard.
// @Summary Results
// @Description Returns every Pokémon ordered by rating, highest first.
// @Tags ranking
// @Produce json
// @Success 200 {array} ranking.Pokemon "Leaderboard"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /results [get]
func (h *Handler) HandleResults(c *fiber.Ctx) error {
	items, err := h.service.ListRanked(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Leaderboard read failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	if items == nil {
		items = []Pokemon{}
	}
	return c.JSON(items)
}

// HandleGetPokemon returns one Pokémon by slug.
// @Summary Get Pokémon
// @Tags ranking
// @Produce json
// @Param slug path string true "Pokémon slug (e.g. 'mr-mime')"
// @Success 200 {object} ranking.Pokemon "Pokémon"
// @Failure 404 {object} map[string]string "Unknown Pokémon"
// @Router /pokemon/{slug} [get]
func (h *Handler) HandleGetPokemon(c *fiber.Ctx) error {
	item, err := h.service.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(item)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrSameItem), errors.Is(err, ErrInvalidSeed):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInsufficientData):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
