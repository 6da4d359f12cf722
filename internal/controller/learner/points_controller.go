package learner

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ptminh/learnhub/internal/controller"
	"github.com/ptminh/learnhub/internal/dto"
	"github.com/ptminh/learnhub/internal/service"
	"github.com/rs/zerolog/log"
)

type PointsController struct {
	ledgerService      service.LedgerService
	leaderboardService service.LeaderboardService
}

func NewPointsController(ledgerService service.LedgerService, leaderboardService service.LeaderboardService) *PointsController {
	return &PointsController{ledgerService: ledgerService, leaderboardService: leaderboardService}
}

// Balance godoc
// @Summary (Learner) Get point balances
// @Tags Learner - Points
// @Produce json
// @Param X-Learner-ID header string true "Learner UUID"
// @Success 200 {object} dto.LedgerBalanceDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /points/balance [get]
func (c *PointsController) Balance(ctx *gin.Context) {
	learnerID, ok := controller.LearnerID(ctx)
	if !ok {
		return
	}
	balance, err := c.ledgerService.Balance(learnerID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, balance)
}

// History godoc
// @Summary (Learner) Get the point transaction history
// @Tags Learner - Points
// @Produce json
// @Param X-Learner-ID header string true "Learner UUID"
// @Param limit query int false "Max entries to return"
// @Success 200 {array} dto.TransactionDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /points/history [get]
func (c *PointsController) History(ctx *gin.Context) {
	learnerID, ok := controller.LearnerID(ctx)
	if !ok {
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid limit format"})
			return
		}
		limit = val
	}

	history, err := c.ledgerService.History(learnerID, limit)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, history)
}

// Spend godoc
// @Summary (Learner) Spend available points
// @Tags Learner - Points
// @Accept json
// @Produce json
// @Param X-Learner-ID header string true "Learner UUID"
// @Param spend body dto.SpendPointsDTO true "Amount and source"
// @Success 200 {object} dto.LedgerBalanceDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid amount"
// @Failure 404 {object} dto.ErrorResponse "No ledger for learner"
// @Failure 409 {object} dto.ErrorResponse "Insufficient points"
// @Router /points/spend [post]
func (c *PointsController) Spend(ctx *gin.Context) {
	learnerID, ok := controller.LearnerID(ctx)
	if !ok {
		return
	}

	var req dto.SpendPointsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Spend: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	balance, err := c.ledgerService.Spend(learnerID, req)
	if err != nil {
		log.Warn().Err(err).Str("learnerID", learnerID.String()).Int("amount", req.Amount).Msg("Spend failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, balance)
}

// Leaderboard godoc
// @Summary Get the points leaderboard
// @Description Learners ranked by all-time earned points.
// @Tags Learner - Points
// @Produce json
// @Param limit query int false "Number of entries (default 10)"
// @Success 200 {array} dto.LeaderboardEntryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /leaderboard [get]
func (c *PointsController) Leaderboard(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid limit format"})
			return
		}
		limit = val
	}

	entries, err := c.leaderboardService.TopLearners(limit)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}
