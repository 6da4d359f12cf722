package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ptminh/learnhub/internal/apperr"
	"github.com/ptminh/learnhub/internal/dto"
	"github.com/rs/zerolog/log"
)

// LearnerHeader carries the caller's identity. Session issuance is handled
// upstream; this service only needs the opaque learner id.
const LearnerHeader = "X-Learner-ID"

// RespondError writes the error with the status its kind maps to. Internal
// faults are logged server-side and masked with a generic message.
func RespondError(ctx *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
		ctx.JSON(status, dto.ErrorResponse{Message: "Internal server error"})
		return
	}
	ctx.JSON(status, dto.ErrorResponse{Message: err.Error()})
}

// LearnerID parses the learner identity header. Writes the error response and
// returns false when the header is missing or malformed.
func LearnerID(ctx *gin.Context) (uuid.UUID, bool) {
	raw := ctx.GetHeader(LearnerHeader)
	if raw == "" {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing " + LearnerHeader + " header"})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid learner ID format"})
		return uuid.Nil, false
	}
	return id, true
}

// ParseID parses a numeric path parameter, writing a 400 response on failure.
func ParseID(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
