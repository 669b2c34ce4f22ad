package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/vendor-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils/response"
)

// authenticated returns the caller's claims and a logger tagged with their id.
// A 401 has already been written when ok is false.
func authenticated(w http.ResponseWriter, r *http.Request) (*models.Claims, *slog.Logger, bool) {

	logger := middleware.LoggerFromContext(r.Context())

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		logger.Warn("Unauthorized access attempt: missing user claims")
		response.Error(w, appErrors.UnauthorizedError("Authentication required"))
		return nil, logger, false
	}

	return claims, logger.With(slog.String("userID", claims.UserID.String())), true
}
