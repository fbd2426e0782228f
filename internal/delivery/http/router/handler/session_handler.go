package handler

import (
	"log/slog"
	"net/http"

	"laundrify/internal/delivery/http/response"
	"laundrify/internal/errors"
	"laundrify/internal/watchdog"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	Guard  *watchdog.SessionGuard
	Logger *slog.Logger
}

// SessionHandler holds dependencies for session recovery handlers
type SessionHandler struct {
	guard  *watchdog.SessionGuard
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		guard:  params.Guard,
		logger: params.Logger,
	}
}

// Restore walks the backup cascade and returns the first recoverable session
func (h *SessionHandler) Restore(c echo.Context) error {
	session, err := h.guard.Restore(c.Request().Context())
	if err != nil {
		if errors.Is(err, watchdog.ErrRestoreSuppressed) {
			return response.Error(c, http.StatusConflict, "RESTORE_SUPPRESSED",
				"Session restore is suppressed after logout", "")
		}

		return response.NotFound(c, "SESSION_NOT_FOUND", "No session backup available")
	}

	return response.Success(c, http.StatusOK, session, "Session restored")
}

// Logout records an intentional sign-out so the next restore attempts are
// suppressed instead of silently signing the user back in
func (h *SessionHandler) Logout(c echo.Context) error {
	h.guard.NoteLogout()

	return response.Success(c, http.StatusOK, nil, "Logged out")
}
