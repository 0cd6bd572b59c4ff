package profile

import (
	"log/slog"
	"net/http"

	"github.com/alitacodes/Circlo-rental/app/echoServer/jwtx"
	ps "github.com/alitacodes/Circlo-rental/service/profile"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc ps.Service
	Log *slog.Logger
}

// GET /api/profile
func (h *Controller) Get(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}

	p, err := h.Svc.Get(c.Request().Context(), uid)
	if err != nil {
		switch ps.Code(err) {
		case ps.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		default:
			h.Log.Error("profile", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch profile"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"user": p})
}
