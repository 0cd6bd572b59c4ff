package booking

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/alitacodes/Circlo-rental/app/echoServer/jwtx"
	"github.com/alitacodes/Circlo-rental/model"
	bs "github.com/alitacodes/Circlo-rental/service/booking"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc bs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/bookings
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":  "validation error",
			"fields": err.Error(),
		})
	}

	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start_date"})
	}
	end, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end_date"})
	}

	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}

	b, err := h.Svc.Create(c.Request().Context(), uid, req.ItemID, start, end)
	if err != nil {
		switch bs.Code(err) {
		case bs.ErrItemNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
		case bs.ErrSelfBooking:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Cannot book your own item"})
		case bs.ErrDateConflict:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Item is not available for selected dates"})
		case bs.ErrInvalidRange:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must not be before start_date"})
		default:
			h.Log.Error("booking create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create booking"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "Booking request created successfully",
		"bookingId": b.ID,
	})
}

// GET /api/bookings?type=renter|owner
func (h *Controller) List(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}

	role := bs.RoleRenter
	if c.QueryParam("type") == "owner" {
		role = bs.RoleOwner
	}

	rows, err := h.Svc.ListForUser(c.Request().Context(), uid, role)
	if err != nil {
		h.Log.Error("booking list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": rows})
}

// PUT /api/bookings/:id/status
func (h *Controller) UpdateStatus(c echo.Context) error {
	var req UpdateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid status"})
	}

	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}

	err = h.Svc.UpdateStatus(c.Request().Context(), uid, c.Param("id"), model.BookingStatus(req.Status))
	if err != nil {
		switch bs.Code(err) {
		case bs.ErrInvalidStatus:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid status"})
		case bs.ErrNotAuthorized:
			return c.JSON(http.StatusForbidden, echo.Map{"error": "Not authorized to update this booking"})
		default:
			h.Log.Error("booking status", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update booking"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Booking status updated successfully"})
}
