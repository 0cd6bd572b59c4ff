package review

import (
	"log/slog"
	"net/http"

	"github.com/alitacodes/Circlo-rental/app/echoServer/jwtx"
	rs "github.com/alitacodes/Circlo-rental/service/review"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CreateReviewReq struct {
	ItemID  string `json:"item_id" validate:"required,uuid4"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,min=10"`
}

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/reviews
func (h *Controller) Create(c echo.Context) error {
	var req CreateReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":  "validation error",
			"fields": err.Error(),
		})
	}

	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}

	id, err := h.Svc.Create(c.Request().Context(), uid, req.ItemID, req.Rating, req.Comment)
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrNotEligible:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Can only review items you have rented"})
		case rs.ErrAlreadyReviewed:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "You have already reviewed this item"})
		default:
			h.Log.Error("review create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create review"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Review created successfully",
		"reviewId": id,
	})
}
