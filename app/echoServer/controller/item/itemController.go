package item

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alitacodes/Circlo-rental/app/echoServer/jwtx"
	itemsvc "github.com/alitacodes/Circlo-rental/service/item"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc itemsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/items
func (h *Controller) Create(c echo.Context) error {
	var req CreateItemReq
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

	id, err := h.Svc.Create(c.Request().Context(), uid, itemsvc.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		PriceUnit:   req.PriceUnit,
		Location:    req.Location,
		GeoLocation: req.GeoLocation,
		IsVaultItem: req.IsVaultItem,
		VaultStory:  req.VaultStory,
	})
	if err != nil {
		switch itemsvc.Code(err) {
		case itemsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad input"})
		default:
			h.Log.Error("item create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create item"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Item created successfully",
		"itemId":  id,
	})
}

// GET /api/items
func (h *Controller) List(c echo.Context) error {
	f := itemsvc.Filter{
		Category: c.QueryParam("category"),
		Location: c.QueryParam("location"),
		Search:   c.QueryParam("search"),
	}
	if v := c.QueryParam("minPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid minPrice"})
		}
		f.MinPrice = &p
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid maxPrice"})
		}
		f.MaxPrice = &p
	}

	page := intParam(c, "page", 1)
	limit := intParam(c, "limit", itemsvc.DefaultPageSize)

	res, err := h.Svc.List(c.Request().Context(), f, page, limit)
	if err != nil {
		h.Log.Error("item list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch items"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items":      res.Items,
		"pagination": res.Pagination,
	})
}

// GET /api/items/:id
func (h *Controller) Detail(c echo.Context) error {
	res, err := h.Svc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch itemsvc.Code(err) {
		case itemsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
		default:
			h.Log.Error("item detail", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch item"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"item":    res.Item,
		"reviews": res.Reviews,
		"photos":  res.Photos,
	})
}

// GET /api/categories
func (h *Controller) Categories(c echo.Context) error {
	cats, err := h.Svc.Categories(c.Request().Context())
	if err != nil {
		h.Log.Error("categories", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch categories"})
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": cats})
}

func intParam(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}
