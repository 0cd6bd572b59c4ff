package echoServer

import (
	"github.com/alitacodes/Circlo-rental/app/echoServer/controller/auth"
	"github.com/alitacodes/Circlo-rental/app/echoServer/controller/booking"
	"github.com/alitacodes/Circlo-rental/app/echoServer/controller/item"
	"github.com/alitacodes/Circlo-rental/app/echoServer/controller/profile"
	"github.com/alitacodes/Circlo-rental/app/echoServer/controller/review"

	"github.com/labstack/echo/v4"
)

type C struct {
	Auth    *auth.Controller
	Item    *item.Controller
	Booking *booking.Controller
	Review  *review.Controller
	Profile *profile.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/api")
	pub.POST("/auth/register", c.Auth.Register)
	pub.POST("/auth/login", c.Auth.Login)
	pub.GET("/items", c.Item.List)
	pub.GET("/items/:id", c.Item.Detail)
	pub.GET("/categories", c.Item.Categories)

	// Authenticated
	priv := e.Group("/api")
	priv.Use(JWTAuth(c.JWTSecret))
	priv.POST("/items", c.Item.Create)
	priv.POST("/bookings", c.Booking.Create)
	priv.GET("/bookings", c.Booking.List)
	priv.PUT("/bookings/:id/status", c.Booking.UpdateStatus)
	priv.POST("/reviews", c.Review.Create)
	priv.GET("/profile", c.Profile.Get)
}
