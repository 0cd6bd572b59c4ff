// Package main Circlo rental API.
//
// @title           Circlo Rental API
// @version         1.0
// @description     Peer-to-peer rental marketplace (items, bookings, reviews, profiles).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/alitacodes/Circlo-rental/app/echoServer"
	authctrl "github.com/alitacodes/Circlo-rental/app/echoServer/controller/auth"
	bookingctrl "github.com/alitacodes/Circlo-rental/app/echoServer/controller/booking"
	itemctrl "github.com/alitacodes/Circlo-rental/app/echoServer/controller/item"
	profilectrl "github.com/alitacodes/Circlo-rental/app/echoServer/controller/profile"
	reviewctrl "github.com/alitacodes/Circlo-rental/app/echoServer/controller/review"
	"github.com/alitacodes/Circlo-rental/app/echoServer/validation"
	"github.com/alitacodes/Circlo-rental/config"
	bookingrepo "github.com/alitacodes/Circlo-rental/repository/booking"
	itemrepo "github.com/alitacodes/Circlo-rental/repository/item"
	photorepo "github.com/alitacodes/Circlo-rental/repository/photo"
	reviewrepo "github.com/alitacodes/Circlo-rental/repository/review"
	userrepo "github.com/alitacodes/Circlo-rental/repository/user"
	authsvc "github.com/alitacodes/Circlo-rental/service/auth"
	bookingsvc "github.com/alitacodes/Circlo-rental/service/booking"
	itemsvc "github.com/alitacodes/Circlo-rental/service/item"
	profilesvc "github.com/alitacodes/Circlo-rental/service/profile"
	reviewsvc "github.com/alitacodes/Circlo-rental/service/review"
	"github.com/alitacodes/Circlo-rental/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	tables := []string{"users", "items", "bookings", "reviews", "chats", "photos"}
	if err := database.CheckTables(ctx, db, log, tables); err != nil {
		log.Error("schema check failed", "err", err)
		os.Exit(1)
	}

	// repos
	ur := userrepo.New(db)
	ir := itemrepo.New(db)
	br := bookingrepo.New(db)
	rr := reviewrepo.New(db)
	pr := photorepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	is := itemsvc.New(ir, rr, pr)
	bs := bookingsvc.New(db, br)
	rs := reviewsvc.New(rr, br)
	ps := profilesvc.New(ur)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	itemC := &itemctrl.Controller{Svc: is, V: v, Log: log}
	bookingC := &bookingctrl.Controller{Svc: bs, V: v, Log: log}
	reviewC := &reviewctrl.Controller{Svc: rs, V: v, Log: log}
	profileC := &profilectrl.Controller{Svc: ps, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:    authC,
		Item:    itemC,
		Booking: bookingC,
		Review:  reviewC,
		Profile: profileC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
