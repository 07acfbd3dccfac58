package main

import (
	"log"

	"github.com/Nyagwenchar/bmsafaris/config"
	"github.com/Nyagwenchar/bmsafaris/database"
	"github.com/Nyagwenchar/bmsafaris/handlers"
	"github.com/Nyagwenchar/bmsafaris/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)
	notifier := services.NewNotificationService(services.NewSMTPMailer(cfg), cfg)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/media", cfg.MediaRoot)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	r.Use(sessions.Sessions("bmsafaris_session", cookie.NewStore([]byte(cfg.SecretKey))))

	reviewHandler := &handlers.ReviewHandler{DB: db, Notifier: notifier, Config: cfg}
	tourHandler := &handlers.TourHandler{DB: db}
	bookingHandler := &handlers.BookingHandler{DB: db, Notifier: notifier}
	contactHandler := &handlers.ContactHandler{Notifier: notifier}
	authHandler := &handlers.AuthHandler{DB: db, Config: cfg}

	r.GET("/", reviewHandler.Home)
	r.POST("/", reviewHandler.Home)
	r.GET("/about/", handlers.About)
	r.GET("/contact/", contactHandler.Form)
	r.POST("/contact/", contactHandler.Submit)

	r.GET("/tours/", tourHandler.List)
	r.GET("/tours/:slug/", tourHandler.Detail)
	r.GET("/tours/:slug/book/", bookingHandler.Form)
	r.POST("/tours/:slug/book/", bookingHandler.Submit)

	r.POST("/reviews/submit/", reviewHandler.SubmitReview)
	r.GET("/reviews/load-more/", reviewHandler.LoadMore)
	r.POST("/delete-review/:id/", reviewHandler.Delete)

	r.POST("/api/login", authHandler.Login)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
