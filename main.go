package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Bhavishya0149/Real-Real-Estate/config"
	"github.com/Bhavishya0149/Real-Real-Estate/controllers"
	"github.com/Bhavishya0149/Real-Real-Estate/database"
	"github.com/Bhavishya0149/Real-Real-Estate/middleware"
	"github.com/Bhavishya0149/Real-Real-Estate/repository"
	"github.com/Bhavishya0149/Real-Real-Estate/services"
	"github.com/Bhavishya0149/Real-Real-Estate/storage"
	"github.com/Bhavishya0149/Real-Real-Estate/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()
	db := client.Database(cfg.DatabaseName)

	blobs, err := storage.New(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	users := repository.NewUserRepository(db)
	properties := repository.NewPropertyRepository(db)
	photos := repository.NewPhotoRepository(db)
	videos := repository.NewVideoRepository(db)
	addresses := repository.NewAddressRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)

	sessions := services.NewSessionService(users, cfg)
	media := &services.MediaService{
		Properties: properties,
		Photos:     photos,
		Videos:     videos,
		Addresses:  addresses,
		Blobs:      blobs,
		PhotoLimit: cfg.PhotoLimit,
		VideoLimit: cfg.VideoLimit,
	}
	inquiries := services.NewInquiryService(inquiryRepo, cfg.InquiryCooldown)

	var mailer utils.Mailer = utils.LogMailer{}
	if cfg.SMTPHost != "" {
		mailer = &utils.SMTPMailer{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		}
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())

	credentialLimiter := middleware.NewRateLimiter(10, 5)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/auth/login", credentialLimiter.Middleware(), controllers.Login(sessions, cfg))
	r.POST("/auth/refresh-token", controllers.Refresh(sessions, cfg))
	r.POST("/auth/logout", middleware.Auth(sessions, true), controllers.Logout(sessions, cfg))

	r.POST("/users", credentialLimiter.Middleware(), controllers.Register(users, mailer, cfg))
	r.GET("/users/verify-email/:verificationString", controllers.VerifyEmail(users))
	r.GET("/users/verify-mobile/:verificationString", controllers.VerifyMobile(users))

	me := r.Group("/users/me")
	me.Use(middleware.Auth(sessions, false))
	{
		me.GET("", controllers.GetCurrentUser())
		me.PATCH("", controllers.UpdateUser(users, mailer, cfg))
		me.POST("/email-sharing", controllers.ToggleEmailSharing(users))
		me.GET("/saved-properties", controllers.GetSavedProperties(properties))
		me.GET("/inquiries", controllers.GetUserInquiries(inquiryRepo))
	}

	r.GET("/properties", controllers.GetAllProperties(properties, photos, videos, addresses))
	r.GET("/properties/:id", controllers.GetPropertyByID(properties, photos, videos, addresses))
	r.POST("/properties/:id/views", controllers.IncrementViewCount(properties))

	authed := r.Group("/properties")
	authed.Use(middleware.Auth(sessions, false))
	{
		authed.POST("", controllers.CreateProperty(properties, addresses))
		authed.POST("/:id/save", controllers.ToggleSaveProperty(users, properties))

		owned := authed.Group("")
		owned.Use(middleware.VerifyOwnerOrAdmin(properties))
		{
			owned.PATCH("/:id", controllers.UpdateProperty(properties, addresses))
			owned.DELETE("/:id", controllers.DeleteProperty(media))
			owned.POST("/:id/photos", controllers.UploadPropertyPhotos(media, cfg))
			owned.DELETE("/:id/photos/:photoId", controllers.DeletePropertyPhoto(media))
			owned.POST("/:id/video", controllers.UploadPropertyVideo(media, cfg))
			owned.DELETE("/:id/video/:videoId", controllers.DeletePropertyVideo(media))
			owned.GET("/:id/inquiries", controllers.GetInquiriesForProperty(inquiryRepo))
		}
	}

	inquiryRoutes := r.Group("/inquiries")
	inquiryRoutes.Use(middleware.Auth(sessions, false))
	{
		inquiryRoutes.POST("", controllers.CreateInquiry(inquiries, properties))
		inquiryRoutes.DELETE("/:id", controllers.DeleteInquiry(inquiryRepo))
	}

	r.Run()
}
