package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"craftconnect/internal/database"
	"craftconnect/internal/middleware"
	"craftconnect/internal/modules/auth"
	"craftconnect/internal/modules/seller"
	"craftconnect/internal/modules/upload"
	"craftconnect/internal/modules/verification"
	jwtsvc "craftconnect/internal/pkg/jwt"
	"craftconnect/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	uploadDir := os.Getenv("UPLOAD_DIR")

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	artisanRepo := repository.NewArtisanRepository(db)
	uploadRepo := repository.NewUploadRepository(db)
	sellerRepo := repository.NewSellerApplicationRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	uploadService := upload.NewService(uploadRepo, uploadDir, "")
	uploadHandler := upload.NewHandler(uploadService)

	sellerService := seller.NewService(sellerRepo)
	sellerHandler := seller.NewHandler(sellerService)

	verificationService := verification.NewService(artisanRepo)
	verificationHandler := verification.NewHandler(verificationService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	if uploadDir == "" {
		uploadDir = upload.UploadsBaseDir
	}
	r.Static(upload.StaticURLBase, uploadDir)

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			uploadHandler.RegisterRoutes(protected)
			sellerHandler.RegisterRoutes(protected)
			verificationHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
