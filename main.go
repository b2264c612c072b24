package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/nishantsaini5786/saini-game-hub-backend/config/database"
	"github.com/nishantsaini5786/saini-game-hub-backend/config/environment"
	"github.com/nishantsaini5786/saini-game-hub-backend/controllers"
	"github.com/nishantsaini5786/saini-game-hub-backend/middleware"
	"github.com/nishantsaini5786/saini-game-hub-backend/repositories"
	route "github.com/nishantsaini5786/saini-game-hub-backend/routes"
	"github.com/nishantsaini5786/saini-game-hub-backend/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx := context.Background()

	client, err := database.Connect(ctx, environment.GetMongoURI())
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	userRepository := repositories.NewMongoUserRepository(client.Database(environment.GetDatabaseName()))
	if err := userRepository.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}

	uploadDir := environment.GetUploadDir()
	if err := os.MkdirAll(filepath.Join(uploadDir, controllers.ProfileImageDir), 0755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	authService := services.NewAuthService(userRepository)
	userService := services.NewUserService(userRepository)
	authController := controllers.NewAuthController(authService)
	uploadController := controllers.NewUploadController(userService, uploadDir)

	// Setup Gin router
	r := gin.Default()
	r.MaxMultipartMemory = 10 << 20 // 10 MB

	r.Use(middleware.ErrorHandlerMiddleware())

	// CORS Middleware; credentials must be allowed for the session cookie
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Register all routes
	route.RegisterRoutes(r, authController, uploadController)

	port := environment.GetPort()
	log.Println("🚀 Server running on port " + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
