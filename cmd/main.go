package main

import (
	"log"

	"github.com/joho/godotenv"

	"floraform.ca/storefront/internal/router"
	"floraform.ca/storefront/pkg/ai"
	"floraform.ca/storefront/pkg/auth"
	"floraform.ca/storefront/pkg/cart"
	"floraform.ca/storefront/pkg/catalog"
	"floraform.ca/storefront/pkg/checkout"
	"floraform.ca/storefront/pkg/email"
	"floraform.ca/storefront/pkg/global"
	"floraform.ca/storefront/pkg/mongo"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	mongo.InitMongoDB()
	mongo.EnsureIndexesOnStartup()

	ctx, cancel := global.GetDefaultTimer()
	defer cancel()
	if err := mongo.SeedProductsIfEmpty(ctx, catalog.SeedProducts); err != nil {
		log.Fatalf("Failed to seed product catalog: %v", err)
	}

	ai.InitializeAIService()

	settings := global.LoadSettings()
	notifier := email.NewNotifier(email.NewSenderFromEnv(settings.FromAddress), settings)
	authService := auth.NewService(auth.NewInMemoryUsers())
	pipeline := checkout.NewPipeline(checkout.OrderCreatorFunc(mongo.CreateOrder), notifier)

	router.InitEngine()
	router.InitDependencies(cart.NewManager(), checkout.NewManager(), pipeline, authService, notifier)
	router.InitializeRoutes()

	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Server is running on port %s", port)

	if err := router.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
