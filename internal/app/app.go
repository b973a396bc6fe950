package app

import (
	"marketplace-backend/internal/application/products"
	"marketplace-backend/internal/application/uploads"
	"marketplace-backend/internal/config"
	"marketplace-backend/internal/infrastructure/database"
	healthhdl "marketplace-backend/internal/interfaces/handlers/health"
	prodhdl "marketplace-backend/internal/interfaces/handlers/products"
	"marketplace-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateApp builds the Fiber app with all global middleware, static mounts
// and route registration. Dependencies are constructed here and passed down
// explicitly; nothing is package-global.
//
// A failed database connection is logged but not fatal: the app still serves
// the frontend and static assets, and API calls answer 500 until the store
// is reachable. The returned client is nil in that case.
func CreateApp(cfg *config.Config) (*fiber.App, *mongo.Client) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	app.Use(middleware.CORS())
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var client *mongo.Client
	var store products.Store
	if cfg.MongoURI == "" {
		log.Error().Msg("MongoDB connection error: MONGO_URI is not set")
	} else if c, err := database.Connect(cfg.MongoURI); err != nil {
		log.Error().Err(err).Msg("MongoDB connection error")
	} else {
		client = c
		store = products.NewMongoStore(c.Database(cfg.MongoDB))
	}

	uploadService := uploads.NewService(cfg.UploadDir)
	productService := &products.Service{Store: store, Uploads: uploadService}

	healthHandlers := &healthhdl.Handlers{Client: client, DBName: cfg.MongoDB}
	app.Get("/api", healthHandlers.Root)
	app.Get("/api/test-db", healthHandlers.TestDB)

	productHandlers := &prodhdl.Handlers{Service: productService}
	api := app.Group("/api/products")
	api.Post("/add", productHandlers.CreateProduct)
	api.Get("/", productHandlers.GetAllProducts)
	// /recommended must register before /:id so it is not captured as an id
	api.Get("/recommended", productHandlers.GetRecommended)
	api.Get("/:id", productHandlers.GetProductByID)
	api.Put("/update/:id", productHandlers.UpdateProduct)
	api.Delete("/delete/:id", productHandlers.DeleteProduct)

	// Uploaded images are read-only under /uploads; frontend pages and
	// public assets (default image) share the root mount, frontend first.
	app.Static("/uploads", cfg.UploadDir)
	app.Static("/", cfg.FrontendDir, fiber.Static{Index: "index.html"})
	app.Static("/", cfg.PublicDir)

	return app, client
}
