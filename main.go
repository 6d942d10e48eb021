package main

import (
	"net/http"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/webpanel/deploy/app/categories"
	"github.com/webpanel/deploy/app/images"
	"github.com/webpanel/deploy/app/products"
	"github.com/webpanel/deploy/app/server"
	"github.com/webpanel/deploy/config"
	"github.com/webpanel/deploy/database"
	"github.com/webpanel/deploy/models"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load(log)
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	log.Info("database connection established")

	categoryRepo := models.NewCategoryRepository(db)
	imageRepo := models.NewImageRepository(db)
	productRepo := models.NewProductsRepository(db)

	categoryService := categories.NewCategoryService(categoryRepo, log)
	imageService := images.NewImageService(imageRepo, log)
	productService := products.NewProductService(productRepo, log)

	categoryHandler := categories.NewCategoryHandler(categoryService, log)
	imageHandler := images.NewImageHandler(imageService, log)
	productHandler := products.NewProductHandler(productService, log)

	handler := server.New(log, categoryHandler, imageHandler, productHandler)

	addr := ":" + cfg.Port
	log.WithField("addr", addr).Info("starting server")
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
