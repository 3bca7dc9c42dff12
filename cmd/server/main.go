package main

import (
	"log"
	"net/http"

	"storefront-be/internal/cart"
	"storefront-be/internal/collection"
	"storefront-be/internal/config"
	"storefront-be/internal/customer"
	"storefront-be/internal/db"
	"storefront-be/internal/logger"
	"storefront-be/internal/middleware"
	"storefront-be/internal/order"
	"storefront-be/internal/product"
	"storefront-be/internal/rest"
	"storefront-be/internal/review"
	"storefront-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	collectionRepo := collection.NewRepository(database)
	productRepo := product.NewRepository(database)
	reviewRepo := review.NewRepository(database)
	cartRepo := cart.NewRepository(database)
	customerRepo := customer.NewRepository(database)
	orderRepo := order.NewRepository(database)

	handler := rest.NewHandler(
		user.NewService(userRepo),
		collection.NewService(collectionRepo),
		product.NewService(productRepo, collectionRepo, orderRepo),
		review.NewService(reviewRepo, productRepo),
		cart.NewService(cartRepo, productRepo),
		customer.NewService(customerRepo),
		order.NewService(orderRepo, customerRepo),
	)

	var h http.Handler = rest.NewRouter(handler)
	h = middleware.RateLimitMiddleware(h)
	h = middleware.AuthMiddleware(h)
	h = middleware.LoggingMiddleware(h)
	h = logger.RequestIDMiddleware(h)

	addr := ":" + cfg.AppPort
	logger.L().Info("server listening", zap.String("addr", addr))
	log.Fatal(http.ListenAndServe(addr, h))
}
