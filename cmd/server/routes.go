package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"stone-shop.backend/internal/interfaces/http/handlers"
	"stone-shop.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	profileHandler *handlers.ProfileHandler
	stoneHandler   *handlers.StoneHandler
	productHandler *handlers.ProductHandler
	orderHandler   *handlers.OrderHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Account routes (public)
		v1.POST("/register", d.authHandler.Register)
		v1.POST("/login", d.authHandler.Login)
		v1.POST("/token/refresh", d.authHandler.RefreshToken)
		v1.POST("/reset-password", d.authHandler.ResetPassword)

		// Profile routes (protected)
		profile := v1.Group("/profile")
		profile.Use(d.authMiddleware)
		{
			profile.GET("", d.profileHandler.GetProfile)
			profile.PATCH("/update", d.profileHandler.UpdateProfile)
		}

		// Catalog routes (public)
		stones := v1.Group("/stones")
		{
			stones.GET("", d.stoneHandler.ListStones)
			stones.POST("", d.stoneHandler.CreateStone)
			stones.GET("/:id/comments", d.stoneHandler.ListComments)
			stones.POST("/:id/comments", d.stoneHandler.CreateComment)
			stones.GET("/:id/faqs", d.stoneHandler.ListFAQs)
			stones.POST("/:id/faqs", d.stoneHandler.CreateFAQ)
		}

		// FAQ answering (staff only)
		v1.PATCH("/faqs/:id/answer", d.authMiddleware, middleware.RequireStaff(), d.stoneHandler.AnswerFAQ)

		// Product routes (public read, staff write)
		products := v1.Group("/products")
		{
			products.GET("", d.productHandler.ListProducts)
			products.GET("/:id", d.productHandler.GetProduct)
			products.POST("", d.authMiddleware, middleware.RequireStaff(), d.productHandler.CreateProduct)
		}

		// Order routes (protected)
		orders := v1.Group("/orders")
		orders.Use(d.authMiddleware)
		{
			orders.POST("", d.orderHandler.CreateOrder)
			orders.GET("", d.orderHandler.ListOrders)
			orders.GET("/:id", d.orderHandler.GetOrder)
			orders.PATCH("/:id/items/:itemId", d.orderHandler.UpdateItemQuantity)
			orders.POST("/:id/pay", d.orderHandler.PayOrder)
			orders.POST("/:id/fail", d.orderHandler.FailOrder)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "stone-shop-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
