package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"offer-bazar.backend/internal/interfaces/http/handlers"
	"offer-bazar.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	paymentHandler      *handlers.PaymentHandler
	gatewayHandler      *handlers.GatewayHandler
	merchantHandler     *handlers.MerchantHandler
	packageHandler      *handlers.PackageHandler
	storeHandler        *handlers.StoreHandler
	offerHandler        *handlers.OfferHandler
	notificationHandler *handlers.NotificationHandler
	authMiddleware      gin.HandlerFunc
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/admin/login", d.authHandler.AdminLogin)
		}

		// Gateway callbacks (posted by SSLCommerz, no auth)
		gateway := v1.Group("/payments/gateway")
		{
			gateway.POST("/success", d.gatewayHandler.Success)
			gateway.POST("/fail", d.gatewayHandler.Fail)
			gateway.POST("/cancel", d.gatewayHandler.Cancel)
		}

		// Payment routes (merchant)
		payments := v1.Group("/payments")
		payments.Use(d.authMiddleware, middleware.RequireMerchant())
		{
			payments.POST("", middleware.IdempotencyMiddleware(), d.paymentHandler.CreatePayment)
			payments.GET("/my", d.paymentHandler.GetMyPayments)
		}

		// Single payment lookup (merchant sees own, admin sees all)
		paymentByID := v1.Group("/payments")
		paymentByID.Use(d.authMiddleware)
		{
			paymentByID.GET("/:id", d.paymentHandler.GetPayment)
		}

		// Commission routes (merchant)
		commissions := v1.Group("/commissions")
		commissions.Use(d.authMiddleware, middleware.RequireMerchant())
		{
			commissions.GET("/my", d.paymentHandler.GetMyCommission)
		}

		// Merchant profile routes
		merchants := v1.Group("/merchants")
		merchants.Use(d.authMiddleware, middleware.RequireMerchant())
		{
			merchants.GET("/me", d.merchantHandler.GetProfile)
			merchants.PUT("/me", d.merchantHandler.UpdateProfile)
		}

		// Package catalog (public read)
		packages := v1.Group("/packages")
		{
			packages.GET("", d.packageHandler.ListPackages)
			packages.GET("/:id", d.packageHandler.GetPackage)
		}

		// Store routes (public read, merchant write)
		stores := v1.Group("/stores")
		{
			stores.GET("", d.storeHandler.ListStores)
			stores.POST("", d.authMiddleware, middleware.RequireMerchant(), d.storeHandler.CreateStore)
			stores.GET("/my", d.authMiddleware, middleware.RequireMerchant(), d.storeHandler.GetMyStore)
			stores.PUT("/my", d.authMiddleware, middleware.RequireMerchant(), d.storeHandler.UpdateStore)
			stores.DELETE("/my", d.authMiddleware, middleware.RequireMerchant(), d.storeHandler.DeleteStore)
			stores.GET("/:id", d.storeHandler.GetStore)
		}

		// Offer routes (public read, merchant write)
		offers := v1.Group("/offers")
		{
			offers.GET("", d.offerHandler.ListOffers)
			offers.POST("", d.authMiddleware, middleware.RequireMerchant(), d.offerHandler.CreateOffer)
			offers.GET("/my", d.authMiddleware, middleware.RequireMerchant(), d.offerHandler.GetMyOffers)
			offers.GET("/:id", d.offerHandler.GetOffer)
			offers.PUT("/:id", d.authMiddleware, middleware.RequireMerchant(), d.offerHandler.UpdateOffer)
			offers.DELETE("/:id", d.authMiddleware, middleware.RequireMerchant(), d.offerHandler.DeleteOffer)
		}

		// Notification routes (merchant)
		notifications := v1.Group("/notifications")
		notifications.Use(d.authMiddleware, middleware.RequireMerchant())
		{
			notifications.GET("", d.notificationHandler.GetMyNotifications)
			notifications.GET("/unread-count", d.notificationHandler.GetUnreadCount)
			notifications.PUT("/:id/read", d.notificationHandler.MarkRead)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/stats", d.merchantHandler.GetStats)

			admin.GET("/merchants", d.merchantHandler.ListMerchants)
			admin.GET("/merchants/:id", d.merchantHandler.GetMerchant)
			admin.PUT("/merchants/:id/approve", d.merchantHandler.ApproveMerchant)
			admin.PUT("/merchants/:id/reject", d.merchantHandler.RejectMerchant)
			admin.PUT("/merchants/:id/access-fee", d.merchantHandler.SetAccessFee)
			admin.PUT("/merchants/:id/access-fee/paid", d.merchantHandler.MarkAccessFeePaid)
			admin.DELETE("/merchants/:id", d.merchantHandler.DeleteMerchant)

			admin.GET("/payments", d.paymentHandler.ListPayments)
			admin.GET("/payments/pending", d.paymentHandler.GetPendingPayments)
			admin.PUT("/payments/:id/approve", d.paymentHandler.ApprovePayment)
			admin.PUT("/payments/:id/reject", d.paymentHandler.RejectPayment)
			admin.DELETE("/payments/:id", d.paymentHandler.DeletePayment)

			admin.GET("/commissions/:merchantId", d.paymentHandler.GetMerchantCommission)
			admin.POST("/commissions", d.paymentHandler.AddCommission)

			admin.GET("/packages", d.packageHandler.ListAllPackages)
			admin.POST("/packages", d.packageHandler.CreatePackage)
			admin.PUT("/packages/:id", d.packageHandler.UpdatePackage)
			admin.DELETE("/packages/:id", d.packageHandler.DeletePackage)

			admin.PUT("/stores/:id/approve", d.storeHandler.ApproveStore)
			admin.PUT("/stores/:id/reject", d.storeHandler.RejectStore)

			admin.GET("/offers", d.offerHandler.ListAllOffers)
			admin.PUT("/offers/:id/approve", d.offerHandler.ApproveOffer)
			admin.PUT("/offers/:id/reject", d.offerHandler.RejectOffer)

			admin.POST("/notifications", d.notificationHandler.SendNotification)
		}
	}
}
