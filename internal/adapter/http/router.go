package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/airgourmethellas/catering-api/internal/adapter/http/middleware"
	"github.com/airgourmethellas/catering-api/internal/logging"
)

func NewRouter(
	sh *SessionHandler,
	ch *CatalogHandler,
	oh *OrderHandler,
	ih *InvoiceHandler,
	th *TokenHandler,
	authz *middleware.Authz,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	logging.Init("catering-api", "./logs/app.log")
	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.GET("/healthz", func(c *gin.Context) {
		logging.From(c).Info("health check")
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/v1/token", th.IssueToken)

	v1 := r.Group("/v1")
	{
		v1.GET("/menu", authz.Require("menu.read"), ch.ListMenu)
		v1.PUT("/menu/items", authz.Require("menu.write"), ch.UpsertMenuItem)

		v1.POST("/sessions", authz.Require("sessions.write"), sh.Start)
		v1.PUT("/sessions/:id/location", authz.Require("sessions.write"), sh.SetLocation)
		v1.POST("/sessions/:id/items", authz.Require("sessions.write"), sh.AddLineItem)
		v1.PUT("/sessions/:id/items/:index", authz.Require("sessions.write"), sh.UpdateQuantity)
		v1.DELETE("/sessions/:id/items/:index", authz.Require("sessions.write"), sh.RemoveLineItem)
		v1.GET("/sessions/:id/quote", authz.Require("sessions.write"), sh.Quote)

		v1.POST("/orders", authz.Require("orders.write"), oh.SubmitOrder)
		v1.GET("/orders/:id", authz.Require("orders.read"), oh.GetOrderByID)
		v1.GET("/orders/:id/invoice", authz.Require("invoices.read"), ih.GetByOrderID)
	}

	return r
}
