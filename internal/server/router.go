package server

import (
	"net/http"

	handler "auction-coordinator/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.CoordinatorInterface, feed handler.EventFeed, corsOrigin string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(CORSMiddleware(corsOrigin))

	auctionHandler := handler.NewAuctionHandler(service, feed)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/auction", auctionHandler.GetAuctionHandler)
		api.GET("/bid-history", auctionHandler.GetBidHistoryHandler)
		api.GET("/events", auctionHandler.StreamEventsHandler)

		api.POST("/bids", auctionHandler.PlaceBidHandler)
		api.POST("/reset-auction", auctionHandler.ResetAuctionHandler)
		api.POST("/close-auction", auctionHandler.CloseAuctionHandler)
	}

	teams := api.Group("/teams")
	{
		teams.GET("", auctionHandler.GetTeamsHandler)
		teams.GET("/:team_id", auctionHandler.SelectTeamHandler)
	}

	return router
}
