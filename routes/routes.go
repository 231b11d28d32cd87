package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vlad3958/HotelBooking/controllers"
	"github.com/vlad3958/HotelBooking/middleware"
	"github.com/vlad3958/HotelBooking/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers onto the public, client and admin groups.
func SetupRouter(
	ac *controllers.AuthController,
	hc *controllers.HotelController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
		}

		client := api.Group("/client", middleware.RequireAuth(jwtSecret))
		{
			client.GET("/hotels", hc.GetHotels)
			client.GET("/rooms", rc.GetRooms)
			client.GET("/rooms/available", rc.GetAvailableRooms)
			client.GET("/rooms/by-city", rc.GetRoomByCity)
			client.POST("/bookings", bc.CreateBooking)
			client.GET("/bookings", bc.GetMyBookings)
		}

		admin := api.Group("/admin",
			middleware.RequireAuth(jwtSecret),
			middleware.RequireRole(models.RoleAdmin),
		)
		{
			admin.POST("/users", ac.CreateUser)

			admin.POST("/hotels", hc.CreateHotel)
			admin.PUT("/hotels/:id", hc.UpdateHotel)
			admin.DELETE("/hotels/:id", hc.DeleteHotel)

			admin.POST("/rooms", rc.CreateRoom)
			admin.PUT("/rooms/:id", rc.UpdateRoom)
			admin.DELETE("/rooms/:id", rc.DeleteRoom)

			admin.GET("/bookings", bc.GetAllBookings)
			admin.GET("/stats/bookings", bc.GetBookingStats)
		}
	}

	return r
}
