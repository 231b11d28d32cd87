package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vlad3958/HotelBooking/config"
	"github.com/vlad3958/HotelBooking/controllers"
	"github.com/vlad3958/HotelBooking/routes"
	"github.com/vlad3958/HotelBooking/services"
	"github.com/vlad3958/HotelBooking/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	utils.InitValidator()

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB

	// Services
	authService := services.NewAuthService(db, jwtSecret)
	hotelService := services.NewHotelService(db)
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)
	clientService := services.NewClientService(db)
	adminService := services.NewAdminService(db)

	// Controllers
	authController := controllers.NewAuthController(authService)
	hotelController := controllers.NewHotelController(hotelService, clientService)
	roomController := controllers.NewRoomController(roomService, clientService)
	bookingController := controllers.NewBookingController(bookingService, adminService)

	router := routes.SetupRouter(authController, hotelController, roomController, bookingController, jwtSecret)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
