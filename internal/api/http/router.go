package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pet-adoption-service/internal/api/http/handlers"
	"github.com/spec-kit/pet-adoption-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Pets           *handlers.PetsHandler
	Adoption       *handlers.AdoptionHandler
	Daycare        *handlers.DaycareHandler
	Food           *handlers.FoodHandler
	Orders         *handlers.OrdersHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Post("/send-otp", cfg.Users.SendOTP)
	authGroup.Post("/verify-otp", cfg.Users.VerifyOTP)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, auth.RequireUser(), cfg.Users.Me)

	api.Get("/pets", cfg.Pets.ListPets)
	api.Get("/pets/:id", cfg.Pets.GetPet)

	api.Get("/foods", cfg.Food.ListFood)
	api.Get("/foods/:id", cfg.Food.GetFood)

	adoption := api.Group("/adoption-requests")
	adoption.Post("/", cfg.Adoption.CreateRequest)
	adoption.Get("/my-history", cfg.AuthMiddleware.Handle, auth.RequireUser(), cfg.Adoption.MyHistory)
	adoption.Get("/", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Adoption.ListRequests)
	adoption.Patch("/:id/status", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Adoption.ReviewRequest)

	daycare := api.Group("/daycare")
	daycare.Get("/packages", cfg.Daycare.ListPackages)
	daycare.Post("/packages", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Daycare.CreatePackage)
	daycare.Get("/availability", cfg.Daycare.CheckAvailability)

	bookings := daycare.Group("/bookings")
	bookings.Post("/", cfg.AuthMiddleware.Handle, auth.RequireUser(), cfg.Daycare.CreateBooking)
	bookings.Get("/mine", cfg.AuthMiddleware.Handle, auth.RequireUser(), cfg.Daycare.ListMyBookings)
	bookings.Get("/", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Daycare.ListBookings)
	bookings.Put("/:id/status", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Daycare.UpdateBookingStatus)
	bookings.Post("/:id/cancel", cfg.AuthMiddleware.Handle, auth.RequireUser(), cfg.Daycare.CancelBooking)

	orders := api.Group("/orders", cfg.AuthMiddleware.Handle, auth.RequireUser())
	orders.Post("/checkout", cfg.Orders.Checkout)
	orders.Get("/", cfg.Orders.ListMyOrders)

	admin := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/stats", cfg.Admin.Stats)
	admin.Get("/users/recent", cfg.Admin.RecentUsers)
	admin.Get("/adoption-requests/recent", cfg.Admin.RecentAdoptionRequests)
}
