package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mbraun22/privatechef/internal/api/http/handlers"
	"github.com/mbraun22/privatechef/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Chefs          *handlers.ChefsHandler
	Menus          *handlers.MenusHandler
	MenuItems      *handlers.MenuItemsHandler
	Bookings       *handlers.BookingsHandler
	Web            *handlers.WebHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Post("/auth/register", cfg.Auth.Register)
	api.Post("/auth/login", cfg.Auth.Login)
	api.Get("/users/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	chefs := api.Group("/chefs")
	chefs.Post("/", cfg.AuthMiddleware.Handle, auth.RequireChefOrAdmin(), cfg.Chefs.Create)
	chefs.Get("/profile", cfg.AuthMiddleware.Handle, auth.RequireChefOrAdmin(), cfg.Chefs.GetOwn)
	chefs.Put("/profile", cfg.AuthMiddleware.Handle, auth.RequireChefOrAdmin(), cfg.Chefs.UpdateOwn)
	chefs.Get("/:chef_id/availability", cfg.Bookings.Availability)
	chefs.Post("/:chef_id/bookings", cfg.Bookings.Create)
	chefs.Get("/:chef_id/bookings", cfg.AuthMiddleware.Handle, cfg.Bookings.ListForChef)
	// Registered last so the fixed segments above win over the slug match.
	chefs.Get("/:slug", cfg.Chefs.GetBySlug)

	menus := api.Group("/menus", cfg.AuthMiddleware.Handle, auth.RequireChefOrAdmin())
	menus.Get("/", cfg.Menus.List)
	menus.Post("/", cfg.Menus.Create)
	menus.Put("/:menu_id", cfg.Menus.Update)
	menus.Delete("/:menu_id", cfg.Menus.Delete)
	menus.Get("/:menu_id/items", cfg.MenuItems.List)
	menus.Post("/:menu_id/items", cfg.MenuItems.Create)
	menus.Put("/:menu_id/items/:item_id", cfg.MenuItems.Update)
	menus.Delete("/:menu_id/items/:item_id", cfg.MenuItems.Delete)

	api.Put("/bookings/:booking_id", cfg.AuthMiddleware.Handle, cfg.Bookings.Update)

	app.Get("/", cfg.Web.Home)
	app.Get("/login", cfg.Web.LoginPage)
	app.Post("/login", cfg.Web.Login)
	app.Post("/register", cfg.Web.Register)
	app.Get("/logout", cfg.Web.Logout)
	app.Get("/dashboard", cfg.Web.Dashboard)
	app.Get("/chef-dashboard", cfg.Web.ChefDashboard)
	app.Post("/chef-dashboard/create-chef", cfg.Web.CreateChef)
	app.Post("/chef-dashboard/create-menu", cfg.Web.CreateMenu)
	app.Post("/chef-dashboard/create-menu-item", cfg.Web.CreateMenuItem)
}
