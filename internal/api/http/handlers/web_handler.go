package handlers

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/mbraun22/privatechef/internal/domain"
	"github.com/mbraun22/privatechef/internal/service"
)

const sessionCookieName = "session_id"

// WebHandler serves the server-rendered pages. Unlike the API, failures
// here redirect with a message in the query string instead of returning
// a JSON error envelope.
type WebHandler struct {
	auth     *service.AuthService
	chefs    *service.ChefService
	menus    *service.MenuService
	bookings *service.BookingService
	logger   *zap.Logger
}

// NewWebHandler constructs handler.
func NewWebHandler(authService *service.AuthService, chefService *service.ChefService, menuService *service.MenuService, bookingService *service.BookingService, logger *zap.Logger) *WebHandler {
	return &WebHandler{
		auth:     authService,
		chefs:    chefService,
		menus:    menuService,
		bookings: bookingService,
		logger:   logger,
	}
}

// Home GET /.
func (h *WebHandler) Home(c *fiber.Ctx) error {
	user, _ := h.sessionUser(c)
	return c.Render("home", fiber.Map{
		"Title": "Book a Private Chef",
		"User":  user,
	})
}

// LoginPage GET /login. ?register=true shows the signup form instead.
func (h *WebHandler) LoginPage(c *fiber.Ctx) error {
	if user, ok := h.sessionUser(c); ok && user != nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return c.Render("login", fiber.Map{
		"Title":        "Sign In",
		"ShowRegister": c.Query("register") == "true",
		"Error":        c.Query("error"),
		"Success":      c.Query("success"),
	})
}

// Login POST /login.
func (h *WebHandler) Login(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	if email == "" || password == "" {
		return redirectWithError(c, "/login", "email and password are required")
	}

	user, _, err := h.auth.Login(c.Context(), email, password)
	if err != nil {
		return redirectWithError(c, "/login", "invalid email or password")
	}
	return h.startSession(c, user)
}

// Register POST /register.
func (h *WebHandler) Register(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	if email == "" || password == "" {
		return redirectWithError(c, "/login?register=true", "email and password are required")
	}

	var role *domain.Role
	if roleValue := c.FormValue("role"); roleValue != "" {
		parsed, _ := domain.ParseRole(roleValue)
		role = &parsed
	}

	user, _, err := h.auth.Register(c.Context(), email, password, role)
	if err != nil {
		return redirectWithError(c, "/login?register=true", "could not create account")
	}
	return h.startSession(c, user)
}

// Logout GET /logout.
func (h *WebHandler) Logout(c *fiber.Ctx) error {
	if sessionID := c.Cookies(sessionCookieName); sessionID != "" {
		if err := h.auth.DestroySession(c.Context(), sessionID); err != nil {
			h.logger.Warn("failed to destroy session", zap.Error(err))
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Dashboard GET /dashboard.
func (h *WebHandler) Dashboard(c *fiber.Ctx) error {
	user, ok := h.sessionUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	isChef := user.Role == domain.RoleChef || user.Role == domain.RoleAdmin
	return c.Render("dashboard", fiber.Map{
		"Title":  "Dashboard",
		"User":   user,
		"IsChef": isChef,
	})
}

// ChefDashboard GET /chef-dashboard.
func (h *WebHandler) ChefDashboard(c *fiber.Ctx) error {
	user, ok := h.sessionUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	if user.Role != domain.RoleChef && user.Role != domain.RoleAdmin {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	data := fiber.Map{
		"Title":   "Chef Dashboard",
		"User":    user,
		"Error":   c.Query("error"),
		"Success": c.Query("success"),
	}

	chef, err := h.chefs.GetProfile(c.Context(), user.ID)
	if err == nil {
		data["Chef"] = chef
		if menus, err := h.menus.ListMenus(c.Context(), user.ID); err == nil {
			data["Menus"] = menus
		}
		if bookings, err := h.bookings.ListForChef(c.Context(), user.ID, chef.ID); err == nil {
			data["Bookings"] = bookings
		}
	}
	return c.Render("chef_dashboard", data)
}

// CreateChef POST /chef-dashboard/create-chef.
func (h *WebHandler) CreateChef(c *fiber.Ctx) error {
	user, ok := h.sessionUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	chefName := strings.TrimSpace(c.FormValue("chef_name"))
	if chefName == "" {
		return redirectWithError(c, "/chef-dashboard", "chef name is required")
	}

	input := service.ChefCreateInput{
		ChefName:     chefName,
		BusinessName: optionalForm(c, "business_name"),
		Bio:          optionalForm(c, "bio"),
		Location:     optionalForm(c, "location"),
		Phone:        optionalForm(c, "phone"),
		Email:        optionalForm(c, "email"),
		HourlyRate:   optionalFormFloat(c, "hourly_rate"),
		MinimumHours: optionalFormInt(c, "minimum_hours"),
	}
	if cuisines := strings.TrimSpace(c.FormValue("cuisine_types")); cuisines != "" {
		input.CuisineTypes = splitCommaList(cuisines)
	}

	if _, err := h.chefs.CreateProfile(c.Context(), user.ID, input); err != nil {
		return redirectWithError(c, "/chef-dashboard", "could not create chef profile")
	}
	return redirectWithSuccess(c, "/chef-dashboard", "chef profile created")
}

// CreateMenu POST /chef-dashboard/create-menu.
func (h *WebHandler) CreateMenu(c *fiber.Ctx) error {
	user, ok := h.sessionUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return redirectWithError(c, "/chef-dashboard", "menu name is required")
	}

	input := service.MenuCreateInput{
		Name:           name,
		Description:    optionalForm(c, "description"),
		PricePerPerson: optionalFormFloat(c, "price_per_person"),
		MinimumGuests:  optionalFormInt(c, "minimum_guests"),
		CuisineType:    optionalForm(c, "cuisine_type"),
		DurationHours:  optionalFormFloat(c, "duration_hours"),
	}
	if options := strings.TrimSpace(c.FormValue("dietary_options")); options != "" {
		input.DietaryOptions = splitCommaList(options)
	}

	if _, err := h.menus.CreateMenu(c.Context(), user.ID, input); err != nil {
		return redirectWithError(c, "/chef-dashboard", "could not create menu")
	}
	return redirectWithSuccess(c, "/chef-dashboard", "menu created")
}

// CreateMenuItem POST /chef-dashboard/create-menu-item.
func (h *WebHandler) CreateMenuItem(c *fiber.Ctx) error {
	user, ok := h.sessionUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	menuID := c.FormValue("menu_id")
	name := strings.TrimSpace(c.FormValue("name"))
	if menuID == "" || name == "" {
		return redirectWithError(c, "/chef-dashboard", "menu and item name are required")
	}

	input := service.MenuItemCreateInput{
		Name:        name,
		Description: optionalForm(c, "description"),
		CourseType:  optionalForm(c, "course_type"),
		ImageURL:    optionalForm(c, "image_url"),
		Quantity:    optionalFormInt(c, "quantity"),
	}
	if c.FormValue("is_featured") == "on" || c.FormValue("is_featured") == "true" {
		featured := true
		input.IsFeatured = &featured
	}

	if _, err := h.menus.CreateItem(c.Context(), user.ID, menuID, input); err != nil {
		return redirectWithError(c, "/chef-dashboard", "could not create menu item")
	}
	return redirectWithSuccess(c, "/chef-dashboard", "menu item created")
}

// startSession stores a fresh session, sets the cookie and redirects to
// the dashboard.
func (h *WebHandler) startSession(c *fiber.Ctx, user *domain.User) error {
	sessionID, err := h.auth.CreateSession(c.Context(), user)
	if err != nil {
		h.logger.Error("failed to create session", zap.Error(err))
		return redirectWithError(c, "/login", "something went wrong, try again")
	}
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.auth.SessionTTL() / time.Second),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// sessionUser resolves the session cookie to an account. Lookup errors
// are treated as a missing session so pages degrade to the login flow.
func (h *WebHandler) sessionUser(c *fiber.Ctx) (*domain.User, bool) {
	sessionID := c.Cookies(sessionCookieName)
	if sessionID == "" {
		return nil, false
	}
	user, ok, err := h.auth.SessionUser(c.Context(), sessionID)
	if err != nil {
		h.logger.Warn("session lookup failed", zap.Error(err))
		return nil, false
	}
	return user, ok
}

func redirectWithError(c *fiber.Ctx, path, message string) error {
	return c.Redirect(appendQuery(path, "error", message), fiber.StatusSeeOther)
}

func redirectWithSuccess(c *fiber.Ctx, path, message string) error {
	return c.Redirect(appendQuery(path, "success", message), fiber.StatusSeeOther)
}

func appendQuery(path, key, value string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + key + "=" + url.QueryEscape(value)
}

func optionalForm(c *fiber.Ctx, field string) *string {
	val := strings.TrimSpace(c.FormValue(field))
	if val == "" {
		return nil
	}
	return &val
}

func optionalFormFloat(c *fiber.Ctx, field string) *float64 {
	val := strings.TrimSpace(c.FormValue(field))
	if val == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func optionalFormInt(c *fiber.Ctx, field string) *int {
	val := strings.TrimSpace(c.FormValue(field))
	if val == "" {
		return nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return nil
	}
	return &parsed
}

func splitCommaList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
