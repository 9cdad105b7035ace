package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"github.com/icemanhv/forum/internal/auth"
	"github.com/icemanhv/forum/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	gdb *gorm.DB,
	jwtService *auth.JWTService,
	sessionStore auth.SessionStoreInterface,
	authHandler *handler.AuthHandler,
	contentHandler *handler.ContentHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(Transaction(gdb))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.GET("/", contentHandler.Index)
	e.GET("/blog_detail/:id", contentHandler.Detail)
	e.GET("/tag/:name", contentHandler.ByTag)
	e.GET("/auth/register/", authHandler.RegisterForm)
	e.POST("/auth/register/", authHandler.Register)
	e.GET("/auth/register", authHandler.RegisterForm)
	e.POST("/auth/register", authHandler.Register)
	e.GET("/auth/login", authHandler.LoginForm)
	e.POST("/auth/login", authHandler.Login)

	// Routes requiring an authenticated session
	sessionRequired := auth.Middleware(jwtService, sessionStore)
	e.POST("/add_comment/:id", contentHandler.AddComment, sessionRequired)
	e.GET("/auth/logout", authHandler.Logout, sessionRequired)

	// Admin console: session plus the is_admin flag
	admin := e.Group("/admin", sessionRequired, auth.RequireAdmin())
	admin.GET("", adminHandler.Index)
	admin.GET("/tables/:name", adminHandler.Table)
	admin.POST("/tables/:name", adminHandler.CreateRow)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
