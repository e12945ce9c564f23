package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"alumniport/internal/auth"
	"alumniport/internal/config"
	apperrors "alumniport/internal/errors"
	"alumniport/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	postHandler *handler.PostHandler,
	messageHandler *handler.MessageHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	// The portal frontend is a browser SPA on another origin
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/users/register", authHandler.Register)
	api.POST("/users/login", authHandler.Login)
	api.GET("/users", userHandler.ListUsers)

	// Secured routes (require a valid session token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: jwtErrorHandler,
	}))

	// Feed routes
	secured.GET("/posts", postHandler.ListPosts)
	secured.POST("/posts", postHandler.CreatePost)
	secured.GET("/posts/:id", postHandler.GetPost)
	secured.DELETE("/posts/:id", postHandler.DeletePost)
	secured.PUT("/posts/like/:id", postHandler.LikePost)
	secured.PUT("/posts/unlike/:id", postHandler.UnlikePost)
	secured.POST("/posts/comment/:id", postHandler.AddComment)
	secured.DELETE("/posts/comment/:id/:commentId", postHandler.DeleteComment)

	// Message routes
	secured.POST("/messages/:userId", messageHandler.SendMessage)
	secured.GET("/messages/:userId", messageHandler.GetConversation)
}

// jwtErrorHandler maps middleware failures onto the portal's error shape.
// Both a missing and an unverifiable token yield 401.
func jwtErrorHandler(c echo.Context, err error) error {
	code := "INVALID_TOKEN"
	message := "invalid or expired token"
	if errors.Is(err, echojwt.ErrJWTMissing) {
		code = "MISSING_TOKEN"
		message = "no token, authorization denied"
	}
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
