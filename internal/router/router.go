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

	"devhub/internal/auth"
	"devhub/internal/config"
	apperrors "devhub/internal/errors"
	"devhub/internal/handler"
)

// TokenHeader is the request header carrying the identity token. The original
// wire contract uses this custom header rather than a bearer scheme.
const TokenHeader = "x-auth-token"

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	postHandler *handler.PostHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "API is running")
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authGate := echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + TokenHeader,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, echojwt.ErrJWTMissing) {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "no token, authorization denied",
					Code:  "NO_TOKEN",
				})
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "token is not valid",
				Code:  "INVALID_TOKEN",
			})
		},
	})

	api := e.Group("/api")

	// Public routes
	api.POST("/users", authHandler.Register)
	api.POST("/auth", authHandler.Login)
	api.GET("/posts", postHandler.List)
	api.POST("/posts/:id", postHandler.Get)
	api.GET("/profile/all", profileHandler.List)
	api.GET("/profile/user/:user_id", profileHandler.ByUser)

	// Private routes
	api.GET("/auth", authHandler.Me, authGate)

	posts := api.Group("/posts", authGate)
	posts.POST("", postHandler.Create)
	posts.DELETE("/:id", postHandler.Delete)
	posts.PUT("/like/:id", postHandler.Like)
	posts.PUT("/unlike/:id", postHandler.Unlike)
	posts.POST("/comment/:id", postHandler.Comment)
	posts.DELETE("/comment/:id/:comment_id", postHandler.DeleteComment)

	profile := api.Group("/profile", authGate)
	profile.GET("/me", profileHandler.Me)
	profile.POST("", profileHandler.Upsert)
	profile.DELETE("", profileHandler.Delete)
	profile.POST("/experience", profileHandler.AddExperience)
	profile.DELETE("/experience/:exp_id", profileHandler.RemoveExperience)
	profile.POST("/education", profileHandler.AddEducation)
	profile.DELETE("/education/:edu_id", profileHandler.RemoveEducation)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
