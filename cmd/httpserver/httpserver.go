// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/M-107/debts/internal/middleware"
	"github.com/M-107/debts/internal/transactiondelivery"
	"github.com/M-107/debts/internal/transactionrepo"
	"github.com/M-107/debts/internal/transactionservice"
	"github.com/M-107/debts/internal/userdelivery"
	"github.com/M-107/debts/internal/userrepo"
	"github.com/M-107/debts/internal/userservice"
	"github.com/M-107/debts/pkg/configpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// Index describes the available routes.
func Index(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, gin.H{
		"/all_users/":  "Show all users",
		"/user/<name>": "Show a single user",
		"/add/":        "Add a new user (expects payload)",
		"/transaction": "Add a new transaction (expects payload)",
	})
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	transactionRepo := transactionrepo.NewRepoPGS(conn)

	userService := userservice.New(userRepo, transactionRepo)
	transactionService := transactionservice.New(transactionRepo, userRepo, userService)

	userHandler := userdelivery.NewHandler(userService)
	transactionHandler := transactiondelivery.NewHandler(transactionService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.GET("/", Index)
	engine.GET("/all_users/", userHandler.List)
	engine.GET("/user/:name/", userHandler.Get)
	engine.POST("/add/", userHandler.Create)
	engine.POST("/transaction/", transactionHandler.Create)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("username", userdelivery.ValidName)
		if err != nil {
			return nil, errors.New("cannot register username validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
