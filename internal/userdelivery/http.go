// Package userdelivery manages delivery layer of users.
package userdelivery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/M-107/debts/internal/domain"
	"github.com/M-107/debts/pkg/errorspkg"
	"github.com/M-107/debts/pkg/web"
)

var nameFormat = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// ValidName validates whether a user name starts with a letter and contains
// only letters and digits.
var ValidName validator.Func = func(fl validator.FieldLevel) bool {
	if name, ok := fl.Field().Interface().(string); ok {
		return nameFormat.MatchString(name)
	}
	return false
}

// Service provides service layer interface needed by user delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package userdelivery
type Service interface {
	Create(ctx context.Context, name string) (domain.UserView, error)
	Get(ctx context.Context, name string) (domain.UserView, error)
	List(ctx context.Context) ([]domain.UserView, error)
}

// Handler facilitates user delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns user handler.
func NewHandler(us Service) *Handler {
	return &Handler{
		service: us,
	}
}

type createRequest struct {
	Name string `json:"name" binding:"required,max=50,username"`
}

func createRequestErrMsg(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "Request is incorrectly formatted."
	}

	switch ve[0].Tag() {
	case "required":
		return "Name is required."
	case "max":
		return "Username cannot be longer than 50 characters."
	default:
		return "Username cannot start with a number (but can contain them)."
	}
}

// Create handles http request to create a user.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Message(createRequestErrMsg(err)))

		return
	}

	createdUser, err := h.service.Create(ctx, req.Name)
	if err != nil {
		if err == domain.ErrUserAlreadyExists {
			msg := fmt.Sprintf("User %s already exists.", req.Name)
			gctx.JSON(http.StatusConflict, web.Message(msg))

			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusCreated, createdUser)
}

type getRequest struct {
	Name string `uri:"name" binding:"required"`
}

type userData struct {
	User domain.UserView `json:"user"`
}

// Get handles http request to show a single user.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusNotFound, web.Error(domain.ErrUserNotFound))

		return
	}

	gotUser, err := h.service.Get(ctx, req.Name)
	if err != nil {
		if err == domain.ErrUserNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, userData{User: gotUser})
}

type allUsersData struct {
	AllUsers []domain.UserView `json:"all_users"`
}

// List handles http request to show all users.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	users, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, allUsersData{AllUsers: users})
}
