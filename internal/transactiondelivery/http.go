// Package transactiondelivery manages delivery layer of transactions.
package transactiondelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/M-107/debts/internal/domain"
	"github.com/M-107/debts/pkg/errorspkg"
	"github.com/M-107/debts/pkg/web"
)

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	Create(ctx context.Context, creditor, debtor, amount string) ([]domain.UserView, error)
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction handler.
func NewHandler(ts Service) *Handler {
	return &Handler{
		service: ts,
	}
}

type createRequest struct {
	Creditor *string  `json:"creditor" binding:"required"`
	Debtor   *string  `json:"debtor" binding:"required"`
	Amount   *float64 `json:"amount" binding:"required"`
}

type usersData struct {
	Users []domain.UserView `json:"users"`
}

// Create handles http request to record a transaction between two users.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Message("Some of the required fields are missing."))

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Message("Request is incorrectly formatted."))

		return
	}

	amount := decimal.NewFromFloat(*req.Amount).String()

	views, err := h.service.Create(ctx, *req.Creditor, *req.Debtor, amount)
	if err != nil {
		switch err {
		case
			domain.ErrInvalidAmount,
			domain.ErrNonPositiveAmount,
			domain.ErrSelfTransaction,
			domain.ErrTransactionUserNotFound:
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusCreated, usersData{Users: views})
}
