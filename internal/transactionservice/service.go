// Package transactionservice manages business logic layer of transactions.
package transactionservice

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/M-107/debts/internal/domain"
	"github.com/M-107/debts/internal/userdelivery"
)

// Repo provides data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
}

// UsersRepo resolves user names to rows for referential checks.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type UsersRepo interface {
	Get(ctx context.Context, name string) (domain.User, error)
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo        Repo
	usersRepo   UsersRepo
	userService userdelivery.Service
}

// New returns transaction service struct to manage transaction business logic.
func New(tr Repo, ur UsersRepo, us userdelivery.Service) *Service {
	return &Service{
		repo:        tr,
		usersRepo:   ur,
		userService: us,
	}
}

func (s *Service) validRequest(ctx context.Context, creditor, debtor, amount string) (domain.CreateTransactionParams, error) {
	l := zerolog.Ctx(ctx)

	var arg domain.CreateTransactionParams

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return arg, domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		return arg, domain.ErrNonPositiveAmount
	}

	// Same name string implies same user, so this is checked before existence.
	if creditor == debtor {
		return arg, domain.ErrSelfTransaction
	}

	creditorUser, err := s.usersRepo.Get(ctx, creditor)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return arg, domain.ErrTransactionUserNotFound
		}

		return arg, err
	}

	debtorUser, err := s.usersRepo.Get(ctx, debtor)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return arg, domain.ErrTransactionUserNotFound
		}

		return arg, err
	}

	arg = domain.CreateTransactionParams{
		CreditorID: creditorUser.ID,
		DebtorID:   debtorUser.ID,
		Amount:     amountDecimal.String(),
	}

	return arg, nil
}

// Create validates the transaction, records it and returns the updated views
// of the two affected users sorted by name.
func (s *Service) Create(ctx context.Context, creditor, debtor, amount string) ([]domain.UserView, error) {
	arg, err := s.validRequest(ctx, creditor, debtor, amount)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Create(ctx, arg); err != nil {
		return nil, err
	}

	views := make([]domain.UserView, 0, 2)

	for _, name := range []string{creditor, debtor} {
		view, err := s.userService.Get(ctx, name)
		if err != nil {
			return nil, err
		}

		views = append(views, view)
	}

	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })

	return views, nil
}
