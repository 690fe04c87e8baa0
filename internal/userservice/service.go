// Package userservice manages business logic layer of users.
package userservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/M-107/debts/internal/domain"
	"github.com/M-107/debts/pkg/errorspkg"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Create(ctx context.Context, name string) (domain.User, error)
	Get(ctx context.Context, name string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// TransactionsRepo provides the transaction reads needed to assemble user views.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type TransactionsRepo interface {
	ListByUser(ctx context.Context, userID int32) ([]domain.Transaction, error)
}

// Service facilitates user service layer logic.
type Service struct {
	repo         Repo
	transactions TransactionsRepo
}

// New returns user service struct to manage user business logic.
func New(ur Repo, tr TransactionsRepo) *Service {
	return &Service{
		repo:         ur,
		transactions: tr,
	}
}

// NewUserView assembles the response projection of a user from their
// transactions. Amounts are summed per counterparty: the user's creditor-side
// transactions populate OwedBy, their debtor-side transactions populate
// OwesTo, and Sum is the difference of the two totals.
func NewUserView(u domain.User, transactions []domain.Transaction) (domain.UserView, error) {
	view := domain.UserView{
		Name:   u.Name,
		OwesTo: map[string]float64{},
		OwedBy: map[string]float64{},
	}

	owesTo := map[string]decimal.Decimal{}
	owedBy := map[string]decimal.Decimal{}
	sum := decimal.Zero

	for _, tx := range transactions {
		amount, err := decimal.NewFromString(tx.Amount)
		if err != nil {
			return view, errorspkg.ErrInternal
		}

		switch u.Name {
		case tx.CreditorName:
			owedBy[tx.DebtorName] = owedBy[tx.DebtorName].Add(amount)
			sum = sum.Add(amount)
		case tx.DebtorName:
			owesTo[tx.CreditorName] = owesTo[tx.CreditorName].Add(amount)
			sum = sum.Sub(amount)
		}
	}

	for name, amount := range owesTo {
		view.OwesTo[name] = amount.InexactFloat64()
	}

	for name, amount := range owedBy {
		view.OwedBy[name] = amount.InexactFloat64()
	}

	view.Sum = sum.InexactFloat64()

	return view, nil
}

func (s *Service) view(ctx context.Context, u domain.User) (domain.UserView, error) {
	l := zerolog.Ctx(ctx)

	transactions, err := s.transactions.ListByUser(ctx, u.ID)
	if err != nil {
		return domain.UserView{}, err
	}

	view, err := NewUserView(u, transactions)
	if err != nil {
		l.Error().Err(err).Str("user", u.Name).Msg("corrupt amount in transactions")
		return view, err
	}

	return view, nil
}

// Create creates the user and returns their fresh view.
func (s *Service) Create(ctx context.Context, name string) (domain.UserView, error) {
	createdUser, err := s.repo.Create(ctx, name)
	if err != nil {
		return domain.UserView{}, err
	}

	return NewUserView(createdUser, nil)
}

// Get returns the view of the user with the given name.
func (s *Service) Get(ctx context.Context, name string) (domain.UserView, error) {
	gotUser, err := s.repo.Get(ctx, name)
	if err != nil {
		return domain.UserView{}, err
	}

	return s.view(ctx, gotUser)
}

// List returns the views of all users in insertion order.
func (s *Service) List(ctx context.Context) ([]domain.UserView, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := []domain.UserView{}

	for _, u := range users {
		view, err := s.view(ctx, u)
		if err != nil {
			return nil, err
		}

		views = append(views, view)
	}

	return views, nil
}
