package transactionservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"

	"github.com/M-107/debts/internal/domain"
	"github.com/M-107/debts/internal/userdelivery"
	"github.com/M-107/debts/pkg/errorspkg"
)

func TestCreate(t *testing.T) {
	t.Parallel()

	creditor := domain.User{ID: 1, Name: "Petr"}
	debtor := domain.User{ID: 2, Name: "Martin"}

	creditorView := domain.UserView{
		Name:   "Petr",
		OwesTo: map[string]float64{},
		OwedBy: map[string]float64{"Martin": 100},
		Sum:    100,
	}
	debtorView := domain.UserView{
		Name:   "Martin",
		OwesTo: map[string]float64{"Petr": 100},
		OwedBy: map[string]float64{},
		Sum:    -100,
	}

	type input struct {
		creditor string
		debtor   string
		amount   string
	}

	testCases := []struct {
		name          string
		input         input
		buildStubs    func(repo *MockRepo, usersRepo *MockUsersRepo, userService *userdelivery.MockService)
		checkResponse func(t *testing.T, got []domain.UserView)
		wantError     error
	}{
		{
			name:  "OK",
			input: input{"Petr", "Martin", "100"},
			buildStubs: func(repo *MockRepo, usersRepo *MockUsersRepo, userService *userdelivery.MockService) {
				usersRepo.EXPECT().
					Get(gomock.Any(), gomock.Eq("Petr")).
					Times(1).
					Return(creditor, nil)

				usersRepo.EXPECT().
					Get(gomock.Any(), gomock.Eq("Martin")).
					Times(1).
					Return(debtor, nil)

				arg := domain.CreateTransactionParams{
					CreditorID: creditor.ID,
					DebtorID:   debtor.ID,
					Amount:     "100",
				}

				repo.EXPECT().
					Create(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(domain.Transaction{ID: 1, CreditorName: "Petr", DebtorName: "Martin", Amount: "100"}, nil)

				userService.EXPECT().
					Get(gomock.Any(), gomock.Eq("Petr")).
					Times(1).
					Return(creditorView, nil)

				userService.EXPECT().
					Get(gomock.Any(), gomock.Eq("Martin")).
					Times(1).
					Return(debtorView, nil)
			},
			checkResponse: func(t *testing.T, got []domain.UserView) {
				// Sorted by name ascending.
				want := []domain.UserView{debtorView, creditorView}

				if !cmp.Equal(got, want) {
					t.Errorf("views = %+v, want %+v", got, want)
				}
			},
		},
		{
			name:  "InvalidAmount",
			input: input{"Petr", "Martin", "hundred"},
			buildStubs: func(repo *MockRepo, usersRepo *MockUsersRepo, userService *userdelivery.MockService) {
				usersRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantError: domain.ErrInvalidAmount,
		},
		{
			name:  "ZeroAmount",
			input: input{"Petr", "Martin", "0"},
			buildStubs: func(repo *MockRepo, usersRepo *MockUsersRepo, userService *userdelivery.MockService) {
				usersRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantError: domain.ErrNonPositiveAmount,
		},
		{
			name:  "NegativeAmount",
			input: input{"Petr", "Martin", "-100"},
			buildStubs: func(repo *MockRepo, usersRepo *MockUsersRepo, userService *userdelivery.MockService) {
				usersRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantError: domain.ErrNonPositiveAmount,
		},
		{
			name:  "SelfTransaction",
			input: input{"Petr", "Petr", "100"},
			buildStubs: func(repo *MockRepo, usersRepo *MockUsersRepo, userService *userdelivery.MockService) {
				// Same name resolves to the same user, rejected before any lookup.
				usersRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantError: domain.ErrSelfTransaction,
		},
		{
			name:  "UnknownCreditor",
			input: input{"Karel", "Martin", "100"},
			buildStubs: func(repo *MockRepo, usersRepo *MockUsersRepo, userService *userdelivery.MockService) {
				usersRepo.EXPECT().
					Get(gomock.Any(), gomock.Eq("Karel")).
					Times(1).
					Return(domain.User{}, domain.ErrUserNotFound)

				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantError: domain.ErrTransactionUserNotFound,
		},
		{
			name:  "UnknownDebtor",
			input: input{"Petr", "Karel", "100"},
			buildStubs: func(repo *MockRepo, usersRepo *MockUsersRepo, userService *userdelivery.MockService) {
				usersRepo.EXPECT().
					Get(gomock.Any(), gomock.Eq("Petr")).
					Times(1).
					Return(creditor, nil)

				usersRepo.EXPECT().
					Get(gomock.Any(), gomock.Eq("Karel")).
					Times(1).
					Return(domain.User{}, domain.ErrUserNotFound)

				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantError: domain.ErrTransactionUserNotFound,
		},
		{
			name:  "InsertRace",
			input: input{"Petr", "Martin", "100"},
			buildStubs: func(repo *MockRepo, usersRepo *MockUsersRepo, userService *userdelivery.MockService) {
				usersRepo.EXPECT().
					Get(gomock.Any(), gomock.Eq("Petr")).
					Times(1).
					Return(creditor, nil)

				usersRepo.EXPECT().
					Get(gomock.Any(), gomock.Eq("Martin")).
					Times(1).
					Return(debtor, nil)

				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Transaction{}, domain.ErrTransactionUserNotFound)
			},
			wantError: domain.ErrTransactionUserNotFound,
		},
		{
			name:  "CreateRepoErr",
			input: input{"Petr", "Martin", "100"},
			buildStubs: func(repo *MockRepo, usersRepo *MockUsersRepo, userService *userdelivery.MockService) {
				usersRepo.EXPECT().
					Get(gomock.Any(), gomock.Eq("Petr")).
					Times(1).
					Return(creditor, nil)

				usersRepo.EXPECT().
					Get(gomock.Any(), gomock.Eq("Martin")).
					Times(1).
					Return(debtor, nil)

				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Transaction{}, errorspkg.ErrInternal)
			},
			wantError: errorspkg.ErrInternal,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			usersRepo := NewMockUsersRepo(ctrl)
			userService := userdelivery.NewMockService(ctrl)
			transactionService := New(repo, usersRepo, userService)

			tc.buildStubs(repo, usersRepo, userService)

			got, err := transactionService.Create(context.Background(),
				tc.input.creditor,
				tc.input.debtor,
				tc.input.amount,
			)
			if err != nil {
				if err == tc.wantError {
					return
				}

				t.Fatalf("transactionService.Create(context.Background(), %v, %v, %v) got error %v, want %v",
					tc.input.creditor, tc.input.debtor, tc.input.amount, err, tc.wantError)
			}

			tc.checkResponse(t, got)
		})
	}
}
