package transactionrepo

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/M-107/debts/internal/domain"
	"github.com/M-107/debts/internal/userrepo"
	"github.com/M-107/debts/pkg/configpkg"
	"github.com/M-107/debts/pkg/randompkg"

	_ "github.com/lib/pq"
)

var (
	testTransactionRepo *RepoPGS
	testUserRepo        *userrepo.RepoPGS
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	testDB, err := sql.Open(config.DBDriver, config.DBSource)
	if err != nil {
		log.Fatal("cannot connect to db:", err)
	}

	testTransactionRepo = NewRepoPGS(testDB)
	testUserRepo = userrepo.NewRepoPGS(testDB)

	os.Exit(m.Run())
}

func createRandomUser(t *testing.T) domain.User {
	user, err := testUserRepo.Create(context.Background(), randompkg.Name())
	require.NoError(t, err)

	return user
}

func createRandomTransaction(t *testing.T, creditor, debtor domain.User) domain.Transaction {
	arg := domain.CreateTransactionParams{
		CreditorID: creditor.ID,
		DebtorID:   debtor.ID,
		Amount:     randompkg.AmountBetween(1, 1000),
	}

	tx, err := testTransactionRepo.Create(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, tx)

	require.NotZero(t, tx.ID)
	require.Equal(t, creditor.Name, tx.CreditorName)
	require.Equal(t, debtor.Name, tx.DebtorName)
	require.NotZero(t, tx.CreatedAt)

	wantAmount, err := decimal.NewFromString(arg.Amount)
	require.NoError(t, err)
	gotAmount, err := decimal.NewFromString(tx.Amount)
	require.NoError(t, err)
	require.True(t, wantAmount.Equal(gotAmount))

	return tx
}

func TestCreate(t *testing.T) {
	creditor := createRandomUser(t)
	debtor := createRandomUser(t)

	createRandomTransaction(t, creditor, debtor)
}

func TestCreateForeignKeyViolation(t *testing.T) {
	creditor := createRandomUser(t)

	arg := domain.CreateTransactionParams{
		CreditorID: creditor.ID,
		DebtorID:   creditor.ID + 1_000_000,
		Amount:     "100",
	}

	tx, err := testTransactionRepo.Create(context.Background(), arg)
	require.ErrorIs(t, err, domain.ErrTransactionUserNotFound)
	require.Empty(t, tx)
}

func TestListByUser(t *testing.T) {
	creditor := createRandomUser(t)
	debtor := createRandomUser(t)
	bystander := createRandomUser(t)

	tx1 := createRandomTransaction(t, creditor, debtor)
	tx2 := createRandomTransaction(t, debtor, creditor)

	transactions, err := testTransactionRepo.ListByUser(context.Background(), creditor.ID)
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	// Insertion order, both sides included.
	require.Equal(t, tx1.ID, transactions[0].ID)
	require.Equal(t, tx2.ID, transactions[1].ID)

	transactions, err = testTransactionRepo.ListByUser(context.Background(), bystander.ID)
	require.NoError(t, err)
	require.Empty(t, transactions)
}
