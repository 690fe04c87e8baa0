// Package transactionrepo manages repository layer of transactions.
package transactionrepo

import (
	"context"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/M-107/debts/internal/domain"
	"github.com/M-107/debts/pkg/dbpkg"
	"github.com/M-107/debts/pkg/errorspkg"
)

// RepoPGS facilitates transaction repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns transaction RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// CreateQuery inserts into transactions table.
const CreateQuery = `
INSERT INTO transactions (
    creditor_id,
    debtor_id,
    amount
) VALUES (
    $1, $2, $3
) RETURNING id,
    (SELECT name FROM users WHERE id = creditor_id),
    (SELECT name FROM users WHERE id = debtor_id),
    amount,
    created_at
`

// Create records the transaction and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, CreateQuery,
		arg.CreditorID,
		arg.DebtorID,
		arg.Amount,
	)

	var tx domain.Transaction

	err := row.Scan(
		&tx.ID,
		&tx.CreditorName,
		&tx.DebtorName,
		&tx.Amount,
		&tx.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code.Name() == "foreign_key_violation" {
				return tx, domain.ErrTransactionUserNotFound
			}
		}

		return tx, errorspkg.ErrInternal
	}

	return tx, nil
}

const listByUserQuery = `
SELECT
	t.id,
	c.name,
	d.name,
	t.amount,
	t.created_at
FROM transactions t
JOIN users c ON c.id = t.creditor_id
JOIN users d ON d.id = t.debtor_id
WHERE t.creditor_id = $1 OR t.debtor_id = $1
ORDER BY t.id
`

// ListByUser returns all transactions the given user takes part in,
// on either side, in insertion order.
func (r *RepoPGS) ListByUser(ctx context.Context, userID int32) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByUserQuery, userID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	transactions := []domain.Transaction{}

	for rows.Next() {
		var tx domain.Transaction

		err := rows.Scan(
			&tx.ID,
			&tx.CreditorName,
			&tx.DebtorName,
			&tx.Amount,
			&tx.CreatedAt,
		)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return transactions, nil
}
