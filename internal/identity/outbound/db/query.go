package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock pools.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type accountRow struct {
	ID           string
	PhoneNumber  string
	TgUserID     pgtype.Int8
	FirstName    string
	LastName     string
	Email        pgtype.Text
	PasswordHash string
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const accountColumns = `id::text, phone_number, tg_user_id, first_name, last_name, email, password_hash, is_verified, created_at, updated_at`

const getAccountByPhone = `SELECT ` + accountColumns + ` FROM accounts WHERE phone_number = $1`

const getAccountByID = `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

const getAccountByTgUserID = `SELECT ` + accountColumns + ` FROM accounts WHERE tg_user_id = $1 ORDER BY created_at LIMIT 1`

const createAccount = `INSERT INTO accounts (id, phone_number, tg_user_id, first_name, last_name, is_verified)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + accountColumns

const linkAccountTelegram = `UPDATE accounts SET tg_user_id = $2, updated_at = now()
WHERE id = $1 AND tg_user_id IS NULL`

type createAccountParams struct {
	ID          string
	PhoneNumber string
	TgUserID    pgtype.Int8
	FirstName   string
	LastName    string
	IsVerified  bool
}

type queries struct {
	db DBTX
}

func scanAccount(row pgx.Row) (accountRow, error) {
	var r accountRow
	err := row.Scan(
		&r.ID,
		&r.PhoneNumber,
		&r.TgUserID,
		&r.FirstName,
		&r.LastName,
		&r.Email,
		&r.PasswordHash,
		&r.IsVerified,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

func (q *queries) GetAccountByPhone(ctx context.Context, phone string) (accountRow, error) {
	return scanAccount(q.db.QueryRow(ctx, getAccountByPhone, phone))
}

func (q *queries) GetAccountByID(ctx context.Context, id string) (accountRow, error) {
	return scanAccount(q.db.QueryRow(ctx, getAccountByID, id))
}

func (q *queries) GetAccountByTgUserID(ctx context.Context, tgUserID int64) (accountRow, error) {
	return scanAccount(q.db.QueryRow(ctx, getAccountByTgUserID, tgUserID))
}

func (q *queries) CreateAccount(ctx context.Context, arg createAccountParams) (accountRow, error) {
	return scanAccount(q.db.QueryRow(ctx, createAccount,
		arg.ID,
		arg.PhoneNumber,
		arg.TgUserID,
		arg.FirstName,
		arg.LastName,
		arg.IsVerified,
	))
}

func (q *queries) LinkAccountTelegram(ctx context.Context, id string, tgUserID int64) (int64, error) {
	tag, err := q.db.Exec(ctx, linkAccountTelegram, id, tgUserID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
