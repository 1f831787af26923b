package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/akarpov/go-music-library/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It handles account creation, lookup, and the
// verification-code lifecycle against the "accounts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account record, including its initial
// pending verification code, and returns the fully populated
// [models.Account] with server-assigned fields (AccountID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAccount,
		account.Email, account.Username, account.PasswordHash,
		account.VerificationCode, account.CodeExpiresAt)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrEmailAlreadyExists
		default:
			return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(
		&account.AccountID, &account.Email, &account.Username, &account.PasswordHash,
		&account.EmailVerified, &account.VerificationCode, &account.CodeExpiresAt,
		&account.CreatedAt,
	); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrEmailAlreadyExists
		default:
			return models.Account{}, err
		}
	}

	return account, nil
}

// FindAccountByEmail retrieves the account record whose email matches
// the given value.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoAccountFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	var account models.Account
	row := r.db.QueryRowContext(ctx, findAccountByEmail, email)

	if err := row.Scan(
		&account.AccountID, &account.Email, &account.Username, &account.PasswordHash,
		&account.EmailVerified, &account.VerificationCode, &account.CodeExpiresAt,
		&account.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountFound
		}

		log.Err(err).Str("func", "*accountRepository.FindAccountByEmail").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return account, nil
}

// SetVerificationCode stores a fresh (code, expiry) pair on the account.
// Only unverified accounts match; [ErrNoAccountFound] is returned when
// the account is absent or already verified.
func (r *accountRepository) SetVerificationCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setVerificationCode, email, code, expiresAt)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.SetVerificationCode").Msg("failed to store verification code")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoAccountFound
	}

	return nil
}

// ConfirmVerification atomically marks the account verified and clears
// the pending code. The statement's WHERE clause re-checks the code and
// its expiry against now, so a concurrent confirm that already consumed
// the code makes this call return [ErrNoPendingCode] instead of
// succeeding twice.
func (r *accountRepository) ConfirmVerification(ctx context.Context, email, code string, now time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, confirmVerification, email, code, now)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ConfirmVerification").Msg("failed to confirm verification")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoPendingCode
	}

	return nil
}

// ClearExpiredCodes nulls out pending verification codes whose expiry
// instant lies before now, keeping the code/expiry pairing invariant.
// Returns the number of accounts touched.
func (r *accountRepository) ClearExpiredCodes(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, clearExpiredCodes, now)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ClearExpiredCodes").Msg("failed to clear expired codes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
