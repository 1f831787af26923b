package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/akarpov/go-music-library/models"
)

// adminRepository is the PostgreSQL-backed implementation of
// [AdminRepository]. Admin records are provisioned out of band, so the
// repository only reads.
type adminRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdminRepository constructs an [AdminRepository] backed by the
// provided database connection and logger.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

// FindAdminByEmail retrieves the admin record whose email matches the
// given value, or [ErrNoAdminFound] when none does.
func (r *adminRepository) FindAdminByEmail(ctx context.Context, email string) (models.Admin, error) {
	log := logger.FromContext(ctx)

	var admin models.Admin
	row := r.db.QueryRowContext(ctx, findAdminByEmail, email)

	if err := row.Scan(&admin.AdminID, &admin.Email, &admin.Name, &admin.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Admin{}, ErrNoAdminFound
		}

		log.Err(err).Str("func", "*adminRepository.FindAdminByEmail").Msg("error: scanning error")
		return models.Admin{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return admin, nil
}
