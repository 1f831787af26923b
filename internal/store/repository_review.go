package store

import (
	"context"
	"fmt"

	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/jackc/pgerrcode"
)

// reviewRepository is the PostgreSQL-backed implementation of
// [ReviewRepository].
type reviewRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReviewRepository constructs a [ReviewRepository] backed by the
// provided database connection and logger.
func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		logger: logger,
	}
}

// SubmitReview records the account's rating for the song and, when
// comment is non-empty, its comment, in a single transaction. The
// rating upserts on (account_id, track_id) so a resubmission replaces
// the previous one, while each comment lands as a new row. Either both
// writes apply or neither does.
//
// A rating against an unknown song trips the foreign key and is
// surfaced as [ErrNoSongFound].
func (r *reviewRepository) SubmitReview(ctx context.Context, accountID, trackID int64, rating int, comment string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.SubmitReview").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, upsertRating, accountID, trackID, rating); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrNoSongFound
		}

		log.Err(err).Str("func", "*reviewRepository.SubmitReview").Int64("track_id", trackID).Msg("failed to upsert rating")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if comment != "" {
		if _, err := tx.ExecContext(ctx, insertComment, accountID, trackID, comment); err != nil {
			log.Err(err).Str("func", "*reviewRepository.SubmitReview").Int64("track_id", trackID).Msg("failed to insert comment")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*reviewRepository.SubmitReview").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
