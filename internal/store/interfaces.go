package store

import (
	"context"
	"time"

	"github.com/akarpov/go-music-library/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository is the persistence boundary for listener accounts
// and their verification lifecycle fields.
type AccountRepository interface {
	// CreateAccount persists a new account together with its initial
	// pending verification code.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// FindAccountByEmail retrieves the account with the given email.
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)

	// SetVerificationCode stores a fresh (code, expiry) pair on an
	// unverified account.
	SetVerificationCode(ctx context.Context, email, code string, expiresAt time.Time) error

	// ConfirmVerification marks the account verified and clears the
	// pending code in one conditional update. The update matches only
	// while the presented code is still the stored, unexpired one, so
	// two concurrent confirms cannot both succeed.
	ConfirmVerification(ctx context.Context, email, code string, now time.Time) error

	// ClearExpiredCodes nulls out pending codes whose expiry has passed
	// and reports how many rows were touched.
	ClearExpiredCodes(ctx context.Context, now time.Time) (int64, error)
}

// AdminRepository reads administrative principals. Admin records are
// never created or mutated by this application.
type AdminRepository interface {
	FindAdminByEmail(ctx context.Context, email string) (models.Admin, error)
}

// SongRepository is the persistence boundary for the catalog and its
// read-side aggregations.
type SongRepository interface {
	ListSongs(ctx context.Context) ([]models.SongSummary, error)

	// SearchSongs runs the ranked substring search. The query must
	// already be trimmed and lower-cased by the caller.
	SearchSongs(ctx context.Context, query string) ([]models.SongSummary, error)

	GetSongByID(ctx context.Context, trackID int64) (models.Song, error)

	// GetSongWithRatingCount returns the song joined with the number of
	// distinct accounts that rated it.
	GetSongWithRatingCount(ctx context.Context, trackID int64) (models.Song, int, error)

	// GetAverageRating returns the mean listener rating, 0 when the song
	// has no ratings.
	GetAverageRating(ctx context.Context, trackID int64) (float64, error)

	// ListRecentComments returns up to limit comments for the song,
	// newest first, annotated with the commenter's name and own rating.
	ListRecentComments(ctx context.Context, trackID int64, limit int) ([]models.CommentView, error)

	CreateSong(ctx context.Context, song models.Song) (models.Song, error)
	UpdateSong(ctx context.Context, trackID int64, update models.SongUpdate) error

	// DeleteSong removes the song and all dependent rows (comments,
	// ratings, likes) in one transaction.
	DeleteSong(ctx context.Context, trackID int64) error

	AddLike(ctx context.Context, accountID, trackID int64) error
	ListLikedSongs(ctx context.Context, accountID int64) ([]models.LikedSong, error)

	// TopGenre returns the most common genre label among songs whose
	// seed rating falls into the given band.
	TopGenre(ctx context.Context, band GenreBand) (string, error)
}

// ReviewRepository writes listener review state.
type ReviewRepository interface {
	// SubmitReview upserts the rating for (accountID, trackID) and, when
	// comment is non-empty, inserts a comment row. Both writes share one
	// transaction and roll back together.
	SubmitReview(ctx context.Context, accountID, trackID int64, rating int, comment string) error
}

// GenreBand selects a seed-rating range for genre statistics.
type GenreBand int

// Seed-rating bands recognised by [SongRepository.TopGenre].
const (
	GenreBandLow  GenreBand = 1 // seed rating <= 2
	GenreBandMid  GenreBand = 2 // seed rating == 3
	GenreBandHigh GenreBand = 3 // seed rating >= 4
)
