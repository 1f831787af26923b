package service

//go:generate mockgen -destination=../mock/notifier_mock.go -package=mock github.com/akarpov/go-music-library/internal/service Notifier

import (
	"context"

	"github.com/akarpov/go-music-library/models"
)

// AuthService covers the listener account lifecycle: registration,
// login, and the email-verification code flow.
type AuthService interface {
	// Register creates an unverified account with a pending
	// verification code and sends the code best-effort.
	Register(ctx context.Context, req models.RegisterRequest) (models.Account, error)

	// IssueVerification generates a fresh code for an unverified
	// account, stores it with a new expiry, and sends it best-effort.
	// A stored code is replaced; the mail outcome never fails the call.
	IssueVerification(ctx context.Context, email string) error

	// CheckVerification validates the submitted code and, on success,
	// atomically marks the account verified and consumes the code.
	CheckVerification(ctx context.Context, email, code string) error

	// Login authenticates a verified account and issues a session token.
	Login(ctx context.Context, req models.LoginRequest) (models.Account, models.Token, error)

	// ParseToken validates a listener session token string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AdminService authenticates administrators and manages their session
// tokens.
type AdminService interface {
	// Login authenticates an admin and issues a signed session token.
	Login(ctx context.Context, req models.LoginRequest) (models.Admin, models.Token, error)

	// ParseToken validates an admin session token string, mapping
	// failures to ErrTokenIsExpired or ErrTokenMalformed.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CatalogService covers the song catalog: listing, ranked search,
// likes, genre statistics, and the administrative CRUD.
type CatalogService interface {
	ListSongs(ctx context.Context) ([]models.SongSummary, error)

	// Search runs the ranked substring search. An all-whitespace query
	// yields an empty result without touching storage; a query shorter
	// than two characters yields ErrQueryTooShort.
	Search(ctx context.Context, query string) ([]models.SongSummary, error)

	GetSong(ctx context.Context, trackID int64) (models.Song, error)

	Like(ctx context.Context, accountID, trackID int64) error
	LikedSongs(ctx context.Context, accountID int64) ([]models.LikedSong, error)

	// TopGenre reports the most common genre among songs whose seed
	// rating falls into the named band ("low", "mid", "high").
	TopGenre(ctx context.Context, band string) (string, error)

	CreateSong(ctx context.Context, song models.Song) (models.Song, error)
	UpdateSong(ctx context.Context, trackID int64, update models.SongUpdate) error
	DeleteSong(ctx context.Context, trackID int64) error
}

// ReviewService covers per-song aggregation and review submission.
type ReviewService interface {
	// SongDetails composes the consolidated per-song view: song fields,
	// average listener rating, distinct rater count, and the ten most
	// recent comments.
	SongDetails(ctx context.Context, trackID int64) (models.SongDetails, error)

	// SubmitReview records a rating in [1,5] and an optional comment
	// for the account identified by email, atomically.
	SubmitReview(ctx context.Context, req models.ReviewRequest) error
}

// Notifier delivers verification codes to account holders.
type Notifier interface {
	SendVerificationCode(ctx context.Context, email, username, code string) error
}
