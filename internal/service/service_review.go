package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/akarpov/go-music-library/internal/store"
	"github.com/akarpov/go-music-library/models"
)

// recentCommentLimit caps how many comments the consolidated song view
// carries.
const recentCommentLimit = 10

// rating bounds for listener scores.
const (
	minRating = 1
	maxRating = 5
)

// reviewService is the concrete implementation of ReviewService.
type reviewService struct {
	songRepository    store.SongRepository
	reviewRepository  store.ReviewRepository
	accountRepository store.AccountRepository
	logger            *logger.Logger
}

// NewReviewService constructs a ReviewService wired to the given
// repositories.
func NewReviewService(songRepository store.SongRepository, reviewRepository store.ReviewRepository, accountRepository store.AccountRepository, logger *logger.Logger) ReviewService {
	return &reviewService{
		songRepository:    songRepository,
		reviewRepository:  reviewRepository,
		accountRepository: accountRepository,
		logger:            logger,
	}
}

// SongDetails composes the consolidated per-song view.
//
// The view carries the song's own fields, the arithmetic mean of all
// listener ratings (exactly 0 when none exist), the number of distinct
// accounts that rated the song, and the ten most recent comments,
// newest first, each annotated with the commenter's username and that
// commenter's score for this song (0 when unrated).
func (r *reviewService) SongDetails(ctx context.Context, trackID int64) (models.SongDetails, error) {
	log := logger.FromContext(ctx)

	song, ratingCount, err := r.songRepository.GetSongWithRatingCount(ctx, trackID)
	if err != nil {
		return models.SongDetails{}, fmt.Errorf("song lookup failed: %w", err)
	}

	average, err := r.songRepository.GetAverageRating(ctx, trackID)
	if err != nil {
		log.Err(err).Int64("track_id", trackID).Msg("average rating aggregation failed")
		return models.SongDetails{}, fmt.Errorf("average rating aggregation failed: %w", err)
	}

	comments, err := r.songRepository.ListRecentComments(ctx, trackID, recentCommentLimit)
	if err != nil {
		log.Err(err).Int64("track_id", trackID).Msg("comments listing failed")
		return models.SongDetails{}, fmt.Errorf("comments listing failed: %w", err)
	}

	return models.SongDetails{
		Song:          song,
		AverageRating: average,
		RatingCount:   ratingCount,
		Comments:      comments,
	}, nil
}

// SubmitReview records the submitting account's rating and optional
// comment for a song.
//
// The rating is validated against [minRating, maxRating] before any
// lookup or write happens, so an out-of-range score never produces a
// partial review. The comment is trimmed; a blank comment stores
// nothing. A resubmitted rating replaces the previous one while every
// non-blank comment is appended. Rating and comment land in one
// transaction.
//
// Returns:
//   - ErrInvalidRating if the score lies outside [1,5].
//   - ErrUnknownAccount if no account matches the email.
//   - store.ErrNoSongFound (wrapped) if the song does not exist.
func (r *reviewService) SubmitReview(ctx context.Context, req models.ReviewRequest) error {
	log := logger.FromContext(ctx)

	if req.Rating < minRating || req.Rating > maxRating {
		return ErrInvalidRating
	}
	if req.Email == "" {
		return ErrInvalidDataProvided
	}

	account, err := r.accountRepository.FindAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoAccountFound) {
			return ErrUnknownAccount
		}

		log.Err(err).Str("email", req.Email).Msg("account lookup failed")
		return fmt.Errorf("account lookup failed: %w", err)
	}

	comment := strings.TrimSpace(req.Comment)

	if err := r.reviewRepository.SubmitReview(ctx, account.AccountID, req.TrackID, req.Rating, comment); err != nil {
		log.Err(err).Int64("track_id", req.TrackID).Msg("review submission failed")
		return fmt.Errorf("review submission failed: %w", err)
	}

	return nil
}
