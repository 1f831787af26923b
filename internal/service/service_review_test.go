package service

import (
	"context"
	"testing"
	"time"

	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/akarpov/go-music-library/internal/mock"
	"github.com/akarpov/go-music-library/internal/store"
	"github.com/akarpov/go-music-library/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReviewService(ctrl *gomock.Controller) (ReviewService, *mock.MockSongRepository, *mock.MockReviewRepository, *mock.MockAccountRepository) {
	mockSongs := mock.NewMockSongRepository(ctrl)
	mockReviews := mock.NewMockReviewRepository(ctrl)
	mockAccounts := mock.NewMockAccountRepository(ctrl)

	svc := NewReviewService(mockSongs, mockReviews, mockAccounts, logger.Nop())

	return svc, mockSongs, mockReviews, mockAccounts
}

func TestSongDetails_Composition(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockSongs, _, _ := newTestReviewService(ctrl)

	ctx := context.Background()
	now := time.Now()
	song := models.Song{TrackID: 1, TrackName: "Bohemian Rhapsody", ArtistName: "Queen"}
	comments := []models.CommentView{
		{Username: "ada", CommentText: "love it", CreatedAt: now, UserRating: 5},
		{Username: "john", CommentText: "fine", CreatedAt: now.Add(-time.Hour), UserRating: 0},
	}

	mockSongs.EXPECT().GetSongWithRatingCount(ctx, int64(1)).Return(song, 12, nil)
	mockSongs.EXPECT().GetAverageRating(ctx, int64(1)).Return(4.25, nil)
	mockSongs.EXPECT().ListRecentComments(ctx, int64(1), 10).Return(comments, nil)

	details, err := svc.SongDetails(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Bohemian Rhapsody", details.TrackName)
	assert.Equal(t, 12, details.RatingCount)
	assert.InDelta(t, 4.25, details.AverageRating, 1e-9)
	assert.Len(t, details.Comments, 2)
}

func TestSongDetails_NoRatings(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockSongs, _, _ := newTestReviewService(ctrl)

	ctx := context.Background()

	mockSongs.EXPECT().GetSongWithRatingCount(ctx, int64(5)).Return(models.Song{TrackID: 5}, 0, nil)
	mockSongs.EXPECT().GetAverageRating(ctx, int64(5)).Return(0.0, nil)
	mockSongs.EXPECT().ListRecentComments(ctx, int64(5), 10).Return([]models.CommentView{}, nil)

	details, err := svc.SongDetails(ctx, 5)
	require.NoError(t, err)
	assert.Zero(t, details.AverageRating)
	assert.Zero(t, details.RatingCount)
	assert.Empty(t, details.Comments)
}

func TestSongDetails_UnknownSong(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockSongs, _, _ := newTestReviewService(ctrl)

	ctx := context.Background()

	mockSongs.EXPECT().GetSongWithRatingCount(ctx, int64(99)).Return(models.Song{}, 0, store.ErrNoSongFound)

	_, err := svc.SongDetails(ctx, 99)
	assert.ErrorIs(t, err, store.ErrNoSongFound)
}

func TestSubmitReview_InvalidRatingBeforeAnyWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestReviewService(ctrl)

	ctx := context.Background()

	// no EXPECT on any repository: an out-of-range score must fail
	// before lookups or writes
	for _, rating := range []int{0, -1, 6, 100} {
		err := svc.SubmitReview(ctx, models.ReviewRequest{Email: "ada@example.com", TrackID: 1, Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}
}

func TestSubmitReview_BoundaryRatingsAccepted(t *testing.T) {
	for _, rating := range []int{1, 5} {
		ctrl := gomock.NewController(t)
		svc, _, mockReviews, mockAccounts := newTestReviewService(ctrl)

		ctx := context.Background()

		mockAccounts.EXPECT().FindAccountByEmail(ctx, "ada@example.com").
			Return(models.Account{AccountID: 7}, nil)
		mockReviews.EXPECT().SubmitReview(ctx, int64(7), int64(1), rating, "").Return(nil)

		err := svc.SubmitReview(ctx, models.ReviewRequest{Email: "ada@example.com", TrackID: 1, Rating: rating})
		require.NoError(t, err)
	}
}

func TestSubmitReview_UnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, mockAccounts := newTestReviewService(ctrl)

	ctx := context.Background()

	mockAccounts.EXPECT().FindAccountByEmail(ctx, "ghost@example.com").
		Return(models.Account{}, store.ErrNoAccountFound)

	err := svc.SubmitReview(ctx, models.ReviewRequest{Email: "ghost@example.com", TrackID: 1, Rating: 4})
	assert.ErrorIs(t, err, ErrUnknownAccount)
}

func TestSubmitReview_CommentTrimmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockReviews, mockAccounts := newTestReviewService(ctrl)

	ctx := context.Background()

	mockAccounts.EXPECT().FindAccountByEmail(ctx, "ada@example.com").
		Return(models.Account{AccountID: 7}, nil)
	mockReviews.EXPECT().SubmitReview(ctx, int64(7), int64(1), 5, "masterpiece").Return(nil)

	err := svc.SubmitReview(ctx, models.ReviewRequest{
		Email:   "ada@example.com",
		TrackID: 1,
		Rating:  5,
		Comment: "  masterpiece  ",
	})
	require.NoError(t, err)
}

func TestSubmitReview_BlankCommentDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockReviews, mockAccounts := newTestReviewService(ctrl)

	ctx := context.Background()

	mockAccounts.EXPECT().FindAccountByEmail(ctx, "ada@example.com").
		Return(models.Account{AccountID: 7}, nil)
	mockReviews.EXPECT().SubmitReview(ctx, int64(7), int64(1), 3, "").Return(nil)

	err := svc.SubmitReview(ctx, models.ReviewRequest{
		Email:   "ada@example.com",
		TrackID: 1,
		Rating:  3,
		Comment: "   \t ",
	})
	require.NoError(t, err)
}

func TestSubmitReview_UnknownSongPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockReviews, mockAccounts := newTestReviewService(ctrl)

	ctx := context.Background()

	mockAccounts.EXPECT().FindAccountByEmail(ctx, "ada@example.com").
		Return(models.Account{AccountID: 7}, nil)
	mockReviews.EXPECT().SubmitReview(ctx, int64(7), int64(99), 4, "").Return(store.ErrNoSongFound)

	err := svc.SubmitReview(ctx, models.ReviewRequest{Email: "ada@example.com", TrackID: 99, Rating: 4})
	assert.ErrorIs(t, err, store.ErrNoSongFound)
}
