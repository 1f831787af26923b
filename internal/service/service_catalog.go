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

// minSearchLength is the shortest query the search accepts after
// trimming. Single-character substrings match too much of the catalog
// to rank meaningfully.
const minSearchLength = 2

// catalogService is the concrete implementation of CatalogService.
type catalogService struct {
	songRepository store.SongRepository
	logger         *logger.Logger
}

// NewCatalogService constructs a CatalogService wired to the given
// SongRepository.
func NewCatalogService(songRepository store.SongRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		songRepository: songRepository,
		logger:         logger,
	}
}

// ListSongs returns the whole catalog ordered by title.
func (c *catalogService) ListSongs(ctx context.Context) ([]models.SongSummary, error) {
	songs, err := c.songRepository.ListSongs(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog listing failed: %w", err)
	}

	return songs, nil
}

// Search runs the ranked substring search over title, artist, and
// album.
//
// The query is trimmed first. An empty result after trimming is not an
// error: it yields an empty slice without touching storage. A trimmed
// query shorter than minSearchLength yields ErrQueryTooShort. Matching
// is case-insensitive; results rank title-exact hits first, then
// artist-exact, then everything else, capped at 50 rows.
func (c *catalogService) Search(ctx context.Context, query string) ([]models.SongSummary, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []models.SongSummary{}, nil
	}
	if len(trimmed) < minSearchLength {
		return nil, ErrQueryTooShort
	}

	songs, err := c.songRepository.SearchSongs(ctx, strings.ToLower(trimmed))
	if err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}

	return songs, nil
}

// GetSong retrieves one song by its track ID.
func (c *catalogService) GetSong(ctx context.Context, trackID int64) (models.Song, error) {
	song, err := c.songRepository.GetSongByID(ctx, trackID)
	if err != nil {
		return models.Song{}, fmt.Errorf("song lookup failed: %w", err)
	}

	return song, nil
}

// Like adds the song to the account's liked list.
func (c *catalogService) Like(ctx context.Context, accountID, trackID int64) error {
	if err := c.songRepository.AddLike(ctx, accountID, trackID); err != nil {
		return fmt.Errorf("liking song failed: %w", err)
	}

	return nil
}

// LikedSongs returns the account's liked songs with the account's own
// ratings joined in.
func (c *catalogService) LikedSongs(ctx context.Context, accountID int64) ([]models.LikedSong, error) {
	songs, err := c.songRepository.ListLikedSongs(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("liked songs listing failed: %w", err)
	}

	return songs, nil
}

// TopGenre reports the most common genre among songs whose seed rating
// falls into the named band: "low" covers ratings of 2 and below,
// "mid" exactly 3, "high" 4 and above. An unknown band name yields
// ErrUnknownBand; a band with no labeled songs yields "none".
func (c *catalogService) TopGenre(ctx context.Context, band string) (string, error) {
	var storeBand store.GenreBand
	switch strings.ToLower(strings.TrimSpace(band)) {
	case "low":
		storeBand = store.GenreBandLow
	case "mid":
		storeBand = store.GenreBandMid
	case "high":
		storeBand = store.GenreBandHigh
	default:
		return "", ErrUnknownBand
	}

	genre, err := c.songRepository.TopGenre(ctx, storeBand)
	if err != nil {
		if errors.Is(err, store.ErrNoGenresFound) {
			return "none", nil
		}
		return "", fmt.Errorf("genre aggregation failed: %w", err)
	}

	return genre, nil
}

// CreateSong persists a new catalog song.
//
// Returns ErrInvalidDataProvided when title or artist is empty.
func (c *catalogService) CreateSong(ctx context.Context, song models.Song) (models.Song, error) {
	log := logger.FromContext(ctx)

	if song.TrackName == "" || song.ArtistName == "" {
		log.Error().Str("track_name", song.TrackName).Msg("invalid song data provided")
		return models.Song{}, ErrInvalidDataProvided
	}

	created, err := c.songRepository.CreateSong(ctx, song)
	if err != nil {
		log.Err(err).Str("track_name", song.TrackName).Msg("song creation ended with error")
		return models.Song{}, fmt.Errorf("song creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateSong applies a partial update to the song. An update carrying
// no fields at all yields ErrInvalidDataProvided.
func (c *catalogService) UpdateSong(ctx context.Context, trackID int64, update models.SongUpdate) error {
	if err := c.songRepository.UpdateSong(ctx, trackID, update); err != nil {
		if errors.Is(err, store.ErrBuildingSQLQuery) {
			return ErrInvalidDataProvided
		}
		return fmt.Errorf("song update failed: %w", err)
	}

	return nil
}

// DeleteSong removes the song together with its comments, ratings,
// and likes.
func (c *catalogService) DeleteSong(ctx context.Context, trackID int64) error {
	if err := c.songRepository.DeleteSong(ctx, trackID); err != nil {
		return fmt.Errorf("song deletion failed: %w", err)
	}

	return nil
}
