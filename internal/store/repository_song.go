package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/akarpov/go-music-library/models"
	"github.com/jackc/pgerrcode"
)

// songRepository is the PostgreSQL-backed implementation of
// [SongRepository]. It serves both the public read side (listing,
// ranked search, per-song aggregates) and the administrative write side
// of the catalog.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (track_id, account_id, query, etc.).
type songRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSongRepository constructs a [SongRepository] backed by the
// provided database connection and logger.
func NewSongRepository(db *DB, logger *logger.Logger) SongRepository {
	logger.Debug().Msg("creating song repository")
	return &songRepository{
		db:     db,
		logger: logger,
	}
}

// ListSongs returns every catalog song ordered by title.
func (r *songRepository) ListSongs(ctx context.Context) ([]models.SongSummary, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listSongs)
	if err != nil {
		log.Err(err).Str("func", "*songRepository.ListSongs").Msg("failed to execute catalog listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanSongSummaries(rows)
}

// SearchSongs executes the ranked substring search built by
// [buildSearchQuery]. The query string must already be trimmed and
// lower-cased; validation lives in the service layer.
func (r *songRepository) SearchSongs(ctx context.Context, query string) ([]models.SongSummary, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildSearchQuery(query)
	if err != nil {
		log.Err(err).Str("func", "*songRepository.SearchSongs").Str("query", query).Msg("failed to build search query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*songRepository.SearchSongs").Str("query", query).Msg("failed to execute search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanSongSummaries(rows)
}

// scanSongSummaries drains rows into summary records.
func scanSongSummaries(rows *sql.Rows) ([]models.SongSummary, error) {
	results := make([]models.SongSummary, 0, searchResultCap)

	for rows.Next() {
		var song models.SongSummary
		if err := rows.Scan(
			&song.TrackID, &song.TrackName, &song.ArtistName,
			&song.AlbumName, &song.AlbumImage, &song.Genres,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, song)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// GetSongByID retrieves one song with its playable fields, or
// [ErrNoSongFound].
func (r *songRepository) GetSongByID(ctx context.Context, trackID int64) (models.Song, error) {
	log := logger.FromContext(ctx)

	var song models.Song
	row := r.db.QueryRowContext(ctx, getSongByID, trackID)

	if err := row.Scan(
		&song.TrackID, &song.TrackName, &song.ArtistName, &song.AlbumName,
		&song.AlbumImage, &song.Genres, &song.Rating, &song.ReleaseYear,
		&song.AudioURL, &song.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Song{}, ErrNoSongFound
		}

		log.Err(err).Str("func", "*songRepository.GetSongByID").Int64("track_id", trackID).Msg("error: scanning error")
		return models.Song{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return song, nil
}

// GetSongWithRatingCount retrieves the song together with the count of
// distinct accounts that rated it. [ErrNoSongFound] is returned only
// when the song row itself is absent; a song nobody rated yields a
// count of zero.
func (r *songRepository) GetSongWithRatingCount(ctx context.Context, trackID int64) (models.Song, int, error) {
	log := logger.FromContext(ctx)

	var song models.Song
	var ratingCount int
	row := r.db.QueryRowContext(ctx, getSongWithRatingCount, trackID)

	if err := row.Scan(
		&song.TrackID, &song.TrackName, &song.ArtistName, &song.AlbumName,
		&song.AlbumImage, &song.Genres, &song.Rating, &song.ReleaseYear,
		&song.AudioURL, &song.CreatedAt, &ratingCount,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Song{}, 0, ErrNoSongFound
		}

		log.Err(err).Str("func", "*songRepository.GetSongWithRatingCount").Int64("track_id", trackID).Msg("error: scanning error")
		return models.Song{}, 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return song, ratingCount, nil
}

// GetAverageRating returns the arithmetic mean of all listener ratings
// for the song. COALESCE in the query makes a song without ratings
// yield exactly 0 rather than NULL.
func (r *songRepository) GetAverageRating(ctx context.Context, trackID int64) (float64, error) {
	log := logger.FromContext(ctx)

	var average float64
	row := r.db.QueryRowContext(ctx, getAverageRating, trackID)

	if err := row.Scan(&average); err != nil {
		log.Err(err).Str("func", "*songRepository.GetAverageRating").Int64("track_id", trackID).Msg("error: scanning error")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return average, nil
}

// ListRecentComments returns up to limit comments for the song, newest
// first. Ordering is stable across calls: creation instant descending
// with comment_id as the tie-break.
func (r *songRepository) ListRecentComments(ctx context.Context, trackID int64, limit int) ([]models.CommentView, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listRecentComments, trackID, limit)
	if err != nil {
		log.Err(err).Str("func", "*songRepository.ListRecentComments").Int64("track_id", trackID).Msg("failed to execute comments query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.CommentView, 0, limit)

	for rows.Next() {
		var comment models.CommentView
		if err := rows.Scan(&comment.Username, &comment.CommentText, &comment.CreatedAt, &comment.UserRating); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

// CreateSong persists a new catalog song and returns it with the
// server-assigned TrackID and CreatedAt.
func (r *songRepository) CreateSong(ctx context.Context, song models.Song) (models.Song, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSong,
		song.TrackName, song.ArtistName, song.AlbumName, song.AlbumImage,
		song.Genres, song.Rating, song.ReleaseYear, song.AudioURL)

	if err := row.Scan(&song.TrackID, &song.CreatedAt); err != nil {
		log.Err(err).Str("func", "*songRepository.CreateSong").Msg("failed to insert song")
		return models.Song{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return song, nil
}

// UpdateSong applies the non-nil fields of update to the song. Returns
// [ErrNoSongFound] when no row matches and [ErrBuildingSQLQuery] when
// the update carries no fields at all.
func (r *songRepository) UpdateSong(ctx context.Context, trackID int64, update models.SongUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSongUpdateQuery(trackID, update)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*songRepository.UpdateSong").Int64("track_id", trackID).Msg("failed to update song")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoSongFound
	}

	return nil
}

// DeleteSong removes the song and all dependent rows (comments,
// ratings, likes) in one transaction, rolled back together on any
// failure. Returns [ErrNoSongFound] when the song does not exist.
func (r *songRepository) DeleteSong(ctx context.Context, trackID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*songRepository.DeleteSong").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var existingID int64
	if err := tx.QueryRowContext(ctx, songExists, trackID).Scan(&existingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoSongFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for _, statement := range []string{deleteSongComments, deleteSongRatings, deleteSongLikes, deleteSong} {
		if _, err := tx.ExecContext(ctx, statement, trackID); err != nil {
			log.Err(err).Str("func", "*songRepository.DeleteSong").Int64("track_id", trackID).Msg("failed to delete song rows")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// AddLike appends the song to the account's liked list. A repeated like
// hits the (account_id, track_id) primary key and surfaces as
// [ErrAlreadyLiked]; a missing song surfaces as [ErrNoSongFound].
func (r *songRepository) AddLike(ctx context.Context, accountID, trackID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, insertLike, accountID, trackID); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrAlreadyLiked
		case pgerrcode.ForeignKeyViolation:
			return ErrNoSongFound
		default:
			log.Err(err).Str("func", "*songRepository.AddLike").Int64("track_id", trackID).Msg("failed to insert like")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// ListLikedSongs returns the account's liked songs with the account's
// own rating joined in (0 for unrated songs).
func (r *songRepository) ListLikedSongs(ctx context.Context, accountID int64) ([]models.LikedSong, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listLikedSongs, accountID)
	if err != nil {
		log.Err(err).Str("func", "*songRepository.ListLikedSongs").Int64("account_id", accountID).Msg("failed to execute liked songs query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	liked := make([]models.LikedSong, 0, 20)

	for rows.Next() {
		var song models.LikedSong
		if err := rows.Scan(
			&song.TrackID, &song.TrackName, &song.ArtistName, &song.AlbumName,
			&song.AlbumImage, &song.Genres, &song.AudioURL, &song.Rating,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		liked = append(liked, song)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return liked, nil
}

// TopGenre returns the most common genre label among songs whose seed
// rating falls into band, or [ErrNoGenresFound] when the band is empty.
func (r *songRepository) TopGenre(ctx context.Context, band GenreBand) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTopGenreQuery(band)
	if err != nil {
		return "", err
	}

	var genre string
	var count int
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&genre, &count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoGenresFound
		}

		log.Err(err).Str("func", "*songRepository.TopGenre").Int("band", int(band)).Msg("error: scanning error")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	return genre, nil
}
