package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/akarpov/go-music-library/models"
)

const (
	createAccount = `INSERT INTO accounts (email, username, password_hash, email_verified, verification_code, code_expires_at)
    VALUES ($1, $2, $3, FALSE, $4, $5)
    RETURNING account_id, email, username, password_hash, email_verified, verification_code, code_expires_at, created_at;`

	findAccountByEmail = `SELECT account_id, email, username, password_hash, email_verified, verification_code, code_expires_at, created_at
    FROM accounts
    WHERE email = $1;`

	setVerificationCode = `UPDATE accounts
    SET verification_code = $2, code_expires_at = $3
    WHERE email = $1 AND email_verified = FALSE;`

	// confirmVerification flips the account to verified and clears the
	// pending code in one statement. The WHERE clause re-checks the code
	// and its expiry, so of two concurrent confirms only one can match.
	confirmVerification = `UPDATE accounts
    SET email_verified = TRUE, verification_code = NULL, code_expires_at = NULL
    WHERE email = $1 AND email_verified = FALSE AND verification_code = $2 AND code_expires_at >= $3;`

	clearExpiredCodes = `UPDATE accounts
    SET verification_code = NULL, code_expires_at = NULL
    WHERE email_verified = FALSE AND code_expires_at < $1;`

	findAdminByEmail = `SELECT admin_id, email, name, password_hash
    FROM admins
    WHERE email = $1;`

	listSongs = `SELECT track_id, track_name, artist_name, album_name, album_image, genres
    FROM songs
    ORDER BY track_name;`

	getSongByID = `SELECT track_id, track_name, artist_name, album_name, album_image, genres, rating, release_year, audio_url, created_at
    FROM songs
    WHERE track_id = $1;`

	getSongWithRatingCount = `SELECT s.track_id, s.track_name, s.artist_name, s.album_name, s.album_image, s.genres, s.rating, s.release_year, s.audio_url, s.created_at, COUNT(DISTINCT r.account_id)
    FROM songs s
    LEFT JOIN ratings r ON s.track_id = r.track_id
    WHERE s.track_id = $1
    GROUP BY s.track_id;`

	getAverageRating = `SELECT COALESCE(AVG(rating), 0)
    FROM ratings
    WHERE track_id = $1;`

	// listRecentComments orders by creation instant with comment_id as a
	// stable tie-break so repeated calls return the same sequence.
	listRecentComments = `SELECT a.username, c.comment_text, c.created_at, COALESCE(r.rating, 0)
    FROM comments c
    JOIN accounts a ON c.account_id = a.account_id
    LEFT JOIN ratings r ON r.account_id = c.account_id AND r.track_id = c.track_id
    WHERE c.track_id = $1
    ORDER BY c.created_at DESC, c.comment_id DESC
    LIMIT $2;`

	upsertRating = `INSERT INTO ratings (account_id, track_id, rating)
    VALUES ($1, $2, $3)
    ON CONFLICT (account_id, track_id) DO UPDATE SET rating = EXCLUDED.rating;`

	insertComment = `INSERT INTO comments (account_id, track_id, comment_text)
    VALUES ($1, $2, $3);`

	createSong = `INSERT INTO songs (track_name, artist_name, album_name, album_image, genres, rating, release_year, audio_url)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING track_id, created_at;`

	songExists = `SELECT track_id FROM songs WHERE track_id = $1;`

	deleteSongComments = `DELETE FROM comments WHERE track_id = $1;`
	deleteSongRatings  = `DELETE FROM ratings WHERE track_id = $1;`
	deleteSongLikes    = `DELETE FROM liked_songs WHERE track_id = $1;`
	deleteSong         = `DELETE FROM songs WHERE track_id = $1;`

	insertLike = `INSERT INTO liked_songs (account_id, track_id)
    VALUES ($1, $2);`

	listLikedSongs = `SELECT s.track_id, s.track_name, s.artist_name, s.album_name, s.album_image, s.genres, s.audio_url, COALESCE(r.rating, 0)
    FROM songs s
    JOIN liked_songs ls ON s.track_id = ls.track_id
    LEFT JOIN ratings r ON s.track_id = r.track_id AND r.account_id = $1
    WHERE ls.account_id = $1
    ORDER BY s.track_name;`
)

// searchResultCap bounds how many rows a single search may return.
const searchResultCap = 50

// buildSearchQuery builds the ranked substring search. query must be
// trimmed and lower-cased. Title-exact matches rank first, artist-exact
// second, every other substring hit shares the lowest tier; ties are
// broken by title.
func buildSearchQuery(query string) (string, []any, error) {
	pattern := "%" + query + "%"

	return sq.Select("track_id", "track_name", "artist_name", "album_name", "album_image", "genres").
		From("songs").
		Where(sq.Or{
			sq.Like{"LOWER(track_name)": pattern},
			sq.Like{"LOWER(artist_name)": pattern},
			sq.Like{"LOWER(album_name)": pattern},
		}).
		OrderByClause("CASE WHEN LOWER(track_name) = ? THEN 1 WHEN LOWER(artist_name) = ? THEN 2 ELSE 6 END", query, query).
		OrderBy("track_name").
		Limit(searchResultCap).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildSongUpdateQuery builds an UPDATE from the non-nil fields of
// update. Returns ErrBuildingSQLQuery when no field is present.
func buildSongUpdateQuery(trackID int64, update models.SongUpdate) (string, []any, error) {
	builder := sq.Update("songs").PlaceholderFormat(sq.Dollar)

	changed := false
	if update.TrackName != nil {
		builder = builder.Set("track_name", *update.TrackName)
		changed = true
	}
	if update.ArtistName != nil {
		builder = builder.Set("artist_name", *update.ArtistName)
		changed = true
	}
	if update.AlbumName != nil {
		builder = builder.Set("album_name", *update.AlbumName)
		changed = true
	}
	if update.Genres != nil {
		builder = builder.Set("genres", *update.Genres)
		changed = true
	}
	if update.ReleaseYear != nil {
		builder = builder.Set("release_year", *update.ReleaseYear)
		changed = true
	}

	if !changed {
		return "", nil, ErrBuildingSQLQuery
	}

	return builder.Where(sq.Eq{"track_id": trackID}).ToSql()
}

// buildTopGenreQuery builds the most-common-genre aggregation for one
// seed-rating band.
func buildTopGenreQuery(band GenreBand) (string, []any, error) {
	builder := sq.Select("genres", "COUNT(*) AS cnt").
		From("songs").
		Where(sq.NotEq{"genres": nil}).
		Where(sq.NotEq{"genres": ""}).
		GroupBy("genres").
		OrderBy("cnt DESC").
		Limit(1).
		PlaceholderFormat(sq.Dollar)

	switch band {
	case GenreBandLow:
		builder = builder.Where(sq.LtOrEq{"rating": 2})
	case GenreBandMid:
		builder = builder.Where(sq.Eq{"rating": 3})
	case GenreBandHigh:
		builder = builder.Where(sq.GtOrEq{"rating": 4})
	default:
		return "", nil, ErrBuildingSQLQuery
	}

	return builder.ToSql()
}
