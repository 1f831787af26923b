package models

import "time"

// Song represents one catalog item: a playable track with its album
// and artist attribution.
type Song struct {
	// TrackID is the unique identifier of the song.
	TrackID int64 `json:"track_id"`

	// TrackName is the song title.
	TrackName string `json:"track_name"`

	// ArtistName is the primary artist credited for the track.
	ArtistName string `json:"artist_name"`

	// AlbumName is the collection the track belongs to.
	AlbumName string `json:"album_name"`

	// AlbumImage is a reference to the album artwork.
	AlbumImage string `json:"album_image"`

	// Genres is a denormalized genre label.
	Genres string `json:"genres"`

	// Rating is the optional intrinsic rating seed of the track,
	// distinct from listener ratings.
	Rating *int `json:"rating,omitempty"`

	// ReleaseYear is the year the track was released, when known.
	ReleaseYear *int `json:"release_year,omitempty"`

	// AudioURL is a reference to the playable media.
	AudioURL string `json:"audio_url"`

	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Song model.
func (s Song) TableName() string {
	return "songs"
}

// SongSummary is the compact song representation returned by catalog
// listing and search.
type SongSummary struct {
	TrackID    int64  `json:"track_id"`
	TrackName  string `json:"track_name"`
	ArtistName string `json:"artist_name"`
	AlbumName  string `json:"album_name"`
	AlbumImage string `json:"album_image"`
	Genres     string `json:"genres"`
}

// CommentView is one comment annotated for display: the commenting
// account's username and the score that account gave the song
// (0 if the commenter has not rated it).
type CommentView struct {
	Username    string    `json:"username"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
	UserRating  int       `json:"user_rating"`
}

// SongDetails is the consolidated per-song view: the song fields plus
// aggregated listener rating/comment state.
type SongDetails struct {
	Song

	// AverageRating is the arithmetic mean of all listener ratings,
	// exactly 0 when no ratings exist.
	AverageRating float64 `json:"average_rating"`

	// RatingCount is the number of distinct accounts that rated the song.
	RatingCount int `json:"rating_count"`

	// Comments holds the ten most recent comments, newest first.
	Comments []CommentView `json:"comments"`
}

// SongUpdate carries the optional fields of an administrative song
// update. Nil fields are left unchanged.
type SongUpdate struct {
	TrackName   *string `json:"title"`
	ArtistName  *string `json:"artist"`
	AlbumName   *string `json:"album"`
	Genres      *string `json:"genre"`
	ReleaseYear *int    `json:"year"`
}
