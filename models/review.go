package models

import "time"

// Rating is one listener's score for one song. At most one rating
// exists per (account, track) pair; resubmission overwrites the score.
type Rating struct {
	AccountID int64 `json:"-"`
	TrackID   int64 `json:"track_id"`
	Rating    int   `json:"rating"`
}

// TableName returns the name of the database table
// associated with the Rating model.
func (r Rating) TableName() string {
	return "ratings"
}

// Comment is one free-text remark left on a song. Unlike ratings,
// multiple comments per (account, track) pair are allowed.
type Comment struct {
	CommentID   int64     `json:"-"`
	AccountID   int64     `json:"-"`
	TrackID     int64     `json:"track_id"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

// ReviewRequest is the inbound payload of a review submission: a score
// in [1,5] plus an optional comment. Email identifies the submitting
// account.
type ReviewRequest struct {
	Email   string `json:"email"`
	TrackID int64  `json:"track_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// LikeRequest is the inbound payload for adding a song to an account's
// liked list.
type LikeRequest struct {
	TrackID int64 `json:"track_id"`
}

// LikedSong is one entry of an account's liked list: the song summary
// plus the account's own rating for it (0 when unrated).
type LikedSong struct {
	SongSummary
	AudioURL string `json:"audio_url"`
	Rating   int    `json:"rating"`
}
