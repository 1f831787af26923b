package store

import "github.com/akarpov/go-music-library/internal/logger"

// Storages bundles every repository the service layer depends on.
type Storages struct {
	AccountRepository AccountRepository
	AdminRepository   AdminRepository
	SongRepository    SongRepository
	ReviewRepository  ReviewRepository
}

// NewStorages wires all PostgreSQL repositories over one shared
// connection pool.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
		AdminRepository:   NewAdminRepository(db, logger),
		SongRepository:    NewSongRepository(db, logger),
		ReviewRepository:  NewReviewRepository(db, logger),
	}
}
