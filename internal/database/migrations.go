package database

import (
	logger "github.com/Bparsons0904/goLogger"
)

// CreateIndexes creates additional indexes that GORM doesn't create automatically
func (db *DB) CreateIndexes() error {
	log := logger.New("database").Function("CreateIndexes")
	log.Info("Creating additional database indexes")

	indexes := []string{
		// Case-insensitive name search on both directories
		"CREATE INDEX IF NOT EXISTS idx_venues_name_lower ON venues(LOWER(name))",
		"CREATE INDEX IF NOT EXISTS idx_artists_name_lower ON artists(LOWER(name))",
		// Area grouping on the venues directory
		"CREATE INDEX IF NOT EXISTS idx_venues_city_state ON venues(city, state)",
		"CREATE INDEX IF NOT EXISTS idx_shows_start_time_desc ON shows(start_time DESC)",
	}

	for _, indexSQL := range indexes {
		if err := db.SQL.Exec(indexSQL).Error; err != nil {
			log.Warn("Failed to create index", "sql", indexSQL, "error", err)
			// Continue with other indexes even if one fails
		}
	}

	log.Info("Additional database indexes created")
	return nil
}
