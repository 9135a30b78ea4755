package repositories

import (
	"context"
	"time"

	contextutil "showbill/internal/context"
	"showbill/internal/database"
	. "showbill/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type ShowRepository interface {
	GetAllWithEntities(ctx context.Context) ([]Show, error)
	GetByVenueID(ctx context.Context, venueID int) ([]Show, error)
	GetByArtistID(ctx context.Context, artistID int) ([]Show, error)
	CountUpcomingByVenue(ctx context.Context, now time.Time) (map[int]int, error)
	Create(ctx context.Context, show *Show) error
}

type showRepository struct {
	db  database.DB
	log logger.Logger
}

func NewShowRepository(db database.DB) ShowRepository {
	return &showRepository{
		db:  db,
		log: logger.New("showRepository"),
	}
}

func (r *showRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := contextutil.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

// GetAllWithEntities returns every show with its artist and venue loaded,
// most imminent first.
func (r *showRepository) GetAllWithEntities(ctx context.Context) ([]Show, error) {
	log := r.log.Function("GetAllWithEntities")

	var shows []Show
	if err := r.getDB(ctx).
		Preload("Artist").
		Preload("Venue").
		Order("start_time DESC").
		Find(&shows).Error; err != nil {
		return nil, log.Err("failed to get shows", err)
	}

	return shows, nil
}

func (r *showRepository) GetByVenueID(ctx context.Context, venueID int) ([]Show, error) {
	log := r.log.Function("GetByVenueID")

	var shows []Show
	if err := r.getDB(ctx).
		Preload("Artist").
		Where("venue_id = ?", venueID).
		Order("start_time DESC").
		Find(&shows).Error; err != nil {
		return nil, log.Err("failed to get shows by venue", err, "venueID", venueID)
	}

	return shows, nil
}

func (r *showRepository) GetByArtistID(ctx context.Context, artistID int) ([]Show, error) {
	log := r.log.Function("GetByArtistID")

	var shows []Show
	if err := r.getDB(ctx).
		Preload("Venue").
		Where("artist_id = ?", artistID).
		Order("start_time DESC").
		Find(&shows).Error; err != nil {
		return nil, log.Err("failed to get shows by artist", err, "artistID", artistID)
	}

	return shows, nil
}

// CountUpcomingByVenue returns upcoming-show counts keyed by venue id.
// Venues with no upcoming shows are absent from the map.
func (r *showRepository) CountUpcomingByVenue(
	ctx context.Context,
	now time.Time,
) (map[int]int, error) {
	log := r.log.Function("CountUpcomingByVenue")

	var rows []struct {
		VenueID int
		Count   int
	}
	if err := r.getDB(ctx).
		Model(&Show{}).
		Select("venue_id, COUNT(*) AS count").
		Where("start_time >= ?", now).
		Group("venue_id").
		Scan(&rows).Error; err != nil {
		return nil, log.Err("failed to count upcoming shows", err)
	}

	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.VenueID] = row.Count
	}

	return counts, nil
}

func (r *showRepository) Create(ctx context.Context, show *Show) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(show).Error; err != nil {
		return log.Err("failed to create show", err,
			"artistID", show.ArtistID, "venueID", show.VenueID)
	}

	return nil
}
