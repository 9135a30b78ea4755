package repositories

import (
	"context"
	"errors"

	contextutil "showbill/internal/context"
	"showbill/internal/database"
	. "showbill/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type VenueRepository interface {
	GetAll(ctx context.Context) ([]Venue, error)
	GetByID(ctx context.Context, id int) (*Venue, error)
	SearchByName(ctx context.Context, term string) ([]Venue, error)
	Create(ctx context.Context, venue *Venue) error
	Update(ctx context.Context, id int, fields map[string]any) error
	Delete(ctx context.Context, id int) error
}

type venueRepository struct {
	db  database.DB
	log logger.Logger
}

func NewVenueRepository(db database.DB) VenueRepository {
	return &venueRepository{
		db:  db,
		log: logger.New("venueRepository"),
	}
}

func (r *venueRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := contextutil.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

// GetAll returns every venue, most recently created first.
func (r *venueRepository) GetAll(ctx context.Context) ([]Venue, error) {
	log := r.log.Function("GetAll")

	var venues []Venue
	if err := r.getDB(ctx).Order("id DESC").Find(&venues).Error; err != nil {
		return nil, log.Err("failed to get venues", err)
	}

	return venues, nil
}

func (r *venueRepository) GetByID(ctx context.Context, id int) (*Venue, error) {
	log := r.log.Function("GetByID")

	var venue Venue
	if err := r.getDB(ctx).First(&venue, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get venue by ID", err, "id", id)
	}

	return &venue, nil
}

// SearchByName matches venues whose name contains term as a case-insensitive
// substring. An empty term matches every venue.
func (r *venueRepository) SearchByName(ctx context.Context, term string) ([]Venue, error) {
	log := r.log.Function("SearchByName")

	var venues []Venue
	if err := r.getDB(ctx).
		Where("name ILIKE ?", "%"+term+"%").
		Order("id DESC").
		Find(&venues).Error; err != nil {
		return nil, log.Err("failed to search venues", err, "term", term)
	}

	return venues, nil
}

func (r *venueRepository) Create(ctx context.Context, venue *Venue) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(venue).Error; err != nil {
		return log.Err("failed to create venue", err, "name", venue.Name)
	}

	return nil
}

// Update overwrites the provided fields in a single UPDATE scoped to the id.
func (r *venueRepository) Update(ctx context.Context, id int, fields map[string]any) error {
	log := r.log.Function("Update")

	result := r.getDB(ctx).Model(&Venue{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return log.Err("failed to update venue", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the venue; its shows go with it via the FK cascade.
func (r *venueRepository) Delete(ctx context.Context, id int) error {
	log := r.log.Function("Delete")

	result := r.getDB(ctx).Delete(&Venue{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete venue", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
