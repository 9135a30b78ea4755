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

type ArtistRepository interface {
	GetAll(ctx context.Context) ([]Artist, error)
	GetByID(ctx context.Context, id int) (*Artist, error)
	SearchByName(ctx context.Context, term string) ([]Artist, error)
	Create(ctx context.Context, artist *Artist) error
	Update(ctx context.Context, id int, fields map[string]any) error
}

type artistRepository struct {
	db  database.DB
	log logger.Logger
}

func NewArtistRepository(db database.DB) ArtistRepository {
	return &artistRepository{
		db:  db,
		log: logger.New("artistRepository"),
	}
}

func (r *artistRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := contextutil.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *artistRepository) GetAll(ctx context.Context) ([]Artist, error) {
	log := r.log.Function("GetAll")

	var artists []Artist
	if err := r.getDB(ctx).Order("id DESC").Find(&artists).Error; err != nil {
		return nil, log.Err("failed to get artists", err)
	}

	return artists, nil
}

func (r *artistRepository) GetByID(ctx context.Context, id int) (*Artist, error) {
	log := r.log.Function("GetByID")

	var artist Artist
	if err := r.getDB(ctx).First(&artist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get artist by ID", err, "id", id)
	}

	return &artist, nil
}

func (r *artistRepository) SearchByName(ctx context.Context, term string) ([]Artist, error) {
	log := r.log.Function("SearchByName")

	var artists []Artist
	if err := r.getDB(ctx).
		Where("name ILIKE ?", "%"+term+"%").
		Order("id DESC").
		Find(&artists).Error; err != nil {
		return nil, log.Err("failed to search artists", err, "term", term)
	}

	return artists, nil
}

func (r *artistRepository) Create(ctx context.Context, artist *Artist) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(artist).Error; err != nil {
		return log.Err("failed to create artist", err, "name", artist.Name)
	}

	return nil
}

func (r *artistRepository) Update(ctx context.Context, id int, fields map[string]any) error {
	log := r.log.Function("Update")

	result := r.getDB(ctx).Model(&Artist{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return log.Err("failed to update artist", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
