package artistController

import (
	"context"
	"time"

	"showbill/internal/models"
	"showbill/internal/repositories"
	"showbill/internal/services"
	"showbill/internal/types"
	"showbill/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
)

type ArtistController struct {
	artistRepo repositories.ArtistRepository
	showRepo   repositories.ShowRepository
	txService  *services.TransactionService
	log        logger.Logger
	now        func() time.Time
}

type ArtistControllerInterface interface {
	List(ctx context.Context) ([]types.ArtistListItem, error)
	Search(ctx context.Context, term string) (types.SearchResults, error)
	Get(ctx context.Context, id int) (*types.ArtistPage, error)
	GetForm(ctx context.Context, id int) (*types.ArtistForm, error)
	Create(ctx context.Context, form types.ArtistForm) (*models.Artist, error)
	Update(ctx context.Context, id int, form types.ArtistForm) error
}

func New(
	repos repositories.Repository,
	services services.Service,
) ArtistControllerInterface {
	return &ArtistController{
		artistRepo: repos.Artist,
		showRepo:   repos.Show,
		txService:  services.Transaction,
		log:        logger.New("artistController"),
		now:        time.Now,
	}
}

func (ac *ArtistController) List(ctx context.Context) ([]types.ArtistListItem, error) {
	log := ac.log.Function("List")

	artists, err := ac.artistRepo.GetAll(ctx)
	if err != nil {
		return nil, log.Err("failed to list artists", err)
	}

	items := make([]types.ArtistListItem, 0, len(artists))
	for _, artist := range artists {
		items = append(items, types.ArtistListItem{ID: artist.ID, Name: artist.Name})
	}

	return items, nil
}

func (ac *ArtistController) Search(
	ctx context.Context,
	term string,
) (types.SearchResults, error) {
	log := ac.log.Function("Search")

	artists, err := ac.artistRepo.SearchByName(ctx, term)
	if err != nil {
		return types.SearchResults{}, log.Err("failed to search artists", err, "term", term)
	}

	results := types.SearchResults{
		Count: len(artists),
		Data:  make([]types.SearchResultItem, 0, len(artists)),
	}
	for _, artist := range artists {
		results.Data = append(results.Data, types.SearchResultItem{
			ID:   artist.ID,
			Name: artist.Name,
		})
	}

	return results, nil
}

// Get loads the artist detail page with its shows partitioned into past and
// upcoming against the request-time clock.
func (ac *ArtistController) Get(ctx context.Context, id int) (*types.ArtistPage, error) {
	log := ac.log.Function("Get")

	artist, err := ac.artistRepo.GetByID(ctx, id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get artist", err, "id", id)
	}

	shows, err := ac.showRepo.GetByArtistID(ctx, id)
	if err != nil {
		return nil, log.Err("failed to get artist shows", err, "id", id)
	}

	page := &types.ArtistPage{
		ID:                 artist.ID,
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Genres:             artist.Genres,
		FacebookLink:       artist.FacebookLink,
		ImageLink:          artist.ImageLink,
		WebsiteLink:        artist.WebsiteLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		PastShows:          []types.ShowInfo{},
		UpcomingShows:      []types.ShowInfo{},
	}

	now := ac.now()
	for _, show := range shows {
		info := types.ShowInfo{
			VenueID:   show.VenueID,
			StartTime: utils.FormatShowTime(show.StartTime),
		}
		if show.Venue != nil {
			info.VenueName = show.Venue.Name
			info.VenueImageLink = show.Venue.ImageLink
		}
		if show.IsUpcoming(now) {
			page.UpcomingShows = append(page.UpcomingShows, info)
		} else {
			page.PastShows = append(page.PastShows, info)
		}
	}
	page.PastShowsCount = len(page.PastShows)
	page.UpcomingShowsCount = len(page.UpcomingShows)

	return page, nil
}

func (ac *ArtistController) GetForm(ctx context.Context, id int) (*types.ArtistForm, error) {
	artist, err := ac.artistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var form types.ArtistForm
	form.FromArtist(*artist)
	return &form, nil
}

func (ac *ArtistController) Create(
	ctx context.Context,
	form types.ArtistForm,
) (*models.Artist, error) {
	log := ac.log.Function("Create")

	artist := form.ToModel()
	err := ac.txService.Execute(ctx, func(txCtx context.Context) error {
		return ac.artistRepo.Create(txCtx, &artist)
	})
	if err != nil {
		return nil, log.Err("failed to create artist", err, "name", artist.Name)
	}

	log.Info("Artist created", "id", artist.ID, "name", artist.Name)
	return &artist, nil
}

func (ac *ArtistController) Update(
	ctx context.Context,
	id int,
	form types.ArtistForm,
) error {
	log := ac.log.Function("Update")

	err := ac.txService.Execute(ctx, func(txCtx context.Context) error {
		return ac.artistRepo.Update(txCtx, id, form.ToUpdateFields())
	})
	if err != nil {
		if err == repositories.ErrNotFound {
			return err
		}
		return log.Err("failed to update artist", err, "id", id)
	}

	log.Info("Artist updated", "id", id)
	return nil
}
