package venueController

import (
	"context"
	"sort"
	"time"

	"showbill/internal/models"
	"showbill/internal/repositories"
	"showbill/internal/services"
	"showbill/internal/types"
	"showbill/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
)

type VenueController struct {
	venueRepo repositories.VenueRepository
	showRepo  repositories.ShowRepository
	txService *services.TransactionService
	log       logger.Logger
	now       func() time.Time
}

type VenueControllerInterface interface {
	ListAreas(ctx context.Context) ([]types.AreaGroup, error)
	Search(ctx context.Context, term string) (types.SearchResults, error)
	Get(ctx context.Context, id int) (*types.VenuePage, error)
	GetForm(ctx context.Context, id int) (*types.VenueForm, error)
	Create(ctx context.Context, form types.VenueForm) (*models.Venue, error)
	Update(ctx context.Context, id int, form types.VenueForm) error
	Delete(ctx context.Context, id int) error
}

func New(
	repos repositories.Repository,
	services services.Service,
) VenueControllerInterface {
	return &VenueController{
		venueRepo: repos.Venue,
		showRepo:  repos.Show,
		txService: services.Transaction,
		log:       logger.New("venueController"),
		now:       time.Now,
	}
}

// ListAreas groups every venue into (city, state) buckets for the directory.
// Areas are ordered by state then city; venues within an area keep their
// most-recently-created-first order.
func (vc *VenueController) ListAreas(ctx context.Context) ([]types.AreaGroup, error) {
	log := vc.log.Function("ListAreas")

	venues, err := vc.venueRepo.GetAll(ctx)
	if err != nil {
		return nil, log.Err("failed to list venues", err)
	}

	counts, err := vc.showRepo.CountUpcomingByVenue(ctx, vc.now())
	if err != nil {
		return nil, log.Err("failed to count upcoming shows", err)
	}

	type areaKey struct{ city, state string }
	buckets := make(map[areaKey]*types.AreaGroup)
	order := make([]areaKey, 0)

	for _, venue := range venues {
		key := areaKey{venue.City, venue.State}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &types.AreaGroup{City: venue.City, State: venue.State}
			buckets[key] = bucket
			order = append(order, key)
		}
		bucket.Venues = append(bucket.Venues, types.VenueListItem{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: counts[venue.ID],
		})
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].state != order[j].state {
			return order[i].state < order[j].state
		}
		return order[i].city < order[j].city
	})

	areas := make([]types.AreaGroup, 0, len(order))
	for _, key := range order {
		areas = append(areas, *buckets[key])
	}

	return areas, nil
}

func (vc *VenueController) Search(
	ctx context.Context,
	term string,
) (types.SearchResults, error) {
	log := vc.log.Function("Search")

	venues, err := vc.venueRepo.SearchByName(ctx, term)
	if err != nil {
		return types.SearchResults{}, log.Err("failed to search venues", err, "term", term)
	}

	counts, err := vc.showRepo.CountUpcomingByVenue(ctx, vc.now())
	if err != nil {
		return types.SearchResults{}, log.Err("failed to count upcoming shows", err)
	}

	results := types.SearchResults{
		Count: len(venues),
		Data:  make([]types.SearchResultItem, 0, len(venues)),
	}
	for _, venue := range venues {
		results.Data = append(results.Data, types.SearchResultItem{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: counts[venue.ID],
		})
	}

	return results, nil
}

// Get loads the venue detail page with its shows partitioned into past and
// upcoming against the request-time clock.
func (vc *VenueController) Get(ctx context.Context, id int) (*types.VenuePage, error) {
	log := vc.log.Function("Get")

	venue, err := vc.venueRepo.GetByID(ctx, id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get venue", err, "id", id)
	}

	shows, err := vc.showRepo.GetByVenueID(ctx, id)
	if err != nil {
		return nil, log.Err("failed to get venue shows", err, "id", id)
	}

	page := &types.VenuePage{
		ID:                 venue.ID,
		Name:               venue.Name,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              venue.Phone,
		Genres:             venue.Genres,
		FacebookLink:       venue.FacebookLink,
		ImageLink:          venue.ImageLink,
		WebsiteLink:        venue.WebsiteLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		PastShows:          []types.ShowInfo{},
		UpcomingShows:      []types.ShowInfo{},
	}

	now := vc.now()
	for _, show := range shows {
		info := types.ShowInfo{
			ArtistID:  show.ArtistID,
			StartTime: utils.FormatShowTime(show.StartTime),
		}
		if show.Artist != nil {
			info.ArtistName = show.Artist.Name
			info.ArtistImageLink = show.Artist.ImageLink
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

// GetForm pre-populates the edit form for the venue.
func (vc *VenueController) GetForm(ctx context.Context, id int) (*types.VenueForm, error) {
	venue, err := vc.venueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var form types.VenueForm
	form.FromVenue(*venue)
	return &form, nil
}

func (vc *VenueController) Create(
	ctx context.Context,
	form types.VenueForm,
) (*models.Venue, error) {
	log := vc.log.Function("Create")

	venue := form.ToModel()
	err := vc.txService.Execute(ctx, func(txCtx context.Context) error {
		return vc.venueRepo.Create(txCtx, &venue)
	})
	if err != nil {
		return nil, log.Err("failed to create venue", err, "name", venue.Name)
	}

	log.Info("Venue created", "id", venue.ID, "name", venue.Name)
	return &venue, nil
}

func (vc *VenueController) Update(
	ctx context.Context,
	id int,
	form types.VenueForm,
) error {
	log := vc.log.Function("Update")

	err := vc.txService.Execute(ctx, func(txCtx context.Context) error {
		return vc.venueRepo.Update(txCtx, id, form.ToUpdateFields())
	})
	if err != nil {
		if err == repositories.ErrNotFound {
			return err
		}
		return log.Err("failed to update venue", err, "id", id)
	}

	log.Info("Venue updated", "id", id)
	return nil
}

// Delete removes the venue and, through the FK cascade, its shows.
func (vc *VenueController) Delete(ctx context.Context, id int) error {
	log := vc.log.Function("Delete")

	err := vc.txService.Execute(ctx, func(txCtx context.Context) error {
		return vc.venueRepo.Delete(txCtx, id)
	})
	if err != nil {
		if err == repositories.ErrNotFound {
			return err
		}
		return log.Err("failed to delete venue", err, "id", id)
	}

	log.Info("Venue deleted", "id", id)
	return nil
}
