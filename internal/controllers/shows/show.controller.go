package showController

import (
	"context"

	"showbill/internal/models"
	"showbill/internal/repositories"
	"showbill/internal/services"
	"showbill/internal/types"
	"showbill/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
)

type ShowController struct {
	showRepo  repositories.ShowRepository
	txService *services.TransactionService
	log       logger.Logger
}

type ShowControllerInterface interface {
	List(ctx context.Context) ([]types.ShowListItem, error)
	Create(ctx context.Context, form types.ShowForm) (*models.Show, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
) ShowControllerInterface {
	return &ShowController{
		showRepo:  repos.Show,
		txService: services.Transaction,
		log:       logger.New("showController"),
	}
}

// List returns every show decorated with its venue and artist, most imminent
// first.
func (sc *ShowController) List(ctx context.Context) ([]types.ShowListItem, error) {
	log := sc.log.Function("List")

	shows, err := sc.showRepo.GetAllWithEntities(ctx)
	if err != nil {
		return nil, log.Err("failed to list shows", err)
	}

	items := make([]types.ShowListItem, 0, len(shows))
	for _, show := range shows {
		item := types.ShowListItem{
			VenueID:   show.VenueID,
			ArtistID:  show.ArtistID,
			StartTime: utils.FormatShowTime(show.StartTime),
		}
		if show.Venue != nil {
			item.VenueName = show.Venue.Name
		}
		if show.Artist != nil {
			item.ArtistName = show.Artist.Name
			item.ArtistImageLink = show.Artist.ImageLink
		}
		items = append(items, item)
	}

	return items, nil
}

func (sc *ShowController) Create(
	ctx context.Context,
	form types.ShowForm,
) (*models.Show, error) {
	log := sc.log.Function("Create")

	show, err := form.ToModel()
	if err != nil {
		return nil, log.Err("failed to parse show form", err)
	}

	err = sc.txService.Execute(ctx, func(txCtx context.Context) error {
		return sc.showRepo.Create(txCtx, &show)
	})
	if err != nil {
		return nil, log.Err("failed to create show", err,
			"artistID", show.ArtistID, "venueID", show.VenueID)
	}

	log.Info("Show created", "id", show.ID,
		"artistID", show.ArtistID, "venueID", show.VenueID)
	return &show, nil
}
