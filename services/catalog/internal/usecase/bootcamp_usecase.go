package usecase

import (
	"context"
	"errors"
	"math"

	"campshop/pkg/access"
	"campshop/pkg/errs"
	"campshop/pkg/geocoder"
	"campshop/pkg/logger"
	"campshop/pkg/query"
	"campshop/pkg/storage"
	"campshop/services/catalog/internal/entity"
	"campshop/services/catalog/internal/repo/persistent"

	"github.com/gosimple/slug"
)

// EarthRadiusKm converts a search distance into the central angle used by
// the radius query.
const EarthRadiusKm = 6378.0

type BootcampUseCase interface {
	Query(ctx context.Context, spec query.Spec) (*query.Envelope, error)
	GetBootcamp(ctx context.Context, id string) (*entity.Bootcamp, error)
	CreateBootcamp(ctx context.Context, p *access.Principal, in entity.BootcampInput) (*entity.Bootcamp, error)
	UpdateBootcamp(ctx context.Context, p *access.Principal, id string, in entity.BootcampInput) (*entity.Bootcamp, error)
	DeleteBootcamp(ctx context.Context, p *access.Principal, id string) error
	BootcampsInRadius(ctx context.Context, zipcode string, distanceKm float64) ([]*entity.Bootcamp, error)
	UploadPhoto(ctx context.Context, p *access.Principal, id string, file *storage.File) (string, error)
}

type bootcampUseCase struct {
	bootcampRepo persistent.BootcampRepository
	geocoder     geocoder.Geocoder
	photos       *storage.PhotoUploader
	photoDir     string
	logger       *logger.Logger
}

// NewBootcampUseCase builds the bootcamp rules. A nil geocoder leaves
// locations empty and disables radius search.
func NewBootcampUseCase(
	bootcampRepo persistent.BootcampRepository,
	geo geocoder.Geocoder,
	photos *storage.PhotoUploader,
	photoDir string,
	logger *logger.Logger,
) BootcampUseCase {
	return &bootcampUseCase{
		bootcampRepo: bootcampRepo,
		geocoder:     geo,
		photos:       photos,
		photoDir:     photoDir,
		logger:       logger,
	}
}

func (uc *bootcampUseCase) Query(ctx context.Context, spec query.Spec) (*query.Envelope, error) {
	items, total, err := uc.bootcampRepo.Query(ctx, spec)
	return envelope(spec, items, total, err, "courses")
}

func (uc *bootcampUseCase) GetBootcamp(ctx context.Context, id string) (*entity.Bootcamp, error) {
	bootcamp, err := uc.bootcampRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, id)
	}
	return bootcamp, nil
}

func (uc *bootcampUseCase) CreateBootcamp(ctx context.Context, p *access.Principal, in entity.BootcampInput) (*entity.Bootcamp, error) {
	if !p.IsAdmin() {
		count, err := uc.bootcampRepo.CountByUser(ctx, p.ID)
		if err != nil {
			return nil, errs.FromStore(err, nil)
		}
		if count > 0 {
			return nil, errs.BadRequest("The user with ID %s has already published a bootcamp", p.ID)
		}
	}

	bootcamp := &entity.Bootcamp{UserID: p.ID}
	in.ApplyTo(bootcamp)
	bootcamp.Slug = slug.Make(bootcamp.Name)

	if err := validate(bootcamp); err != nil {
		return nil, err
	}
	if err := uc.locate(ctx, bootcamp); err != nil {
		return nil, err
	}

	if err := uc.bootcampRepo.Create(ctx, bootcamp); err != nil {
		return nil, errs.FromStore(err, nil)
	}
	uc.logger.Info("Bootcamp created: %s by %s", bootcamp.ID, p.ID)
	return bootcamp, nil
}

func (uc *bootcampUseCase) UpdateBootcamp(ctx context.Context, p *access.Principal, id string, in entity.BootcampInput) (*entity.Bootcamp, error) {
	bootcamp, err := uc.owned(ctx, p, id, "update")
	if err != nil {
		return nil, err
	}

	address := bootcamp.Address
	in.ApplyTo(bootcamp)
	bootcamp.Slug = slug.Make(bootcamp.Name)

	if err := validate(bootcamp); err != nil {
		return nil, err
	}
	if bootcamp.Address != address || bootcamp.Location == nil {
		if err := uc.locate(ctx, bootcamp); err != nil {
			return nil, err
		}
	}

	if err := uc.bootcampRepo.Update(ctx, bootcamp); err != nil {
		return nil, errs.FromStore(err, nil)
	}
	return bootcamp, nil
}

func (uc *bootcampUseCase) DeleteBootcamp(ctx context.Context, p *access.Principal, id string) error {
	if _, err := uc.owned(ctx, p, id, "delete"); err != nil {
		return err
	}
	if err := uc.bootcampRepo.Delete(ctx, id); err != nil {
		return lookupErr(err, id)
	}
	uc.logger.Info("Bootcamp deleted: %s by %s", id, p.ID)
	return nil
}

func (uc *bootcampUseCase) BootcampsInRadius(ctx context.Context, zipcode string, distanceKm float64) ([]*entity.Bootcamp, error) {
	if uc.geocoder == nil {
		return nil, errs.ServerError("Geocoder is not configured")
	}
	if math.IsNaN(distanceKm) || distanceKm <= 0 {
		return nil, errs.BadRequest("Please provide a positive distance")
	}

	loc, err := uc.geocoder.Geocode(ctx, zipcode)
	if err != nil {
		return nil, geocodeErr(err, zipcode)
	}

	bootcamps, err := uc.bootcampRepo.WithinRadius(ctx, loc.Latitude, loc.Longitude, distanceKm/EarthRadiusKm)
	if err != nil {
		return nil, errs.FromStore(err, nil)
	}
	return bootcamps, nil
}

func (uc *bootcampUseCase) UploadPhoto(ctx context.Context, p *access.Principal, id string, file *storage.File) (string, error) {
	bootcamp, err := uc.owned(ctx, p, id, "update")
	if err != nil {
		return "", err
	}

	name, err := uc.photos.Upload(ctx, uc.photoDir, id, file)
	if err != nil {
		return "", err
	}
	if err := uc.bootcampRepo.UpdatePhoto(ctx, id, name); err != nil {
		return "", errs.FromStore(err, nil)
	}
	if bootcamp.Photo != name {
		if err := uc.photos.Remove(ctx, uc.photoDir, bootcamp.Photo); err != nil {
			uc.logger.Warn("Failed to remove old photo %s: %v", bootcamp.Photo, err)
		}
	}
	return name, nil
}

// owned loads the bootcamp and checks the caller may change it.
func (uc *bootcampUseCase) owned(ctx context.Context, p *access.Principal, id, action string) (*entity.Bootcamp, error) {
	bootcamp, err := uc.bootcampRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, id)
	}
	if !access.CanMutate(p, bootcamp.UserID) {
		return nil, errs.Forbidden("User %s is not authorized to %s this bootcamp", p.ID, action)
	}
	return bootcamp, nil
}

func (uc *bootcampUseCase) locate(ctx context.Context, bootcamp *entity.Bootcamp) error {
	if uc.geocoder == nil {
		return nil
	}

	loc, err := uc.geocoder.Geocode(ctx, bootcamp.Address)
	if err != nil {
		return geocodeErr(err, bootcamp.Address)
	}
	bootcamp.Location = &entity.Location{
		Latitude:         loc.Latitude,
		Longitude:        loc.Longitude,
		FormattedAddress: loc.FormattedAddress,
		Street:           loc.Street,
		City:             loc.City,
		State:            loc.State,
		Zipcode:          loc.Zipcode,
		Country:          loc.Country,
	}
	return nil
}

func geocodeErr(err error, address string) error {
	if errors.Is(err, geocoder.ErrNoResults) {
		return errs.BadRequest("Address %s could not be geocoded", address)
	}
	return errs.ServerError("Geocoder error").Wrap(err)
}
