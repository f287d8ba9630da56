package persistent

import (
	"context"

	"campshop/pkg/models"
	"campshop/pkg/query"
	"campshop/services/catalog/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BootcampRepository interface {
	Create(ctx context.Context, bootcamp *entity.Bootcamp) error
	GetByID(ctx context.Context, id string) (*entity.Bootcamp, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	Update(ctx context.Context, bootcamp *entity.Bootcamp) error
	UpdatePhoto(ctx context.Context, id, photo string) error
	Delete(ctx context.Context, id string) error
	WithinRadius(ctx context.Context, lat, lng, radians float64) ([]*entity.Bootcamp, error)
	RefreshAverageCost(ctx context.Context, id string) error
	RefreshAverageRating(ctx context.Context, id string) error
	Query(ctx context.Context, spec query.Spec) ([]*entity.Bootcamp, int64, error)
}

// Courses come along with every listed bootcamp.
var bootcampCourses = &query.Expand{Path: "Courses"}

type bootcampRepository struct {
	db *gorm.DB
}

func NewBootcampRepository(db *gorm.DB) BootcampRepository {
	return &bootcampRepository{db: db}
}

func (r *bootcampRepository) Create(ctx context.Context, bootcamp *entity.Bootcamp) error {
	m := ToBootcampModel(bootcamp)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return err
	}
	*bootcamp = *ToBootcampEntity(m)
	return nil
}

func (r *bootcampRepository) GetByID(ctx context.Context, id string) (*entity.Bootcamp, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var m models.Bootcamp
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return ToBootcampEntity(&m), nil
}

func (r *bootcampRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Bootcamp{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *bootcampRepository) Update(ctx context.Context, bootcamp *entity.Bootcamp) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ToBootcampModel(bootcamp)).Error
}

func (r *bootcampRepository) UpdatePhoto(ctx context.Context, id, photo string) error {
	return r.db.WithContext(ctx).Model(&models.Bootcamp{}).Where("id = ?", id).Update("photo", photo).Error
}

// Delete removes the bootcamp together with its courses and reviews.
func (r *bootcampRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bootcamp_id = ?", id).Delete(&models.Course{}).Error; err != nil {
			return err
		}
		if err := tx.Where("bootcamp_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Bootcamp{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// WithinRadius matches bootcamps whose central angle to (lat, lng) is at most
// radians.
func (r *bootcampRepository) WithinRadius(ctx context.Context, lat, lng, radians float64) ([]*entity.Bootcamp, error) {
	var items []models.Bootcamp
	err := r.db.WithContext(ctx).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Where(`acos(least(1, greatest(-1,
			sin(radians(?)) * sin(radians(latitude)) +
			cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude) - radians(?))
		))) <= ?`, lat, lat, lng, radians).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return mapAll(items, ToBootcampEntity), nil
}

// RefreshAverageCost stores the mean course tuition rounded up to the next ten.
func (r *bootcampRepository) RefreshAverageCost(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Exec(`UPDATE bootcamps SET average_cost =
		(SELECT CEIL(AVG(tuition) / 10) * 10 FROM courses WHERE bootcamp_id = ?)
		WHERE id = ?`, id, id).Error
}

func (r *bootcampRepository) RefreshAverageRating(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Exec(`UPDATE bootcamps SET average_rating =
		(SELECT AVG(rating) FROM reviews WHERE bootcamp_id = ?)
		WHERE id = ?`, id, id).Error
}

func (r *bootcampRepository) Query(ctx context.Context, spec query.Spec) ([]*entity.Bootcamp, int64, error) {
	items, total, err := query.Run[models.Bootcamp](ctx, r.db, bootcampSchema, spec, bootcampCourses)
	if err != nil {
		return nil, 0, err
	}
	return mapAll(items, ToBootcampEntity), total, nil
}
