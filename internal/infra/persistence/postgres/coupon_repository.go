package postgres

import (
	"context"

	"galassia/internal/domain/entity"
	domainerrors "galassia/internal/domain/errors"
	"galassia/internal/domain/repository"
	"galassia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{
		db: db,
	}
}

// FindActiveByUser retrieves the user's active coupon.
func (repo *couponRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by user")
	}

	return toCouponDomain(&couponM), nil
}

// FindActiveByCodeAndUser retrieves an active coupon by code, scoped to its owner.
func (repo *couponRepository) FindActiveByCodeAndUser(ctx context.Context, code string, userID uuid.UUID) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("code = ? AND user_id = ? AND is_active = ?", code, userID, true).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

// ReplaceForUser deletes the user's previous coupon row and persists the new one.
// The unique index on user_id backs the one-coupon-per-user invariant.
func (repo *couponRepository) ReplaceForUser(ctx context.Context, coupon *entity.Coupon) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", coupon.UserID).
		Delete(&model.CouponModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove previous coupon")
	}

	couponM := fromCouponDomain(coupon)
	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("user already holds a coupon")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	// Update the entity with generated values
	coupon.ID = couponM.ID
	coupon.CreatedAt = couponM.CreatedAt
	coupon.UpdatedAt = couponM.UpdatedAt

	return nil
}

// Deactivate marks a coupon redeemed. Guarded on is_active so two concurrent
// redemptions cannot both succeed.
func (repo *couponRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate coupon")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponAlreadyRedeemed
	}

	return nil
}

// --- Mapper Functions ---

// toCouponDomain converts a GORM CouponModel to a domain Coupon entity.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:                 data.ID,
		UserID:             data.UserID,
		Code:               data.Code,
		DiscountPercentage: data.DiscountPercentage,
		IsActive:           data.IsActive,
		ExpirationDate:     data.ExpiresAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromCouponDomain converts a domain Coupon entity to a GORM CouponModel.
func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	if data == nil {
		return nil
	}

	return &model.CouponModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		Code:               data.Code,
		DiscountPercentage: data.DiscountPercentage,
		IsActive:           data.IsActive,
		ExpiresAt:          data.ExpirationDate,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
