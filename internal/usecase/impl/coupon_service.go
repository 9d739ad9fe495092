package impl

import (
	"context"
	"time"

	"galassia/internal/domain/entity"
	domainerrors "galassia/internal/domain/errors"
	"galassia/internal/domain/repository"
	"galassia/internal/domain/service"
	"galassia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type couponService struct {
	couponRepo    repository.CouponRepository
	qrcodeService service.QRCodeService
}

// CouponServiceParams holds dependencies for CouponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	CouponRepo    repository.CouponRepository
	QRCodeService service.QRCodeService
}

// NewCouponService creates a new coupon service instance
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	return &couponService{
		couponRepo:    params.CouponRepo,
		qrcodeService: params.QRCodeService,
	}
}

// GetActiveCoupon retrieves the user's active, unexpired coupon.
func (s *couponService) GetActiveCoupon(ctx context.Context, userID uuid.UUID) (*entity.Coupon, error) {
	coupon, err := s.couponRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to load coupon")
	}

	if coupon.Expired(time.Now()) {
		return nil, domainerrors.ErrCouponNotFound
	}

	return coupon, nil
}

// ValidateCoupon checks whether a code is redeemable by the user. Unknown,
// foreign, inactive and expired codes all come back invalid rather than erroring.
func (s *couponService) ValidateCoupon(ctx context.Context, userID uuid.UUID, code string) (*usecase.CouponValidation, error) {
	coupon, err := s.couponRepo.FindActiveByCodeAndUser(ctx, code, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return &usecase.CouponValidation{Valid: false}, nil
		}

		return nil, errors.Wrap(err, "failed to validate coupon")
	}

	if !coupon.Redeemable(time.Now()) {
		return &usecase.CouponValidation{Valid: false}, nil
	}

	return &usecase.CouponValidation{
		Valid:              true,
		DiscountPercentage: coupon.DiscountPercentage,
	}, nil
}

// GenerateCouponQR renders the user's active coupon code as a PNG QR code.
func (s *couponService) GenerateCouponQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	coupon, err := s.GetActiveCoupon(ctx, userID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateCouponQR(coupon.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate coupon QR code")
	}

	return png, nil
}
