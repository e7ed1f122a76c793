package accesscodeservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	accesscodedomain "github.com/Black-And-White-Club/clip-arena/app/modules/accesscode/domain"
	accesscodedb "github.com/Black-And-White-Club/clip-arena/app/modules/accesscode/infrastructure/repositories"
	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	userdb "github.com/Black-And-White-Club/clip-arena/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/clip-arena/pkg/attr"
	"github.com/Black-And-White-Club/clip-arena/pkg/eventbus"
	"github.com/Black-And-White-Club/clip-arena/pkg/observability"
	"github.com/Black-And-White-Club/clip-arena/pkg/operations"
	"github.com/Black-And-White-Club/clip-arena/pkg/results"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// maxCollisionRetries bounds regeneration when a code string already exists.
const maxCollisionRetries = 5

// Options tunes code generation.
type Options struct {
	CodeLength  int
	MaxQuantity int
}

// AccessCodeService implements the Service interface.
type AccessCodeService struct {
	repo      accesscodedb.Repository
	users     UserStore
	publisher message.Publisher
	logger    *slog.Logger
	runner    *operations.Runner
	opts      Options
	now       func() time.Time
	generate  func(length int) (string, error)
}

// NewAccessCodeService creates a new AccessCodeService.
func NewAccessCodeService(
	repo accesscodedb.Repository,
	users UserStore,
	publisher message.Publisher,
	opts Options,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *AccessCodeService {
	if opts.CodeLength <= 0 {
		opts.CodeLength = 8
	}
	if opts.MaxQuantity <= 0 {
		opts.MaxQuantity = 500
	}
	runner := operations.NewRunner("AccessCodeService", logger, metrics, tracer, db)
	return &AccessCodeService{
		repo:      repo,
		users:     users,
		publisher: publisher,
		logger:    runner.Logger,
		runner:    runner,
		opts:      opts,
		now:       time.Now,
		generate:  accesscodedomain.GenerateCode,
	}
}

// GenerateCodes issues a batch of codes in one transaction.
func (s *AccessCodeService) GenerateCodes(ctx context.Context, actor authdomain.Actor, quantity, expiryDays int) ([]accesscodedomain.AccessCode, error) {
	if quantity < 1 || quantity > s.opts.MaxQuantity {
		return nil, accesscodedomain.ErrInvalidQuantity
	}
	if actor.IsAdmin() && expiryDays < 1 {
		return nil, accesscodedomain.ErrInvalidExpiry
	}

	codes, err := operations.Execute(s.runner, ctx, "GenerateCodes", actor.UserID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]accesscodedomain.AccessCode, error], error) {
		return s.generateCodesLogic(ctx, db, actor, quantity, expiryDays)
	})
	if err != nil {
		return nil, err
	}

	var expiresAt *time.Time
	if len(codes) > 0 {
		expiresAt = codes[0].ExpiresAt
	}
	if err := eventbus.Publish(ctx, s.publisher, accesscodedomain.CodesGeneratedTopic, accesscodedomain.CodesGeneratedPayload{
		IssuerID:   actor.UserID,
		IssuerRole: actor.Role.String(),
		Count:      len(codes),
		ExpiresAt:  expiresAt,
	}); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish generated codes",
			attr.ExtractCorrelationID(ctx),
			attr.UUID("issuer_id", actor.UserID),
			attr.Error(err),
		)
	}

	return codes, nil
}

func (s *AccessCodeService) generateCodesLogic(ctx context.Context, db bun.IDB, actor authdomain.Actor, quantity, expiryDays int) (results.OperationResult[[]accesscodedomain.AccessCode, error], error) {
	if !actor.IsAdmin() {
		approved, err := s.isApproved(ctx, db, actor.UserID)
		if err != nil {
			return results.OperationResult[[]accesscodedomain.AccessCode, error]{}, err
		}
		if !approved {
			return results.FailureResult[[]accesscodedomain.AccessCode, error](accesscodedomain.ErrForbidden), nil
		}
	}

	now := s.now().UTC()
	var expiresAt *time.Time
	if actor.IsAdmin() {
		t := now.AddDate(0, 0, expiryDays)
		expiresAt = &t
	}

	out := make([]accesscodedomain.AccessCode, 0, quantity)
	for i := 0; i < quantity; i++ {
		row, err := s.insertUniqueCode(ctx, db, actor, expiresAt, now)
		if err != nil {
			return results.OperationResult[[]accesscodedomain.AccessCode, error]{}, err
		}
		out = append(out, toDomain(row))
	}
	return results.SuccessResult[[]accesscodedomain.AccessCode, error](out), nil
}

func (s *AccessCodeService) insertUniqueCode(ctx context.Context, db bun.IDB, actor authdomain.Actor, expiresAt *time.Time, now time.Time) (*accesscodedb.AccessCode, error) {
	for attempt := 0; attempt < maxCollisionRetries; attempt++ {
		code, err := s.generate(s.opts.CodeLength)
		if err != nil {
			return nil, err
		}
		row := &accesscodedb.AccessCode{
			ID:         uuid.New(),
			Code:       code,
			CreatedBy:  actor.UserID,
			IssuerRole: actor.Role.String(),
			ExpiresAt:  expiresAt,
			CreatedAt:  now,
		}
		inserted, err := s.repo.InsertCode(ctx, db, row)
		if err != nil {
			return nil, err
		}
		if inserted {
			return row, nil
		}
		s.logger.DebugContext(ctx, "Access code collision, regenerating",
			attr.ExtractCorrelationID(ctx),
			attr.Int("attempt", attempt+1),
		)
	}
	return nil, fmt.Errorf("failed to generate a unique code after %d attempts", maxCollisionRetries)
}

// ValidateCode checks a code without consuming it.
func (s *AccessCodeService) ValidateCode(ctx context.Context, code string) (*accesscodedomain.Validation, error) {
	normalized := accesscodedomain.NormalizeCode(code)

	return operations.Execute(s.runner, ctx, "ValidateCode", normalized, func(ctx context.Context, db bun.IDB) (results.OperationResult[*accesscodedomain.Validation, error], error) {
		row, err := s.repo.GetByCode(ctx, db, normalized)
		if err != nil {
			if errors.Is(err, accesscodedb.ErrNotFound) {
				return results.FailureResult[*accesscodedomain.Validation, error](accesscodedomain.ErrCodeNotFound), nil
			}
			return results.OperationResult[*accesscodedomain.Validation, error]{}, err
		}

		if err := toDomain(row).Check(s.now()); err != nil {
			return results.FailureResult[*accesscodedomain.Validation, error](err), nil
		}
		return results.SuccessResult[*accesscodedomain.Validation, error](&accesscodedomain.Validation{
			OK:        true,
			Code:      row.Code,
			ExpiresAt: row.ExpiresAt,
		}), nil
	})
}

// RedeemCode consumes a code. The used_by transition is a single conditional
// update; losing a race to another redeemer reports the code as used.
func (s *AccessCodeService) RedeemCode(ctx context.Context, code string, redeemer authdomain.Actor) (*accesscodedomain.Redemption, error) {
	normalized := accesscodedomain.NormalizeCode(code)

	var issuerID uuid.UUID
	redemption, err := operations.Execute(s.runner, ctx, "RedeemCode", redeemer.UserID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[*accesscodedomain.Redemption, error], error) {
		result, issuer, err := s.redeemCodeLogic(ctx, db, normalized, redeemer)
		issuerID = issuer
		return result, err
	})
	if err != nil {
		return nil, err
	}

	if err := eventbus.Publish(ctx, s.publisher, accesscodedomain.CodeRedeemedTopic, accesscodedomain.CodeRedeemedPayload{
		AccessCodeID: redemption.AccessCodeID,
		RedeemerID:   redeemer.UserID,
		IssuerID:     issuerID,
		ReferrerID:   redemption.ReferrerID,
		RedeemedAt:   redemption.RedeemedAt,
	}); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish code redemption",
			attr.ExtractCorrelationID(ctx),
			attr.UUID("access_code_id", redemption.AccessCodeID),
			attr.Error(err),
		)
	}

	return redemption, nil
}

func (s *AccessCodeService) redeemCodeLogic(ctx context.Context, db bun.IDB, code string, redeemer authdomain.Actor) (results.OperationResult[*accesscodedomain.Redemption, error], uuid.UUID, error) {
	fail := func(err error) (results.OperationResult[*accesscodedomain.Redemption, error], uuid.UUID, error) {
		return results.FailureResult[*accesscodedomain.Redemption, error](err), uuid.Nil, nil
	}

	row, err := s.repo.GetByCode(ctx, db, code)
	if err != nil {
		if errors.Is(err, accesscodedb.ErrNotFound) {
			return fail(accesscodedomain.ErrCodeNotFound)
		}
		return results.OperationResult[*accesscodedomain.Redemption, error]{}, uuid.Nil, err
	}

	ac := toDomain(row)
	if ac.IsReferral() && ac.CreatedBy == redeemer.UserID {
		return fail(accesscodedomain.ErrSelfRedemption)
	}

	now := s.now().UTC()
	if err := ac.Check(now); err != nil {
		return fail(err)
	}

	redeemed, err := s.repo.MarkRedeemed(ctx, db, row.ID, redeemer.UserID, now)
	if err != nil {
		return results.OperationResult[*accesscodedomain.Redemption, error]{}, uuid.Nil, err
	}
	if !redeemed {
		return fail(accesscodedomain.ErrCodeAlreadyUsed)
	}

	if err := s.users.MarkApproved(ctx, db, redeemer.UserID, now); err != nil {
		return results.OperationResult[*accesscodedomain.Redemption, error]{}, uuid.Nil, fmt.Errorf("failed to approve redeemer: %w", err)
	}

	redemption := &accesscodedomain.Redemption{
		AccessCodeID: row.ID,
		Code:         row.Code,
		RedeemedAt:   now,
	}

	if ac.IsReferral() {
		created, err := s.repo.CreateReferral(ctx, db, &accesscodedb.Referral{
			ReferrerID:     row.CreatedBy,
			ReferredUserID: redeemer.UserID,
			AccessCodeID:   row.ID,
			CreatedAt:      now,
		})
		if err != nil {
			return results.OperationResult[*accesscodedomain.Redemption, error]{}, uuid.Nil, err
		}
		// The first referrer keeps the credit; later codes only consume.
		if created {
			referrer := row.CreatedBy
			redemption.ReferrerID = &referrer
		} else {
			s.logger.InfoContext(ctx, "Redeemer already referred, no referral recorded",
				attr.ExtractCorrelationID(ctx),
				attr.UUID("redeemer_id", redeemer.UserID),
				attr.UUID("issuer_id", row.CreatedBy),
			)
		}
	}

	return results.SuccessResult[*accesscodedomain.Redemption, error](redemption), row.CreatedBy, nil
}

// ListCodes returns the actor's own codes.
func (s *AccessCodeService) ListCodes(ctx context.Context, actor authdomain.Actor) ([]accesscodedomain.AccessCode, error) {
	return operations.Execute(s.runner, ctx, "ListCodes", actor.UserID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]accesscodedomain.AccessCode, error], error) {
		rows, err := s.repo.ListByCreator(ctx, db, actor.UserID, 0)
		if err != nil {
			return results.OperationResult[[]accesscodedomain.AccessCode, error]{}, err
		}
		out := make([]accesscodedomain.AccessCode, 0, len(rows))
		for i := range rows {
			out = append(out, toDomain(&rows[i]))
		}
		return results.SuccessResult[[]accesscodedomain.AccessCode, error](out), nil
	})
}

// GetReferralStats lists the users referred by userID.
func (s *AccessCodeService) GetReferralStats(ctx context.Context, userID uuid.UUID) (*accesscodedomain.ReferralStats, error) {
	return operations.Execute(s.runner, ctx, "GetReferralStats", userID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[*accesscodedomain.ReferralStats, error], error) {
		rows, err := s.repo.ListReferrals(ctx, db, userID)
		if err != nil {
			return results.OperationResult[*accesscodedomain.ReferralStats, error]{}, err
		}
		stats := &accesscodedomain.ReferralStats{
			ReferrerID:    userID,
			ReferredCount: len(rows),
			Referred:      make([]accesscodedomain.ReferredUser, 0, len(rows)),
		}
		for _, r := range rows {
			stats.Referred = append(stats.Referred, accesscodedomain.ReferredUser{
				UserID:      r.UserID,
				DisplayName: r.DisplayName,
				JoinedAt:    r.JoinedAt,
			})
		}
		return results.SuccessResult[*accesscodedomain.ReferralStats, error](stats), nil
	})
}

func (s *AccessCodeService) isApproved(ctx context.Context, db bun.IDB, userID uuid.UUID) (bool, error) {
	user, err := s.users.GetByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load issuer: %w", err)
	}
	return user.Approved, nil
}

func toDomain(row *accesscodedb.AccessCode) accesscodedomain.AccessCode {
	return accesscodedomain.AccessCode{
		ID:         row.ID,
		Code:       row.Code,
		CreatedBy:  row.CreatedBy,
		IssuerRole: authdomain.Role(row.IssuerRole),
		ExpiresAt:  row.ExpiresAt,
		UsedBy:     row.UsedBy,
		UsedAt:     row.UsedAt,
		CreatedAt:  row.CreatedAt,
	}
}
