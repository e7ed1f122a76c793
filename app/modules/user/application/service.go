package userservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	userdomain "github.com/Black-And-White-Club/clip-arena/app/modules/user/domain"
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

// UserService implements the Service interface.
type UserService struct {
	repo      userdb.Repository
	publisher message.Publisher
	logger    *slog.Logger
	runner    *operations.Runner
	now       func() time.Time
}

// NewUserService creates a new UserService.
func NewUserService(
	repo userdb.Repository,
	publisher message.Publisher,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *UserService {
	runner := operations.NewRunner("UserService", logger, metrics, tracer, db)
	return &UserService{
		repo:      repo,
		publisher: publisher,
		logger:    runner.Logger,
		runner:    runner,
		now:       time.Now,
	}
}

// EnsureUser upserts the account for actor.
func (s *UserService) EnsureUser(ctx context.Context, actor authdomain.Actor) error {
	_, err := operations.Execute(s.runner, ctx, "EnsureUser", actor.UserID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[bool, error], error) {
		err := s.repo.Upsert(ctx, db, &userdb.User{
			ID:          actor.UserID,
			Role:        string(actor.Role),
			DisplayName: actor.DisplayName,
		})
		if err != nil {
			return results.OperationResult[bool, error]{}, err
		}
		return results.SuccessResult[bool, error](true), nil
	})
	return err
}

// IsApproved reads the approval flag. A missing user is not approved.
func (s *UserService) IsApproved(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := s.repo.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check approval: %w", err)
	}
	return user.Approved, nil
}

// GetUser returns a single account.
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*userdomain.User, error) {
	return operations.Execute(s.runner, ctx, "GetUser", userID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[*userdomain.User, error], error) {
		user, err := s.repo.GetByID(ctx, db, userID)
		if err != nil {
			if errors.Is(err, userdb.ErrNotFound) {
				return results.FailureResult[*userdomain.User, error](userdomain.ErrUserNotFound), nil
			}
			return results.OperationResult[*userdomain.User, error]{}, err
		}
		return results.SuccessResult[*userdomain.User, error](toDomain(user)), nil
	})
}

// ListWaitlist returns waitlisted users.
func (s *UserService) ListWaitlist(ctx context.Context, actor authdomain.Actor, limit int) ([]userdomain.User, error) {
	if limit <= 0 || limit > userdomain.MaxWaitlistPage {
		limit = userdomain.MaxWaitlistPage
	}

	return operations.Execute(s.runner, ctx, "ListWaitlist", actor.UserID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]userdomain.User, error], error) {
		if !actor.IsAdmin() {
			return results.FailureResult[[]userdomain.User, error](userdomain.ErrForbidden), nil
		}

		users, err := s.repo.ListUnapproved(ctx, db, limit)
		if err != nil {
			return results.OperationResult[[]userdomain.User, error]{}, err
		}

		out := make([]userdomain.User, 0, len(users))
		for i := range users {
			out = append(out, *toDomain(&users[i]))
		}
		return results.SuccessResult[[]userdomain.User, error](out), nil
	})
}

// ApproveUser lifts a user off the waitlist and announces it.
func (s *UserService) ApproveUser(ctx context.Context, actor authdomain.Actor, userID uuid.UUID) (*userdomain.User, error) {
	user, err := operations.Execute(s.runner, ctx, "ApproveUser", userID.String(), func(ctx context.Context, db bun.IDB) (results.OperationResult[*userdomain.User, error], error) {
		return s.approveUserLogic(ctx, db, actor, userID)
	})
	if err != nil {
		return nil, err
	}

	if err := eventbus.Publish(ctx, s.publisher, userdomain.UserApprovedTopic, userdomain.UserApprovedPayload{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		ApprovedBy:  actor.UserID,
		ApprovedAt:  derefTime(user.ApprovedAt),
	}); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish user approval",
			attr.ExtractCorrelationID(ctx),
			attr.UUID("user_id", userID),
			attr.Error(err),
		)
	}

	return user, nil
}

func (s *UserService) approveUserLogic(ctx context.Context, db bun.IDB, actor authdomain.Actor, userID uuid.UUID) (results.OperationResult[*userdomain.User, error], error) {
	if !actor.IsAdmin() {
		return results.FailureResult[*userdomain.User, error](userdomain.ErrForbidden), nil
	}

	if err := s.repo.MarkApproved(ctx, db, userID, s.now().UTC()); err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[*userdomain.User, error](userdomain.ErrUserNotFound), nil
		}
		return results.OperationResult[*userdomain.User, error]{}, err
	}

	user, err := s.repo.GetByID(ctx, db, userID)
	if err != nil {
		return results.OperationResult[*userdomain.User, error]{}, fmt.Errorf("failed to reload approved user: %w", err)
	}
	return results.SuccessResult[*userdomain.User, error](toDomain(user)), nil
}

func toDomain(u *userdb.User) *userdomain.User {
	return &userdomain.User{
		ID:          u.ID,
		Role:        authdomain.Role(u.Role),
		Approved:    u.Approved,
		DisplayName: u.DisplayName,
		ApprovedAt:  u.ApprovedAt,
		CreatedAt:   u.CreatedAt,
	}
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
