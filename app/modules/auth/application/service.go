package authservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	authjwt "github.com/Black-And-White-Club/clip-arena/app/modules/auth/infrastructure/jwt"
	"github.com/Black-And-White-Club/clip-arena/pkg/attr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// service implements the Service interface.
type service struct {
	jwtProvider authjwt.Provider
	users       UserDirectory
	logger      *slog.Logger
	tracer      trace.Tracer
}

// NewService creates a new auth service.
func NewService(
	jwtProvider authjwt.Provider,
	users UserDirectory,
	logger *slog.Logger,
	tracer trace.Tracer,
) Service {
	return &service{
		jwtProvider: jwtProvider,
		users:       users,
		logger:      logger,
		tracer:      tracer,
	}
}

// Authenticate validates the token and ensures a user row exists for the subject.
func (s *service) Authenticate(ctx context.Context, token string) (authdomain.Actor, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Authenticate")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return authdomain.Actor{}, ErrMissingToken
	}

	claims, err := s.jwtProvider.ValidateToken(token)
	if err != nil {
		s.logger.WarnContext(ctx, "Token validation failed",
			attr.ExtractCorrelationID(ctx),
			attr.Error(err),
		)
		if errors.Is(err, authjwt.ErrExpiredToken) {
			return authdomain.Actor{}, ErrExpiredToken
		}
		return authdomain.Actor{}, ErrInvalidToken
	}

	actor := authdomain.Actor{
		UserID:      claims.UserID,
		Role:        claims.Role,
		DisplayName: claims.DisplayName,
	}

	if err := s.users.EnsureUser(ctx, actor); err != nil {
		span.RecordError(err)
		return authdomain.Actor{}, fmt.Errorf("failed to provision user: %w", err)
	}

	return actor, nil
}

// IsApproved delegates to the user directory so every check hits the store.
func (s *service) IsApproved(ctx context.Context, userID uuid.UUID) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.IsApproved")
	defer span.End()

	return s.users.IsApproved(ctx, userID)
}

// IssueToken signs claims with the configured secret.
func (s *service) IssueToken(ctx context.Context, claims authdomain.Claims, ttl time.Duration) (string, error) {
	_, span := s.tracer.Start(ctx, "AuthService.IssueToken")
	defer span.End()

	if !claims.Role.IsValid() {
		return "", fmt.Errorf("%w: invalid role %q", ErrGenerateToken, claims.Role)
	}

	token, err := s.jwtProvider.GenerateToken(&claims, ttl)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerateToken, err)
	}
	return token, nil
}
