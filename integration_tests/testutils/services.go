package testutils

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	accesscodeservice "github.com/Black-And-White-Club/clip-arena/app/modules/accesscode/application"
	accesscodedb "github.com/Black-And-White-Club/clip-arena/app/modules/accesscode/infrastructure/repositories"
	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	leaderboardservice "github.com/Black-And-White-Club/clip-arena/app/modules/leaderboard/application"
	leaderboarddb "github.com/Black-And-White-Club/clip-arena/app/modules/leaderboard/infrastructure/repositories"
	submissionservice "github.com/Black-And-White-Club/clip-arena/app/modules/submission/application"
	submissiondomain "github.com/Black-And-White-Club/clip-arena/app/modules/submission/domain"
	submissiondb "github.com/Black-And-White-Club/clip-arena/app/modules/submission/infrastructure/repositories"
	tournamentservice "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/application"
	tournamentdomain "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/domain"
	tournamentdb "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/infrastructure/repositories"
	userservice "github.com/Black-And-White-Club/clip-arena/app/modules/user/application"
	userdb "github.com/Black-And-White-Club/clip-arena/app/modules/user/infrastructure/repositories"
	votingservice "github.com/Black-And-White-Club/clip-arena/app/modules/voting/application"
	votingdomain "github.com/Black-And-White-Club/clip-arena/app/modules/voting/domain"
	votingdb "github.com/Black-And-White-Club/clip-arena/app/modules/voting/infrastructure/repositories"
	"github.com/Black-And-White-Club/clip-arena/pkg/observability"
)

// Services is every application service wired against the real database,
// with silent logging and no event publisher.
type Services struct {
	User        *userservice.UserService
	AccessCode  *accesscodeservice.AccessCodeService
	Tournament  *tournamentservice.TournamentService
	Submission  *submissionservice.SubmissionService
	Voting      *votingservice.VotingService
	Leaderboard *leaderboardservice.LeaderboardService
}

// NewServices wires the services for env using rules for the voting engine.
func NewServices(env *TestEnvironment, rules votingdomain.Rules) *Services {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewNoopMetrics()
	tracer := noop.NewTracerProvider().Tracer("test")

	users := userdb.NewRepository(env.DB)
	tournaments := tournamentdb.NewRepository(env.DB)
	submissions := submissiondb.NewRepository(env.DB)

	return &Services{
		User: userservice.NewUserService(users, nil, logger, metrics, tracer, env.DB),
		AccessCode: accesscodeservice.NewAccessCodeService(
			accesscodedb.NewRepository(env.DB), users, nil,
			accesscodeservice.Options{CodeLength: 8, MaxQuantity: 500},
			logger, metrics, tracer, env.DB,
		),
		Tournament:  tournamentservice.NewTournamentService(tournaments, logger, metrics, tracer, env.DB),
		Submission:  submissionservice.NewSubmissionService(submissions, tournaments, nil, logger, metrics, tracer, env.DB),
		Voting:      votingservice.NewVotingService(votingdb.NewRepository(env.DB), submissions, nil, rules, logger, metrics, tracer, env.DB),
		Leaderboard: leaderboardservice.NewLeaderboardService(leaderboarddb.NewRepository(env.DB), logger, metrics, tracer),
	}
}

// CreateUser persists actor the way the auth gate does on first request.
func (s *Services) CreateUser(t *testing.T, actor authdomain.Actor) {
	t.Helper()
	require.NoError(t, s.User.EnsureUser(context.Background(), actor))
}

// ActiveTournament creates an active tournament owned by admin.
func (s *Services) ActiveTournament(t *testing.T, admin authdomain.Actor, name string) *tournamentdomain.Tournament {
	t.Helper()
	tr, err := s.Tournament.CreateTournament(context.Background(), admin, name, tournamentdomain.StatusActive)
	require.NoError(t, err)
	return tr
}

// ApprovedSubmission submits a clip for author and approves it as admin.
func (s *Services) ApprovedSubmission(t *testing.T, admin, author authdomain.Actor, tournamentID uuid.UUID, title string) *submissiondomain.Submission {
	t.Helper()
	ctx := context.Background()
	sub, err := s.Submission.SubmitClip(ctx, author, tournamentID, submissiondomain.Draft{
		Title:   title,
		ClipURL: "https://clips.example.com/" + author.UserID.String(),
	})
	require.NoError(t, err)

	approved, err := s.Submission.ModerateSubmission(ctx, admin, sub.ID, submissiondomain.StatusApproved)
	require.NoError(t, err)
	return approved
}
