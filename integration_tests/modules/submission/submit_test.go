package submissionintegrationtests

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	submissiondomain "github.com/Black-And-White-Club/clip-arena/app/modules/submission/domain"
	tournamentdomain "github.com/Black-And-White-Club/clip-arena/app/modules/tournament/domain"
	votingdomain "github.com/Black-And-White-Club/clip-arena/app/modules/voting/domain"
	"github.com/Black-And-White-Club/clip-arena/integration_tests/testutils"
)

func TestSubmitClip(t *testing.T) {
	tests := []struct {
		name        string
		status      tournamentdomain.Status
		submitTwice bool
		wantErr     error
	}{
		{name: "active tournament accepts", status: tournamentdomain.StatusActive},
		{name: "second submission is a duplicate", status: tournamentdomain.StatusActive, submitTwice: true, wantErr: submissiondomain.ErrDuplicateSubmission},
		{name: "upcoming tournament rejects", status: tournamentdomain.StatusUpcoming, wantErr: submissiondomain.ErrTournamentNotActive},
		{name: "ended tournament rejects", status: tournamentdomain.StatusEnded, wantErr: submissiondomain.ErrTournamentNotActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutils.GetEnvironment(t)
			svc := testutils.NewServices(env, votingdomain.Rules{})
			gen := testutils.NewTestDataGenerator(3)
			ctx := context.Background()

			admin, author := gen.Admin(), gen.Actor()
			svc.CreateUser(t, admin)
			svc.CreateUser(t, author)

			tr, err := svc.Tournament.CreateTournament(ctx, admin, "Spring Cup", tt.status)
			require.NoError(t, err)

			draft := submissiondomain.Draft{Title: gen.Title(), ClipURL: "https://clips.example.com/a"}
			if tt.submitTwice {
				_, err := svc.Submission.SubmitClip(ctx, author, tr.ID, draft)
				require.NoError(t, err)
			}

			sub, err := svc.Submission.SubmitClip(ctx, author, tr.ID, draft)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, submissiondomain.StatusPending, sub.Status)
			assert.Zero(t, sub.Score)
		})
	}
}

func TestSubmitClip_ConcurrentDuplicatesStoreOne(t *testing.T) {
	env := testutils.GetEnvironment(t)
	svc := testutils.NewServices(env, votingdomain.Rules{})
	gen := testutils.NewTestDataGenerator(5)
	ctx := context.Background()

	admin, author := gen.Admin(), gen.Actor()
	svc.CreateUser(t, admin)
	svc.CreateUser(t, author)
	tr := svc.ActiveTournament(t, admin, "Race Cup")

	const attempts = 8
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		successes  int
		duplicates int
	)
	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.Submission.SubmitClip(ctx, author, tr.ID, submissiondomain.Draft{
				Title:   "Same clip",
				ClipURL: "https://clips.example.com/same",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, submissiondomain.ErrDuplicateSubmission):
				duplicates++
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, duplicates)

	all, err := svc.Submission.ListSubmissions(ctx, tr.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestModerateSubmission_ApproveRejectAndBack(t *testing.T) {
	env := testutils.GetEnvironment(t)
	svc := testutils.NewServices(env, votingdomain.Rules{})
	gen := testutils.NewTestDataGenerator(9)
	ctx := context.Background()

	admin, author := gen.Admin(), gen.Actor()
	svc.CreateUser(t, admin)
	svc.CreateUser(t, author)
	tr := svc.ActiveTournament(t, admin, "Moderated Cup")

	sub, err := svc.Submission.SubmitClip(ctx, author, tr.ID, submissiondomain.Draft{Title: "Clip", ClipURL: "https://clips.example.com/m"})
	require.NoError(t, err)

	_, err = svc.Submission.ModerateSubmission(ctx, author, sub.ID, submissiondomain.StatusApproved)
	require.ErrorIs(t, err, submissiondomain.ErrForbidden)

	for _, status := range []submissiondomain.Status{
		submissiondomain.StatusApproved,
		submissiondomain.StatusRejected,
		submissiondomain.StatusPending,
		submissiondomain.StatusApproved,
	} {
		got, err := svc.Submission.ModerateSubmission(ctx, admin, sub.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}

	approved, err := svc.Submission.ListSubmissions(ctx, tr.ID, submissiondomain.StatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, sub.ID, approved[0].ID)
}
