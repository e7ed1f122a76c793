package votinghandlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authdomain "github.com/Black-And-White-Club/clip-arena/app/modules/auth/domain"
	submissiondomain "github.com/Black-And-White-Club/clip-arena/app/modules/submission/domain"
	votingdomain "github.com/Black-And-White-Club/clip-arena/app/modules/voting/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func newRouter(svc *FakeService, actor *authdomain.Actor) http.Handler {
	h := NewVotingHandlers(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), noop.NewTracerProvider().Tracer("test"))
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if actor != nil {
				req = req.WithContext(authdomain.ContextWithActor(req.Context(), *actor))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Put("/api/submissions/{submissionID}/vote", h.HandleCastVote)
	r.Delete("/api/submissions/{submissionID}/vote", h.HandleRetractVote)
	r.Post("/api/submissions/{submissionID}/like", h.HandleToggleLike)
	r.Get("/api/tournaments/{tournamentID}/ranking", h.HandleGetRanking)
	return r
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body.Error.Code
}

func TestHandleCastVote(t *testing.T) {
	actor := authdomain.Actor{UserID: uuid.New(), Role: authdomain.RoleUser}
	path := "/api/submissions/" + uuid.NewString() + "/vote"

	tests := []struct {
		name       string
		path       string
		body       string
		actor      *authdomain.Actor
		castErr    error
		wantStatus int
		wantCode   string
		wantScore  int
	}{
		{name: "ok", path: path, body: `{"rank":1}`, actor: &actor, wantStatus: http.StatusOK, wantScore: 3},
		{name: "unauthenticated", path: path, body: `{"rank":1}`, wantStatus: http.StatusUnauthorized},
		{name: "bad submission id", path: "/api/submissions/nope/vote", body: `{"rank":1}`, actor: &actor, wantStatus: http.StatusBadRequest},
		{name: "unknown field", path: path, body: `{"rank":1,"weight":9}`, actor: &actor, wantStatus: http.StatusBadRequest},
		{name: "invalid rank", path: path, body: `{"rank":5}`, actor: &actor, castErr: votingdomain.ErrInvalidRank, wantStatus: http.StatusBadRequest},
		{name: "not approved", path: path, body: `{"rank":1}`, actor: &actor, castErr: votingdomain.ErrSubmissionNotApproved, wantStatus: http.StatusConflict},
		{name: "self vote", path: path, body: `{"rank":1}`, actor: &actor, castErr: votingdomain.ErrSelfVote, wantStatus: http.StatusForbidden, wantCode: "self_vote_not_allowed"},
		{name: "missing submission", path: path, body: `{"rank":2}`, actor: &actor, castErr: submissiondomain.ErrSubmissionNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &FakeService{}
			if tt.castErr != nil {
				svc.CastVoteFunc = func(context.Context, authdomain.Actor, uuid.UUID, int) (*votingdomain.VoteResult, error) {
					return nil, tt.castErr
				}
			}
			rr := httptest.NewRecorder()
			newRouter(svc, tt.actor).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rr))
			}
			if tt.wantStatus == http.StatusOK {
				var body struct {
					Data votingdomain.VoteResult `json:"data"`
				}
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, tt.wantScore, body.Data.Score)
			}
		})
	}
}

func TestHandleRetractVote_NoVote(t *testing.T) {
	actor := authdomain.Actor{UserID: uuid.New()}
	svc := &FakeService{
		RetractVoteFunc: func(context.Context, authdomain.Actor, uuid.UUID) (*votingdomain.VoteResult, error) {
			return nil, votingdomain.ErrVoteNotFound
		},
	}
	rr := httptest.NewRecorder()
	newRouter(svc, &actor).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/submissions/"+uuid.NewString()+"/vote", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandleToggleLike(t *testing.T) {
	actor := authdomain.Actor{UserID: uuid.New()}
	id := uuid.New()
	var gotActor uuid.UUID
	svc := &FakeService{
		ToggleLikeFunc: func(_ context.Context, a authdomain.Actor, sid uuid.UUID) (*votingdomain.LikeResult, error) {
			gotActor = a.UserID
			return &votingdomain.LikeResult{SubmissionID: sid, Liked: false, Likes: 4}, nil
		},
	}
	rr := httptest.NewRecorder()
	newRouter(svc, &actor).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/submissions/"+id.String()+"/like", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, actor.UserID, gotActor)
	var body struct {
		Data votingdomain.LikeResult `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.False(t, body.Data.Liked)
	assert.Equal(t, 4, body.Data.Likes)
}

func TestHandleGetRanking(t *testing.T) {
	tournamentID := uuid.New()
	svc := &FakeService{
		GetTournamentRankingFunc: func(_ context.Context, id uuid.UUID) ([]submissiondomain.RankedSubmission, error) {
			require.Equal(t, tournamentID, id)
			return []submissiondomain.RankedSubmission{
				{Position: 1, Submission: submissiondomain.Submission{ID: uuid.New(), Score: 6}},
				{Position: 2, Submission: submissiondomain.Submission{ID: uuid.New(), Score: 3}},
			}, nil
		},
	}
	rr := httptest.NewRecorder()
	newRouter(svc, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/tournaments/"+tournamentID.String()+"/ranking", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Data []submissiondomain.RankedSubmission `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, 1, body.Data[0].Position)
	assert.Equal(t, 6, body.Data[0].Score)
}
