package votingservice

import (
	"context"
	"sync"

	submissiondb "github.com/Black-And-White-Club/clip-arena/app/modules/submission/infrastructure/repositories"
	votingdb "github.com/Black-And-White-Club/clip-arena/app/modules/voting/infrastructure/repositories"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type voteKey struct {
	voter      uuid.UUID
	submission uuid.UUID
}

// ------------------------
// Fake Voting Repo
// ------------------------

// FakeVotingRepo keeps votes and likes in memory unless a Func override is set.
type FakeVotingRepo struct {
	mu    sync.Mutex
	trace []string
	votes map[voteKey]int
	likes map[voteKey]bool

	UpsertVoteFunc        func(ctx context.Context, db bun.IDB, vote *votingdb.Vote) error
	RankHeldElsewhereFunc func(ctx context.Context, db bun.IDB, voterID, tournamentID, submissionID uuid.UUID, rank int) (bool, error)
	ListRanksFunc         func(ctx context.Context, db bun.IDB, submissionID uuid.UUID) ([]int, error)
}

func NewFakeVotingRepo() *FakeVotingRepo {
	return &FakeVotingRepo{
		trace: []string{},
		votes: map[voteKey]int{},
		likes: map[voteKey]bool{},
	}
}

func (f *FakeVotingRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeVotingRepo) UpsertVote(ctx context.Context, db bun.IDB, vote *votingdb.Vote) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpsertVote")
	if f.UpsertVoteFunc != nil {
		return f.UpsertVoteFunc(ctx, db, vote)
	}
	f.votes[voteKey{vote.VoterID, vote.SubmissionID}] = vote.Rank
	return nil
}

func (f *FakeVotingRepo) DeleteVote(ctx context.Context, db bun.IDB, voterID, submissionID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteVote")
	k := voteKey{voterID, submissionID}
	if _, ok := f.votes[k]; !ok {
		return false, nil
	}
	delete(f.votes, k)
	return true, nil
}

func (f *FakeVotingRepo) ListRanks(ctx context.Context, db bun.IDB, submissionID uuid.UUID) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListRanks")
	if f.ListRanksFunc != nil {
		return f.ListRanksFunc(ctx, db, submissionID)
	}
	return f.ranksOf(submissionID), nil
}

// ranksOf reads stored ranks; callers hold f.mu.
func (f *FakeVotingRepo) ranksOf(submissionID uuid.UUID) []int {
	var ranks []int
	for k, r := range f.votes {
		if k.submission == submissionID {
			ranks = append(ranks, r)
		}
	}
	return ranks
}

func (f *FakeVotingRepo) RankHeldElsewhere(ctx context.Context, db bun.IDB, voterID, tournamentID, submissionID uuid.UUID, rank int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("RankHeldElsewhere")
	if f.RankHeldElsewhereFunc != nil {
		return f.RankHeldElsewhereFunc(ctx, db, voterID, tournamentID, submissionID, rank)
	}
	return false, nil
}

func (f *FakeVotingRepo) LockVoterTournament(ctx context.Context, db bun.IDB, voterID, tournamentID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LockVoterTournament")
	return nil
}

func (f *FakeVotingRepo) InsertLike(ctx context.Context, db bun.IDB, like *votingdb.Like) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("InsertLike")
	k := voteKey{like.UserID, like.SubmissionID}
	if f.likes[k] {
		return false, nil
	}
	f.likes[k] = true
	return true, nil
}

func (f *FakeVotingRepo) DeleteLike(ctx context.Context, db bun.IDB, userID, submissionID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteLike")
	k := voteKey{userID, submissionID}
	if !f.likes[k] {
		return false, nil
	}
	delete(f.likes, k)
	return true, nil
}

func (f *FakeVotingRepo) CountLikes(ctx context.Context, db bun.IDB, submissionID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CountLikes")
	n := 0
	for k := range f.likes {
		if k.submission == submissionID {
			n++
		}
	}
	return n, nil
}

func (f *FakeVotingRepo) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeVotingRepo) VoteCount(submissionID uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for k := range f.votes {
		if k.submission == submissionID {
			n++
		}
	}
	return n
}

var _ votingdb.Repository = (*FakeVotingRepo)(nil)

// ------------------------
// Fake Submission Store
// ------------------------

type FakeSubmissionStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*submissiondb.Submission

	ListRankedFunc func(ctx context.Context, db bun.IDB, tournamentID uuid.UUID) ([]submissiondb.Submission, error)
	SetScoreFunc   func(ctx context.Context, db bun.IDB, id uuid.UUID, score int) error
}

func NewFakeSubmissionStore(rows ...submissiondb.Submission) *FakeSubmissionStore {
	f := &FakeSubmissionStore{rows: map[uuid.UUID]*submissiondb.Submission{}}
	for i := range rows {
		row := rows[i]
		f.rows[row.ID] = &row
	}
	return f
}

func (f *FakeSubmissionStore) get(id uuid.UUID) (*submissiondb.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, submissiondb.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (f *FakeSubmissionStore) GetByID(_ context.Context, _ bun.IDB, id uuid.UUID) (*submissiondb.Submission, error) {
	return f.get(id)
}

func (f *FakeSubmissionStore) LockByID(_ context.Context, _ bun.IDB, id uuid.UUID) (*submissiondb.Submission, error) {
	return f.get(id)
}

func (f *FakeSubmissionStore) SetScore(ctx context.Context, db bun.IDB, id uuid.UUID, score int) error {
	if f.SetScoreFunc != nil {
		return f.SetScoreFunc(ctx, db, id, score)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return submissiondb.ErrNotFound
	}
	row.Score = score
	return nil
}

func (f *FakeSubmissionStore) ListRanked(ctx context.Context, db bun.IDB, tournamentID uuid.UUID) ([]submissiondb.Submission, error) {
	if f.ListRankedFunc != nil {
		return f.ListRankedFunc(ctx, db, tournamentID)
	}
	return nil, nil
}

func (f *FakeSubmissionStore) ListIDs(_ context.Context, _ bun.IDB) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *FakeSubmissionStore) Score(id uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[id].Score
}

var _ SubmissionStore = (*FakeSubmissionStore)(nil)

// ------------------------
// Fake Publisher
// ------------------------

type FakePublisher struct {
	mu     sync.Mutex
	Topics []string
}

func (p *FakePublisher) Publish(topic string, messages ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Topics = append(p.Topics, topic)
	return nil
}

func (p *FakePublisher) Close() error { return nil }

var _ message.Publisher = (*FakePublisher)(nil)
