package message

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woofwoof-app/backend/internal/domain"
	"github.com/woofwoof-app/backend/internal/repository"
)

type fakeMatchRepo struct {
	matches map[int]*domain.Match
}

func (r *fakeMatchRepo) Create(ctx context.Context, match *domain.Match) (bool, error) {
	return false, nil
}

func (r *fakeMatchRepo) GetByID(ctx context.Context, id int) (*domain.Match, error) {
	m, ok := r.matches[id]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	return m, nil
}

func (r *fakeMatchRepo) GetByDogs(ctx context.Context, dog1ID, dog2ID int) (*domain.Match, error) {
	return nil, nil
}

func (r *fakeMatchRepo) GetActiveByDogIDs(ctx context.Context, dogIDs []int) ([]*domain.Match, error) {
	return nil, nil
}

func (r *fakeMatchRepo) UpdateStatus(ctx context.Context, id int, isActive bool) error { return nil }

type fakeDogRepo struct {
	dogs map[int]*domain.Dog
}

func (r *fakeDogRepo) Create(ctx context.Context, dog *domain.Dog) error { return nil }

func (r *fakeDogRepo) GetByID(ctx context.Context, id int) (*domain.Dog, error) {
	d, ok := r.dogs[id]
	if !ok {
		return nil, domain.ErrDogNotFound
	}
	return d, nil
}

func (r *fakeDogRepo) GetByOwnerID(ctx context.Context, ownerID int) ([]*domain.Dog, error) {
	var out []*domain.Dog
	for _, d := range r.dogs {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDogRepo) Update(ctx context.Context, dog *domain.Dog) error { return nil }
func (r *fakeDogRepo) Delete(ctx context.Context, id int) error          { return nil }

func (r *fakeDogRepo) Discover(ctx context.Context, filter repository.DiscoverFilter) ([]*domain.Dog, error) {
	return nil, nil
}

func (r *fakeDogRepo) Search(ctx context.Context, excludeOwnerID int, filter repository.SearchFilter) ([]*domain.Dog, error) {
	return nil, nil
}

type fakeMessageRepo struct {
	messages  []*domain.Message
	readCalls []int
	nextID    int
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *domain.Message) error {
	r.nextID++
	message.ID = r.nextID
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeMessageRepo) ListByMatch(ctx context.Context, matchID int, limit, offset int) ([]*domain.Message, error) {
	var out []*domain.Message
	for _, m := range r.messages {
		if m.MatchID == matchID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) MarkRead(ctx context.Context, matchID, readerID int) error {
	r.readCalls = append(r.readCalls, readerID)
	for _, m := range r.messages {
		if m.MatchID == matchID && m.SenderID != readerID {
			m.IsRead = true
		}
	}
	return nil
}

func newTestEnv() (*UseCase, *fakeMessageRepo) {
	matchRepo := &fakeMatchRepo{matches: map[int]*domain.Match{
		1: {ID: 1, Dog1ID: 10, Dog2ID: 20, IsActive: true},
	}}
	dogRepo := &fakeDogRepo{dogs: map[int]*domain.Dog{
		10: {ID: 10, OwnerID: 1},
		20: {ID: 20, OwnerID: 2},
		30: {ID: 30, OwnerID: 3},
	}}
	messageRepo := &fakeMessageRepo{}
	return NewUseCase(matchRepo, dogRepo, messageRepo), messageRepo
}

func TestSendMessage(t *testing.T) {
	uc, repo := newTestEnv()
	ctx := context.Background()

	msg, err := uc.SendMessage(ctx, 1, 1, &SendMessageRequest{Content: "  Salut !  "})
	require.NoError(t, err)
	assert.Equal(t, "Salut !", msg.Content)
	assert.Equal(t, 1, msg.SenderID)
	assert.Len(t, repo.messages, 1)
}

func TestSendMessageEmpty(t *testing.T) {
	uc, _ := newTestEnv()

	_, err := uc.SendMessage(context.Background(), 1, 1, &SendMessageRequest{Content: "   "})
	assert.ErrorIs(t, err, domain.ErrMessageEmpty)
}

func TestSendMessageNotParticipant(t *testing.T) {
	uc, _ := newTestEnv()

	_, err := uc.SendMessage(context.Background(), 3, 1, &SendMessageRequest{Content: "Salut"})
	assert.ErrorIs(t, err, domain.ErrNotMatchParticipant)
}

func TestSendMessageUnknownMatch(t *testing.T) {
	uc, _ := newTestEnv()

	_, err := uc.SendMessage(context.Background(), 1, 99, &SendMessageRequest{Content: "Salut"})
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
}

func TestListMessagesMarksRead(t *testing.T) {
	uc, repo := newTestEnv()
	ctx := context.Background()

	_, err := uc.SendMessage(ctx, 1, 1, &SendMessageRequest{Content: "Salut"})
	require.NoError(t, err)
	_, err = uc.SendMessage(ctx, 2, 1, &SendMessageRequest{Content: "Coucou"})
	require.NoError(t, err)

	messages, err := uc.ListMessages(ctx, 1, 1, 0, 0)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	// The other side's message is now read, ours is not.
	for _, m := range repo.messages {
		if m.SenderID == 2 {
			assert.True(t, m.IsRead)
		} else {
			assert.False(t, m.IsRead)
		}
	}
}

func TestListMessagesNotParticipant(t *testing.T) {
	uc, _ := newTestEnv()

	_, err := uc.ListMessages(context.Background(), 3, 1, 0, 0)
	assert.ErrorIs(t, err, domain.ErrNotMatchParticipant)
}
