package identity

import (
	"context"
	"testing"
	"time"

	"github.com/Divya-010704/TripTeller/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]string // email -> name
	err   error
	calls int
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if name, ok := f.users[email]; ok {
		return &models.User{Name: name, Email: email}, nil
	}
	return nil, models.NewNotFoundError("user", email)
}

func (f *fakeUserRepo) GetUsersByEmails(ctx context.Context, emails []string) ([]models.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var users []models.User
	for _, email := range emails {
		if name, ok := f.users[email]; ok {
			users = append(users, models.User{Name: name, Email: email})
		}
	}
	return users, nil
}

func TestResolveManyBatchesOneQuery(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]string{
		"a@x.com": "Asha",
		"b@x.com": "Bhavin",
	}}
	resolver := NewDirectoryResolver(repo, time.Second)

	names := resolver.ResolveMany(context.Background(), []string{"a@x.com", "b@x.com", "ghost@x.com"})
	assert.Equal(t, "Asha", names["a@x.com"])
	assert.Equal(t, "Bhavin", names["b@x.com"])
	assert.Equal(t, "ghost@x.com", names["ghost@x.com"])
	assert.Equal(t, 1, repo.calls)
}

func TestResolveManyFallsBackOnDirectoryFailure(t *testing.T) {
	repo := &fakeUserRepo{err: models.NewUpstreamError("directory down", assert.AnError)}
	resolver := NewDirectoryResolver(repo, time.Second)

	names := resolver.ResolveMany(context.Background(), []string{"a@x.com"})
	assert.Equal(t, "a@x.com", names["a@x.com"])
}

func TestResolveOne(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]string{"a@x.com": "Asha"}}
	resolver := NewDirectoryResolver(repo, 0) // falls back to the default timeout

	assert.Equal(t, "Asha", resolver.ResolveOne(context.Background(), "a@x.com"))
	assert.Equal(t, "nobody@x.com", resolver.ResolveOne(context.Background(), "nobody@x.com"))
}

func TestNamesKeepInputOrder(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]string{
		"a@x.com": "Asha",
		"c@x.com": "Chitra",
	}}
	resolver := NewDirectoryResolver(repo, time.Second)

	names := Names(context.Background(), resolver, []string{"c@x.com", "b@x.com", "a@x.com"})
	require.Len(t, names, 3)
	assert.Equal(t, []string{"Chitra", "b@x.com", "Asha"}, names)
}
