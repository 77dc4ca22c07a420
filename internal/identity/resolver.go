package identity

import (
	"context"
	"log"
	"time"

	"github.com/Divya-010704/TripTeller/internal/repositories"
)

// Resolver turns account emails into display names for the response path.
// Resolution is best effort: a missing or unreachable directory entry falls
// back to the identity string itself and never fails the request. Display
// names are a projection only; stored engagement state always keeps the raw
// identity.
type Resolver interface {
	ResolveOne(ctx context.Context, identity string) string
	ResolveMany(ctx context.Context, identities []string) map[string]string
}

// DirectoryResolver resolves against the account directory.
type DirectoryResolver struct {
	users   repositories.UserRepository
	timeout time.Duration
}

const defaultDirectoryTimeout = 3 * time.Second

// NewDirectoryResolver creates a new DirectoryResolver. A non-positive
// timeout falls back to the default.
func NewDirectoryResolver(users repositories.UserRepository, timeout time.Duration) *DirectoryResolver {
	if timeout <= 0 {
		timeout = defaultDirectoryTimeout
	}
	return &DirectoryResolver{users: users, timeout: timeout}
}

// ResolveOne resolves a single identity.
func (r *DirectoryResolver) ResolveOne(ctx context.Context, identity string) string {
	return r.ResolveMany(ctx, []string{identity})[identity]
}

// ResolveMany resolves a batch of identities in one directory query. Every
// requested identity has an entry in the result.
func (r *DirectoryResolver) ResolveMany(ctx context.Context, identities []string) map[string]string {
	names := make(map[string]string, len(identities))
	for _, identity := range identities {
		names[identity] = identity
	}
	if len(identities) == 0 {
		return names
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	users, err := r.users.GetUsersByEmails(ctx, identities)
	if err != nil {
		log.Printf("identity resolution degraded to fallback names: %v", err)
		return names
	}
	for _, user := range users {
		names[user.Email] = user.Name
	}
	return names
}

// Names expands a liked_by set to display names. Output order follows the
// input set, which in turn follows insertion order of the likes.
func Names(ctx context.Context, r Resolver, identities []string) []string {
	resolved := r.ResolveMany(ctx, identities)
	names := make([]string, 0, len(identities))
	for _, identity := range identities {
		names = append(names, resolved[identity])
	}
	return names
}
