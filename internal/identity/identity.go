// Package identity abstracts the managed identity provider that owns
// credentials and group membership. Profile data lives in the record store,
// not here.
package identity

import (
	"context"
	"errors"
)

// ErrNotAuthorized is returned for a bad or expired credential, a disabled
// account, or a failed password check.
var ErrNotAuthorized = errors.New("not authorized")

// Identity describes the caller behind a bearer credential. Username is the
// provider-side account name (the profile record's primary key); Sub is the
// stable subject identifier used as the ownership id on listings and orders.
type Identity struct {
	Username string
	Sub      string
	Email    string
}

type Provider interface {
	// GetUser validates an access token and returns the caller's identity.
	GetUser(ctx context.Context, accessToken string) (*Identity, error)
	// ListGroups returns the names of the groups the account belongs to.
	ListGroups(ctx context.Context, username string) ([]string, error)
	// AdminCreateUser provisions an account with a suppressed invitation
	// message and returns the assigned username.
	AdminCreateUser(ctx context.Context, email string) (string, error)
	// AdminSetPassword sets a permanent password on the account.
	AdminSetPassword(ctx context.Context, username, password string) error
	AdminAddUserToGroup(ctx context.Context, username, group string) error
	// AdminDisableUser disables provider-side login. The profile record is
	// not touched.
	AdminDisableUser(ctx context.Context, username string) error
	// AdminInitiateAuth exchanges email+password for an identity token via
	// the administrative, non-interactive flow.
	AdminInitiateAuth(ctx context.Context, email, password string) (string, error)
}
