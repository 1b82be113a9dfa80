package users

import (
	"context"

	"github.com/user/aquarealty/apperror"
	"github.com/user/aquarealty/models"
)

// TokenIssuer is satisfied by *auth.TokenIssuer.
type TokenIssuer interface {
	Issue(userID uint) (string, error)
}

// errInvalidCredentials is returned for an unknown email and for a wrong
// password alike, so clients cannot tell which half failed.
var errInvalidCredentials = apperror.NewNotFoundError("invalid credentials", nil)

// LoginService runs the login flow: email lookup, password check, token issue.
type LoginService struct {
	store  *Store
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewLoginService creates a LoginService.
func NewLoginService(store *Store, hasher PasswordHasher, tokens TokenIssuer) *LoginService {
	return &LoginService{store: store, hasher: hasher, tokens: tokens}
}

// Login returns the user and a freshly issued token when email and password
// match a stored account.
func (s *LoginService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if NormalizeEmail(email) == "" || password == "" {
		return nil, "", errInvalidCredentials
	}

	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, "", errInvalidCredentials
		}
		return nil, "", err
	}

	if !s.hasher.Verify(password, user.Password) {
		return nil, "", errInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", apperror.NewInternalError("failed to issue token", err)
	}

	// The digest never leaves this function.
	user.Password = ""
	return user, token, nil
}
