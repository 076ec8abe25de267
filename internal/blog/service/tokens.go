package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/aussiebroadwan/blog/internal/blog/domain"
	"github.com/aussiebroadwan/blog/pkg/jwtx"
)

type TokenService struct {
	KeyManager *jwtx.KeyManager
	Users      *UserService
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Now is the clock used for issuing and expiry checks. Defaults to time.Now.
	Now func() time.Time
}

func (s *TokenService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *TokenService) ttl(kind jwtx.Kind) time.Duration {
	ttl := s.AccessTTL
	if kind == jwtx.KindRefresh {
		ttl = s.RefreshTTL
	}
	if ttl <= 0 {
		return jwtx.DefaultTokenTTL
	}
	return ttl
}

// IssueAccessToken mints a token that authorizes requests as userID.
func (s *TokenService) IssueAccessToken(userID int64) (domain.Token, error) {
	return s.issue(userID, jwtx.KindAccess)
}

// IssueRefreshToken mints a token that can only be exchanged for a new
// access token.
func (s *TokenService) IssueRefreshToken(userID int64) (domain.Token, error) {
	return s.issue(userID, jwtx.KindRefresh)
}

func (s *TokenService) issue(userID int64, kind jwtx.Kind) (domain.Token, error) {
	signer := s.KeyManager.GetSigner()
	if signer == nil {
		return domain.Token{}, errors.New("service: no signing key available")
	}

	ttl := s.ttl(kind)
	claims := jwtx.NewClaims(strconv.FormatInt(userID, 10), kind, ttl, s.Issuer, s.now())

	value, err := signer.Sign(claims)
	if err != nil {
		return domain.Token{}, err
	}
	return domain.Token{Value: value, ExpiresIn: ttl}, nil
}

// Validate checks raw and returns the user id it was issued to. Checks run
// in this order: structure, expiry (on the decoded claims, so an expired
// token is reported as expired whatever its signature), signature and
// issuer, then kind. Failures are *TokenFailure.
func (s *TokenService) Validate(raw string, expected jwtx.Kind) (int64, error) {
	claims, err := s.ValidateToken(raw, expected)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(claims.Subject, 10, 64)
}

// ValidateToken is Validate returning the verified claims. It lets
// TokenService act as the validator behind httpx.AuthnMiddleware.
func (s *TokenService) ValidateToken(raw string, expected jwtx.Kind) (jwtx.Claims, error) {
	decoded, err := jwtx.Decode(raw)
	if err != nil {
		return jwtx.Claims{}, tokenFailure(TokenInvalid, err)
	}
	if decoded.ExpiresAt == nil {
		return jwtx.Claims{}, tokenFailure(TokenInvalid, errors.New("missing exp"))
	}

	if err := decoded.ValidateExpiryAt(s.now()); err != nil {
		if errors.Is(err, jwtx.ErrExpired) {
			return jwtx.Claims{}, tokenFailure(TokenExpired, err)
		}
		return jwtx.Claims{}, tokenFailure(TokenInvalid, err)
	}

	claims, err := s.KeyManager.Verifier.Verify(raw)
	if err != nil {
		return jwtx.Claims{}, tokenFailure(TokenInvalid, err)
	}

	if err := claims.ValidateKind(expected); err != nil {
		return jwtx.Claims{}, tokenFailure(TokenWrongKind, err)
	}

	if _, err := strconv.ParseInt(claims.Subject, 10, 64); err != nil {
		return jwtx.Claims{}, tokenFailure(TokenInvalid, errors.New("subject is not a user id"))
	}

	return claims, nil
}

// Refresh exchanges a refresh token for a new access token. The refresh token
// is not consumed and stays valid until it expires.
func (s *TokenService) Refresh(raw string) (domain.Token, error) {
	userID, err := s.Validate(raw, jwtx.KindRefresh)
	if err != nil {
		return domain.Token{}, err
	}
	return s.IssueAccessToken(userID)
}

// Login verifies the credentials and issues an access and refresh token.
func (s *TokenService) Login(ctx context.Context, username, password string) (domain.TokenPair, error) {
	user, err := s.Users.Verify(ctx, username, password)
	if err != nil {
		return domain.TokenPair{}, err
	}

	access, err := s.IssueAccessToken(user.ID)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := s.IssueRefreshToken(user.ID)
	if err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{
		AccessToken:  access.Value,
		RefreshToken: refresh.Value,
		TokenType:    "Bearer",
		ExpiresIn:    access.ExpiresIn,
	}, nil
}
