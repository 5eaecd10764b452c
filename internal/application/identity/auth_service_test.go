package identity

import (
	"context"
	"testing"
	"time"

	domainidentity "github.com/assettrack/backend/internal/domain/identity"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/assettrack/backend/internal/infrastructure/auth"
	"github.com/assettrack/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "unit-test-secret-unit-test-secret",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "assettrack-test",
		MaxRefreshCount:        3,
	})
}

func newAuthServiceWithMocks() (*AuthService, *MockUserRepository, *auth.JWTService) {
	userRepo := new(MockUserRepository)
	jwtService := newTestJWTService()
	svc := NewAuthService(userRepo, jwtService, auth.NewInMemoryTokenBlacklist())
	return svc, userRepo, jwtService
}

func mustUser(t *testing.T, role domainidentity.Role) *domainidentity.User {
	t.Helper()
	user, err := domainidentity.NewUser("jordan.lee", "correct-horse-1", role)
	require.NoError(t, err)
	user.ClearDomainEvents()
	return user
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return tokens and user info", func(t *testing.T) {
		svc, userRepo, jwtService := newAuthServiceWithMocks()
		user := mustUser(t, domainidentity.RoleManager)

		userRepo.On("FindByUsername", ctx, "jordan.lee").Return(user, nil)
		userRepo.On("Save", ctx, user).Return(nil)

		resp, err := svc.Login(ctx, LoginRequest{Username: "jordan.lee", Password: "correct-horse-1", IP: "10.0.0.5"})
		require.NoError(t, err)

		assert.Equal(t, "jordan.lee", resp.User.Username)
		assert.Equal(t, "manager", resp.User.Role)
		assert.Equal(t, "10.0.0.5", user.LastLoginIP)
		require.NotNil(t, resp.Tokens)

		claims, err := jwtService.ValidateAccessToken(resp.Tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, "manager", claims.Role)
	})

	t.Run("unknown username returns invalid credentials", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceWithMocks()
		userRepo.On("FindByUsername", ctx, "ghost").Return(nil, shared.ErrNotFound)

		_, err := svc.Login(ctx, LoginRequest{Username: "ghost", Password: "whatever1"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("wrong password records a failure", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceWithMocks()
		user := mustUser(t, domainidentity.RoleViewer)

		userRepo.On("FindByUsername", ctx, "jordan.lee").Return(user, nil)
		userRepo.On("Save", ctx, user).Return(nil)

		_, err := svc.Login(ctx, LoginRequest{Username: "jordan.lee", Password: "wrong-password-9"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
		assert.Equal(t, 1, user.FailedAttempts)
	})

	t.Run("too many failures lock the account", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceWithMocks()
		svc.SetConfig(AuthServiceConfig{MaxLoginAttempts: 2, LockDuration: 15 * time.Minute})
		user := mustUser(t, domainidentity.RoleViewer)

		userRepo.On("FindByUsername", ctx, "jordan.lee").Return(user, nil)
		userRepo.On("Save", ctx, user).Return(nil)

		_, err := svc.Login(ctx, LoginRequest{Username: "jordan.lee", Password: "wrong-password-9"})
		require.Error(t, err)

		_, err = svc.Login(ctx, LoginRequest{Username: "jordan.lee", Password: "wrong-password-9"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_LOCKED", domainErr.Code)
		assert.True(t, user.IsLocked())

		// Even the right password is refused while locked
		_, err = svc.Login(ctx, LoginRequest{Username: "jordan.lee", Password: "correct-horse-1"})
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_LOCKED", domainErr.Code)
	})

	t.Run("deactivated account cannot sign in", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceWithMocks()
		user := mustUser(t, domainidentity.RoleViewer)
		require.NoError(t, user.Deactivate())

		userRepo.On("FindByUsername", ctx, "jordan.lee").Return(user, nil)

		_, err := svc.Login(ctx, LoginRequest{Username: "jordan.lee", Password: "correct-horse-1"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_INACTIVE", domainErr.Code)
		userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	login := func(t *testing.T, svc *AuthService, userRepo *MockUserRepository, user *domainidentity.User) *LoginResponse {
		t.Helper()
		userRepo.On("FindByUsername", ctx, user.Username).Return(user, nil).Once()
		userRepo.On("Save", ctx, user).Return(nil).Once()
		resp, err := svc.Login(ctx, LoginRequest{Username: user.Username, Password: "correct-horse-1"})
		require.NoError(t, err)
		return resp
	}

	t.Run("valid refresh token rotates the pair with the current role", func(t *testing.T) {
		svc, userRepo, jwtService := newAuthServiceWithMocks()
		user := mustUser(t, domainidentity.RoleViewer)
		resp := login(t, svc, userRepo, user)

		// Role change after login shows up on the next refresh
		require.NoError(t, user.SetRole(domainidentity.RoleManager))
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		refreshed, err := svc.RefreshToken(ctx, RefreshTokenRequest{RefreshToken: resp.Tokens.RefreshToken})
		require.NoError(t, err)

		claims, err := jwtService.ValidateAccessToken(refreshed.Tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "manager", claims.Role)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		svc, _, _ := newAuthServiceWithMocks()

		_, err := svc.RefreshToken(ctx, RefreshTokenRequest{RefreshToken: "not.a.token"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
	})

	t.Run("deactivated user cannot refresh", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceWithMocks()
		user := mustUser(t, domainidentity.RoleViewer)
		resp := login(t, svc, userRepo, user)

		require.NoError(t, user.Deactivate())
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		_, err := svc.RefreshToken(ctx, RefreshTokenRequest{RefreshToken: resp.Tokens.RefreshToken})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_INACTIVE", domainErr.Code)
	})

	t.Run("rotation limit maps to a domain error", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceWithMocks()
		user := mustUser(t, domainidentity.RoleViewer)
		resp := login(t, svc, userRepo, user)
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		current := resp.Tokens.RefreshToken
		for i := 0; i < 3; i++ {
			refreshed, err := svc.RefreshToken(ctx, RefreshTokenRequest{RefreshToken: current})
			require.NoError(t, err)
			current = refreshed.Tokens.RefreshToken
		}

		_, err := svc.RefreshToken(ctx, RefreshTokenRequest{RefreshToken: current})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "TOKEN_MAX_REFRESH", domainErr.Code)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes the token for its remaining lifetime", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		jwtService := newTestJWTService()
		blacklist := new(MockTokenBlacklist)
		svc := NewAuthService(userRepo, jwtService, blacklist)

		user := mustUser(t, domainidentity.RoleViewer)
		pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{UserID: user.ID, Username: user.Username})
		require.NoError(t, err)
		claims, err := jwtService.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)

		blacklist.On("AddToBlacklist", ctx, claims.ID, mock.AnythingOfType("time.Duration")).Return(nil)

		require.NoError(t, svc.Logout(ctx, claims))
		blacklist.AssertExpectations(t)
	})

	t.Run("nil claims are rejected", func(t *testing.T) {
		svc, _, _ := newAuthServiceWithMocks()

		err := svc.Logout(ctx, nil)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("changes the password and revokes older tokens", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		jwtService := newTestJWTService()
		blacklist := new(MockTokenBlacklist)
		svc := NewAuthService(userRepo, jwtService, blacklist)

		user := mustUser(t, domainidentity.RoleViewer)
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		userRepo.On("Save", ctx, user).Return(nil)
		blacklist.On("AddUserTokensToBlacklist", ctx, user.ID.String(), 24*time.Hour).Return(nil)

		err := svc.ChangePassword(ctx, user.ID, ChangePasswordRequest{
			OldPassword: "correct-horse-1",
			NewPassword: "battery-staple-2",
		})
		require.NoError(t, err)

		assert.True(t, user.VerifyPassword("battery-staple-2"))
		blacklist.AssertExpectations(t)
	})

	t.Run("wrong current password is rejected", func(t *testing.T) {
		svc, userRepo, _ := newAuthServiceWithMocks()
		user := mustUser(t, domainidentity.RoleViewer)
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		err := svc.ChangePassword(ctx, user.ID, ChangePasswordRequest{
			OldPassword: "nope-nope-3",
			NewPassword: "battery-staple-2",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PASSWORD", domainErr.Code)
		userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, _ := newAuthServiceWithMocks()
	user := mustUser(t, domainidentity.RoleAdmin)
	require.NoError(t, user.SetDisplayName("Jordan Lee"))

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	info, err := svc.GetCurrentUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "jordan.lee", info.Username)
	assert.Equal(t, "Jordan Lee", info.DisplayName)
	assert.Equal(t, "admin", info.Role)
}
