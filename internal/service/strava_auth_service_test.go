package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"
	"training-plan-server/internal/apperr"
	"training-plan-server/internal/model"
	"training-plan-server/internal/repository"
	srv "training-plan-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStravaAuthService_ValidAccessToken(t *testing.T) {
	ctx := context.Background()
	stored := &model.UserTokens{UserID: "user-1", AccessToken: "old-access", RefreshToken: "old-refresh", ExpiresAt: 1000}

	tests := []struct {
		name        string
		setupMocks  func(s *MockTokenStore, o *MockOAuthClient)
		want        string
		expectErr   error
		expectCode  int
		wantRefresh bool
	}{
		{
			name: "no session",
			setupMocks: func(s *MockTokenStore, o *MockOAuthClient) {
				s.On("Get", ctx, "user-1").Return(nil, nil)
			},
			expectErr: apperr.ErrAuthRequired,
		},
		{
			name: "token still valid",
			setupMocks: func(s *MockTokenStore, o *MockOAuthClient) {
				s.On("Get", ctx, "user-1").Return(stored, nil)
				o.On("IsTokenExpired", int64(1000)).Return(false)
			},
			want: "old-access",
		},
		{
			name: "expired token is refreshed and the new access token is returned",
			setupMocks: func(s *MockTokenStore, o *MockOAuthClient) {
				s.On("Get", ctx, "user-1").Return(stored, nil)
				o.On("IsTokenExpired", int64(1000)).Return(true)
				o.On("RefreshAccessToken", mock.Anything, "old-refresh").Return(&model.TokenResponse{
					AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresAt: 5000,
				}, nil)
				s.On("Set", mock.Anything, "user-1", &model.UserTokens{
					UserID: "user-1", AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresAt: 5000,
				}).Return(nil)
			},
			want:        "new-access",
			wantRefresh: true,
		},
		{
			name: "refresh rejected clears the session",
			setupMocks: func(s *MockTokenStore, o *MockOAuthClient) {
				s.On("Get", ctx, "user-1").Return(stored, nil)
				o.On("IsTokenExpired", int64(1000)).Return(true)
				o.On("RefreshAccessToken", mock.Anything, "old-refresh").Return(nil, &apperr.ExternalAuthError{Op: "refresh", StatusCode: 400})
				s.On("Delete", mock.Anything, "user-1").Return(nil)
			},
			expectErr:   apperr.ErrAuthRequired,
			wantRefresh: true,
		},
		{
			name: "provider unavailable keeps the session",
			setupMocks: func(s *MockTokenStore, o *MockOAuthClient) {
				s.On("Get", ctx, "user-1").Return(stored, nil)
				o.On("IsTokenExpired", int64(1000)).Return(true)
				o.On("RefreshAccessToken", mock.Anything, "old-refresh").Return(nil, &apperr.ExternalAuthError{Op: "refresh", StatusCode: 503, Body: "maintenance"})
			},
			expectErr:   errors.New("maintenance"),
			expectCode:  http.StatusBadGateway,
			wantRefresh: true,
		},
		{
			name: "transport failure keeps the session",
			setupMocks: func(s *MockTokenStore, o *MockOAuthClient) {
				s.On("Get", ctx, "user-1").Return(stored, nil)
				o.On("IsTokenExpired", int64(1000)).Return(true)
				o.On("RefreshAccessToken", mock.Anything, "old-refresh").Return(nil, &apperr.ExternalAuthError{Op: "refresh", Err: errors.New("dial tcp: i/o timeout")})
			},
			expectErr:   errors.New("i/o timeout"),
			expectCode:  http.StatusBadGateway,
			wantRefresh: true,
		},
		{
			name: "storage failure",
			setupMocks: func(s *MockTokenStore, o *MockOAuthClient) {
				s.On("Get", ctx, "user-1").Return(nil, errors.New("connection reset"))
			},
			expectErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockTokenStore)
			oauth := new(MockOAuthClient)
			tt.setupMocks(store, oauth)
			service := srv.NewStravaAuthService(store, oauth, nil, model.PublicStravaConfig{})

			got, err := service.ValidAccessToken(ctx, "user-1")

			if tt.expectErr != nil {
				require.Error(t, err)
				if errors.Is(tt.expectErr, apperr.ErrAuthRequired) {
					assert.ErrorIs(t, err, apperr.ErrAuthRequired)
					assert.Equal(t, http.StatusUnauthorized, apperr.StatusCode(err))
				} else {
					assert.Contains(t, err.Error(), tt.expectErr.Error())
				}
				if tt.expectCode != 0 {
					assert.Equal(t, tt.expectCode, apperr.StatusCode(err))
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			if tt.wantRefresh {
				oauth.AssertNumberOfCalls(t, "RefreshAccessToken", 1)
			} else {
				oauth.AssertNotCalled(t, "RefreshAccessToken", mock.Anything, mock.Anything)
			}
			store.AssertExpectations(t)
			oauth.AssertExpectations(t)
		})
	}
}

func TestStravaAuthService_ConcurrentRefreshRunsOnce(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryTokenRepository()
	require.NoError(t, store.Set(ctx, "user-1", &model.UserTokens{
		UserID: "user-1", AccessToken: "old-access", RefreshToken: "old-refresh", ExpiresAt: 1000,
	}))

	release := make(chan struct{})
	oauth := new(MockOAuthClient)
	oauth.On("IsTokenExpired", int64(1000)).Return(true)
	oauth.On("IsTokenExpired", int64(5000)).Return(false)
	oauth.On("RefreshAccessToken", mock.Anything, "old-refresh").
		Run(func(mock.Arguments) { <-release }).
		Return(&model.TokenResponse{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresAt: 5000}, nil)

	service := srv.NewStravaAuthService(store, oauth, nil, model.PublicStravaConfig{})

	const callers = 8
	results := make([]string, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = service.ValidAccessToken(ctx, "user-1")
		}(i)
	}

	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "new-access", results[i])
	}
	oauth.AssertNumberOfCalls(t, "RefreshAccessToken", 1)
}

func TestStravaAuthService_CancelledCallerDoesNotBreakSharedRefresh(t *testing.T) {
	store := repository.NewMemoryTokenRepository()
	require.NoError(t, store.Set(context.Background(), "user-1", &model.UserTokens{
		UserID: "user-1", AccessToken: "old-access", RefreshToken: "old-refresh", ExpiresAt: 1000,
	}))

	started := make(chan struct{})
	release := make(chan struct{})
	var refreshCtxErr error
	oauth := new(MockOAuthClient)
	oauth.On("IsTokenExpired", int64(1000)).Return(true)
	oauth.On("RefreshAccessToken", mock.Anything, "old-refresh").
		Run(func(args mock.Arguments) {
			close(started)
			<-release
			refreshCtxErr = args.Get(0).(context.Context).Err()
		}).
		Return(&model.TokenResponse{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresAt: 5000}, nil).
		Once()

	service := srv.NewStravaAuthService(store, oauth, nil, model.PublicStravaConfig{})

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := service.ValidAccessToken(firstCtx, "user-1")
		firstErr <- err
	}()
	<-started

	var second string
	secondErr := make(chan error, 1)
	go func() {
		var err error
		second, err = service.ValidAccessToken(context.Background(), "user-1")
		secondErr <- err
	}()
	time.Sleep(100 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	require.NoError(t, <-secondErr)
	assert.Equal(t, "new-access", second)
	assert.NoError(t, refreshCtxErr)

	tokens, err := store.Get(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, tokens)
	assert.Equal(t, "new-refresh", tokens.RefreshToken)
	oauth.AssertNumberOfCalls(t, "RefreshAccessToken", 1)
}

func TestStravaAuthService_Exchange(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		code        string
		state       string
		setupMocks  func(s *MockTokenStore, o *MockOAuthClient, st *MockStateSigner)
		expectCode  int
		wantAthlete bool
	}{
		{
			name:       "missing code",
			code:       "",
			setupMocks: func(s *MockTokenStore, o *MockOAuthClient, st *MockStateSigner) {},
			expectCode: http.StatusBadRequest,
		},
		{
			name:  "invalid state",
			code:  "auth-code",
			state: "forged",
			setupMocks: func(s *MockTokenStore, o *MockOAuthClient, st *MockStateSigner) {
				st.On("Verify", "forged", "user-1", "app://cb").Return(errors.New("signature is invalid"))
			},
			expectCode: http.StatusUnauthorized,
		},
		{
			name: "provider rejects the code",
			code: "used-code",
			setupMocks: func(s *MockTokenStore, o *MockOAuthClient, st *MockStateSigner) {
				o.On("ExchangeCode", ctx, "used-code", "app://cb").Return(nil, &apperr.ExternalAuthError{Op: "exchange", StatusCode: 400})
			},
			expectCode: http.StatusUnauthorized,
		},
		{
			name:  "success replaces the stored record",
			code:  "auth-code",
			state: "signed",
			setupMocks: func(s *MockTokenStore, o *MockOAuthClient, st *MockStateSigner) {
				st.On("Verify", "signed", "user-1", "app://cb").Return(nil)
				o.On("ExchangeCode", ctx, "auth-code", "app://cb").Return(&model.TokenResponse{
					AccessToken: "a", RefreshToken: "r", ExpiresAt: 1900000000, Athlete: &model.Athlete{ID: 7},
				}, nil)
				s.On("Set", ctx, "user-1", &model.UserTokens{UserID: "user-1", AccessToken: "a", RefreshToken: "r", ExpiresAt: 1900000000}).Return(nil)
			},
			expectCode:  http.StatusOK,
			wantAthlete: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockTokenStore)
			oauth := new(MockOAuthClient)
			signer := new(MockStateSigner)
			tt.setupMocks(store, oauth, signer)
			service := srv.NewStravaAuthService(store, oauth, signer, model.PublicStravaConfig{})

			result, err := service.Exchange(ctx, "user-1", tt.code, "app://cb", tt.state)

			assert.Equal(t, tt.expectCode, apperr.StatusCode(err))
			if tt.wantAthlete {
				require.NotNil(t, result)
				assert.Equal(t, int64(7), result.Athlete.ID)
				assert.Equal(t, int64(1900000000), result.ExpiresAt)
			}
			if tt.expectCode != http.StatusOK {
				store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
			}
			store.AssertExpectations(t)
			oauth.AssertExpectations(t)
			signer.AssertExpectations(t)
		})
	}
}

func TestStravaAuthService_LogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryTokenRepository()
	require.NoError(t, store.Set(ctx, "user-1", &model.UserTokens{UserID: "user-1", AccessToken: "a", RefreshToken: "r", ExpiresAt: 1000}))

	oauth := new(MockOAuthClient)
	oauth.On("RevokeToken", ctx, "a").Return(&apperr.ExternalAuthError{Op: "revoke", StatusCode: 500})
	service := srv.NewStravaAuthService(store, oauth, nil, model.PublicStravaConfig{})

	require.NoError(t, service.Logout(ctx, "user-1"))
	require.NoError(t, service.Logout(ctx, "user-1"))

	tokens, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, tokens)
	oauth.AssertNumberOfCalls(t, "RevokeToken", 1)
}

func TestStravaAuthService_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	revoked := false
	server, cfg := newStravaServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/token":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(tokenJSON))
		case "/oauth/deauthorize":
			revoked = true
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	oauth := srv.NewStravaOAuthClient(cfg, server.Client())
	srv.SetClock(oauth, func() time.Time { return time.Unix(1_800_000_000, 0) })
	service := srv.NewStravaAuthService(repository.NewMemoryTokenRepository(), oauth, nil, model.PublicStravaConfig{})

	authenticated, err := service.Check(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, authenticated)

	result, err := service.Exchange(ctx, "user-1", "auth-code", "app://cb", "")
	require.NoError(t, err)
	assert.Equal(t, "runner", result.Athlete.Username)

	authenticated, err = service.Check(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, authenticated)

	require.NoError(t, service.Logout(ctx, "user-1"))
	assert.True(t, revoked)

	authenticated, err = service.Check(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, authenticated)
}

func TestStravaAuthService_AuthorizationURL(t *testing.T) {
	oauth := new(MockOAuthClient)
	signer := new(MockStateSigner)
	signer.On("Sign", "user-1", "app://cb").Return("signed", nil)
	oauth.On("AuthorizationURL", "signed", "app://cb").Return("https://strava.test/authorize?state=signed")
	service := srv.NewStravaAuthService(new(MockTokenStore), oauth, signer, model.PublicStravaConfig{})

	req, err := service.AuthorizationURL("user-1", "app://cb")

	require.NoError(t, err)
	assert.Equal(t, "signed", req.State)
	assert.Equal(t, "https://strava.test/authorize?state=signed", req.URL)

	_, err = service.AuthorizationURL("", "app://cb")
	assert.Equal(t, http.StatusBadRequest, apperr.StatusCode(err))
}
