package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	appuser "github.com/tokoapi/storefront/application/user"
	"github.com/tokoapi/storefront/cmd/config"
	"github.com/tokoapi/storefront/constant"
	redismocks "github.com/tokoapi/storefront/mocks/repository/redis"
	usermocks "github.com/tokoapi/storefront/mocks/repository/user"
	"github.com/tokoapi/storefront/model"
	cerr "github.com/tokoapi/storefront/utils/errors"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-key-for-jwt-signing",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func TestUserApp_Register(t *testing.T) {
	req := &model.RegisterRequest{
		Name:     "Budi",
		Email:    "budi@example.com",
		Phone:    "081234567890",
		Password: "password123",
	}

	tests := []struct {
		name     string
		mockCall func(userRepo *usermocks.UserRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: new accounts always get the customer role",
			mockCall: func(userRepo *usermocks.UserRepository) {
				userRepo.On("Get", mock.Anything, &model.UserFilter{Email: req.Email}).Return(nil, nil).Once()
				userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: req.Phone}).Return(nil, nil).Once()
				userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.UserEntity) bool {
					return u.Email == req.Email && u.Role == constant.UserRoleUser && u.PasswordHash != req.Password
				})).Return(&model.UserEntity{ID: 1, Name: req.Name, Email: req.Email, Role: constant.UserRoleUser}, nil).Once()
			},
		},
		{
			name: "error: email taken",
			mockCall: func(userRepo *usermocks.UserRepository) {
				userRepo.On("Get", mock.Anything, &model.UserFilter{Email: req.Email}).
					Return(&model.UserEntity{ID: 2, Email: req.Email}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: phone taken",
			mockCall: func(userRepo *usermocks.UserRepository) {
				userRepo.On("Get", mock.Anything, &model.UserFilter{Email: req.Email}).Return(nil, nil).Once()
				userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: req.Phone}).
					Return(&model.UserEntity{ID: 2, Phone: req.Phone}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			userRepo := usermocks.NewUserRepository(t)
			redisRepo := redismocks.NewRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(userRepo)
			}
			app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)

			got, err := app.Register(context.Background(), req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.Email != req.Email {
				t.Fatalf("Register() email = %s, want %s", got.Email, req.Email)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	tests := []struct {
		name     string
		req      *model.LoginRequest
		mockCall func(userRepo *usermocks.UserRepository, redisRepo *redismocks.Repository)
		wantRole constant.UserRole
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: email login stores a role-aware session",
			req:  &model.LoginRequest{Identifier: "budi@example.com", Password: "password123"},
			mockCall: func(userRepo *usermocks.UserRepository, redisRepo *redismocks.Repository) {
				userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "budi@example.com"}).Return(&model.UserEntity{
					ID:           1,
					Name:         "Budi",
					Email:        "budi@example.com",
					Role:         constant.UserRoleUser,
					PasswordHash: string(hashedPassword),
				}, nil).Once()
				redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), constant.UserRoleUser, time.Hour).
					Return(nil).Once()
			},
			wantRole: constant.UserRoleUser,
		},
		{
			name: "success: phone login",
			req:  &model.LoginRequest{Identifier: "081234567890", Password: "password123"},
			mockCall: func(userRepo *usermocks.UserRepository, redisRepo *redismocks.Repository) {
				userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "081234567890"}).Return(&model.UserEntity{
					ID:           2,
					Role:         constant.UserRoleAdmin,
					PasswordHash: string(hashedPassword),
				}, nil).Once()
				redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(2), constant.UserRoleAdmin, time.Hour).
					Return(nil).Once()
			},
			wantRole: constant.UserRoleAdmin,
		},
		{
			name: "error: wrong password",
			req:  &model.LoginRequest{Identifier: "budi@example.com", Password: "salah123"},
			mockCall: func(userRepo *usermocks.UserRepository, redisRepo *redismocks.Repository) {
				userRepo.On("Get", mock.Anything, mock.Anything).Return(&model.UserEntity{
					ID:           1,
					PasswordHash: string(hashedPassword),
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: unknown identifier",
			req:  &model.LoginRequest{Identifier: "ghost@example.com", Password: "password123"},
			mockCall: func(userRepo *usermocks.UserRepository, redisRepo *redismocks.Repository) {
				userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			userRepo := usermocks.NewUserRepository(t)
			redisRepo := redismocks.NewRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(userRepo, redisRepo)
			}
			app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)

			got, err := app.Login(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.Token == "" {
				t.Fatal("Login() expected a token")
			}
			if got.Role != tt.wantRole {
				t.Fatalf("Login() role = %s, want %s", got.Role, tt.wantRole)
			}
		})
	}
}

func TestUserApp_ValidateToken(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// login produces a real signed token whose jti the session mocks key on
	login := func(t *testing.T, userRepo *usermocks.UserRepository, redisRepo *redismocks.Repository) string {
		t.Helper()
		userRepo.On("Get", mock.Anything, mock.Anything).Return(&model.UserEntity{
			ID:           1,
			Role:         constant.UserRoleUser,
			PasswordHash: string(hashedPassword),
		}, nil).Once()
		redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), constant.UserRoleUser, time.Hour).
			Return(nil).Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		resp, err := app.Login(context.Background(), &model.LoginRequest{
			Identifier: "budi@example.com",
			Password:   "password123",
		})
		if err != nil {
			t.Fatalf("login for token: %v", err)
		}
		return resp.Token
	}

	t.Run("success: valid token with live session", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)
		token := login(t, userRepo, redisRepo)

		redisRepo.On("GetSession", mock.Anything, mock.AnythingOfType("string")).
			Return(uint64(1), constant.UserRoleUser, nil).Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		userID, role, err := app.ValidateToken(context.Background(), token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if userID != 1 || role != constant.UserRoleUser {
			t.Fatalf("ValidateToken() = (%d, %s), want (1, %s)", userID, role, constant.UserRoleUser)
		}
	})

	t.Run("error: malformed token", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		if _, _, err := app.ValidateToken(context.Background(), "invalid.token.string"); err == nil {
			t.Fatal("ValidateToken() expected error")
		}
	})

	t.Run("error: session revoked", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)
		token := login(t, userRepo, redisRepo)

		redisRepo.On("GetSession", mock.Anything, mock.AnythingOfType("string")).
			Return(uint64(0), constant.UserRole(""), errors.New("session not found")).Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		if _, _, err := app.ValidateToken(context.Background(), token); err == nil {
			t.Fatal("ValidateToken() expected error")
		}
	})

	t.Run("error: session bound to another user", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)
		token := login(t, userRepo, redisRepo)

		redisRepo.On("GetSession", mock.Anything, mock.AnythingOfType("string")).
			Return(uint64(99), constant.UserRoleUser, nil).Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		if _, _, err := app.ValidateToken(context.Background(), token); err == nil {
			t.Fatal("ValidateToken() expected error")
		}
	})
}
