package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/actrac/actrac-server/internal/models"
	"github.com/actrac/actrac-server/internal/repositories"
	"github.com/actrac/actrac-server/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter)

	tests := []struct {
		name         string
		username     string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			username: "alice",
			email:    "alice@example.com",
			password: "pass123",
		},
		{
			name:         "user already exists",
			username:     "bob",
			email:        "bob@example.com",
			password:     "pass123",
			existingUser: &models.UserDB{ID: 7},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			email:     "eve@example.com",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "duplicate lost the insert race",
			username:  "carol",
			email:     "carol@example.com",
			password:  "pass123",
			writerErr: repositories.ErrDuplicateUser,
			wantErr:   services.ErrUserAlreadyExists,
		},
		{
			name:      "writer error",
			username:  "dave",
			email:     "dave@example.com",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), &tt.username, &tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, tt.email, gomock.Any()).
					DoAndReturn(func(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error) {
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						// The stored credential must be a real bcrypt hash of the password.
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(tt.password)))
						return &models.UserDB{ID: 1, Username: username, Email: email, PasswordHash: passwordHash}, nil
					})
			}

			user, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.username, user.Username)
			assert.Equal(t, tt.email, user.Email)
			assert.Equal(t, int64(1), user.ID)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	storedUser := &models.UserDB{
		ID:           42,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}

	tests := []struct {
		name      string
		email     string
		password  string
		user      *models.UserDB
		readerErr error
		wantErr   error
	}{
		{
			name:     "successful login",
			email:    "alice@example.com",
			password: "correct-password",
			user:     storedUser,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrong-password",
			user:     storedUser,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "correct-password",
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "alice@example.com",
			password:  "correct-password",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), gomock.Nil(), &tt.email).
				Return(tt.user, tt.readerErr)

			user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(42), user.ID)
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "alice@example.com", user.Email)
		})
	}
}
