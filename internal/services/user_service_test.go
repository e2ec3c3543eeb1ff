package services_test

import (
	"fmt"
	"testing"

	"gostore/internal/models"
	"gostore/internal/repositories"
	"gostore/internal/services"
	"gostore/pkg/hashing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testJWTSecret = "test_jwt_secret"

func TestUserService_Register(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := services.NewUserService(userRepo, testJWTSecret)

	userRepo.On("GetByEmail", "alice@example.com").Return(nil, repositories.ErrNotFound).Once()
	userRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		user := args.Get(0).(*models.User)
		// The stored password is never the submitted plaintext.
		assert.NotEqual(t, "password123", user.Password)
		assert.True(t, hashing.IsHashed(user.Password))
		assert.True(t, user.IsActive)
	}).Return(nil).Once()

	user, err := service.Register("Alice", "alice@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	userRepo.AssertExpectations(t)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := services.NewUserService(userRepo, testJWTSecret)

	userRepo.On("GetByEmail", "alice@example.com").Return(&models.User{ID: 5, Email: "alice@example.com"}, nil).Once()

	_, err := service.Register("Alice", "alice@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrConflict)
	userRepo.AssertNotCalled(t, "Create")
}

func TestUserService_Login(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := services.NewUserService(userRepo, testJWTSecret)

	user, err := models.NewUser("Alice", "alice@example.com", "password123")
	assert.NoError(t, err)
	user.ID = 5

	userRepo.On("GetByEmail", "alice@example.com").Return(user, nil).Once()

	token, err := service.Login("alice@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, float64(5), claims["user_id"])
	assert.Equal(t, "alice@example.com", claims["email"])

	// Wrong password.
	userRepo.On("GetByEmail", "alice@example.com").Return(user, nil).Once()
	_, err = service.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Unknown email yields the same vague error.
	userRepo.On("GetByEmail", "bob@example.com").Return(nil, repositories.ErrNotFound).Once()
	_, err = service.Login("bob@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// An infrastructure failure is not a credential rejection.
	userRepo.On("GetByEmail", "alice@example.com").Return(nil, assert.AnError).Once()
	_, err = service.Login("alice@example.com", "password123")
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestUserService_ValidateToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := services.NewUserService(userRepo, testJWTSecret)

	user, err := models.NewUser("Alice", "alice@example.com", "password123")
	assert.NoError(t, err)
	user.ID = 5
	userRepo.On("GetByEmail", "alice@example.com").Return(user, nil).Once()

	token, err := service.Login("alice@example.com", "password123")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, float64(5), claims["user_id"])

	_, err = service.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestUserService_List_ClampsLimit(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := services.NewUserService(userRepo, testJWTSecret)

	// Requests beyond the page cap are clamped to 50, never rejected.
	userRepo.On("GetAll", 0, 50).Return([]models.User{}, nil).Once()
	_, err := service.List(-5, 500)
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestUserService_Delete(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := services.NewUserService(userRepo, testJWTSecret)

	userRepo.On("Delete", uint(5)).Return(nil).Once()
	assert.NoError(t, service.Delete(5))

	userRepo.On("Delete", uint(99)).Return(repositories.ErrNotFound).Once()
	err := service.Delete(99)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
