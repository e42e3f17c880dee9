package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryda/reconciler/internal/pkg/models"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60, // minutes
			Issuer:     "reconciler-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name   string
		userID uuid.UUID
		role   string
	}{
		{
			name:   "Driver token",
			userID: uuid.New(),
			role:   "driver",
		},
		{
			name:   "Passenger token",
			userID: uuid.New(),
			role:   "passenger",
		},
		{
			name:   "Empty role still generates",
			userID: uuid.New(),
			role:   "",
		},
		{
			name:   "Zero UUID still generates",
			userID: uuid.UUID{},
			role:   "driver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := getTestConfig()
			tokenString, expiresAt, err := GenerateToken(tt.userID, tt.role, config)

			require.NoError(t, err)
			assert.NotEmpty(t, tokenString)
			assert.Greater(t, expiresAt, time.Now().Unix())

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return []byte(config.JWT.Secret), nil
			})
			require.NoError(t, err)
			require.True(t, token.Valid)

			claims, ok := token.Claims.(jwt.MapClaims)
			require.True(t, ok)
			assert.Equal(t, tt.userID.String(), claims["user_id"])
			assert.Equal(t, tt.role, claims["role"])
			assert.Equal(t, config.JWT.Issuer, claims["iss"])
			assert.Equal(t, float64(expiresAt), claims["exp"])
		})
	}
}

func TestGenerateToken_ExpirationTime(t *testing.T) {
	config := getTestConfig()
	config.JWT.Expiration = 30

	beforeGeneration := time.Now()
	tokenString, expiresAt, err := GenerateToken(uuid.New(), "driver", config)
	afterGeneration := time.Now()

	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	assert.GreaterOrEqual(t, expiresAt, beforeGeneration.Add(30*time.Minute).Unix())
	assert.LessOrEqual(t, expiresAt, afterGeneration.Add(30*time.Minute).Unix())
}

func TestValidateToken(t *testing.T) {
	config := getTestConfig()
	userID := uuid.New()

	validToken, _, err := GenerateToken(userID, "driver", config)
	require.NoError(t, err)

	tests := []struct {
		name        string
		tokenString string
		secret      string
		setupToken  func() string
		expectError bool
	}{
		{
			name:        "Valid token",
			tokenString: validToken,
			secret:      config.JWT.Secret,
			expectError: false,
		},
		{
			name:        "Invalid secret",
			tokenString: validToken,
			secret:      "wrong-secret",
			expectError: true,
		},
		{
			name:        "Malformed token",
			tokenString: "invalid.token.string",
			secret:      config.JWT.Secret,
			expectError: true,
		},
		{
			name:        "Empty token",
			tokenString: "",
			secret:      config.JWT.Secret,
			expectError: true,
		},
		{
			name: "Expired token",
			setupToken: func() string {
				expiredConfig := *config
				expiredConfig.JWT.Expiration = -1
				token, _, _ := GenerateToken(userID, "driver", &expiredConfig)
				return token
			},
			secret:      config.JWT.Secret,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenToTest := tt.tokenString
			if tt.setupToken != nil {
				tokenToTest = tt.setupToken()
			}

			claims, err := ValidateToken(tokenToTest, tt.secret)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				require.NotNil(t, claims)

				claimsMap := *claims
				assert.Equal(t, userID.String(), claimsMap["user_id"])
				assert.Equal(t, "driver", claimsMap["role"])
				assert.Equal(t, config.JWT.Issuer, claimsMap["iss"])
			}
		})
	}
}
