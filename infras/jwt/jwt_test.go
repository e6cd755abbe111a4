package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lodge/config"
	"lodge/infras/jwt"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "lodge"
	cfg.JWT.AccessSecret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return cfg
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := jwt.New(testConfig())

	pair, err := svc.GenerateTokenPair("user-id-123", "johndoe", "customer")

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)

	assert.NoError(t, err)
	assert.Equal(t, "user-id-123", claims.UserID)
	assert.Equal(t, "johndoe", claims.Username)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, jwt.AccessToken, claims.Type)
	assert.NotEmpty(t, claims.TokenID)
}

func TestValidateToken_WrongType(t *testing.T) {
	svc := jwt.New(testConfig())

	pair, err := svc.GenerateTokenPair("user-id-123", "johndoe", "customer")
	assert.NoError(t, err)

	// A refresh token must not pass as an access token, the secrets differ.
	_, err = svc.ValidateToken(pair.RefreshToken, jwt.AccessToken)

	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.AccessExpireMin = -1

	svc := jwt.New(cfg)

	pair, err := svc.GenerateTokenPair("user-id-123", "johndoe", "customer")
	assert.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken, jwt.AccessToken)

	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := jwt.New(testConfig())

	_, err := svc.ValidateToken("not-a-token", jwt.AccessToken)

	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestRefreshTokens(t *testing.T) {
	svc := jwt.New(testConfig())

	pair, err := svc.GenerateTokenPair("user-id-123", "johndoe", "customer")
	assert.NoError(t, err)

	refreshed, err := svc.RefreshTokens(pair.RefreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	claims, err := svc.ValidateToken(refreshed.AccessToken, jwt.AccessToken)

	assert.NoError(t, err)
	assert.Equal(t, "user-id-123", claims.UserID)
	assert.Equal(t, "johndoe", claims.Username)
}

func TestRefreshTokens_RejectsAccessToken(t *testing.T) {
	svc := jwt.New(testConfig())

	pair, err := svc.GenerateTokenPair("user-id-123", "johndoe", "customer")
	assert.NoError(t, err)

	_, err = svc.RefreshTokens(pair.AccessToken)

	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer header", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "bearer without token", header: "Bearer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
