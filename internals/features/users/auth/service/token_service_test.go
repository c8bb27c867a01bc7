package service

import (
	"testing"

	"github.com/google/uuid"

	"kampusku_backend/internals/configs"
	userModel "kampusku_backend/internals/features/users/user/model"
)

func TestIssueAndParseRefreshToken(t *testing.T) {
	configs.JWTSecret = "access-secret"
	configs.JWTRefreshSecret = "refresh-secret"

	usr := userModel.UserModel{
		UserID:   uuid.New(),
		UserName: "Test Student",
		UserRole: "student",
	}

	pair, err := IssueTokens(usr)
	if err != nil {
		t.Fatalf("IssueTokens() error = %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("IssueTokens() returned empty token")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Fatal("access and refresh tokens must differ")
	}

	id, err := ParseRefreshToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("ParseRefreshToken() error = %v", err)
	}
	if id != usr.UserID.String() {
		t.Errorf("ParseRefreshToken() id = %s, want %s", id, usr.UserID)
	}
}

func TestParseRefreshTokenRejectsBadInput(t *testing.T) {
	configs.JWTSecret = "access-secret"
	configs.JWTRefreshSecret = "refresh-secret"

	usr := userModel.UserModel{UserID: uuid.New(), UserName: "X", UserRole: "student"}
	pair, err := IssueTokens(usr)
	if err != nil {
		t.Fatalf("IssueTokens() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "empty", token: ""},
		// access token ditandatangani dengan secret berbeda dan tanpa typ=refresh
		{name: "access token as refresh", token: pair.AccessToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRefreshToken(tt.token); err != ErrInvalidRefreshToken {
				t.Errorf("ParseRefreshToken(%q) error = %v, want ErrInvalidRefreshToken", tt.name, err)
			}
		})
	}
}
