package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func testConfig() Config {
	return Config{
		Secret:         "test-secret-do-not-use-in-prod",
		Issuer:         "pos-backoffice",
		Audience:       "pos-clients",
		ExpirationDays: 7,
	}
}

// signWith 手工构造一个令牌，用于伪造各种非法场景
func signWith(t *testing.T, secret string, claims *Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	return signed
}

func baseClaims(cfg Config, expiresAt time.Time) *Claims {
	return &Claims{
		Email: "ann@x.com",
		Name:  "Ann",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
}

func TestManager_IssueVerifyRoundtrip(t *testing.T) {
	m := NewManager(testConfig())
	userID := uuid.New()

	signed, expiresAt, err := m.Issue(userID, "ann@x.com", "Ann")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// 过期时间 ≈ now + 7 天
	want := time.Now().UTC().Add(7 * 24 * time.Hour)
	if diff := expiresAt.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Errorf("expiresAt = %v, want ~%v", expiresAt, want)
	}

	claims, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	got, err := claims.UserID()
	if err != nil {
		t.Fatalf("claims.UserID failed: %v", err)
	}
	if got != userID {
		t.Errorf("subject = %v, want %v", got, userID)
	}
	if claims.Email != "ann@x.com" || claims.Name != "Ann" {
		t.Errorf("claims = %q/%q, want ann@x.com/Ann", claims.Email, claims.Name)
	}
	if claims.ID == "" {
		t.Error("jti should be set")
	}
}

func TestManager_JTIUnique(t *testing.T) {
	m := NewManager(testConfig())
	userID := uuid.New()

	t1, _, err := m.Issue(userID, "ann@x.com", "Ann")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	t2, _, err := m.Issue(userID, "ann@x.com", "Ann")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	c1, _ := m.Verify(t1)
	c2, _ := m.Verify(t2)
	if c1.ID == c2.ID {
		t.Error("two tokens should carry distinct jti")
	}
}

func TestManager_DefaultExpirationDays(t *testing.T) {
	cfg := testConfig()
	cfg.ExpirationDays = 0
	m := NewManager(cfg)

	_, expiresAt, err := m.Issue(uuid.New(), "ann@x.com", "Ann")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	want := time.Now().UTC().Add(DefaultExpirationDays * 24 * time.Hour)
	if diff := expiresAt.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Errorf("expiresAt = %v, want default window ~%v", expiresAt, want)
	}
}

func TestManager_VerifyRejections(t *testing.T) {
	cfg := testConfig()
	m := NewManager(cfg)

	wrongIssuer := baseClaims(cfg, time.Now().Add(time.Hour))
	wrongIssuer.Issuer = "someone-else"

	wrongAudience := baseClaims(cfg, time.Now().Add(time.Hour))
	wrongAudience.Audience = jwt.ClaimStrings{"other-clients"}

	tests := []struct {
		name  string
		token string
	}{
		{"expired", signWith(t, cfg.Secret, baseClaims(cfg, time.Now().Add(-time.Second)))},
		{"wrong key", signWith(t, "attacker-key", baseClaims(cfg, time.Now().Add(time.Hour)))},
		{"wrong issuer", signWith(t, cfg.Secret, wrongIssuer)},
		{"wrong audience", signWith(t, cfg.Secret, wrongAudience)},
		{"garbage", "not.a.token"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 所有失败统一返回 ErrInvalidToken，不泄露具体原因
			if _, err := m.Verify(tt.token); err != ErrInvalidToken {
				t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestManager_FutureTokenStillValid(t *testing.T) {
	cfg := testConfig()
	m := NewManager(cfg)

	signed := signWith(t, cfg.Secret, baseClaims(cfg, time.Now().Add(time.Hour)))
	if _, err := m.Verify(signed); err != nil {
		t.Errorf("token expiring in 1h should verify, got %v", err)
	}
}
