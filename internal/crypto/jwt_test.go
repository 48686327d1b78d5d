package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signClaims(t *testing.T, claims jwt.RegisteredClaims, secret string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}
	return s
}

func TestIssueAndParseToken(t *testing.T) {
	token, err := IssueToken("ci-pipeline", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() unexpected error: %v", err)
	}

	subject, err := ParseToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseToken() unexpected error: %v", err)
	}
	if subject != "ci-pipeline" {
		t.Errorf("ParseToken() subject = %q, want %q", subject, "ci-pipeline")
	}
}

func TestIssueTokenValidation(t *testing.T) {
	if _, err := IssueToken("", "secret", time.Hour); err != ErrEmptySubject {
		t.Errorf("IssueToken() error = %v, want %v", err, ErrEmptySubject)
	}
	if _, err := IssueToken("svc", "", time.Hour); err != ErrMissingSecret {
		t.Errorf("IssueToken() error = %v, want %v", err, ErrMissingSecret)
	}
}

func TestParseTokenRejects(t *testing.T) {
	secret := "test-secret"
	now := time.Now()
	valid := jwt.RegisteredClaims{
		Subject:   "svc",
		Issuer:    tokenIssuer,
		Audience:  jwt.ClaimStrings{tokenAudience},
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	wrongIssuer := valid
	wrongIssuer.Issuer = "someone-else"

	wrongAudience := valid
	wrongAudience.Audience = jwt.ClaimStrings{"other-api"}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))

	noExpiry := valid
	noExpiry.ExpiresAt = nil

	noSubject := valid
	noSubject.Subject = ""

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"malformed", "not-a-valid-token", secret},
		{"wrong secret", signClaims(t, valid, "other-secret"), secret},
		{"wrong issuer", signClaims(t, wrongIssuer, secret), secret},
		{"wrong audience", signClaims(t, wrongAudience, secret), secret},
		{"expired", signClaims(t, expired, secret), secret},
		{"no expiry", signClaims(t, noExpiry, secret), secret},
		{"no subject", signClaims(t, noSubject, secret), secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseToken(tt.token, tt.secret); err != ErrInvalidToken {
				t.Errorf("ParseToken() error = %v, want %v", err, ErrInvalidToken)
			}
		})
	}
}
