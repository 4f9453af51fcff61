package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrOTPInvalid is returned when no matching OTP exists or it expired.
var ErrOTPInvalid = errors.New("invalid or expired OTP")

// OTPStore issues and verifies one-time email verification codes.
// Codes live in Redis with a TTL, so expiry needs no sweeper.
type OTPStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOTPStore builds the store.
func NewOTPStore(client *redis.Client, ttl time.Duration) *OTPStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &OTPStore{client: client, ttl: ttl}
}

// Issue generates a six digit code for the email and stores it with TTL,
// replacing any previous code.
func (s *OTPStore) Issue(ctx context.Context, email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, otpKey(email), code, s.ttl).Err(); err != nil {
		return "", err
	}
	return code, nil
}

// Verify checks the code for the email and consumes it on success.
func (s *OTPStore) Verify(ctx context.Context, email, code string) error {
	stored, err := s.client.GetDel(ctx, otpKey(email)).Result()
	if err == redis.Nil {
		return ErrOTPInvalid
	}
	if err != nil {
		return err
	}
	if stored != code {
		return ErrOTPInvalid
	}
	return nil
}

func otpKey(email string) string {
	return "otp:" + email
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
