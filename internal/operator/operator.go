package operator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const RoleAdmin = "admin"

var ErrNotFound = errors.New("operator not found")

// Store looks operators up for login and seeds the first one.
type Store interface {
	FindOperatorByEmail(ctx context.Context, email string) (*models.Operator, error)
	GetOperator(ctx context.Context, id uint) (*models.Operator, error)
	CreateOperator(ctx context.Context, op *models.Operator) error
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(op *models.Operator, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)) == nil
}

// EnsureAdmin creates the admin operator for email unless it already
// exists. Existing passwords are never overwritten.
func EnsureAdmin(ctx context.Context, store Store, email, password string) (*models.Operator, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("admin email and password are required")
	}

	existing, err := store.FindOperatorByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	op := &models.Operator{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hashed,
		Role:         RoleAdmin,
	}
	if err := store.CreateOperator(ctx, op); err != nil {
		return nil, err
	}
	return op, nil
}
