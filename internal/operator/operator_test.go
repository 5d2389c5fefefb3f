package operator

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type fakeStore struct {
	byEmail map[string]*models.Operator
	nextID  uint
}

func (s *fakeStore) FindOperatorByEmail(ctx context.Context, email string) (*models.Operator, error) {
	if op, ok := s.byEmail[email]; ok {
		return op, nil
	}
	return nil, ErrNotFound
}

func (s *fakeStore) GetOperator(ctx context.Context, id uint) (*models.Operator, error) {
	for _, op := range s.byEmail {
		if op.ID == id {
			return op, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fakeStore) CreateOperator(ctx context.Context, op *models.Operator) error {
	s.nextID++
	op.ID = s.nextID
	s.byEmail[op.Email] = op
	return nil
}

func TestEnsureAdmin_CreatesOnce(t *testing.T) {
	store := &fakeStore{byEmail: map[string]*models.Operator{}}
	ctx := context.Background()

	op, err := EnsureAdmin(ctx, store, " Admin@Shop.test ", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin@shop.test", op.Email)
	assert.Equal(t, RoleAdmin, op.Role)
	assert.True(t, CheckPassword(op, "s3cret"))
	assert.False(t, CheckPassword(op, "wrong"))

	again, err := EnsureAdmin(ctx, store, "admin@shop.test", "changed")
	require.NoError(t, err)
	assert.Equal(t, op.ID, again.ID)
	assert.True(t, CheckPassword(again, "s3cret"))
}

func TestEnsureAdmin_RequiresCredentials(t *testing.T) {
	store := &fakeStore{byEmail: map[string]*models.Operator{}}
	_, err := EnsureAdmin(context.Background(), store, "", "x")
	assert.Error(t, err)
}

func TestToken_RoundTrip(t *testing.T) {
	op := &models.Operator{ID: 3, Role: RoleAdmin}

	raw, err := IssueToken("secret", op, time.Now())
	require.NoError(t, err)

	claims, err := ParseToken("secret", raw, time.Now)
	require.NoError(t, err)
	assert.Equal(t, Claims{OperatorID: 3, Role: RoleAdmin}, claims)
}

func TestToken_ExpiryFollowsClock(t *testing.T) {
	op := &models.Operator{ID: 3, Role: RoleAdmin}
	issued := time.Date(2025, 3, 10, 16, 30, 0, 0, time.UTC)
	at := func(t time.Time) func() time.Time { return func() time.Time { return t } }

	raw, err := IssueToken("secret", op, issued)
	require.NoError(t, err)

	_, err = ParseToken("secret", raw, at(issued))
	assert.NoError(t, err)

	_, err = ParseToken("secret", raw, at(issued.Add(TokenTTL+time.Second)))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestToken_Rejected(t *testing.T) {
	op := &models.Operator{ID: 3, Role: RoleAdmin}

	raw, err := IssueToken("secret", op, time.Now())
	require.NoError(t, err)
	_, err = ParseToken("other", raw, time.Now)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := IssueToken("secret", op, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)
	_, err = ParseToken("secret", expired, time.Now)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "admin"})
	rawNoSub, err := noSub.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = ParseToken("secret", rawNoSub, time.Now)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
