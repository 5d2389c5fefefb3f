package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/operator"
)

type OperatorGormRepository struct {
	db *gorm.DB
}

func NewOperatorGormRepository(db *gorm.DB) *OperatorGormRepository {
	return &OperatorGormRepository{db: db}
}

func (r *OperatorGormRepository) FindOperatorByEmail(
	ctx context.Context,
	email string,
) (*models.Operator, error) {

	var op models.Operator
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&op).Error; err != nil {
		return nil, operatorError(err)
	}
	return &op, nil
}

func (r *OperatorGormRepository) GetOperator(ctx context.Context, id uint) (*models.Operator, error) {
	var op models.Operator
	if err := r.db.WithContext(ctx).First(&op, id).Error; err != nil {
		return nil, operatorError(err)
	}
	return &op, nil
}

func (r *OperatorGormRepository) CreateOperator(ctx context.Context, op *models.Operator) error {
	if err := r.db.WithContext(ctx).Create(op).Error; err != nil {
		return storeError(err)
	}
	return nil
}

func operatorError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return operator.ErrNotFound
	}
	return storeError(err)
}

var _ operator.Store = (*OperatorGormRepository)(nil)
