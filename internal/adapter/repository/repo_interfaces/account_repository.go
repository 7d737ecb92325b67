package repo_interfaces

import (
	"context"

	"github.com/api-sage/bank-operations-console/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	GetByID(ctx context.Context, id int64) (domain.Account, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.Account, error)
	Update(ctx context.Context, account domain.Account) error
	Delete(ctx context.Context, id int64) error
}
