// Package memory holds the in-memory repositories backing the ledger.
// State lives for the process lifetime only and is owned by the single
// operator goroutine.
package memory

import (
	"context"
	"fmt"

	"github.com/api-sage/bank-operations-console/internal/domain"
)

type AccountRepository struct {
	accounts map[int64]domain.Account
	nextID   int64
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[int64]domain.Account)}
}

// Create assigns the next identifier and stores the account. Identifiers
// are monotonic and never reused, even after Delete.
func (r *AccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	r.nextID++
	account.ID = r.nextID
	r.accounts[account.ID] = account
	return account, nil
}

func (r *AccountRepository) GetByID(_ context.Context, id int64) (domain.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: id=%d", domain.ErrAccountNotFound, id)
	}
	return account, nil
}

// ListByUserID returns the accounts owned by userID in no particular order.
func (r *AccountRepository) ListByUserID(_ context.Context, userID int64) ([]domain.Account, error) {
	owned := make([]domain.Account, 0)
	for _, account := range r.accounts {
		if account.UserID == userID {
			owned = append(owned, account)
		}
	}
	return owned, nil
}

func (r *AccountRepository) Update(_ context.Context, account domain.Account) error {
	if _, ok := r.accounts[account.ID]; !ok {
		return fmt.Errorf("%w: id=%d", domain.ErrAccountNotFound, account.ID)
	}
	r.accounts[account.ID] = account
	return nil
}

func (r *AccountRepository) Delete(_ context.Context, id int64) error {
	if _, ok := r.accounts[id]; !ok {
		return fmt.Errorf("%w: id=%d", domain.ErrAccountNotFound, id)
	}
	delete(r.accounts, id)
	return nil
}
