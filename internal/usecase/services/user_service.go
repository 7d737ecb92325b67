package services

import (
	"context"

	"github.com/api-sage/bank-operations-console/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-operations-console/internal/domain"
	"github.com/api-sage/bank-operations-console/internal/logger"
)

// AccountOpener opens the first account for a newly created user.
type AccountOpener interface {
	Open(ctx context.Context, userID int64) (domain.Account, error)
}

type UserService struct {
	userRepo repo_interfaces.UserRepository
	accounts AccountOpener
}

func NewUserService(userRepo repo_interfaces.UserRepository, accounts AccountOpener) *UserService {
	return &UserService{userRepo: userRepo, accounts: accounts}
}

// Create registers a user under a unique login and opens their first
// account. Every user owns at least one account from this point on.
func (s *UserService) Create(ctx context.Context, login string) (domain.User, error) {
	user, err := s.userRepo.Create(ctx, domain.User{Login: login})
	if err != nil {
		logger.Error("user service create user failed", err, logger.Fields{
			"login": login,
		})
		return domain.User{}, err
	}

	account, err := s.accounts.Open(ctx, user.ID)
	if err != nil {
		return domain.User{}, err
	}

	user.AccountIDs = append(user.AccountIDs, account.ID)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return domain.User{}, err
	}

	logger.Info("user service create user", logger.Fields{
		"userId":    user.ID,
		"login":     login,
		"accountId": account.ID,
	})

	return user, nil
}

func (s *UserService) FindByID(ctx context.Context, id int64) (domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

// AddAccount appends accountID to the user's account list. The account and
// user stores share no transaction, so the caller drives both sides.
func (s *UserService) AddAccount(ctx context.Context, userID, accountID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.AccountIDs = append(user.AccountIDs, accountID)
	return s.userRepo.Update(ctx, user)
}

// RemoveAccount drops accountID from the user's account list after the
// account store has already closed the account.
func (s *UserService) RemoveAccount(ctx context.Context, userID, accountID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	kept := make([]int64, 0, len(user.AccountIDs))
	for _, id := range user.AccountIDs {
		if id != accountID {
			kept = append(kept, id)
		}
	}
	user.AccountIDs = kept

	return s.userRepo.Update(ctx, user)
}
