package services

import (
	"context"
	"fmt"

	"github.com/api-sage/bank-operations-console/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-operations-console/internal/domain"
	"github.com/api-sage/bank-operations-console/internal/logger"
	"github.com/shopspring/decimal"
)

// AccountService owns account balance rules: opening balance, non-negative
// balances, the last-account constraint, and the cross-user transfer
// commission.
type AccountService struct {
	accountRepo          repo_interfaces.AccountRepository
	defaultAccountAmount int64
	transferCommission   decimal.Decimal
}

func NewAccountService(
	accountRepo repo_interfaces.AccountRepository,
	defaultAccountAmount int64,
	transferCommission float64,
) *AccountService {
	return &AccountService{
		accountRepo:          accountRepo,
		defaultAccountAmount: defaultAccountAmount,
		transferCommission:   decimal.NewFromFloat(transferCommission),
	}
}

// Open creates an account for userID with the configured opening balance.
func (s *AccountService) Open(ctx context.Context, userID int64) (domain.Account, error) {
	account, err := s.accountRepo.Create(ctx, domain.Account{
		UserID:  userID,
		Balance: s.defaultAccountAmount,
	})
	if err != nil {
		return domain.Account{}, err
	}

	logger.Info("account service open account", logger.Fields{
		"accountId": account.ID,
		"userId":    userID,
		"balance":   account.Balance,
	})

	return account, nil
}

func (s *AccountService) FindByID(ctx context.Context, id int64) (domain.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}

func (s *AccountService) ListForUser(ctx context.Context, userID int64) ([]domain.Account, error) {
	return s.accountRepo.ListByUserID(ctx, userID)
}

func (s *AccountService) Deposit(ctx context.Context, accountID int64, amount int64) error {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount=%d", domain.ErrInvalidAmount, amount)
	}

	account.Balance += amount
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return err
	}

	logger.Info("account service deposit", logger.Fields{
		"accountId": accountID,
		"amount":    amount,
		"balance":   account.Balance,
	})

	return nil
}

func (s *AccountService) Withdraw(ctx context.Context, accountID int64, amount int64) error {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount=%d", domain.ErrInvalidAmount, amount)
	}
	if account.Balance < amount {
		return fmt.Errorf("%w: id=%d, balance=%d, requested=%d",
			domain.ErrInsufficientFunds, accountID, account.Balance, amount)
	}

	account.Balance -= amount
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return err
	}

	logger.Info("account service withdraw", logger.Fields{
		"accountId": accountID,
		"amount":    amount,
		"balance":   account.Balance,
	})

	return nil
}

// Close removes the account and moves its full balance onto another account
// of the same owner. Which surviving account absorbs the balance is
// unspecified. A user's only account cannot be closed.
func (s *AccountService) Close(ctx context.Context, accountID int64) (domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return domain.Account{}, err
	}

	owned, err := s.accountRepo.ListByUserID(ctx, account.UserID)
	if err != nil {
		return domain.Account{}, err
	}
	if len(owned) == 1 {
		return domain.Account{}, fmt.Errorf("%w: id=%d", domain.ErrLastAccount, accountID)
	}

	var target domain.Account
	for _, candidate := range owned {
		if candidate.ID != accountID {
			target = candidate
			break
		}
	}

	target.Balance += account.Balance
	if err := s.accountRepo.Update(ctx, target); err != nil {
		return domain.Account{}, err
	}
	if err := s.accountRepo.Delete(ctx, accountID); err != nil {
		return domain.Account{}, err
	}

	logger.Info("account service close account", logger.Fields{
		"accountId":       accountID,
		"movedBalance":    account.Balance,
		"targetAccountId": target.ID,
	})

	return account, nil
}

// Transfer debits the source the full amount. Between accounts of the same
// user the destination is credited in full; across users the credit is
// amount × (1 − commission) truncated to a whole unit, and the commission
// is not credited anywhere.
func (s *AccountService) Transfer(ctx context.Context, fromID, toID int64, amount int64) error {
	from, err := s.accountRepo.GetByID(ctx, fromID)
	if err != nil {
		return err
	}
	to, err := s.accountRepo.GetByID(ctx, toID)
	if err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount=%d", domain.ErrInvalidAmount, amount)
	}
	if from.Balance < amount {
		return fmt.Errorf("%w: id=%d, balance=%d, requested=%d",
			domain.ErrInsufficientFunds, fromID, from.Balance, amount)
	}

	credit := amount
	if from.UserID != to.UserID {
		credit = decimal.NewFromInt(amount).
			Mul(decimal.NewFromInt(1).Sub(s.transferCommission)).
			IntPart()
	}

	if from.ID == to.ID {
		// Debit and credit land on the same record and cancel out.
		return nil
	}

	from.Balance -= amount
	to.Balance += credit
	if err := s.accountRepo.Update(ctx, from); err != nil {
		return err
	}
	if err := s.accountRepo.Update(ctx, to); err != nil {
		return err
	}

	logger.Info("account service transfer", logger.Fields{
		"fromAccountId": fromID,
		"toAccountId":   toID,
		"amount":        amount,
		"credited":      credit,
	})

	return nil
}
