package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/bank-operations-console/internal/adapter/repository/memory"
	"github.com/api-sage/bank-operations-console/internal/domain"
	"github.com/api-sage/bank-operations-console/internal/usecase/services"
)

func newAccountService() (*services.AccountService, *memory.AccountRepository) {
	repo := memory.NewAccountRepository()
	return services.NewAccountService(repo, 100, 0.1), repo
}

func mustOpen(t *testing.T, svc *services.AccountService, userID int64) domain.Account {
	t.Helper()
	account, err := svc.Open(context.Background(), userID)
	if err != nil {
		t.Fatalf("open account for user %d: %v", userID, err)
	}
	return account
}

func balance(t *testing.T, svc *services.AccountService, id int64) int64 {
	t.Helper()
	account, err := svc.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("find account %d: %v", id, err)
	}
	return account.Balance
}

func TestDepositThenWithdrawRestoresBalance(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccountService()
	account := mustOpen(t, svc, 1)

	if err := svc.Deposit(ctx, account.ID, 30); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if err := svc.Withdraw(ctx, account.ID, 30); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	if got := balance(t, svc, account.ID); got != account.Balance {
		t.Fatalf("expected balance %d restored, got %d", account.Balance, got)
	}
}

func TestDepositMissingAccountReportedBeforeBadAmount(t *testing.T) {
	svc, _ := newAccountService()

	err := svc.Deposit(context.Background(), 42, -5)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	svc, _ := newAccountService()
	account := mustOpen(t, svc, 1)

	for _, amount := range []int64{0, -10} {
		err := svc.Deposit(context.Background(), account.ID, amount)
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("amount %d: expected ErrInvalidAmount, got %v", amount, err)
		}
	}
	if got := balance(t, svc, account.ID); got != 100 {
		t.Fatalf("balance changed on rejected deposit: %d", got)
	}
}

func TestWithdrawInsufficientFundsLeavesBalance(t *testing.T) {
	svc, _ := newAccountService()
	account := mustOpen(t, svc, 1)

	err := svc.Withdraw(context.Background(), account.ID, 1000)
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if got := balance(t, svc, account.ID); got != 100 {
		t.Fatalf("balance changed on rejected withdraw: %d", got)
	}
}

func TestTransferSameUserCreditsFullAmount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccountService()
	from := mustOpen(t, svc, 1)
	to := mustOpen(t, svc, 1)

	if err := svc.Transfer(ctx, from.ID, to.ID, 40); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	if got := balance(t, svc, from.ID); got != 60 {
		t.Fatalf("expected source balance 60, got %d", got)
	}
	if got := balance(t, svc, to.ID); got != 140 {
		t.Fatalf("expected destination balance 140, got %d", got)
	}
}

func TestTransferAcrossUsersTruncatesCommission(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccountService()
	from := mustOpen(t, svc, 1)
	to := mustOpen(t, svc, 2)

	// 33 × 0.9 = 29.7, truncated to 29; the remaining 4 are gone.
	if err := svc.Transfer(ctx, from.ID, to.ID, 33); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	if got := balance(t, svc, from.ID); got != 67 {
		t.Fatalf("expected source balance 67, got %d", got)
	}
	if got := balance(t, svc, to.ID); got != 129 {
		t.Fatalf("expected destination balance 129, got %d", got)
	}
}

func TestTransferToSameAccountLeavesBalance(t *testing.T) {
	svc, _ := newAccountService()
	account := mustOpen(t, svc, 1)

	if err := svc.Transfer(context.Background(), account.ID, account.ID, 40); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if got := balance(t, svc, account.ID); got != 100 {
		t.Fatalf("expected balance unchanged at 100, got %d", got)
	}
}

func TestTransferRejectsInsufficientFunds(t *testing.T) {
	svc, _ := newAccountService()
	from := mustOpen(t, svc, 1)
	to := mustOpen(t, svc, 2)

	err := svc.Transfer(context.Background(), from.ID, to.ID, 500)
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if got := balance(t, svc, from.ID); got != 100 {
		t.Fatalf("source balance changed on rejected transfer: %d", got)
	}
	if got := balance(t, svc, to.ID); got != 100 {
		t.Fatalf("destination balance changed on rejected transfer: %d", got)
	}
}

func TestCloseMovesBalanceToAnotherAccount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccountService()
	first := mustOpen(t, svc, 1)
	second := mustOpen(t, svc, 1)

	if err := svc.Deposit(ctx, second.ID, 25); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	closed, err := svc.Close(ctx, second.ID)
	if err != nil {
		t.Fatalf("close account: %v", err)
	}
	if closed.ID != second.ID || closed.Balance != 125 {
		t.Fatalf("unexpected closed record: %+v", closed)
	}

	if _, err := svc.FindByID(ctx, second.ID); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("closed account still resolvable: %v", err)
	}
	// The surviving account absorbs the full closed balance.
	if got := balance(t, svc, first.ID); got != 225 {
		t.Fatalf("expected surviving balance 225, got %d", got)
	}
}

func TestCloseLastAccountFails(t *testing.T) {
	svc, _ := newAccountService()
	account := mustOpen(t, svc, 1)

	_, err := svc.Close(context.Background(), account.ID)
	if !errors.Is(err, domain.ErrLastAccount) {
		t.Fatalf("expected ErrLastAccount, got %v", err)
	}
	if got := balance(t, svc, account.ID); got != 100 {
		t.Fatalf("balance changed on rejected close: %d", got)
	}
}

func TestCrossUserTransferScenario(t *testing.T) {
	ctx := context.Background()
	accountRepo := memory.NewAccountRepository()
	userRepo := memory.NewUserRepository()
	accountService := services.NewAccountService(accountRepo, 100, 0.1)
	userService := services.NewUserService(userRepo, accountService)

	alice, err := userService.Create(ctx, "alice")
	if err != nil {
		t.Fatalf("create alice: %v", err)
	}
	if err := accountService.Deposit(ctx, alice.AccountIDs[0], 50); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	bob, err := userService.Create(ctx, "bob")
	if err != nil {
		t.Fatalf("create bob: %v", err)
	}

	if err := accountService.Transfer(ctx, alice.AccountIDs[0], bob.AccountIDs[0], 100); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	if got := balance(t, accountService, alice.AccountIDs[0]); got != 50 {
		t.Fatalf("expected alice balance 50, got %d", got)
	}
	if got := balance(t, accountService, bob.AccountIDs[0]); got != 190 {
		t.Fatalf("expected bob balance 190, got %d", got)
	}
}
