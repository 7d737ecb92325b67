package console

import (
	"context"

	"github.com/api-sage/bank-operations-console/internal/domain"
)

// AccountOperations is the slice of the account service the console needs.
type AccountOperations interface {
	Open(ctx context.Context, userID int64) (domain.Account, error)
	FindByID(ctx context.Context, id int64) (domain.Account, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Account, error)
	Deposit(ctx context.Context, accountID, amount int64) error
	Withdraw(ctx context.Context, accountID, amount int64) error
	Close(ctx context.Context, accountID int64) (domain.Account, error)
	Transfer(ctx context.Context, fromID, toID, amount int64) error
}

type CreateAccountProcessor struct {
	console  *Console
	users    UserOperations
	accounts AccountOperations
}

func NewCreateAccountProcessor(console *Console, users UserOperations, accounts AccountOperations) *CreateAccountProcessor {
	return &CreateAccountProcessor{console: console, users: users, accounts: accounts}
}

func (p *CreateAccountProcessor) Operation() Operation { return OpAccountCreate }

func (p *CreateAccountProcessor) Process(ctx context.Context) error {
	userID, err := p.console.ReadInt64("Enter the user id for which to create an account:")
	if err != nil {
		return err
	}

	user, err := p.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	account, err := p.accounts.Open(ctx, user.ID)
	if err != nil {
		return err
	}
	if err := p.users.AddAccount(ctx, user.ID, account.ID); err != nil {
		return err
	}

	p.console.Printf("New account created with id=%d for login: %s\n", account.ID, user.Login)
	return nil
}

type CloseAccountProcessor struct {
	console  *Console
	users    UserOperations
	accounts AccountOperations
}

func NewCloseAccountProcessor(console *Console, users UserOperations, accounts AccountOperations) *CloseAccountProcessor {
	return &CloseAccountProcessor{console: console, users: users, accounts: accounts}
}

func (p *CloseAccountProcessor) Operation() Operation { return OpAccountClose }

func (p *CloseAccountProcessor) Process(ctx context.Context) error {
	accountID, err := p.console.ReadInt64("Enter account id to close:")
	if err != nil {
		return err
	}

	account, err := p.accounts.Close(ctx, accountID)
	if err != nil {
		return err
	}
	// The account store has already dropped the record; the owner's
	// back-reference list is maintained separately.
	if err := p.users.RemoveAccount(ctx, account.UserID, account.ID); err != nil {
		return err
	}

	p.console.Printf("Account successfully closed: id=%d\n", accountID)
	return nil
}

type DepositProcessor struct {
	console  *Console
	accounts AccountOperations
}

func NewDepositProcessor(console *Console, accounts AccountOperations) *DepositProcessor {
	return &DepositProcessor{console: console, accounts: accounts}
}

func (p *DepositProcessor) Operation() Operation { return OpAccountDeposit }

func (p *DepositProcessor) Process(ctx context.Context) error {
	accountID, err := p.console.ReadInt64("Enter account id:")
	if err != nil {
		return err
	}
	amount, err := p.console.ReadInt64("Enter amount to deposit:")
	if err != nil {
		return err
	}

	if err := p.accounts.Deposit(ctx, accountID, amount); err != nil {
		return err
	}

	p.console.Printf("Successfully deposited amount=%d to account id=%d\n", amount, accountID)
	return nil
}

type WithdrawProcessor struct {
	console  *Console
	accounts AccountOperations
}

func NewWithdrawProcessor(console *Console, accounts AccountOperations) *WithdrawProcessor {
	return &WithdrawProcessor{console: console, accounts: accounts}
}

func (p *WithdrawProcessor) Operation() Operation { return OpAccountWithdraw }

func (p *WithdrawProcessor) Process(ctx context.Context) error {
	accountID, err := p.console.ReadInt64("Enter account id:")
	if err != nil {
		return err
	}
	amount, err := p.console.ReadInt64("Enter amount to withdraw:")
	if err != nil {
		return err
	}

	if err := p.accounts.Withdraw(ctx, accountID, amount); err != nil {
		return err
	}

	p.console.Printf("Successfully withdrew amount=%d from account id=%d\n", amount, accountID)
	return nil
}

type TransferProcessor struct {
	console  *Console
	accounts AccountOperations
}

func NewTransferProcessor(console *Console, accounts AccountOperations) *TransferProcessor {
	return &TransferProcessor{console: console, accounts: accounts}
}

func (p *TransferProcessor) Operation() Operation { return OpAccountTransfer }

func (p *TransferProcessor) Process(ctx context.Context) error {
	fromID, err := p.console.ReadInt64("Enter source account id:")
	if err != nil {
		return err
	}
	toID, err := p.console.ReadInt64("Enter destination account id:")
	if err != nil {
		return err
	}
	amount, err := p.console.ReadInt64("Enter amount to transfer:")
	if err != nil {
		return err
	}

	if err := p.accounts.Transfer(ctx, fromID, toID, amount); err != nil {
		return err
	}

	p.console.Printf("Successfully transferred amount=%d from account id=%d to account id=%d\n",
		amount, fromID, toID)
	return nil
}
