package console

import (
	"context"

	"github.com/api-sage/bank-operations-console/internal/domain"
)

// UserOperations is the slice of the user service the console needs.
type UserOperations interface {
	Create(ctx context.Context, login string) (domain.User, error)
	FindByID(ctx context.Context, id int64) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	AddAccount(ctx context.Context, userID, accountID int64) error
	RemoveAccount(ctx context.Context, userID, accountID int64) error
}

type CreateUserProcessor struct {
	console *Console
	users   UserOperations
}

func NewCreateUserProcessor(console *Console, users UserOperations) *CreateUserProcessor {
	return &CreateUserProcessor{console: console, users: users}
}

func (p *CreateUserProcessor) Operation() Operation { return OpUserCreate }

func (p *CreateUserProcessor) Process(ctx context.Context) error {
	p.console.Println("Enter login for new user:")
	login, err := p.console.ReadLine()
	if err != nil {
		return err
	}

	user, err := p.users.Create(ctx, login)
	if err != nil {
		return err
	}

	p.console.Printf("User created: id=%d, login=%s, accounts=%v\n",
		user.ID, user.Login, user.AccountIDs)
	return nil
}

type ShowAllUsersProcessor struct {
	console  *Console
	users    UserOperations
	accounts AccountOperations
}

func NewShowAllUsersProcessor(console *Console, users UserOperations, accounts AccountOperations) *ShowAllUsersProcessor {
	return &ShowAllUsersProcessor{console: console, users: users, accounts: accounts}
}

func (p *ShowAllUsersProcessor) Operation() Operation { return OpShowAllUsers }

func (p *ShowAllUsersProcessor) Process(ctx context.Context) error {
	users, err := p.users.List(ctx)
	if err != nil {
		return err
	}

	for _, user := range users {
		p.console.Printf("User id=%d, login=%s\n", user.ID, user.Login)
		for _, accountID := range user.AccountIDs {
			account, err := p.accounts.FindByID(ctx, accountID)
			if err != nil {
				return err
			}
			p.console.Printf("  Account id=%d, balance=%d\n", account.ID, account.Balance)
		}
	}
	return nil
}
