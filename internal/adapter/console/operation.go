package console

import "context"

// Operation is a console command name. Input lines are matched against the
// set verbatim, case-sensitively.
type Operation string

const (
	OpUserCreate      Operation = "USER_CREATE"
	OpShowAllUsers    Operation = "SHOW_ALL_USERS"
	OpAccountCreate   Operation = "ACCOUNT_CREATE"
	OpAccountClose    Operation = "ACCOUNT_CLOSE"
	OpAccountDeposit  Operation = "ACCOUNT_DEPOSIT"
	OpAccountTransfer Operation = "ACCOUNT_TRANSFER"
	OpAccountWithdraw Operation = "ACCOUNT_WITHDRAW"
)

// Processor handles exactly one operation: it reads its inputs from the
// console, invokes the services, and reports the result. A returned error
// aborts that invocation only; the listener formats and prints it.
type Processor interface {
	Operation() Operation
	Process(ctx context.Context) error
}
