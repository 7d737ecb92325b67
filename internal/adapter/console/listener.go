package console

import (
	"context"
	"time"
)

// Listener is the command dispatcher. It prompts with the recognized
// operations, reads one line, and hands matching input to the processor
// for that operation. Unrecognized input and processor errors are reported
// and the loop keeps listening; it stops on context cancellation or end of
// input.
type Listener struct {
	console    *Console
	processors map[Operation]Processor
	order      []Operation
}

func NewListener(console *Console, processors []Processor) *Listener {
	byOp := make(map[Operation]Processor, len(processors))
	order := make([]Operation, 0, len(processors))
	for _, p := range processors {
		byOp[p.Operation()] = p
		order = append(order, p.Operation())
	}
	return &Listener{console: console, processors: byOp, order: order}
}

// Processors builds the full processor set in presentation order.
func Processors(console *Console, users UserOperations, accounts AccountOperations) []Processor {
	return []Processor{
		NewCreateUserProcessor(console, users),
		NewShowAllUsersProcessor(console, users, accounts),
		NewCreateAccountProcessor(console, users, accounts),
		NewCloseAccountProcessor(console, users, accounts),
		NewDepositProcessor(console, accounts),
		NewWithdrawProcessor(console, accounts),
		NewTransferProcessor(console, accounts),
	}
}

func (l *Listener) Run(ctx context.Context) {
	l.console.Println("Console listener started")
	for ctx.Err() == nil {
		op, ok := l.nextOperation(ctx)
		if !ok {
			break
		}
		l.process(ctx, op)
	}
	l.console.Println("Console listener end listen")
}

func (l *Listener) nextOperation(ctx context.Context) (Operation, bool) {
	l.console.Println()
	l.console.Println("Please type next operation:")
	for _, op := range l.order {
		l.console.Println(string(op))
	}

	for ctx.Err() == nil {
		line, err := l.console.ReadLine()
		if err != nil {
			return "", false
		}
		op := Operation(line)
		if _, ok := l.processors[op]; ok {
			return op, true
		}
		l.console.Println("No such command found")
	}
	return "", false
}

// process is the single error-formatting boundary: any error out of a
// processor is reported to the operator and the listener keeps going.
func (l *Listener) process(ctx context.Context, op Operation) {
	start := time.Now()
	logOperation(op)

	if err := l.processors[op].Process(ctx); err != nil {
		logOperationError(op, err)
		l.console.Printf("Error executing command %s: error=%s\n", op, err)
		return
	}

	logOperationDone(op, start)
}
