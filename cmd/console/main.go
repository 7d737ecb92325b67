package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/api-sage/bank-operations-console/internal/adapter/console"
	"github.com/api-sage/bank-operations-console/internal/adapter/repository/memory"
	"github.com/api-sage/bank-operations-console/internal/config"
	"github.com/api-sage/bank-operations-console/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	accountRepo := memory.NewAccountRepository()
	userRepo := memory.NewUserRepository()

	accountService := services.NewAccountService(accountRepo, cfg.DefaultAccountAmount, cfg.TransferCommission)
	userService := services.NewUserService(userRepo, accountService)

	term := console.NewConsole(os.Stdin, os.Stdout)
	listener := console.NewListener(term, console.Processors(term, userService, accountService))
	listener.Run(ctx)
}
