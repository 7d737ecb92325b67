package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const defaultAccountAmount = "100"
const defaultTransferCommission = "0.10"

// Config carries the process-wide ledger settings. TransferCommission is
// the fraction deducted from the credited side of a cross-user transfer.
type Config struct {
	DefaultAccountAmount int64   `validate:"gte=0"`
	TransferCommission   float64 `validate:"gte=0,lt=1"`
}

var validate = validator.New()

func Load() (Config, error) {
	amountRaw := strings.TrimSpace(os.Getenv("DEFAULT_ACCOUNT_AMOUNT"))
	if amountRaw == "" {
		amountRaw = defaultAccountAmount
	}
	amount, err := strconv.ParseInt(amountRaw, 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse DEFAULT_ACCOUNT_AMOUNT: %w", err)
	}

	commissionRaw := strings.TrimSpace(os.Getenv("TRANSFER_COMMISSION"))
	if commissionRaw == "" {
		commissionRaw = defaultTransferCommission
	}
	commission, err := strconv.ParseFloat(commissionRaw, 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse TRANSFER_COMMISSION: %w", err)
	}

	cfg := Config{
		DefaultAccountAmount: amount,
		TransferCommission:   commission,
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
