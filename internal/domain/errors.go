package domain

import "errors"

var ErrAccountNotFound = errors.New("account not found")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidAmount = errors.New("amount must be positive")
var ErrInsufficientFunds = errors.New("insufficient funds")
var ErrLastAccount = errors.New("cannot close the only account")
var ErrDuplicateLogin = errors.New("login already taken")
