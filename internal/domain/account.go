package domain

type Account struct {
	ID      int64
	UserID  int64
	Balance int64
}
