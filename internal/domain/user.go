package domain

// User is an operator-created identity. AccountIDs is a back-reference
// list maintained by the caller when accounts open or close; the account
// records themselves live in the account repository.
type User struct {
	ID         int64
	Login      string
	AccountIDs []int64
}
