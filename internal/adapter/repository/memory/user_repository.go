package memory

import (
	"context"
	"fmt"

	"github.com/api-sage/bank-operations-console/internal/domain"
)

type UserRepository struct {
	users       map[int64]domain.User
	takenLogins map[string]struct{}
	nextID      int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:       make(map[int64]domain.User),
		takenLogins: make(map[string]struct{}),
	}
}

// Create assigns the next identifier and stores the user. Login uniqueness
// is enforced here, like a unique constraint; reserved logins are never
// released because no deletion path exists.
func (r *UserRepository) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, taken := r.takenLogins[user.Login]; taken {
		return domain.User{}, fmt.Errorf("%w: login=%s", domain.ErrDuplicateLogin, user.Login)
	}

	r.takenLogins[user.Login] = struct{}{}
	r.nextID++
	user.ID = r.nextID
	user.AccountIDs = copyIDs(user.AccountIDs)
	r.users[user.ID] = user
	return copyUser(user), nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return domain.User{}, fmt.Errorf("%w: id=%d", domain.ErrUserNotFound, id)
	}
	return copyUser(user), nil
}

// List returns all users in no particular order.
func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	all := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		all = append(all, copyUser(user))
	}
	return all, nil
}

func (r *UserRepository) Update(_ context.Context, user domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return fmt.Errorf("%w: id=%d", domain.ErrUserNotFound, user.ID)
	}
	user.AccountIDs = copyIDs(user.AccountIDs)
	r.users[user.ID] = user
	return nil
}

// copyUser detaches the stored record from the caller; the account list
// slice must not be shared across the repository boundary.
func copyUser(user domain.User) domain.User {
	user.AccountIDs = copyIDs(user.AccountIDs)
	return user
}

func copyIDs(ids []int64) []int64 {
	if ids == nil {
		return nil
	}
	out := make([]int64, len(ids))
	copy(out, ids)
	return out
}
