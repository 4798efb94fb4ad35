package service_test

// Shared in-memory gateway stubs for entities whose real in-memory backend
// is not needed beyond the service tests. They honor the gateway contract:
// absent records are (nil, nil), deletes report whether a row was removed.

import (
	"context"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// ── UserRepository stub ──────────────────────────────────────────────────────

type stubUserRepo struct {
	users  []model.User
	nextID uint
}

func newStubUserRepo(seed ...model.User) *stubUserRepo {
	r := &stubUserRepo{nextID: 1}
	for _, u := range seed {
		u.ID = r.nextID
		r.nextID++
		r.users = append(r.users, u)
	}
	return r
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func (r *stubUserRepo) FindAll(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		if !u.DeletedAt.Valid {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id && !u.DeletedAt.Valid {
			copy := u
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email && !u.DeletedAt.Valid {
			copy := u
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) FindByToken(_ context.Context, token string) (*model.User, error) {
	for _, u := range r.users {
		if u.Token != nil && *u.Token == token && !u.DeletedAt.Valid {
			copy := u
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	u.ID = r.nextID
	r.nextID++
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users = append(r.users, *u)
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	for i := range r.users {
		if r.users[i].ID == u.ID && !r.users[i].DeletedAt.Valid {
			r.users[i] = *u
		}
	}
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uint) (bool, error) {
	for i := range r.users {
		if r.users[i].ID == id && !r.users[i].DeletedAt.Valid {
			r.users[i].DeletedAt.Time = time.Now()
			r.users[i].DeletedAt.Valid = true
			return true, nil
		}
	}
	return false, nil
}

// ── RoleRepository stub ──────────────────────────────────────────────────────

type stubRoleRepo struct {
	roles []model.Role
}

func newStubRoleRepo(names ...string) *stubRoleRepo {
	r := &stubRoleRepo{}
	for i, name := range names {
		r.roles = append(r.roles, model.Role{ID: uint(i + 1), Name: name})
	}
	return r
}

var _ repository.RoleRepository = (*stubRoleRepo)(nil)

func (r *stubRoleRepo) FindAll(_ context.Context) ([]model.Role, error) {
	return append([]model.Role(nil), r.roles...), nil
}

func (r *stubRoleRepo) FindByID(_ context.Context, id uint) (*model.Role, error) {
	for _, role := range r.roles {
		if role.ID == id {
			copy := role
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*model.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			copy := role
			return &copy, nil
		}
	}
	return nil, nil
}

// ── StatusRepository stub ────────────────────────────────────────────────────

type stubStatusRepo struct {
	statuses []model.Status
}

func newStubStatusRepo(names ...string) *stubStatusRepo {
	r := &stubStatusRepo{}
	for i, name := range names {
		r.statuses = append(r.statuses, model.Status{ID: uint(i + 1), Name: name})
	}
	return r
}

var _ repository.StatusRepository = (*stubStatusRepo)(nil)

func (r *stubStatusRepo) FindAll(_ context.Context) ([]model.Status, error) {
	return append([]model.Status(nil), r.statuses...), nil
}

func (r *stubStatusRepo) FindByID(_ context.Context, id uint) (*model.Status, error) {
	for _, s := range r.statuses {
		if s.ID == id {
			copy := s
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *stubStatusRepo) FindByName(_ context.Context, name string) (*model.Status, error) {
	for _, s := range r.statuses {
		if s.Name == name {
			copy := s
			return &copy, nil
		}
	}
	return nil, nil
}

// ── OrderRepository stub ─────────────────────────────────────────────────────

type stubOrderRepo struct {
	orders []model.Order
	nextID uint
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{nextID: 1}
}

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

func (r *stubOrderRepo) FindAll(_ context.Context) ([]model.Order, error) {
	out := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if !o.DeletedAt.Valid {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uint) (*model.Order, error) {
	for _, o := range r.orders {
		if o.ID == id && !o.DeletedAt.Valid {
			copy := o
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *stubOrderRepo) FindByUserID(_ context.Context, userID uint) ([]model.Order, error) {
	out := make([]model.Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID && !o.DeletedAt.Valid {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) Create(_ context.Context, o *model.Order) error {
	o.ID = r.nextID
	r.nextID++
	o.CreatedAt = time.Now()
	for i := range o.Items {
		o.Items[i].ID = uint(i + 1)
		o.Items[i].OrderID = o.ID
	}
	r.orders = append(r.orders, *o)
	return nil
}

func (r *stubOrderRepo) Update(_ context.Context, o *model.Order) error {
	for i := range r.orders {
		if r.orders[i].ID == o.ID && !r.orders[i].DeletedAt.Valid {
			r.orders[i] = *o
		}
	}
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id uint) (bool, error) {
	for i := range r.orders {
		if r.orders[i].ID == id && !r.orders[i].DeletedAt.Valid {
			r.orders[i].DeletedAt.Time = time.Now()
			r.orders[i].DeletedAt.Valid = true
			return true, nil
		}
	}
	return false, nil
}

// ── ImageRepository stub ─────────────────────────────────────────────────────

type stubImageRepo struct {
	images []model.Image
	nextID uint
}

func newStubImageRepo() *stubImageRepo {
	return &stubImageRepo{nextID: 1}
}

var _ repository.ImageRepository = (*stubImageRepo)(nil)

func (r *stubImageRepo) FindByProductID(_ context.Context, productID uint) ([]model.Image, error) {
	out := make([]model.Image, 0)
	for _, img := range r.images {
		if img.ProductID == productID && !img.DeletedAt.Valid {
			out = append(out, img)
		}
	}
	return out, nil
}

func (r *stubImageRepo) FindByID(_ context.Context, id uint) (*model.Image, error) {
	for _, img := range r.images {
		if img.ID == id && !img.DeletedAt.Valid {
			copy := img
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *stubImageRepo) Create(_ context.Context, img *model.Image) error {
	img.ID = r.nextID
	r.nextID++
	r.images = append(r.images, *img)
	return nil
}

func (r *stubImageRepo) Delete(_ context.Context, id uint) (bool, error) {
	for i := range r.images {
		if r.images[i].ID == id && !r.images[i].DeletedAt.Valid {
			r.images[i].DeletedAt.Time = time.Now()
			r.images[i].DeletedAt.Valid = true
			return true, nil
		}
	}
	return false, nil
}

// ── AddressRepository stub ───────────────────────────────────────────────────

type stubAddressRepo struct {
	addresses []model.Address
	nextID    uint
}

func newStubAddressRepo() *stubAddressRepo {
	return &stubAddressRepo{nextID: 1}
}

var _ repository.AddressRepository = (*stubAddressRepo)(nil)

func (r *stubAddressRepo) FindByUserID(_ context.Context, userID uint) ([]model.Address, error) {
	out := make([]model.Address, 0)
	for _, a := range r.addresses {
		if a.UserID == userID && !a.DeletedAt.Valid {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAddressRepo) FindByID(_ context.Context, id uint) (*model.Address, error) {
	for _, a := range r.addresses {
		if a.ID == id && !a.DeletedAt.Valid {
			copy := a
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *stubAddressRepo) Create(_ context.Context, a *model.Address) error {
	a.ID = r.nextID
	r.nextID++
	r.addresses = append(r.addresses, *a)
	return nil
}

func (r *stubAddressRepo) Update(_ context.Context, a *model.Address) error {
	for i := range r.addresses {
		if r.addresses[i].ID == a.ID && !r.addresses[i].DeletedAt.Valid {
			r.addresses[i] = *a
		}
	}
	return nil
}

func (r *stubAddressRepo) Delete(_ context.Context, id uint) (bool, error) {
	for i := range r.addresses {
		if r.addresses[i].ID == id && !r.addresses[i].DeletedAt.Valid {
			r.addresses[i].DeletedAt.Time = time.Now()
			r.addresses[i].DeletedAt.Valid = true
			return true, nil
		}
	}
	return false, nil
}
