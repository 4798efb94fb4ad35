package dto

// ─── User ────────────────────────────────────────────────────────────────────

type CreateUserRequest struct {
	Name     string  `json:"name"`
	Surname  string  `json:"surname"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Password string  `json:"password" validate:"omitempty,min=8"`
	Image    *string `json:"image"`
	RoleID   uint    `json:"role_id"`
}

type UpdateUserRequest struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Image   *string `json:"image"`
	Locked  *bool   `json:"locked"`
	RoleID  *uint   `json:"role_id"`
}

type UserResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Surname   string  `json:"surname"`
	Email     string  `json:"email"`
	Image     *string `json:"image"`
	Locked    bool    `json:"locked"`
	Validated bool    `json:"validated"`
	RoleID    uint    `json:"role_id"`
}

// ─── Address ─────────────────────────────────────────────────────────────────

type CreateAddressRequest struct {
	Location   string `json:"location"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	UserID     uint   `json:"user_id"`
}

type UpdateAddressRequest struct {
	Location   *string `json:"location"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`
}

type AddressResponse struct {
	ID         uint   `json:"id"`
	Location   string `json:"location"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	UserID     uint   `json:"user_id"`
}
