package user

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleSeller   Role = "SELLER"
	RoleAdmin    Role = "ADMIN"
)

// DefaultSellerID is the storefront seller a SELLER login manages when none is given.
const DefaultSellerID = "s1"

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	IsApproved bool   `json:"isApproved"`
	SellerID   string `json:"sellerId,omitempty"`
}

type LoginInput struct {
	Name     string `json:"name" validate:"max=100"`
	Email    string `json:"email" validate:"required,email"`
	Role     Role   `json:"role" validate:"required,oneof=CUSTOMER SELLER ADMIN"`
	SellerID string `json:"sellerId" validate:"omitempty,max=32"`
}
