package requests

import "mime/multipart"

type LoginUser struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterUser is parsed from a multipart form so a profile photo can ride
// along. Password1 doubles as the login password for the immediate
// login-after-register flow.
type RegisterUser struct {
	Username  string `validate:"required"`
	Email     string `validate:"required,email"`
	Fullname  string `validate:"required"`
	Phone     string `validate:"required"`
	Gender    string `validate:"required"`
	Role      string `validate:"required"`
	Password1 string `validate:"required,password"`
	Password2 string `validate:"required,eqfield=Password1"`

	ProfilePix       multipart.File        `validate:"-"`
	ProfilePixHeader *multipart.FileHeader `validate:"-"`
}
