package api

import (
	"context"

	"github.com/autohub/autohub-cli/internal/client/models"
)

// RegisterRequest is the payload for account creation. The account becomes
// usable only after the email-verification step.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Phone   string `json:"phone"`
	Address string `json:"address"`
	DOB     string `json:"dob"`
}

// Client is the backend contract used by the session store and the screens.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) error
	Verify(ctx context.Context, token string) error
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Me(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.User, error)
	UpdateProfilePicture(ctx context.Context, url string) (*models.User, error)

	ListCars(ctx context.Context) ([]models.Car, error)
	GetCar(ctx context.Context, id string) (*models.Car, error)
	MyCars(ctx context.Context) ([]models.Car, error)
	CreateCar(ctx context.Context, car models.Car) (*models.Car, error)
	DeleteCar(ctx context.Context, id string) error

	// SetToken installs (or clears, with "") the bearer credential used on
	// authenticated calls.
	SetToken(token string)
}
