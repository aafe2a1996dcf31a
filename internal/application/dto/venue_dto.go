package dto

import "time"

// SetupVenueRequest entrada del onboarding: nombre del boliche y clave de
// admin (en texto, se hashea en el use case).
type SetupVenueRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=120"`
	Operator string `json:"operator" validate:"omitempty,max=120"`
	Password string `json:"password" validate:"required,min=4"`
}

// RenameVenueRequest entrada para cambiar el nombre del boliche.
type RenameVenueRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// ChangePasswordRequest entrada para cambiar la clave de admin: exige la
// clave anterior.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=4"`
}

// VenueResponse salida del perfil (sin hash de clave).
type VenueResponse struct {
	Name      string    `json:"name"`
	Operator  string    `json:"operator,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login: el usuario observado es siempre "admin".
type LoginRequest struct {
	User     string `json:"user" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token de sesión más el perfil para la pantalla principal.
type LoginResponse struct {
	Token string        `json:"token"`
	Venue VenueResponse `json:"venue"`
}
