package entity

import "time"

// VenueProfile es el perfil único del boliche: se crea una sola vez durante
// el onboarding y su ausencia es la señal de primera ejecución.
type VenueProfile struct {
	Name         string // nombre del boliche, en mayúsculas
	Operator     string // quién administra los conteos
	PasswordHash string // bcrypt de la clave de admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
