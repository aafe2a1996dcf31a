package repository

import "github.com/tu-usuario/todo-barras/internal/domain/entity"

// VenueRepository define el puerto de persistencia del perfil del boliche.
// Get devuelve nil sin error cuando el perfil todavía no existe (primera
// ejecución).
type VenueRepository interface {
	Get() (*entity.VenueProfile, error)
	Save(profile *entity.VenueProfile) error
}
