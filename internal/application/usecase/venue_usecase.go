package usecase

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/todo-barras/internal/application/dto"
	"github.com/tu-usuario/todo-barras/internal/domain"
	"github.com/tu-usuario/todo-barras/internal/domain/entity"
	"github.com/tu-usuario/todo-barras/internal/domain/repository"
)

// minPasswordLen regla observada del onboarding: la clave de admin tiene al
// menos 4 caracteres.
const minPasswordLen = 4

// VenueUseCase administra el perfil único del boliche: onboarding, cambio de
// nombre y cambio de clave.
type VenueUseCase struct {
	repo repository.VenueRepository
}

// NewVenueUseCase construye el caso de uso.
func NewVenueUseCase(repo repository.VenueRepository) *VenueUseCase {
	return &VenueUseCase{repo: repo}
}

// Get devuelve el perfil, o ErrNotFound si todavía no hubo onboarding.
func (uc *VenueUseCase) Get() (*dto.VenueResponse, error) {
	profile, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return toVenueResponse(profile), nil
}

// Setup crea el perfil durante la primera ejecución. Si ya existe devuelve
// ErrConflict: el perfil nunca se recrea mientras haya una sesión.
func (uc *VenueUseCase) Setup(in dto.SetupVenueRequest) (*dto.VenueResponse, error) {
	name := strings.ToUpper(strings.TrimSpace(in.Name))
	if name == "" || len(in.Password) < minPasswordLen {
		return nil, domain.ErrValidation
	}
	existing, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	profile := &entity.VenueProfile{
		Name:         name,
		Operator:     strings.TrimSpace(in.Operator),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Save(profile); err != nil {
		return nil, err
	}
	return toVenueResponse(profile), nil
}

// Rename cambia el nombre del boliche.
func (uc *VenueUseCase) Rename(in dto.RenameVenueRequest) (*dto.VenueResponse, error) {
	name := strings.ToUpper(strings.TrimSpace(in.Name))
	if name == "" {
		return nil, domain.ErrValidation
	}
	profile, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	profile.Name = name
	profile.UpdatedAt = time.Now()
	if err := uc.repo.Save(profile); err != nil {
		return nil, err
	}
	return toVenueResponse(profile), nil
}

// ChangePassword cambia la clave de admin: exige la clave anterior correcta
// y una nueva de al menos cuatro caracteres.
func (uc *VenueUseCase) ChangePassword(in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < minPasswordLen {
		return domain.ErrValidation
	}
	profile, err := uc.repo.Get()
	if err != nil {
		return err
	}
	if profile == nil {
		return domain.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.OldPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	profile.PasswordHash = string(hash)
	profile.UpdatedAt = time.Now()
	return uc.repo.Save(profile)
}

func toVenueResponse(p *entity.VenueProfile) *dto.VenueResponse {
	return &dto.VenueResponse{
		Name:      p.Name,
		Operator:  p.Operator,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
