package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/todo-barras/internal/application/dto"
	"github.com/tu-usuario/todo-barras/internal/domain"
	"github.com/tu-usuario/todo-barras/internal/domain/repository"
	"github.com/tu-usuario/todo-barras/pkg/jwt"
)

// adminUser único usuario del sistema: la identidad es el perfil del boliche.
const adminUser = "admin"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de login contra la clave del perfil del boliche.
type AuthUseCase struct {
	venueRepo repository.VenueRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(venueRepo repository.VenueRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{venueRepo: venueRepo, jwtCfg: jwtCfg}
}

// Login verifica usuario "admin" (insensible a mayúsculas) y clave contra el
// hash bcrypt del perfil, y genera el token de sesión.
// Sin perfil todavía → ErrNotFound (la app debe mostrar el onboarding).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !strings.EqualFold(strings.TrimSpace(in.User), adminUser) {
		return nil, domain.ErrUnauthorized
	}
	profile, err := uc.venueRepo.Get()
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, adminUser, profile.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Venue: dto.VenueResponse{
			Name:      profile.Name,
			Operator:  profile.Operator,
			CreatedAt: profile.CreatedAt,
			UpdatedAt: profile.UpdatedAt,
		},
	}, nil
}
