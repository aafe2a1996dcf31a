package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/todo-barras/internal/application/auth"
	"github.com/tu-usuario/todo-barras/internal/application/dto"
	"github.com/tu-usuario/todo-barras/internal/domain"
	"github.com/tu-usuario/todo-barras/internal/domain/entity"
	"github.com/tu-usuario/todo-barras/pkg/jwt"
)

type fakeVenueRepo struct {
	profile *entity.VenueProfile
}

func (f *fakeVenueRepo) Get() (*entity.VenueProfile, error) {
	return f.profile, nil
}

func (f *fakeVenueRepo) Save(profile *entity.VenueProfile) error {
	f.profile = profile
	return nil
}

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 60, Issuer: "todo-barras"}
}

func repoConPerfil(t *testing.T, password string) *fakeVenueRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	return &fakeVenueRepo{profile: &entity.VenueProfile{
		Name:         "LA FÁBRICA",
		Operator:     "Juan",
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}}
}

func TestLogin_Exitoso(t *testing.T) {
	uc := auth.NewAuthUseCase(repoConPerfil(t, "1234"), testJWTConfig())

	out, err := uc.Login(dto.LoginRequest{User: "ADMIN", Password: "1234"})
	require.NoError(t, err, "el usuario es insensible a mayúsculas")

	assert.Equal(t, "LA FÁBRICA", out.Venue.Name)
	user, venue, err := jwt.Parse("secreto-de-prueba", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", user)
	assert.Equal(t, "LA FÁBRICA", venue)
}

func TestLogin_UsuarioDesconocido(t *testing.T) {
	uc := auth.NewAuthUseCase(repoConPerfil(t, "1234"), testJWTConfig())
	_, err := uc.Login(dto.LoginRequest{User: "otro", Password: "1234"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestLogin_ClaveIncorrecta(t *testing.T) {
	uc := auth.NewAuthUseCase(repoConPerfil(t, "1234"), testJWTConfig())
	_, err := uc.Login(dto.LoginRequest{User: "admin", Password: "9999"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

// TestLogin_SinOnboarding: sin perfil el login reporta ErrNotFound para que
// el cliente muestre la pantalla de alta en vez de "clave incorrecta".
func TestLogin_SinOnboarding(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeVenueRepo{}, testJWTConfig())
	_, err := uc.Login(dto.LoginRequest{User: "admin", Password: "1234"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestLogin_TokenConOtroSecretoNoValida(t *testing.T) {
	uc := auth.NewAuthUseCase(repoConPerfil(t, "1234"), testJWTConfig())
	out, err := uc.Login(dto.LoginRequest{User: "admin", Password: "1234"})
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secreto", out.Token)
	assert.Error(t, err)
}
