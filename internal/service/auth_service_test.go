package service

import (
	"context"
	"testing"
	"time"

	"github.com/JavierVixer/OCCHIAPP/internal/dto"
	"github.com/JavierVixer/OCCHIAPP/internal/repository"
	"github.com/JavierVixer/OCCHIAPP/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secreto-de-prueba"

func newAuthFixture(t *testing.T) (AuthService, repository.UsuarioRepository) {
	t.Helper()
	repo := repository.NewUsuarioRepository(storage.NewMemory())
	return NewAuthService(repo, testSecret, 8*time.Hour), repo
}

func TestRegistrarAbreSesionYEmiteToken(t *testing.T) {
	ctx := context.Background()
	svc, repo := newAuthFixture(t)

	res, err := svc.Registrar(ctx, dto.RegisterRequest{Name: "Demo", Email: "Demo@Clinica.MX", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, "demo@clinica.mx", res.Email)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, int((8 * time.Hour).Seconds()), res.ExpiresIn)

	ses, ok := repo.GetSesion(ctx)
	require.True(t, ok)
	assert.Equal(t, "demo@clinica.mx", ses.Email)

	tok, err := jwt.Parse(res.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, "demo@clinica.mx", claims["email"])
	assert.Equal(t, "Demo", claims["name"])
}

func TestRegistrarCorreoDuplicado(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	_, err := svc.Registrar(ctx, dto.RegisterRequest{Name: "Demo", Email: "demo@clinica.mx", Password: "secreta"})
	require.NoError(t, err)

	_, err = svc.Registrar(ctx, dto.RegisterRequest{Name: "Otro", Email: "DEMO@clinica.mx", Password: "otra"})
	assert.ErrorIs(t, err, ErrCorreoRegistrado)
}

func TestLoginValidaCredencialesExactas(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	_, err := svc.Registrar(ctx, dto.RegisterRequest{Name: "Demo", Email: "demo@clinica.mx", Password: "secreta"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, dto.LoginRequest{Email: "demo@clinica.mx", Password: "secreta"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "demo@clinica.mx", Password: "equivocada"})
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "nadie@clinica.mx", Password: "secreta"})
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestLogoutCierraSesion(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	_, err := svc.Registrar(ctx, dto.RegisterRequest{Name: "Demo", Email: "demo@clinica.mx", Password: "secreta"})
	require.NoError(t, err)

	ses, err := svc.Sesion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "demo@clinica.mx", ses.Email)

	require.NoError(t, svc.Logout(ctx))
	_, err = svc.Sesion(ctx)
	assert.ErrorIs(t, err, ErrSinSesion)
}
