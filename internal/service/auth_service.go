package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/JavierVixer/OCCHIAPP/internal/dto"
	"github.com/JavierVixer/OCCHIAPP/internal/model"
	"github.com/JavierVixer/OCCHIAPP/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

var (
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrCorreoRegistrado      = errors.New("el correo ya está registrado")
	ErrSinSesion             = errors.New("no hay sesión activa")
)

// AuthService implements the demo sign-in flow. Passwords are stored and
// compared in plain text on purpose: this guards a single-workstation
// demo against accidental access, not against an attacker. Protected
// HTTP routes additionally require the JWT issued here.
type AuthService interface {
	Registrar(ctx context.Context, req dto.RegisterRequest) (dto.SesionResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.SesionResponse, error)
	Logout(ctx context.Context) error
	Sesion(ctx context.Context) (model.Sesion, error)
}

type authService struct {
	repo       repository.UsuarioRepository
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

func NewAuthService(repo repository.UsuarioRepository, secret string, expiration time.Duration) AuthService {
	return &authService{repo: repo, secret: []byte(secret), expiration: expiration, now: time.Now}
}

func (s *authService) Registrar(ctx context.Context, req dto.RegisterRequest) (dto.SesionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, ok := s.repo.FindByEmail(ctx, email); ok {
		return dto.SesionResponse{}, ErrCorreoRegistrado
	}
	u := model.Usuario{Name: strings.TrimSpace(req.Name), Email: email, Pass: req.Password}
	if err := s.repo.Create(ctx, u); err != nil {
		return dto.SesionResponse{}, err
	}
	log.Info().Str("email", email).Msg("usuario registrado")
	return s.abrirSesion(ctx, u)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (dto.SesionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	u, ok := s.repo.FindByEmail(ctx, email)
	if !ok || u.Pass != req.Password {
		return dto.SesionResponse{}, ErrCredencialesInvalidas
	}
	return s.abrirSesion(ctx, u)
}

func (s *authService) Logout(ctx context.Context) error {
	return s.repo.ClearSesion(ctx)
}

func (s *authService) Sesion(ctx context.Context) (model.Sesion, error) {
	ses, ok := s.repo.GetSesion(ctx)
	if !ok {
		return model.Sesion{}, ErrSinSesion
	}
	return ses, nil
}

func (s *authService) abrirSesion(ctx context.Context, u model.Usuario) (dto.SesionResponse, error) {
	if err := s.repo.SetSesion(ctx, model.Sesion{Name: u.Name, Email: u.Email}); err != nil {
		return dto.SesionResponse{}, err
	}
	token, err := s.emitirToken(u)
	if err != nil {
		return dto.SesionResponse{}, err
	}
	return dto.SesionResponse{
		Name:        u.Name,
		Email:       u.Email,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.expiration.Seconds()),
	}, nil
}

func (s *authService) emitirToken(u model.Usuario) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   u.Email,
		"name":  u.Name,
		"email": u.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.expiration).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
