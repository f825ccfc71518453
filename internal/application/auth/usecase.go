package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/tu-usuario/retail-shop/internal/application/dto"
	"github.com/tu-usuario/retail-shop/internal/domain"
	"github.com/tu-usuario/retail-shop/internal/domain/entity"
	"github.com/tu-usuario/retail-shop/internal/domain/geo"
	"github.com/tu-usuario/retail-shop/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase casos de uso de identidad: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo}
}

// CreateUser registra un usuario nuevo con rol customer: valida coordenadas
// en [0,100], rechaza nombres duplicados y persiste el password hasheado con
// bcrypt. Devuelve ErrUserAlreadyExists si el nombre ya está tomado.
func (uc *AuthUseCase) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*entity.User, error) {
	if in.Name == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	loc := geo.Point{Latitude: in.Latitude, Longitude: in.Longitude}
	if !loc.InRange() {
		return nil, domain.ErrCoordinatesRange
	}
	existing, err := uc.userRepo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         in.Name,
		PasswordHash: string(hash),
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		Role:         entity.RoleCustomer,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifica nombre/password y construye la sesión del proceso.
// Devuelve ErrInvalidCredentials tanto si el usuario no existe como si el
// password no coincide, sin distinguir los casos ante el operador.
func (uc *AuthUseCase) Login(ctx context.Context, name, password string) (*Session, error) {
	user, err := uc.userRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &Session{
		ID:       uuid.New().String(),
		UserID:   user.ID,
		Name:     user.Name,
		Role:     user.Role,
		Location: geo.Point{Latitude: user.Latitude, Longitude: user.Longitude},
	}, nil
}
