package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/retail-shop/internal/domain"
	"github.com/tu-usuario/retail-shop/internal/domain/entity"
	"github.com/tu-usuario/retail-shop/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. userid lo asigna la secuencia de la base.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (name, password, latitude, longitude, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING userid`
	err := r.q.QueryRow(ctx, query,
		user.Name, user.PasswordHash, user.Latitude, user.Longitude, user.Role,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por id. (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int) (*entity.User, error) {
	query := `
		SELECT userid, name, password, latitude, longitude, type
		FROM users WHERE userid = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.PasswordHash, &u.Latitude, &u.Longitude, &u.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

// GetByName obtiene un usuario por nombre (único en el esquema). (nil, nil) si no existe.
func (r *UserRepo) GetByName(ctx context.Context, name string) (*entity.User, error) {
	query := `
		SELECT userid, name, password, latitude, longitude, type
		FROM users WHERE name = $1 LIMIT 1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, name).Scan(
		&u.ID, &u.Name, &u.PasswordHash, &u.Latitude, &u.Longitude, &u.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by name: %w", err)
	}
	return &u, nil
}

// Update actualiza todas las columnas editables del usuario.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET name = $2, password = $3, latitude = $4, longitude = $5, type = $6
		WHERE userid = $1`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.PasswordHash, user.Latitude, user.Longitude, user.Role,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List devuelve todos los usuarios (vista de admin).
func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	query := `
		SELECT userid, name, password, latitude, longitude, type
		FROM users ORDER BY userid`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.PasswordHash, &u.Latitude, &u.Longitude, &u.Role); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}
