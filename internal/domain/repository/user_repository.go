package repository

import (
	"context"

	"github.com/jhoicas/Auditoria-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
//
// La búsqueda para login (FindByUsername / FindByEmail) es global porque
// username y email son únicos en todo el sistema; el resto de operaciones
// exige tenantID y filtra por él.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.User, error)
	// FindByID búsqueda global por id (sin tenant); solo para resolver el
	// dueño de un refresh token. El tenant vuelve a viajar en el JWT emitido.
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// Delete elimina el usuario del tenant y sus refresh tokens (cascada).
	Delete(ctx context.Context, tenantID, id string) error
}

// RefreshTokenRepository define el puerto de persistencia para RefreshToken.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)
	Revoke(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
