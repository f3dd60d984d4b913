// Package auth implementa registro self-service, login y rotación de refresh
// tokens. El resto del sistema no valida credenciales: confía en el principal
// {user_id, tenant_id, role} que viaja en el JWT.
package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Auditoria-api/internal/application/dto"
	"github.com/jhoicas/Auditoria-api/internal/domain"
	"github.com/jhoicas/Auditoria-api/internal/domain/entity"
	"github.com/jhoicas/Auditoria-api/internal/domain/repository"
	"github.com/jhoicas/Auditoria-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret          string
	ExpMinutes      int
	RefreshExpHours int
	Issuer          string
}

// TxRunner ejecuta el callback con repos atados a una transacción: o se
// persisten tenant y usuario juntos, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		tenantRepo repository.TenantRepository,
		userRepo repository.UserRepository,
	) error) error
}

// AuthUseCase casos de uso de autenticación: registro, login, refresh y logout.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	tenantRepo repository.TenantRepository
	tokenRepo  repository.RefreshTokenRepository
	txRunner   TxRunner
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	tenantRepo repository.TenantRepository,
	tokenRepo repository.RefreshTokenRepository,
	txRunner TxRunner,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tenantRepo: tenantRepo, tokenRepo: tokenRepo, txRunner: txRunner, jwtCfg: jwtCfg}
}

// Register registro self-service: aprovisiona el tenant y crea su primer
// usuario con rol master_admin.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if in.TenantName == "" || in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: tenant_name, username, email y password son requeridos", domain.ErrInvalidInput)
	}
	if existing, _ := uc.userRepo.FindByUsername(ctx, in.Username); existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, _ := uc.userRepo.FindByEmail(ctx, in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	var subdomain *string
	if in.Subdomain != "" {
		if existing, _ := uc.tenantRepo.GetBySubdomain(ctx, in.Subdomain); existing != nil {
			return nil, domain.ErrDuplicate
		}
		subdomain = &in.Subdomain
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tenant := &entity.Tenant{
		ID:        uuid.New().String(),
		Name:      in.TenantName,
		Subdomain: subdomain,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	fullName := in.FullName
	if fullName == "" {
		fullName = in.Username
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		TenantID:     tenant.ID,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         entity.RoleMasterAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.txRunner.Run(ctx, func(
		tenantRepo repository.TenantRepository,
		userRepo repository.UserRepository,
	) error {
		if err := tenantRepo.Create(ctx, tenant); err != nil {
			return err
		}
		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		Tenant: dto.TenantResponse{
			ID:        tenant.ID,
			Name:      tenant.Name,
			Subdomain: tenant.Subdomain,
			Active:    tenant.Active,
			CreatedAt: tenant.CreatedAt,
			UpdatedAt: tenant.UpdatedAt,
		},
		User: *toUserResponse(user),
	}, nil
}

// Login verifica username (o email) + password, emite JWT y refresh token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = uc.userRepo.FindByEmail(ctx, in.Username)
		if err != nil {
			return nil, err
		}
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	return uc.issueTokens(ctx, user)
}

// Refresh valida y rota el refresh token: revoca el usado y emite un par nuevo.
func (uc *AuthUseCase) Refresh(ctx context.Context, in dto.RefreshRequest) (*dto.LoginResponse, error) {
	stored, err := uc.tokenRepo.GetByHash(ctx, hashToken(in.RefreshToken))
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.Revoked || time.Now().After(stored.ExpiresAt) {
		return nil, domain.ErrUnauthorized
	}
	owner, err := uc.userRepo.FindByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if owner == nil || !owner.Active {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.tokenRepo.Revoke(ctx, stored.ID); err != nil {
		return nil, err
	}
	return uc.issueTokens(ctx, owner)
}

// Logout revoca todos los refresh tokens del usuario.
func (uc *AuthUseCase) Logout(ctx context.Context, userID string) error {
	return uc.tokenRepo.DeleteByUser(ctx, userID)
}

// issueTokens genera el JWT de acceso y un refresh token opaco persistido por hash.
func (uc *AuthUseCase) issueTokens(ctx context.Context, user *entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.TenantID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := randomToken()
	if err != nil {
		return nil, err
	}
	rt := &entity.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: hashToken(refresh),
		ExpiresAt: time.Now().Add(time.Duration(uc.jwtCfg.RefreshExpHours) * time.Hour),
		Revoked:   false,
		CreatedAt: time.Now(),
	}
	if err := uc.tokenRepo.Create(ctx, rt); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:        token,
		RefreshToken: refresh,
		User:         *toUserResponse(user),
	}, nil
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		TenantID:  u.TenantID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
