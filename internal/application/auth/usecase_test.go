package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Auditoria-api/internal/application/auth"
	"github.com/jhoicas/Auditoria-api/internal/application/dto"
	"github.com/jhoicas/Auditoria-api/internal/domain"
	"github.com/jhoicas/Auditoria-api/internal/domain/entity"
	"github.com/jhoicas/Auditoria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, tenantID, id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok || u.TenantID != tenantID {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListByTenant(_ context.Context, tenantID string, limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range f.users {
		if u.TenantID == tenantID {
			cp := *u
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if existing, ok := f.users[user.ID]; ok && existing.TenantID == user.TenantID {
		cp := *user
		f.users[user.ID] = &cp
	}
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, tenantID, id string) error {
	if u, ok := f.users[id]; ok && u.TenantID == tenantID {
		delete(f.users, id)
	}
	return nil
}

type fakeTenantRepo struct {
	tenants map[string]*entity.Tenant
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{tenants: make(map[string]*entity.Tenant)}
}

func (f *fakeTenantRepo) Create(_ context.Context, tenant *entity.Tenant) error {
	cp := *tenant
	f.tenants[tenant.ID] = &cp
	return nil
}

func (f *fakeTenantRepo) GetByID(_ context.Context, id string) (*entity.Tenant, error) {
	t, ok := f.tenants[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTenantRepo) GetBySubdomain(_ context.Context, subdomain string) (*entity.Tenant, error) {
	for _, t := range f.tenants {
		if t.Subdomain != nil && *t.Subdomain == subdomain {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeTenantRepo) List(_ context.Context, limit, offset int) ([]*entity.Tenant, error) {
	var list []*entity.Tenant
	for _, t := range f.tenants {
		cp := *t
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeTenantRepo) Update(_ context.Context, tenant *entity.Tenant) error {
	if _, ok := f.tenants[tenant.ID]; ok {
		cp := *tenant
		f.tenants[tenant.ID] = &cp
	}
	return nil
}

func (f *fakeTenantRepo) Delete(_ context.Context, id string) error {
	delete(f.tenants, id)
	return nil
}

type fakeTokenRepo struct {
	tokens map[string]*entity.RefreshToken // por id
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*entity.RefreshToken)}
}

func (f *fakeTokenRepo) Create(_ context.Context, token *entity.RefreshToken) error {
	cp := *token
	f.tokens[token.ID] = &cp
	return nil
}

func (f *fakeTokenRepo) GetByHash(_ context.Context, tokenHash string) (*entity.RefreshToken, error) {
	for _, t := range f.tokens {
		if t.TokenHash == tokenHash {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeTokenRepo) Revoke(_ context.Context, id string) error {
	if t, ok := f.tokens[id]; ok {
		t.Revoked = true
	}
	return nil
}

func (f *fakeTokenRepo) DeleteByUser(_ context.Context, userID string) error {
	for id, t := range f.tokens {
		if t.UserID == userID {
			delete(f.tokens, id)
		}
	}
	return nil
}

// fakeTxRunner ejecuta el callback directamente contra los repos en memoria.
type fakeTxRunner struct {
	tenantRepo repository.TenantRepository
	userRepo   repository.UserRepository
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	tenantRepo repository.TenantRepository,
	userRepo repository.UserRepository,
) error) error {
	return fn(f.tenantRepo, f.userRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Harness
// ──────────────────────────────────────────────────────────────────────────────

type authFixture struct {
	uc        *auth.AuthUseCase
	userRepo  *fakeUserRepo
	tokenRepo *fakeTokenRepo
}

func newAuthFixture() *authFixture {
	userRepo := newFakeUserRepo()
	tenantRepo := newFakeTenantRepo()
	tokenRepo := newFakeTokenRepo()
	runner := &fakeTxRunner{tenantRepo: tenantRepo, userRepo: userRepo}
	uc := auth.NewAuthUseCase(userRepo, tenantRepo, tokenRepo, runner, auth.JWTConfig{
		Secret:          "secret-de-test",
		ExpMinutes:      15,
		RefreshExpHours: 168,
		Issuer:          "auditoria-pro-test",
	})
	return &authFixture{uc: uc, userRepo: userRepo, tokenRepo: tokenRepo}
}

func registerDefault(t *testing.T, fx *authFixture) *dto.RegisterResponse {
	t.Helper()
	out, err := fx.uc.Register(context.Background(), dto.RegisterRequest{
		TenantName: "Auditores del Norte",
		Username:   "jperez",
		Email:      "jperez@example.com",
		Password:   "contraseña-segura",
		FullName:   "Juana Pérez",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaTenantYMasterAdmin(t *testing.T) {
	fx := newAuthFixture()
	out := registerDefault(t, fx)

	assert.NotEmpty(t, out.Tenant.ID)
	assert.Equal(t, "Auditores del Norte", out.Tenant.Name)
	assert.True(t, out.Tenant.Active)

	assert.Equal(t, out.Tenant.ID, out.User.TenantID, "el usuario queda ligado al tenant recién creado")
	assert.Equal(t, entity.RoleMasterAdmin, out.User.Role, "el primer usuario es master_admin")
	assert.True(t, out.User.Active)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	fx := newAuthFixture()
	registerDefault(t, fx)

	_, err := fx.uc.Register(context.Background(), dto.RegisterRequest{
		TenantName: "Otro Tenant",
		Username:   "jperez",
		Email:      "otro@example.com",
		Password:   "otra-password",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	fx := newAuthFixture()
	registerDefault(t, fx)

	_, err := fx.uc.Register(context.Background(), dto.RegisterRequest{
		TenantName: "Otro Tenant",
		Username:   "mgomez",
		Email:      "jperez@example.com",
		Password:   "otra-password",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_CamposRequeridos(t *testing.T) {
	fx := newAuthFixture()
	_, err := fx.uc.Register(context.Background(), dto.RegisterRequest{
		TenantName: "Sin Usuario",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ConUsernameYConEmail(t *testing.T) {
	fx := newAuthFixture()
	registerDefault(t, fx)
	ctx := context.Background()

	out, err := fx.uc.Login(ctx, dto.LoginRequest{Username: "jperez", Password: "contraseña-segura"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, "jperez", out.User.Username)

	// El mismo campo acepta el email.
	out, err = fx.uc.Login(ctx, dto.LoginRequest{Username: "jperez@example.com", Password: "contraseña-segura"})
	require.NoError(t, err)
	assert.Equal(t, "jperez", out.User.Username)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	fx := newAuthFixture()
	registerDefault(t, fx)

	_, err := fx.uc.Login(context.Background(), dto.LoginRequest{Username: "jperez", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	fx := newAuthFixture()
	_, err := fx.uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	fx := newAuthFixture()
	out := registerDefault(t, fx)

	u := fx.userRepo.users[out.User.ID]
	u.Active = false

	_, err := fx.uc.Login(context.Background(), dto.LoginRequest{Username: "jperez", Password: "contraseña-segura"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh / Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_RotaElToken(t *testing.T) {
	fx := newAuthFixture()
	registerDefault(t, fx)
	ctx := context.Background()

	login, err := fx.uc.Login(ctx, dto.LoginRequest{Username: "jperez", Password: "contraseña-segura"})
	require.NoError(t, err)

	renewed, err := fx.uc.Refresh(ctx, dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, renewed.Token)
	assert.NotEqual(t, login.RefreshToken, renewed.RefreshToken, "el refresh rota: nunca reutiliza el token")

	// El token usado queda revocado y no sirve una segunda vez.
	_, err = fx.uc.Refresh(ctx, dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// El nuevo sí sirve.
	_, err = fx.uc.Refresh(ctx, dto.RefreshRequest{RefreshToken: renewed.RefreshToken})
	assert.NoError(t, err)
}

func TestRefresh_TokenDesconocido(t *testing.T) {
	fx := newAuthFixture()
	_, err := fx.uc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: "deadbeef"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogout_RevocaTodosLosRefresh(t *testing.T) {
	fx := newAuthFixture()
	out := registerDefault(t, fx)
	ctx := context.Background()

	login, err := fx.uc.Login(ctx, dto.LoginRequest{Username: "jperez", Password: "contraseña-segura"})
	require.NoError(t, err)

	require.NoError(t, fx.uc.Logout(ctx, out.User.ID))

	_, err = fx.uc.Refresh(ctx, dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, fx.tokenRepo.tokens, "logout elimina todos los tokens del usuario")
}
