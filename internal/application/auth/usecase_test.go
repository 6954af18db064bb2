package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cobranzas-api/internal/application/auth"
	"github.com/jhoicas/cobranzas-api/internal/application/dto"
	"github.com/jhoicas/cobranzas-api/internal/domain"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
	"github.com/jhoicas/cobranzas-api/pkg/jwt"
)

const secret = "test-secret"

type memUserRepo struct{ byEmail map[string]*entity.User }

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrInvalidInput
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func newAuth() (*auth.AuthUseCase, *memUserRepo) {
	repo := &memUserRepo{byEmail: map[string]*entity.User{}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 10, Issuer: "test"}), repo
}

func TestLogin_VendedorRecibeSuAlcance(t *testing.T) {
	uc, _ := newAuth()
	_, err := uc.CreateUser(context.Background(), auth.CreateUserInput{
		Email: "Ana@Example.com", Password: "secreta123", Role: entity.RoleVendedor, SellerCodes: "B, A",
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, "A,B", out.User.SellerScope)

	sub, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendedor, sub.Role)
	assert.Equal(t, "A,B", sub.SellerScope)
}

func TestLogin_AdminCarteraCompleta(t *testing.T) {
	uc, _ := newAuth()
	_, err := uc.CreateUser(context.Background(), auth.CreateUserInput{
		Email: "root@example.com", Password: "secreta123", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "root@example.com", Password: "secreta123"})
	require.NoError(t, err)
	sub, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.AllSellers, sub.SellerScope)
}

func TestLogin_Fallos(t *testing.T) {
	uc, repo := newAuth()
	_, err := uc.CreateUser(context.Background(), auth.CreateUserInput{
		Email: "luis@example.com", Password: "secreta123", SellerCodes: "C",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "luis@example.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	repo.byEmail["luis@example.com"].Status = "inactive"
	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "luis@example.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateUser_VendedorSinCodigos(t *testing.T) {
	uc, _ := newAuth()
	_, err := uc.CreateUser(context.Background(), auth.CreateUserInput{Email: "x@example.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
