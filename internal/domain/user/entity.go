package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName       = errors.New("nome do usuário não pode ser vazio")
	ErrEmptyEmail      = errors.New("email do usuário não pode ser vazio")
	ErrInvalidPassword = errors.New("senha deve ter pelo menos 6 caracteres")
)

// Papéis de usuário dentro do tenant.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// Status possíveis do usuário.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User representa um usuário do sistema, sempre vinculado a um tenant.
type User struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	LastLoginAt time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewUser cria um novo usuário com a senha já criptografada
func NewUser(tenantID, name, email, password, role string) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if role == "" {
		role = RoleSeller
	}

	now := time.Now()
	u := &User{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      name,
		Email:     email,
		Role:      role,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword criptografa e define a senha do usuário
func (u *User) SetPassword(password string) error {
	if len(password) < 6 {
		return ErrInvalidPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	u.UpdatedAt = time.Now()
	return nil
}

// CheckPassword verifica se a senha informada confere com a criptografada
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// IsActive informa se o usuário pode acessar o sistema
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsAdmin informa se o usuário administra o tenant
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
