package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/vitralsys/erp-vidracaria/internal/domain/tenant"
	pkgtenant "github.com/vitralsys/erp-vidracaria/pkg/tenant"
)

// TenantValidator implementa a interface para validação de tenant
type TenantValidator struct {
	repository tenant.Repository
}

// NewTenantValidator cria uma nova instância de TenantValidator
func NewTenantValidator(repository tenant.Repository) pkgtenant.TenantValidator {
	return &TenantValidator{
		repository: repository,
	}
}

// ValidateTenant verifica se um tenant existe e está ativo
func (v *TenantValidator) ValidateTenant(tenantID string) (bool, error) {
	t, err := v.repository.FindByID(context.Background(), tenantID)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return false, nil
		}
		return false, err
	}

	return t.IsActive(), nil
}

// Validate valida um tenant no contexto de uma requisição
func (v *TenantValidator) Validate(c *gin.Context, tenantID string) error {
	if tenantID == "" {
		return pkgtenant.ErrTenantNotSpecified
	}

	t, err := v.repository.FindByID(c.Request.Context(), tenantID)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return pkgtenant.ErrTenantNotFound
		}
		return fmt.Errorf("erro ao buscar tenant: %w", err)
	}

	if !t.IsActive() {
		return pkgtenant.ErrTenantNotActive
	}

	return nil
}
