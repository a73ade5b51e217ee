package budget

import "context"

// Cache é a persistência write-through do orçamento em andamento (o papel que
// o armazenamento local do dispositivo cumpria no aplicativo original). Cada
// mutação do orçamento é serializada por inteiro; a leitura na abertura da
// sessão restaura o orçamento não finalizado.
type Cache interface {
	// Load restaura o orçamento do usuário. Quando não há cache gravado,
	// retorna um orçamento vazio, não um erro.
	Load(ctx context.Context, tenantID, ownerID string) (*Budget, error)

	// Save grava o orçamento por inteiro (última escrita vence).
	Save(ctx context.Context, tenantID, ownerID string, b *Budget) error

	// Clear remove o cache do usuário ("novo orçamento").
	Clear(ctx context.Context, tenantID, ownerID string) error
}
