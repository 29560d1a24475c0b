package account

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de contas
var (
	// Erros de validação
	ErrUserIDRequired = errors.New("user ID is required")
	ErrUserNotFound   = errors.New("user not found")
	ErrMissingPayload = errors.New("missing required payload")

	// Erros de serviços externos
	ErrGatewayIntegration = errors.New("error calling billing gateway")
	ErrGatewayRejected    = errors.New("billing gateway rejected the operation")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// AccountError é um erro com contexto adicional para contas
type AccountError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	UserID  int    // ID do usuário envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError cria um novo AccountError
func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewAccountErrorWithID cria um novo AccountError com ID do usuário
func NewAccountErrorWithID(err error, code string, userID int, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
