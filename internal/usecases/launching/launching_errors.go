package launching

import (
	"errors"
	"fmt"
)

// Erros de lançamento de campanha
var (
	ErrInvalidParameters = errors.New("parâmetros de lançamento inválidos")
	ErrPlatformRejection = errors.New("a plataforma rejeitou uma operação de criação")
	ErrLaunchNotFound    = errors.New("lançamento agendado não encontrado")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// LaunchError é um erro com contexto adicional para lançamentos
type LaunchError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *LaunchError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *LaunchError) Unwrap() error {
	return e.Err
}

// IsValidationError verifica se o erro é de parâmetros inválidos
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidParameters)
}

// NewLaunchError cria um novo erro de lançamento
func NewLaunchError(baseErr error, code string, details string) *LaunchError {
	return &LaunchError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
