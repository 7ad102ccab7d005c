package insighting

import "fmt"

// QueryExecutionError marca falha do warehouse ao executar a consulta gerada.
// O SQL fica disponível para log; a mensagem exposta ao cliente não o inclui.
type QueryExecutionError struct {
	SQL string
	Err error
}

func (e *QueryExecutionError) Error() string {
	return fmt.Sprintf("erro ao executar consulta no warehouse: %v", e.Err)
}

func (e *QueryExecutionError) Unwrap() error {
	return e.Err
}

// CompletionServiceError marca falha do serviço de geração de texto. Os dados
// e fatos já calculados continuam válidos quando ela ocorre.
type CompletionServiceError struct {
	Err error
}

func (e *CompletionServiceError) Error() string {
	return fmt.Sprintf("erro no serviço de geração de insight: %v", e.Err)
}

func (e *CompletionServiceError) Unwrap() error {
	return e.Err
}
