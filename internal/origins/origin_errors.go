package origins

import "fmt"

// InvalidOriginError indica que a chave de origem solicitada não existe no
// registro. É erro de cliente (400), nunca de servidor.
type InvalidOriginError struct {
	Key string
}

// Error implementa a interface error
func (e *InvalidOriginError) Error() string {
	return fmt.Sprintf("origem '%s' não mapeada", e.Key)
}

// SchemaError indica configuração interna inválida no registro (coluna vazia
// ou referência de derivada a campo inexistente). É bug de configuração: deve
// falhar alto na montagem da query, nunca emitir SQL malformado.
type SchemaError struct {
	Context string
	Detail  string
}

// Error implementa a interface error
func (e *SchemaError) Error() string {
	return fmt.Sprintf("registro de origens inválido em %s: %s", e.Context, e.Detail)
}
