package reporting

import "github.com/pkg/errors"

var (
	// ErrCategoryRequired indica que o parâmetro de categoria não foi informado
	ErrCategoryRequired = errors.New("é necessário informar a categoria de produto")

	// ErrCategoryNotFound indica que a categoria não existe nos dados carregados
	ErrCategoryNotFound = errors.New("categoria de produto não encontrada nos dados carregados")
)
