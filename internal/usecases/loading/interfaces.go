package loading

import (
	"context"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/loader.go -package=mocks

// Result é o resultado de um carregamento da tabela sales_data. Records é a
// coleção completa retornada pela query ou uma coleção explicitamente vazia
// quando todas as tentativas de conexão falharam — nunca um resultado parcial.
type Result struct {
	Records     []domain.SalesRecord
	RefreshedAt time.Time
	FromCache   bool
	Warning     string
}

// Status converte o resultado nos metadados expostos nos payloads da API.
func (r *Result) Status() domain.DataStatus {
	return domain.DataStatus{
		RefreshedAt: r.RefreshedAt,
		FromCache:   r.FromCache,
		RecordCount: len(r.Records),
		Warning:     r.Warning,
	}
}

// Loader define o cache read-through sobre a tabela sales_data.
type Loader interface {
	// Load retorna o resultado em cache dentro da janela de TTL; fora dela,
	// busca no banco com tentativas limitadas. O esgotamento das tentativas em
	// falhas transitórias de conexão produz um Result vazio com Warning
	// preenchido e erro nil; qualquer outra falha é retornada como erro.
	Load(ctx context.Context) (*Result, error)

	// Refresh ignora a janela de TTL e força uma nova busca no banco.
	Refresh(ctx context.Context) (*Result, error)
}
