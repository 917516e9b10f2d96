package loading_test

import (
	"database/sql/driver"
	"io"
	"net"
	"syscall"
	"testing"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
)

func TestIsTransientError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		transient bool
	}{
		{
			name:      "Nulo não é transitório",
			err:       nil,
			transient: false,
		},
		{
			name:      "Conexão inválida do driver",
			err:       driver.ErrBadConn,
			transient: true,
		},
		{
			name:      "EOF durante o handshake",
			err:       io.EOF,
			transient: true,
		},
		{
			name:      "Conexão recusada",
			err:       syscall.ECONNREFUSED,
			transient: true,
		},
		{
			name:      "Conexão encerrada pelo par",
			err:       syscall.ECONNRESET,
			transient: true,
		},
		{
			name:      "Timeout de rede",
			err:       &net.DNSError{Err: "timeout", IsTimeout: true},
			transient: true,
		},
		{
			name:      "Erro de conexão embrulhado ainda é reconhecido",
			err:       errors.Wrap(driver.ErrBadConn, "erro ao executar a query"),
			transient: true,
		},
		{
			name:      "Classe 08 do PostgreSQL (connection exception)",
			err:       &pq.Error{Code: "08006"},
			transient: true,
		},
		{
			name:      "57P01 (desligamento pelo administrador)",
			err:       &pq.Error{Code: "57P01"},
			transient: true,
		},
		{
			name:      "57P03 (servidor indisponível)",
			err:       &pq.Error{Code: "57P03"},
			transient: true,
		},
		{
			name:      "Erro de sintaxe não é retentado",
			err:       &pq.Error{Code: "42601"},
			transient: false,
		},
		{
			name:      "Falha de autenticação não é retentada",
			err:       &pq.Error{Code: "28P01"},
			transient: false,
		},
		{
			name:      "Erro genérico não é retentado",
			err:       errors.New("tabela inexistente"),
			transient: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.transient, loading.IsTransientError(tt.err))
		})
	}
}
