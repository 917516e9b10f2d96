package loading

import (
	"database/sql/driver"
	"errors"
	"io"
	"net"
	"syscall"

	"github.com/lib/pq"
)

// IsTransientError reconhece a única classe de falha tratada pelo loader:
// falha transitória de conexão com o banco. Qualquer outra classe (query
// malformada, falha de autenticação, schema incompatível) não é retentada.
func IsTransientError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// Classe 08: connection exception; 57P01-57P03: desligamento/indisponibilidade do servidor
		switch {
		case pqErr.Code.Class() == "08":
			return true
		case pqErr.Code == "57P01", pqErr.Code == "57P02", pqErr.Code == "57P03":
			return true
		}
	}

	return false
}
