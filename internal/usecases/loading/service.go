package loading

import (
	"context"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const cacheKey = "sales_data"

// WarningDatabaseUnavailable é o aviso visível ao usuário emitido quando todas
// as tentativas de conexão com o banco foram esgotadas.
const WarningDatabaseUnavailable = "unable to connect to the database after multiple attempts"

// LoaderConfig representa a configuração do cache read-through e da política de retry
type LoaderConfig struct {
	TTL         time.Duration
	MaxAttempts uint
	RetryDelay  time.Duration
}

// Service implementa Loader: um cache read-through com TTL sobre a query fixa
// da tabela sales_data, com retry limitado para falhas transitórias de conexão.
type Service struct {
	config          LoaderConfig
	salesRepository repository.SalesRecordRepository
	cache           *cache.Cache

	// fetchMutex garante no máximo uma busca concorrente por janela de TTL;
	// quem esperar pelo lock reaproveita o resultado de quem buscou primeiro.
	fetchMutex sync.Mutex
}

// NewService cria o loader com a configuração global da aplicação
func NewService(salesRepository repository.SalesRecordRepository, appConfig *config.Config) Loader {
	// Valores não positivos virariam retry infinito (ou um uint gigante) no
	// retry.Attempts; o mínimo é uma única tentativa
	attempts := appConfig.Database.RetryAttempts
	if attempts < 1 {
		logrus.WithField("db_retry_attempts", attempts).
			Warn("Número de tentativas de conexão inválido, usando 1")
		attempts = 1
	}

	loaderConfig := LoaderConfig{
		TTL:         time.Duration(appConfig.Cache.TTLSeconds) * time.Second,
		MaxAttempts: uint(attempts),
		RetryDelay:  time.Duration(appConfig.Database.RetryDelaySeconds) * time.Second,
	}

	logrus.WithFields(logrus.Fields{
		"cache_ttl":   loaderConfig.TTL.String(),
		"max_retries": loaderConfig.MaxAttempts,
		"retry_delay": loaderConfig.RetryDelay.String(),
	}).Info("Configuração do loader de dados de vendas carregada")

	return NewServiceWithConfig(salesRepository, loaderConfig)
}

// NewServiceWithConfig cria o loader com configuração explícita
func NewServiceWithConfig(salesRepository repository.SalesRecordRepository, loaderConfig LoaderConfig) *Service {
	return &Service{
		config:          loaderConfig,
		salesRepository: salesRepository,
		cache:           cache.New(loaderConfig.TTL, loaderConfig.TTL),
	}
}

func (s *Service) Load(ctx context.Context) (*Result, error) {
	if result, ok := s.cached(); ok {
		return result, nil
	}

	s.fetchMutex.Lock()
	defer s.fetchMutex.Unlock()

	// Revalidar sob o lock: outra chamada pode ter preenchido o cache enquanto
	// esta esperava
	if result, ok := s.cached(); ok {
		return result, nil
	}

	return s.fetch(ctx)
}

func (s *Service) Refresh(ctx context.Context) (*Result, error) {
	s.fetchMutex.Lock()
	defer s.fetchMutex.Unlock()

	return s.fetch(ctx)
}

// cached retorna uma visão do resultado memoizado marcada como FromCache.
// A fatia de registros é compartilhada: os registros são somente leitura.
func (s *Service) cached() (*Result, bool) {
	entry, ok := s.cache.Get(cacheKey)
	if !ok {
		return nil, false
	}

	stored := entry.(*Result)
	return &Result{
		Records:     stored.Records,
		RefreshedAt: stored.RefreshedAt,
		FromCache:   true,
		Warning:     stored.Warning,
	}, true
}

// fetch executa a query com tentativas limitadas e memoiza o resultado.
// O esgotamento das tentativas em falhas transitórias é rebaixado para um
// aviso não fatal com coleção vazia; qualquer outra falha sobe como erro.
func (s *Service) fetch(ctx context.Context) (*Result, error) {
	var records []domain.SalesRecord

	err := retry.Do(
		func() error {
			fetched, err := s.salesRepository.ListAll(ctx)
			if err != nil {
				return err
			}
			records = fetched
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(s.config.MaxAttempts),
		retry.Delay(s.config.RetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(IsTransientError),
		retry.OnRetry(func(attempt uint, err error) {
			logrus.WithError(err).WithFields(logrus.Fields{
				"attempt":      attempt + 1,
				"max_attempts": s.config.MaxAttempts,
			}).Info("Falha transitória ao consultar sales_data, aguardando para tentar novamente")
		}),
	)
	if err != nil {
		if !IsTransientError(err) {
			return nil, err
		}

		// Aviso único por busca; o resultado vazio também é memoizado pela
		// janela de TTL, como um resultado válido e terminal
		logrus.WithError(err).WithField("max_attempts", s.config.MaxAttempts).
			Warn(WarningDatabaseUnavailable)

		failure := &Result{
			Records:     []domain.SalesRecord{},
			RefreshedAt: time.Now(),
			Warning:     WarningDatabaseUnavailable,
		}
		s.cache.Set(cacheKey, failure, cache.DefaultExpiration)

		return failure, nil
	}

	result := &Result{
		Records:     records,
		RefreshedAt: time.Now(),
	}
	s.cache.Set(cacheKey, result, cache.DefaultExpiration)

	logrus.WithField("record_count", len(records)).Debug("Dados de vendas carregados do banco")

	return result, nil
}
