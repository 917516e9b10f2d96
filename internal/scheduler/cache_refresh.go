package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
)

// CacheRefreshConfig representa a configuração do agendador de atualização do cache
type CacheRefreshConfig struct {
	CronSchedule   string
	RefreshEnabled bool
}

// CacheRefreshService mantém o cache de sales_data aquecido atualizando-o em
// segundo plano, para que a janela de TTL não expire para os usuários do
// dashboard enquanto o agendador estiver habilitado.
type CacheRefreshService struct {
	scheduler              *gocron.Scheduler
	config                 CacheRefreshConfig
	loader                 loading.Loader
	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
	lastRefreshWarning     string
}

// NewCacheRefreshService cria uma nova instância do serviço de atualização do cache
func NewCacheRefreshService(loader loading.Loader, appConfig *config.Config) *CacheRefreshService {
	refreshConfig := CacheRefreshConfig{
		CronSchedule:   appConfig.Cache.RefreshCron,
		RefreshEnabled: appConfig.Cache.RefreshEnabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.RefreshEnabled,
	}).Info("Configuração do agendador de atualização do cache carregada")

	return &CacheRefreshService{
		scheduler:      scheduler,
		config:         refreshConfig,
		loader:         loader,
		refreshRunning: false,
	}
}

// Start inicia o agendador
func (s *CacheRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Atualização periódica do cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshCache(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do cache: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do cache")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshCache força uma nova busca dos dados de vendas ignorando a janela de TTL
func (s *CacheRefreshService) refreshCache(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização do cache já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	startTime := time.Now()
	s.lastRefreshStartedAt = startTime
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	result, err := s.loader.Refresh(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao atualizar o cache de dados de vendas")
		return
	}

	// GetStatus lê estes campos de outras goroutines
	s.refreshMutex.Lock()
	s.lastRefreshWarning = result.Warning
	s.lastRefreshCompletedAt = time.Now()
	s.refreshMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration":     time.Since(startTime).String(),
		"record_count": len(result.Records),
		"warning":      result.Warning,
	}).Info("Atualização do cache de dados de vendas concluída")
}

// TriggerManualRefresh inicia manualmente uma atualização do cache
func (s *CacheRefreshService) TriggerManualRefresh() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização do cache já em andamento, ignorando solicitação manual")
		return
	}
	s.refreshMutex.Unlock()

	logrus.Info("Iniciando atualização manual do cache")
	go s.refreshCache(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *CacheRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return map[string]any{
		"refresh_enabled":           s.config.RefreshEnabled,
		"refresh_cron":              s.config.CronSchedule,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshCompletedAt,
		"last_refresh_warning":      s.lastRefreshWarning,
	}
}
