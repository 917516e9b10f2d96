package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading/mocks"
	"go.uber.org/mock/gomock"
)

func TestCacheRefreshService_refreshCache(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(loader *mocks.MockLoader)
		validate func(t *testing.T, service *CacheRefreshService)
	}{
		{
			name: "Atualização com sucesso registra conclusão e limpa o aviso",
			setup: func(loader *mocks.MockLoader) {
				loader.EXPECT().
					Refresh(gomock.Any()).
					Return(&loading.Result{
						Records:     []domain.SalesRecord{{ID: 1}},
						RefreshedAt: time.Now(),
					}, nil)
			},
			validate: func(t *testing.T, service *CacheRefreshService) {
				assert.False(t, service.lastRefreshCompletedAt.IsZero())
				assert.Empty(t, service.lastRefreshWarning)
			},
		},
		{
			name: "Esgotamento das tentativas preserva o aviso no status",
			setup: func(loader *mocks.MockLoader) {
				loader.EXPECT().
					Refresh(gomock.Any()).
					Return(&loading.Result{
						Records:     []domain.SalesRecord{},
						RefreshedAt: time.Now(),
						Warning:     loading.WarningDatabaseUnavailable,
					}, nil)
			},
			validate: func(t *testing.T, service *CacheRefreshService) {
				assert.Equal(t, loading.WarningDatabaseUnavailable, service.lastRefreshWarning)

				status := service.GetStatus()
				assert.Equal(t, loading.WarningDatabaseUnavailable, status["last_refresh_warning"])
			},
		},
		{
			name: "Erro não transitório não registra conclusão",
			setup: func(loader *mocks.MockLoader) {
				loader.EXPECT().
					Refresh(gomock.Any()).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, service *CacheRefreshService) {
				assert.True(t, service.lastRefreshCompletedAt.IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			loader := mocks.NewMockLoader(ctrl)
			tt.setup(loader)

			service := &CacheRefreshService{
				config: CacheRefreshConfig{
					CronSchedule:   "*/1 * * * *",
					RefreshEnabled: true,
				},
				loader: loader,
			}

			service.refreshCache(context.Background())
			tt.validate(t, service)
		})
	}
}

func TestCacheRefreshService_GetStatusDuranteAtualizacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().
		Refresh(gomock.Any()).
		Return(&loading.Result{
			Records:     []domain.SalesRecord{{ID: 1}},
			RefreshedAt: time.Now(),
		}, nil).
		AnyTimes()

	service := &CacheRefreshService{
		config: CacheRefreshConfig{
			CronSchedule:   "*/1 * * * *",
			RefreshEnabled: true,
		},
		loader: loader,
	}

	// Leituras de status simultâneas à atualização não podem disputar os
	// campos de acompanhamento
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			service.refreshCache(context.Background())
		}()
		go func() {
			defer wg.Done()
			_ = service.GetStatus()
		}()
	}
	wg.Wait()

	status := service.GetStatus()
	assert.Equal(t, true, status["refresh_enabled"])
}
