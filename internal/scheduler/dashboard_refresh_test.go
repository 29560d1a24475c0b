package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/nextapps-br/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/celebrating"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubAggregator conta os ciclos e permite segurar um ciclo em andamento
type stubAggregator struct {
	mutex     sync.Mutex
	calls     int
	result    *aggregating.MonthlyAggregate
	err       error
	onStarted chan struct{}
	release   chan struct{}
}

func (a *stubAggregator) AggregateMonth(month time.Time) (*aggregating.MonthlyAggregate, error) {
	a.mutex.Lock()
	a.calls++
	a.mutex.Unlock()

	if a.onStarted != nil {
		a.onStarted <- struct{}{}
	}
	if a.release != nil {
		<-a.release
	}

	if a.err != nil {
		return nil, a.err
	}
	return a.result, nil
}

func (a *stubAggregator) callCount() int {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return a.calls
}

// recordingNotifier acumula o que o ciclo publicou
type recordingNotifier struct {
	mutex        sync.Mutex
	snapshots    []*domain.DashboardSnapshot
	celebrations []*domain.CelebrationEvent
}

func (n *recordingNotifier) NotifySnapshot(snapshot *domain.DashboardSnapshot) {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.snapshots = append(n.snapshots, snapshot)
}

func (n *recordingNotifier) NotifyCelebration(event *domain.CelebrationEvent) {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.celebrations = append(n.celebrations, event)
}

func (n *recordingNotifier) snapshotCount() int {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	return len(n.snapshots)
}

func sampleAggregate() *aggregating.MonthlyAggregate {
	return &aggregating.MonthlyAggregate{
		Vendedores: []domain.VendedorMetrics{
			{Vendedor: domain.Vendedor{ID: "VND001", Nome: "Ana"}, ValorEntrada: 500},
			{Vendedor: domain.Vendedor{ID: "VND002", Nome: "Bruno"}, ValorEntrada: 900},
		},
		Squads: []domain.SquadMetrics{},
	}
}

func newRefreshService(t *testing.T, aggregator aggregating.Aggregator, notifier Notifier) (*DashboardRefreshService, *mocks.MockMetaRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	metaRepo := mocks.NewMockMetaRepository(ctrl)

	return &DashboardRefreshService{
		aggregator: aggregator,
		tracker:    ranking.NewTracker(),
		detector:   celebrating.NewDetector(10 * time.Second),
		metaRepo:   metaRepo,
		notifier:   notifier,
		config: DashboardRefreshConfig{
			Interval:       30 * time.Second,
			RefreshEnabled: true,
		},
	}, metaRepo
}

func TestDashboardRefreshService_Refresh(t *testing.T) {
	t.Run("Ciclo produz snapshot ordenado e conectado", func(t *testing.T) {
		aggregator := &stubAggregator{result: sampleAggregate()}
		notifier := &recordingNotifier{}
		service, metaRepo := newRefreshService(t, aggregator, notifier)

		metaRepo.EXPECT().GetMetaByMonth(gomock.Any()).Return(nil, nil)

		service.Refresh()

		snapshot := service.Snapshot()
		require.NotNil(t, snapshot)
		assert.True(t, snapshot.Connected)
		assert.Equal(t, time.Now().Format("2006-01"), snapshot.Month)

		require.Len(t, snapshot.Ranking, 2)
		assert.Equal(t, "VND002", snapshot.Ranking[0].Vendedor.ID)

		assert.Equal(t, 1, notifier.snapshotCount())
	})

	t.Run("Falha na meta não invalida o ciclo", func(t *testing.T) {
		aggregator := &stubAggregator{result: sampleAggregate()}
		service, metaRepo := newRefreshService(t, aggregator, &recordingNotifier{})

		metaRepo.EXPECT().GetMetaByMonth(gomock.Any()).Return(nil, assert.AnError)

		service.Refresh()

		snapshot := service.Snapshot()
		require.NotNil(t, snapshot)
		assert.True(t, snapshot.Connected)
		assert.Nil(t, snapshot.Meta)
	})

	t.Run("Falha na agregação preserva o último snapshot bom", func(t *testing.T) {
		aggregator := &stubAggregator{result: sampleAggregate()}
		service, metaRepo := newRefreshService(t, aggregator, &recordingNotifier{})

		metaRepo.EXPECT().GetMetaByMonth(gomock.Any()).Return(nil, nil)
		service.Refresh()

		bom := service.Snapshot()
		require.NotNil(t, bom)
		require.Len(t, bom.Ranking, 2)

		aggregator.err = assert.AnError
		service.Refresh()

		degraded := service.Snapshot()
		require.NotNil(t, degraded)
		assert.False(t, degraded.Connected)
		assert.NotEmpty(t, degraded.Error)
		// O ranking anterior continua sendo servido
		assert.Len(t, degraded.Ranking, 2)
	})

	t.Run("Falha antes do primeiro ciclo produz snapshot vazio desconectado", func(t *testing.T) {
		aggregator := &stubAggregator{err: assert.AnError}
		service, _ := newRefreshService(t, aggregator, &recordingNotifier{})

		service.Refresh()

		snapshot := service.Snapshot()
		require.NotNil(t, snapshot)
		assert.False(t, snapshot.Connected)
		assert.Empty(t, snapshot.Ranking)
	})

	t.Run("Disparos durante um ciclo coalescem em uma única re-execução", func(t *testing.T) {
		aggregator := &stubAggregator{
			result:    sampleAggregate(),
			onStarted: make(chan struct{}, 4),
			release:   make(chan struct{}),
		}
		service, metaRepo := newRefreshService(t, aggregator, &recordingNotifier{})

		metaRepo.EXPECT().GetMetaByMonth(gomock.Any()).Return(nil, nil).Times(2)

		done := make(chan struct{})
		go func() {
			service.Refresh()
			close(done)
		}()

		// Espera o primeiro ciclo entrar na agregação
		<-aggregator.onStarted

		// Três disparos com o ciclo em andamento: coalescem em um só
		service.Refresh()
		service.Refresh()
		service.Refresh()

		// Libera o primeiro ciclo; a re-execução pendente roda em seguida
		aggregator.release <- struct{}{}
		<-aggregator.onStarted
		aggregator.release <- struct{}{}

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("ciclo de atualização não terminou")
		}

		assert.Equal(t, 2, aggregator.callCount())
	})
}

func TestDashboardRefreshService_GetStatus(t *testing.T) {
	aggregator := &stubAggregator{result: sampleAggregate()}
	service, metaRepo := newRefreshService(t, aggregator, &recordingNotifier{})

	status := service.GetStatus()
	assert.Equal(t, false, status["running"])
	assert.Equal(t, 30, status["interval_seconds"])
	assert.NotContains(t, status, "last_sync_completed_at")

	metaRepo.EXPECT().GetMetaByMonth(gomock.Any()).Return(nil, nil)
	service.Refresh()

	status = service.GetStatus()
	assert.Contains(t, status, "last_sync_started_at")
	assert.Contains(t, status, "last_sync_completed_at")
}

func TestDashboardRefreshService_SnapshotForMonth(t *testing.T) {
	aggregator := &stubAggregator{result: sampleAggregate()}
	service, metaRepo := newRefreshService(t, aggregator, &recordingNotifier{})

	month := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	meta := &domain.Meta{Mes: month, ValorEntradaMeta: 50000}
	metaRepo.EXPECT().GetMetaByMonth(month).Return(meta, nil)

	snapshot, err := service.SnapshotForMonth(month)
	require.NoError(t, err)

	assert.Equal(t, "2026-05", snapshot.Month)
	assert.Equal(t, meta, snapshot.Meta)

	// Consulta histórica sai ordenada mas sem setas de tendência
	require.Len(t, snapshot.Ranking, 2)
	assert.Equal(t, "VND002", snapshot.Ranking[0].Vendedor.ID)
	assert.Nil(t, snapshot.Ranking[0].PosicaoAnterior)
}
