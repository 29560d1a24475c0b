// Package scheduler contém os serviços de agendamento do ciclo de
// atualização do telão
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/nextapps-br/sales-dashboard-api/infrastructure/repository"
	"github.com/nextapps-br/sales-dashboard-api/internal/config"
	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/celebrating"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/ranking"
	"github.com/sirupsen/logrus"
)

// ChangeFeed entrega o nome do canal de cada notificação de mudança do
// banco. Satisfeito por postgres.ChangeListener.
type ChangeFeed interface {
	Events() <-chan string
}

// Notifier recebe o resultado de cada ciclo para repassar aos clientes
// conectados ao telão
type Notifier interface {
	NotifySnapshot(snapshot *domain.DashboardSnapshot)
	NotifyCelebration(event *domain.CelebrationEvent)
}

type DashboardRefreshConfig struct {
	Interval       time.Duration
	RefreshEnabled bool
	ListenEnabled  bool
}

// DashboardRefreshService mantém o snapshot do mês corrente atualizado:
// um ciclo imediato na subida, um ciclo a cada intervalo do timer e um
// ciclo a cada notificação de mudança do banco. Disparos que chegam com
// um ciclo em andamento são coalescidos em uma única re-execução.
type DashboardRefreshService struct {
	scheduler  *gocron.Scheduler
	aggregator aggregating.Aggregator
	tracker    *ranking.Tracker
	detector   *celebrating.Detector
	metaRepo   repository.MetaRepository
	feed       ChangeFeed
	notifier   Notifier
	config     DashboardRefreshConfig

	syncMutex           sync.Mutex
	syncRunning         bool
	syncPending         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time

	snapshotMutex sync.RWMutex
	snapshot      *domain.DashboardSnapshot
}

func NewDashboardRefreshService(
	aggregator aggregating.Aggregator,
	tracker *ranking.Tracker,
	detector *celebrating.Detector,
	metaRepo repository.MetaRepository,
	feed ChangeFeed,
	notifier Notifier,
	cfg *config.Config,
) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		Interval:       time.Duration(cfg.Dashboard.RefreshIntervalSeconds) * time.Second,
		RefreshEnabled: cfg.Dashboard.RefreshEnabled,
		ListenEnabled:  cfg.Dashboard.ListenNotificationsEnabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"interval":       refreshConfig.Interval,
		"listen_enabled": refreshConfig.ListenEnabled,
	}).Info("Configuração do ciclo de atualização do telão carregada")

	return &DashboardRefreshService{
		scheduler:  scheduler,
		aggregator: aggregator,
		tracker:    tracker,
		detector:   detector,
		metaRepo:   metaRepo,
		feed:       feed,
		notifier:   notifier,
		config:     refreshConfig,
	}
}

func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Ciclo de atualização do telão desabilitado por configuração")
		return nil
	}

	// Ciclo imediato na subida: o telão não espera o primeiro tick
	go s.Refresh()

	_, err := s.scheduler.Every(s.config.Interval).Do(func() {
		s.Refresh()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ciclo de atualização do telão: %w", err)
	}

	s.scheduler.StartAsync()

	if s.config.ListenEnabled && s.feed != nil {
		go s.consumeChangeFeed(ctx)
	}

	go func() {
		<-ctx.Done()
		logrus.Info("Parando ciclo de atualização do telão")
		s.scheduler.Stop()
	}()

	return nil
}

// consumeChangeFeed dispara um ciclo a cada notificação de mudança vinda
// do banco
func (s *DashboardRefreshService) consumeChangeFeed(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case channel, ok := <-s.feed.Events():
			if !ok {
				logrus.Warn("Canal de notificações do banco fechado")
				return
			}

			logrus.WithField("channel", channel).Debug("Mudança no banco detectada, atualizando telão")
			s.Refresh()
		}
	}
}

// Refresh executa um ciclo de atualização. Disparos simultâneos não
// enfileiram: o que chega durante um ciclo marca uma única re-execução,
// garantindo que o snapshot final reflita o estado pós-mudança.
func (s *DashboardRefreshService) Refresh() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncPending = true
		s.syncMutex.Unlock()
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	for {
		s.runCycle()

		s.syncMutex.Lock()
		if !s.syncPending {
			s.syncRunning = false
			s.lastSyncCompletedAt = time.Now()
			s.syncMutex.Unlock()
			return
		}
		s.syncPending = false
		s.syncMutex.Unlock()
	}
}

func (s *DashboardRefreshService) runCycle() {
	now := time.Now()

	aggregate, err := s.aggregator.AggregateMonth(now)
	if err != nil {
		logrus.WithError(err).Error("Erro no ciclo de atualização do telão")
		s.markDisconnected(err)
		return
	}

	ranked := s.tracker.Rank(aggregate.Vendedores)
	event := s.detector.Observe(ranked, aggregate.Vendedores)

	meta, err := s.metaRepo.GetMetaByMonth(now)
	if err != nil {
		// A meta é decorativa no telão; a falha não invalida o ciclo
		logrus.WithError(err).Warn("Erro ao buscar meta do mês no ciclo de atualização")
		meta = nil
	}

	snapshot := &domain.DashboardSnapshot{
		Month:      now.Format("2006-01"),
		Ranking:    ranked,
		Squads:     aggregate.Squads,
		Meta:       meta,
		LastUpdate: now,
		Connected:  true,
	}

	s.snapshotMutex.Lock()
	s.snapshot = snapshot
	s.snapshotMutex.Unlock()

	if s.notifier != nil {
		s.notifier.NotifySnapshot(snapshot)
		if event != nil {
			s.notifier.NotifyCelebration(event)
		}
	}
}

// markDisconnected preserva o último snapshot bom, apenas sinalizando a
// falha. O telão continua mostrando o último ranking conhecido.
func (s *DashboardRefreshService) markDisconnected(err error) {
	s.snapshotMutex.Lock()
	defer s.snapshotMutex.Unlock()

	if s.snapshot == nil {
		s.snapshot = &domain.DashboardSnapshot{
			Month:     time.Now().Format("2006-01"),
			Ranking:   []domain.VendedorMetrics{},
			Squads:    []domain.SquadMetrics{},
			Connected: false,
			Error:     err.Error(),
		}
		return
	}

	degraded := *s.snapshot
	degraded.Connected = false
	degraded.Error = err.Error()
	s.snapshot = &degraded
}

// Snapshot retorna o resultado do último ciclo, ou nil antes do primeiro
func (s *DashboardRefreshService) Snapshot() *domain.DashboardSnapshot {
	s.snapshotMutex.RLock()
	defer s.snapshotMutex.RUnlock()

	return s.snapshot
}

// SnapshotForMonth calcula sob demanda o resumo de um mês passado. Meses
// históricos não participam do ciclo ao vivo: saem sem setas de
// tendência e não disparam comemorações.
func (s *DashboardRefreshService) SnapshotForMonth(month time.Time) (*domain.DashboardSnapshot, error) {
	aggregate, err := s.aggregator.AggregateMonth(month)
	if err != nil {
		return nil, err
	}

	meta, err := s.metaRepo.GetMetaByMonth(month)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao buscar meta do mês na consulta histórica")
		meta = nil
	}

	return &domain.DashboardSnapshot{
		Month:      month.Format("2006-01"),
		Ranking:    ranking.Sort(aggregate.Vendedores),
		Squads:     aggregate.Squads,
		Meta:       meta,
		LastUpdate: time.Now(),
		Connected:  true,
	}, nil
}

// GetStatus retorna o estado do ciclo para o endpoint administrativo
func (s *DashboardRefreshService) GetStatus() map[string]interface{} {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]interface{}{
		"running":          s.syncRunning,
		"pending":          s.syncPending,
		"refresh_enabled":  s.config.RefreshEnabled,
		"listen_enabled":   s.config.ListenEnabled,
		"interval_seconds": int(s.config.Interval.Seconds()),
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}

	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}

	return status
}
