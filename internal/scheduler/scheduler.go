// Package scheduler фоновий планувальник: нагадує бухгалтерам про
// ненараховану амортизацію за попередній місяць і, за увімкненої опції,
// нараховує її автоматично.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oz-oblik/assets-backend/internal/application/depreciation"
	"github.com/oz-oblik/assets-backend/internal/application/dto"
	"github.com/oz-oblik/assets-backend/internal/domain/entity"
	"github.com/oz-oblik/assets-backend/internal/domain/repository"
	"github.com/oz-oblik/assets-backend/pkg/config"
	"github.com/oz-oblik/assets-backend/pkg/logger"
)

// Scheduler періодично перевіряє, чи нараховано амортизацію за попередній
// календарний місяць. Нагадування за один період надсилається один раз.
type Scheduler struct {
	cfg        config.SchedulerConfig
	accrualUC  *depreciation.AccrualUseCase
	assetRepo  repository.AssetRepository
	recordRepo repository.DepreciationRecordRepository
	userRepo   repository.UserRepository
	notifRepo  repository.NotificationRepository
	log        *logger.Logger

	cancel         context.CancelFunc
	wg             sync.WaitGroup
	mu             sync.Mutex
	running        bool
	notifiedPeriod string // "2006-01" останнього надісланого нагадування
	sweptDay       string // "2006-01-02" останнього обходу зносу
}

// New конструює планувальник.
func New(
	cfg config.SchedulerConfig,
	accrualUC *depreciation.AccrualUseCase,
	assetRepo repository.AssetRepository,
	recordRepo repository.DepreciationRecordRepository,
	userRepo repository.UserRepository,
	notifRepo repository.NotificationRepository,
	log *logger.Logger,
) *Scheduler {
	return &Scheduler{
		cfg:        cfg,
		accrualUC:  accrualUC,
		assetRepo:  assetRepo,
		recordRepo: recordRepo,
		userRepo:   userRepo,
		notifRepo:  notifRepo,
		log:        log,
	}
}

// Start запускає фоновий цикл. Повторний виклик — no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	if !s.cfg.Enabled {
		s.log.Info().Msg("планувальник вимкнено")
		return
	}
	s.running = true

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(ctx)

	s.log.Info().
		Int("interval_minutes", s.cfg.CheckIntervalMins).
		Bool("auto_depreciation", s.cfg.AutoDepreciation).
		Msg("планувальник запущено")
}

// Stop зупиняє цикл і чекає завершення горутини.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	s.log.Info().Msg("планувальник зупинено")
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	interval := time.Duration(s.cfg.CheckIntervalMins) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.check(ctx)
	s.sweepWear(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.check(ctx)
			s.sweepWear(ctx)
		}
	}
}

// previousPeriod попередній календарний місяць відносно t.
func previousPeriod(t time.Time) (year, month int) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	prev := first.AddDate(0, 0, -1)
	return prev.Year(), int(prev.Month())
}

func (s *Scheduler) check(ctx context.Context) {
	year, month := previousPeriod(time.Now())
	period := fmt.Sprintf("%04d-%02d", year, month)

	records, err := s.recordRepo.ListByPeriod(ctx, year, month)
	if err != nil {
		s.log.Error().Err(err).Str("period", period).Msg("планувальник: перевірка нарахувань")
		return
	}
	if len(records) > 0 {
		return
	}

	active, err := s.assetRepo.ListActive(ctx, "")
	if err != nil {
		s.log.Error().Err(err).Msg("планувальник: вибірка активних ОЗ")
		return
	}
	if len(active) == 0 {
		return
	}

	if s.cfg.AutoDepreciation {
		s.autoAccrue(ctx, year, month, period)
		return
	}
	s.remind(ctx, year, month, period)
}

// autoAccrue нараховує амортизацію за період від імені системи. Об'єкти з
// виробничим методом пропускаються всередині юзкейсу: обсяг продукції
// без ручного введення невідомий.
func (s *Scheduler) autoAccrue(ctx context.Context, year, month int, period string) {
	res, err := s.accrualUC.AccruePeriod(ctx, "", dto.AccruePeriodRequest{Year: year, Month: month})
	if err != nil {
		s.log.Error().Err(err).Str("period", period).Msg("планувальник: автонарахування")
		return
	}
	s.log.Info().
		Str("period", period).
		Int("accrued", res.AccruedCount).
		Int("skipped", res.SkippedCount).
		Msg("планувальник: амортизацію нараховано автоматично")
}

// sweepWear щоденний обхід картотеки: знос понад 90% та повністю
// амортизовані об'єкти. Один обхід на календарний день.
func (s *Scheduler) sweepWear(ctx context.Context) {
	day := time.Now().Format("2006-01-02")
	s.mu.Lock()
	if s.sweptDay == day {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	active, err := s.assetRepo.ListActive(ctx, "")
	if err != nil {
		s.log.Error().Err(err).Msg("планувальник: обхід зносу")
		return
	}

	threshold := decimal.NewFromFloat(0.9)
	var ns []entity.Notification
	var recipients []*entity.User
	for _, a := range active {
		fully := a.CurrentBookValue.LessThanOrEqual(a.ResidualValue)
		highWear := !fully && a.InitialCost.IsPositive() &&
			a.AccumulatedDepreciation.Div(a.InitialCost).GreaterThanOrEqual(threshold)
		if !fully && !highWear {
			continue
		}
		if recipients == nil {
			recipients, err = s.userRepo.ListByRoles(ctx, entity.RoleAdmin, entity.RoleAccountant)
			if err != nil {
				s.log.Error().Err(err).Msg("планувальник: вибірка одержувачів")
				return
			}
		}
		notifType := entity.NotificationHighWear
		title := "Знос понад 90%"
		msg := fmt.Sprintf("Об'єкт %s (%s) зношено понад 90%%.", a.Name, a.InventoryNumber)
		if fully {
			notifType = entity.NotificationFullDepreciation
			title = "Об'єкт повністю амортизовано"
			msg = fmt.Sprintf("Об'єкт %s (%s) повністю амортизовано. Розгляньте списання або переоцінку.", a.Name, a.InventoryNumber)
		}
		now := time.Now()
		for _, u := range recipients {
			ns = append(ns, entity.Notification{
				ID:          uuid.New().String(),
				RecipientID: u.ID,
				Type:        notifType,
				Title:       title,
				Message:     msg,
				AssetID:     a.ID,
				CreatedAt:   now,
			})
		}
	}

	if len(ns) > 0 {
		if err := s.notifRepo.CreateBatch(ctx, ns); err != nil {
			s.log.Error().Err(err).Msg("планувальник: сповіщення про знос")
			return
		}
		s.log.Info().Int("notifications", len(ns)).Msg("планувальник: обхід зносу завершено")
	}

	s.mu.Lock()
	s.sweptDay = day
	s.mu.Unlock()
}

// remind надсилає бухгалтерам і адміністраторам одне нагадування за період.
func (s *Scheduler) remind(ctx context.Context, year, month int, period string) {
	s.mu.Lock()
	already := s.notifiedPeriod == period
	s.mu.Unlock()
	if already {
		return
	}

	recipients, err := s.userRepo.ListByRoles(ctx, entity.RoleAdmin, entity.RoleAccountant)
	if err != nil {
		s.log.Error().Err(err).Msg("планувальник: вибірка одержувачів")
		return
	}

	now := time.Now()
	ns := make([]entity.Notification, 0, len(recipients))
	for _, u := range recipients {
		ns = append(ns, entity.Notification{
			ID:          uuid.New().String(),
			RecipientID: u.ID,
			Type:        entity.NotificationDepreciationDue,
			Title:       "Амортизація не нарахована",
			Message:     fmt.Sprintf("Амортизацію за %02d.%d ще не нараховано.", month, year),
			CreatedAt:   now,
		})
	}
	if len(ns) == 0 {
		return
	}
	if err := s.notifRepo.CreateBatch(ctx, ns); err != nil {
		s.log.Error().Err(err).Str("period", period).Msg("планувальник: створення сповіщень")
		return
	}

	s.mu.Lock()
	s.notifiedPeriod = period
	s.mu.Unlock()

	s.log.Info().Str("period", period).Int("recipients", len(ns)).Msg("планувальник: нагадування надіслано")
}
