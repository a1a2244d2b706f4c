package service_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/fast800/internal/error_values"
	"github.com/limbo/fast800/internal/service"
	"github.com/limbo/fast800/pkg/entity"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

// Variables for tests
var (
	userID = uuid.New()
	// 2024-01-02 09:30 UTC
	fixedNow = time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC)
)

func fixedClock() service.Clock {
	return service.Clock{
		Now: func() time.Time { return fixedNow },
		Loc: time.UTC,
	}
}

type memRecipes struct {
	mu       sync.Mutex
	recipes  map[string]*entity.Recipe
	getCalls map[string]int
}

func newMemRecipes(recipes ...entity.Recipe) *memRecipes {
	m := &memRecipes{
		recipes:  make(map[string]*entity.Recipe),
		getCalls: make(map[string]int),
	}
	for i := range recipes {
		r := recipes[i]
		m.recipes[r.ID] = &r
	}
	return m
}

func (m *memRecipes) Save(ctx context.Context, recipe *entity.Recipe) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := *recipe
	m.recipes[r.ID] = &r
	return nil
}

func (m *memRecipes) GetByID(ctx context.Context, uid uuid.UUID, id string) (*entity.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls[id]++
	r, ok := m.recipes[id]
	if !ok {
		return nil, errorvalues.ErrRecipeNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memRecipes) GetAllByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Recipe, 0, len(m.recipes))
	for _, r := range m.recipes {
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memRecipes) Delete(ctx context.Context, uid uuid.UUID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.recipes[id]; !ok {
		return errorvalues.ErrRecipeNotFound
	}
	delete(m.recipes, id)
	return nil
}

func (m *memRecipes) totalGets() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.getCalls {
		total += n
	}
	return total
}

type memPlans struct {
	plans map[string]*entity.StoredDayPlan
}

func newMemPlans() *memPlans {
	return &memPlans{plans: make(map[string]*entity.StoredDayPlan)}
}

func (m *memPlans) Get(ctx context.Context, uid uuid.UUID, date string) (*entity.StoredDayPlan, error) {
	p, ok := m.plans[date]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memPlans) Save(ctx context.Context, uid uuid.UUID, plan *entity.StoredDayPlan) error {
	cp := *plan
	m.plans[plan.Date] = &cp
	return nil
}

func (m *memPlans) GetRange(ctx context.Context, uid uuid.UUID, from, to string) ([]*entity.StoredDayPlan, error) {
	out := make([]*entity.StoredDayPlan, 0)
	for date, p := range m.plans {
		if date >= from && date <= to {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

type memLegacy struct {
	data    map[string]entity.DayPlan
	deleted bool
}

func (m *memLegacy) Get(ctx context.Context, uid uuid.UUID) (map[string]entity.DayPlan, error) {
	if m.deleted {
		return nil, nil
	}
	return m.data, nil
}

func (m *memLegacy) Delete(ctx context.Context, uid uuid.UUID) error {
	if m.deleted || m.data == nil {
		return errorvalues.ErrNoLegacyPlan
	}
	m.deleted = true
	return nil
}

type memLogs struct {
	logs        map[string]*entity.DailyLog
	deleteCalls int
	deleteErr   error
}

func newMemLogs(logs ...entity.DailyLog) *memLogs {
	m := &memLogs{logs: make(map[string]*entity.DailyLog)}
	for i := range logs {
		l := logs[i]
		m.logs[l.Date] = &l
	}
	return m
}

func (m *memLogs) Get(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyLog, error) {
	l, ok := m.logs[date]
	if !ok {
		return nil, nil
	}
	cp := *l
	cp.Items = append([]entity.FoodLogItem{}, l.Items...)
	cp.Workouts = append([]entity.WorkoutItem{}, l.Workouts...)
	return &cp, nil
}

func (m *memLogs) Save(ctx context.Context, uid uuid.UUID, log *entity.DailyLog) error {
	cp := *log
	m.logs[log.Date] = &cp
	return nil
}

func (m *memLogs) Delete(ctx context.Context, uid uuid.UUID, date string) error {
	m.deleteCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.logs, date)
	return nil
}

func (m *memLogs) GetRange(ctx context.Context, uid uuid.UUID, from, to string) ([]*entity.DailyLog, error) {
	out := make([]*entity.DailyLog, 0)
	for _, date := range m.dates() {
		if date >= from && date <= to {
			l, _ := m.Get(ctx, uid, date)
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memLogs) ListDates(ctx context.Context, uid uuid.UUID) ([]string, error) {
	return m.dates(), nil
}

func (m *memLogs) dates() []string {
	dates := make([]string, 0, len(m.logs))
	for d := range m.logs {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

type memSummaries struct {
	summaries   map[string]entity.DailySummary
	createCalls int
}

func newMemSummaries(summaries ...entity.DailySummary) *memSummaries {
	m := &memSummaries{summaries: make(map[string]entity.DailySummary)}
	for _, s := range summaries {
		m.summaries[s.Date] = s
	}
	return m
}

func (m *memSummaries) Exists(ctx context.Context, uid uuid.UUID, date string) (bool, error) {
	_, ok := m.summaries[date]
	return ok, nil
}

func (m *memSummaries) Create(ctx context.Context, uid uuid.UUID, summary *entity.DailySummary) error {
	m.createCalls++
	if _, ok := m.summaries[summary.Date]; ok {
		return errorvalues.ErrSummaryExists
	}
	m.summaries[summary.Date] = *summary
	return nil
}

func (m *memSummaries) GetRange(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.DailySummary, error) {
	out := make([]entity.DailySummary, 0)
	for _, s := range m.summaries {
		if s.Date >= from && s.Date <= to {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (m *memSummaries) GetAll(ctx context.Context, uid uuid.UUID) ([]entity.DailySummary, error) {
	return m.GetRange(ctx, uid, "0000-01-01", "9999-12-31")
}

type memStats struct {
	stats     *entity.UserStats
	saveCalls int
}

func (m *memStats) Get(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	if m.stats == nil {
		return nil, nil
	}
	cp := *m.stats
	cp.WeightHistory = append([]entity.WeightEntry{}, m.stats.WeightHistory...)
	return &cp, nil
}

func (m *memStats) Save(ctx context.Context, uid uuid.UUID, stats *entity.UserStats) error {
	m.saveCalls++
	cp := *stats
	m.stats = &cp
	return nil
}

type memFasting struct {
	state   *entity.FastingState
	history []entity.FastingEntry
}

func (m *memFasting) GetState(ctx context.Context, uid uuid.UUID) (*entity.FastingState, error) {
	if m.state == nil {
		return nil, nil
	}
	cp := *m.state
	return &cp, nil
}

func (m *memFasting) SaveState(ctx context.Context, uid uuid.UUID, state *entity.FastingState) error {
	cp := *state
	m.state = &cp
	return nil
}

func (m *memFasting) AddEntry(ctx context.Context, uid uuid.UUID, entry *entity.FastingEntry) error {
	m.history = append(m.history, *entry)
	return nil
}

func (m *memFasting) GetHistory(ctx context.Context, uid uuid.UUID) ([]entity.FastingEntry, error) {
	return append([]entity.FastingEntry{}, m.history...), nil
}

func ptr[T any](v T) *T {
	return &v
}
