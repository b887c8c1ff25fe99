package reporting

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/vfg2006/sales-tempo-api/internal/calendar"
	"github.com/vfg2006/sales-tempo-api/internal/config"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
)

// ReferenceStore guarda a versão corrente dos dados de referência. A troca é
// sempre do conjunto inteiro, nunca campo a campo.
type ReferenceStore struct {
	current atomic.Pointer[config.ReferenceData]
}

func NewReferenceStore(ref *config.ReferenceData) *ReferenceStore {
	s := &ReferenceStore{}
	s.Swap(ref)
	return s
}

func (s *ReferenceStore) Load() *config.ReferenceData {
	if ref := s.current.Load(); ref != nil {
		return ref
	}
	return emptyReference
}

func (s *ReferenceStore) Swap(ref *config.ReferenceData) {
	if ref != nil && ref.Calendar == nil {
		withCalendar := *ref
		withCalendar.Calendar = calendar.NewWorkingDayCalendar(ref.Holidays)
		ref = &withCalendar
	}
	s.current.Store(ref)
}

var emptyReference = &config.ReferenceData{
	Plans:    domain.PlanTable{},
	Calendar: calendar.NewWorkingDayCalendar(nil),
}

// StaticPlans usa os planos do arquivo de referência para qualquer mês
type StaticPlans struct {
	store *ReferenceStore
}

func NewStaticPlans(store *ReferenceStore) *StaticPlans {
	return &StaticPlans{store: store}
}

func (p *StaticPlans) GetMonthlyPlans(_ context.Context, _ int, _ time.Month) (domain.PlanTable, error) {
	plans := p.store.Load().Plans

	table := make(domain.PlanTable, len(plans))
	for manager, plan := range plans {
		copied := make(domain.MonthlyPlan, len(plan))
		for key, value := range plan {
			copied[key] = value
		}
		table[manager] = copied
	}
	return table, nil
}
