// Package pantry — клиентское ядро: локальное состояние, optimistic-мутации
// и согласование с сервером.
package pantry

import (
	"sync"

	"github.com/KSONG-cloud/pantry-tracker-2/internal/cli/model"
)

// Snapshot — согласованная копия обеих коллекций на момент снятия.
// Используется для отката optimistic-мутаций целиком.
type Snapshot struct {
	Items  []model.FoodItem
	Groups []model.FoodGroup
}

// State хранит локальные коллекции и рассылает уведомления подписчикам
// после каждой мутации. Все методы потокобезопасны.
type State struct {
	mu      sync.RWMutex
	items   []model.FoodItem
	groups  []model.FoodGroup
	subs    map[int]func(Snapshot)
	nextSub int
}

// NewState создаёт пустое состояние.
func NewState() *State {
	return &State{subs: make(map[int]func(Snapshot))}
}

func copyItems(items []model.FoodItem) []model.FoodItem {
	out := make([]model.FoodItem, len(items))
	copy(out, items)
	// клонируем указательные поля, чтобы копии не делили память
	for i := range out {
		if out[i].ExpiryDate != nil {
			d := *out[i].ExpiryDate
			out[i].ExpiryDate = &d
		}
		if out[i].BestBeforeDate != nil {
			d := *out[i].BestBeforeDate
			out[i].BestBeforeDate = &d
		}
		if out[i].Units != nil {
			u := *out[i].Units
			out[i].Units = &u
		}
	}
	return out
}

func copyGroups(groups []model.FoodGroup) []model.FoodGroup {
	out := make([]model.FoodGroup, len(groups))
	copy(out, groups)
	return out
}

// Items возвращает копию списка продуктов.
func (s *State) Items() []model.FoodItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyItems(s.items)
}

// Groups возвращает копию списка групп.
func (s *State) Groups() []model.FoodGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyGroups(s.groups)
}

// Snapshot снимает согласованную копию обеих коллекций.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Items: copyItems(s.items), Groups: copyGroups(s.groups)}
}

// Restore возвращает состояние к ранее снятому снимку (откат).
func (s *State) Restore(snap Snapshot) {
	s.mu.Lock()
	s.items = copyItems(snap.Items)
	s.groups = copyGroups(snap.Groups)
	s.mu.Unlock()
	s.notify()
}

// SetItems заменяет список продуктов целиком.
func (s *State) SetItems(items []model.FoodItem) {
	s.mu.Lock()
	s.items = copyItems(items)
	s.mu.Unlock()
	s.notify()
}

// SetGroups заменяет список групп целиком.
func (s *State) SetGroups(groups []model.FoodGroup) {
	s.mu.Lock()
	s.groups = copyGroups(groups)
	s.mu.Unlock()
	s.notify()
}

// Set заменяет обе коллекции одной мутацией (одно уведомление).
func (s *State) Set(items []model.FoodItem, groups []model.FoodGroup) {
	s.mu.Lock()
	s.items = copyItems(items)
	s.groups = copyGroups(groups)
	s.mu.Unlock()
	s.notify()
}

// Subscribe регистрирует подписчика и возвращает функцию отписки.
// Подписчик вызывается после каждой мутации со свежим снимком.
func (s *State) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// notify рассылает снимок всем подписчикам вне блокировки записи.
func (s *State) notify() {
	s.mu.RLock()
	snap := Snapshot{Items: copyItems(s.items), Groups: copyGroups(s.groups)}
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()
	for _, fn := range fns {
		fn(snap)
	}
}
