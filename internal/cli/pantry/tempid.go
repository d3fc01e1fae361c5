package pantry

import "sync"

// TempIDs выдаёт отрицательные временные идентификаторы для optimistic-записей.
// Сервер никогда не выдаёт отрицательные id, поэтому коллизии исключены.
type TempIDs struct {
	mu   sync.Mutex
	next int64
}

// NewTempIDs создаёт генератор, начинающий с -1.
func NewTempIDs() *TempIDs {
	return &TempIDs{next: -1}
}

// Next возвращает следующий временный id (-1, -2, -3, …).
func (t *TempIDs) Next() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.next
	t.next--
	return id
}
