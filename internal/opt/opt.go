package opt

import (
	"bytes"
	"encoding/json"
)

// Optional представляет поле частичного PATCH-а с тремя состояниями:
// поле не прислано (absent), прислано как null, прислано со значением.
// Обычный *T в JSON не различает "не прислано" и "прислано как null".
type Optional[T any] struct {
	Set   bool // поле присутствовало в JSON
	Valid bool // значение не null
	Value T
}

// Of returns a present, non-null Optional.
func Of[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null returns a present Optional that carries an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// Ptr returns the value as a pointer, or nil when absent or null.
func (o Optional[T]) Ptr() *T {
	if !o.Set || !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

// UnmarshalJSON вызывается только для присутствующих полей, поэтому сам факт
// вызова означает Set=true.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON кодирует null для присланного null-а и значение в остальных случаях.
// Отсутствующие поля должен пропускать вызывающий код (см. FoodEdit.MarshalJSON).
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
