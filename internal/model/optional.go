package model

import "encoding/json"

// Optional wraps a nullable patch field so that a field left out of the
// payload can be told apart from one explicitly set to null. Plain *T
// cannot make that distinction after unmarshalling.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// Ptr renders the field the way the stored entity holds it: nil for an
// explicit null, a pointer to the value otherwise. Only meaningful when
// Set is true.
func (o Optional[T]) Ptr() *T {
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}
