package domain

// Record maps field names to values for exactly one document.
// Field order is insertion order, which keeps the assembled column order
// and the written table deterministic.
//
// A record straight out of the extractor is partial: a missing key means the
// rule did not match. After the record pipeline every field with a default
// policy is present and unit fields have been folded away.
type Record struct {
	keys   []string
	values map[string]Value
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]Value)}
}

// Set stores a value. New fields are appended to the field order.
func (r *Record) Set(field string, v Value) {
	if _, ok := r.values[field]; !ok {
		r.keys = append(r.keys, field)
	}
	r.values[field] = v
}

// Get returns the value of a field.
func (r *Record) Get(field string) (Value, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Has reports whether the field is present.
func (r *Record) Has(field string) bool {
	_, ok := r.values[field]
	return ok
}

// Delete removes a field. Deleting an absent field is a no-op.
func (r *Record) Delete(field string) {
	if _, ok := r.values[field]; !ok {
		return
	}
	delete(r.values, field)
	for i, k := range r.keys {
		if k == field {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Fields returns the field names in insertion order.
func (r *Record) Fields() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.keys)
}

// Clone returns an independent copy of the record.
func (r *Record) Clone() *Record {
	c := &Record{
		keys:   make([]string, len(r.keys)),
		values: make(map[string]Value, len(r.values)),
	}
	copy(c.keys, r.keys)
	for k, v := range r.values {
		c.values[k] = v
	}
	return c
}
