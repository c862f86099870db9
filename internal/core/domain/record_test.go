package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_SetKeepsInsertionOrder(t *testing.T) {
	r := NewRecord()
	r.Set(FieldProjectName, StringValue("Boulangerie"))
	r.Set(FieldCity, StringValue("Lyon"))
	r.Set(FieldDepartment, StringValue("69"))

	assert.Equal(t, []string{FieldProjectName, FieldCity, FieldDepartment}, r.Fields())
	assert.Equal(t, 3, r.Len())
}

func TestRecord_SetOverwriteKeepsPosition(t *testing.T) {
	r := NewRecord()
	r.Set("a", IntValue(1))
	r.Set("b", IntValue(2))
	r.Set("a", IntValue(3))

	assert.Equal(t, []string{"a", "b"}, r.Fields())
	v, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, IntValue(3), v)
}

func TestRecord_Delete(t *testing.T) {
	r := NewRecord()
	r.Set("a", IntValue(1))
	r.Set("b", IntValue(2))
	r.Set("c", IntValue(3))

	r.Delete("b")
	r.Delete("missing")

	assert.False(t, r.Has("b"))
	assert.Equal(t, []string{"a", "c"}, r.Fields())
}

func TestRecord_GetMissing(t *testing.T) {
	r := NewRecord()
	_, ok := r.Get("nothing")
	assert.False(t, ok)
}

func TestRecord_FieldsReturnsCopy(t *testing.T) {
	r := NewRecord()
	r.Set("a", IntValue(1))

	fields := r.Fields()
	fields[0] = "mutated"

	assert.Equal(t, []string{"a"}, r.Fields())
}

func TestRecord_Clone(t *testing.T) {
	r := NewRecord()
	r.Set("a", IntValue(1))

	c := r.Clone()
	c.Set("b", IntValue(2))
	c.Set("a", IntValue(9))

	assert.Equal(t, 1, r.Len())
	v, _ := r.Get("a")
	assert.Equal(t, IntValue(1), v)
	assert.Equal(t, []string{"a", "b"}, c.Fields())
}
