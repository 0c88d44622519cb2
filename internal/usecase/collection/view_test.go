package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"construction_console/internal/domain/entities"
)

func TestOrderedMap_KeepsInsertionOrder(t *testing.T) {
	m := NewOrderedMap[string]()
	m.Set("b", "1")
	m.Set("a", "2")
	m.Set("c", "3")
	m.Set("b", "4")

	assert.Equal(t, []string{"4", "2", "3"}, m.Values())
	assert.True(t, m.Delete("a"))
	assert.False(t, m.Delete("a"))
	assert.Equal(t, []string{"4", "3"}, m.Values())
	assert.Equal(t, 2, m.Len())

	m.Clear()
	assert.Empty(t, m.Values())
}

func TestView(t *testing.T) {
	v := NewView[entities.Customer]()
	assert.False(t, v.Ready())

	v.Replace([]entities.Customer{{ID: "c1", Name: "Asha", Phone: "111"}, {ID: "c2", Name: "Bala", Phone: "222"}})
	assert.True(t, v.Ready())
	assert.Equal(t, 2, v.Len())

	v.Put(entities.Customer{ID: "c3", Name: "Chandra", Phone: "333"})
	v.Put(entities.Customer{ID: "c1", Name: "Asha K", Phone: "111"})

	got, ok := v.Get("c1")
	assert.True(t, ok)
	assert.Equal(t, "Asha K", got.Name)

	found, ok := v.Find(func(c entities.Customer) bool { return c.Phone == "333" })
	assert.True(t, ok)
	assert.Equal(t, "c3", found.ID)

	_, ok = v.Find(func(c entities.Customer) bool { return c.Phone == "999" })
	assert.False(t, ok)

	assert.Len(t, v.Filter(func(c entities.Customer) bool { return c.Phone != "222" }), 2)

	assert.True(t, v.Delete("c2"))
	list := v.List()
	assert.Equal(t, "c1", list[0].ID)
	assert.Equal(t, "c3", list[1].ID)

	v.Replace(nil)
	assert.Equal(t, 0, v.Len())
}

func TestView_ReadsAreCopies(t *testing.T) {
	v := NewView[entities.Estimate]()
	v.Put(entities.Estimate{ID: "e1", Items: []entities.EstimateLineItem{{ItemName: "Slab"}}})

	got, _ := v.Get("e1")
	got.Items[0].ItemName = "changed"

	again, _ := v.Get("e1")
	assert.Equal(t, "Slab", again.Items[0].ItemName)
}
