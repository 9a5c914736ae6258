package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fleetSnapshot struct {
	Registrations []string
}

func TestMemoryCacheTypedRoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, 10*time.Minute)

	want := &fleetSnapshot{Registrations: []string{"N100AB", "N200CD"}}
	c.Set("fleet_list_all", want, 30*time.Second)

	got, ok := GetTyped[*fleetSnapshot](c, "fleet_list_all")
	assert.True(t, ok)
	assert.Same(t, want, got)
}

func TestGetTypedMissOnForeignType(t *testing.T) {
	c := NewMemoryCache(time.Minute, 10*time.Minute)

	// A backend that serializes (redis) hands back generic maps, not the
	// struct that was stored. Those must read as a miss.
	c.Set("timeline_doc_key", map[string]any{"num_chunks": 4.0}, 30*time.Second)

	got, ok := GetTyped[*fleetSnapshot](c, "timeline_doc_key")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestGetTypedMissOnAbsentKey(t *testing.T) {
	c := NewMemoryCache(time.Minute, 10*time.Minute)

	got, ok := GetTyped[[]string](c, "never_set")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemoryCache(time.Minute, 10*time.Minute)

	c.Set("fleet_list_all", []string{"N100AB"}, 30*time.Second)
	c.Delete("fleet_list_all")

	_, ok := c.Get("fleet_list_all")
	assert.False(t, ok)
}
