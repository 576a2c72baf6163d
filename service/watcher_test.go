package service

import (
	"testing"

	"Forum/config"

	"github.com/stretchr/testify/assert"
)

func TestNewWatcherSet(t *testing.T) {
	env := newTestEnv(t)
	a := env.addUser(t, "wendal", "W")
	b := env.addUser(t, "zozoh", "Z")
	env.addUser(t, "other", "O")

	cfg := &config.Config{Forum: &config.Forum{GlobalWatchers: "wendal, zozoh,ghost\n"}}
	w := NewWatcherSet(cfg, env.users)

	assert.Equal(t, 2, w.Len())
	assert.Equal(t, []int64{a.ID, b.ID}, w.IDs())
	assert.True(t, w.Contains(a.ID))
	assert.False(t, w.Contains(999))

	empty := NewWatcherSet(&config.Config{Forum: &config.Forum{}}, env.users)
	assert.Equal(t, 0, empty.Len())
}
