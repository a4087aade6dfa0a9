package core

import (
	"testing"

	"github.com/chriso345/gore/assert"
)

func TestRegistry_PutAndGet(t *testing.T) {
	r := NewRegistry()
	r.Put(&Command{Name: "greet"})
	r.Put(&Command{Name: "calc"})

	cmd, ok := r.Get("greet")
	assert.True(t, ok)
	assert.Equal(t, "greet", cmd.Name)

	_, ok = r.Get("bogus")
	assert.True(t, !ok)
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_OverwriteKeepsPosition(t *testing.T) {
	r := NewRegistry()
	r.Put(&Command{Name: "greet", Description: "old"})
	r.Put(&Command{Name: "calc"})
	r.Put(&Command{Name: "greet", Description: "new"})

	assert.Equal(t, 2, r.Len())
	cmd, ok := r.Get("greet")
	assert.True(t, ok)
	assert.Equal(t, "new", cmd.Description)

	names := r.Names()
	assert.Equal(t, "greet", names[0])
	assert.Equal(t, "calc", names[1])
}

func TestRegistry_CommandsInRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.Put(&Command{Name: "c"})
	r.Put(&Command{Name: "a"})
	r.Put(&Command{Name: "b"})

	cmds := r.Commands()
	assert.Equal(t, 3, len(cmds))
	assert.Equal(t, "c", cmds[0].Name)
	assert.Equal(t, "a", cmds[1].Name)
	assert.Equal(t, "b", cmds[2].Name)
}
