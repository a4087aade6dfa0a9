package core

// Registry is a name-keyed store of commands, populated once at startup
// and read-only afterwards. Enumeration preserves registration order so
// help listings are stable.
type Registry struct {
	commands map[string]*Command
	order    []string
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Put registers a command. Re-registering a name overwrites the previous
// command and keeps its original position in the listing.
func (r *Registry) Put(cmd *Command) {
	if _, exists := r.commands[cmd.Name]; !exists {
		r.order = append(r.order, cmd.Name)
	}
	r.commands[cmd.Name] = cmd
}

// Get looks up a command by name.
func (r *Registry) Get(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Len reports the number of registered commands.
func (r *Registry) Len() int { return len(r.order) }

// Names returns command names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Commands returns registered commands in registration order.
func (r *Registry) Commands() []*Command {
	cmds := make([]*Command, 0, len(r.order))
	for _, name := range r.order {
		cmds = append(cmds, r.commands[name])
	}
	return cmds
}
