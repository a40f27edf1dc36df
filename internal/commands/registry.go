package commands

import "fmt"

// Registry holds the registered commands. The process is single-threaded, so
// no locking is needed; registration order is kept for help output.
type Registry struct {
	commands map[string]Command
	order    []string
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry.
func (r *Registry) Register(cmd Command) error {
	name := cmd.Name()
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	r.commands[name] = cmd
	r.order = append(r.order, name)
	return nil
}

// Get returns a command by its name.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, exists := r.commands[name]
	return cmd, exists
}

// GetAll returns all registered commands in registration order.
func (r *Registry) GetAll() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, name := range r.order {
		cmds = append(cmds, r.commands[name])
	}
	return cmds
}
