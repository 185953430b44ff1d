package ports

// Command is an entry of a command palette
type Command struct {
	Label    string
	Callback func()
}

// CommandPalette lets features register named commands
type CommandPalette interface {
	AddCommand(cmd Command) error
	RemoveCommand(label string) error
}
