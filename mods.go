package drafter

// Mods is the set of modifier keys held during a pointer event.
type Mods struct {
	Shift bool
	Alt   bool // option
	Ctrl  bool
	Cmd   bool
}
