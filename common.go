package main

// Mode is the editor's current input mode.
type Mode int

const (
	NORMAL Mode = iota
	INSERT
	COMMAND_LINE
)

const (
	RESET string = "\x1b[0m"

	BLACK   string = "\x1b[30m"
	RED     string = "\x1b[31m"
	GREEN   string = "\x1b[32m"
	YELLOW  string = "\x1b[33m"
	BLUE    string = "\x1b[34m"
	MAGENTA string = "\x1b[35m"
	CYAN    string = "\x1b[36m"
	WHITE   string = "\x1b[37m"
)
