package main

import "os"

func main() {
	// one optional positional argument: the file :w and :wq target.
	// its contents are never read.
	var fileName string
	if len(os.Args) > 1 {
		fileName = os.Args[1]
	}

	app := CreateApp(fileName)

	if err := app.Session.Open(); err != nil {
		app.die(err)
	}
	if err := app.updateWindowSize(); err != nil {
		app.die(err)
	}
	app.Screen.SetCursor(0, 0)

	if err := app.MainLoop(); err != nil {
		app.die(err)
	}
	app.Session.Close()
}
