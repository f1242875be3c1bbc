package main

import (
	"os"
	goos "os"
)

func main() {
	defer func() {
		os.Exit(3) // want "do not call os.Exit inside main"
	}()
	if len(os.Args) > 5 {
		goos.Exit(2) // want "do not call os.Exit inside main"
	}
	os.Exit(1) // want "do not call os.Exit inside main"
}

func helper() {
	os.Exit(4)
}
