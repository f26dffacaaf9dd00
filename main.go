package main

import (
	"exusiai.dev/snippets/cmd/app"
)

func main() {
	app.Run()
}
