package main

import (
	"github.com/avator7/todoapi/config"
	"github.com/avator7/todoapi/internal/app"
)

func main() {

	// create and initialize the app
	app, err := app.NewApp(config.CONFIG_PATH)
	if err != nil {
		panic(err)
	}

	// run the app
	// This starts the HTTP server and serves the user and todo routes
	// until the process is stopped.
	err = app.Run()
	if err != nil {
		panic(err)
	}
}
