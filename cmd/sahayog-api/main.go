package main

import (
	app "github.com/sahayog/sahayog-api/pkg/api"
)

func main() {
	app.NewApp().RunForever()
}
