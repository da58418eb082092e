package main

import "eagles-events/go_backend/internal/app"

func main() {
	app.Run()
}
