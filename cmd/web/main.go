package main

import "connect_backend/internal/app"

func main() {
	app.Run()
}
