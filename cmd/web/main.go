package main

import "vpms_backend/internal/app"

func main() {
	app.Run()
}
