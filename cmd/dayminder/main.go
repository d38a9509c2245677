package main

import "github.com/tech-gecko/DayMinder/internal/app"

// @title           DayMinder API
// @version         1.0
// @description     Personal task and reminder manager.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in              header
// @name            Authorization
func main() {
	app.Run()
}
