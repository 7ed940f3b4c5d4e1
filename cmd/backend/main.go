package main

import (
	"log"

	"deltapi/internal/api"
)

// @title Delta Institut API
// @version 1.0
// @description API de gestion du centre de soutien scolaire : étudiants, groupes, paiements, commissions et tableau de bord
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
