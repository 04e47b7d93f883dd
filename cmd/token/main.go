// Command token mints a manager access token for the seating API.  Tokens
// are normally issued by the identity service; this is for operators and
// local testing.
//
//	go run ./cmd/token -user ops-1 -role ADMIN -ttl 2h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/logi101/eventflow-seating/internal/logging"
	"github.com/logi101/eventflow-seating/internal/middleware"
	"github.com/logi101/eventflow-seating/internal/utils"
)

func main() {
	user := flag.String("user", "", "subject (user id) of the token")
	role := flag.String("role", middleware.RoleManager, "role claim: MANAGER or ADMIN")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()
	log := logging.For("token")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal().Msg("JWT_SECRET is not set")
	}
	at, err := utils.NewAccessToken(secret, *user, *role, *ttl)
	if err != nil {
		log.Fatal().Err(err).Msg("mint token")
	}
	fmt.Println(at.Token)
}
