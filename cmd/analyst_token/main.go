// Command analyst_token prints a signed bearer token for the alerts API.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"fraudtriage/internal/config"
	"fraudtriage/internal/utils"
)

func main() {
	config.LoadEnv()

	analystID := flag.String("analyst", config.GetEnv("ANALYST_ID", ""), "analyst identifier")
	role := flag.String("role", config.GetEnv("ANALYST_ROLE", "analyst"), "analyst or lead")
	ttl := flag.Duration("ttl", config.GetDurationEnv("ANALYST_TOKEN_TTL", 8*time.Hour), "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" || *analystID == "" {
		log.Fatal("JWT_SECRET and ANALYST_ID (or -analyst) must be set")
	}

	token, err := utils.GenerateAnalystToken(*analystID, *role, secret, *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Println(token)
}
