package main

import (
	jwtPkg "ResponderBot/pkg/jwt"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Mints a bearer token for the admin panel's write endpoint. Requires
// JWT_ACCESS_TOKEN_SECRET to be set; without it the endpoint runs
// unguarded and no token is needed.
func main() {
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	subject := flag.String("subject", "admin", "token subject claim")
	flag.Parse()

	_ = godotenv.Load()

	token, exp, err := jwtPkg.Sign(map[string]interface{}{"sub": *subject}, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to sign token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires: %s\n", time.Unix(exp, 0).Format(time.RFC3339))
}
