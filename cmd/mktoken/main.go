// Command mktoken mints a development bearer token for a tenant, signed with
// the same secret the server verifies against.
//
// Usage:
//
//	TOKEN_SIGNING_SECRET=... go run ./cmd/mktoken -tenant t1 -ttl 24h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"orgbook.app/api-server/core/config"
	"orgbook.app/api-server/internal/token"
)

func main() {
	tenantID := flag.String("tenant", "", "tenant identity to embed in the token")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *tenantID == "" {
		fmt.Fprintln(os.Stderr, "usage: mktoken -tenant <tenant_id> [-ttl <duration>]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	issuer := token.NewIssuer(cfg.Auth.SigningSecret)
	signed, err := issuer.Issue(*tenantID, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to sign token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(signed)
}
