// Command desguace-token mints an access token for a device so it can
// talk to the desguace service API.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"desguace-service/internal/auth"
)

func main() {
	device := flag.String("device", "", "device identifier to embed in the token")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_ACCESS_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_ACCESS_SECRET is required")
		os.Exit(1)
	}
	if *device == "" {
		fmt.Fprintln(os.Stderr, "-device is required")
		os.Exit(1)
	}

	token, err := auth.Sign(secret, *device, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to sign token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
