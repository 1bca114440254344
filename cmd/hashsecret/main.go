// Command hashsecret prints the bcrypt hash of an API client secret for use in
// AUTH_CLIENTS. The secret is read from the first argument or, if absent, stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/auth"
)

func main() {
	clientID := flag.String("client", "", "client id to prefix the hash with")
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	flag.Parse()

	secret := flag.Arg(0)
	if secret == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatalf("read secret: %v", err)
		}
		secret = strings.TrimRight(line, "\r\n")
	}
	hash, err := auth.HashSecret(secret, *cost)
	if err != nil {
		log.Fatalf("hash secret: %v", err)
	}
	if *clientID != "" {
		fmt.Printf("%s:%s\n", *clientID, hash)
		return
	}
	fmt.Println(hash)
}
