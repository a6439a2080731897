package main

import (
	"log"
	"os"

	"github.com/rohanthewiz/logger"

	"signupform/devserver"
)

func main() {
	logger.SetLogLevel("info")

	addr := os.Getenv("SIGNUPFORM_STUB_ADDR")
	if addr == "" {
		addr = ":8087"
	}

	svc := devserver.New(addr)
	logger.Info("Starting signup stub", "address", addr)
	log.Fatal(svc.Run())
}
