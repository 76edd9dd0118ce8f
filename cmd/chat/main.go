package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/qanoonlab/qanoon/internal/core"
	"github.com/qanoonlab/qanoon/internal/llm"
	"github.com/qanoonlab/qanoon/internal/logger"
	"github.com/qanoonlab/qanoon/internal/server"
)

// Terminal front-end over the same router the HTTP server uses. One session
// per run; history is gone when the process exits.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	zlog, err := logger.New(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	srv, err := server.NewServer(zlog)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	sess := srv.Sessions.Create()
	fmt.Println("Pakistan Law Chatbot — answers about the Constitution and laws of Pakistan.")
	fmt.Println("Type 'exit' to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "exit" {
			break
		}

		result, err := srv.Router.Ask(context.Background(), sess, line)
		if err != nil {
			switch {
			case errors.Is(err, core.ErrEmptyQuery):
				fmt.Println("Please enter a question.")
			case errors.Is(err, llm.ErrDelegateUnavailable):
				fmt.Println("The language model is currently unavailable. Please try again.")
			default:
				fmt.Printf("Error: %v\n", err)
			}
			continue
		}

		fmt.Println()
		fmt.Println(result.Text)
	}
}
