// Package cmd - chat command
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"warequote/core/conversation"
	"warequote/core/output"
	"warequote/core/rules"
	"warequote/core/storage"
	"warequote/internal/config"
)

// chatCmd runs an interactive quoting conversation on stdin
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactively gather a storage quote",
	Long: `Start a slot-filling conversation that gathers storage type,
quantity, duration and special instructions, then prices the job.

Type 'restart' to start over and ctrl-d to leave.`,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	table, err := loadRates()
	if err != nil {
		return err
	}

	ctx := context.Background()
	store, err := buildSessionStore()
	if err != nil {
		return err
	}

	machine := conversation.NewMachine(storage.NewCalculator(table), rules.NewEngine())
	extractor := conversation.NewKeywordExtractor()

	session := conversation.NewSession("cli")
	if err := store.Put(ctx, session); err != nil {
		return err
	}

	// Opening turn: no customer text yet.
	printResponse(machine.HandleTurn(session, "", conversation.Extraction{}))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if text == "" {
			continue
		}

		resp := machine.HandleTurn(session, text, extractor.Extract(text))
		if err := store.Put(ctx, session); err != nil {
			return err
		}
		printResponse(resp)

		if resp.State == conversation.StateCompleted {
			break
		}
	}
	return scanner.Err()
}

func buildSessionStore() (conversation.SessionStore, error) {
	cfg := config.Get().Session
	switch cfg.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ttl := time.Duration(cfg.TTLSeconds) * time.Second
		return conversation.NewRedisStore(client, ttl), nil
	default:
		return conversation.NewMemoryStore(), nil
	}
}

func printResponse(resp *conversation.Response) {
	for _, msg := range resp.Messages {
		fmt.Println(msg)
	}
	if resp.Quote != nil && resp.Quote.IsComplete() {
		formatter, _ := output.New(output.FormatCLI)
		formatter.Render(os.Stdout, resp.Quote)
	}
	for _, q := range resp.Questions {
		fmt.Println(q)
	}
}
