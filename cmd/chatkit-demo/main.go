// Command chatkit-demo walks through the four model call patterns:
// invoke, stream, batch, and generate.
//
// The credential is read from OPENAI_API_KEY. An absent key is not an
// error here; it surfaces as an authentication failure from the API.
//
//	go run ./cmd/chatkit-demo -model gpt-4o-mini
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/randalmurphal/chatkit/chat"
	_ "github.com/randalmurphal/chatkit/openai"
	"github.com/randalmurphal/chatkit/prompt"
	"github.com/randalmurphal/chatkit/provider"
)

func main() {
	model := flag.String("model", "gpt-4o-mini", "model to call")
	flag.Parse()

	cfg := provider.FromEnv()
	cfg.Model = *model
	cfg.Temperature = 0
	cfg.Candidates = 2

	client, err := provider.New(cfg.Provider, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "create client:", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx := context.Background()
	if err := run(ctx, client); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client provider.Client) error {
	joke := prompt.MustNew("Tell me a short joke about {topic}.")
	translate := prompt.MustNewChat(
		prompt.Segment{Role: chat.RoleSystem, Text: "Translate the user's text to {language}."},
		prompt.Segment{Role: chat.RoleUser, Text: "{text}"},
	)

	// --- invoke: plain string ---
	text, err := joke.Render(map[string]any{"topic": "bears"})
	if err != nil {
		return err
	}
	gen, err := client.Invoke(ctx, provider.Text(text))
	if err != nil {
		return fmt.Errorf("invoke: %w", err)
	}
	fmt.Println("invoke:", gen.Content)

	// --- invoke: conversation ---
	conv, err := translate.Render(map[string]any{"language": "Spanish", "text": "Good morning!"})
	if err != nil {
		return err
	}
	gen, err = client.Invoke(ctx, provider.Chat(conv))
	if err != nil {
		return fmt.Errorf("invoke conversation: %w", err)
	}
	fmt.Println("translate:", gen.Content)

	// --- stream: chunks arrive incrementally, concatenate in order ---
	ch, err := client.Stream(ctx, provider.Text(text))
	if err != nil {
		return fmt.Errorf("stream: %w", err)
	}
	fmt.Print("stream: ")
	for chunk := range ch {
		if chunk.Error != nil {
			return fmt.Errorf("stream: %w", chunk.Error)
		}
		fmt.Print(chunk.Content)
	}
	fmt.Println()

	// --- batch: ordered, one result per input ---
	inputs := make([]provider.Input, 0, 3)
	for _, topic := range []string{"cats", "computers", "coffee"} {
		text, err := joke.Render(map[string]any{"topic": topic})
		if err != nil {
			return err
		}
		inputs = append(inputs, provider.Text(text))
	}
	gens, err := client.Batch(ctx, inputs)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	for i, g := range gens {
		fmt.Printf("batch[%d]: %s\n", i, g.Content)
	}

	// --- generate: multiple candidates per input ---
	sets, err := client.Generate(ctx, inputs[:1])
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	for i, set := range sets {
		fmt.Printf("generate[%d]: %d candidate(s), first: %s\n", i, len(set), set.First().Content)
	}

	// --- structurally invalid input fails before any network call ---
	if _, err := client.Invoke(ctx, provider.Chat(chat.Conversation{})); err != nil {
		fmt.Println("empty conversation rejected:", err)
	}

	return nil
}
