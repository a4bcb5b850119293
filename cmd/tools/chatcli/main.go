// chatcli is a manual tester for the relay: it drives a conversation session
// against a running backend from the terminal, printing the emotion and music
// metadata the UI would render.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/zoralabs/zora/backend/internal/analysis/emotion"
	"github.com/zoralabs/zora/backend/internal/relayclient"
	"github.com/zoralabs/zora/backend/internal/service/conversation"
	"github.com/zoralabs/zora/backend/internal/service/speech"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := godotenv.Load(); err != nil {
		log.Printf("[WARN] no .env file, using system environment: %v", err)
	}

	addr := flag.String("addr", "http://localhost:8080", "relay base URL")
	language := flag.String("lang", "en-US", "language tag sent with each message")
	mood := flag.String("emotion", "calm", "detected emotion sent with each message")
	timeout := flag.Duration("timeout", 45*time.Second, "per-request timeout")
	verbose := flag.Bool("verbose", false, "print voice profile of each reply")

	flag.Parse()

	detected, ok := emotion.Parse(*mood)
	if !ok {
		log.Fatalf("unknown emotion %q (happy|calm|excited|thoughtful|sad)", *mood)
	}

	client := relayclient.New(*addr)
	session := conversation.NewSession(client,
		conversation.WithLanguage(*language),
		conversation.WithSynthesizer(consoleSynthesizer{verbose: *verbose}),
	)

	fmt.Printf("Chatting with Zora at %s (language=%s). Empty line or Ctrl-D exits.\n", *addr, *language)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		turn, err := session.Send(ctx, line, detected)
		cancel()

		if err != nil {
			if errors.Is(err, conversation.ErrRequestInFlight) {
				continue
			}
			log.Printf("[WARN] relay error: %v", err)
		}

		fmt.Printf("zora (%s): %s\n", turn.Emotion, turn.Content)
		if turn.Music != nil {
			fmt.Printf("  music: %s - %s\n  play:  %s\n", turn.Music.Title, turn.Music.Artist, turn.Music.SearchURL())
		}
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("read input: %v", err)
	}
}

// consoleSynthesizer stands in for the browser's speech synthesis; it only
// reports the voice parameters that would be used.
type consoleSynthesizer struct {
	verbose bool
}

func (c consoleSynthesizer) Speak(_ string, profile speech.VoiceProfile, onEvent func(speech.Event)) error {
	if c.verbose {
		fmt.Printf("  voice: rate=%.2f pitch=%.2f volume=%.2f\n", profile.Rate, profile.Pitch, profile.Volume)
	}
	if onEvent != nil {
		onEvent(speech.EventStart)
		onEvent(speech.EventEnd)
	}
	return nil
}

func (consoleSynthesizer) Stop() {}
