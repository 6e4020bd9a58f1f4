package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	contractx "github.com/jacobsplumbing/frontdesk/agent/contract"
	llmx "github.com/jacobsplumbing/frontdesk/agent/llm"
	orchestratorx "github.com/jacobsplumbing/frontdesk/agent/orchestrator"
	promptx "github.com/jacobsplumbing/frontdesk/agent/prompt"
	statex "github.com/jacobsplumbing/frontdesk/agent/state"
	toolx "github.com/jacobsplumbing/frontdesk/agent/tool"
	bookingapix "github.com/jacobsplumbing/frontdesk/pkg/bookingapi"
	configx "github.com/jacobsplumbing/frontdesk/pkg/config"
	_ "github.com/jacobsplumbing/frontdesk/pkg/logger/autoload"
)

type AppConfig struct {
	TranscriptPath string `envconfig:"TRANSCRIPT_PATH" split_words:"true" default:"transcript.csv"`
}

// demoScript is the scripted happy path: book a plumbing visit, pick the
// second offered slot, decline further help.
var demoScript = []string{
	"Hi, I'm Steven Manley. I need to schedule a plumbing appointment.",
	"123 Main Street, Springfield.",
	"555-123-4567",
	"I have a leaky faucet.",
	"I prefer in the morning",
	"Let's go with Option 2",
	"No. That's all. Thanks",
}

func main() {
	appCfg := configx.MustNew[AppConfig]("")

	llmCfg := configx.MustNew[llmx.Config]("LLM")
	generator, err := llmx.NewClient(*llmCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize llm client")
	}

	booking := newBookingBackend()

	agent, err := orchestratorx.New(generator, booking, promptx.Load())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize orchestrator")
	}

	ctx := context.Background()

	var sc *statex.SessionContext
	sc, _, err = agent.Process(ctx, "", nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open the conversation")
	}

	for _, msg := range demoScript {
		sc, _, err = agent.Process(ctx, msg, sc)
		if err != nil {
			log.Fatal().Err(err).Str("utterance", msg).Msg("turn failed")
		}
	}

	fmt.Println("--- Transcript ---")
	for _, turn := range sc.Transcript {
		fmt.Printf("%s: %s\n", turn.Speaker, turn.Text)
	}
	fmt.Println()

	fmt.Println("--- Slots ---")
	slots, _ := json.MarshalIndent(sc.Slots, "", "  ")
	fmt.Println(string(slots))
	fmt.Println()

	fmt.Println("--- Metadata ---")
	meta, _ := json.MarshalIndent(sc.Metadata, "", "  ")
	fmt.Println(string(meta))

	if err := exportTranscript(appCfg.TranscriptPath, sc.Transcript); err != nil {
		log.Fatal().Err(err).Msg("failed to export transcript")
	}
	log.Info().Str("path", appCfg.TranscriptPath).Msg("transcript exported")
}

// newBookingBackend selects the remote REST backend when BOOKING_API_URL is
// configured and falls back to the in-process mock otherwise.
func newBookingBackend() contractx.Booking {
	cfg := configx.MustNew[bookingapix.Config]("BOOKING_API")
	if cfg.URL == "" {
		return toolx.NewMockBooking()
	}
	client, err := bookingapix.New(*cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize booking api client")
	}
	return client
}

func exportTranscript(path string, transcript []statex.Turn) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return statex.WriteTranscriptCSV(f, transcript)
}
