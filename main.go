package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	archivex "github.com/harz05/onestBack/agent/archive"
	coachx "github.com/harz05/onestBack/agent/coach"
	contractx "github.com/harz05/onestBack/agent/contract"
	llmx "github.com/harz05/onestBack/agent/llm"
	profilex "github.com/harz05/onestBack/agent/profile"
	cartesiax "github.com/harz05/onestBack/pkg/cartesia"
	configx "github.com/harz05/onestBack/pkg/config"
	deepgramx "github.com/harz05/onestBack/pkg/deepgram"
	_ "github.com/harz05/onestBack/pkg/logger/autoload"
)

type AppConfig struct {
	SessionID string `envconfig:"SESSION_ID" default:"local-session"`
}

func main() {
	ctx := context.Background()

	appCfg := configx.MustNew[AppConfig]("")

	llmCfg := configx.MustNew[llmx.Config]("OPENROUTER")
	if err := llmCfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid llm config")
	}

	builder := llmCfg.OpenRouterForCoach()
	chatModel, err := builder.New(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("create chat model")
	}

	store := newStore()
	archiver := newArchiver(ctx)
	transcriber := newTranscriber()
	synthesizer := newSynthesizer()

	coach, err := coachx.New(store, chatModel, archiver, coachx.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("create coach")
	}

	log.Info().Str("session_id", appCfg.SessionID).Msg("interview coach ready")
	runREPL(ctx, coach, appCfg.SessionID, transcriber, synthesizer)
}

func newStore() profilex.Store {
	storeCfg, err := configx.New[profilex.UpstashRedisConfig]("UPSTASH_REDIS")
	if err != nil || strings.TrimSpace(storeCfg.URL) == "" {
		log.Info().Msg("using in-memory profile store")
		return profilex.NewMemoryStore()
	}

	store, err := profilex.NewUpstashRedisStore(*storeCfg)
	if err != nil {
		log.Warn().Err(err).Msg("upstash store unavailable, falling back to memory")
		return profilex.NewMemoryStore()
	}
	log.Info().Msg("using upstash redis profile store")
	return store
}

func newArchiver(ctx context.Context) contractx.Archiver {
	archiveCfg, err := configx.New[archivex.Config]("ARCHIVE")
	if err != nil || strings.TrimSpace(archiveCfg.DSN) == "" {
		log.Info().Msg("interview archive disabled")
		return nil
	}

	archive, err := archivex.NewPostgresArchive(*archiveCfg)
	if err != nil {
		log.Warn().Err(err).Msg("archive unavailable, continuing without it")
		return nil
	}
	if err := archive.EnsureSchema(ctx); err != nil {
		log.Warn().Err(err).Msg("archive schema check failed, continuing without it")
		return nil
	}
	log.Info().Msg("interview archive enabled")
	return archive
}

func newTranscriber() contractx.Transcriber {
	cfg, err := configx.New[deepgramx.Config]("DEEPGRAM")
	if err != nil || strings.TrimSpace(cfg.APIKey) == "" {
		log.Info().Msg("deepgram not configured, transcription disabled")
		return nil
	}

	client, err := deepgramx.NewClient(*cfg)
	if err != nil {
		log.Warn().Err(err).Msg("deepgram unavailable, transcription disabled")
		return nil
	}
	log.Info().Msg("deepgram transcription enabled")
	return client
}

func newSynthesizer() contractx.Synthesizer {
	cfg, err := configx.New[cartesiax.Config]("CARTESIA")
	if err != nil || strings.TrimSpace(cfg.APIKey) == "" {
		log.Info().Msg("cartesia not configured, synthesis disabled")
		return nil
	}

	client, err := cartesiax.NewClient(*cfg)
	if err != nil {
		log.Warn().Err(err).Msg("cartesia unavailable, synthesis disabled")
		return nil
	}
	log.Info().Msg("cartesia synthesis enabled")
	return client
}

// runREPL drives the coach from stdin, standing in for the hosted voice
// runtime's turn loop. Lines starting with @ name an audio file to
// transcribe; replies are synthesized to wav files when TTS is configured.
func runREPL(
	ctx context.Context,
	coach *coachx.Coach,
	sessionID string,
	transcriber contractx.Transcriber,
	synthesizer contractx.Synthesizer,
) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Type what the job seeker says, or @path/to/audio.wav. Empty line or Ctrl-D quits.")

	turn := 0
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		turn++

		turnCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		transcript, err := resolveTranscript(turnCtx, line, transcriber)
		if err != nil {
			cancel()
			log.Error().Err(err).Msg("transcription failed")
			continue
		}

		reply, err := coach.HandleTurn(turnCtx, sessionID, transcript)
		if err != nil {
			cancel()
			log.Error().Err(err).Msg("turn failed")
			continue
		}
		fmt.Println(reply)

		if synthesizer != nil {
			speakReply(turnCtx, synthesizer, reply, turn)
		}
		cancel()
	}
}

func resolveTranscript(ctx context.Context, line string, transcriber contractx.Transcriber) (string, error) {
	if !strings.HasPrefix(line, "@") {
		return line, nil
	}
	if transcriber == nil {
		return "", fmt.Errorf("audio input %q requires deepgram to be configured", line)
	}

	audio, err := os.ReadFile(strings.TrimPrefix(line, "@"))
	if err != nil {
		return "", fmt.Errorf("read audio file: %w", err)
	}
	return transcriber.Transcribe(ctx, audio, contractx.AudioConfig{ContentType: "audio/wav"})
}

func speakReply(ctx context.Context, synthesizer contractx.Synthesizer, reply string, turn int) {
	audio, err := synthesizer.Synthesize(ctx, reply, contractx.VoiceConfig{})
	if err != nil {
		log.Warn().Err(err).Msg("synthesis failed")
		return
	}

	path := fmt.Sprintf("reply-%03d.wav", turn)
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		log.Warn().Err(err).Msg("write reply audio")
		return
	}
	log.Info().Str("path", path).Msg("reply audio written")
}
