package coach

import (
	"context"
	"errors"
	"fmt"
	"time"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"

	contractx "github.com/harz05/onestBack/agent/contract"
	nodex "github.com/harz05/onestBack/agent/nodes/coach"
	profilex "github.com/harz05/onestBack/agent/profile"
	promptx "github.com/harz05/onestBack/agent/prompt"
	toolx "github.com/harz05/onestBack/agent/tool"
)

var (
	ErrInvalidTranscript = nodex.ErrInvalidTranscript
	ErrInvalidSession    = nodex.ErrInvalidSession
)

const defaultMaxToolSteps = 3

type Config struct {
	// MaxToolSteps bounds how many tool rounds one turn may take before the
	// model must answer in plain text. Zero means the default.
	MaxToolSteps int
}

// Coach runs one conversation turn: load the profile, build model context,
// let the model speak and mutate the profile through tools, persist, archive.
type Coach struct {
	store    profilex.Store
	archiver contractx.Archiver
	prompts  promptx.PromptSet
	execute  nodex.ToolExecutor

	chatModel einomodel.ToolCallingChatModel

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	maxToolSteps int
	now          func() time.Time
}

func New(
	store profilex.Store,
	chatModel einomodel.ToolCallingChatModel,
	archiver contractx.Archiver,
	cfg Config,
) (*Coach, error) {
	if store == nil {
		return nil, errors.New("profile store is required")
	}
	if chatModel == nil {
		return nil, errors.New("chat model is required")
	}

	toolModel, err := chatModel.WithTools(toolx.Infos())
	if err != nil {
		return nil, fmt.Errorf("%w: bind profile tools: %v", contractx.ErrModelInvoke, err)
	}

	maxToolSteps := cfg.MaxToolSteps
	if maxToolSteps <= 0 {
		maxToolSteps = defaultMaxToolSteps
	}

	c := &Coach{
		store:        store,
		archiver:     archiver,
		prompts:      promptx.LoadPromptSet(),
		execute:      toolx.Execute,
		chatModel:    toolModel,
		maxToolSteps: maxToolSteps,
		now:          time.Now,
	}

	graphRunner, err := c.compileHandleTurnGraph(context.Background())
	if err != nil {
		return nil, err
	}
	c.graphRunner = graphRunner

	return c, nil
}

// HandleTurn processes one transcribed utterance and returns the reply text
// for the voice runtime to synthesize.
func (c *Coach) HandleTurn(ctx context.Context, sessionID string, transcript string) (string, error) {
	out, err := c.graphRunner.Invoke(ctx, nodex.GraphInput{
		SessionID:  sessionID,
		Transcript: transcript,
	})
	if err != nil {
		return "", err
	}

	log.Debug().
		Str("session_id", sessionID).
		Int("reply_len", len(out.Reply)).
		Msg("coach turn completed")

	return out.Reply, nil
}
