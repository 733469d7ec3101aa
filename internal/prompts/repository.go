package prompts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/frameforge/internal/frameworks"
	"github.com/JaimeStill/frameforge/pkg/completion"
	"github.com/JaimeStill/frameforge/pkg/metrics"
)

const (
	opGenerate = "generate"
	opRevise   = "revise"
)

type repo struct {
	client  completion.Client
	logger  *slog.Logger
	metrics *metrics.Recorder
	strict  bool
}

// New creates the prompt domain system. When strict is true, identifiers
// outside the known framework set are rejected with ErrUnknownFramework;
// otherwise they degrade silently to an empty generation template and a
// verbatim revision label.
func New(
	client completion.Client,
	logger *slog.Logger,
	rec *metrics.Recorder,
	strict bool,
) System {
	return &repo{
		client:  client,
		logger:  logger.With("system", "prompts"),
		metrics: rec,
		strict:  strict,
	}
}

func (r *repo) Handler(maxBodySize int64) *Handler {
	return NewHandler(r, r.logger, maxBodySize)
}

func (r *repo) Generate(ctx context.Context, cmd GenerateCommand) (*Result, error) {
	if err := r.admit(ctx, opGenerate, cmd.validate(), cmd.Framework); err != nil {
		return nil, err
	}
	return r.complete(ctx, opGenerate, ErrGenerationFailed, generateMessages(cmd))
}

func (r *repo) Revise(ctx context.Context, cmd ReviseCommand) (*Result, error) {
	if err := r.admit(ctx, opRevise, cmd.validate(), cmd.Framework); err != nil {
		return nil, err
	}
	return r.complete(ctx, opRevise, ErrRevisionFailed, reviseMessages(cmd))
}

// admit settles validation before any upstream call is made.
func (r *repo) admit(ctx context.Context, op string, err error, f frameworks.Framework) error {
	if err == nil {
		if _, perr := frameworks.Parse(string(f)); perr != nil {
			if r.strict {
				err = fmt.Errorf("%w: %q", perr, f)
			} else {
				r.logger.WarnContext(ctx, "unknown framework", "operation", op, "framework", f)
			}
		}
	}

	if err != nil {
		r.metrics.ObserveCompletion(op, metrics.OutcomeInvalid, 0)
		return err
	}
	return nil
}

func (r *repo) complete(
	ctx context.Context,
	op string,
	failure error,
	messages []completion.Message,
) (*Result, error) {
	start := time.Now()
	out, err := r.client.Complete(ctx, messages)
	elapsed := time.Since(start)

	if err != nil {
		r.metrics.ObserveCompletion(op, metrics.OutcomeFailure, elapsed)
		r.logger.WarnContext(
			ctx, "completion failed",
			"operation", op,
			"duration", elapsed,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", failure, err)
	}

	r.metrics.ObserveCompletion(op, metrics.OutcomeSuccess, elapsed)
	r.logger.InfoContext(
		ctx, "completion succeeded",
		"operation", op,
		"duration", elapsed,
		"output_chars", len([]rune(out)),
	)

	return &Result{Output: out}, nil
}
