package sqlgen

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
)

// Generator turns a prompt into the model's raw reply text. Implementations
// must report failures as *Error values of kind transport, decode, schema or
// unknown.
type Generator interface {
	Generate(ctx context.Context, prompt string, apiKey string) (string, error)
}

// Request is one form submission. Field order is the validation order.
type Request struct {
	APIKey          string `json:"apiKey" validate:"required"`
	DatabaseContext string `json:"databaseContext" validate:"required"`
	Question        string `json:"question" validate:"required"`
}

var validationMessages = map[string]string{
	"APIKey":          "API key required. Please enter your API key.",
	"DatabaseContext": "Database context required. Please provide the database context.",
	"Question":        "Question required. Please enter a question.",
}

type Orchestrator struct {
	generator Generator
	validate  *validator.Validate
	logger    *slog.Logger
}

func NewOrchestrator(generator Generator, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{
		generator: generator,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

// HandleSubmit validates req, asks the generator for SQL and splits the reply.
// Every failure is terminal for this submission; nothing is retried.
func (o *Orchestrator) HandleSubmit(ctx context.Context, req Request) (Result, error) {
	if err := o.validateRequest(req); err != nil {
		return Result{}, err
	}

	start := time.Now()
	prompt := BuildPrompt(req.DatabaseContext, req.Question)

	raw, err := o.generator.Generate(ctx, prompt, req.APIKey)
	if err != nil {
		genErr := asError(err)
		o.logger.WarnContext(ctx, "generation request failed",
			slog.String("kind", string(genErr.Kind)),
			slog.Any("error", genErr),
			slog.Duration("duration", time.Since(start)),
		)
		return Result{}, genErr
	}

	result, err := Split(raw)
	if err != nil {
		o.logger.WarnContext(ctx, "model reply could not be split",
			slog.String("kind", string(KindSplit)),
			slog.Any("error", err),
			slog.Int("reply_bytes", len(raw)),
		)
		return Result{}, err
	}
	result.SQLCode = StripMarkdownSQL(result.SQLCode)

	o.logger.InfoContext(ctx, "sql generated",
		slog.Int("sql_bytes", len(result.SQLCode)),
		slog.Int("explanation_bytes", len(result.Explanation)),
		slog.Duration("duration", time.Since(start)),
	)

	return result, nil
}

func (o *Orchestrator) validateRequest(req Request) error {
	err := o.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return NewUnknownError(err)
	}

	if msg, ok := validationMessages[fieldErrs[0].Field()]; ok {
		return NewValidationError(msg)
	}

	return NewValidationError(fieldErrs[0].Error())
}
