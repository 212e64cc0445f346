package extract

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/jonathan/resume-restyle/internal/llm"
	"github.com/jonathan/resume-restyle/internal/schemas"
	"github.com/jonathan/resume-restyle/internal/types"
)

// defaultRemoteTimeout bounds a single model call.
const defaultRemoteTimeout = 30 * time.Second

// Remote extracts fields with an LLM and falls back to the local heuristics
// whenever the model call, the reply validation, or the decode fails. A
// Remote extraction therefore never fails outright.
type Remote struct {
	client   llm.Client
	tier     llm.ModelTier
	timeout  time.Duration
	fallback Extractor
}

// NewRemote returns a Remote extractor backed by client at the standard tier.
func NewRemote(client llm.Client) *Remote {
	return &Remote{
		client:   client,
		tier:     llm.TierStandard,
		timeout:  defaultRemoteTimeout,
		fallback: &Local{},
	}
}

// WithTier overrides the model tier.
func (r *Remote) WithTier(tier llm.ModelTier) *Remote {
	r.tier = tier
	return r
}

// WithTimeout overrides the per-call timeout.
func (r *Remote) WithTimeout(timeout time.Duration) *Remote {
	if timeout > 0 {
		r.timeout = timeout
	}
	return r
}

// ExtractRecord asks the model for a field map and validates the reply.
func (r *Remote) ExtractRecord(ctx context.Context, text string) (types.ResumeRecord, types.ConfidenceMap, error) {
	record, err := r.extractRemote(ctx, text)
	if err != nil {
		log.Printf("remote extraction failed, using local heuristics: %v", err)
		return r.fallback.ExtractRecord(ctx, text)
	}
	if record.IsEmpty() {
		log.Printf("remote extraction returned no fields, using local heuristics")
		return r.fallback.ExtractRecord(ctx, text)
	}
	return record, scoreRecord(record), nil
}

func (r *Remote) extractRemote(ctx context.Context, text string) (types.ResumeRecord, error) {
	var record types.ResumeRecord

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	prompt := llm.BuildExtractionPrompt(llm.ResumeFieldsSchema(), text)
	reply, err := r.client.GenerateJSON(ctx, prompt, r.tier)
	if err != nil {
		return record, &RemoteExtractionError{Message: "model call failed", Cause: err}
	}

	if err := schemas.ValidateResumeRecord(reply); err != nil {
		return record, &RemoteExtractionError{Message: "reply failed schema validation", Cause: err}
	}

	// Lenient decode: unknown keys and null values are dropped.
	var fields map[string]any
	if err := json.Unmarshal([]byte(reply), &fields); err != nil {
		return record, &RemoteExtractionError{Message: "reply is not valid JSON", Cause: err}
	}
	for key, value := range fields {
		if s, ok := value.(string); ok {
			record.SetField(key, strings.TrimSpace(s))
		}
	}

	return record, nil
}
