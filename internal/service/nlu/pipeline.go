package nlu

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/partassist/internal/domain"
	"github.com/seu-repo/partassist/internal/ports"
)

const defaultLLMTimeout = 4 * time.Second

// PipelineConfig tunes the classification stages.
type PipelineConfig struct {
	// LLMTimeout bounds the fallback call so a slow model never stalls
	// the conversation.
	LLMTimeout time.Duration
	// ProblemDetectorBeforeLLM runs the symptom stage before the model
	// fallback. Running it first keeps obvious malfunction reports off
	// the model entirely.
	ProblemDetectorBeforeLLM bool
}

// Pipeline runs the layered intent classification: scope guard, rule
// groups, problem-indicator detection and finally the model fallback.
// Earlier stages are cheaper and more predictable, so a later stage
// only runs when the ones before it were inconclusive.
type Pipeline struct {
	rules      *RuleClassifier
	problems   *ProblemDetector
	llm        ports.IntentClassifier
	llmTimeout time.Duration
	probFirst  bool
	logger     *zap.Logger
}

// NewPipeline builds a pipeline. llm may be nil, which disables the
// model fallback and leaves classification fully deterministic.
func NewPipeline(llm ports.IntentClassifier, cfg PipelineConfig, logger *zap.Logger) *Pipeline {
	timeout := cfg.LLMTimeout
	if timeout <= 0 {
		timeout = defaultLLMTimeout
	}
	return &Pipeline{
		rules:      NewRuleClassifier(),
		problems:   NewProblemDetector(),
		llm:        llm,
		llmTimeout: timeout,
		probFirst:  cfg.ProblemDetectorBeforeLLM,
		logger:     logger,
	}
}

// Classify resolves the intent of one utterance. It always returns a
// usable verdict: model failures degrade to the rule result instead of
// surfacing an error to the caller.
func (p *Pipeline) Classify(ctx context.Context, text string, params domain.ExtractedParams) domain.Classification {
	if !InScope(text) && !params.HasEntity() {
		return domain.Classification{Intent: domain.IntentOutOfScope, Source: domain.SourceRule, Confident: true}
	}

	verdict := p.rules.Classify(text, params)
	if verdict.Confident {
		return verdict
	}

	if p.probFirst {
		if v, ok := p.detectProblem(text, params); ok {
			return v
		}
		if v, ok := p.askModel(ctx, text, verdict); ok {
			return v
		}
	} else {
		if v, ok := p.askModel(ctx, text, verdict); ok {
			return v
		}
		if v, ok := p.detectProblem(text, params); ok {
			return v
		}
	}

	return verdict
}

func (p *Pipeline) detectProblem(text string, params domain.ExtractedParams) (domain.Classification, bool) {
	if !p.problems.Detect(text, params) {
		return domain.Classification{}, false
	}
	return domain.Classification{
		Intent:    domain.IntentDiagnose,
		Source:    domain.SourceProblemIndicator,
		Confident: true,
	}, true
}

// askModel consults the model fallback. It only fires for utterances
// the rules could not place but that still use appliance vocabulary,
// so clearly off-topic text never reaches the model.
func (p *Pipeline) askModel(ctx context.Context, text string, ruleVerdict domain.Classification) (domain.Classification, bool) {
	if p.llm == nil {
		return domain.Classification{}, false
	}
	if ruleVerdict.Intent != domain.IntentOutOfScope || !HasDomainVocab(text) {
		return domain.Classification{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, p.llmTimeout)
	defer cancel()

	intent, err := p.llm.ClassifyIntent(ctx, text)
	if err != nil {
		p.logger.Warn("model intent fallback failed, keeping rule verdict", zap.Error(err))
		return domain.Classification{}, false
	}
	if !intent.IsValid() || intent == domain.IntentOutOfScope {
		return domain.Classification{}, false
	}
	return domain.Classification{Intent: intent, Source: domain.SourceLLM, Confident: true}, true
}
