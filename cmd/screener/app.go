package main

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/nlp"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/ranking"
)

// app holds the components one command invocation works with
type app struct {
	cfg       *config.Config
	log       *zap.Logger
	runID     string
	extractor *extraction.Extractor
	matcher   *ranking.Matcher
	printer   *observability.Printer
	verbose   bool

	client llm.Client
}

// newApp loads configuration and wires the recognizer, embedder, extractor and matcher.
func newApp(ctx context.Context, opts *rootOptions, stderr io.Writer) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.debug {
		cfg.Log.Debug = true
	}
	if opts.jsonLogs {
		cfg.Log.JSON = true
	}

	base, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	a := &app{
		cfg:     cfg,
		runID:   uuid.NewString(),
		printer: observability.NewPrinter(stderr),
		verbose: opts.verbose,
	}
	a.log = base.With(zap.String(logger.FieldRunID, a.runID))

	if cfg.NeedsAPIKey() {
		llmConfig := llm.DefaultConfig().
			WithModel(llm.TierLite, cfg.NER.Model).
			WithEmbeddingModel(cfg.Embedding.Model)
		a.client, err = llm.NewClient(ctx, llmConfig, cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
	}

	vocab := extraction.DefaultVocabulary()
	if cfg.VocabularyFile != "" {
		ext, err := config.LoadVocabularyFile(cfg.VocabularyFile)
		if err != nil {
			a.Close()
			return nil, err
		}
		vocab = vocab.Extend(ext)
	}

	a.extractor = extraction.NewExtractor(a.recognizer(),
		extraction.WithVocabulary(vocab),
		extraction.WithLogger(a.log),
		extraction.WithTimeout(cfg.NER.Timeout),
	)
	a.matcher = ranking.NewMatcher(a.embedder(),
		ranking.WithWorkers(cfg.Workers),
		ranking.WithTimeout(cfg.Embedding.Timeout),
		ranking.WithLogger(a.log),
	)

	a.log.Debug("screener configured",
		logger.StringFields(
			logger.StringField{Key: "ner_" + logger.FieldProvider, Value: cfg.NER.Provider},
			logger.StringField{Key: "embedding_" + logger.FieldProvider, Value: cfg.Embedding.Provider},
			logger.StringField{Key: "vocabulary_file", Value: cfg.VocabularyFile},
		)...,
	)
	return a, nil
}

func (a *app) recognizer() nlp.EntityRecognizer {
	if a.cfg.NER.Provider == config.ProviderGemini {
		return nlp.NewLLMEntityRecognizer(a.client, a.log)
	}
	return nlp.NewRuleRecognizer()
}

func (a *app) embedder() nlp.Embedder {
	if a.cfg.Embedding.Provider == config.ProviderGemini {
		return nlp.NewLLMEmbedder(a.client)
	}
	return nlp.NewHashingEmbedder(a.cfg.Embedding.Dimensions)
}

// Close releases the LLM client and flushes the logger.
func (a *app) Close() {
	if a.client != nil {
		if err := a.client.Close(); err != nil {
			a.log.Warn("failed to close LLM client", zap.Error(err))
		}
	}
	_ = a.log.Sync()
}
