// Package analysis turns recent history into a short narrative summary.
package analysis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/alexanderramin/workstats/internal/llm"
)

// MaxEntries is how many of the newest entries are analyzed.
const MaxEntries = 15

// Source tells where a summary came from.
type Source string

const (
	SourceModel         Source = "model"
	SourceDeterministic Source = "deterministic"
)

// Summary is the outcome of an analysis run.
type Summary struct {
	Text       string
	Source     Source
	EntryCount int
}

// Summarizer produces a summary of history entries in a language.
type Summarizer interface {
	Summarize(ctx context.Context, entries []domain.HistoryEntry, lang domain.Language) (*Summary, error)
}

type modelSummarizer struct {
	client llm.Client
	loc    *time.Location
}

// NewModelSummarizer creates a Summarizer backed by an LLM client. Any model
// failure falls back to the deterministic summary.
func NewModelSummarizer(client llm.Client, loc *time.Location) Summarizer {
	return &modelSummarizer{client: client, loc: loc}
}

func (s *modelSummarizer) Summarize(ctx context.Context, entries []domain.HistoryEntry, lang domain.Language) (*Summary, error) {
	entries = newest(entries)
	if len(entries) == 0 {
		return Deterministic(entries, lang, s.loc), nil
	}

	promptJSON, err := json.MarshalIndent(promptEntries(entries, s.loc), "", "  ")
	if err != nil {
		return Deterministic(entries, lang, s.loc), nil
	}

	reply, err := s.client.Summarize(ctx, llm.Prompt{
		System: systemPrompt(lang),
		User:   "Recent history entries, newest first:\n\n" + string(promptJSON),
	})
	if err != nil {
		return Deterministic(entries, lang, s.loc), nil
	}
	return &Summary{Text: reply.Text, Source: SourceModel, EntryCount: len(entries)}, nil
}

type deterministicSummarizer struct {
	loc *time.Location
}

// NewDeterministicSummarizer creates a Summarizer that never calls a model.
func NewDeterministicSummarizer(loc *time.Location) Summarizer {
	return &deterministicSummarizer{loc: loc}
}

func (s *deterministicSummarizer) Summarize(_ context.Context, entries []domain.HistoryEntry, lang domain.Language) (*Summary, error) {
	return Deterministic(newest(entries), lang, s.loc), nil
}

func newest(entries []domain.HistoryEntry) []domain.HistoryEntry {
	l := domain.Ledger{Entries: entries}
	return l.Newest(MaxEntries)
}
