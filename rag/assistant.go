package rag

import (
	"context"

	"github.com/fwojciec/formazioni"
)

// Assistant answers lineup questions by retrieving relevant chunks and
// passing them to the generator.
type Assistant struct {
	retriever *Retriever
	generator formazioni.Generator
}

// NewAssistant creates an Assistant.
func NewAssistant(retriever *Retriever, generator formazioni.Generator) *Assistant {
	return &Assistant{retriever: retriever, generator: generator}
}

// Ask answers a single lineup question.
func (a *Assistant) Ask(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", formazioni.Errorf(formazioni.EINVALID, "question required")
	}

	chunks, err := a.retriever.Retrieve(ctx, question)
	if err != nil {
		return "", err
	}

	return a.generator.Answer(ctx, question, chunks)
}
