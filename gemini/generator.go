package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/formazioni"
	"google.golang.org/genai"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements formazioni.Generator at compile time.
var _ formazioni.Generator = (*Generator)(nil)

// Generator answers lineup questions using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model falls back to
// DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Answer generates an answer to a lineup question given retrieved context
// chunks. The raw model text is returned unmodified.
func (g *Generator) Answer(ctx context.Context, question string, chunks []*formazioni.Chunk) (string, error) {
	if question == "" {
		return "", formazioni.Errorf(formazioni.EINVALID, "question required")
	}

	prompt := BuildUserPrompt(chunks, question)
	config := BuildConfig()

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", formazioni.Errorf(formazioni.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for lineup questions.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.6)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: systemInstruction,
			}},
		},
		Temperature: &temp,
	}
}

// systemInstruction carries the static rules for reading fragmented lineup
// text and shaping the answer.
const systemInstruction = `You are a fantasy football assistant for Serie A predicted lineups.
Use only the information in the provided context. If the context contains partial lineups, report what is available without apologizing.
If the context is empty or does not cover the requested team or match, say that the information is missing. Never invent players.

Data structure rules:
- Players are listed as 'Name Surname (Role)'.
- Names and roles may be split across several lines; join them logically.
- A role in parentheses applies to the name immediately preceding it, even if separated by line breaks.

Output instructions:
- Identify the starting lineup for the requested team.
- Group players in this order: 1. Goalkeeper, 2. Defenders, 3. Midfielders, 4. Forwards.
- Use a clean bullet-point list.
- Answer in Italian.`

// noContextMarker is embedded in the prompt when retrieval returned nothing,
// so the model states uncertainty instead of drawing on its own knowledge.
const noContextMarker = "No lineup data was retrieved for this question."

// BuildUserPrompt builds the user prompt containing context chunks and the
// question.
func BuildUserPrompt(chunks []*formazioni.Chunk, question string) string {
	var sb strings.Builder
	sb.WriteString("<context>\n")
	if len(chunks) == 0 {
		sb.WriteString(noContextMarker + "\n")
	}
	for i, chunk := range chunks {
		sb.WriteString("<chunk>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		if chunk.Metadata.Match != "" {
			fmt.Fprintf(&sb, "<match>%s</match>\n", chunk.Metadata.Match)
		}
		if chunk.Metadata.Sources != "" {
			fmt.Fprintf(&sb, "<sources>%s</sources>\n", chunk.Metadata.Sources)
		}
		fmt.Fprintf(&sb, "<content>%s</content>\n", chunk.Content)
		sb.WriteString("</chunk>\n")
	}
	sb.WriteString("</context>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
