package formazioni

import "context"

// Generator produces a natural language answer to a lineup question given
// retrieved context chunks.
//
// When chunks is empty the generator must state that the information is
// missing rather than invent players.
type Generator interface {
	Answer(ctx context.Context, question string, chunks []*Chunk) (string, error)
}
