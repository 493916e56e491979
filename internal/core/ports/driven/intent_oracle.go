package driven

import "context"

// IntentOracle is the external natural-language model that turns a free-text
// query into a structured intent suggestion. The oracle is untrusted: it
// returns raw JSON bytes that the caller must strictly validate, and it is
// never asked for - nor allowed to produce - executable query text.
type IntentOracle interface {
	// Infer performs one blocking request/response exchange and returns the
	// model's raw JSON payload
	Infer(ctx context.Context, query string) ([]byte, error)

	// Model returns the model name being used
	Model() string
}
