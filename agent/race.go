package agent

import (
	"context"
)

// generate invokes the model, optionally racing several duplicate calls
// and taking the first to complete. Exactly one result is consumed;
// losing calls are abandoned, and a single call's failure does not fail
// the operation as long as any call succeeds. When every call fails, the
// failure of whichever completed last is propagated.
func (p *Pipeline) generate(ctx context.Context, system, prompt string) (string, error) {
	n := p.policies.GenerationRaces
	if n <= 1 {
		return p.generator.Generate(ctx, system, prompt)
	}

	type outcome struct {
		content string
		err     error
	}

	// Buffered so abandoned goroutines never block on send.
	results := make(chan outcome, n)
	for i := 0; i < n; i++ {
		go func() {
			content, err := p.generator.Generate(ctx, system, prompt)
			results <- outcome{content: content, err: err}
		}()
	}

	var lastErr error
	for i := 0; i < n; i++ {
		res := <-results
		if res.err == nil {
			return res.content, nil
		}
		lastErr = res.err
	}

	return "", lastErr
}
