package producer

import (
	"context"
	"fmt"

	"github.com/cognicore/sentgen/internal/llm"
	"github.com/cognicore/sentgen/pkg/sentgen/config"
	"github.com/cognicore/sentgen/pkg/sentgen/question"
)

// QuestionInterpreter turns a file of questions into declarative
// sentences. Rule-based by default; with an LLM endpoint configured,
// each question is paraphrased through it instead.
type QuestionInterpreter struct {
	cfg    config.Stage
	interp *question.Interpreter
	client *llm.Client
}

func newQuestionInterpreter(cfg config.Stage) *QuestionInterpreter {
	qi := &QuestionInterpreter{
		cfg:    cfg,
		interp: &question.Interpreter{DropNonQuestions: cfg.DropNonQuestions},
	}
	if cfg.LLM.BaseURL != "" {
		qi.client = &llm.Client{
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			APIKey:  cfg.LLM.APIKey,
		}
	}
	return qi
}

// Sentences implements Producer.
func (q *QuestionInterpreter) Sentences(ctx context.Context) ([]string, error) {
	lines, err := readLines(q.cfg.Questions)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, line := range lines {
		if q.client != nil {
			sentence, err := q.client.Declarative(ctx, line)
			if err != nil {
				return nil, fmt.Errorf("paraphrase %q: %w", line, err)
			}
			out = append(out, sentence)
			continue
		}
		if sentence, ok := q.interp.Interpret(line); ok {
			out = append(out, sentence)
		}
	}
	return out, nil
}
