package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/sentgen/pkg/sentgen/internalerr"
)

// Kind selects which sentence producer a stage runs. The set is closed;
// unknown values are rejected while the configuration is being loaded,
// before any stage is constructed or scheduled.
type Kind string

const (
	KindSelector            Kind = "selector"
	KindCorruptor           Kind = "corruptor"
	KindCorpusCorruptor     Kind = "corpus_corruptor"
	KindQuestionInterpreter Kind = "question_interpreter"
	KindManual              Kind = "manual"
)

// Valid reports whether k names a known producer.
func (k Kind) Valid() bool {
	switch k {
	case KindSelector, KindCorruptor, KindCorpusCorruptor, KindQuestionInterpreter, KindManual:
		return true
	}
	return false
}

// UnmarshalYAML rejects unrecognized producer kinds at load time.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	kind := Kind(s)
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", internalerr.ErrUnknownProducer, s)
	}
	*k = kind
	return nil
}

// LLM configures the optional paraphrase backend for the question
// interpreter. Left empty, interpretation stays rule-based.
type LLM struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	APIKey  string `yaml:"api_key"`
}

// Stage describes one sentence-producing stage. The shared fields form
// the output contract configuration; the rest are read only by the
// producer they belong to.
type Stage struct {
	Name     string `yaml:"name"`
	Producer Kind   `yaml:"sentence_producer_type"`
	Output   string `yaml:"output"`

	CreateSentenceIndices bool  `yaml:"create_sentence_indices"`
	MaxSentences          int   `yaml:"max_sentences"`
	Seed                  int64 `yaml:"seed"`

	// selector / corpus_corruptor
	CorpusDB  string `yaml:"corpus_db"`
	Query     string `yaml:"query"`
	Limit     int    `yaml:"limit"`
	Stopwords string `yaml:"stopwords"`

	// corruptor / corpus_corruptor
	Source      string   `yaml:"source"`
	Corruptions []string `yaml:"corruptions"`
	Vocabulary  string   `yaml:"vocabulary"`

	// question_interpreter
	Questions        string `yaml:"questions"`
	DropNonQuestions bool   `yaml:"drop_non_questions"`
	LLM              LLM    `yaml:"llm"`

	// manual
	Filename string `yaml:"filename"`
}

// Validate checks the fields the stage's producer requires. Variant
// algorithms read their own extra fields; only presence and basic shape
// are checked here.
func (s *Stage) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: stage name is required", internalerr.ErrInvalidConfig)
	}
	if !s.Producer.Valid() {
		return fmt.Errorf("%w: %q", internalerr.ErrUnknownProducer, string(s.Producer))
	}
	if s.MaxSentences < 0 {
		return fmt.Errorf("%w: max_sentences must be positive when set", internalerr.ErrInvalidConfig)
	}

	switch s.Producer {
	case KindManual:
		if s.Filename == "" {
			return fmt.Errorf("%w: manual producer requires filename", internalerr.ErrInvalidConfig)
		}
		return nil
	case KindSelector:
		if s.CorpusDB == "" {
			return fmt.Errorf("%w: selector requires corpus_db", internalerr.ErrInvalidConfig)
		}
	case KindCorruptor:
		if s.Source == "" {
			return fmt.Errorf("%w: corruptor requires source", internalerr.ErrInvalidConfig)
		}
	case KindCorpusCorruptor:
		if s.Source == "" {
			return fmt.Errorf("%w: corpus_corruptor requires source", internalerr.ErrInvalidConfig)
		}
		if s.CorpusDB == "" {
			return fmt.Errorf("%w: corpus_corruptor requires corpus_db", internalerr.ErrInvalidConfig)
		}
	case KindQuestionInterpreter:
		if s.Questions == "" {
			return fmt.Errorf("%w: question_interpreter requires questions", internalerr.ErrInvalidConfig)
		}
	}

	if s.Output == "" {
		return fmt.Errorf("%w: stage %s requires an output path", internalerr.ErrInvalidConfig, s.Name)
	}
	return nil
}

// Pipeline is the top-level configuration file: an ordered list of stages.
type Pipeline struct {
	Stages []Stage `yaml:"stages"`
}

// Load reads and validates a pipeline configuration from a YAML file.
func Load(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var p Pipeline
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	for i := range p.Stages {
		if err := p.Stages[i].Validate(); err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
	}
	return &p, nil
}

// WordList is a flat word list configuration (stopwords, vocabularies)
type WordList struct {
	Terms []string `yaml:"terms"`
}

// LoadWordList loads a word list from a YAML file
func LoadWordList(path string) (*WordList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wl WordList
	if err := yaml.Unmarshal(data, &wl); err != nil {
		return nil, err
	}

	return &wl, nil
}
