package question

import "strings"

// Interpreter rewrites interrogative sentences into declarative form,
// the shape most downstream sentence consumers expect. The rewriting is
// rule-based and deliberately shallow: wh-questions become cloze-style
// statements ("what is the capital of france?" -> "the capital of france
// is"), auxiliary-inversion questions are uninverted with a small
// determiner-aware subject heuristic ("is the cat black?" -> "the cat is
// black").
type Interpreter struct {
	// DropNonQuestions discards lines that do not look like questions
	// instead of passing them through unchanged.
	DropNonQuestions bool
}

var whWords = map[string]bool{
	"what": true, "who": true, "whom": true, "whose": true,
	"where": true, "when": true, "why": true, "which": true, "how": true,
}

var auxWords = map[string]bool{
	"is": true, "are": true, "was": true, "were": true, "am": true,
	"do": true, "does": true, "did": true,
	"can": true, "could": true, "will": true, "would": true,
	"shall": true, "should": true, "may": true, "might": true, "must": true,
	"has": true, "have": true, "had": true,
}

// The "do" family carries no meaning in the declarative form and is
// dropped rather than re-inserted.
var dummyAux = map[string]bool{"do": true, "does": true, "did": true}

var determiners = map[string]bool{
	"the": true, "a": true, "an": true,
	"this": true, "that": true, "these": true, "those": true,
	"my": true, "your": true, "his": true, "her": true, "its": true,
	"our": true, "their": true,
}

// Interpret converts one input line into a declarative sentence. The
// second return value is false when the line is empty, or when it is not
// a question and DropNonQuestions is set.
func (i *Interpreter) Interpret(line string) (string, bool) {
	s := strings.TrimSpace(line)
	if s == "" {
		return "", false
	}

	isQuestion := strings.HasSuffix(s, "?")
	s = strings.TrimRight(s, "?")
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	words := strings.Fields(s)
	first := strings.ToLower(words[0])

	switch {
	case whWords[first]:
		return interpretWh(words), true
	case auxWords[first]:
		return interpretInverted(words), true
	case isQuestion:
		// Question mark but no recognizable interrogative shape:
		// keep the text, lose the mark.
		return strings.Join(words, " "), true
	}

	if i.DropNonQuestions {
		return "", false
	}
	return strings.Join(words, " "), true
}

// interpretWh turns "wh aux rest..." into "rest... aux" and a bare
// "wh rest..." into "rest...".
func interpretWh(words []string) string {
	rest := words[1:]
	if len(rest) == 0 {
		return words[0]
	}
	if auxWords[strings.ToLower(rest[0])] {
		aux := strings.ToLower(rest[0])
		rest = rest[1:]
		if len(rest) == 0 {
			return aux
		}
		if !dummyAux[aux] {
			return strings.Join(rest, " ") + " " + aux
		}
	}
	return strings.Join(rest, " ")
}

// interpretInverted turns "aux subject rest..." into
// "subject aux rest...", where the subject is the first word, extended
// by one when it starts with a determiner.
func interpretInverted(words []string) string {
	aux := strings.ToLower(words[0])
	rest := words[1:]
	if len(rest) == 0 {
		return aux
	}

	subjectLen := 1
	if determiners[strings.ToLower(rest[0])] && len(rest) > 1 {
		subjectLen = 2
	}

	var out []string
	out = append(out, rest[:subjectLen]...)
	if !dummyAux[aux] {
		out = append(out, aux)
	}
	out = append(out, rest[subjectLen:]...)
	return strings.Join(out, " ")
}
