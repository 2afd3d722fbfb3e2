package question

import "testing"

func TestInterpret(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{
			name: "wh question with copula",
			in:   "what is the capital of france?",
			want: "the capital of france is",
			ok:   true,
		},
		{
			name: "wh question with dummy auxiliary",
			in:   "when did the war end?",
			want: "the war end",
			ok:   true,
		},
		{
			name: "wh subject question",
			in:   "who wrote hamlet?",
			want: "wrote hamlet",
			ok:   true,
		},
		{
			name: "inverted copula with determiner subject",
			in:   "is the cat black?",
			want: "the cat is black",
			ok:   true,
		},
		{
			name: "inverted modal with bare subject",
			in:   "can birds fly?",
			want: "birds can fly",
			ok:   true,
		},
		{
			name: "inverted dummy auxiliary",
			in:   "did the dog bark?",
			want: "the dog bark",
			ok:   true,
		},
		{
			name: "question mark without interrogative shape",
			in:   "the cat sat?",
			want: "the cat sat",
			ok:   true,
		},
		{
			name: "empty line",
			in:   "   ",
			want: "",
			ok:   false,
		},
		{
			name: "bare question mark",
			in:   "?",
			want: "",
			ok:   false,
		},
		{
			name: "plain statement passes through",
			in:   "dogs bark",
			want: "dogs bark",
			ok:   true,
		},
	}

	interp := &Interpreter{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := interp.Interpret(tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Interpret(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestInterpretDropNonQuestions(t *testing.T) {
	interp := &Interpreter{DropNonQuestions: true}

	if _, ok := interp.Interpret("dogs bark"); ok {
		t.Error("non-question should be dropped")
	}
	if got, ok := interp.Interpret("are dogs loyal?"); !ok || got != "dogs are loyal" {
		t.Errorf("question should survive, got %q, %v", got, ok)
	}
}
