package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is a chat session with an expert.
type Agent struct {
	w      io.Writer
	r      *bufio.Reader
	Expert *Expert
	// Print displays the expert answers, as plain text by default.
	Print func(string)
}

// New creates a new Agent that reads questions from r and writes to w.
func New(w io.Writer, r io.Reader, expert *Expert) *Agent {
	a := &Agent{
		w:      w,
		r:      bufio.NewReader(r),
		Expert: expert,
	}
	a.Print = func(s string) { fmt.Fprintln(a.w, s) }
	return a
}

// Ask sends a single question and returns the expert's answer.
func (a *Agent) Ask(ctx context.Context, client *genai.Client, question string) (string, error) {
	if a.Expert.chat == nil {
		if err := a.Expert.Start(ctx, client); err != nil {
			return "", err
		}
	}
	content, err := a.Expert.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	return text(content), nil
}

const prompt = "rkpi> "

// Run starts the interactive REPL session for the agent. The prompts are
// sent first, as if the user typed them.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	fmt.Fprintln(a.w, "Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, firstLine(input))
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, client, input)
		if err != nil {
			return err
		}
		a.Print(answer)
	}
}

// text joins the text parts of a content.
func text(c *genai.Content) string {
	var b strings.Builder
	for _, p := range c.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
