package add

import (
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/mood/pkg/catalog"
)

// PromptMood lets the user pick a mood from the catalog.
func PromptMood(in io.Reader, out io.Writer) (string, error) {
	moods := catalog.Moods()

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "➜  {{ .Icon }} {{ .Label | bold }}",
		Inactive: "   {{ .Icon }} {{ .Label }}",
		Selected: "{{ .Icon }} {{ .Label | bold }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.ToLower(moods[index].Label)
		return strings.Contains(name, strings.ToLower(strings.TrimSpace(input)))
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "How are you feeling today?",
		Items:     moods,
		Templates: templates,
		Size:      len(moods),
		Searcher:  searcher,
		Stdin:     io.NopCloser(in),
		Stdout:    nopWriteCloser{out},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return moods[i].ID, nil
}

// PromptActivities asks for a comma separated activity list. An empty
// answer means no activities.
func PromptActivities(in io.Reader, out io.Writer) ([]string, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}

	prompt := promptui.Prompt{
		Label:     "What are you doing? (comma separated, optional)",
		Templates: templates,
		Validate: func(input string) error {
			_, _, err := Resolve(catalog.Happy, SplitActivities(input))
			return err
		},
		Stdin:  io.NopCloser(in),
		Stdout: nopWriteCloser{out},
	}

	result, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return SplitActivities(result), nil
}

// SplitActivities splits a comma separated answer, dropping blanks.
func SplitActivities(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
