package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/catalog"
	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/add"
	"tableflip.dev/mood/pkg/runner/clearall"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.ActivityOptions{}
	io := &options.InteractiveOptions{}
	oo := &options.OutputOptions{}

	long := strings.Builder{}
	long.WriteString("Record how you feel right now.\n\n")
	long.WriteString("Moods:\n")
	for _, m := range catalog.Moods() {
		long.WriteString(fmt.Sprintf("  %s %-8s %s\n", m.Icon, m.ID, m.Label))
	}

	cmd := &cobra.Command{
		Use:   "add [mood]",
		Short: "Log a mood, optionally tagged with activities.",
		Long:  long.String(),
		Example: `
mood add happy
mood add sad -a work -a coffee
mood add tired --activity reading,relaxing --json
mood add -i
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: catalog.MoodIDs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := openJournal(contextOf(cmd))
			if err != nil {
				return oo.HandleError(err)
			}
			defer svc.Close()

			mood, activities, err := moodFromArgs(cmd, args, ao.Activities, io.Interactive)
			if err != nil {
				return oo.HandleError(err)
			}

			a := add.Add{
				Mood:       mood,
				Activities: activities,
				JSON:       oo.JSON,
				Controller: svc.Controller,
			}
			err = a.Do(contextOf(cmd))
			return oo.HandleError(err)
		},
	}

	options.AddActivityArgs(cmd, ao)
	options.AddInteractiveArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

// moodFromArgs prompts for the mood when none was given, and with
// --interactive for the activities too. Prompting needs a terminal.
func moodFromArgs(cmd *cobra.Command, args, activities []string, interactive bool) (string, []string, error) {
	var mood string
	if len(args) == 1 {
		if !interactive {
			return args[0], activities, nil
		}
		mood = args[0]
	}
	if !clearall.Interactive() {
		if mood != "" {
			return mood, activities, nil
		}
		return "", nil, errors.New("a mood is required, expected one of " + strings.Join(catalog.MoodIDs(), ", "))
	}

	var err error
	if mood == "" {
		if mood, err = add.PromptMood(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			return "", nil, err
		}
	}
	if len(activities) == 0 {
		if activities, err = add.PromptActivities(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			return "", nil, err
		}
	}
	return mood, activities, nil
}
