package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tableflip.dev/mood/pkg/catalog"
)

// ActivityOptions collects the activities to tag an entry with.
type ActivityOptions struct {
	Activities []string
}

// activityList is a repeatable, comma separated flag of catalog activities.
type activityList struct {
	ids *[]string
}

var _ pflag.Value = (*activityList)(nil)

func (a *activityList) String() string {
	if a.ids == nil {
		return ""
	}
	return strings.Join(*a.ids, ",")
}

func (a *activityList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		act, ok := catalog.FindActivity(part)
		if !ok {
			return fmt.Errorf("unknown activity %q", strings.TrimSpace(part))
		}
		*a.ids = append(*a.ids, act.ID)
	}
	return nil
}

func (a *activityList) Type() string {
	return "activity"
}

func AddActivityArgs(cmd *cobra.Command, o *ActivityOptions) {
	cmd.Flags().VarP(&activityList{ids: &o.Activities}, "activity", "a",
		fmt.Sprintf("Activity to tag the entry with, repeatable or comma separated. One of: %s.",
			strings.Join(catalog.ActivityIDs(), ", ")))
	_ = cmd.RegisterFlagCompletionFunc("activity", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return catalog.ActivityIDs(), cobra.ShellCompDirectiveNoFileComp
	})
}
