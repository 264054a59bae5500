package cli

import (
	"github.com/spf13/cobra"
)

// NewConvxCommand creates the root command. Subcommands share the global
// options bound to the root's persistent flags.
func NewConvxCommand() *cobra.Command {
	o := DefaultGlobalOptions()
	cmd := &cobra.Command{
		Use:   "convx",
		Short: "convx inspects and exercises the converter registry",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			return o.Validate(args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.PersistentFlags())

	cmd.AddCommand(NewCmdList(o))
	cmd.AddCommand(NewCmdConvert(o))
	cmd.AddCommand(NewCmdTimestamp(o))
	return cmd
}
