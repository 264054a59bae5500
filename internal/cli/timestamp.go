package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Conversia-AI/craftable-convx/convx"
	"github.com/Conversia-AI/craftable-convx/datetimex"
)

type TimestampOptions struct {
	*GlobalOptions

	Zone string

	now func() time.Time
}

func DefaultTimestampOptions(global *GlobalOptions) *TimestampOptions {
	return &TimestampOptions{GlobalOptions: global, now: time.Now}
}

func NewCmdTimestamp(global *GlobalOptions) *cobra.Command {
	o := DefaultTimestampOptions(global)
	cmd := &cobra.Command{
		Use:   "timestamp [RFC3339]",
		Short: "Split a point in time into date and time components.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd.OutOrStdout(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *TimestampOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Zone, "zone", "z", o.Zone, "show the time in this zone (IANA name, UTC, Local or -07:00)")
}

// Run always prints JSON; the components have no useful text rendering.
func (o *TimestampOptions) Run(w io.Writer, args []string) error {
	t := o.now()
	if len(args) == 1 {
		parsed, err := time.Parse(time.RFC3339, args[0])
		if err != nil {
			return ErrorRegistry.NewWithCause(ErrInvalidTime, err).WithDetail("input", args[0])
		}
		t = parsed
	}

	if o.Zone != "" {
		loc, err := datetimex.ResolveLocation(o.Zone)
		if err != nil {
			return err
		}
		t = t.In(loc)
	}

	ts, err := convx.ConvertTo[datetimex.TimestampDTO](o.Registry(), t)
	if err != nil {
		return err
	}
	return printJSON(w, ts)
}
