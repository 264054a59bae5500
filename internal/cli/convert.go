package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Conversia-AI/craftable-convx/convx"
)

type ConvertOptions struct {
	*GlobalOptions

	From string
	To   string
}

type convertResult struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Input string `json:"input"`
	Value any    `json:"value"`
}

func DefaultConvertOptions(global *GlobalOptions) *ConvertOptions {
	return &ConvertOptions{GlobalOptions: global, From: "string"}
}

func NewCmdConvert(global *GlobalOptions) *cobra.Command {
	o := DefaultConvertOptions(global)
	cmd := &cobra.Command{
		Use:   "convert VALUE --to TYPE",
		Short: "Convert a value with the registered converters.",
		Long: `Convert a value with the registered converters.

VALUE is parsed from text first when --from is not "string", so
"convert 1.5 --from decimal.Decimal --to float64" chains string -> decimal.Decimal -> float64.
Type names are printed by "convx list".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd.OutOrStdout(), args[0])
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (o *ConvertOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.From, "from", o.From, "source type of VALUE")
	fs.StringVar(&o.To, "to", o.To, "target type")
}

func (o *ConvertOptions) Run(w io.Writer, input string) error {
	value, err := o.convert(input)
	if err != nil {
		return err
	}

	if o.Output == jsonFormat {
		return printJSON(w, convertResult{From: o.From, To: o.To, Input: input, Value: value})
	}
	_, err = fmt.Fprintf(w, "%v\n", value)
	return err
}

func (o *ConvertOptions) convert(input string) (any, error) {
	var value any = input
	if o.From != "string" {
		parsed, err := o.apply("string", o.From, value)
		if err != nil {
			return nil, err
		}
		value = parsed
	}
	if o.From == o.To {
		return value, nil
	}
	return o.apply(o.From, o.To, value)
}

func (o *ConvertOptions) apply(from, to string, value any) (any, error) {
	c, ok := o.Registry().LookupByName(from, to)
	if !ok {
		return nil, convx.ErrorRegistry.New(convx.ErrNoConverter).
			WithDetail("from", from).
			WithDetail("to", to)
	}

	out, err := c.Convert(value)
	if err != nil {
		if convx.IsConversionFailed(err) {
			return nil, err
		}
		return nil, convx.ErrorRegistry.NewWithCause(convx.ErrConversionFailed, err).
			WithDetail("from", from).
			WithDetail("to", to)
	}
	return out, nil
}
