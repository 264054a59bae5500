package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Conversia-AI/craftable-convx/configx"
	"github.com/Conversia-AI/craftable-convx/convx"
	"github.com/Conversia-AI/craftable-convx/convx/providers/convxjwt"
	"github.com/Conversia-AI/craftable-convx/convx/providers/convxmongo"
	"github.com/Conversia-AI/craftable-convx/convx/providers/convxpgvector"
	"github.com/Conversia-AI/craftable-convx/convx/providers/convxs3"
	"github.com/Conversia-AI/craftable-convx/convx/providers/convxsql"
	"github.com/Conversia-AI/craftable-convx/convx/providers/convxsqs"
	"github.com/Conversia-AI/craftable-convx/convx/providers/convxuuid"
	"github.com/Conversia-AI/craftable-convx/datetimex"
	"github.com/Conversia-AI/craftable-convx/logx"
)

const (
	textFormat = "text"
	jsonFormat = "json"

	// EnvPrefix prefixes the environment variables read by the CLI
	EnvPrefix = "CONVX_"
)

var legalOutputTypes = []string{textFormat, jsonFormat}

// GlobalOptions are shared by every subcommand
type GlobalOptions struct {
	ConfigFile string
	Output     string
	Verbose    bool

	config   *configx.Config
	registry *convx.Registry
}

func DefaultGlobalOptions() *GlobalOptions {
	return &GlobalOptions{Output: textFormat}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigFile, "config", "c", o.ConfigFile, "read settings from this file in addition to "+EnvPrefix+"* variables")
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
	fs.BoolVarP(&o.Verbose, "verbose", "v", o.Verbose, "log registry activity")
}

// Complete loads the configuration and populates the registry
func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	if o.Verbose {
		logx.SetLevel(logx.DebugLevel)
	}

	builder := configx.NewBuilder().
		WithDefaults(map[string]any{
			"decimal.separator": ".",
			"time.layout":       convx.DefaultOptions().TimeLayout,
		}).
		FromEnv(EnvPrefix)
	if o.ConfigFile != "" {
		builder = builder.FromFile(o.ConfigFile)
	}

	cfg, err := builder.Build()
	if err != nil {
		return ErrorRegistry.NewWithCause(ErrConfig, err)
	}
	o.config = cfg

	opts := convx.LoadOptions(cfg)
	logx.DebugStruct("registry options", opts)
	o.registry = NewRegistry(opts)
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	if !slices.Contains(legalOutputTypes, o.Output) {
		return ErrorRegistry.New(ErrInvalidOutput).
			WithDetail("output", o.Output).
			WithDetail("allowed", legalOutputTypes)
	}
	return nil
}

// Registry returns the registry built by Complete
func (o *GlobalOptions) Registry() *convx.Registry {
	return o.registry
}

// NewRegistry builds a registry holding every bundled converter
func NewRegistry(opts convx.Options) *convx.Registry {
	r := convx.NewRegistry("cli")
	convx.RegisterProviders(r,
		convx.NewBasicConverters(opts),
		convx.NewPrimitiveConverters(opts),
		datetimex.Converters(),
		convxuuid.Converters(),
		convxmongo.Converters(),
		convxsql.Converters(),
		convxpgvector.Converters(),
		convxjwt.Converters(),
		convxsqs.Converters(),
		convxs3.Converters(),
	)
	return r
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
