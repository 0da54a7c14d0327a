package lite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/databricks/databricks-sdk-go/logger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Command[C, T any] struct {
	Name  string
	Short string
	Long  string
	Args  cobra.PositionalArgs
	Flags func(flags *pflag.FlagSet, req *T)
	Run   func(root *Root[C], req *T, args []string) error
}

func (s *Command[C, T]) Register(root *Root[C]) {
	cmd := &cobra.Command{
		Use:   s.Name,
		Short: s.Short,
		Long:  s.Long,
		Args:  s.Args,
	}
	root.AddCommand(cmd)

	var req T
	if s.Flags != nil {
		s.Flags(cmd.Flags(), &req)
	}
	cmd.RunE = func(_ *cobra.Command, args []string) error {
		return s.Run(root, &req, args)
	}
}

type Init[T any] struct {
	Name       string
	Version    string
	Short      string
	Long       string
	ConfigPath string
	EnvPrefix  string
	Bind       func(flags *pflag.FlagSet, cfg *T)
	PreRun     func(cmd *Root[T]) error
}

func New[T any](ctx context.Context, init Init[T]) *Root[T] {
	cmd := &Root[T]{
		Command: cobra.Command{
			Use:     init.Name,
			Short:   init.Short,
			Long:    init.Long,
			Version: init.Version,

			// usage is only relevant for flag errors, see SetFlagErrorFunc
			SilenceUsage: true,

			// errors are printed by Run
			SilenceErrors: true,
		},
	}
	// overwritten when the command is executed
	cmd.SetContext(ctx)
	cmd.SetVersionTemplate(fmt.Sprintf("%s v%s\n", init.Name, init.Version))
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\n%s", err, c.UsageString())
	})
	if init.EnvPrefix == "" {
		init.EnvPrefix = strings.ToUpper(init.Name)
	}
	flags := cmd.PersistentFlags()
	if strings.Contains(init.ConfigPath, "$HOME") {
		home, err := os.UserHomeDir()
		if err != nil {
			logger.Warnf(ctx, "Cannot find home dir: %s", err)
		}
		init.ConfigPath = filepath.Clean(strings.ReplaceAll(init.ConfigPath, "$HOME", home))
	}
	flags.StringVar(&cmd.configPath, "config", init.ConfigPath, "Directory with the config file")
	if configPath, ok := os.LookupEnv(init.EnvPrefix + "_CONFIG"); ok {
		cmd.configPath = configPath
	}
	flags.BoolVar(&cmd.Debug, "debug", false, "Enable debug log output")
	if init.Bind != nil {
		init.Bind(flags, &cmd.Config)
	}
	cmd.PersistentPreRunE = cmd.preRun(init)
	return cmd
}

type Root[T any] struct {
	cobra.Command
	Logger     *slog.Logger
	Debug      bool
	Config     T
	configPath string
}

func (r *Root[T]) initLogger() {
	level := slog.LevelWarn
	if r.Debug {
		level = slog.LevelDebug
	}
	w := r.ErrOrStderr()
	r.Logger = slog.New(&friendlyHandler{
		Handler: slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
		}),
		w: w,
	})
	logger.DefaultLogger = &slogAdapter{r.Logger}
}

func (r *Root[T]) preRun(init Init[T]) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		r.initLogger()
		v := viper.NewWithOptions(viper.WithLogger(r.Logger))
		v.SetConfigName(init.Name)
		v.SetConfigType("yaml")
		if r.configPath != "" {
			v.AddConfigPath(r.configPath)
		}
		v.AddConfigPath(".")
		v.SetEnvPrefix(init.EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
		v.AutomaticEnv()

		err := v.ReadInConfig()
		if _, ok := err.(viper.ConfigFileNotFoundError); err != nil && !ok {
			return fmt.Errorf("config: %w", err)
		}
		err = r.bindViperToFlags(v, r.PersistentFlags(), "")
		if err != nil {
			return fmt.Errorf("root flags: %w", err)
		}
		err = r.bindViperToFlags(v, cmd.Flags(), cmd.Name()+".")
		if err != nil {
			return fmt.Errorf("command flags: %w", err)
		}
		err = r.debugConfiguration(cmd.Context(), v)
		if err != nil {
			return fmt.Errorf("effective config: %w", err)
		}
		if init.PreRun != nil {
			err = init.PreRun(r)
			if err != nil {
				return fmt.Errorf("pre run: %w", err)
			}
		}
		return nil
	}
}

func (r *Root[T]) debugConfiguration(ctx context.Context, v *viper.Viper) error {
	if !r.Debug {
		return nil
	}
	raw, err := yaml.Marshal(v.AllSettings())
	if err != nil {
		return err
	}
	logger.Debugf(ctx, "effective %s config:\n---\n%s", r.Use, raw)
	return nil
}

// bindViperToFlags copies values from config files and environment onto
// flags that were not set explicitly on the command line.
func (r *Root[T]) bindViperToFlags(v *viper.Viper, flags *pflag.FlagSet, prefix string) error {
	var errs []error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "help" || f.Name == "version" {
			return
		}
		propName := strings.ReplaceAll(prefix+f.Name, "-", "_")
		if f.Changed {
			v.Set(propName, f.Value.String())
			return
		}
		if !v.IsSet(propName) {
			v.SetDefault(propName, f.DefValue)
			return
		}
		switch x := v.Get(propName).(type) {
		case []any:
			sliceValue, ok := f.Value.(pflag.SliceValue)
			if !ok {
				errs = append(errs, fmt.Errorf("%s: expected slice, but got %s", propName, f.Value.String()))
				return
			}
			values := make([]string, 0, len(x))
			for _, y := range x {
				values = append(values, fmt.Sprint(y))
			}
			if err := sliceValue.Replace(values); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", propName, err))
			}
		default:
			if err := f.Value.Set(v.GetString(propName)); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", propName, err))
			}
		}
	})
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

type Registerable[T any] interface {
	Register(root *Root[T])
}

func (r *Root[T]) With(subs ...Registerable[T]) *Root[T] {
	for _, sub := range subs {
		sub.Register(r)
	}
	return r
}

func (r *Root[T]) Run(ctx context.Context) {
	if !r.Debug {
		defer func() {
			p := recover()
			if p != nil {
				fmt.Fprint(os.Stderr, color.RedString("PANIC: %s\n", p))
				os.Exit(2)
			}
		}()
	}
	_, err := r.ExecuteContextC(ctx)
	if err != nil {
		fmt.Fprint(os.Stderr, color.RedString("ERROR: %s\n", err.Error()))
		os.Exit(1)
	}
}
