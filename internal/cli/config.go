package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/toyz/scaffold/internal/errors"
	"github.com/toyz/scaffold/internal/templates"
	"github.com/toyz/scaffold/internal/utils"
)

// DefaultOutputRoot is the directory the per-component folders are created under
const DefaultOutputRoot = "component-comparisons"

// Keys shared by flags and the optional config file
const (
	keyOutputRoot    = "output-root"
	keyTemplateStyle = "template-style"
	keyForce         = "force"
)

// Config holds the resolved configuration for one scaffold invocation
type Config struct {
	// Component is the local component directory name (required)
	Component string

	// ZardUIComponent and ShadcnItem default to Component when empty
	ZardUIComponent string
	ShadcnItem      string

	// OutputRoot is the directory <component>/ is created under
	OutputRoot string

	// TemplateStyle selects the template set (extended or simple)
	TemplateStyle string

	// ConfigFile is an optional YAML file providing defaults
	ConfigFile string

	Force   bool
	DryRun  bool
	Verbose bool
	Quiet   bool
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() Config {
	return Config{
		OutputRoot:    DefaultOutputRoot,
		TemplateStyle: string(templates.DefaultStyle),
	}
}

// resolveSettings layers flag > config file > default for the keys a config
// file may provide. Environment variables are not consulted.
func resolveSettings(cfg *Config, flags *pflag.FlagSet, styles []string) error {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetDefault(keyOutputRoot, defaults.OutputRoot)
	v.SetDefault(keyTemplateStyle, defaults.TemplateStyle)
	v.SetDefault(keyForce, false)

	for _, key := range []string{keyOutputRoot, keyTemplateStyle, keyForce} {
		if flag := flags.Lookup(key); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return errors.WrapConfigurationError(key, "bind", err)
			}
		}
	}

	if cfg.ConfigFile != "" {
		v.SetConfigFile(cfg.ConfigFile)
		if filepath.Ext(cfg.ConfigFile) == "" {
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			return errors.WrapConfigurationError(cfg.ConfigFile, "read", err).
				WithSuggestion("config files are YAML with keys output-root, template-style and force")
		}
	}

	cfg.OutputRoot = v.GetString(keyOutputRoot)
	cfg.TemplateStyle = normalizeStyle(v.GetString(keyTemplateStyle))
	cfg.Force = v.GetBool(keyForce)

	if err := utils.NewValidatorChain(utils.NotBlank(keyOutputRoot)).
		WithHint("omit --output-root to use " + DefaultOutputRoot).
		Validate(cfg.OutputRoot); err != nil {
		return err
	}

	return utils.NewValidatorChain(utils.IsOneOf(keyTemplateStyle, styles...)).
		WithHint("available styles: " + strings.Join(styles, ", ")).
		Validate(cfg.TemplateStyle)
}

// normalizeStyle lowercases the style name; blank selects the default set
func normalizeStyle(style string) string {
	style = strings.ToLower(strings.TrimSpace(style))
	if style == "" {
		return string(templates.DefaultStyle)
	}
	return style
}
