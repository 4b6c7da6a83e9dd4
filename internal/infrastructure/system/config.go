// Package system provides the tool configuration of modelcheck
// (~/.modelcheck.yaml, MODELCHECK_* environment variables and flags).
// This is separate from the build configurations the tool validates.
package system

import (
	"fmt"
	"slices"
	"strings"

	apperrors "github.com/simkit-dev/modelcheck/internal/application/errors"
	"github.com/simkit-dev/modelcheck/internal/infrastructure/formula"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by viper.
const EnvPrefix = "MODELCHECK"

// Configuration keys.
const (
	KeyFormulaDialect           = "formula.dialect"
	KeyFormulaMaxLength         = "formula.max_length"
	KeyFormulaMaxNodes          = "formula.max_nodes"
	KeyOutputFormat             = "output.format"
	KeyOutputColor              = "output.color"
	KeyValidationMaxConcurrency = "validation.max_concurrency"
	KeyValidationFailOnWarning  = "validation.fail_on_warning"
)

// Config is the tool configuration.
type Config struct {
	Formula    FormulaConfig    `mapstructure:"formula"`
	Output     OutputConfig     `mapstructure:"output"`
	Validation ValidationConfig `mapstructure:"validation"`
}

// FormulaConfig selects and limits the expression parser.
type FormulaConfig struct {
	// Dialect is "expr" or "hcl"
	Dialect   string `mapstructure:"dialect"`
	MaxLength int    `mapstructure:"max_length"`
	MaxNodes  int    `mapstructure:"max_nodes"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// ValidationConfig controls multi-file validation runs.
type ValidationConfig struct {
	// MaxConcurrency bounds the files validated in parallel; 0 means unbounded
	MaxConcurrency int  `mapstructure:"max_concurrency"`
	FailOnWarning  bool `mapstructure:"fail_on_warning"`
}

// DefaultConfig returns a Config with defaults for all fields.
// This is used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Formula: FormulaConfig{
			Dialect:   formula.DialectExpr,
			MaxLength: formula.DefaultMaxLength,
			MaxNodes:  formula.DefaultMaxNodes,
		},
		Output: OutputConfig{
			Format: "table",
			Color:  true,
		},
		Validation: ValidationConfig{
			MaxConcurrency: 4,
			FailOnWarning:  false,
		},
	}
}

// SetDefaults registers the defaults and environment binding on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault(KeyFormulaDialect, d.Formula.Dialect)
	v.SetDefault(KeyFormulaMaxLength, d.Formula.MaxLength)
	v.SetDefault(KeyFormulaMaxNodes, d.Formula.MaxNodes)
	v.SetDefault(KeyOutputFormat, d.Output.Format)
	v.SetDefault(KeyOutputColor, d.Output.Color)
	v.SetDefault(KeyValidationMaxConcurrency, d.Validation.MaxConcurrency)
	v.SetDefault(KeyValidationFailOnWarning, d.Validation.FailOnWarning)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.NewConfigurationError("decode", "failed to decode configuration", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	c.Formula.Dialect = strings.ToLower(strings.TrimSpace(c.Formula.Dialect))
	if c.Formula.Dialect == "" {
		c.Formula.Dialect = formula.DialectExpr
	}
	if !slices.Contains([]string{formula.DialectExpr, formula.DialectHCL}, c.Formula.Dialect) {
		return apperrors.NewConfigurationError(KeyFormulaDialect,
			fmt.Sprintf("unsupported dialect %q (supported: %s, %s)", c.Formula.Dialect, formula.DialectExpr, formula.DialectHCL), nil)
	}
	if c.Formula.MaxLength < 0 {
		return apperrors.NewConfigurationError(KeyFormulaMaxLength, "must not be negative", nil)
	}
	if c.Formula.MaxNodes < 0 {
		return apperrors.NewConfigurationError(KeyFormulaMaxNodes, "must not be negative", nil)
	}
	if c.Validation.MaxConcurrency < 0 {
		return apperrors.NewConfigurationError(KeyValidationMaxConcurrency, "must not be negative", nil)
	}
	return nil
}

// ParserOptions returns the formula parser options.
func (c *Config) ParserOptions() formula.Options {
	return formula.Options{
		Dialect:   c.Formula.Dialect,
		MaxLength: c.Formula.MaxLength,
		MaxNodes:  c.Formula.MaxNodes,
	}
}
