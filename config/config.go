package config

import (
	"bytes"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"strings"
	"time"
)

const (
	KeySourceURL      = "source.url"
	KeySourcePath     = "source.path"
	KeySourceFile     = "source.file"
	KeySourceFormat   = "source.format"
	KeySourceTimeout  = "source.timeout_seconds"
	KeyColumns        = "columns"
	KeyCountries      = "countries"
	KeyServePort      = "serve.port"
	KeyServeAssetFile = "serve.asset_file"
)

type Config struct {
	Source    SourceConfig      `mapstructure:"source" validate:"required"`
	Columns   ColumnsConfig     `mapstructure:"columns"`
	Countries map[string]string `mapstructure:"countries"`
	Serve     ServeConfig       `mapstructure:"serve"`
}

// SourceConfig points at the dataset. File wins over URL when both are set.
type SourceConfig struct {
	URL            string `mapstructure:"url" validate:"omitempty,url"`
	Path           string `mapstructure:"path" validate:"required,startswith=/"`
	File           string `mapstructure:"file"`
	Format         string `mapstructure:"format" validate:"omitempty,oneof=csv excel tsv"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0,lte=600"`
}

func (s SourceConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

type ColumnsConfig struct {
	WorkID    []string `mapstructure:"work_id"`
	AuthorID  []string `mapstructure:"author_id"`
	Countries []string `mapstructure:"countries"`
	Field     []string `mapstructure:"field"`
	Year      []string `mapstructure:"year"`
}

type ServeConfig struct {
	Port      int    `mapstructure:"port" validate:"gte=0,lte=65535"`
	AssetFile string `mapstructure:"asset_file"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# worksvis configuration
source:
  url: "http://localhost:5173"
  path: "/works_with_authors.csv"
  # file: "./static/works_with_authors.csv"
  timeout_seconds: 30

# Candidate column names per field, tried in order.
columns:
  work_id: ["work_id", "work"]
  author_id: ["author_id"]
  countries: ["countries"]
  field: ["topic_field_display_name"]
  year: ["pub_year", "year"]

# Extra or overriding ISO2 code -> display name entries.
countries: {}

serve:
  port: 8080
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateSource(cfg.Source); err != nil {
		return nil, err
	}
	if err := validateCountries(cfg.Countries); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeySourceURL, "http://localhost:5173")
	v.SetDefault(KeySourcePath, "/works_with_authors.csv")
	v.SetDefault(KeySourceFile, "")
	v.SetDefault(KeySourceFormat, "")
	v.SetDefault(KeySourceTimeout, 30)
	v.SetDefault(KeyColumns, map[string]any{})
	v.SetDefault(KeyCountries, map[string]string{})
	v.SetDefault(KeyServePort, 8080)
	v.SetDefault(KeyServeAssetFile, "")
}

func validateSource(source SourceConfig) error {
	if strings.TrimSpace(source.URL) == "" && strings.TrimSpace(source.File) == "" {
		return fmt.Errorf("validation failed: source.url or source.file is required")
	}
	return nil
}

func validateCountries(countries map[string]string) error {
	for code, name := range countries {
		trimmed := strings.TrimSpace(code)
		if len(trimmed) != 2 {
			return fmt.Errorf("validation failed: countries key %q must be a two-letter code", code)
		}
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("validation failed: countries[%s] requires a name", code)
		}
	}
	return nil
}
