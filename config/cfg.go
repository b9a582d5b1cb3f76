package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"masterlist/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	SourceConfig struct {
		NameColumn string `yaml:"name_column" validate:"required"`
		IDColumn   string `yaml:"id_column" validate:"required,nefield=NameColumn"`
	}

	PageConfig struct {
		Width        int     `yaml:"width" validate:"gt=0"`
		Height       int     `yaml:"height" validate:"gt=0"`
		Margin       int     `yaml:"margin" validate:"gte=0"`
		Gutter       int     `yaml:"gutter" validate:"gte=0"`
		HeaderHeight int     `yaml:"header_height" validate:"gte=0"`
		NameRatio    float64 `yaml:"name_ratio" validate:"gt=0,lt=1"`
	}

	GridConfig struct {
		PairsPerRow int `yaml:"pairs_per_row" validate:"gt=0"`
		RowsPerPage int `yaml:"rows_per_page" validate:"gt=0"`
	}

	FontConfig struct {
		Path       string   `yaml:"path"`
		Candidates []string `yaml:"candidates,omitempty" validate:"dive,required"`
	}

	LabelsConfig struct {
		Name string `yaml:"name"`
		ID   string `yaml:"id"`
	}

	// ColorsConfig holds explicit color overrides, empty value means "not set".
	ColorsConfig struct {
		BodyText   string `yaml:"body_text"`
		HeaderText string `yaml:"header_text"`
		RowA       string `yaml:"row_a"`
		RowB       string `yaml:"row_b"`
		HeaderBG   string `yaml:"header_bg"`
		Border     string `yaml:"border"`
	}

	StyleConfig struct {
		CellAlpha         int                  `yaml:"cell_alpha" validate:"gte=0,lte=255"`
		HeaderAlpha       int                  `yaml:"header_alpha" validate:"gte=0,lte=255"`
		BorderWidth       int                  `yaml:"border_width" validate:"gte=0,lte=16"`
		BodyFontSize      float64              `yaml:"body_font_size" validate:"gt=0"`
		HeaderFontSize    float64              `yaml:"header_font_size" validate:"gt=0"`
		NameLines         int                  `yaml:"name_lines" validate:"gte=1"`
		LineGap           int                  `yaml:"line_gap" validate:"gte=0"`
		Padding           int                  `yaml:"padding" validate:"gte=0"`
		Background        string               `yaml:"background"`
		MatchToBackground bool                 `yaml:"match_table_to_bg"`
		PaletteSource     common.PaletteSource `yaml:"palette_source"`
		Font              FontConfig           `yaml:"font"`
		Labels            LabelsConfig         `yaml:"labels"`
		Colors            ColorsConfig         `yaml:"colors"`
	}

	PDFConfig struct {
		Enable bool    `yaml:"enable"`
		Name   string  `yaml:"name" validate:"required_if=Enable true"`
		Size   string  `yaml:"size" validate:"oneof=A3 A4 A5 Letter Legal"`
		Margin float64 `yaml:"margin" validate:"gte=0"`
	}

	OutputConfig struct {
		Directory     string    `yaml:"directory" validate:"required"`
		Prefix        string    `yaml:"prefix" validate:"required"`
		Transliterate bool      `yaml:"transliterate"`
		PDF           PDFConfig `yaml:"pdf"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Source    SourceConfig   `yaml:"source"`
		Page      PageConfig     `yaml:"page"`
		Grid      GridConfig     `yaml:"grid"`
		Style     StyleConfig    `yaml:"style"`
		Output    OutputConfig   `yaml:"output"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// unmarshalConfig lays data over cfg. Unknown fields are errors. When
// process is set result is sanitized and validated.
func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, common.Validation("failed to decode configuration data: %w", err)
	}
	if !process {
		return cfg, nil
	}
	if err := gencfg.Sanitize(cfg); err != nil {
		return nil, common.Validation("failed to sanitize configuration: %w", err)
	}
	if err := gencfg.Validate(cfg); err != nil {
		return nil, common.Validation("invalid configuration: %w", err)
	}
	if err := cfg.checkGeometry(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// checkGeometry verifies relations between page values tags cannot express.
func (cfg *Config) checkGeometry() error {
	p := cfg.Page
	if 2*p.Margin >= p.Width || p.HeaderHeight+2*p.Margin >= p.Height {
		return common.Validation("page %dx%d has no space left for rows (margin %d, header %d)", p.Width, p.Height, p.Margin, p.HeaderHeight)
	}
	if (cfg.Grid.PairsPerRow-1)*p.Gutter >= p.Width-2*p.Margin {
		return common.Validation("gutter %d leaves no space for %d column pairs", p.Gutter, cfg.Grid.PairsPerRow)
	}
	return nil
}

// LoadConfiguration expands embedded template to get defaults and lays file
// at path (if any) over them.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if len(path) == 0 {
		return unmarshalConfig(data, &Config{}, true)
	}

	cfg, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if data, err = os.ReadFile(path); err != nil {
		return nil, common.IO("failed to read config file: %w", err)
	}
	if cfg, err = unmarshalConfig(data, cfg, true); err != nil {
		return nil, fmt.Errorf("failed to process configuration file %q: %w", path, err)
	}
	return cfg, nil
}

// Prepare returns expanded configuration template.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

// Dump returns cfg as YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
