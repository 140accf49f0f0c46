// Package config loads the settings of the wbmanager command. Values come
// from struct defaults, an optional YAML file and the environment, in that
// order of precedence, and are validated on load.
package config

// Config holds all command configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Sheet   SheetConfig   `yaml:"sheet"`
	Demo    DemoConfig    `yaml:"demo"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `yaml:"level" env:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn warning error"`

	// Format is the log format: text or json (default: text)
	Format string `yaml:"format" env:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
}

// SheetConfig selects and checks the sheet a file is processed on.
type SheetConfig struct {
	// Name selects the sheet by name. When set it wins over Index.
	Name string `yaml:"name" env:"WBM_SHEET"`

	// Index selects the sheet by 0-based position (default: 0)
	Index int `yaml:"index" env:"WBM_SHEET_INDEX" default:"0" validate:"gte=0"`

	// CommentMarker starts a comment row (default: #)
	CommentMarker string `yaml:"comment_marker" env:"WBM_COMMENT_MARKER" default:"#" validate:"required"`

	// MinRows is the least number of rows a usable sheet has (default: 2)
	MinRows int `yaml:"min_rows" env:"WBM_MIN_ROWS" default:"2" validate:"gte=1"`

	// RequiredColumns are header names every processed sheet must carry.
	// Comma-separated in the environment.
	RequiredColumns []string `yaml:"required_columns" env:"WBM_REQUIRED_COLUMNS" validate:"dive,required"`

	// Charset decodes text in legacy .xls files (default: utf-8)
	Charset string `yaml:"charset" env:"WBM_CHARSET" default:"utf-8" validate:"required"`
}

// DemoConfig describes the cell written into each file.
type DemoConfig struct {
	// Advance is how many data rows to step over before writing (default: 2)
	Advance int `yaml:"advance" env:"WBM_ADVANCE" default:"2" validate:"gte=1"`

	// Column is the 0-based column written to (default: 0)
	Column int `yaml:"column" env:"WBM_COLUMN" default:"0" validate:"gte=0,lt=16384"`

	// Value is the text written (default: Done Donner Donnest)
	Value string `yaml:"value" env:"WBM_VALUE" default:"Done Donner Donnest"`
}

// OutputConfig controls where and how rewritten workbooks are saved.
type OutputConfig struct {
	// Suffix is appended to the base name of the input (default: New)
	Suffix string `yaml:"suffix" env:"WBM_OUTPUT_SUFFIX" default:"New"`

	// Dir receives the output files. Empty means next to each input.
	Dir string `yaml:"dir" env:"WBM_OUTPUT_DIR" validate:"omitempty,dir"`

	// AutoSize sizes the columns of the processed sheet to their content.
	AutoSize bool `yaml:"autosize" env:"WBM_AUTOSIZE" default:"false"`

	// NarrowMargins sets half-inch print margins on the processed sheet.
	NarrowMargins bool `yaml:"narrow_margins" env:"WBM_NARROW_MARGINS" default:"false"`
}
