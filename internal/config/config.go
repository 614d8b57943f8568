package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/treykane/typewriter/internal/logging"
)

var log = logging.New("config")

const (
	configDirName  = ".typewriter"
	configFileName = "config.yaml"

	// sectionName is the single top-level section that holds every option.
	sectionName = "typewriter"
)

// Option keys as they appear in the config file.
const (
	KeyWindowWidth         = "WindowWidth"
	KeyWindowHeight        = "WindowHeight"
	KeyMarginSize          = "MarginSize"
	KeyFontName            = "FontName"
	KeyFontSize            = "FontSize"
	KeyFontWeight          = "FontWeight"
	KeyFontItalic          = "FontItalic"
	KeyAutosave            = "Autosave"
	KeyAutosaveOnClose     = "AutosaveOnClose"
	KeyLimitLineWidth      = "LimitLineWidth"
	KeyGoldfishMode        = "GoldfishMode"
	KeyLastOpenedDirectory = "LastOpenedDirectory"
	KeyCustomStartMessage  = "CustomStartMessage"
)

// Margin presets, in columns on each side of the page.
const (
	MarginNone   = 0
	MarginSmall  = 2
	MarginMedium = 4
	MarginLarge  = 6
)

// Font weights the terminal can express.
const (
	FontWeightNormal = 400
	FontWeightBold   = 700
)

var errNotMapping = errors.New("expected a mapping")

// Config stores the typewriter's persisted options.
type Config struct {
	WindowWidth         int    `yaml:"WindowWidth"`
	WindowHeight        int    `yaml:"WindowHeight"`
	MarginSize          int    `yaml:"MarginSize"`
	FontName            string `yaml:"FontName"`
	FontSize            int    `yaml:"FontSize"`
	FontWeight          int    `yaml:"FontWeight"`
	FontItalic          bool   `yaml:"FontItalic"`
	Autosave            bool   `yaml:"Autosave"`
	AutosaveOnClose     bool   `yaml:"AutosaveOnClose"`
	LimitLineWidth      bool   `yaml:"LimitLineWidth"`
	GoldfishMode        bool   `yaml:"GoldfishMode"`
	LastOpenedDirectory string `yaml:"LastOpenedDirectory"`
	CustomStartMessage  string `yaml:"CustomStartMessage"`
}

// file is the on-disk document shape: one section holding every key.
type file struct {
	Typewriter Config `yaml:"typewriter"`
}

// ConfigError reports a config entry that could not be used. It is never
// fatal: the option falls back to its default.
type ConfigError struct {
	Key   string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		WindowWidth:     80,
		WindowHeight:    24,
		MarginSize:      MarginMedium,
		FontName:        "Courier",
		FontSize:        12,
		FontWeight:      FontWeightNormal,
		FontItalic:      false,
		Autosave:        true,
		AutosaveOnClose: true,
		LimitLineWidth:  true,
		GoldfishMode:    false,
	}
}

// DefaultPath returns the configuration file path under the user's home.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load reads the configuration at path. It always returns a usable Config;
// every problem found along the way is reported in problems and the affected
// options keep their defaults. A missing file is not a problem.
func Load(path string) (cfg Config, problems []error) {
	cfg = Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("no config file, using defaults", "path", path)
			return cfg, nil
		}
		return cfg, []error{&ConfigError{Err: fmt.Errorf("read %s: %w", path, err)}}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return cfg, []error{&ConfigError{Err: fmt.Errorf("parse %s: %w", path, err)}}
	}
	section, err := findSection(&doc)
	if err != nil {
		return cfg, []error{&ConfigError{Err: err}}
	}
	if section == nil {
		return cfg, nil
	}

	values := map[string]string{}
	for i := 0; i+1 < len(section.Content); i += 2 {
		k, v := section.Content[i], section.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			problems = append(problems, &ConfigError{Key: k.Value, Err: errors.New("expected a scalar value")})
			continue
		}
		values[k.Value] = v.Value
	}

	p := parser{values: values}
	cfg.WindowWidth = p.positiveInt(KeyWindowWidth, cfg.WindowWidth)
	cfg.WindowHeight = p.positiveInt(KeyWindowHeight, cfg.WindowHeight)
	cfg.MarginSize = p.margin(KeyMarginSize, cfg.MarginSize)
	cfg.FontName = p.str(KeyFontName, cfg.FontName)
	cfg.FontSize = p.positiveInt(KeyFontSize, cfg.FontSize)
	cfg.FontWeight = p.positiveInt(KeyFontWeight, cfg.FontWeight)
	cfg.FontItalic = p.boolean(KeyFontItalic, cfg.FontItalic)
	cfg.Autosave = p.boolean(KeyAutosave, cfg.Autosave)
	cfg.AutosaveOnClose = p.boolean(KeyAutosaveOnClose, cfg.AutosaveOnClose)
	cfg.LimitLineWidth = p.boolean(KeyLimitLineWidth, cfg.LimitLineWidth)
	cfg.GoldfishMode = p.boolean(KeyGoldfishMode, cfg.GoldfishMode)
	cfg.LastOpenedDirectory = p.str(KeyLastOpenedDirectory, cfg.LastOpenedDirectory)
	cfg.CustomStartMessage = p.str(KeyCustomStartMessage, cfg.CustomStartMessage)

	return cfg, append(problems, p.problems...)
}

// Save writes every option to path, replacing the file.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(file{Typewriter: cfg})
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	log.Info("saved config", "path", path)
	return nil
}

// findSection returns the mapping under the typewriter key, or nil when the
// document has no such section.
func findSection(doc *yaml.Node) (*yaml.Node, error) {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top level: %w", errNotMapping)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != sectionName {
			continue
		}
		section := root.Content[i+1]
		if section.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("section %q: %w", sectionName, errNotMapping)
		}
		return section, nil
	}
	return nil, nil
}

// parser applies parse-with-default to raw section values and collects a
// ConfigError for each value it had to reject.
type parser struct {
	values   map[string]string
	problems []error
}

func (p *parser) lookup(key string) (string, bool) {
	v, ok := p.values[key]
	return strings.TrimSpace(v), ok
}

func (p *parser) reject(key, value string, err error) {
	p.problems = append(p.problems, &ConfigError{Key: key, Value: value, Err: err})
}

func (p *parser) str(key, fallback string) string {
	if v, ok := p.values[key]; ok {
		return v
	}
	return fallback
}

func (p *parser) positiveInt(key string, fallback int) int {
	raw, ok := p.lookup(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.reject(key, raw, err)
		return fallback
	}
	if n <= 0 {
		p.reject(key, raw, errors.New("must be positive"))
		return fallback
	}
	return n
}

func (p *parser) margin(key string, fallback int) int {
	raw, ok := p.lookup(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.reject(key, raw, err)
		return fallback
	}
	if !IsMarginPreset(n) {
		p.reject(key, raw, errors.New("must be one of 0, 2, 4, 6"))
		return fallback
	}
	return n
}

// boolean accepts the spellings a hand-edited file is likely to contain,
// including the capitalised True/False some editors write.
func (p *parser) boolean(key string, fallback bool) bool {
	raw, ok := p.lookup(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(raw) {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	}
	p.reject(key, raw, errors.New("expected true or false"))
	return fallback
}

// IsMarginPreset reports whether n is one of the supported margin sizes.
func IsMarginPreset(n int) bool {
	switch n {
	case MarginNone, MarginSmall, MarginMedium, MarginLarge:
		return true
	}
	return false
}

// NextMargin cycles none → small → medium → large → none.
func NextMargin(n int) int {
	switch n {
	case MarginNone:
		return MarginSmall
	case MarginSmall:
		return MarginMedium
	case MarginMedium:
		return MarginLarge
	default:
		return MarginNone
	}
}

// ExpandHome expands a leading "~" to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}
