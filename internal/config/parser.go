package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser reads job files. It accepts YAML and Lua and detects which one a
// file uses from its extension or, failing that, its content.
type Parser struct {
	luaParser *LuaConfigParser
}

// NewParser creates a new Parser that can handle both YAML and Lua jobs.
func NewParser() (*Parser, error) {
	luaParser, err := NewLuaConfigParser()
	if err != nil {
		return nil, fmt.Errorf("failed to create Lua parser: %w", err)
	}

	return &Parser{luaParser: luaParser}, nil
}

// ParseFile reads and parses a job file. Relative Script and Output paths
// are resolved against the file's directory.
func (p *Parser) ParseFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := p.parseAs(content, formatForPath(path, content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	resolvePaths(cfg, filepath.Dir(path))
	return cfg, nil
}

// Parse parses job content, auto-detecting the format.
func (p *Parser) Parse(content []byte) (*Config, error) {
	return p.parseAs(content, detectFormat(content))
}

// ParseFromFS reads and parses a job file from fsys. Paths inside the job
// are left as written.
func (p *Parser) ParseFromFS(fsys fs.FS, path string) (*Config, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from FS %s: %w", path, err)
	}

	return p.parseAs(content, formatForPath(path, content))
}

// ParseReader parses a job from r. The format parameter must be "yaml"
// or "lua".
func (p *Parser) ParseReader(r io.Reader, format string) (*Config, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	switch format {
	case "yaml", "lua":
		return p.parseAs(content, format)
	default:
		return nil, fmt.Errorf("unknown format: %s (expected 'yaml' or 'lua')", format)
	}
}

func (p *Parser) parseAs(content []byte, format string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if format == "lua" {
		cfg, err = p.luaParser.Parse(content)
	} else {
		cfg, err = parseYAML(content)
	}
	if err != nil {
		return nil, err
	}
	ExpandEnvConfig(cfg)
	return cfg, nil
}

// parseYAML decodes a YAML job on top of the defaults. Unknown keys are
// errors.
func parseYAML(content []byte) (*Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML configuration: %w", err)
	}
	return &cfg, nil
}

// MarshalYAML encodes cfg as a YAML job file.
func MarshalYAML(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// luaJobPattern matches an assignment to the job table at the start of a
// line: "job = {" or "job.width = 400".
var luaJobPattern = regexp.MustCompile(`(?m)^\s*job\s*(\.\s*[A-Za-z_]\w*\s*)?=`)

// detectFormat reports "lua" for content that assigns the job table and
// "yaml" otherwise.
func detectFormat(content []byte) string {
	if luaJobPattern.Match(content) {
		return "lua"
	}
	return "yaml"
}

func formatForPath(path string, content []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lua":
		return "lua"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return detectFormat(content)
	}
}

func resolvePaths(cfg *Config, dir string) {
	if cfg.Script != "" && !filepath.IsAbs(cfg.Script) {
		cfg.Script = filepath.Join(dir, cfg.Script)
	}
	if cfg.Output != "" && !filepath.IsAbs(cfg.Output) {
		cfg.Output = filepath.Join(dir, cfg.Output)
	}
}

// Close releases resources associated with the parser.
func (p *Parser) Close() error {
	if p.luaParser != nil {
		return p.luaParser.Close()
	}
	return nil
}
