// Package config provides the configuration loader for bsh.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/bsh/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	fs       FileSystem
	validate *validator.Validate
}

// NewLoader creates a new Loader reading from fsys.
func NewLoader(fsys FileSystem) *Loader {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})

	return &Loader{
		fs:       fsys,
		validate: validate,
	}
}

// Load discovers the configuration file for cwd and merges it over the
// defaults. A missing file is not an error.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		return cfg, nil
	}

	var file File
	if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	if err := l.validate.Struct(&file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", configPath)
	}

	apply(cfg, &file, filepath.Dir(configPath))
	return cfg, nil
}

// findConfiguration returns the config path, or "" when none exists.
// An explicit path from the environment must exist.
func (l *Loader) findConfiguration(cwd string) (string, error) {
	if explicit := os.Getenv(domain.ConfigEnvVar); explicit != "" {
		if _, err := l.fs.Stat(explicit); err != nil {
			err = zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
			return "", zerr.With(err, "path", explicit)
		}
		return explicit, nil
	}

	currentDir := filepath.Clean(cwd)
	for {
		if l.isFile(filepath.Join(currentDir, domain.ConfigFileName)) {
			return filepath.Join(currentDir, domain.ConfigFileName), nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		candidate := filepath.Join(home, domain.ConfigFileName)
		if l.isFile(candidate) {
			return candidate, nil
		}
	}

	return "", nil
}

func (l *Loader) isFile(path string) bool {
	info, err := l.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// readAndUnmarshalYAML decodes a YAML file strictly; unknown keys are rejected.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *File) error {
	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	return nil
}

// apply copies the non-zero settings of file onto cfg.
func apply(cfg *domain.Config, file *File, configDir string) {
	if file.Prompt != nil {
		cfg.Prompt = *file.Prompt
	}
	if file.Capacity > 0 {
		cfg.Capacity = file.Capacity
	}
	if file.LogFormat != "" {
		cfg.LogFormat = file.LogFormat
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if file.HistoryFile != "" {
		cfg.HistoryFile = resolvePath(file.HistoryFile, configDir)
	}
}

// resolvePath expands a leading "~/" and anchors relative paths at the
// directory holding the config file.
func resolvePath(path, configDir string) string {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(configDir, path)
}
