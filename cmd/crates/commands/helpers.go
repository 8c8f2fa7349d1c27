package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cratehub/crates-client/internal/constants"
	"github.com/cratehub/crates-client/pkg/crates"
	"github.com/cratehub/crates-client/pkg/cratesclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	NotAvailable = "N/A"
)

// CreateClient builds a crates.Client from viper-bound configuration.
func CreateClient() (crates.Client, error) {
	config := &crates.Config{
		UserAgent: viper.GetString("user-agent"),
		BaseURL:   viper.GetString("registry"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = newLogrusLogger()
	}

	return cratesclient.New(config)
}

// EncodeJSON writes v to stdout as indented JSON.
func EncodeJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}

	return nil
}

// EncodeYAML writes v to stdout as YAML.
func EncodeYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(constants.JSONIndentSize)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	return nil
}

// logrusLogger adapts logrus to the crates.Logger interface.
type logrusLogger struct {
	logger *logrus.Logger
}

func newLogrusLogger() crates.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.DebugLevel)

	return &logrusLogger{logger: logger}
}

func (l *logrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Warn(msg)
}

func (l *logrusLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Error(msg)
}
