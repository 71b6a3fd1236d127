package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter renders YAML
type YAMLFormatter struct{}

// NewYAMLFormatter creates a YAML formatter
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

func (f *YAMLFormatter) Format() Format {
	return FormatYAML
}

func (f *YAMLFormatter) Render(w io.Writer, result *Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return err
	}
	return enc.Close()
}
