// Package answers parses questionnaire answer files written in HCL.
//
//	workload_type   = "serverless"
//	scale           = "small"
//	budget          = "veryLow"
//	traffic_pattern = "spiky"
//	customization   = "low"
//	performance     = "standard"
//	ops_preference  = "fullyManaged"
//
// The same attributes may be wrapped in an `answers { ... }` block.
// Files ending in .json are read with the HCL JSON syntax.
package answers

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"aws-recommender/core/types"
	"aws-recommender/internal/errors"
)

const blockName = "answers"

var attributeNames = map[types.Criterion]string{
	types.WorkloadType:   "workload_type",
	types.Scale:          "scale",
	types.Budget:         "budget",
	types.TrafficPattern: "traffic_pattern",
	types.Customization:  "customization",
	types.Performance:    "performance",
	types.OpsPreference:  "ops_preference",
}

// AttributeName returns the file attribute for a criterion
func AttributeName(c types.Criterion) string {
	return attributeNames[c]
}

func bodySchema() *hcl.BodySchema {
	schema := &hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{{Type: blockName}},
	}
	for _, c := range types.Criteria() {
		schema.Attributes = append(schema.Attributes, hcl.AttributeSchema{Name: attributeNames[c]})
	}
	return schema
}

// Parser reads answer files
type Parser struct {
	parser *hclparse.Parser
}

// NewParser creates a new answers parser
func NewParser() *Parser {
	return &Parser{
		parser: hclparse.NewParser(),
	}
}

// ParseFile reads a complete answers file
func (p *Parser) ParseFile(path string) (types.PreferenceVector, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return types.PreferenceVector{}, errors.Wrapf(errors.TypeInput, err, "read answers file %s", path)
	}
	return p.Parse(src, path)
}

// Parse decodes src and requires an answer for every criterion
func (p *Parser) Parse(src []byte, filename string) (types.PreferenceVector, error) {
	prefs, err := p.Decode(src, filename)
	if err != nil {
		return prefs, err
	}
	if err := RequireComplete(prefs); err != nil {
		return prefs, err
	}
	return prefs, nil
}

// DecodeFile reads an answers file that may leave criteria unanswered
func (p *Parser) DecodeFile(path string) (types.PreferenceVector, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return types.PreferenceVector{}, errors.Wrapf(errors.TypeInput, err, "read answers file %s", path)
	}
	return p.Decode(src, path)
}

// Decode reads the answers present in src.
// Values outside the enumerations are kept; they score as the default.
func (p *Parser) Decode(src []byte, filename string) (types.PreferenceVector, error) {
	var prefs types.PreferenceVector

	var file *hcl.File
	var diags hcl.Diagnostics
	if strings.HasSuffix(filename, ".json") {
		file, diags = p.parser.ParseJSON(src, filename)
	} else {
		file, diags = p.parser.ParseHCL(src, filename)
	}
	if diags.HasErrors() {
		return prefs, diagnosticsError(diags)
	}

	content, diags := file.Body.Content(bodySchema())
	if diags.HasErrors() {
		return prefs, diagnosticsError(diags)
	}

	if err := decodeAttributes(content.Attributes, &prefs); err != nil {
		return prefs, err
	}

	for _, block := range content.Blocks {
		inner, diags := block.Body.Content(&hcl.BodySchema{Attributes: bodySchema().Attributes})
		if diags.HasErrors() {
			return prefs, diagnosticsError(diags)
		}
		if err := decodeAttributes(inner.Attributes, &prefs); err != nil {
			return prefs, err
		}
	}

	return prefs, nil
}

func decodeAttributes(attrs hcl.Attributes, prefs *types.PreferenceVector) error {
	for _, c := range types.Criteria() {
		attr, ok := attrs[attributeNames[c]]
		if !ok {
			continue
		}

		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diagnosticsError(diags)
		}
		if val.IsNull() || !val.IsKnown() || val.Type() != cty.String {
			return errors.Newf(errors.TypeInput, "%s:%d: %s must be a string, got %s",
				attr.Range.Filename, attr.Range.Start.Line, attr.Name, val.Type().FriendlyName()).
				WithContext("line", attr.Range.Start.Line)
		}

		_ = prefs.Set(c, strings.TrimSpace(val.AsString()))
	}
	return nil
}

// RequireComplete returns an input error naming every unanswered criterion
func RequireComplete(prefs types.PreferenceVector) error {
	missing := prefs.Missing()
	if len(missing) == 0 {
		return nil
	}

	names := make([]string, 0, len(missing))
	for _, c := range missing {
		names = append(names, attributeNames[c])
	}
	return errors.Newf(errors.TypeInput, "missing answers: %s", strings.Join(names, ", ")).
		WithContext("missing", names)
}

func diagnosticsError(diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}

		line := 0
		file := ""
		if diag.Subject != nil {
			line = diag.Subject.Start.Line
			file = diag.Subject.Filename
		}

		message := diag.Summary
		if diag.Detail != "" {
			message += ": " + diag.Detail
		}
		return errors.Parsing(fmt.Sprintf("%s:%d: %s", file, line, message), nil).
			WithContext("line", line)
	}
	return errors.Parsing(diags.Error(), nil)
}
