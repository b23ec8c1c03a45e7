package pathmap

import (
	"fmt"
	"os"
	"reflect"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Config is a YAML rule file:
//
//	rules:
//	  - from: user.name
//	    to: name
//	    transform: upper
//	  - from: [user.phone, user.mobile]
//	    to: phone
//	    fallback: unknown
//	  - from: items
//	    each: true
//	    skip: ["", null]
//	    rules:
//	      - from: sku
//	  - within: user.address
//	    rules:
//	      - from: city
type Config struct {
	Rules []RuleConfig `yaml:"rules"`
}

// RuleConfig declares one rule, or a Within block when Within is set.
type RuleConfig struct {
	From      PathList       `yaml:"from"`
	Within    string         `yaml:"within"`
	To        string         `yaml:"to"`
	Each      bool           `yaml:"each"`
	Transform string         `yaml:"transform"`
	Defaults  map[string]any `yaml:"defaults"`
	Fallback  any            `yaml:"fallback"`
	Skip      []any          `yaml:"skip"`
	Rules     []RuleConfig   `yaml:"rules"`

	Description string `yaml:"description"`
	Example     any    `yaml:"example"`
	Deprecated  bool   `yaml:"deprecated"`
}

// PathList is a from path given either as a single string or as a list of
// candidate paths.
type PathList []string

// UnmarshalYAML accepts either a single string or a sequence of strings.
func (p *PathList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*p = PathList{s}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*p = list
		return nil
	default:
		return fmt.Errorf("expected string or list of strings, got %v", node.Kind)
	}
}

// Validate checks the shape of the entry. Option values are checked when the
// rule is declared.
func (rc RuleConfig) Validate() error {
	block := rc.Within != ""
	return validation.ValidateStruct(&rc,
		validation.Field(&rc.From,
			validation.When(!block, validation.Required.Error("must be filled")),
			validation.When(block, validation.Empty.Error("cannot be combined with within")),
		),
		validation.Field(&rc.Transform, validation.When(len(rc.Rules) > 0 && !block, validation.Empty.Error("cannot be combined with rules"))),
		validation.Field(&rc.Rules, validation.When(block, validation.Required.Error("must be filled for a within block"))),
	)
}

// Load parses a YAML rule file and declares its rules on a new builder.
func Load(data []byte) (*Builder, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("pathmap: parse rules: %w", err)
	}
	if err := validation.Validate(cfg.Rules); err != nil {
		return nil, fmt.Errorf("pathmap: invalid rules: %w", err)
	}

	b := cfg.Apply(New())
	if err := b.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

// LoadFile reads and loads the YAML rule file at path.
func LoadFile(path string) (*Builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pathmap: read rules %s: %w", path, err)
	}
	return Load(data)
}

// Apply declares the configured rules on b, in order.
func (c *Config) Apply(b *Builder) *Builder {
	declareAll(b, c.Rules)
	return b
}

func declareAll(b *Builder, rules []RuleConfig) {
	for _, rc := range rules {
		rc.declare(b)
	}
}

func (rc RuleConfig) declare(b *Builder) {
	if rc.Within != "" {
		b.Within(rc.Within, func(b *Builder) {
			declareAll(b, rc.Rules)
		})
		return
	}

	var opts []Option
	if rc.To != "" {
		opts = append(opts, To(rc.To))
	}
	if rc.Transform != "" {
		opts = append(opts, Transform(Preset(rc.Transform)))
	}
	if len(rc.Rules) > 0 {
		children := rc.Rules
		opts = append(opts, WithBuilder(func(c *Builder) {
			declareAll(c, children)
		}))
	}
	if len(rc.Defaults) > 0 {
		opts = append(opts, Defaults(rc.Defaults))
	}
	if rc.Fallback != nil {
		value := rc.Fallback
		opts = append(opts, Fallback(func() any { return value }))
	}
	if len(rc.Skip) > 0 {
		opts = append(opts, SkipIf(skipValues(rc.Skip)))
	}
	if rc.Description != "" {
		opts = append(opts, Describe(rc.Description))
	}
	if rc.Example != nil {
		opts = append(opts, Example(rc.Example))
	}
	if rc.Deprecated {
		opts = append(opts, Deprecate())
	}

	var path any = []string(rc.From)
	if len(rc.From) == 1 {
		path = rc.From[0]
	}
	if rc.Each {
		b.FromEach(path, opts...)
		return
	}
	b.From(path, opts...)
}

// skipValues returns a predicate matching elements equal to one of values.
// Scalars are compared by their string form, so 1 in YAML matches 1.0 in
// decoded JSON.
func skipValues(values []any) func(value any) bool {
	return func(value any) bool {
		for _, v := range values {
			if reflect.DeepEqual(v, value) {
				return true
			}
			if v != nil && value != nil && isScalar(v) && isScalar(value) &&
				govalidator.ToString(v) == govalidator.ToString(value) {
				return true
			}
		}
		return false
	}
}

func isScalar(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Ptr:
		return false
	default:
		return true
	}
}
