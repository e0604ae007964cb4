package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/nosoynormal/vermutcalc/internal/blend"
)

// SchemaVersion is the recipe schema written by this build.
const SchemaVersion = "1.0.0"

// supportedSchema is the semver constraint a recipe's schema_version must meet.
const supportedSchema = "^1.0.0"

// File is the on-disk YAML representation of a recipe.
//
//	schema_version: 1.0.0
//	name: Vermut rojo
//	unit: ml
//	wine: {volume: 750, abv: 12}
//	maceration: {volume: 120, abv: 60}
//	solution: {volume: 10, abv: 96}
//	sugar_grams: 100
type File struct {
	SchemaVersion string    `yaml:"schema_version"`
	Name          string    `yaml:"name,omitempty"`
	Unit          string    `yaml:"unit,omitempty"`
	Wine          Component `yaml:"wine"`
	Maceration    Component `yaml:"maceration"`
	Solution      Component `yaml:"solution"`
	SugarGrams    float64   `yaml:"sugar_grams"`
}

// Load reads and validates the recipe at path.
func Load(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("reading recipe %s: %w", path, err)
	}
	in, err := Parse(data)
	if err != nil {
		return Input{}, fmt.Errorf("recipe %s: %w", path, err)
	}
	return in, nil
}

// Parse decodes a YAML recipe, checks its schema version and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (Input, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Input{}, fmt.Errorf("parsing YAML: %w", err)
	}

	if err := checkSchema(f.SchemaVersion); err != nil {
		return Input{}, err
	}

	unit, err := blend.ParseUnit(f.Unit)
	if err != nil {
		return Input{}, err
	}

	in := Input{
		Name:       f.Name,
		Unit:       unit,
		Wine:       f.Wine,
		Maceration: f.Maceration,
		Solution:   f.Solution,
		SugarGrams: f.SugarGrams,
	}
	if err = in.Validate(); err != nil {
		return Input{}, err
	}
	return in, nil
}

// checkSchema accepts an empty version as the current schema.
func checkSchema(version string) error {
	version = strings.TrimSpace(version)
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedSchema, version)
	}
	c, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedSchema, v, supportedSchema)
	}
	return nil
}

// ToFile converts an Input to its YAML representation.
func (in Input) ToFile() File {
	return File{
		SchemaVersion: SchemaVersion,
		Name:          in.Name,
		Unit:          in.Unit.String(),
		Wine:          in.Wine,
		Maceration:    in.Maceration,
		Solution:      in.Solution,
		SugarGrams:    in.SugarGrams,
	}
}

// Marshal encodes in as a YAML recipe.
func Marshal(in Input) ([]byte, error) {
	return yaml.Marshal(in.ToFile())
}

// Save writes in to path as a YAML recipe.
func Save(path string, in Input) error {
	data, err := Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding recipe: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing recipe %s: %w", path, err)
	}
	return nil
}
