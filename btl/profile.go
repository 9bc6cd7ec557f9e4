package btl

import (
	"encoding/json"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
)

//IndentationConfig describes one indentation step of the target language.
type IndentationConfig struct {
	Type string `json:"type"` // "spaces" or "tabs"
	Size int    `json:"size"`
}

type fixedPointConfig struct {
	PrecisionMultiplier int64 `json:"precision_multiplier"`
}

type dataTypesConfig struct {
	FixedPoint fixedPointConfig `json:"fixed_point"`
}

//profileConfig mirrors the on-disk <language>_config.json document.
type profileConfig struct {
	DataTypes     dataTypesConfig   `json:"data_types"`
	Indentation   IndentationConfig `json:"indentation"`
	FileExtension string            `json:"file_extension"`
}

//Profile is the complete description of one target dialect: the numeric
//encoding parameters from the configuration file plus the rendering
//capabilities of the registered Dialect. Loaded once per conversion and never
//mutated afterwards.
type Profile struct {
	Language            string
	PrecisionMultiplier int64
	Indentation         IndentationConfig
	FileExtension       string
	Dialect             Dialect
}

//LoadProfile reads <configDir>/<language>_config.json and binds it to the
//registered dialect capabilities.
func LoadProfile(language, configDir string) (*Profile, error) {
	dialect, err := NewDialect(language)
	if err != nil {
		return nil, err
	}

	configPath := path.Join(configDir, language+"_config.json")
	source, err := os.Open(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ConfigNotFoundError{Path: configPath}
		}
		return nil, errors.Wrapf(err, "can't open language configuration %s", configPath)
	}
	defer func() { _ = source.Close() }()

	var config profileConfig
	decoder := json.NewDecoder(source)
	if err := decoder.Decode(&config); err != nil {
		return nil, errors.Wrapf(err, "can't decode language configuration %s", configPath)
	}

	if config.DataTypes.FixedPoint.PrecisionMultiplier <= 0 {
		return nil, errors.Errorf("configuration %s: precision_multiplier must be positive, got %d",
			configPath, config.DataTypes.FixedPoint.PrecisionMultiplier)
	}
	if config.Indentation.Type != "spaces" && config.Indentation.Type != "tabs" {
		return nil, errors.Errorf("configuration %s: unknown indentation type %q",
			configPath, config.Indentation.Type)
	}
	if config.Indentation.Size < 0 {
		return nil, errors.Errorf("configuration %s: negative indentation size %d",
			configPath, config.Indentation.Size)
	}
	if config.FileExtension == "" {
		return nil, errors.Errorf("configuration %s: file_extension is empty", configPath)
	}

	return &Profile{
		Language:            language,
		PrecisionMultiplier: config.DataTypes.FixedPoint.PrecisionMultiplier,
		Indentation:         config.Indentation,
		FileExtension:       config.FileExtension,
		Dialect:             dialect,
	}, nil
}

//Indent returns the indentation prefix for the given nesting depth.
func (profile *Profile) Indent(depth int) string {
	indentChar := " "
	if profile.Indentation.Type == "tabs" {
		indentChar = "\t"
	}
	return strings.Repeat(indentChar, profile.Indentation.Size*depth)
}
