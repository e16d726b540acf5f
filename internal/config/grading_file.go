package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/thinkle/sbgsync/internal/grading"
)

// gradingFileSchema constrains setup files before any row reaches the
// database: at least one symbol and level, positive streaks, and no
// extra keys hiding typos.
const gradingFileSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["symbols", "levels"],
  "properties": {
    "symbols": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["character", "mastery"],
        "properties": {
          "character": {"type": "string", "minLength": 1},
          "mastery": {"type": "boolean"},
          "glyph": {"type": "string"}
        }
      }
    },
    "levels": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["name", "shortCode", "requiredStreak", "score"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "shortCode": {"type": "string", "minLength": 1, "maxLength": 2},
          "requiredStreak": {"type": "integer", "minimum": 1},
          "score": {"type": "number"},
          "defaultAttempts": {"type": "integer", "minimum": 1}
        }
      }
    },
    "fallbacks": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "noneCorrectScore": {"type": "number"},
        "someCorrectScore": {"type": "number"}
      }
    }
  }
}`

var (
	compiledGradingSchema     *jsonschema.Schema
	compileGradingSchemaOnce  sync.Once
	compileGradingSchemaError error
)

// GradingFile is the parsed form of a setup JSON file.
type GradingFile struct {
	Symbols []struct {
		Character string `json:"character"`
		Mastery   bool   `json:"mastery"`
		Glyph     string `json:"glyph"`
	} `json:"symbols"`
	Levels []struct {
		Name            string  `json:"name"`
		ShortCode       string  `json:"shortCode"`
		RequiredStreak  int     `json:"requiredStreak"`
		Score           float64 `json:"score"`
		DefaultAttempts int     `json:"defaultAttempts"`
	} `json:"levels"`
	// Pointers so an omitted key keeps its seed default while an
	// explicit 0 is honored.
	Fallbacks struct {
		NoneCorrectScore *float64 `json:"noneCorrectScore"`
		SomeCorrectScore *float64 `json:"someCorrectScore"`
	} `json:"fallbacks"`
}

// LoadGradingFile reads and validates a grading configuration file.
func LoadGradingFile(path string) (*GradingFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grading config: %w", err)
	}
	return ParseGradingFile(raw)
}

// ParseGradingFile validates raw JSON against the grading schema and
// decodes it.
func ParseGradingFile(raw []byte) (*GradingFile, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("grading config is not valid JSON: %w", err)
	}

	schema, err := getGradingSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("grading config failed validation: %w", err)
	}

	var file GradingFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode grading config: %w", err)
	}
	return &file, nil
}

// getGradingSchema compiles the schema once per process.
func getGradingSchema() (*jsonschema.Schema, error) {
	compileGradingSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(gradingFileSchema), &def); err != nil {
			compileGradingSchemaError = fmt.Errorf("parse grading schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://grading-config.json", def); err != nil {
			compileGradingSchemaError = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledGradingSchema, compileGradingSchemaError = c.Compile("schema://grading-config.json")
	})
	return compiledGradingSchema, compileGradingSchemaError
}

// GradingSymbols converts the file's symbol rows to grading symbols.
func (f *GradingFile) GradingSymbols() []grading.Symbol {
	out := make([]grading.Symbol, 0, len(f.Symbols))
	for _, s := range f.Symbols {
		out = append(out, grading.Symbol{Character: s.Character, Mastery: s.Mastery, Glyph: s.Glyph})
	}
	return out
}

// GradingLevels converts the file's level rows, filling the default
// attempt count where omitted.
func (f *GradingFile) GradingLevels() []grading.Level {
	out := make([]grading.Level, 0, len(f.Levels))
	for _, l := range f.Levels {
		attempts := l.DefaultAttempts
		if attempts == 0 {
			attempts = 5
		}
		out = append(out, grading.Level{
			Name:            l.Name,
			ShortCode:       l.ShortCode,
			RequiredStreak:  l.RequiredStreak,
			Score:           l.Score,
			DefaultAttempts: attempts,
		})
	}
	return out
}

// GradingFallbacks converts the file's fallback scores, starting from
// the seed defaults and overlaying only the keys present in the file.
func (f *GradingFile) GradingFallbacks() grading.Fallbacks {
	fb := grading.DefaultFallbacks()
	if f.Fallbacks.NoneCorrectScore != nil {
		fb.NoneCorrectScore = *f.Fallbacks.NoneCorrectScore
	}
	if f.Fallbacks.SomeCorrectScore != nil {
		fb.SomeCorrectScore = *f.Fallbacks.SomeCorrectScore
	}
	return fb
}
