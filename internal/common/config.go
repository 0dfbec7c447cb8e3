package common

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/rollcall-tracker/constants"
)

// Config holds all application configuration
type Config struct {
	Mongo  MongoConfig
	XLSX   XLSXConfig
	Tuning TuningConfig
}

// MongoConfig holds the keyed-store configuration
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

// XLSXConfig holds the spreadsheet sink configuration
type XLSXConfig struct {
	Path  string
	Sheet string
}

// Replacement is a single ordered character substitution applied to page text
// before the name-roster grammar runs.
type Replacement struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// TuningConfig holds the traversal and lookahead tuning parameters
type TuningConfig struct {
	CheckNext     int           `json:"check_next"`
	MaxTopicRange int           `json:"max_topic_range"`
	FlushEvery    int           `json:"flush_every"`
	Replacements  []Replacement `json:"replacements"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Mongo: MongoConfig{
			URI:        getEnv("MONGO_URI", ""),
			Database:   getEnv("MONGO_DB", "rollcalls"),
			Collection: getEnv("MONGO_COLLECTION", "records"),
			Timeout:    getEnvAsDuration("MONGO_TIMEOUT", 10*time.Second),
		},
		XLSX: XLSXConfig{
			Path:  getEnv("XLSX_PATH", ""),
			Sheet: getEnv("XLSX_SHEET", "RollCalls"),
		},
		Tuning: tuningFromEnv(),
	}
}

// tuningFromEnv overlays environment overrides on the tuning defaults. A
// tuning file, when supplied on the command line, replaces the result
// wholesale.
func tuningFromEnv() TuningConfig {
	cfg := DefaultTuning()
	cfg.CheckNext = getEnvAsInt("CHECK_NEXT", cfg.CheckNext)
	cfg.MaxTopicRange = getEnvAsInt("MAX_TOPIC_RANGE", cfg.MaxTopicRange)
	cfg.FlushEvery = getEnvAsInt("FLUSH_EVERY", cfg.FlushEvery)
	return cfg
}

// DefaultTuning returns the tuning parameters used when no tuning file is
// supplied.
func DefaultTuning() TuningConfig {
	return TuningConfig{
		CheckNext:     constants.DefaultCheckNext,
		MaxTopicRange: constants.DefaultMaxTopicRange,
		FlushEvery:    constants.DefaultFlushEvery,
		Replacements:  []Replacement{{Old: constants.SoftHyphen, New: ""}},
	}
}

// tuningSchema constrains tuning files; the bounds keep a bad file from
// turning the bounded lookaheads into unbounded scans.
const tuningSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "check_next": {"type": "integer", "minimum": 1, "maximum": 1000},
    "max_topic_range": {"type": "integer", "minimum": 1, "maximum": 100000},
    "flush_every": {"type": "integer", "minimum": 1, "maximum": 100000},
    "replacements": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["old"],
        "additionalProperties": false,
        "properties": {
          "old": {"type": "string", "minLength": 1},
          "new": {"type": "string"}
        }
      }
    }
  }
}`

var compiledTuningSchema = jsonschema.MustCompileString("tuning.schema.json", tuningSchema)

// LoadTuningFile reads a JSON tuning file, validates it against the embedded
// schema, and overlays it on the defaults. Absent keys keep their defaults.
func LoadTuningFile(path string) (TuningConfig, error) {
	cfg := DefaultTuning()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, WrapError(err, "reading tuning file")
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return cfg, WrapError(err, "parsing tuning file")
	}
	if err := compiledTuningSchema.Validate(doc); err != nil {
		return cfg, WrapError(err, "validating tuning file")
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, WrapError(err, "decoding tuning file")
	}
	return cfg, nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
