package api

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/sudeeprj-pks/SCT-CS-3/internal/util"
	"github.com/sudeeprj-pks/SCT-CS-3/pkg/strength"
)

type Config struct {
	Port         string `mapstructure:"PORT" validate:"required"`
	SelfTLS      bool   `mapstructure:"SELF_TLS" validate:"required_without_all=TLSCert TLSKey"`
	TLSCert      string `mapstructure:"TLS_CERT" validate:"required_if=SelfTLS false,required_with=TLSKey"`
	TLSKey       string `mapstructure:"TLS_KEY" validate:"required_if=SelfTLS false,required_with=TLSCert"`
	Debug        bool   `mapstructure:"DEBUG"`
	CacheEntries int64  `mapstructure:"CACHE_ENTRIES" validate:"omitempty,min=0"`
	MinLength    int    `mapstructure:"MIN_LENGTH" validate:"omitempty,min=1"`
	IdealLength  int    `mapstructure:"IDEAL_LENGTH" validate:"omitempty,min=1"`
	PatternsFile string `mapstructure:"PATTERNS_FILE" validate:"omitempty,file"`
}

func bindEnvs(iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		v := ifv.Field(i)
		t := ift.Field(i)
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			continue
		}
		switch v.Kind() {
		case reflect.Struct:
			bindEnvs(v.Interface(), append(parts, tv)...)
		default:
			_ = viper.BindEnv(strings.Join(append(parts, tv), "."))
		}
	}
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "required_without_all":
		return fmt.Sprintf("This field is required if fields [%s] are missing", util.ToScreamingSnakeCase(fe.Param()))
	case "required_if":
		return fmt.Sprintf("This field is required if %s", util.ToScreamingSnakeCase(fe.Param()))
	case "required_with":
		return fmt.Sprintf("This is field requires the presence of %s", util.ToScreamingSnakeCase(fe.Param()))
	case "min":
		return fmt.Sprintf("This field must be at least %s", fe.Param())
	case "file":
		return "This field must point to an existing file"
	}
	return fe.Error() // default error
}

func LoadConfig() (config Config, err error) {
	// A .env file is optional; real environment variables win either way.
	if err = godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("error reading .env file")
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// I hate this, but it works.
	// This is to not require a config file to unmarshal Envs in a struct
	// https://github.com/spf13/viper/issues/188#issuecomment-399884438
	config = Config{}
	bindEnvs(config)

	err = viper.Unmarshal(&config)
	validate := validator.New()

	if err = validate.Struct(&config); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			var msgs []string
			for _, fe := range ve {
				msgs = append(msgs, fmt.Sprintf("%s: %s", util.ToScreamingSnakeCase(fe.Field()), msgForTag(fe)))
			}

			log.Fatal().Msgf("%s", strings.Join(msgs, ". "))
		} else {
			log.Fatal().Err(err).Msg("missing validating configuration from environment.")
		}
	}

	return
}

// ScoringConfig builds the scorer configuration from the defaults plus the
// environment overrides. Invalid combinations abort here, before the first
// request; the scorer itself never fails.
func (c Config) ScoringConfig() (strength.Config, error) {
	cfg := strength.DefaultConfig()

	if c.MinLength > 0 {
		cfg.MinLength = c.MinLength
	}
	if c.IdealLength > 0 {
		cfg.IdealLength = c.IdealLength
	}

	if c.PatternsFile != "" {
		file, err := os.Open(c.PatternsFile)
		if err != nil {
			return cfg, err
		}

		defer func(file *os.File) {
			if err = file.Close(); err != nil {
				log.Error().Err(err).Msg("error closing patterns file")
			}
		}(file)

		patterns, err := strength.LoadPatterns(file)
		if err != nil {
			return cfg, fmt.Errorf("error reading patterns file %s: %w", c.PatternsFile, err)
		}
		cfg.CommonPatterns = patterns
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid scoring configuration: %w", err)
	}

	return cfg, nil
}
