package config

import "github.com/spf13/viper"

// Desensitization holds the masking rules applied to log fields
type Desensitization struct {
	Enabled         bool     `json:"enabled" yaml:"enabled"`
	SensitiveFields []string `json:"sensitive_fields" yaml:"sensitive_fields"`
	MaskChar        string   `json:"mask_char" yaml:"mask_char"`
	FixedMaskLength int      `json:"fixed_mask_length" yaml:"fixed_mask_length"`
}

var defaultSensitiveFields = []string{
	"password", "token", "authorization", "secret", "signing_key",
}

const (
	defaultMaskChar        = "*"
	defaultFixedMaskLength = 6
)

// DefaultDesensitization masks the common credential fields
func DefaultDesensitization() *Desensitization {
	return &Desensitization{
		Enabled:         true,
		SensitiveFields: defaultSensitiveFields,
		MaskChar:        defaultMaskChar,
		FixedMaskLength: defaultFixedMaskLength,
	}
}

func getDesensitizationConfigs(v *viper.Viper) *Desensitization {
	if !v.IsSet("logger.desensitization") {
		return DefaultDesensitization()
	}

	cfg := &Desensitization{
		Enabled:         v.GetBool("logger.desensitization.enabled"),
		SensitiveFields: v.GetStringSlice("logger.desensitization.sensitive_fields"),
		MaskChar:        v.GetString("logger.desensitization.mask_char"),
		FixedMaskLength: v.GetInt("logger.desensitization.fixed_mask_length"),
	}

	if len(cfg.SensitiveFields) == 0 {
		cfg.SensitiveFields = defaultSensitiveFields
	}
	if cfg.MaskChar == "" {
		cfg.MaskChar = defaultMaskChar
	}
	if cfg.FixedMaskLength == 0 {
		cfg.FixedMaskLength = defaultFixedMaskLength
	}

	return cfg
}
