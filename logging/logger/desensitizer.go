package logger

import (
	"strings"

	"github.com/jarredbaird/express-jobly/logging/logger/config"
	"github.com/sirupsen/logrus"
)

// Desensitizer masks log fields whose names look like credentials
type Desensitizer struct {
	config *config.Desensitization
	mask   string
}

// NewDesensitizer creates a new desensitizer instance
func NewDesensitizer(cfg *config.Desensitization) *Desensitizer {
	if cfg == nil {
		cfg = config.DefaultDesensitization()
	}
	return &Desensitizer{
		config: cfg,
		mask:   strings.Repeat(cfg.MaskChar, cfg.FixedMaskLength),
	}
}

// DesensitizeFields returns a copy of fields with sensitive values masked
func (d *Desensitizer) DesensitizeFields(fields logrus.Fields) logrus.Fields {
	if !d.config.Enabled || len(fields) == 0 {
		return fields
	}

	result := make(logrus.Fields, len(fields))
	for key, value := range fields {
		if d.isSensitiveField(key) {
			result[key] = d.mask
			continue
		}
		if nested, ok := value.(map[string]any); ok {
			result[key] = map[string]any(d.DesensitizeFields(nested))
			continue
		}
		result[key] = value
	}
	return result
}

func (d *Desensitizer) isSensitiveField(name string) bool {
	lower := strings.ToLower(name)
	for _, field := range d.config.SensitiveFields {
		if strings.Contains(lower, strings.ToLower(field)) {
			return true
		}
	}
	return false
}

// desensitizeHook applies the desensitizer to every entry before formatting
type desensitizeHook struct {
	d *Desensitizer
}

func (h *desensitizeHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *desensitizeHook) Fire(entry *logrus.Entry) error {
	entry.Data = h.d.DesensitizeFields(entry.Data)
	return nil
}
