package grid

import (
	"encoding/json"

	"github.com/mveltman/gridlock/pkg/errors"
)

// MarshalLayout serializes a layout to JSON with stable field order.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.Marshal(l)
}

// UnmarshalLayout deserializes JSON bytes to a layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "decode layout")
	}
	return l, nil
}

// MarshalConfig serializes a config, including its layout, to JSON.
func MarshalConfig(c Config) ([]byte, error) {
	return json.Marshal(c)
}

// UnmarshalConfig deserializes JSON bytes to a config.
// The config is not validated; callers run Validate before using it.
func UnmarshalConfig(data []byte) (Config, error) {
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	return c, nil
}
