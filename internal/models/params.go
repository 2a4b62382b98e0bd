package models

import "fmt"

// Parameters is the mapping of extracted intent parameter name to typed value
// (string, number, or nested mapping). Accessors report absence and type
// mismatch explicitly so every failure point in the extraction chain is visible.
type Parameters map[string]interface{}

// String returns the named string parameter.
func (p Parameters) String(key string) (string, error) {
	raw, ok := p[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingParameter, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a string", ErrMissingParameter, key)
	}
	return s, nil
}

// Number returns the named numeric parameter. JSON numbers decode as float64.
func (p Parameters) Number(key string) (float64, error) {
	raw, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingParameter, key)
	}
	n, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not a number", ErrMissingParameter, key)
	}
	return n, nil
}

// Struct returns the named nested mapping parameter as Parameters so the
// accessor chain continues uniformly.
func (p Parameters) Struct(key string) (Parameters, error) {
	raw, ok := p[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingParameter, key)
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a nested mapping", ErrMissingParameter, key)
	}
	return Parameters(m), nil
}
