package figure

import "fmt"

// A ConfigError reports a figure configuration that cannot be satisfied,
// e.g. a grid geometry that does not match the number of axes groups or an
// unknown segment-bar location. It is terminal: the operation that returns
// it has had no effect on the figure.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}
