package config

import "github.com/officehours/officehours/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
		Code:    apperr.CodeInvalid,
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
		Code:    apperr.CodeInvalid,
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidPort = &apperr.Error{
		Message: "server port must be between %d and %d, got %d",
		Code:    apperr.CodeInvalid,
	}

	errInvalidTimeout = &apperr.Error{
		Message: "%s must be a positive duration, got %v",
		Code:    apperr.CodeInvalid,
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %q (must be debug, info, warn, or error)",
		Code:    apperr.CodeInvalid,
	}

	errInvalidLogRotation = &apperr.Error{
		Message: "log %s cannot be negative",
		Code:    apperr.CodeInvalid,
	}

	errEmptyLayout = &apperr.Error{
		Message: "lock log layouts cannot contain empty entries",
		Code:    apperr.CodeInvalid,
	}

	errInvalidTimezone = &apperr.Error{
		Message: "unknown timezone: %s",
		Code:    apperr.CodeInvalid,
	}

	errInvalidCLIPort = &apperr.Error{
		Message: "invalid --port value: %d",
		Code:    apperr.CodeInvalid,
	}
)
