package theme

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Detect guesses the system preference from COLORFGBG ("fg;bg" or
// "fg;default;bg"); dark backgrounds are ANSI 0-6 and 8
func Detect(getenv func(string) string) Theme {
	v := getenv("COLORFGBG")
	if v == "" {
		return Light
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return Light
	}
	if (bg >= 0 && bg <= 6) || bg == 8 {
		return Dark
	}
	return Light
}

// Resolve picks the startup theme: explicit flag, then saved preference,
// then the system preference. Only a bad flag is an error; an unreadable
// preference file is logged and skipped.
func Resolve(flagValue string, store *Store, getenv func(string) string, logger *zap.Logger) (Theme, error) {
	if flagValue != "" {
		return Parse(flagValue)
	}
	if store != nil {
		t, ok, err := store.Load()
		if err != nil {
			if logger != nil {
				logger.Warn("ignoring theme preference", zap.String("path", store.Path()), zap.Error(err))
			}
			return Detect(getenv), nil
		}
		if ok {
			return t, nil
		}
	}
	return Detect(getenv), nil
}
