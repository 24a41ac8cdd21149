package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file. The file path
// comes from ENV_PATH when set, otherwise from defaultPath. A missing file
// is only an error in local mode; deployed environments are expected to
// configure through real environment variables.
func LoadDotEnv(appEnv string, defaultPath string) error {
	path, ok := os.LookupEnv("ENV_PATH")
	if !ok {
		slog.Info("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		path = defaultPath
	}

	if err := godotenv.Load(path); err != nil {
		if appEnv == "local" || appEnv == "" {
			slog.Error("Failed to load environment variables in local mode", "error", err, "path", path)
			return err
		}
		slog.Debug("No .env file found, reading config from the environment", "path", path)
	}

	return nil
}
