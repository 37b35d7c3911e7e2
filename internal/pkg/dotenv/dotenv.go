package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load читает env файл и применяет флаги командной строки поверх окружения.
// Переменные, уже заданные в окружении, файл не перезаписывает.
func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	return applyFlags(os.Args[1:])
}

func applyFlags(args []string) error {
	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)

	var port string
	var migrate bool
	fs.StringVar(&port, "port", "", "Server port (overrides PORT environment variable)")
	fs.BoolVar(&migrate, "migrate", false, "Apply migrations on start (overrides POSTGRES_MIGRATE_ON_START)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	overrides := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			overrides["PORT"] = port
		case "migrate":
			overrides["POSTGRES_MIGRATE_ON_START"] = fmt.Sprintf("%t", migrate)
		}
	})

	for key, value := range overrides {
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
