// Команда migrate застосовує SQL-міграції схеми бази даних.
//
// Використання:
//
//	migrate [-path migrations] up        # застосувати всі нові міграції
//	migrate [-path migrations] down 1    # відкотити N міграцій
//	migrate [-path migrations] version   # поточна версія схеми
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/oz-oblik/assets-backend/pkg/config"
	"github.com/oz-oblik/assets-backend/pkg/logger"
)

func main() {
	var migrationsPath string
	flag.StringVar(&migrationsPath, "path", "migrations", "каталог із міграціями")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "використання: migrate [-path migrations] up | down [N] | version")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "завантаження конфігурації: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("шлях до міграцій")
	}

	m, err := migrate.New("file://"+absPath, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("ініціалізація мігратора")
	}
	defer m.Close()

	switch args[0] {
	case "up":
		if err := m.Up(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				log.Info().Msg("нових міграцій немає")
				return
			}
			log.Fatal().Err(err).Msg("застосування міграцій")
		}
		logVersion(m, log, "міграції застосовано")

	case "down":
		steps := 1
		if len(args) > 1 {
			steps, err = strconv.Atoi(args[1])
			if err != nil || steps <= 0 {
				log.Fatal().Str("arg", args[1]).Msg("кількість кроків має бути додатним числом")
			}
		}
		if err := m.Steps(-steps); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				log.Info().Msg("нема чого відкочувати")
				return
			}
			log.Fatal().Err(err).Msg("відкіт міграцій")
		}
		logVersion(m, log, "міграції відкочено")

	case "version":
		logVersion(m, log, "поточна версія схеми")

	default:
		log.Fatal().Str("command", args[0]).Msg("невідома команда")
	}
}

func logVersion(m *migrate.Migrate, log *logger.Logger, msg string) {
	version, dirty, err := m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Info().Msg("схема порожня, міграції не застосовувались")
			return
		}
		log.Fatal().Err(err).Msg("читання версії схеми")
	}
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg(msg)
}
