package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type plainFormatter struct {
	timestampFormat string
	levelDesc       []string
}

func (f *plainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(f.timestampFormat)
	return []byte(fmt.Sprintf("%s %s %s\n", f.levelDesc[entry.Level], timestamp, entry.Message)), nil
}

type Config struct {
	Debug      bool   `koanf:"debug"`
	Filename   string `koanf:"filename"`
	MaxSizeMB  int    `koanf:"max_size"` // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age"` // Days
	Compress   bool   `koanf:"compress"`
}

func (cfg *Config) Validate() error {
	return nil
}

// CreateLogger builds the process logger: always stdout, plus a rotated
// logfile when a filename is configured. 'wrapStdlibDefault' points the
// stdlib default logger at the same outputs.
func (cfg *Config) CreateLogger(rotate bool, wrapStdlibDefault bool) *logrus.Logger {
	output := io.Writer(os.Stdout)

	if cfg.Filename != "" {
		fileLogger := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  true,
		}

		if rotate {
			fileLogger.Rotate()
		}

		output = io.MultiWriter(output, fileLogger)
	}

	logger := logrus.New()
	logger.SetFormatter(&plainFormatter{
		timestampFormat: "2006-01-02 15:04:05",
		levelDesc:       []string{"PANC", "FATL", "ERRO", "WARN", "INFO", "DEBG"},
	})
	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	logger.SetOutput(output)

	if wrapStdlibDefault {
		log.SetOutput(logger.Writer())
	}

	return logger
}
