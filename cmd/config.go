package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"tourbrute.dev/pkg/tourbrute/internal/controller"
	m "tourbrute.dev/pkg/tourbrute/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "tourbrute"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."
	dotEnvFileName   = ".env"

	logFileFlagName      = "log-file"
	verboseFlagName      = "verbose"
	spillDirFlagName     = "spill-dir"
	pointsFileFlagName   = "points-file"
	improvementsFlagName = "improvements"
	countFlagName        = "count"
	minFlagName          = "min"
	maxFlagName          = "max"
	precisionFlagName    = "precision"
	outputFlagName       = "output"

	solvePointsFileKey   = "solve.points_file"
	solveImprovementsKey = "solve.improvements"
	gridCountKey         = "grid.count"
	gridMinKey           = "grid.min"
	gridMaxKey           = "grid.max"
	gridPrecisionKey     = "grid.precision"
	gridOutputKey        = "grid.output"
	mergeOutputKey       = "merge.output"
	spillDirKey          = "spill.dir"
	uiModeKey            = "ui.mode"

	defaultSolveImprovements = true
	defaultGridCount         = 4
	defaultGridMin           = -1.0
	defaultGridMax           = 1.0
	defaultGridPrecision     = int(m.Float32)
	defaultUIMode            = controller.UIModeAuto

	envPrefix = "TOURBRUTE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".tourbrute.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	// Values already in the environment take precedence over .env.
	if err := godotenv.Load(filepath.Join(configFolderPath, dotEnvFileName)); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(solvePointsFileKey, "")
	viper.SetDefault(solveImprovementsKey, defaultSolveImprovements)
	viper.SetDefault(gridCountKey, defaultGridCount)
	viper.SetDefault(gridMinKey, defaultGridMin)
	viper.SetDefault(gridMaxKey, defaultGridMax)
	viper.SetDefault(gridPrecisionKey, defaultGridPrecision)
	viper.SetDefault(gridOutputKey, "")
	viper.SetDefault(mergeOutputKey, "")
	viper.SetDefault(spillDirKey, "")
	viper.SetDefault(uiModeKey, defaultUIMode)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return
		}

		slog.Warn("Failed to read config file", "file", configFileName, "error", err)
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
