// internal/logger/logger.go
//
// Structured JSON logger (Zap + Lumberjack).
//
// Context
// -------
// The platform writes lifecycle and error events to one JSON log per day
// under `<root>/logs/YYYY-MM-DD.log`.  When running in an interactive TTY
// we tee the same events, colorized, to stdout.  Rotation, compression,
// and retention are handled by Lumberjack; no external log-rotate job is
// required.
//
// File logging is optional: operators that ship stdout to an aggregator
// set `logging.file_enabled: false` and only the console core is built.
// When both sinks are disabled we still attach the console core, because
// a silent process is worse than an untidy one.
//
// Usage
// -----
//
//	log, err := logger.New(cfg.Paths.Root, fileEnabled, runningInTTY())
//	if err != nil { … }
//	log.Infow("site registry online", "sites", n)
//
// Notes
// -----
// • Zap core uses ISO-8601 timestamps and lowercase levels.
// • Errors are written to the same sink via `ErrorOutput`.
// • Oxford commas, two spaces after periods.
package logger

import (
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a *zap.SugaredLogger.  With fileEnabled it writes JSON to
// logs/YYYY-MM-DD.log; with tee (or when the file sink is off) a console
// core is attached.  The logger is installed as the process-wide default
// via zap.ReplaceGlobals.
func New(rootDir string, fileEnabled, tee bool) (*zap.SugaredLogger, error) {
	encCfg := zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	var cores []zapcore.Core
	var errSink zapcore.WriteSyncer = zapcore.AddSync(os.Stderr)

	if fileEnabled {
		logDir := filepath.Join(rootDir, "logs")
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, err
		}

		fileName := time.Now().Format("2006-01-02") + ".log"
		fileSink := &lumberjack.Logger{
			Filename:   filepath.Join(logDir, fileName),
			MaxSize:    50, // MB
			MaxBackups: 7,  // keep last seven files
			MaxAge:     14, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(fileSink),
			zap.InfoLevel,
		))
		errSink = zapcore.AddSync(fileSink)
	}

	if tee || !fileEnabled {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.AddSync(os.Stdout),
			zap.InfoLevel,
		))
	}

	z := zap.New(
		zapcore.NewTee(cores...),
		zap.ErrorOutput(errSink),
	).Sugar()

	// Make this the global logger so zap.L() works everywhere after startup.
	zap.ReplaceGlobals(z.Desugar())

	z.Infow("logger online", "file", fileEnabled, "tee", tee)
	return z, nil
}
