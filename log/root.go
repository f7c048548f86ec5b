// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/theblockbrain/ai-safeguard/conf"

	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"github.com/sirupsen/logrus"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

var (
	root = &logger{ctx: []interface{}{}, mapPool: sync.Pool{
		New: func() any {
			return map[string]interface{}{}
		},
	}}
	terminal = logrus.New()

	// logManager owns the background log-rotation cleanup goroutine, if one
	// was started by Init.
	logManager *LogManager
)

type Lvl int

const skipLevel = 3

const (
	LvlCrit Lvl = iota
	LvlFatal
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

var lvlToLogrus = [...]logrus.Level{
	LvlCrit:  logrus.FatalLevel,
	LvlFatal: logrus.FatalLevel,
	LvlError: logrus.ErrorLevel,
	LvlWarn:  logrus.WarnLevel,
	LvlInfo:  logrus.InfoLevel,
	LvlDebug: logrus.DebugLevel,
	LvlTrace: logrus.TraceLevel,
}

// Ctx is a convenience alias for structured context passed as a map rather
// than an alternating key/value slice.
type Ctx map[string]interface{}

// toArray flattens c into an alternating key/value slice, in sorted key
// order so repeated calls produce the same output.
func (c Ctx) toArray() []interface{} {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	arr := make([]interface{}, 0, len(c)*2)
	for _, k := range keys {
		arr = append(arr, k, c[k])
	}
	return arr
}

// normalize pads an odd-length key/value slice with a trailing nil value,
// so malformed call sites degrade gracefully instead of panicking.
func normalize(ctx []interface{}) []interface{} {
	if len(ctx)%2 != 0 {
		ctx = append(ctx, nil)
	}
	return ctx
}

// logger is the concrete Logger implementation: an immutable context
// prefix plus a pool of field maps reused across write calls.
type logger struct {
	ctx     []interface{}
	mapPool sync.Pool
}

func (l *logger) New(ctx ...interface{}) Logger {
	child := make([]interface{}, 0, len(l.ctx)+len(ctx))
	child = append(child, l.ctx...)
	child = append(child, normalize(ctx)...)
	return &logger{ctx: child, mapPool: l.mapPool}
}

func (l *logger) fields(ctx []interface{}) logrus.Fields {
	fields, _ := l.mapPool.Get().(map[string]interface{})
	for k := range fields {
		delete(fields, k)
	}

	all := normalize(ctx)
	for i := 0; i+1 < len(all); i += 2 {
		key, ok := all[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", all[i])
		}
		fields[key] = all[i+1]
	}
	return logrus.Fields(fields)
}

func (l *logger) write(msg string, lvl Lvl, ctx []interface{}, _ int) {
	full := make([]interface{}, 0, len(l.ctx)+len(ctx))
	full = append(full, l.ctx...)
	full = append(full, ctx...)

	fields := l.fields(full)
	terminal.WithFields(fields).Log(lvlToLogrus[lvl], msg)
	l.mapPool.Put(map[string]interface{}(fields))
}

func (l *logger) Trace(msg string, ctx ...interface{}) { l.write(msg, LvlTrace, ctx, skipLevel) }
func (l *logger) Debug(msg string, ctx ...interface{}) { l.write(msg, LvlDebug, ctx, skipLevel) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.write(msg, LvlInfo, ctx, skipLevel) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.write(msg, LvlWarn, ctx, skipLevel) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.write(msg, LvlError, ctx, skipLevel) }
func (l *logger) Crit(msg string, ctx ...interface{}) {
	l.write(msg, LvlCrit, ctx, skipLevel)
	os.Exit(1)
}

// LogManager prunes old rotated log files once their combined size passes
// a configured cap.
type LogManager struct {
	logDir        string
	totalSizeCap  int64 // bytes
	checkInterval time.Duration
	cancel        func()
	mu            sync.Mutex
}

// NewLogManager builds a manager for logDir, capped at totalSizeCapMB
// megabytes.
func NewLogManager(logDir string, totalSizeCapMB int) *LogManager {
	return &LogManager{
		logDir:        logDir,
		totalSizeCap:  int64(totalSizeCapMB) * 1024 * 1024,
		checkInterval: time.Hour,
	}
}

// Start launches the background cleanup loop. A non-positive size cap
// disables cleanup entirely.
func (m *LogManager) Start() {
	if m.totalSizeCap <= 0 {
		return
	}

	stop := make(chan struct{})
	m.cancel = sync.OnceFunc(func() { close(stop) })

	go func() {
		ticker := time.NewTicker(m.checkInterval)
		defer ticker.Stop()

		m.cleanup()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				m.cleanup()
			}
		}
	}()
}

// Stop ends the background cleanup loop, if one is running.
func (m *LogManager) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
}

func (m *LogManager) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	files, err := m.getLogFiles()
	if err != nil {
		return
	}

	var totalSize int64
	for _, f := range files {
		totalSize += f.size
	}

	for totalSize > m.totalSizeCap && len(files) > 1 {
		oldest := files[0]
		if err := os.Remove(oldest.path); err == nil {
			totalSize -= oldest.size
			files = files[1:]
			Info("Log cleanup: removed old file", "file", filepath.Base(oldest.path), "size_mb", oldest.size/1024/1024)
		}
	}
}

type logFileInfo struct {
	path    string
	size    int64
	modTime time.Time
}

func (m *LogManager) getLogFiles() ([]logFileInfo, error) {
	var files []logFileInfo

	err := filepath.Walk(m.logDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".log", ".gz":
			files = append(files, logFileInfo{path: path, size: info.Size(), modTime: info.ModTime()})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].modTime.Before(files[j].modTime) })
	return files, nil
}

// Init wires up the root logger per config: console-only when config.LogFile
// is empty, otherwise a rotated file sink (optionally mirrored to the
// console) via lumberjack, under dataDir/log.
func Init(dataDir string, config conf.LoggerConfig) {
	_ = config.Validate()

	formatter := new(prefixed.TextFormatter)
	formatter.TimestampFormat = "2006-01-02 15:04:05"
	formatter.FullTimestamp = true
	formatter.DisableColors = false

	lvl, _ := logrus.ParseLevel(config.Level)

	if config.LogFile == "" {
		terminal.SetFormatter(formatter)
		terminal.SetLevel(lvl)
		terminal.SetOutput(os.Stdout)
		return
	}

	logDir := filepath.Join(dataDir, "log")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		return
	}

	logPath := filepath.Join(logDir, config.LogFile)
	lj := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
		LocalTime:  config.LocalTime,
	}

	var fileFormatter logrus.Formatter
	if config.JSONFormat {
		jsonFormatter := new(logrus.JSONFormatter)
		jsonFormatter.TimestampFormat = "2006-01-02 15:04:05"
		fileFormatter = jsonFormatter
	} else {
		textFormatter := new(prefixed.TextFormatter)
		textFormatter.TimestampFormat = "2006-01-02 15:04:05"
		textFormatter.FullTimestamp = true
		textFormatter.DisableColors = true
		fileFormatter = textFormatter
	}

	terminal.SetFormatter(fileFormatter)
	terminal.SetLevel(lvl)

	if config.Console {
		terminal.SetOutput(io.MultiWriter(lj, os.Stdout))
	} else {
		terminal.SetOutput(lj)
	}

	if config.TotalSizeCap > 0 {
		logManager = NewLogManager(logDir, config.TotalSizeCap)
		logManager.Start()
	}

	Info("Logger initialized",
		"file", logPath,
		"level", config.Level,
		"max_size_mb", config.MaxSize,
		"max_backups", config.MaxBackups,
		"max_age_days", config.MaxAge,
		"compress", config.Compress,
		"total_size_cap_mb", config.TotalSizeCap,
	)
}

// Close stops the background log manager, if one was started by Init.
func Close() {
	if logManager != nil {
		logManager.Stop()
	}
}

// New returns a new logger with the given context.
// New is a convenient alias for Root().New
func New(ctx ...interface{}) Logger {
	return root.New(ctx...)
}

// Root returns the root logger
func Root() Logger {
	return root
}

// Trace is a convenient alias for Root().Trace
func Trace(msg string, ctx ...interface{}) {
	root.write(msg, LvlTrace, ctx, skipLevel)
}

func Tracef(msg string, args ...interface{}) {
	root.write(fmt.Sprintf(msg, args...), LvlTrace, nil, skipLevel)
}

// Debug is a convenient alias for Root().Debug
func Debug(msg string, ctx ...interface{}) {
	root.write(msg, LvlDebug, ctx, skipLevel)
}

func Debugf(msg string, args ...interface{}) {
	root.write(fmt.Sprintf(msg, args...), LvlDebug, nil, skipLevel)
}

// Info is a convenient alias for Root().Info
func Info(msg string, ctx ...interface{}) {
	root.write(msg, LvlInfo, ctx, skipLevel)
}

// Infof is a convenient alias for Root().Info
func Infof(msg string, args ...interface{}) {
	root.write(fmt.Sprintf(msg, args...), LvlInfo, nil, skipLevel)
}

// Warn is a convenient alias for Root().Warn
func Warn(msg string, ctx ...interface{}) {
	root.write(msg, LvlWarn, ctx, skipLevel)
}

// Warnf is a convenient alias for Root().Warn
func Warnf(msg string, args ...interface{}) {
	root.write(fmt.Sprintf(msg, args...), LvlWarn, nil, skipLevel)
}

// Error is a convenient alias for Root().Error
func Error(msg string, ctx ...interface{}) {
	root.write(msg, LvlError, ctx, skipLevel)
}

// Errorf is a convenient alias for Root().Error
func Errorf(msg string, args ...interface{}) {
	root.write(fmt.Sprintf(msg, args...), LvlError, nil, skipLevel)
}

// Crit is a convenient alias for Root().Crit
func Crit(msg string, ctx ...interface{}) {
	root.write(msg, LvlCrit, ctx, skipLevel)
	os.Exit(1)
}

// Critf is a convenient alias for Root().Crit
func Critf(msg string, args ...interface{}) {
	root.write(fmt.Sprintf(msg, args...), LvlCrit, nil, skipLevel)
	os.Exit(1)
}

// A Logger writes key/value pairs to the package's logrus backend
type Logger interface {
	// New returns a new Logger that has this logger's context plus the given context
	New(ctx ...interface{}) Logger

	// Log a message at the given level with context key/value pairs
	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
}

// TerminalStringer is an analogous interface to the stdlib stringer, allowing
// own types to have custom shortened serialization formats when printed to the
// screen.
type TerminalStringer interface {
	TerminalString() string
}
