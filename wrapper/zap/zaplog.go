package data

/*
 * Copyright 2020-2026 Aldelo, LP
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

import (
	"errors"
	"strings"
	"sync"

	util "github.com/yellowcab/common"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLog is a wrapper for Zap logger package
//
// DisableLogger = disables the logger from operations, this allows code to be left in place while not performing logging action
// OutputToConsole = redirects log output to console instead of file
// AppName = required, this app's name
type ZapLog struct {
	// operating var
	DisableLogger bool

	OutputToConsole bool
	AppName         string

	// store zap client object
	zapLogger   *zap.Logger
	sugarLogger *zap.SugaredLogger

	mu sync.RWMutex
}

// helper to normalize log messages
func sanitizeLogMessage(msg string) string {
	return strings.ReplaceAll(strings.ReplaceAll(msg, "\n", ""), "\r", "")
}

// Init will initialize and prepare the zap log wrapper for use,
//
// ...-internal-err.log = internal zap errors logged, this file may be created but may contain no data as there may not be any internal zap errors
// log output to file is 'appname.log'
func (z *ZapLog) Init() error {
	if z == nil {
		return errors.New("Init Logger Failed: ZapLog receiver is nil")
	}

	// validate
	if util.LenTrim(z.AppName) <= 0 {
		return errors.New("Init Logger Failed: " + "App Name is Required")
	}

	var l *zap.Logger
	var err error

	if !z.OutputToConsole {
		// log to file
		prod := zap.NewProductionConfig()

		prod.Development = true
		prod.DisableCaller = true

		prod.Encoding = "json"

		prod.OutputPaths = []string{z.AppName + ".log"}
		prod.ErrorOutputPaths = []string{z.AppName + "-internal-err.log"}

		l, err = prod.Build()
	} else {
		// log to console
		l, err = zap.NewProduction()
	}

	if err != nil {
		return errors.New("Init Logger Failed: " + err.Error())
	}

	z.setLogger(l.With(zap.String("app", z.AppName)))
	return nil
}

// UseCore attaches the logger to an existing zap core, such as zaptest/observer in unit tests
func (z *ZapLog) UseCore(core zapcore.Core) {
	if z == nil || core == nil {
		return
	}

	l := zap.New(core)

	if util.LenTrim(z.AppName) > 0 {
		l = l.With(zap.String("app", z.AppName))
	}

	z.setLogger(l)
}

func (z *ZapLog) setLogger(l *zap.Logger) {
	z.mu.Lock()
	defer z.mu.Unlock()

	z.zapLogger = l
	z.sugarLogger = l.Sugar()
}

func (z *ZapLog) sugar() *zap.SugaredLogger {
	if z == nil {
		return nil
	}

	z.mu.RLock()
	defer z.mu.RUnlock()

	if z.DisableLogger {
		return nil
	}

	return z.sugarLogger
}

// Sync will flush log buffer to disk
func (z *ZapLog) Sync() {
	if z == nil {
		return
	}

	z.mu.RLock()
	defer z.mu.RUnlock()

	if z.zapLogger != nil { // allow sync even when DisableLogger is true
		_ = z.zapLogger.Sync()
	}
}

// Debugw is a Sugared Logging, allows key value pairs variadic
func (z *ZapLog) Debugw(logMessageData string, keyValuePairs ...interface{}) {
	if s := z.sugar(); s != nil {
		s.Debugw(sanitizeLogMessage(logMessageData), keyValuePairs...)
	}
}

// Infow is a Sugared Logging, allows key value pairs variadic
func (z *ZapLog) Infow(logMessageData string, keyValuePairs ...interface{}) {
	if s := z.sugar(); s != nil {
		s.Infow(sanitizeLogMessage(logMessageData), keyValuePairs...)
	}
}

// Warnw is a Sugared Logging, allows key value pairs variadic
func (z *ZapLog) Warnw(logMessageData string, keyValuePairs ...interface{}) {
	if s := z.sugar(); s != nil {
		s.Warnw(sanitizeLogMessage(logMessageData), keyValuePairs...)
	}
}

// Errorw is a Sugared Logging, allows key value pairs variadic
func (z *ZapLog) Errorw(logMessageData string, keyValuePairs ...interface{}) {
	if s := z.sugar(); s != nil {
		s.Errorw(sanitizeLogMessage(logMessageData), keyValuePairs...)
	}
}
