package helper

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
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

const logEPrefix = "\nLogE:"

// ErrAddLineTimeFileInfo annotates err with utc time and caller file:line,
// the original error stays reachable through errors.Is / errors.As
func ErrAddLineTimeFileInfo(err error) error {
	if err == nil {
		return nil
	}

	if strings.HasPrefix(err.Error(), logEPrefix) {
		return err
	}

	return fmt.Errorf("%s: %w", addLineTimeFileInfo(err.Error(), 2), err)
}

// ErrNewAddLineTimeFileInfo creates a new annotated error from msg
func ErrNewAddLineTimeFileInfo(msg string) error {
	return errors.New(addLineTimeFileInfo(msg, 2))
}

func addLineTimeFileInfo(msg string, skip int) string {
	if strings.HasPrefix(msg, logEPrefix) {
		return msg
	}

	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file = "unknown"
		line = 0
	}

	file = filepath.ToSlash(file)
	shortFile := filepath.Base(file)

	if dir := filepath.Base(filepath.Dir(file)); dir != "." && dir != "/" && dir != "" {
		shortFile = dir + "/" + shortFile
	}

	return fmt.Sprintf("%s %v %v:%v %v",
		logEPrefix,
		time.Now().UTC().Format("2006-01-02 15:04:05.000"),
		shortFile,
		line,
		msg)
}
