package pollparameterresponsetype

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
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrUnrecognizedCode is returned when a wire code is not a declared member,
	// typically because the peer runs a newer revision of the schema
	ErrUnrecognizedCode = errors.New("unrecognized poll parameter response type code")

	// ErrUnrecognizedName is returned when a key or caption does not name a declared member
	ErrUnrecognizedName = errors.New("unrecognized poll parameter response type name")
)

// invalid is handed back alongside errors so an ignored error never yields a usable member
const invalid PollParameterResponseType = -1

// Values returns every declared member in code order
func Values() []PollParameterResponseType {
	return []PollParameterResponseType{
		COUNT_ONLY,
		FULL,
	}
}

// Valid returns true if i is a declared member
func (i PollParameterResponseType) Valid() bool {
	switch i {
	case COUNT_ONLY, FULL:
		return true
	default:
		return false
	}
}

// Code returns the wire code of i
func (i PollParameterResponseType) Code() int32 {
	return int32(i)
}

// Lookup finds the member declared for code,
// ok is false when code is not declared
func Lookup(code int32) (result PollParameterResponseType, ok bool) {
	switch code {
	case 0:
		return COUNT_ONLY, true
	case 1:
		return FULL, true
	default:
		return invalid, false
	}
}

// FromCode finds the member declared for code,
// error wraps ErrUnrecognizedCode when code is not declared
func FromCode(code int32) (PollParameterResponseType, error) {
	if v, ok := Lookup(code); ok {
		return v, nil
	}

	return invalid, fmt.Errorf("%w: %d", ErrUnrecognizedCode, code)
}

// Key returns the schema name of i, blank if i is not declared
func (i PollParameterResponseType) Key() string {
	switch i {
	case COUNT_ONLY:
		return _PollParameterResponseTypeKey_0
	case FULL:
		return _PollParameterResponseTypeKey_1
	default:
		return ""
	}
}

// Caption returns the display name of i, blank if i is not declared
func (i PollParameterResponseType) Caption() string {
	switch i {
	case COUNT_ONLY:
		return _PollParameterResponseTypeCaption_0
	case FULL:
		return _PollParameterResponseTypeCaption_1
	default:
		return ""
	}
}

// Description returns the long form text of i, blank if i is not declared
func (i PollParameterResponseType) Description() string {
	switch i {
	case COUNT_ONLY:
		return _PollParameterResponseTypeDescription_0
	case FULL:
		return _PollParameterResponseTypeDescription_1
	default:
		return ""
	}
}

func (i PollParameterResponseType) String() string {
	if k := i.Key(); k != "" {
		return k
	}

	return "<UNSET>"
}

// FromString parses key or caption (case-insensitive) into a member
func FromString(s string) (PollParameterResponseType, error) {
	s = strings.TrimSpace(s)

	for _, v := range Values() {
		if strings.EqualFold(s, v.Key()) || strings.EqualFold(s, v.Caption()) {
			return v, nil
		}
	}

	return invalid, fmt.Errorf("%w: %q", ErrUnrecognizedName, s)
}

// Ptr returns a pointer to a copy of v, for optional struct fields
func Ptr(v PollParameterResponseType) *PollParameterResponseType {
	return &v
}

// parse accepts either a name or a numeric code
func parse(s string) (PollParameterResponseType, error) {
	if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32); err == nil {
		return FromCode(int32(n))
	}

	return FromString(s)
}

func (i PollParameterResponseType) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnrecognizedCode, int32(i))
	}

	return []byte(i.Key()), nil
}

func (i *PollParameterResponseType) UnmarshalText(text []byte) error {
	if i == nil {
		return errors.New("UnmarshalText Failed: PollParameterResponseType receiver is nil")
	}

	v, err := parse(string(text))
	if err != nil {
		return err
	}

	*i = v
	return nil
}

// Scan implements sql.Scanner, accepts integer codes or their textual form
func (i *PollParameterResponseType) Scan(src interface{}) error {
	if i == nil {
		return errors.New("Scan Failed: PollParameterResponseType receiver is nil")
	}

	var v PollParameterResponseType
	var err error

	switch x := src.(type) {
	case nil:
		return errors.New("Scan Failed: NULL cannot be scanned into PollParameterResponseType")
	case int64:
		if x < math.MinInt32 || x > math.MaxInt32 {
			return fmt.Errorf("%w: %d", ErrUnrecognizedCode, x)
		}
		v, err = FromCode(int32(x))
	case int32:
		v, err = FromCode(x)
	case int:
		if x < math.MinInt32 || x > math.MaxInt32 {
			return fmt.Errorf("%w: %d", ErrUnrecognizedCode, x)
		}
		v, err = FromCode(int32(x))
	case []byte:
		v, err = parse(string(x))
	case string:
		v, err = parse(x)
	default:
		return fmt.Errorf("Scan Failed: unsupported source type %T", src)
	}

	if err != nil {
		return err
	}

	*i = v
	return nil
}

// Value implements driver.Valuer, stores the wire code
func (i PollParameterResponseType) Value() (driver.Value, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnrecognizedCode, int32(i))
	}

	return int64(i), nil
}
