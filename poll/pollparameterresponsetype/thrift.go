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
	"context"
	"fmt"

	"github.com/apache/thrift/lib/go/thrift"
)

// WriteField writes i as an i32 field with the given name and id,
// an undeclared value is refused rather than put on the wire
func (i PollParameterResponseType) WriteField(ctx context.Context, oprot thrift.TProtocol, name string, id int16) error {
	if !i.Valid() {
		return fmt.Errorf("%w: %d", ErrUnrecognizedCode, int32(i))
	}

	if err := oprot.WriteFieldBegin(ctx, name, thrift.I32, id); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field begin error %d:%s: ", i, id, name), err)
	}

	if err := oprot.WriteI32(ctx, int32(i)); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T.%s (%d) field write error: ", i, name, id), err)
	}

	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field end error %d:%s: ", i, id, name), err)
	}

	return nil
}

// ReadI32 reads an i32 value and maps it to a member,
// the raw code is always returned so callers can report values they do not know;
// err wraps ErrUnrecognizedCode for undeclared codes, otherwise it is a protocol error
func ReadI32(ctx context.Context, iprot thrift.TProtocol) (result PollParameterResponseType, code int32, err error) {
	code, err = iprot.ReadI32(ctx)
	if err != nil {
		return invalid, 0, thrift.PrependError("error reading PollParameterResponseType: ", err)
	}

	result, err = FromCode(code)
	return result, code, err
}
