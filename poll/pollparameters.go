package poll

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
	"errors"
	"fmt"

	"github.com/apache/thrift/lib/go/thrift"
	"github.com/yellowcab/common/poll/pollparameterresponsetype"
)

// PollParameters mirrors the PollParameters struct of poll.thrift,
// all fields are optional and nil means not set
type PollParameters struct {
	AllowAsynch     *bool
	ResponseType    *pollparameterresponsetype.PollParameterResponseType
	ContentBindings []string

	// raw field 2 value that this build does not recognize
	unrecognizedResponseCode *int32
}

func (p *PollParameters) IsSetAllowAsynch() bool {
	return p.AllowAsynch != nil
}

func (p *PollParameters) IsSetResponseType() bool {
	return p.ResponseType != nil
}

func (p *PollParameters) IsSetContentBindings() bool {
	return p.ContentBindings != nil
}

// EffectiveResponseType returns the requested response type, or def when none was sent
// or the sent code was not recognized
func (p *PollParameters) EffectiveResponseType(def pollparameterresponsetype.PollParameterResponseType) pollparameterresponsetype.PollParameterResponseType {
	if p == nil || p.ResponseType == nil {
		return def
	}

	return *p.ResponseType
}

// UnrecognizedResponseCode returns the raw responseType code read off the wire
// when it did not match any declared member
func (p *PollParameters) UnrecognizedResponseCode() (code int32, ok bool) {
	if p == nil || p.unrecognizedResponseCode == nil {
		return 0, false
	}

	return *p.unrecognizedResponseCode, true
}

func (p *PollParameters) Read(ctx context.Context, iprot thrift.TProtocol) error {
	p.unrecognizedResponseCode = nil

	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T read error: ", p), err)
	}

	for {
		_, fieldTypeId, fieldId, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return thrift.PrependError(fmt.Sprintf("%T field %d read error: ", p, fieldId), err)
		}

		if fieldTypeId == thrift.STOP {
			break
		}

		switch {
		case fieldId == 1 && fieldTypeId == thrift.BOOL:
			err = p.readAllowAsynch(ctx, iprot)
		case fieldId == 2 && fieldTypeId == thrift.I32:
			err = p.readResponseType(ctx, iprot)
		case fieldId == 3 && fieldTypeId == thrift.LIST:
			err = p.readContentBindings(ctx, iprot)
		default:
			err = iprot.Skip(ctx, fieldTypeId)
		}

		if err != nil {
			return err
		}

		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}

	if err := iprot.ReadStructEnd(ctx); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T read struct end error: ", p), err)
	}

	return nil
}

func (p *PollParameters) readAllowAsynch(ctx context.Context, iprot thrift.TProtocol) error {
	v, err := iprot.ReadBool(ctx)
	if err != nil {
		return thrift.PrependError("error reading field 1: ", err)
	}

	p.AllowAsynch = &v
	return nil
}

// readResponseType keeps decoding alive when the peer sends a code added by a newer schema
func (p *PollParameters) readResponseType(ctx context.Context, iprot thrift.TProtocol) error {
	v, code, err := pollparameterresponsetype.ReadI32(ctx, iprot)

	if err != nil {
		if errors.Is(err, pollparameterresponsetype.ErrUnrecognizedCode) {
			p.ResponseType = nil
			p.unrecognizedResponseCode = &code
			return nil
		}
		return thrift.PrependError("error reading field 2: ", err)
	}

	p.ResponseType = &v
	return nil
}

func (p *PollParameters) readContentBindings(ctx context.Context, iprot thrift.TProtocol) error {
	_, size, err := iprot.ReadListBegin(ctx)
	if err != nil {
		return thrift.PrependError("error reading list begin: ", err)
	}

	p.ContentBindings = make([]string, 0, size)

	for i := 0; i < size; i++ {
		s, err := iprot.ReadString(ctx)
		if err != nil {
			return thrift.PrependError("error reading field 3: ", err)
		}
		p.ContentBindings = append(p.ContentBindings, s)
	}

	if err := iprot.ReadListEnd(ctx); err != nil {
		return thrift.PrependError("error reading list end: ", err)
	}

	return nil
}

func (p *PollParameters) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "PollParameters"); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write struct begin error: ", p), err)
	}

	if p.IsSetAllowAsynch() {
		if err := oprot.WriteFieldBegin(ctx, "allowAsynch", thrift.BOOL, 1); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T write field begin error 1:allowAsynch: ", p), err)
		}
		if err := oprot.WriteBool(ctx, *p.AllowAsynch); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T.allowAsynch (1) field write error: ", p), err)
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T write field end error 1:allowAsynch: ", p), err)
		}
	}

	if p.IsSetResponseType() {
		if err := p.ResponseType.WriteField(ctx, oprot, "responseType", 2); err != nil {
			return err
		}
	}

	if p.IsSetContentBindings() {
		if err := oprot.WriteFieldBegin(ctx, "contentBindings", thrift.LIST, 3); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T write field begin error 3:contentBindings: ", p), err)
		}
		if err := oprot.WriteListBegin(ctx, thrift.STRING, len(p.ContentBindings)); err != nil {
			return thrift.PrependError("error writing list begin: ", err)
		}
		for _, s := range p.ContentBindings {
			if err := oprot.WriteString(ctx, s); err != nil {
				return thrift.PrependError(fmt.Sprintf("%T.contentBindings (3) field write error: ", p), err)
			}
		}
		if err := oprot.WriteListEnd(ctx); err != nil {
			return thrift.PrependError("error writing list end: ", err)
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T write field end error 3:contentBindings: ", p), err)
		}
	}

	if err := oprot.WriteFieldStop(ctx); err != nil {
		return thrift.PrependError("write field stop error: ", err)
	}

	if err := oprot.WriteStructEnd(ctx); err != nil {
		return thrift.PrependError("write struct stop error: ", err)
	}

	return nil
}
