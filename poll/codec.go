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
	"strings"

	"github.com/apache/thrift/lib/go/thrift"
	util "github.com/yellowcab/common"
	data "github.com/yellowcab/common/wrapper/zap"
)

// Protocol selects the thrift wire protocol used by Codec
type Protocol int

const (
	UNKNOWN Protocol = 0
	Binary  Protocol = 1
	Compact Protocol = 2
)

// Valid returns true if p is a supported protocol
func (p Protocol) Valid() bool {
	return p == Binary || p == Compact
}

// Key returns the config name of p
func (p Protocol) Key() string {
	switch p {
	case Binary:
		return "binary"
	case Compact:
		return "compact"
	default:
		return "UNKNOWN"
	}
}

// ParseProtocol converts a config name into Protocol, UNKNOWN if not matched
func ParseProtocol(s string) Protocol {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary":
		return Binary
	case "compact":
		return Compact
	default:
		return UNKNOWN
	}
}

func (p Protocol) factory() thrift.TProtocolFactory {
	conf := &thrift.TConfiguration{}

	if p == Compact {
		return thrift.NewTCompactProtocolFactoryConf(conf)
	}

	return thrift.NewTBinaryProtocolFactoryConf(conf)
}

// Codec encodes and decodes PollParameters, safe for concurrent use
//
// Logger = optional, receives a warning for every unrecognized response type code
type Codec struct {
	Protocol Protocol
	Logger   *data.ZapLog

	id    string
	ser   *thrift.TSerializerPool
	deser *thrift.TDeserializerPool
}

// NewCodec prepares serializer pools for the given protocol
func NewCodec(protocol Protocol, logger *data.ZapLog) (*Codec, error) {
	if !protocol.Valid() {
		return nil, errors.New("NewCodec Failed: Protocol Must Be Binary or Compact")
	}

	f := protocol.factory()

	return &Codec{
		Protocol: protocol,
		Logger:   logger,
		id:       util.NewUUID(),
		ser: thrift.NewTSerializerPool(func() *thrift.TSerializer {
			t := thrift.NewTMemoryBufferLen(1024)
			return &thrift.TSerializer{
				Transport: t,
				Protocol:  f.GetProtocol(t),
			}
		}),
		deser: thrift.NewTDeserializerPool(func() *thrift.TDeserializer {
			t := thrift.NewTMemoryBufferLen(1024)
			return &thrift.TDeserializer{
				Transport: t,
				Protocol:  f.GetProtocol(t),
			}
		}),
	}, nil
}

// Encode serializes p
func (c *Codec) Encode(ctx context.Context, p *PollParameters) ([]byte, error) {
	if c == nil || c.ser == nil {
		return nil, errors.New("Encode Failed: Codec Not Initialized, Use NewCodec")
	}

	if p == nil {
		return nil, errors.New("Encode Failed: PollParameters is Required")
	}

	b, err := c.ser.Write(ctx, p)
	if err != nil {
		c.Logger.Errorw("encode poll parameters failed", "codec", c.id, "protocol", c.Protocol.Key(), "error", err)
		return nil, errors.New("Encode Failed: " + err.Error())
	}

	return b, nil
}

// Decode deserializes b, an unrecognized response type code is logged and skipped,
// leaving ResponseType unset
func (c *Codec) Decode(ctx context.Context, b []byte) (*PollParameters, error) {
	if c == nil || c.deser == nil {
		return nil, errors.New("Decode Failed: Codec Not Initialized, Use NewCodec")
	}

	if len(b) == 0 {
		return nil, errors.New("Decode Failed: Payload is Empty")
	}

	p := new(PollParameters)

	if err := c.deser.Read(ctx, p, b); err != nil {
		c.Logger.Errorw("decode poll parameters failed", "codec", c.id, "protocol", c.Protocol.Key(), "error", err)
		return nil, errors.New("Decode Failed: " + err.Error())
	}

	if code, ok := p.UnrecognizedResponseCode(); ok {
		c.Logger.Warnw("unrecognized poll parameter response type skipped", "codec", c.id, "code", code)
	}

	return p, nil
}
