package poll

import (
	"context"
	"sync"
	"testing"

	"github.com/apache/thrift/lib/go/thrift"
	"github.com/yellowcab/common/poll/pollparameterresponsetype"
	data "github.com/yellowcab/common/wrapper/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedCodec(t *testing.T, protocol Protocol) (*Codec, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	z := &data.ZapLog{AppName: "poll-test"}
	z.UseCore(core)

	c, err := NewCodec(protocol, z)
	if err != nil {
		t.Fatalf("NewCodec(%v) returned error: %v", protocol.Key(), err)
	}

	return c, logs
}

func TestCodecRoundTrip(t *testing.T) {
	ctx := context.Background()
	asynch := true

	for _, protocol := range []Protocol{Binary, Compact} {
		c, logs := newObservedCodec(t, protocol)

		in := &PollParameters{
			AllowAsynch:     &asynch,
			ResponseType:    pollparameterresponsetype.Ptr(pollparameterresponsetype.COUNT_ONLY),
			ContentBindings: []string{"urn:stix.mitre.org:xml:1.1.1", "urn:stix.mitre.org:xml:1.2"},
		}

		b, err := c.Encode(ctx, in)
		if err != nil {
			t.Fatalf("[%s] Encode returned error: %v", protocol.Key(), err)
		}

		out, err := c.Decode(ctx, b)
		if err != nil {
			t.Fatalf("[%s] Decode returned error: %v", protocol.Key(), err)
		}

		if out.AllowAsynch == nil || *out.AllowAsynch != true {
			t.Errorf("[%s] AllowAsynch = %v", protocol.Key(), out.AllowAsynch)
		}
		if out.ResponseType == nil || *out.ResponseType != pollparameterresponsetype.COUNT_ONLY {
			t.Errorf("[%s] ResponseType = %v", protocol.Key(), out.ResponseType)
		}
		if len(out.ContentBindings) != 2 || out.ContentBindings[1] != "urn:stix.mitre.org:xml:1.2" {
			t.Errorf("[%s] ContentBindings = %v", protocol.Key(), out.ContentBindings)
		}
		if _, ok := out.UnrecognizedResponseCode(); ok {
			t.Errorf("[%s] UnrecognizedResponseCode reported for a known code", protocol.Key())
		}
		if logs.Len() != 0 {
			t.Errorf("[%s] unexpected log entries: %v", protocol.Key(), logs.All())
		}
	}
}

func TestCodecUnsetFields(t *testing.T) {
	ctx := context.Background()
	c, _ := newObservedCodec(t, Binary)

	b, err := c.Encode(ctx, &PollParameters{})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	out, err := c.Decode(ctx, b)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}

	if out.IsSetAllowAsynch() || out.IsSetResponseType() || out.IsSetContentBindings() {
		t.Errorf("unset fields came back set: %+v", out)
	}
	if got := out.EffectiveResponseType(pollparameterresponsetype.FULL); got != pollparameterresponsetype.FULL {
		t.Errorf("EffectiveResponseType = %v, want FULL", got)
	}
}

// rawParameters writes field 2 with an arbitrary code plus a field this build does not know
func rawParameters(t *testing.T, protocol Protocol, code int32) []byte {
	t.Helper()

	ctx := context.Background()
	buf := thrift.NewTMemoryBuffer()
	p := protocol.factory().GetProtocol(buf)

	steps := []func() error{
		func() error { return p.WriteStructBegin(ctx, "PollParameters") },
		func() error { return p.WriteFieldBegin(ctx, "responseType", thrift.I32, 2) },
		func() error { return p.WriteI32(ctx, code) },
		func() error { return p.WriteFieldEnd(ctx) },
		func() error { return p.WriteFieldBegin(ctx, "deliveryParameters", thrift.STRING, 9) },
		func() error { return p.WriteString(ctx, "https://example.com/inbox") },
		func() error { return p.WriteFieldEnd(ctx) },
		func() error { return p.WriteFieldStop(ctx) },
		func() error { return p.WriteStructEnd(ctx) },
		func() error { return p.Flush(ctx) },
	}

	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
	}

	return buf.Bytes()
}

func TestCodecUnrecognizedResponseType(t *testing.T) {
	ctx := context.Background()

	for _, protocol := range []Protocol{Binary, Compact} {
		c, logs := newObservedCodec(t, protocol)

		out, err := c.Decode(ctx, rawParameters(t, protocol, 5))
		if err != nil {
			t.Fatalf("[%s] Decode returned error: %v", protocol.Key(), err)
		}

		if out.ResponseType != nil {
			t.Errorf("[%s] ResponseType = %v, want nil", protocol.Key(), *out.ResponseType)
		}

		code, ok := out.UnrecognizedResponseCode()
		if !ok || code != 5 {
			t.Errorf("[%s] UnrecognizedResponseCode = %d, %v, want 5, true", protocol.Key(), code, ok)
		}

		if got := out.EffectiveResponseType(pollparameterresponsetype.COUNT_ONLY); got != pollparameterresponsetype.COUNT_ONLY {
			t.Errorf("[%s] EffectiveResponseType = %v, want COUNT_ONLY", protocol.Key(), got)
		}

		warnings := logs.FilterMessage("unrecognized poll parameter response type skipped")
		if warnings.Len() != 1 {
			t.Fatalf("[%s] expected 1 warning, got %d", protocol.Key(), warnings.Len())
		}
		if warnings.All()[0].Level != zapcore.WarnLevel {
			t.Errorf("[%s] warning level = %v", protocol.Key(), warnings.All()[0].Level)
		}
	}
}

func TestCodecKnownCodeWithUnknownField(t *testing.T) {
	c, logs := newObservedCodec(t, Compact)

	out, err := c.Decode(context.Background(), rawParameters(t, Compact, 1))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if out.ResponseType == nil || *out.ResponseType != pollparameterresponsetype.FULL {
		t.Errorf("ResponseType = %v, want FULL", out.ResponseType)
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected log entries: %v", logs.All())
	}
}

func TestCodecRejectsUndeclaredValue(t *testing.T) {
	c, logs := newObservedCodec(t, Binary)

	_, err := c.Encode(context.Background(), &PollParameters{
		ResponseType: pollparameterresponsetype.Ptr(pollparameterresponsetype.PollParameterResponseType(3)),
	})
	if err == nil {
		t.Fatal("Encode of undeclared response type should fail")
	}
	if logs.FilterMessage("encode poll parameters failed").Len() != 1 {
		t.Errorf("expected encode failure to be logged, got %v", logs.All())
	}
}

func TestCodecInputValidation(t *testing.T) {
	ctx := context.Background()

	if _, err := NewCodec(UNKNOWN, nil); err == nil {
		t.Error("NewCodec(UNKNOWN) should fail")
	}

	c, err := NewCodec(Binary, nil)
	if err != nil {
		t.Fatalf("NewCodec returned error: %v", err)
	}

	if _, err := c.Encode(ctx, nil); err == nil {
		t.Error("Encode(nil) should fail")
	}
	if _, err := c.Decode(ctx, nil); err == nil {
		t.Error("Decode(nil) should fail")
	}
	if _, err := c.Decode(ctx, []byte{0x08, 0x00}); err == nil {
		t.Error("Decode of truncated payload should fail")
	}

	var zero Codec
	if _, err := zero.Encode(ctx, &PollParameters{}); err == nil {
		t.Error("Encode on zero Codec should fail")
	}
}

func TestCodecConcurrent(t *testing.T) {
	ctx := context.Background()
	c, _ := newObservedCodec(t, Compact)

	var wg sync.WaitGroup
	errs := make(chan error, 32)

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			rt := pollparameterresponsetype.Values()[i%2]
			b, err := c.Encode(ctx, &PollParameters{ResponseType: &rt})
			if err != nil {
				errs <- err
				return
			}

			out, err := c.Decode(ctx, b)
			if err != nil {
				errs <- err
				return
			}

			if out.EffectiveResponseType(pollparameterresponsetype.PollParameterResponseType(-1)) != rt {
				t.Errorf("goroutine %d decoded %v, want %v", i, out.ResponseType, rt)
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent round trip failed: %v", err)
	}
}

func TestParseProtocol(t *testing.T) {
	tests := map[string]Protocol{
		"binary":   Binary,
		" Compact": Compact,
		"json":     UNKNOWN,
		"":         UNKNOWN,
	}

	for in, want := range tests {
		if got := ParseProtocol(in); got != want {
			t.Errorf("ParseProtocol(%q) = %v, want %v", in, got, want)
		}
	}
}
