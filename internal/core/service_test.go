package core

import (
	"bytes"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/WingSMC/CPP20-Modules/pkg/foo"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestServicePrintKinds(t *testing.T) {
	tests := []struct {
		value string
		kind  string
		want  string
	}{
		{"hello", "", "hello\n"},
		{"42", KindString, "42\n"},
		{"007", KindInt, "7\n"},
		{"-3", KindInt, "-3\n"},
		{"18446744073709551615", KindUint, "18446744073709551615\n"},
		{"1.50", KindFloat, "1.5\n"},
		{"1e3", KindFloat, "1000\n"},
		{"T", KindBool, "true\n"},
	}

	for _, test := range tests {
		var buf bytes.Buffer
		svc := Service{Out: &buf, Logger: zap.NewNop()}
		if err := svc.Print(test.value, test.kind); err != nil {
			t.Fatalf("print %q as %q: %v", test.value, test.kind, err)
		}
		if buf.String() != test.want {
			t.Fatalf("print %q as %q expected %q got %q", test.value, test.kind, test.want, buf.String())
		}
	}
}

func TestServicePrintInvalid(t *testing.T) {
	svc := Service{Out: &bytes.Buffer{}}
	if err := svc.Print("abc", KindInt); ExitCode(err) != ExitUsage {
		t.Fatalf("expected usage error, got %v", err)
	}
	if err := svc.Print("abc", "complex"); ExitCode(err) != ExitUsage {
		t.Fatalf("expected usage error for kind, got %v", err)
	}
}

func TestServicePrintWriteFailure(t *testing.T) {
	svc := Service{Out: failingWriter{}}
	err := svc.Print("hello", "")
	if ExitCode(err) != ExitRuntime {
		t.Fatalf("expected runtime error, got %v", err)
	}
}

func TestServiceParseValue(t *testing.T) {
	res, err := Service{}.ParseValue("12", "INT")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if res.Kind != KindInt || res.Value != int64(12) {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestServiceSquare(t *testing.T) {
	tests := []struct {
		arg    string
		policy string
		want   string
	}{
		{"0", "", "0"},
		{"-3", "", "9"},
		{" 7 ", "checked", "49"},
		{"3037000500", "wrap", "-9223372036709301616"},
		{"3037000500", "wide", "9223372037000250000"},
		{"-123456789012345678901234567890", "wide", "15241578753238836750495351562536198787501905199875019052100"},
	}

	for _, test := range tests {
		res, err := Service{}.Square(test.arg, test.policy)
		if err != nil {
			t.Fatalf("square %q (%s): %v", test.arg, test.policy, err)
		}
		if res.Square != test.want {
			t.Fatalf("square %q (%s) expected %s got %s", test.arg, test.policy, test.want, res.Square)
		}
	}
}

func TestServiceSquareConfiguredPolicy(t *testing.T) {
	svc := Service{Config: Config{Policy: foo.PolicyWide}}
	res, err := svc.Square("3037000500", "")
	if err != nil {
		t.Fatalf("square: %v", err)
	}
	if res.Policy != "wide" {
		t.Fatalf("expected configured policy, got %s", res.Policy)
	}

	if _, err := svc.Square("3037000500", "checked"); ExitCode(err) != ExitOverflow {
		t.Fatalf("expected flag policy to win, got %v", err)
	}
}

func TestServiceSquareErrors(t *testing.T) {
	tests := []struct {
		arg    string
		policy string
		code   int
	}{
		{"3037000500", "", ExitOverflow},
		{"-9223372036854775808", "checked", ExitOverflow},
		{"9223372036854775808", "", ExitUsage},
		{"abc", "", ExitUsage},
		{"1.5", "wide", ExitUsage},
		{"2", "saturate", ExitUsage},
	}

	for _, test := range tests {
		_, err := Service{}.Square(test.arg, test.policy)
		if ExitCode(err) != test.code {
			t.Fatalf("square %q (%s) expected code %d got %v", test.arg, test.policy, test.code, err)
		}
	}
}

func TestServiceLogsOverflow(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := Service{Out: &bytes.Buffer{}, Logger: zap.New(core).With(zap.String("request_id", "id-1"))}

	if err := svc.Print("1", KindInt); err != nil {
		t.Fatalf("print: %v", err)
	}
	if _, err := svc.Square("3037000500", ""); err == nil {
		t.Fatalf("expected overflow")
	}
	if len(logs.FilterMessage("square overflow").All()) != 1 {
		t.Fatalf("expected overflow log entry")
	}
	for _, entry := range logs.All() {
		if entry.ContextMap()["request_id"] != "id-1" {
			t.Fatalf("entry %q missing request id", entry.Message)
		}
	}
}
