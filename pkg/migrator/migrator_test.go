package migrator

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ghuser/orderdesk/pkg/logger"
)

func TestGooseLogger_Printf(t *testing.T) {
	var buf bytes.Buffer
	g := &gooseLogger{log: logger.NewWithWriter(&buf, "info")}

	g.Printf("OK   %s (%v)\n", "00003_orders.sql", "12ms")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "OK   00003_orders.sql (12ms)" {
		t.Errorf("msg: got %q", entry["msg"])
	}
	if entry["component"] != "goose" {
		t.Errorf("component: got %v", entry["component"])
	}
}

func TestGooseLogger_FatalfPanics(t *testing.T) {
	var buf bytes.Buffer
	g := &gooseLogger{log: logger.NewWithWriter(&buf, "info")}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if !strings.Contains(buf.String(), "no migrations") {
			t.Errorf("fatal message must be logged, got %s", buf.String())
		}
	}()
	g.Fatalf("no migrations found")
}
