package report

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/groob/plist"
	"gopkg.in/yaml.v3"

	"github.com/tusharlock10/sipxnu/internal/sip"
	"github.com/tusharlock10/sipxnu/internal/xnu"
)

func init() {
	color.NoColor = true
}

func sampleStatus() sip.Status {
	return sip.Decode(0x867, xnu.KernelVersion{Major: 20, Minor: 6, Patch: 0})
}

func sipDecode(value uint32, major uint64) sip.Status {
	return sip.Decode(value, xnu.KernelVersion{Major: major})
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"text", "JSON", " yaml ", "plist"} {
		if _, err := ParseFormat(in); err != nil {
			t.Errorf("ParseFormat(%q): %v", in, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml): expected error")
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatText, sampleStatus(), Options{Product: "darwin 11.5.2"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"SIP value: 2151 (0x867)",
		"20.6.0 (Big Sur)",
		"Product:   darwin 11.5.2",
		"CSR_ALLOW_EXECUTABLE_POLICY_OVERRIDE",
		"0x800",
		"Can edit root:            true",
		"Can write NVRAM:          true",
		"Can load arbitrary kexts: true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTextWithoutProduct(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatText, sipDecode(0, 30), Options{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "Product:") {
		t.Errorf("unexpected product line:\n%s", out)
	}
	if !strings.Contains(out, "Kernel:    30.0.0\n") {
		t.Errorf("unknown release should print the bare version:\n%s", out)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, sampleStatus(), Options{}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var got sip.Status
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}
	if !reflect.DeepEqual(got, sampleStatus()) {
		t.Errorf("decoded %+v, want %+v", got, sampleStatus())
	}
	if !strings.Contains(buf.String(), `"can_load_arbitrary_kexts": true`) {
		t.Errorf("json output missing predicate key:\n%s", buf.String())
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatYAML, sampleStatus(), Options{}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var got sip.Status
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}
	if !reflect.DeepEqual(got, sampleStatus()) {
		t.Errorf("decoded %+v, want %+v", got, sampleStatus())
	}
}

func TestWritePlist(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatPlist, sampleStatus(), Options{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<plist", "<key>breakdown</key>", "<key>CSR_ALLOW_UNAUTHENTICATED_ROOT</key>", "<key>can_edit_root</key>"} {
		if !strings.Contains(out, want) {
			t.Errorf("plist output missing %q:\n%s", want, out)
		}
	}

	var got sip.Status
	if err := plist.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Value != 0x867 || !got.CanEditRoot || len(got.Breakdown) != len(sip.Flags) {
		t.Errorf("decoded %+v", got)
	}
}

func TestWriteFlags(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFlags(&buf, FormatText); err != nil {
		t.Fatalf("WriteFlags: %v", err)
	}
	for _, f := range sip.Flags {
		if !strings.Contains(buf.String(), f.String()) {
			t.Errorf("flag table missing %s", f)
		}
	}

	buf.Reset()
	if err := WriteFlags(&buf, FormatJSON); err != nil {
		t.Fatalf("WriteFlags json: %v", err)
	}
	var infos []FlagInfo
	if err := json.Unmarshal(buf.Bytes(), &infos); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(infos) != 12 || infos[11] != (FlagInfo{Name: "CSR_ALLOW_UNAUTHENTICATED_ROOT", Mask: 0x800}) {
		t.Errorf("unexpected flag list: %+v", infos)
	}
}
