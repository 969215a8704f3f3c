package x3270

import (
	"bufio"
	"strings"
	"testing"
)

func TestReadResponse_DataAndOK(t *testing.T) {
	raw := "data: MAIN MENU\r\n" +
		"data: 80. Add Customer\r\n" +
		"U F U C(host) I 2 24 80 0 0 0x0 -\r\n" +
		"ok\r\n"
	data, ok, err := readResponse(bufio.NewReader(strings.NewReader(raw)))
	if err != nil {
		t.Fatalf("readResponse failed: %v", err)
	}
	if !ok {
		t.Fatal("expected ok verdict")
	}
	if len(data) != 2 || data[0] != "MAIN MENU" || data[1] != "80. Add Customer" {
		t.Errorf("data = %q", data)
	}
}

func TestReadResponse_ErrorVerdict(t *testing.T) {
	raw := "data: Unknown action\n" +
		"L U U N N 4 24 80 0 0 0x0 -\n" +
		"error\n"
	data, ok, err := readResponse(bufio.NewReader(strings.NewReader(raw)))
	if err != nil {
		t.Fatalf("readResponse failed: %v", err)
	}
	if ok {
		t.Fatal("expected error verdict")
	}
	if len(data) != 1 || data[0] != "Unknown action" {
		t.Errorf("data = %q", data)
	}
}

func TestReadResponse_TruncatedStream(t *testing.T) {
	raw := "data: partial\n"
	_, _, err := readResponse(bufio.NewReader(strings.NewReader(raw)))
	if err == nil {
		t.Fatal("expected error on stream ending without a verdict")
	}
}

func TestReadResponse_NoData(t *testing.T) {
	raw := "U F U C(host) I 2 24 80 0 0 0x0 -\nok\n"
	data, ok, err := readResponse(bufio.NewReader(strings.NewReader(raw)))
	if err != nil || !ok {
		t.Fatalf("readResponse: data=%v ok=%v err=%v", data, ok, err)
	}
	if len(data) != 0 {
		t.Errorf("data = %q, want empty", data)
	}
}

func TestDefaultModels(t *testing.T) {
	if len(DefaultModels) == 0 || DefaultModels[0] != "3279-2" {
		t.Errorf("DefaultModels = %v", DefaultModels)
	}
}
