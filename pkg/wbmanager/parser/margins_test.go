package parser

import (
	"testing"

	"github.com/ukaji3/wbmanager-go/pkg/wbmanager/models"
	"github.com/xuri/excelize/v2"
)

func TestPageMargins(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	want := models.NarrowMargins()
	if err := SetPageMargins(f, "Sheet1", want); err != nil {
		t.Fatalf("SetPageMargins failed: %v", err)
	}

	got, err := GetPageMargins(f, "Sheet1")
	if err != nil {
		t.Fatalf("GetPageMargins failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	if err := SetPageMargins(f, "Missing", want); err == nil {
		t.Error("Expected error for missing sheet")
	}
}
