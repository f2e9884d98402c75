package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"agrimoga/internal/models"
)

func Test_normalizeLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "zero means capacity", limit: 0, want: 200},
		{name: "negative means capacity", limit: -1, want: 200},
		{name: "within range", limit: 25, want: 25},
		{name: "above capacity", limit: 500, want: 200},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizeLimit(tt.limit, 200); got != tt.want {
				t.Fatalf("normalizeLimit(%d) = %d, want %d", tt.limit, got, tt.want)
			}
		})
	}
}

func TestNormalizeLogCap(t *testing.T) {
	t.Parallel()

	for in, want := range map[int]int{0: 200, 10: 50, 120: 120, 1000: 200} {
		if got := NormalizeLogCap(in); got != want {
			t.Fatalf("NormalizeLogCap(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestListAdvice_PassesLimit(t *testing.T) {
	f := newFixture(t)
	f.adviceLog.entries = []models.AdvisoryLogEntry{{ID: "b"}, {ID: "a"}}

	got, err := f.svc.AdviceLog.ListAdvice(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListAdvice: %v", err)
	}
	if len(got) != 1 || got[0].ID != "b" || f.adviceLog.gotLimit != 1 {
		t.Fatalf("got %+v limit %d", got, f.adviceLog.gotLimit)
	}
}

func TestListAdvice_Error(t *testing.T) {
	f := newFixture(t)
	f.adviceLog.listErr = errors.New("boom")

	if _, err := f.svc.AdviceLog.ListAdvice(context.Background(), 10); err == nil {
		t.Fatalf("expected error")
	}
}

func TestExportLogs_WritesWorkbook(t *testing.T) {
	f := newFixture(t)
	f.adviceLog.entries = []models.AdvisoryLogEntry{{ID: "a", RecordedAt: time.Now(), CropKey: "avocado", Quantity: 480, Decision: "normal"}}
	f.harvest.entries = []models.HarvestEntry{{PickedOn: "2024-05-01", CropKey: "avocado", Quality: "A", QtyKg: 10, PricePerKg: 16, Total: 160}}

	var buf bytes.Buffer
	if err := f.svc.AdviceLog.ExportLogs(context.Background(), &buf); err != nil {
		t.Fatalf("ExportLogs: %v", err)
	}
	// xlsx is a zip archive
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Fatalf("output is not an xlsx archive")
	}
}

func TestCrops_Localized(t *testing.T) {
	f := newFixture(t)

	got := f.svc.Crops.Crops("fr")
	if len(got) != 3 || got[0].Key != "strawberry" || got[0].Label != "Fraise" || got[0].Dir != "ltr" {
		t.Fatalf("crops = %+v", got)
	}
	if len(got[2].Diseases) != 2 || got[2].Diseases[0].Score != nil {
		t.Fatalf("avocado diseases = %+v", got[2].Diseases)
	}
	if ar := f.svc.Crops.Crops("ar"); ar[0].Dir != "rtl" {
		t.Fatalf("ar dir = %q", ar[0].Dir)
	}
}
