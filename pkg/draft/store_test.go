package draft_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/draft"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/model"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestStorePutGet(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	store := draft.NewStore(draft.WithLogger(zap.New(core)), draft.WithClock(fixedClock))

	stored := store.Put(sampleDraft())
	if !stored.UpdatedAt.Equal(fixedClock()) {
		t.Fatalf("UpdatedAt = %v, want %v", stored.UpdatedAt, fixedClock())
	}

	got, err := store.Get("invoice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Fields[0].Label = "mutated"

	again, _ := store.Get("invoice")
	if again.Fields[0].Label != "Number" {
		t.Fatalf("store returned shared memory")
	}

	entries := logs.FilterMessage("draft stored").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	if id := entries[0].ContextMap()["template_id"]; id != "invoice" {
		t.Fatalf("logged template_id = %v", id)
	}
}

func TestStoreAssignsIDs(t *testing.T) {
	store := draft.NewStore(draft.WithIDGenerator(func() string { return "generated" }))

	d := sampleDraft()
	d.TemplateID = ""
	if got := store.Put(d).TemplateID; got != "generated" {
		t.Fatalf("TemplateID = %q, want generated", got)
	}
}

func TestStoreUpdateAndDelete(t *testing.T) {
	store := draft.NewStore()
	store.Put(sampleDraft())

	updated, err := store.Update("invoice", func(d *draft.Draft) error {
		d.Fields = append(d.Fields, model.Field{ID: "f3", Type: model.FieldTypeDate, Label: "Due"})
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Fields) != 3 {
		t.Fatalf("expected three fields, got %d", len(updated.Fields))
	}

	boom := errors.New("boom")
	if _, err := store.Update("invoice", func(d *draft.Draft) error {
		d.Fields = nil
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected callback error, got %v", err)
	}
	if got, _ := store.Get("invoice"); len(got.Fields) != 3 {
		t.Fatalf("failed update was applied")
	}

	if err := store.Delete("invoice"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get("invoice"); !errors.Is(err, draft.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := store.Delete("invoice"); !errors.Is(err, draft.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := draft.NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d := sampleDraft()
			d.TemplateID = fmt.Sprintf("t-%02d", i)
			store.Put(d)
			if _, err := store.Get(d.TemplateID); err != nil {
				t.Errorf("get %s: %v", d.TemplateID, err)
			}
			store.List()
		}(i)
	}
	wg.Wait()

	list := store.List()
	if len(list) != 16 || store.Len() != 16 {
		t.Fatalf("expected 16 drafts, got %d", len(list))
	}
	if list[0].TemplateID != "t-00" || list[15].TemplateID != "t-15" {
		t.Fatalf("list not ordered by id: %s..%s", list[0].TemplateID, list[15].TemplateID)
	}
}
