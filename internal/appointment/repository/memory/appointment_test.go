package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"document-chatbot/internal/appointment/repository"
	"document-chatbot/internal/model"
	pkgLog "document-chatbot/pkg/log"
)

func TestCreateAndList(t *testing.T) {
	repo := New(pkgLog.NewNop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, model.Appointment{
			ID:   fmt.Sprintf("appt-%d", i),
			Name: fmt.Sprintf("Person %d", i),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got, err := repo.List(ctx, repository.ListOptions{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(got))
	}
	if got[0].ID != "appt-2" || got[1].ID != "appt-1" {
		t.Errorf("expected most recent first, got %v", got)
	}
}

func TestList_DefaultLimit(t *testing.T) {
	repo := New(pkgLog.NewNop())
	ctx := context.Background()

	repo.Create(ctx, model.Appointment{ID: "only"})

	got, err := repo.List(ctx, repository.ListOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(got))
	}
}

func TestCreate_Concurrent(t *testing.T) {
	repo := New(pkgLog.NewNop())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			repo.Create(ctx, model.Appointment{ID: fmt.Sprintf("appt-%d", i)})
		}(i)
	}
	wg.Wait()

	got, err := repo.List(ctx, repository.ListOptions{Limit: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 20 {
		t.Fatalf("expected 20 appointments, got %d", len(got))
	}
}
