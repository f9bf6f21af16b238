package session

import (
	"sync"
	"testing"

	"github.com/simplehac/simpletoolkit/internal/model"
)

func TestStore_RegisterSupersedesControlBinding(t *testing.T) {
	store := NewStore()
	btn := newFakeControl("dl-btn")

	store.Register(&model.DownloadSession{ID: "a", Status: model.StatusDownloading}, btn)
	store.Register(&model.DownloadSession{ID: "b", Status: model.StatusDownloading}, btn)

	if _, ok := store.ControlFor("a"); ok {
		t.Error("Expected first binding to be superseded")
	}
	if c, ok := store.ControlFor("b"); !ok || c != btn {
		t.Error("Expected control bound to the new session")
	}
	if !store.IsTracked("a") || !store.IsTracked("b") {
		t.Error("Both sessions should stay tracked")
	}
}

func TestStore_RegisterKeepsEarlierPushState(t *testing.T) {
	store := NewStore()
	store.Upsert(&model.DownloadSession{ID: "a", Status: model.StatusCompleted, Progress: 100})

	isNew := store.Register(&model.DownloadSession{ID: "a", Path: "/tmp/a.dmg", Status: model.StatusDownloading}, nil)
	if isNew {
		t.Error("Register() = true, expected false for a known session")
	}
	s, _ := store.Get("a")
	if s.Status != model.StatusCompleted {
		t.Errorf("Status = %s, expected %s", s.Status, model.StatusCompleted)
	}
	if s.Path != "/tmp/a.dmg" {
		t.Errorf("Path = %q, expected the registered path", s.Path)
	}
}

func TestStore_UpsertMerges(t *testing.T) {
	store := NewStore()
	prev, isNew := store.Upsert(&model.DownloadSession{ID: "a", URL: "http://x", Path: "/tmp/a", Filename: "a", Status: model.StatusDownloading})
	if !isNew || prev != "" {
		t.Errorf("Upsert() = %q, %v, expected new session", prev, isNew)
	}

	prev, isNew = store.Upsert(&model.DownloadSession{ID: "a", Progress: 10, Speed: "1 MB/s"})
	if isNew || prev != model.StatusDownloading {
		t.Errorf("Upsert() = %q, %v, expected update of downloading session", prev, isNew)
	}

	s, _ := store.Get("a")
	if s.URL != "http://x" || s.Path != "/tmp/a" || s.Filename != "a" {
		t.Errorf("Expected identity fields to be kept, got %+v", s)
	}
	if s.Status != model.StatusDownloading || s.Progress != 10 || s.Speed != "1 MB/s" {
		t.Errorf("Expected progress fields to be updated, got %+v", s)
	}
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Upsert(&model.DownloadSession{ID: "a", Status: model.StatusDownloading})

	s, _ := store.Get("a")
	s.Status = model.StatusError

	again, _ := store.Get("a")
	if again.Status != model.StatusDownloading {
		t.Error("Mutating a returned session should not change the store")
	}
}

func TestStore_ActiveAndAll(t *testing.T) {
	store := NewStore()
	store.Register(&model.DownloadSession{ID: "a", Status: model.StatusDownloading}, nil)
	store.Register(&model.DownloadSession{ID: "b", Status: model.StatusDownloading}, nil)
	store.Upsert(&model.DownloadSession{ID: "c", Status: model.StatusDownloading})
	store.SetStatus("b", model.StatusCompleted)

	active := store.Active()
	if len(active) != 1 || active[0].ID != "a" {
		t.Errorf("Active() = %v, expected only a", active)
	}

	all := store.All()
	if len(all) != 3 || all[0].ID != "c" || all[2].ID != "a" {
		t.Errorf("All() should list newest first, got %d sessions", len(all))
	}

	store.Untrack("a")
	if len(store.Active()) != 0 {
		t.Error("Expected no active sessions after Untrack")
	}
	if store.SetStatus("missing", model.StatusCancelled) {
		t.Error("SetStatus() on unknown id should return false")
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i))
			store.Register(&model.DownloadSession{ID: id, Status: model.StatusDownloading}, newFakeControl("c"+id))
			store.Upsert(&model.DownloadSession{ID: id, Progress: float64(i)})
			_ = store.Active()
			store.Untrack(id)
		}(i)
	}
	wg.Wait()

	if len(store.All()) != 20 {
		t.Errorf("Expected 20 sessions, got %d", len(store.All()))
	}
}
