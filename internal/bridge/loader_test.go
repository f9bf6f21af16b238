package bridge

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubBridge struct {
	name string
}

func (s *stubBridge) SelectSavePath(ctx context.Context, filename string) (string, error) {
	return "/tmp/" + filename, nil
}

func (s *stubBridge) DownloadsDir(ctx context.Context) (string, error) {
	return "/tmp", nil
}

func (s *stubBridge) OpenFileLocation(ctx context.Context, path string) error {
	return nil
}

func TestLoader_CurrentBeforeAttach(t *testing.T) {
	loader := NewLoader()
	if _, ok := loader.Current(); ok {
		t.Error("Expected no bridge before Attach")
	}
	select {
	case <-loader.Ready():
		t.Error("Ready channel should not be closed before Attach")
	default:
	}
}

func TestLoader_WaitBlocksUntilAttach(t *testing.T) {
	loader := NewLoader()
	want := &stubBridge{name: "native"}

	got := make(chan Bridge, 1)
	go func() {
		b, err := loader.Wait(context.Background())
		if err != nil {
			t.Errorf("Wait() error = %v", err)
		}
		got <- b
	}()

	select {
	case <-got:
		t.Fatal("Wait returned before a bridge was attached")
	case <-time.After(20 * time.Millisecond):
	}

	loader.Attach(want)

	select {
	case b := <-got:
		if b != want {
			t.Errorf("Wait() = %v, expected %v", b, want)
		}
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Attach")
	}
}

func TestLoader_WaitCancelled(t *testing.T) {
	loader := NewLoader()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b, err := loader.Wait(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() error = %v, expected context.Canceled", err)
	}
	if b != nil {
		t.Errorf("Wait() bridge = %v, expected nil", b)
	}
}

func TestLoader_AttachTwice(t *testing.T) {
	loader := NewLoader()
	first := &stubBridge{name: "first"}
	second := &stubBridge{name: "second"}

	loader.Attach(first)
	loader.Attach(second)
	loader.Attach(nil)

	b, ok := loader.Current()
	if !ok || b != second {
		t.Errorf("Current() = %v, expected second bridge", b)
	}

	b, err := loader.Wait(context.Background())
	if err != nil || b != second {
		t.Errorf("Wait() = %v, %v, expected second bridge", b, err)
	}
}
