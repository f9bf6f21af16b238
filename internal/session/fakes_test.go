package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/simplehac/simpletoolkit/internal/api"
	"github.com/simplehac/simpletoolkit/internal/bridge"
)

type fakeBackend struct {
	mu         sync.Mutex
	verifyErrs []error // consumed in order, nil once exhausted
	verified   []string
	startID    string
	startErr   error
	started    []api.StartRequest
	onStart    func(id string) // runs before the start response returns
	cancelAck  bool
	cancelErr  error
	cancelled  []string
}

func (f *fakeBackend) VerifyPath(ctx context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verified = append(f.verified, path)
	if len(f.verifyErrs) == 0 {
		return nil
	}
	err := f.verifyErrs[0]
	f.verifyErrs = f.verifyErrs[1:]
	return err
}

func (f *fakeBackend) StartDownload(ctx context.Context, req api.StartRequest) (string, error) {
	f.mu.Lock()
	f.started = append(f.started, req)
	id, err, onStart := f.startID, f.startErr, f.onStart
	f.mu.Unlock()

	if err != nil {
		return "", err
	}
	if onStart != nil {
		onStart(id)
	}
	return id, nil
}

func (f *fakeBackend) CancelDownload(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, id)
	return f.cancelAck, f.cancelErr
}

func (f *fakeBackend) calls() (verify, start, cancel int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.verified), len(f.started), len(f.cancelled)
}

type fakeBridge struct {
	mu           sync.Mutex
	paths        []string // consumed in order, the last one repeats
	selectErrs   []error  // consumed before paths
	selectCalls  int
	downloadsDir string
	dirErr       error
	opened       []string
	openErr      error
}

func (f *fakeBridge) SelectSavePath(ctx context.Context, filename string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selectCalls++
	if len(f.selectErrs) > 0 {
		err := f.selectErrs[0]
		f.selectErrs = f.selectErrs[1:]
		return "", err
	}
	if len(f.paths) == 0 {
		return "", nil
	}
	path := f.paths[0]
	if len(f.paths) > 1 {
		f.paths = f.paths[1:]
	}
	return path, nil
}

func (f *fakeBridge) DownloadsDir(ctx context.Context) (string, error) {
	return f.downloadsDir, f.dirErr
}

func (f *fakeBridge) OpenFileLocation(ctx context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opened = append(f.opened, path)
	return f.openErr
}

func (f *fakeBridge) selects() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selectCalls
}

type fakeView struct {
	mu        sync.Mutex
	entries   map[string]ListEntry
	order     []string
	upserts   int
	cancelled []string
}

func newFakeView() *fakeView {
	return &fakeView{entries: make(map[string]ListEntry)}
}

func (f *fakeView) UpsertEntry(entry ListEntry, isNew bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++
	if isNew {
		f.order = append([]string{entry.ID}, f.order...)
	}
	f.entries[entry.ID] = entry
}

func (f *fakeView) MarkCancelled(entryID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, entryID)
}

func (f *fakeView) entry(id string) (ListEntry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[id]
	return e, ok
}

type notice struct {
	kind    NoticeKind
	message string
}

type fakeNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (f *fakeNotifier) Notify(kind NoticeKind, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, notice{kind, message})
}

func (f *fakeNotifier) last() (notice, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.notices) == 0 {
		return notice{}, false
	}
	return f.notices[len(f.notices)-1], true
}

func (f *fakeNotifier) count(kind NoticeKind) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, nt := range f.notices {
		if nt.kind == kind {
			n++
		}
	}
	return n
}

type fakePrompter struct {
	mu      sync.Mutex
	choices []RecoveryChoice // consumed in order, cancel once exhausted
	prompts []string
	err     error
}

func (f *fakePrompter) PromptRecovery(ctx context.Context, path, message string) (RecoveryChoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, message)
	if f.err != nil {
		return "", f.err
	}
	if len(f.choices) == 0 {
		return RecoveryCancel, nil
	}
	c := f.choices[0]
	f.choices = f.choices[1:]
	return c, nil
}

type fakeControl struct {
	id     string
	mu     sync.Mutex
	states []ControlState
	labels []string
}

func newFakeControl(id string) *fakeControl {
	return &fakeControl{id: id}
}

func (f *fakeControl) ControlID() string {
	return f.id
}

func (f *fakeControl) SetState(state ControlState, label string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states = append(f.states, state)
	f.labels = append(f.labels, label)
}

func (f *fakeControl) state() ControlState {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.states) == 0 {
		return ""
	}
	return f.states[len(f.states)-1]
}

func (f *fakeControl) sawState(state ControlState) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.states {
		if s == state {
			return true
		}
	}
	return false
}

// waitForState polls until the control reaches state or the timeout expires
func (f *fakeControl) waitForState(t *testing.T, state ControlState, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if f.state() == state {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Control state = %s, expected %s", f.state(), state)
}

type testHarness struct {
	backend  *fakeBackend
	bridge   *fakeBridge
	view     *fakeView
	notifier *fakeNotifier
	prompter *fakePrompter
	manager  *Manager
}

func newHarness() *testHarness {
	h := &testHarness{
		backend:  &fakeBackend{startID: "dl-1", cancelAck: true},
		bridge:   &fakeBridge{paths: []string{"/tmp/out.iso"}, downloadsDir: "/home/user/Downloads"},
		view:     newFakeView(),
		notifier: &fakeNotifier{},
		prompter: &fakePrompter{},
	}
	loader := bridge.NewLoader()
	loader.Attach(h.bridge)
	h.manager = NewManager(h.backend, loader, h.view, h.notifier, h.prompter, Options{
		PathBackoff:     time.Millisecond,
		ErrorResetDelay: 20 * time.Millisecond,
	})
	return h
}

var errDialog = errors.New("dialog crashed")
