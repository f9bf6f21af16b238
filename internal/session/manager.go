package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/simplehac/simpletoolkit/internal/api"
	"github.com/simplehac/simpletoolkit/internal/bridge"
	"github.com/simplehac/simpletoolkit/internal/model"
	"github.com/simplehac/simpletoolkit/internal/platform"
)

// Manager defaults
const (
	DefaultPathAttempts    = 2
	DefaultPathBackoff     = 500 * time.Millisecond
	DefaultErrorResetDelay = 2 * time.Second
)

// Options tunes the manager. Zero values use the defaults.
type Options struct {
	PathAttempts    int           // save dialog attempts before giving up
	PathBackoff     time.Duration // multiplied by the attempt number
	ErrorResetDelay time.Duration // error state shown before a control returns to idle
	Text            Text
}

var _ Downloader = (*Manager)(nil)

// Manager runs the download protocol and reconciles backend progress events
type Manager struct {
	backend  api.Backend
	loader   *bridge.Loader
	view     View
	notifier Notifier
	prompter RecoveryPrompter
	store    *Store
	opts     Options

	textMutex sync.RWMutex
	text      Text

	resetMutex sync.Mutex
	resetGen   map[string]uint64 // control id -> state generation
}

// NewManager creates a session manager
func NewManager(backend api.Backend, loader *bridge.Loader, view View, notifier Notifier, prompter RecoveryPrompter, opts Options) *Manager {
	if opts.PathAttempts <= 0 {
		opts.PathAttempts = DefaultPathAttempts
	}
	if opts.PathBackoff <= 0 {
		opts.PathBackoff = DefaultPathBackoff
	}
	if opts.ErrorResetDelay <= 0 {
		opts.ErrorResetDelay = DefaultErrorResetDelay
	}
	return &Manager{
		backend:  backend,
		loader:   loader,
		view:     view,
		notifier: notifier,
		prompter: prompter,
		store:    NewStore(),
		opts:     opts,
		text:     opts.Text.withDefaults(),
		resetGen: make(map[string]uint64),
	}
}

// SetText replaces the labels and messages, e.g. after a language change
func (m *Manager) SetText(text Text) {
	m.textMutex.Lock()
	defer m.textMutex.Unlock()
	m.text = text.withDefaults()
}

func (m *Manager) texts() Text {
	m.textMutex.RLock()
	defer m.textMutex.RUnlock()
	return m.text
}

// Store returns the session store
func (m *Manager) Store() *Store {
	return m.store
}

// Active returns the sessions still in progress
func (m *Manager) Active() []*model.DownloadSession {
	return m.store.Active()
}

// StartDownload runs the download protocol for url. It blocks until the
// backend accepted the transfer or the attempt ended; callers on the UI
// goroutine should run it in its own goroutine.
func (m *Manager) StartDownload(ctx context.Context, url, filename string, control Control) (*model.DownloadSession, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrEmptyURL
	}
	safeName := platform.SanitizeFilename(filename)
	text := m.texts()

	m.setControl(control, ControlLoading, text.LabelPreparing)

	b, err := m.loader.Wait(ctx)
	if err != nil {
		log.Printf("Bridge wait aborted for %s: %v", url, err)
		m.setControl(control, ControlIdle, text.LabelIdle)
		return nil, err
	}

	path, err := m.selectPath(ctx, b, safeName)
	if err != nil {
		return nil, m.fail(control, err, text.DialogUnavailable)
	}
	if path == "" {
		return nil, m.abort(control)
	}

	for {
		verifyErr := m.backend.VerifyPath(ctx, path)
		if verifyErr == nil {
			break
		}
		log.Printf("Path verification failed for %s: %v", path, verifyErr)
		m.setControl(control, ControlError, text.LabelPathInvalid)

		message := text.PathNotWritable
		if reason := api.MessageOf(verifyErr, ""); reason != "" {
			message = text.PathNotWritable + ": " + reason
		}
		choice, err := m.prompter.PromptRecovery(ctx, path, message)
		if err != nil {
			log.Printf("Recovery prompt failed: %v", err)
			choice = RecoveryCancel
		}
		log.Printf("Recovery choice for %s: %s", safeName, choice)

		switch choice {
		case RecoveryRetry:
			m.setControl(control, ControlLoading, text.LabelPreparing)
			path, err = m.selectPath(ctx, b, safeName)
			if err != nil {
				return nil, m.fail(control, err, text.DialogUnavailable)
			}
			if path == "" {
				return nil, m.abort(control)
			}
		case RecoveryDefault:
			m.setControl(control, ControlLoading, text.LabelPreparing)
			path = m.defaultPath(ctx, b, safeName)
		default:
			return nil, m.abort(control)
		}
	}

	m.setControl(control, ControlLoading, text.LabelDownloading)

	id, err := m.backend.StartDownload(ctx, api.StartRequest{
		URL:      url,
		SavePath: path,
		Filename: safeName,
	})
	if err != nil {
		return nil, m.fail(control, fmt.Errorf("start download: %w", err), text.StartFailed+api.MessageOf(err, text.LabelFailed))
	}

	s := &model.DownloadSession{
		ID:       id,
		URL:      url,
		Path:     path,
		Filename: safeName,
		Status:   model.StatusDownloading,
		Progress: 0,
	}
	isNew := m.store.Register(s, control)
	stored, _ := m.store.Get(id)
	m.publish(stored, isNew)
	log.Printf("Download %s started: %s -> %s", id, url, path)

	// a push may have settled the session before the start response arrived
	if stored.Status.IsTerminal() {
		m.settleControl(control, stored.Status)
	}

	return stored, nil
}

// Retry starts a new attempt for a known session, reusing its bound control
func (m *Manager) Retry(ctx context.Context, id string) (*model.DownloadSession, error) {
	s, ok := m.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}
	control, _ := m.store.ControlFor(id)
	return m.StartDownload(ctx, s.URL, s.Filename, control)
}

// CancelDownload asks the backend to stop id. On acknowledgment the entry is
// marked cancelled, the bound control returns to idle and the session leaves
// the active registry.
func (m *Manager) CancelDownload(ctx context.Context, id string) error {
	text := m.texts()

	ok, err := m.backend.CancelDownload(ctx, id)
	if err != nil {
		log.Printf("Cancel failed for %s: %v", id, err)
		m.notify(NoticeError, text.CancelFailed)
		return fmt.Errorf("cancel download %s: %w", id, err)
	}
	if !ok {
		log.Printf("Cancel not acknowledged for %s", id)
		m.notify(NoticeError, text.CancelFailed)
		return fmt.Errorf("%w: %s", ErrCancelRejected, id)
	}

	if m.store.SetStatus(id, model.StatusCancelled) && m.view != nil {
		m.view.MarkCancelled(EntryID(id))
	}
	if control, ok := m.store.ControlFor(id); ok {
		m.setControl(control, ControlIdle, text.LabelIdle)
	}
	m.store.Untrack(id)
	m.notify(NoticeInfo, text.Cancelled)
	log.Printf("Download %s cancelled", id)
	return nil
}

// AddOrUpdateListEntry upserts the list entry for s. New entries go to the top.
func (m *Manager) AddOrUpdateListEntry(s *model.DownloadSession) {
	if s == nil || s.ID == "" {
		return
	}
	c := s.Clone()
	c.Progress = model.ClampProgress(c.Progress)

	_, isNew := m.store.Upsert(c)
	stored, _ := m.store.Get(c.ID)
	m.publish(stored, isNew)
}

func (m *Manager) publish(s *model.DownloadSession, isNew bool) {
	if m.view != nil && s != nil {
		m.view.UpsertEntry(newListEntry(s), isNew)
	}
}

// OnProgressEvent applies a backend push event
func (m *Manager) OnProgressEvent(s *model.DownloadSession) {
	if s == nil || s.ID == "" {
		log.Printf("Ignoring progress event without id")
		return
	}
	text := m.texts()

	var prev model.SessionStatus
	if existing, ok := m.store.Get(s.ID); ok {
		prev = existing.Status
	}
	m.AddOrUpdateListEntry(s)

	if s.Status == prev {
		return
	}
	control, _ := m.store.ControlFor(s.ID)

	m.settleControl(control, s.Status)

	switch s.Status {
	case model.StatusCompleted:
		m.notify(NoticeSuccess, text.Completed+s.GetDisplayTitle())
		log.Printf("Download %s completed", s.ID)
	case model.StatusError:
		reason := s.Message
		if reason == "" {
			reason = s.GetDisplayTitle()
		}
		m.notify(NoticeError, text.DownloadFailed+reason)
		log.Printf("Download %s failed: %s", s.ID, s.Message)
	}
}

// settleControl moves control to the look of a finished session: idle after
// completion or cancellation, error with a delayed reset after a failure
func (m *Manager) settleControl(control Control, status model.SessionStatus) {
	text := m.texts()
	switch status {
	case model.StatusCompleted, model.StatusCancelled:
		m.setControl(control, ControlIdle, text.LabelIdle)
	case model.StatusError:
		m.setControl(control, ControlError, text.LabelFailed)
		m.scheduleReset(control)
	}
}

// OpenFileLocation reveals path through the bridge
func (m *Manager) OpenFileLocation(ctx context.Context, path string) error {
	b, ok := m.loader.Current()
	if !ok {
		m.notify(NoticeError, m.texts().OpenFailed)
		return errors.New("native bridge not attached")
	}
	if err := b.OpenFileLocation(ctx, path); err != nil {
		log.Printf("Failed to open file location %s: %v", path, err)
		m.notify(NoticeError, m.texts().OpenFailed)
		return err
	}
	return nil
}

// selectPath opens the save dialog with bounded retries and linear backoff.
// An empty path with a nil error means the user dismissed the dialog.
func (m *Manager) selectPath(ctx context.Context, b bridge.Bridge, filename string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= m.opts.PathAttempts; attempt++ {
		path, err := b.SelectSavePath(ctx, filename)
		if err == nil {
			return path, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		lastErr = err
		log.Printf("Save dialog attempt %d failed: %v", attempt, err)

		if attempt < m.opts.PathAttempts {
			select {
			case <-time.After(m.opts.PathBackoff * time.Duration(attempt)):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}

	return "", fmt.Errorf("%w: %v", ErrDialogUnavailable, lastErr)
}

// defaultPath joins the bridge downloads directory with filename. If the
// directory cannot be resolved the bare filename is used.
func (m *Manager) defaultPath(ctx context.Context, b bridge.Bridge, filename string) string {
	dir, err := b.DownloadsDir(ctx)
	if err != nil {
		log.Printf("Failed to resolve downloads directory: %v", err)
		dir = ""
	}
	return platform.DefaultSavePath(dir, filename)
}

// abort handles a dismissed save dialog
func (m *Manager) abort(control Control) error {
	m.setControl(control, ControlIdle, m.texts().LabelIdle)
	m.notify(NoticeInfo, m.texts().Cancelled)
	return ErrCancelled
}

// fail reports a fatal step error. Context cancellation resets the control
// quietly; anything else shows the error state and a notification.
func (m *Manager) fail(control Control, err error, message string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		m.setControl(control, ControlIdle, m.texts().LabelIdle)
		return err
	}
	log.Printf("Download attempt failed: %v", err)
	m.setControl(control, ControlError, m.texts().LabelFailed)
	m.scheduleReset(control)
	m.notify(NoticeError, message)
	return err
}

// setControl applies a state and invalidates any pending error reset
func (m *Manager) setControl(control Control, state ControlState, label string) {
	if control == nil {
		return
	}
	m.resetMutex.Lock()
	m.resetGen[control.ControlID()]++
	m.resetMutex.Unlock()

	control.SetState(state, label)
}

// scheduleReset returns control to idle after the error delay unless its
// state changed in the meantime
func (m *Manager) scheduleReset(control Control) {
	if control == nil {
		return
	}
	id := control.ControlID()

	m.resetMutex.Lock()
	gen := m.resetGen[id]
	m.resetMutex.Unlock()

	time.AfterFunc(m.opts.ErrorResetDelay, func() {
		m.resetMutex.Lock()
		current := m.resetGen[id]
		m.resetMutex.Unlock()
		if current != gen {
			return
		}
		m.setControl(control, ControlIdle, m.texts().LabelIdle)
	})
}

func (m *Manager) notify(kind NoticeKind, message string) {
	if m.notifier != nil {
		m.notifier.Notify(kind, message)
	}
}
