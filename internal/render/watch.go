package render

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/opd-ai/go-cairo/internal/config"
)

// fileWatcher calls onChange once a burst of writes to any watched file
// has been quiet for the debounce interval.
type fileWatcher struct {
	watcher   *fsnotify.Watcher
	files     map[string]bool
	debounce  time.Duration
	onChange  func()
	onError   func(error)
	stopCh    chan struct{}
	stoppedCh chan struct{}
	mu        sync.Mutex
	running   bool
	closed    bool
}

func newFileWatcher(paths []string, debounce time.Duration, onChange func(), onError func(error)) (*fileWatcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("no files to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = config.DefaultDebounce
	}

	// Directories rather than files, so editors that save by renaming a
	// new file over the old one keep being seen.
	files := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			watcher.Close()
			return nil, err
		}
		files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}
		dirs[dir] = true
	}

	return &fileWatcher{
		watcher:   watcher,
		files:     files,
		debounce:  debounce,
		onChange:  onChange,
		onError:   onError,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}, nil
}

// Start begins watching in a goroutine.
func (fw *fileWatcher) Start() {
	fw.mu.Lock()
	if fw.running || fw.closed {
		fw.mu.Unlock()
		return
	}
	fw.running = true
	fw.mu.Unlock()

	go fw.watchLoop()
}

// Stop ends watching and waits for the loop to exit. A watcher that was
// never started just releases its descriptors.
func (fw *fileWatcher) Stop() {
	fw.mu.Lock()
	if fw.closed {
		fw.mu.Unlock()
		return
	}
	fw.closed = true
	running := fw.running
	fw.mu.Unlock()

	if !running {
		fw.watcher.Close()
		return
	}
	close(fw.stopCh)
	<-fw.stoppedCh
}

func (fw *fileWatcher) watchLoop() {
	defer close(fw.stoppedCh)
	defer fw.watcher.Close()

	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time

	for {
		select {
		case <-fw.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			fw.mu.Lock()
			fw.running = false
			fw.mu.Unlock()
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !fw.files[abs] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(fw.debounce)
			debounceCh = debounceTimer.C

		case <-debounceCh:
			if fw.onChange != nil {
				fw.onChange()
			}
			debounceTimer = nil
			debounceCh = nil

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			if fw.onError != nil {
				fw.onError(err)
			}
		}
	}
}

// Watch renders the job, then renders it again each time the script or
// one of extra changes, until ctx is done. Every render, failed or not,
// is reported to onResult. Render errors never stop the loop; Watch only
// fails if the files cannot be watched.
func (j *Job) Watch(ctx context.Context, onResult func(*Result, error), extra ...string) error {
	changes := make(chan struct{}, 1)
	paths := append([]string{j.cfg.Script}, extra...)

	fw, err := newFileWatcher(paths, j.cfg.Watch.Debounce,
		func() {
			select {
			case changes <- struct{}{}:
			default:
			}
		},
		func(err error) {
			j.logger.Warn("watch error", "error", err)
		},
	)
	if err != nil {
		return stageError(StageConfig, err)
	}
	fw.Start()
	defer fw.Stop()

	report := func() {
		res, err := j.Run(ctx)
		if errors.Is(err, ErrCanceled) && ctx.Err() != nil {
			return
		}
		if err != nil {
			j.logger.Error("render failed", "script", j.cfg.Script, "error", err)
		}
		if onResult != nil {
			onResult(res, err)
		}
	}

	report()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			j.logger.Debug("script changed", "script", j.cfg.Script)
			report()
		}
	}
}
