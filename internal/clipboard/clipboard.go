// Package clipboard provides text access to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/launchpad/internal/logger"
)

// backend is the subset of golang.design/x/clipboard the launcher uses.
type backend struct {
	init  func() error
	write func(text []byte)
	read  func() []byte
}

var (
	mu          sync.Mutex
	initialized bool
	impl        = systemBackend()
)

func systemBackend() backend {
	return backend{
		init: clipboard.Init,
		write: func(text []byte) {
			clipboard.Write(clipboard.FmtText, text)
		},
		read: func() []byte {
			return clipboard.Read(clipboard.FmtText)
		},
	}
}

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}

	log := logger.WithComponent("clipboard")
	if err := impl.init(); err != nil {
		log.Warn("failed to initialize", "error", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}

	initialized = true
	log.Debug("initialized")
	return nil
}

// WriteText places text on the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return err
	}
	impl.write([]byte(text))
	logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}

// ReadText reads text from the clipboard.
func ReadText() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return "", err
	}

	textBytes := impl.read()
	if textBytes == nil {
		return "", nil
	}

	return string(textBytes), nil
}
