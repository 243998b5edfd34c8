//go:build linux

package buttons

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// EvdevButtons reads button presses from Linux evdev devices.
type EvdevButtons struct {
	// Glob selects the devices to watch.
	Glob   string
	Logger logger

	ch     chan Event
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewEvdevButtons(l logger) *EvdevButtons {
	return &EvdevButtons{Glob: "/dev/input/event*", Logger: l, ch: make(chan Event, 8)}
}

func (b *EvdevButtons) Events() <-chan Event { return b.ch }

// Start watches every matching device until ctx ends or Stop is called.
// It is best-effort: if no input devices are available, it logs and returns.
func (b *EvdevButtons) Start(ctx context.Context) error {
	paths, err := filepath.Glob(b.Glob)
	if err != nil || len(paths) == 0 {
		if b.Logger != nil {
			b.Logger.Infof("input", "no evdev devices found for buttons")
		}
		return nil
	}

	watchCtx, cancel := context.WithCancel(ctx)
	b.cancel = cancel

	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := binary.Size(unix.Timeval{})

	for _, path := range paths {
		b.wg.Add(1)
		go func(p string) {
			defer b.wg.Done()
			b.watch(watchCtx, p, tvSize)
		}(path)
	}
	return nil
}

func (b *EvdevButtons) watch(ctx context.Context, path string, tvSize int) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		for _, ev := range decodeKeyPresses(buf[:n], tvSize) {
			if b.Logger != nil {
				b.Logger.Infof("input", "button %s pressed", ev)
			}
			select {
			case b.ch <- ev:
			default:
			}
		}
	}
}

func (b *EvdevButtons) Stop() error {
	if b.cancel != nil {
		b.cancel()
	}
	b.wg.Wait()
	return nil
}
