package render

import (
	"image"

	"github.com/wojaklabs/wojak-studio/engine/compose"
)

// Frame is one render request: a paint-list snapshot plus the
// generation counter of the selection it was built from
type Frame struct {
	Gen     uint64
	Entries []compose.PaintEntry
}

// Result is one finished render
type Result struct {
	Gen      uint64
	Image    *image.RGBA
	Warnings []Warning
}

// Scheduler renders frames on a worker goroutine with a latest-wins
// mailbox: bursts of rapid mutation coalesce to the newest frame, and
// a render that finishes after a newer frame arrived is discarded
// rather than painted over the newer state.
type Scheduler struct {
	painter *Painter
	w, h    int
	deliver func(Result)

	jobs chan Frame
	quit chan struct{}
	done chan struct{}
}

// NewScheduler starts the render worker. deliver is called on the
// worker goroutine with each frame that was still newest when its
// render finished.
func NewScheduler(painter *Painter, w, h int, deliver func(Result)) *Scheduler {
	s := &Scheduler{
		painter: painter,
		w:       w,
		h:       h,
		deliver: deliver,
		jobs:    make(chan Frame, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go s.loop()
	return s
}

// Submit queues a frame, replacing any not-yet-started older one
func (s *Scheduler) Submit(f Frame) {
	for {
		select {
		case s.jobs <- f:
			return
		default:
		}
		// Mailbox full: drop the stale frame and retry.
		select {
		case <-s.jobs:
		default:
		}
	}
}

// Close stops the worker and waits for it to exit
func (s *Scheduler) Close() {
	close(s.quit)
	<-s.done
}

func (s *Scheduler) loop() {
	defer close(s.done)
	for {
		var frame Frame
		select {
		case frame = <-s.jobs:
		case <-s.quit:
			return
		}

		for {
			img := image.NewRGBA(image.Rect(0, 0, s.w, s.h))
			warnings := s.painter.Render(img, frame.Entries)

			// A newer frame that arrived while rendering supersedes
			// this result: last selection wins, no torn frames.
			select {
			case newer := <-s.jobs:
				frame = newer
				continue
			case <-s.quit:
				return
			default:
			}
			s.deliver(Result{Gen: frame.Gen, Image: img, Warnings: warnings})
			break
		}
	}
}
