// Package logging provides the "hit" log level used to report discovered interfaces.
package logging

import (
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// HitLevel is the zerolog level hits are filtered by.
// Hits are written as ErrorLevel events and relabeled to "hit" in the output.
const HitLevel zerolog.Level = zerolog.ErrorLevel

const hitMarker = "_hit"

// HitLevelWriter relabels the level of the next marked entry to "hit".
type HitLevelWriter struct {
	out       io.Writer
	mu        sync.Mutex
	nextIsHit bool
}

func (w *HitLevelWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	isHit := w.nextIsHit
	w.nextIsHit = false
	out := w.out
	w.mu.Unlock()

	if isHit && len(p) > 0 {
		var logEntry map[string]interface{}
		if err := json.Unmarshal(p, &logEntry); err == nil {
			logEntry["level"] = "hit"
			delete(logEntry, hitMarker)

			if newBytes, err := json.Marshal(logEntry); err == nil {
				newBytes = append(newBytes, '\n')
				if _, err := out.Write(newBytes); err != nil {
					return 0, err
				}
				return len(p), nil
			}
		}
	}

	return out.Write(p)
}

func (w *HitLevelWriter) markNextAsHit() {
	w.mu.Lock()
	w.nextIsHit = true
	w.mu.Unlock()
}

func (w *HitLevelWriter) SetOutput(out io.Writer) {
	w.mu.Lock()
	w.out = out
	w.mu.Unlock()
}

func NewHitLevelWriter(out io.Writer) *HitLevelWriter {
	return &HitLevelWriter{out: out}
}

// HitEvent wraps a zerolog.Event that is emitted with level "hit".
type HitEvent struct {
	event  *zerolog.Event
	writer *HitLevelWriter
}

func (h *HitEvent) Str(key, val string) *HitEvent {
	h.event.Str(key, val)
	return h
}

func (h *HitEvent) Int(key string, val int) *HitEvent {
	h.event.Int(key, val)
	return h
}

func (h *HitEvent) Msg(msg string) {
	if h.writer != nil {
		h.writer.markNextAsHit()
	}
	h.event.Bool(hitMarker, true).Msg(msg)
}

var (
	globalHitWriter     *HitLevelWriter
	globalHitWriterOnce sync.Once
)

func setupGlobalHitWriter() {
	globalHitWriterOnce.Do(func() {
		globalHitWriter = &HitLevelWriter{out: os.Stderr}
		log.Logger = zerolog.New(globalHitWriter).With().Timestamp().Logger()
	})
}

// Hit starts a hit event, e.g. logging.Hit().Str("interface", "SteamClient017").Msg("INTERFACE")
func Hit() *HitEvent {
	if globalHitWriter == nil {
		setupGlobalHitWriter()
	}
	return &HitEvent{
		event:  log.WithLevel(HitLevel),
		writer: globalHitWriter,
	}
}

// ParseLevel extends zerolog.ParseLevel with the "hit" level.
func ParseLevel(levelStr string) (zerolog.Level, error) {
	if levelStr == "hit" {
		return HitLevel, nil
	}
	return zerolog.ParseLevel(levelStr)
}

// SetGlobalHitWriter sets the writer hit events are marked on.
func SetGlobalHitWriter(writer *HitLevelWriter) {
	globalHitWriter = writer
}
