package cli

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	logFileName = "debug.log"
	maxLogSize  = 10 << 20
)

// setupLogging sends the standard logger to dir/debug.log when debug is
// set and discards it otherwise; the terminal belongs to the viewer. A log
// over maxLogSize is moved aside first. The returned file, if any, must be
// closed by the caller.
func setupLogging(debug bool, dir string) *os.File {
	log.SetOutput(io.Discard)
	if !debug {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}
	path := filepath.Join(dir, logFileName)
	if fi, err := os.Stat(path); err == nil && fi.Size() > maxLogSize {
		_ = os.Rename(path, path+".old")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Printf("diffwin: debug log started (pid %d)", os.Getpid())
	return f
}

// restoreLogging points the standard logger back at stderr so main can
// report a fatal error.
func restoreLogging(f *os.File) {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags)
	if f != nil {
		f.Close()
	}
}
