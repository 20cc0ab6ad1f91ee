// Package watcher checks a drop directory for the daily report file and
// moves it to a processed directory, optionally converting it in the same
// run. Designed to be driven by cron or a task scheduler: a missing file
// is a normal outcome, not an error. Follow mode waits for the file to
// appear instead of exiting.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/dateutils"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/fileutils"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		fileutils.SetLogger(logger)
	}
}

// Options configures a checker run.
type Options struct {
	WatchDir    string
	TargetFile  string
	Destination string
	// Timeout bounds follow mode; zero means wait indefinitely.
	Timeout time.Duration
}

// Outcome reports what a single check did.
type Outcome int

const (
	// FileMissing means the target was not present. Normal for a
	// scheduled run.
	FileMissing Outcome = iota
	// FileMoved means the target was found and moved to the destination.
	FileMoved
)

// Checker looks for the target file and relocates it when present.
type Checker struct {
	opts   Options
	target string
}

// New creates a checker. WatchDir and Destination must name directories;
// they are validated on each run, not here, so a checker can outlive a
// temporarily unavailable network share.
func New(opts Options) *Checker {
	return &Checker{
		opts:   opts,
		target: filepath.Join(opts.WatchDir, opts.TargetFile),
	}
}

// RunOnce performs one check. It returns FileMissing without error when
// the target is absent; errors mean the directories themselves are
// unusable or the move failed.
func (c *Checker) RunOnce() (Outcome, string, error) {
	if !fileutils.DirectoryExists(c.opts.WatchDir) {
		return FileMissing, "", fmt.Errorf("watch directory does not exist: %s", c.opts.WatchDir)
	}

	info, err := os.Stat(c.target)
	if err != nil {
		if os.IsNotExist(err) {
			c.logMissing()
			return FileMissing, "", nil
		}
		return FileMissing, "", fmt.Errorf("cannot stat target file: %w", err)
	}
	if info.IsDir() {
		return FileMissing, "", fmt.Errorf("target is a directory, not a file: %s", c.target)
	}

	log.WithFields(logrus.Fields{
		"file":     c.target,
		"size":     info.Size(),
		"modified": info.ModTime().Format(time.RFC3339),
	}).Info("Target file found")

	if err := fileutils.EnsureDirectoryExists(c.opts.Destination); err != nil {
		return FileMissing, "", fmt.Errorf("destination not usable: %w", err)
	}

	dest := c.destinationPath(time.Now())
	if err := fileutils.MoveFile(c.target, dest); err != nil {
		return FileMissing, "", fmt.Errorf("failed to move report: %w", err)
	}

	log.WithFields(logrus.Fields{
		"from": c.target,
		"to":   dest,
	}).Info("Report file moved")
	return FileMoved, dest, nil
}

// Follow blocks until the target file appears, then processes it like
// RunOnce. The watch directory must exist up front; fsnotify cannot watch
// a missing directory.
func (c *Checker) Follow() (Outcome, string, error) {
	// The file may already be there.
	outcome, dest, err := c.RunOnce()
	if err != nil || outcome == FileMoved {
		return outcome, dest, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return FileMissing, "", fmt.Errorf("cannot create watcher: %w", err)
	}
	defer func() {
		if err := w.Close(); err != nil {
			log.WithError(err).Warn("Failed to close watcher")
		}
	}()

	if err := w.Add(c.opts.WatchDir); err != nil {
		return FileMissing, "", fmt.Errorf("cannot watch %s: %w", c.opts.WatchDir, err)
	}

	log.WithFields(logrus.Fields{
		"dir":    c.opts.WatchDir,
		"target": c.opts.TargetFile,
	}).Info("Waiting for report file")

	var timeout <-chan time.Time
	if c.opts.Timeout > 0 {
		timer := time.NewTimer(c.opts.Timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return FileMissing, "", fmt.Errorf("watcher closed unexpectedly")
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if filepath.Base(event.Name) != c.opts.TargetFile {
				continue
			}
			// Give the producer a moment to finish writing.
			time.Sleep(time.Second)
			return c.RunOnce()
		case err, ok := <-w.Errors:
			if !ok {
				return FileMissing, "", fmt.Errorf("watcher closed unexpectedly")
			}
			log.WithError(err).Warn("Watcher error")
		case <-timeout:
			log.Info("Timed out waiting for report file")
			return FileMissing, "", nil
		}
	}
}

// destinationPath builds the archived name: the original base name plus a
// timestamp, so successive daily drops never overwrite each other.
func (c *Checker) destinationPath(now time.Time) string {
	ext := filepath.Ext(c.opts.TargetFile)
	base := c.opts.TargetFile[:len(c.opts.TargetFile)-len(ext)]
	name := fmt.Sprintf("%s_%s%s", base, now.Format(dateutils.DateLayoutStamp), ext)
	return filepath.Join(c.opts.Destination, name)
}

// logMissing records diagnostic context for a missing target: what is in
// the directory, and near-miss names (case or extension differences) that
// usually explain why a drop was not picked up.
func (c *Checker) logMissing() {
	log.WithField("file", c.target).Info("Target file not present; nothing to do")

	entries, err := os.ReadDir(c.opts.WatchDir)
	if err != nil {
		log.WithError(err).Warn("Could not list watch directory")
		return
	}
	if len(entries) == 0 {
		log.Info("Watch directory is empty")
		return
	}

	const listLimit = 20
	for i, e := range entries {
		if i == listLimit {
			log.WithField("more", len(entries)-listLimit).Debug("Further entries omitted")
			break
		}
		log.WithField("entry", e.Name()).Debug("Watch directory entry")
	}

	targetExt := filepath.Ext(c.opts.TargetFile)
	targetStem := c.opts.TargetFile[:len(c.opts.TargetFile)-len(targetExt)]
	for _, e := range entries {
		name := e.Name()
		if name == c.opts.TargetFile {
			continue
		}
		ext := filepath.Ext(name)
		stem := name[:len(name)-len(ext)]
		switch {
		case strings.EqualFold(name, c.opts.TargetFile):
			log.WithField("found", name).Warn("Possible case mismatch with target file name")
		case strings.EqualFold(stem, targetStem):
			log.WithField("found", name).Warn("Same base name with a different extension")
		}
	}
}
