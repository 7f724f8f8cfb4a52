package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if socket := strings.TrimSpace(c.Daemon.Socket); socket != "" {
		if c.Daemon.Socket, err = expandPath(socket); err != nil {
			return fmt.Errorf("daemon.socket: %w", err)
		}
	} else {
		c.Daemon.Socket = ""
	}
	if prefsPath := strings.TrimSpace(c.Prefs.Path); prefsPath != "" {
		if c.Prefs.Path, err = expandPath(prefsPath); err != nil {
			return fmt.Errorf("prefs.path: %w", err)
		}
	} else {
		c.Prefs.Path = ""
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
