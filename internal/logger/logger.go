package logger

import (
	"archive/zip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"KasfoMonitor/internal/config"
)

// LoggerService routes the standard logger into size-rotated files under
// folderPath and archives files older than retentionDays.
type LoggerService struct {
	Config        map[string]interface{}
	file          *os.File
	mu            sync.Mutex
	stopCh        chan struct{}
	stopOnce      sync.Once
	wg            sync.WaitGroup
	currentLog    string
	seq           int
	maxFileBytes  int64
	retentionDays int
	folderPath    string
	echo          bool
}

func NewLoggerService(cfg map[string]interface{}) *LoggerService {
	return &LoggerService{
		Config:        cfg,
		stopCh:        make(chan struct{}),
		maxFileBytes:  int64(config.Int(cfg, "max_file_mb", config.DefaultMaxLogFileMB)) * 1024 * 1024,
		retentionDays: config.Int(cfg, "retention_days", config.DefaultRetentionDays),
		folderPath:    config.String(cfg, "folder_path", config.DefaultLogFolder),
		echo:          cfg["echo"] == true,
	}
}

func (l *LoggerService) Name() string {
	return "logger"
}

func (l *LoggerService) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(l.folderPath, 0755); err != nil {
		return fmt.Errorf("create log folder: %w", err)
	}
	if err := l.openNext(); err != nil {
		return err
	}
	log.Println("[LoggerService] Started, writing to", l.currentLog)

	l.wg.Add(1)
	go l.backgroundWorker()
	return nil
}

func (l *LoggerService) Stop() error {
	l.stopOnce.Do(func() { close(l.stopCh) })
	l.wg.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	log.Println("[LoggerService] Stopping")
	log.SetOutput(os.Stderr)
	err := l.file.Close()
	l.file = nil
	return err
}

// CurrentFile is the path being written to.
func (l *LoggerService) CurrentFile() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.currentLog
}

// openNext must be called with l.mu held.
func (l *LoggerService) openNext() error {
	name := l.nextLogFileName()
	file, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if l.file != nil {
		l.file.Close()
	}
	l.file = file
	l.currentLog = name
	var out io.Writer = file
	if l.echo {
		out = io.MultiWriter(os.Stderr, file)
	}
	log.SetOutput(out)
	return nil
}

// Rotations within the same second get increasing sequence numbers.
func (l *LoggerService) nextLogFileName() string {
	l.seq++
	timestamp := time.Now().Format("20060102_150405")
	return filepath.Join(l.folderPath, fmt.Sprintf("app_%s_%03d.log", timestamp, l.seq))
}

func (l *LoggerService) rotateIfNeeded() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil || l.maxFileBytes <= 0 {
		return nil
	}
	info, err := l.file.Stat()
	if err != nil {
		return err
	}
	if info.Size() < l.maxFileBytes {
		return nil
	}
	if err := l.openNext(); err != nil {
		return err
	}
	log.Println("[LoggerService] Rotated log file to", l.currentLog)
	return nil
}

func (l *LoggerService) backgroundWorker() {
	defer l.wg.Done()
	ticker := time.NewTicker(10 * time.Second)
	retentionTicker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	defer retentionTicker.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case <-ticker.C:
			if err := l.rotateIfNeeded(); err != nil {
				fmt.Fprintln(os.Stderr, "[LoggerService] rotate:", err)
			}
		case <-retentionTicker.C:
			if _, err := l.archiveOldLogs(time.Now()); err != nil {
				log.Println("[LoggerService] archive:", err)
			}
		}
	}
}

// archiveOldLogs moves .log files last written before the retention cutoff
// into logs_YYYYMMDD.zip and returns how many were archived.
func (l *LoggerService) archiveOldLogs(now time.Time) (int, error) {
	if l.retentionDays <= 0 {
		return 0, nil
	}
	cutoff := now.AddDate(0, 0, -l.retentionDays)
	entries, err := os.ReadDir(l.folderPath)
	if err != nil {
		return 0, err
	}

	current := l.CurrentFile()
	var old []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".log" {
			continue
		}
		full := filepath.Join(l.folderPath, e.Name())
		info, err := e.Info()
		if err != nil || full == current || info.ModTime().After(cutoff) {
			continue
		}
		old = append(old, full)
	}
	if len(old) == 0 {
		return 0, nil
	}

	zipName := filepath.Join(l.folderPath, fmt.Sprintf("logs_%s.zip", now.Format("20060102")))
	zipFile, err := os.OpenFile(zipName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer zipFile.Close()
	zw := zip.NewWriter(zipFile)

	archived := 0
	for _, path := range old {
		if err := addToZip(zw, path); err != nil {
			continue
		}
		os.Remove(path)
		archived++
	}
	return archived, zw.Close()
}

func addToZip(zw *zip.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()
	w, err := zw.Create(filepath.Base(path))
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}

// LogAudit writes an [AUDIT] line. Safe on a nil receiver so callers need not
// check whether the logger service was configured.
func (l *LoggerService) LogAudit(msg string) {
	if l == nil {
		log.Printf("[AUDIT] %s", msg)
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	log.Printf("[AUDIT] %s", msg)
}

var GlobalLogger *LoggerService

func SetGlobalLogger(l *LoggerService) {
	GlobalLogger = l
}
