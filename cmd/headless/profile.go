package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"runtime/trace"
	"time"

	"go.uber.org/zap"
)

// profiler captures a CPU profile and an execution trace of a run
type profiler struct {
	logger    *zap.Logger
	cpuFile   *os.File
	traceFile *os.File
	cpuPath   string
	tracePath string
}

// startProfile begins capturing into dir. The returned profiler must be stopped.
func startProfile(dir string, logger *zap.Logger) (*profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}

	// Generate timestamped filename
	baseName := "headless-" + time.Now().Format("20060102-150405")
	p := &profiler{
		logger:    logger,
		cpuPath:   filepath.Join(dir, baseName+".cpu.prof"),
		tracePath: filepath.Join(dir, baseName+".trace"),
	}

	var err error
	if p.cpuFile, err = os.Create(p.cpuPath); err != nil {
		return nil, fmt.Errorf("failed to create profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(p.cpuFile); err != nil {
		p.cpuFile.Close()
		return nil, fmt.Errorf("failed to start CPU profile: %w", err)
	}

	if p.traceFile, err = os.Create(p.tracePath); err != nil {
		pprof.StopCPUProfile()
		p.cpuFile.Close()
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}
	if err := trace.Start(p.traceFile); err != nil {
		pprof.StopCPUProfile()
		p.cpuFile.Close()
		p.traceFile.Close()
		return nil, fmt.Errorf("failed to start trace: %w", err)
	}
	return p, nil
}

// stop flushes both captures and closes the files.
func (p *profiler) stop() error {
	trace.Stop()
	pprof.StopCPUProfile()
	err := errors.Join(p.cpuFile.Close(), p.traceFile.Close())
	if err == nil {
		p.logger.Info("profile saved", zap.String("cpu", p.cpuPath), zap.String("trace", p.tracePath))
	}
	return err
}
