package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

const backupKeepDays = 30

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@every 30s", func() {
		go a.SchedSystemMonitorTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@daily", func() {
		a.SchedCatalogBackupTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedSystemMonitorTask logs host resource usage.
func (a *Application) SchedSystemMonitorTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	fields := []zap.Field{}
	if cpuuse, err := cpu.Percent(0, false); err == nil && len(cpuuse) > 0 {
		fields = append(fields, zap.Float64("cpu_percent", cpuuse[0]))
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		fields = append(fields, zap.Float64("mem_percent", vm.UsedPercent))
	}
	zap.L().Debug("system monitor", fields...)
}

// SchedCatalogBackupTask snapshots the catalog store into the backup dir and
// prunes snapshots older than backupKeepDays.
func (a *Application) SchedCatalogBackupTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	dir := a.appConfig.GetBackupDir()
	name := fmt.Sprintf("catalog-%s.db", time.Now().Format("20060102"))
	path := filepath.Join(dir, name)
	if err := a.store.Snapshot(path); err != nil {
		zap.L().Error("catalog backup failed", zap.String("path", path), zap.Error(err))
		return
	}
	zap.L().Info("catalog backup written", zap.String("path", path))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -backupKeepDays)
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), "catalog-") {
			continue
		}
		info, err := e.Info()
		if err == nil && info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(dir, e.Name()))
		}
	}
}
