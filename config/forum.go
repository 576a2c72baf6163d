package config

import "strings"

// Forum 论坛业务配置
type Forum struct {
	// GlobalWatchers 逗号或空白分隔的用户名, 这些用户会收到所有新帖通知
	GlobalWatchers  string `json:"global_watchers" yaml:"global_watchers"`
	ImageDir        string `json:"image_dir" yaml:"image_dir"`
	UploadURLPrefix string `json:"upload_url_prefix" yaml:"upload_url_prefix"`
	Workers         int    `json:"workers" yaml:"workers"`
	QueueSize       int    `json:"queue_size" yaml:"queue_size"`
	CounterCron     string `json:"counter_cron" yaml:"counter_cron"`
}

func (f *Forum) fillDefaults() {
	if f.Workers <= 0 {
		f.Workers = 8
	}
	if f.QueueSize <= 0 {
		f.QueueSize = 1024
	}
	if f.CounterCron == "" {
		f.CounterCron = "@every 1m"
	}
	if f.ImageDir == "" {
		f.ImageDir = "data/upload"
	}
	if f.UploadURLPrefix == "" {
		f.UploadURLPrefix = "/yvr/upload"
	}
}

// WatcherNames 拆分 GlobalWatchers, 忽略空白项
func (f *Forum) WatcherNames() []string {
	return strings.FieldsFunc(f.GlobalWatchers, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
