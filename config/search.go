package config

// Search 全文索引配置, Path 为空时使用内存索引
type Search struct {
	Path string `json:"path" yaml:"path"`
}
