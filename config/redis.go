package config

// Redis 索引库配置
type Redis struct {
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
	// PoolSize 为 0 时使用 go-redis 默认值
	PoolSize int `json:"pool_size" yaml:"pool_size"`
}
