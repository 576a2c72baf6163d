package config

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`
	// CDN 访问前缀, 上传文件返回的 url 以它开头
	PublicURL string `json:"public_url" yaml:"public_url"`
}

// Enabled 没有配置 bucket 时退回本地存储
func (o *OssConfig) Enabled() bool {
	return o != nil && o.Bucket != ""
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}
