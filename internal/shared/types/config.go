package types

// ClientConf 描述一次连接的目标与传输参数。
type ClientConf struct {
	Address        string `ini:"address"`
	DialTimeout    int    `ini:"dial_timeout"`  // 秒
	WriteTimeout   int    `ini:"write_timeout"` // 秒, 0 表示不设置写超时
	Socks5Proxy    string `ini:"socks5_proxy"`  // 可选的上游 SOCKS5 代理 host:port
	Socks5User     string `ini:"socks5_user"`
	Socks5Password string `ini:"socks5_password"`
}

// LogConf contains logging specific configuration
type LogConf struct {
	Level string `ini:"level"`
}

// Config 是 hello 客户端的统一配置结构体
type Config struct {
	ClientConf `ini:"client"`
	LogConf    `ini:"log"`
}

// DefaultConfig 返回未提供配置文件时使用的默认值。
func DefaultConfig() *Config {
	return &Config{
		ClientConf: ClientConf{
			Address:     "127.0.0.1:6142",
			DialTimeout: 10,
		},
		LogConf: LogConf{Level: "info"},
	}
}
