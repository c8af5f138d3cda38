package connector

import (
	"fmt"
	"net"
	"time"

	"golang.org/x/net/proxy"

	"hello_connector/internal/shared/types"
)

// newDialer 根据配置返回直连或经由上游 SOCKS5 代理的拨号器。
func newDialer(cfg *types.ClientConf) (proxy.ContextDialer, error) {
	direct := &net.Dialer{Timeout: time.Duration(cfg.DialTimeout) * time.Second}
	if cfg.Socks5Proxy == "" {
		return direct, nil
	}

	var auth *proxy.Auth
	if cfg.Socks5User != "" {
		auth = &proxy.Auth{User: cfg.Socks5User, Password: cfg.Socks5Password}
	}
	dialer, err := proxy.SOCKS5("tcp", cfg.Socks5Proxy, auth, direct)
	if err != nil {
		return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
	}
	contextDialer, ok := dialer.(proxy.ContextDialer)
	if !ok {
		return nil, fmt.Errorf("SOCKS5 dialer for %s does not support contexts", cfg.Socks5Proxy)
	}
	return contextDialer, nil
}
