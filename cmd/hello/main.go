package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"hello_connector/internal/connector"
	"hello_connector/internal/shared/config"
	"hello_connector/internal/shared/logger"
	"hello_connector/internal/shared/types"
)

func main() {
	configDir := flag.String("configdir", "configs", "Path to config directory")
	flag.Parse()

	iniPath := filepath.Join(*configDir, "hello.ini")

	// 1. 加载配置，文件缺失时使用默认值
	cfg := types.DefaultConfig()
	if err := config.LoadIni(cfg, iniPath); err != nil {
		// Use standard fmt before logger is initialized.
		fmt.Fprintf(os.Stderr, "Fatal: Failed to load config file '%s': %v\n", iniPath, err)
		os.Exit(1)
	}

	// 2. 初始化日志系统
	if err := logger.Init(cfg.LogConf); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// 3. 连接并写入
	c, err := connector.New(&cfg.ClientConf)
	if err != nil {
		logger.Error().Err(err).Msgf("Failed to build connector")
		os.Exit(1)
	}
	if err := c.Run(context.Background(), os.Stdout); err != nil {
		logger.Error().Err(err).Str("address", c.Address()).Msgf("Could not establish connection")
		os.Exit(1)
	}
}
