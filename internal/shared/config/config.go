package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/ini.v1"

	"hello_connector/internal/shared/types"
)

// LoadIni 加载 hello.ini。文件不存在时保留 cfg 中已有的默认值。
func LoadIni(cfg *types.Config, fileName string) error {
	iniFile, err := ini.Load(fileName)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	} else if err := iniFile.StrictMapTo(cfg); err != nil {
		return err
	}
	overrideFromEnvString(&cfg.ClientConf.Address, "HELLO_ADDRESS")
	overrideFromEnvInt(&cfg.ClientConf.DialTimeout, "HELLO_DIAL_TIMEOUT")
	return validate(cfg)
}

func validate(cfg *types.Config) error {
	if cfg.Address == "" {
		return fmt.Errorf("client.address must not be empty")
	}
	if cfg.DialTimeout < 0 || cfg.WriteTimeout < 0 {
		return fmt.Errorf("client timeouts must not be negative")
	}
	return nil
}

func overrideFromEnvString(target *string, envName string) {
	if envValue := os.Getenv(envName); envValue != "" {
		*target = envValue
	}
}

func overrideFromEnvInt(target *int, envName string) {
	envValue := os.Getenv(envName)
	if envValue != "" {
		if intValue, err := strconv.Atoi(envValue); err == nil {
			*target = intValue
		}
	}
}
