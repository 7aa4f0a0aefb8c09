package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Document DocumentConfig `toml:"document"`
	Convert  ConvertConfig  `toml:"convert"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DocumentConfig 文档生成配置
type DocumentConfig struct {
	// PerPage Web端生成通知单时每页的数量
	PerPage int `toml:"per_page"`
	// TemplatePath 自定义JSON账单模板路径，空则使用内置模板
	TemplatePath string `toml:"template_path"`
	// MeterPrefix 电表列表头前缀
	MeterPrefix string `toml:"meter_prefix"`
}

// ConvertConfig PDF 转换配置
type ConvertConfig struct {
	SofficePath string `toml:"soffice_path"`
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    3002,
			DevMode: false,
		},
		Document: DocumentConfig{
			PerPage:     3,
			MeterPrefix: "电表",
		},
		Convert: ConvertConfig{
			SofficePath: "soffice",
		},
	}
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig 从可执行文件同目录下的 config.toml 加载配置。
// 文件不存在时使用默认配置。
func LoadConfig() (*AppConfig, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return LoadConfigFrom(filepath.Join(exeDir, "config.toml"))
}

// LoadConfigFrom 从指定路径加载配置文件
func LoadConfigFrom(path string) (*AppConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("配置文件 %s 解析失败: %w", path, err)
	}
	return config, nil
}
