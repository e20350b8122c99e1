package config

import (
	"fmt"
	"log"
	"os"
	"path"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"rds-pfd/rds_config"
)

// All 全部配置索引
var All *AllConfig

var DefaultPath = "./config"
var DebugPath = "./base/config"

// InitConfig 初始化读取配置文件，读不到直接panic
func InitConfig() {
	if err := LoadConfig(DefaultPath); err != nil {
		panic(err)
	}
}

// LoadConfig 读取dir/config.yml，DEBUG=true时再叠加DebugPath下的debug.yml
func LoadConfig(dir string) error {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	configType := "yml"
	v.SetConfigType(configType)

	// 读取配置
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	configs := v.AllSettings()

	// SetDefault使用：全部以默认配置写入
	for k, val := range configs {
		v.SetDefault(k, val)
	}

	//增量配置
	debugEnv := os.Getenv("DEBUG")
	if debugEnv == "true" {
		fmt.Println("debugEnv DEBUG=true")
		debug := "debug"
		newConfigPath := path.Join(DebugPath, debug+".yml")
		exists, _ := isExists(newConfigPath)

		if exists {
			fmt.Printf("%s exists\n", newConfigPath)
			v.AddConfigPath(DebugPath)
			v.SetConfigName(debug)
			v.SetConfigType(configType)
			if err := v.MergeInConfig(); err != nil {
				return err
			}
		} else {
			fmt.Printf("%s not exists\n", newConfigPath)
		}
	}

	// 监控配置文件变化
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("Config file changed: %s", e.Name)
	})

	// 配置映射到结构体
	all := &AllConfig{}
	if err := v.Unmarshal(all); err != nil {
		return err
	}
	all.fillDefaults()
	All = all

	fmt.Printf("config file content:\n%+v\n", *All)
	return nil
}

// AllConfig 全部配置文件
type AllConfig struct {
	Server ServerConfig `mapstructure:"server_config"`
	Logger LoggerConfig `mapstructure:"logger_config"`
	Pfd    PfdConfig    `mapstructure:"pfd_config"`
}

// ServerConfig 服务配置
type ServerConfig struct {
	HttpPort  string `mapstructure:"http_port"`
	SentryDsn string `mapstructure:"sentry_dsn"`
	ResultDir string `mapstructure:"result_dir"`
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string        `mapstructure:"level"`
	Path         string        `mapstructure:"path"`
	MaxAge       time.Duration `mapstructure:"max_age"`
	RotationTime time.Duration `mapstructure:"rotation_time"`
	RotationSize uint32        `mapstructure:"rotation_size"`
}

// PfdConfig 发现任务的默认参数，请求里大于0的参数优先
type PfdConfig struct {
	MaxError           float64 `mapstructure:"max_error"`
	Deviation          float64 `mapstructure:"deviation"`
	EstimateConfidence float64 `mapstructure:"estimate_confidence"`
	SampleSize         int     `mapstructure:"sample_size"`
	SampleSeed         int64   `mapstructure:"sample_seed"`
	MaxArity           int     `mapstructure:"max_arity"`
	NullEqualsNull     *bool   `mapstructure:"null_equals_null"`
	Parallelism        int     `mapstructure:"parallelism"`
}

// Default 没有配置文件时使用
func Default() *AllConfig {
	all := &AllConfig{}
	all.fillDefaults()
	return all
}

func (c *AllConfig) fillDefaults() {
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Path == "" {
		c.Logger.Path = "./logs"
	}
	if c.Logger.MaxAge == 0 {
		c.Logger.MaxAge = 7
	}
	if c.Logger.RotationTime == 0 {
		c.Logger.RotationTime = 24
	}
	if c.Server.HttpPort == "" {
		c.Server.HttpPort = rds_config.GinPort
	}
	if c.Server.ResultDir == "" {
		c.Server.ResultDir = rds_config.ResultDir
	}
	if c.Pfd.MaxError == 0 {
		c.Pfd.MaxError = rds_config.MaxError
	}
	if c.Pfd.EstimateConfidence == 0 {
		c.Pfd.EstimateConfidence = rds_config.EstimateConfidence
	}
	if c.Pfd.SampleSize == 0 {
		c.Pfd.SampleSize = rds_config.SampleSize
	}
	if c.Pfd.MaxArity == 0 {
		c.Pfd.MaxArity = rds_config.MaxArity
	}
	if c.Pfd.NullEqualsNull == nil {
		nullEqualsNull := rds_config.NullEqualsNull
		c.Pfd.NullEqualsNull = &nullEqualsNull
	}
}

// 判断所给文件/文件夹是否存在
func isExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
