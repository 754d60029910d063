package scenario

import "strings"

// DefaultEnvPrefix 默认环境变量前缀，例如 DSCTL_SIZE 覆盖 size.
const DefaultEnvPrefix = "DSCTL"

// Options 场景加载选项.
type Options struct {
	// EnvPrefix 环境变量前缀，为空时不绑定环境变量
	EnvPrefix string

	// ConfigType 显式指定文件类型（yaml, json, toml）
	ConfigType string

	// Defaults 默认值
	Defaults map[string]any
}

// DefaultOptions 返回默认选项.
func DefaultOptions() *Options {
	return &Options{
		EnvPrefix: DefaultEnvPrefix,
	}
}

// Option 加载选项函数.
type Option func(*Options)

// WithEnvPrefix 设置环境变量前缀.
func WithEnvPrefix(prefix string) Option {
	return func(o *Options) {
		o.EnvPrefix = strings.ToUpper(prefix)
	}
}

// WithConfigType 显式指定文件类型.
func WithConfigType(configType string) Option {
	return func(o *Options) {
		o.ConfigType = configType
	}
}

// WithDefaults 设置默认值.
func WithDefaults(defaults map[string]any) Option {
	return func(o *Options) {
		o.Defaults = defaults
	}
}
