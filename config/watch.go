package config

import (
	"github.com/fsnotify/fsnotify"
)

// Watch re-reads the configuration whenever the underlying file changes
// and hands the fresh copy to onChange. Unmarshal failures keep the
// previous configuration and are reported through onError.
func (c *Config) Watch(onChange func(*Config), onError func(error)) {
	if c.viper == nil {
		return
	}
	c.viper.OnConfigChange(func(_ fsnotify.Event) {
		fresh := &Config{}
		if err := c.viper.Unmarshal(fresh); err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		fresh.viper = c.viper
		if onChange != nil {
			onChange(fresh)
		}
	})
	c.viper.WatchConfig()
}
