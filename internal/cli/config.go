package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("slidefx")
		viper.SetConfigType("toml")
		if viper.GetString("config") != "" {
			viper.SetConfigFile(viper.GetString("config"))
		} else {
			viper.AddConfigPath("$HOME/.config/slidefx")
			viper.AddConfigPath("/etc/xdg/slidefx")
		}
	}

	viper.SetDefault("transition", "crossfade")
	viper.SetDefault("frames", 120)
	viper.SetDefault("duration", 3.0)
	viper.SetDefault("easing", "ease-in-out")
	viper.SetDefault("framerate_limit", 60)
	viper.SetDefault("pingpong", true)
	viper.SetDefault("preview_output", "~/.cache/slidefx/preview.png")
	viper.SetDefault("prefix", "frame_")
	viper.SetDefault("debug", false)

	viper.AutomaticEnv() // read environment variables that match

	// A missing config file just means defaults; unlike a broken one it
	// is not an error.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Error reading config file: %v", err)
		}
	}

	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
}
