package gconf

import (
	"encoding/json"
	"fmt"
	"os"

	"dragchess/ui/gui/gbase"
)

const configFile = "dragchess.json"

type Config struct {
	Theme   string `json:"theme"`    // light/dark
	FEN     string `json:"fen"`      // optional start position
	WindowH int    `json:"window_h"` //
	WindowW int    `json:"window_w"` //
	Debug   bool   `json:"debug"`    // true/false
}

type GUIConfigWorker struct {
	Config Config
}

func defaultConfig() Config {
	return Config{
		Theme:   "light",
		FEN:     "",
		WindowH: gbase.WindowH,
		WindowW: gbase.WindowW,
		Debug:   false,
	}
}

func NewGUIConfigWorker() (*GUIConfigWorker, error) {
	_, err := os.Stat(configFile)
	if os.IsNotExist(err) {
		return &GUIConfigWorker{Config: defaultConfig()}, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(configFile)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	dec := json.NewDecoder(conf)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %s", err)
	}
	correctableConfig(&c)

	return &GUIConfigWorker{Config: c}, nil
}

func (w *GUIConfigWorker) Save() error {
	jsonData, err := json.MarshalIndent(w.Config, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(configFile, jsonData, 0644)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.WindowH < def.WindowH || c.WindowW < def.WindowW {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}
